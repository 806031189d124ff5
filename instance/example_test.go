package instance_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/expknap/instance"
	"github.com/katalvlaran/expknap/knapsack"
)

// ExampleGenerate builds a strongly correlated instance and solves it.
func ExampleGenerate() {
	in, err := instance.Generate(50, 100, instance.StronglyCorrelated, instance.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := in.Solve()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(in.Items), knapsack.Verify(in.Items, in.Capacity, res) == nil)
	// Output: 50 true
}

func ExampleInstance_Save() {
	in := instance.Instance{
		Capacity: 5,
		Items:    []knapsack.Item{{Profit: 3, Weight: 2}, {Profit: 4, Weight: 3}},
	}
	_ = in.Save(os.Stdout)
	// Output:
	// capacity: 5
	// items:
	//   - profit: 3
	//     weight: 2
	//   - profit: 4
	//     weight: 3
}
