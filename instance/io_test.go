package instance_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/expknap/instance"
	"github.com/katalvlaran/expknap/knapsack"
)

func TestSaveLoad_File(t *testing.T) {
	in, err := instance.Generate(20, 50, instance.StronglyCorrelated, instance.WithSeed(9))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "inst.yaml")
	require.NoError(t, in.SaveFile(path))

	got, err := instance.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestLoad_Document(t *testing.T) {
	doc := `
capacity: 50
items:
  - {profit: 60, weight: 10}
  - {profit: 100, weight: 20}
  - {profit: 120, weight: 30}
`
	in, err := instance.Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, int64(50), in.Capacity)
	assert.Equal(t, knapsack.Item{Profit: 100, Weight: 20}, in.Items[1])

	res, err := in.Solve()
	require.NoError(t, err)
	assert.Equal(t, int64(220), res.Profit)
}

func TestLoad_Malformed(t *testing.T) {
	for _, doc := range []string{
		"",
		"capacity: [1, 2]",
		"capacity: 5\nitems:\n  - {profit: 1, weight: 1, colour: red}\n",
	} {
		_, err := instance.Load(strings.NewReader(doc))
		assert.ErrorIs(t, err, instance.ErrDecode, "doc %q", doc)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := instance.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSave_Writer(t *testing.T) {
	in := instance.Instance{Capacity: 4, Items: []knapsack.Item{{Profit: 3, Weight: 2}}}

	var buf bytes.Buffer
	require.NoError(t, in.Save(&buf))
	assert.Contains(t, buf.String(), "capacity: 4")
	assert.Contains(t, buf.String(), "profit: 3")
}

func TestInstance_Validate(t *testing.T) {
	ok := instance.Instance{Capacity: 10, Items: []knapsack.Item{{Profit: 1, Weight: 2}}}
	assert.NoError(t, ok.Validate())

	neg := instance.Instance{Capacity: -1}
	assert.ErrorIs(t, neg.Validate(), knapsack.ErrNegativeCapacity)

	zero := instance.Instance{Capacity: 10, Items: []knapsack.Item{{Profit: 1, Weight: 0}}}
	assert.ErrorIs(t, zero.Validate(), knapsack.ErrNonPositiveWeight)
}
