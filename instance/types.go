package instance

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/expknap/knapsack"
)

// Sentinel errors returned by the generator and the decoders.
var (
	// ErrTooFewItems indicates n < 1.
	ErrTooFewItems = errors.New("instance: item count must be positive")

	// ErrBadRange indicates a coefficient range r < 1, or one so large that
	// the instance would exceed knapsack.MaxSum.
	ErrBadRange = errors.New("instance: coefficient range out of bounds")

	// ErrUnknownType indicates an unsupported instance family.
	ErrUnknownType = errors.New("instance: unknown instance type")

	// ErrDecode indicates a malformed instance document.
	ErrDecode = errors.New("instance: malformed instance document")
)

// Type selects an instance family. The numeric values match the
// conventional type codes 1–4.
type Type int

const (
	// Uncorrelated draws profits independently of weights.
	Uncorrelated Type = iota + 1
	// WeaklyCorrelated draws profits within ±r/10 of the weight.
	WeaklyCorrelated
	// StronglyCorrelated sets every profit to weight + 10.
	StronglyCorrelated
	// SubsetSum sets every profit equal to its weight.
	SubsetSum
)

var typeNames = map[Type]string{
	Uncorrelated:       "uncorrelated",
	WeaklyCorrelated:   "weakly-correlated",
	StronglyCorrelated: "strongly-correlated",
	SubsetSum:          "subset-sum",
}

// String returns the canonical family name.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}

	return "type(" + strconv.Itoa(int(t)) + ")"
}

// Valid reports whether t is one of the four supported families.
func (t Type) Valid() bool {
	_, ok := typeNames[t]
	return ok
}

// ParseType accepts a numeric code ("1".."4") or a family name.
func ParseType(s string) (Type, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if code, err := strconv.Atoi(s); err == nil {
		if t := Type(code); t.Valid() {
			return t, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
	for t, name := range typeNames {
		if name == s {
			return t, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// Instance is a knapsack instance: items plus capacity.
type Instance struct {
	Capacity int64           `yaml:"capacity"`
	Items    []knapsack.Item `yaml:"items"`
}

// TotalWeight returns Σw over all items.
func (in Instance) TotalWeight() int64 {
	var sum int64
	for _, it := range in.Items {
		sum += it.Weight
	}

	return sum
}

// Validate checks the instance against the solver's input contract.
func (in Instance) Validate() error {
	return knapsack.Validate(in.Items, in.Capacity)
}

// Solve runs knapsack.Solve on the instance.
func (in Instance) Solve(opts ...knapsack.Option) (knapsack.Result, error) {
	return knapsack.Solve(in.Items, in.Capacity, opts...)
}
