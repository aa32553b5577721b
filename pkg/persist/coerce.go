package persist

import (
	"encoding/json"
	"fmt"
)

// Float64Array decodes from either a JSON array of numbers or a
// single bare number, coercing the latter into a one-element slice.
// This mirrors backup.read's `np.asarray(value, dtype=np.float32)`
// coercion of wire-dictionary values that a one-wire network
// serializes as bare scalars instead of one-element lists.
type Float64Array []float64

func (a *Float64Array) UnmarshalJSON(data []byte) error {
	var asSlice []float64
	if err := json.Unmarshal(data, &asSlice); err == nil {
		*a = asSlice
		return nil
	}

	var asScalar float64
	if err := json.Unmarshal(data, &asScalar); err != nil {
		return fmt.Errorf("persist: value is neither a number array nor a bare number: %w", err)
	}
	*a = Float64Array{asScalar}
	return nil
}

func (a Float64Array) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64(a))
}

// IntArray is Float64Array's integer counterpart, used for the
// wire_indices field.
type IntArray []int

func (a *IntArray) UnmarshalJSON(data []byte) error {
	var asSlice []int
	if err := json.Unmarshal(data, &asSlice); err == nil {
		*a = asSlice
		return nil
	}

	var asScalar int
	if err := json.Unmarshal(data, &asScalar); err != nil {
		return fmt.Errorf("persist: value is neither an int array nor a bare int: %w", err)
	}
	*a = IntArray{asScalar}
	return nil
}

func (a IntArray) MarshalJSON() ([]byte, error) {
	return json.Marshal([]int(a))
}
