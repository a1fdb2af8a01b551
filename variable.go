package grib

import (
	"fmt"
	"sync"

	"github.com/nwpgo/grib/internal/ndarray"
	"github.com/nwpgo/grib/message"
)

// DType identifies the element type of a variable's backing array.
type DType string

// DTypeFloat32 is the only element type this package materializes.
const DTypeFloat32 DType = "float32"

// Variable is one physical quantity across a GRIB file: the messages
// sharing a single grouping-key (paramId) value, exposed with the
// attributes, coordinates, dimensions and shape inferred from their
// metadata.
//
// A Variable is immutable after construction except for the lazy,
// idempotent materialization of its backing array.
type Variable struct {
	name            string
	groupValue      message.Value
	significantKeys []string
	attrs           map[string]message.Value
	coords          map[string][]message.Value
	coordKeys       []string
	dims            []string
	shape           []int

	dtype DType
	scale bool
	mask  bool
	size  int64

	arrOnce sync.Once
	arr     *ndarray.Array
}

// newVariable builds the variable for one grouping-key value over stream.
//
// It re-derives a coarse index over the grouping key, picks a leader
// message, sniffs the significant keys from the leader, then runs the
// attribute and coordinate sniffers over a finer index scoped to those
// keys. Sniffer failures propagate unchanged.
func newVariable(stream *message.Stream, groupValue message.Value, o *options) (*Variable, error) {
	coarse, err := stream.Index([]string{GroupingKey})
	if err != nil {
		return nil, err
	}
	if groupValues := coarse.Values(GroupingKey); len(groupValues) > 1 {
		return nil, &ErrMultiValuedGroup{Key: GroupingKey, Values: groupValues}
	}

	matches := coarse.Select(map[string]message.Value{GroupingKey: groupValue})
	if len(matches) == 0 {
		return nil, fmt.Errorf("no messages with %s=%s", GroupingKey, groupValue)
	}
	leader := matches[0]

	v := &Variable{
		groupValue: groupValue,
		coordKeys:  RawCoordinateKeys,
		dtype:      DTypeFloat32,
		scale:      true,
		mask:       false,
	}

	v.name = o.variableName
	if v.name == "" {
		if sn, ok := leader.Get(shortNameKey); ok && !sn.IsNull() {
			v.name = sn.String()
		} else {
			v.name = fmt.Sprintf("%s==%s", GroupingKey, groupValue)
		}
	}

	v.significantKeys = SignificantKeys(leader, EditionIndependentKeys, o.catalog, o.logger)

	finer, err := stream.Index(v.significantKeys)
	if err != nil {
		return nil, err
	}
	if v.attrs, err = VariableAttrs(finer, VariableAttrsKeys, o.catalog); err != nil {
		return nil, err
	}
	if v.coords, err = RawCoordinates(finer, v.coordKeys); err != nil {
		return nil, err
	}

	// Dimensions keep the fixed candidate-key order.
	for _, key := range v.coordKeys {
		if n := len(v.coords[key]); n > 1 {
			v.dims = append(v.dims, key)
			v.shape = append(v.shape, n)
		}
	}

	if np, ok := leader.Get(sizeKey); ok {
		if n, ok := np.AsInt64(); ok {
			v.size = n
		}
	}
	return v, nil
}

// Name returns the variable name resolved from the fallback chain:
// explicit name, leader shortName, "paramId==<value>".
func (v *Variable) Name() string {
	return v.name
}

// GroupValue returns the grouping-key (paramId) value of the variable.
func (v *Variable) GroupValue() message.Value {
	return v.groupValue
}

// SignificantKeys returns the keys indexed for this variable, in sniff
// order. The returned slice is shared; callers must not modify it.
func (v *Variable) SignificantKeys() []string {
	return v.significantKeys
}

// NCAttrs returns a defensive copy of the variable attributes.
func (v *Variable) NCAttrs() map[string]message.Value {
	out := make(map[string]message.Value, len(v.attrs))
	for k, val := range v.attrs {
		out[k] = val
	}
	return out
}

// Coordinates returns the raw coordinate values per candidate key. Every
// candidate key is present, singleton axes included.
func (v *Variable) Coordinates() map[string][]message.Value {
	out := make(map[string][]message.Value, len(v.coords))
	for k, vals := range v.coords {
		out[k] = vals
	}
	return out
}

// Dimensions returns the coordinate keys with more than one distinct value,
// in fixed candidate-key order.
func (v *Variable) Dimensions() []string {
	return v.dims
}

// Shape returns the dimension lengths, in Dimensions order.
func (v *Variable) Shape() []int {
	return v.shape
}

// NDim returns the number of dimensions.
func (v *Variable) NDim() int {
	return len(v.dims)
}

// DType returns the element type of the backing array.
func (v *Variable) DType() DType {
	return v.dtype
}

// Scale reports whether values are subject to scaling on decode.
func (v *Variable) Scale() bool {
	return v.scale
}

// Mask reports whether a validity mask applies.
func (v *Variable) Mask() bool {
	return v.mask
}

// Size returns the leader message's declared point count.
func (v *Variable) Size() int64 {
	return v.size
}

// BuildArray materializes the backing array: a shape-conforming float32
// container filled with NaN sentinels. No payload decode happens. The array
// is built once; repeated calls return the same instance.
func (v *Variable) BuildArray() *ndarray.Array {
	v.arrOnce.Do(func() {
		v.arr = ndarray.NaN(v.shape)
	})
	return v.arr
}

// At indexes into the backing array, materializing it if needed.
func (v *Variable) At(ix ...int) float32 {
	return v.BuildArray().At(ix...)
}
