package grib

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nwpgo/grib/message"
)

// stepMessage builds one synthetic regular_ll message at the given forecast
// step.
func stepMessage(paramID int64, shortName, units string, endStep int64) *message.Message {
	m := message.New().
		Set("centre", message.String("ecmf")).
		Set("paramId", message.Int(paramID)).
		Set("units", message.String(units)).
		Set("dataDate", message.Int(20200101)).
		Set("dataTime", message.Int(0)).
		Set("endStep", message.Int(endStep)).
		Set("stepUnits", message.Int(1)).
		Set("stepType", message.String("instant")).
		Set("gridType", message.String("regular_ll")).
		Set("topLevel", message.Int(0)).
		Set("typeOfLevel", message.String("surface")).
		Set("numberOfDataPoints", message.Int(496)).
		Set("number", message.Int(1)).
		Set("Ni", message.Int(16)).
		Set("Nj", message.Int(31))
	if shortName != "" {
		m.Set("shortName", message.String(shortName))
	}
	return m
}

func stepDataset(t *testing.T, opts ...Option) *Dataset {
	t.Helper()
	msgs := []*message.Message{
		stepMessage(130, "t", "K", 0),
		stepMessage(130, "t", "K", 6),
		stepMessage(130, "t", "K", 12),
	}
	opts = append([]Option{WithLogger(NoopLogger())}, opts...)
	return NewDataset(message.NewStream("test.grib", msgs), opts...)
}

func TestDatasetVariables(t *testing.T) {
	ds := stepDataset(t)
	assert.Equal(t, "test.grib", ds.Path())
	assert.Equal(t, ModeRead, ds.Mode())

	vars, err := ds.Variables()
	require.NoError(t, err)
	require.Len(t, vars, 1)

	v, ok := vars["t"]
	require.True(t, ok, "variable named from the leader's shortName")

	assert.Equal(t, []string{"endStep"}, v.Dimensions())
	assert.Equal(t, []int{3}, v.Shape())
	assert.Equal(t, 1, v.NDim())
	assert.Equal(t, DTypeFloat32, v.DType())
	assert.True(t, v.Scale())
	assert.False(t, v.Mask())
	assert.Equal(t, int64(496), v.Size())
	assert.Equal(t, message.Int(130), v.GroupValue())

	// Every candidate coordinate is present, singletons included.
	coords := v.Coordinates()
	assert.Len(t, coords, len(RawCoordinateKeys))
	assert.Equal(t,
		[]message.Value{message.Int(0), message.Int(6), message.Int(12)},
		coords["endStep"])
	assert.Equal(t, []message.Value{message.Int(1)}, coords["number"])

	// Attributes collapsed to scalars, grid keys included.
	attrs := v.NCAttrs()
	assert.Equal(t, message.String("K"), attrs["units"])
	assert.Equal(t, message.Int(16), attrs["Ni"])
	_, hasStep := attrs["endStep"]
	assert.False(t, hasStep, "multi-valued keys never become attributes")

	// Memoized discovery.
	again, err := ds.Variables()
	require.NoError(t, err)
	assert.Same(t, vars["t"], again["t"])

	names, err := ds.VariableNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"t"}, names)
}

func TestDatasetInconsistentAttribute(t *testing.T) {
	msgs := []*message.Message{
		stepMessage(130, "t", "K", 0),
		stepMessage(130, "t", "C", 6),
	}
	ds := NewDataset(message.NewStream("test.grib", msgs), WithLogger(NoopLogger()))

	vars, err := ds.Variables()
	assert.Nil(t, vars, "no partial dataset on failure")

	var inconsistent *ErrInconsistentAttribute
	require.ErrorAs(t, err, &inconsistent)
	assert.Equal(t, "units", inconsistent.Key)
}

func TestDatasetMultiValuedGroup(t *testing.T) {
	msgs := []*message.Message{
		stepMessage(130, "t", "K", 0),
		stepMessage(131, "u", "m s**-1", 0),
	}
	ds := NewDataset(message.NewStream("test.grib", msgs), WithLogger(NoopLogger()))

	_, err := ds.Variables()
	var multi *ErrMultiValuedGroup
	require.ErrorAs(t, err, &multi)
	assert.Equal(t, GroupingKey, multi.Key)
	assert.Len(t, multi.Values, 2)
}

func TestDatasetMissingCoordinate(t *testing.T) {
	m := stepMessage(130, "t", "K", 0)
	msgs := []*message.Message{m}
	// Rebuild without the ensemble number key.
	stripped := message.New()
	for _, key := range m.Keys() {
		if key == "number" {
			continue
		}
		v, _ := m.Get(key)
		stripped.Set(key, v)
	}
	msgs[0] = stripped

	ds := NewDataset(message.NewStream("test.grib", msgs), WithLogger(NoopLogger()))
	_, err := ds.Variables()
	var missing *ErrMissingCoordinate
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "number", missing.Key)
}

func TestVariableNameFallback(t *testing.T) {
	t.Run("ParamIdFallback", func(t *testing.T) {
		msgs := []*message.Message{stepMessage(130, "", "K", 0)}
		ds := NewDataset(message.NewStream("test.grib", msgs), WithLogger(NoopLogger()))
		vars, err := ds.Variables()
		require.NoError(t, err)
		_, ok := vars["paramId==130"]
		assert.True(t, ok)
	})

	t.Run("ExplicitName", func(t *testing.T) {
		ds := stepDataset(t, WithVariableName("temperature"))
		vars, err := ds.Variables()
		require.NoError(t, err)
		_, ok := vars["temperature"]
		assert.True(t, ok)
	})
}

func TestVariableSignificantKeysScopedToGridType(t *testing.T) {
	ds := stepDataset(t)
	vars, err := ds.Variables()
	require.NoError(t, err)

	keys := vars["t"].SignificantKeys()
	assert.Contains(t, keys, "paramId")
	assert.Contains(t, keys, "Ni")
	assert.NotContains(t, keys, "bottomLevel", "absent keys are filtered out")
}

func TestVariableUnknownGridTypeDegrades(t *testing.T) {
	m := stepMessage(130, "t", "K", 0)
	m.Set("gridType", message.String("space_view"))
	rec := &logRecorder{}
	ds := NewDataset(message.NewStream("test.grib", []*message.Message{m}),
		WithLogger(NewLogger(rec)))

	vars, err := ds.Variables()
	require.NoError(t, err)
	require.Len(t, vars, 1)
	assert.NotContains(t, vars["t"].SignificantKeys(), "Ni")
	assert.Contains(t, rec.messages, "unknown gridType")
}

func TestVariableBuildArray(t *testing.T) {
	ds := stepDataset(t)
	vars, err := ds.Variables()
	require.NoError(t, err)
	v := vars["t"]

	a := v.BuildArray()
	assert.Equal(t, []int{3}, a.Shape())
	for i := 0; i < 3; i++ {
		assert.True(t, math.IsNaN(float64(v.At(i))), "sentinel fill, no decode")
	}

	// Idempotent: repeated calls return the same container.
	assert.Same(t, a, v.BuildArray())
}

func TestScalarVariable(t *testing.T) {
	msgs := []*message.Message{stepMessage(130, "t", "K", 0)}
	ds := NewDataset(message.NewStream("test.grib", msgs), WithLogger(NoopLogger()))

	vars, err := ds.Variables()
	require.NoError(t, err)
	v := vars["t"]

	assert.Empty(t, v.Dimensions())
	assert.Empty(t, v.Shape())
	assert.Equal(t, 0, v.NDim())
	// All candidate coordinates survive as singleton axes.
	assert.Len(t, v.Coordinates(), len(RawCoordinateKeys))

	a := v.BuildArray()
	assert.Equal(t, 1, a.Len())
	assert.True(t, math.IsNaN(float64(a.At())))
}

func TestNCAttrsDefensiveCopy(t *testing.T) {
	ds := stepDataset(t)
	vars, err := ds.Variables()
	require.NoError(t, err)
	v := vars["t"]

	attrs := v.NCAttrs()
	attrs["units"] = message.String("mangled")
	assert.Equal(t, message.String("K"), v.NCAttrs()["units"])
}
