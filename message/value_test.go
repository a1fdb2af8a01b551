package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueAccessors(t *testing.T) {
	i, ok := Int(42).AsInt64()
	assert.True(t, ok)
	assert.Equal(t, int64(42), i)

	f, ok := Int(42).AsFloat64()
	assert.True(t, ok)
	assert.Equal(t, 42.0, f)

	s, ok := String("t2m").AsString()
	assert.True(t, ok)
	assert.Equal(t, "t2m", s)

	_, ok = String("t2m").AsInt64()
	assert.False(t, ok)

	assert.True(t, Null().IsNull())
	assert.True(t, Value{}.IsNull())
	assert.False(t, Int(0).IsNull())
}

func TestValueKey(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		same bool
	}{
		{"EqualInts", Int(6), Int(6), true},
		{"DistinctInts", Int(6), Int(12), false},
		{"EqualStrings", String("K"), String("K"), true},
		{"IntVsString", Int(6), String("6"), false},
		{"IntVsFloat", Int(6), Float(6), false},
		{"Nulls", Null(), Null(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.same, tt.a.Key() == tt.b.Key())
			assert.Equal(t, tt.same, tt.a.Equal(tt.b))
		})
	}
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "167", Int(167).String())
	assert.Equal(t, "0.25", Float(0.25).String())
	assert.Equal(t, "2t", String("2t").String())
	assert.Equal(t, "null", Null().String())
}
