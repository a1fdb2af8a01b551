package ndarray

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFull(t *testing.T) {
	a := Full([]int{2, 3}, 1.5)
	assert.Equal(t, []int{2, 3}, a.Shape())
	assert.Equal(t, 2, a.NDim())
	assert.Equal(t, 6, a.Len())
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, float32(1.5), a.At(i, j))
		}
	}
}

func TestNaNFill(t *testing.T) {
	a := NaN([]int{3})
	for i := 0; i < 3; i++ {
		assert.True(t, math.IsNaN(float64(a.At(i))))
	}
}

func TestSetRowMajor(t *testing.T) {
	a := Full([]int{2, 2}, 0)
	a.Set(7, 1, 0)
	assert.Equal(t, float32(7), a.At(1, 0))
	assert.Equal(t, float32(0), a.At(0, 1))
}

func TestZeroDimensional(t *testing.T) {
	a := NaN(nil)
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 0, a.NDim())
	assert.True(t, math.IsNaN(float64(a.At())))
}

func TestPanics(t *testing.T) {
	a := Full([]int{2}, 0)
	assert.Panics(t, func() { a.At(2) })
	assert.Panics(t, func() { a.At(0, 0) })
	assert.Panics(t, func() { Full([]int{-1}, 0) })
}
