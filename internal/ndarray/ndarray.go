// Package ndarray implements a minimal dense N-dimensional float32 array
// used as the backing storage for dataset variables.
package ndarray

import (
	"fmt"
	"math"
)

// Array is a dense, row-major N-dimensional array of float32 values.
// A zero-dimensional Array holds a single element.
type Array struct {
	shape   []int
	strides []int
	data    []float32
}

// Full creates an array of the given shape with every element set to fill.
// It panics on a negative axis length.
func Full(shape []int, fill float32) *Array {
	n := 1
	strides := make([]int, len(shape))
	for i := len(shape) - 1; i >= 0; i-- {
		if shape[i] < 0 {
			panic(fmt.Sprintf("ndarray: negative axis length %d", shape[i]))
		}
		strides[i] = n
		n *= shape[i]
	}
	data := make([]float32, n)
	for i := range data {
		data[i] = fill
	}
	return &Array{
		shape:   append([]int(nil), shape...),
		strides: strides,
		data:    data,
	}
}

// NaN creates an array of the given shape filled with the NaN sentinel.
func NaN(shape []int) *Array {
	return Full(shape, float32(math.NaN()))
}

// Shape returns the axis lengths.
// The returned slice is shared; callers must not modify it.
func (a *Array) Shape() []int {
	return a.shape
}

// NDim returns the number of axes.
func (a *Array) NDim() int {
	return len(a.shape)
}

// Len returns the total number of elements.
func (a *Array) Len() int {
	return len(a.data)
}

// At returns the element at the given per-axis indices.
func (a *Array) At(ix ...int) float32 {
	return a.data[a.offset(ix)]
}

// Set stores v at the given per-axis indices.
func (a *Array) Set(v float32, ix ...int) {
	a.data[a.offset(ix)] = v
}

func (a *Array) offset(ix []int) int {
	if len(ix) != len(a.shape) {
		panic(fmt.Sprintf("ndarray: %d indices for %d-dimensional array", len(ix), len(a.shape)))
	}
	off := 0
	for i, x := range ix {
		if x < 0 || x >= a.shape[i] {
			panic(fmt.Sprintf("ndarray: index %d out of range for axis %d (length %d)", x, i, a.shape[i]))
		}
		off += x * a.strides[i]
	}
	return off
}
