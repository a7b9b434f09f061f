package gapbuf

import (
	"math"
	"unsafe"
)

// rawBuf owns the single backing allocation for a Buffer. It has no notion of
// a used length: len(data) always equals the capacity, and the zero value is
// a valid zero-capacity owner that has never allocated.
type rawBuf[T any] struct {
	data []T
}

// maxCapacity is the largest element count whose byte size still fits in the
// platform's signed offset range for the element type. Capacities are kept at
// or below this bound so offset arithmetic cannot overflow.
func maxCapacity[T any]() int {
	size := unsafe.Sizeof(*new(T))
	if size <= 1 {
		return math.MaxInt
	}
	return int(uintptr(math.MaxInt) / size)
}

func rawWithCapacity[T any](n int) rawBuf[T] {
	var r rawBuf[T]
	r.setCapacity(n)
	return r
}

// rawFromSlice adopts s as the allocation, retaining any excess capacity
// beyond its length. No copy is made; the caller must not use s afterwards.
func rawFromSlice[T any](s []T) rawBuf[T] {
	return rawBuf[T]{data: s[:cap(s)]}
}

func (r *rawBuf[T]) capacity() int {
	return len(r.data)
}

// setCapacity reallocates to exactly newCap elements: grow, shrink, or free
// (newCap == 0). Existing elements are preserved up to the smaller of the old
// and new capacity. No-op when the capacity is unchanged.
//
// Panics if newCap is negative or would exceed the signed offset bound.
func (r *rawBuf[T]) setCapacity(newCap int) {
	if newCap < 0 || newCap > maxCapacity[T]() {
		panic("gapbuf: capacity overflow")
	}

	switch {
	case newCap == len(r.data):
	case newCap == 0:
		r.data = nil
	default:
		next := make([]T, newCap)
		copy(next, r.data)
		r.data = next
	}
}
