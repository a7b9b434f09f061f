package gapbuf

// Buffer is a double-ended, positionally indexed growable container. Its
// contents live in one contiguous allocation as a front region, a gap of
// unused capacity, and a back region; front-then-back is the logical content
// in order. Pushing at the gap is amortized O(1) and moving the gap costs
// O(distance moved).
//
// The zero value is an empty buffer that has never allocated.
type Buffer[T any] struct {
	raw      rawBuf[T]
	frontLen int
	backLen  int
}

// New creates an empty buffer without allocating.
func New[T any]() *Buffer[T] {
	return &Buffer[T]{}
}

// WithCapacity creates an empty buffer with capacity for n elements.
// Panics if n elements would exceed the signed offset bound.
func WithCapacity[T any](n int) *Buffer[T] {
	return &Buffer[T]{raw: rawWithCapacity[T](n)}
}

// FromSlice adopts s as the entire front region without copying, retaining
// any excess capacity of s. The caller must not use s afterwards.
func FromSlice[T any](s []T) *Buffer[T] {
	return &Buffer[T]{raw: rawFromSlice(s), frontLen: len(s)}
}

// Capacity returns the total capacity, including the gap.
func (b *Buffer[T]) Capacity() int {
	return b.raw.capacity()
}

// Len returns the number of elements, not counting the gap.
func (b *Buffer[T]) Len() int {
	return b.frontLen + b.backLen
}

// IsEmpty reports whether the buffer holds no elements.
func (b *Buffer[T]) IsEmpty() bool {
	return b.Len() == 0
}

// Front returns the elements before the gap as a live view into the buffer.
// The view is invalidated by any call that can reallocate or move the gap.
func (b *Buffer[T]) Front() []T {
	return b.raw.data[:b.frontLen]
}

// Back returns the elements after the gap as a live view into the buffer.
// The view is invalidated by any call that can reallocate or move the gap.
func (b *Buffer[T]) Back() []T {
	return b.raw.data[b.backOffset():]
}

// Push appends v to the front region.
func (b *Buffer[T]) Push(v T) {
	b.Reserve(1)
	b.raw.data[b.frontLen] = v
	b.frontLen++
}

// PushBack prepends v to the back region.
func (b *Buffer[T]) PushBack(v T) {
	b.Reserve(1)
	b.backLen++
	b.raw.data[b.backOffset()] = v
}

// PushSlice appends s to the front region with at most one reallocation.
func (b *Buffer[T]) PushSlice(s []T) {
	b.Reserve(len(s))
	copy(b.raw.data[b.frontLen:], s)
	b.frontLen += len(s)
}

// PushSliceBack prepends s to the back region with at most one reallocation.
func (b *Buffer[T]) PushSliceBack(s []T) {
	b.Reserve(len(s))
	b.backLen += len(s)
	copy(b.raw.data[b.backOffset():], s)
}

// Pop removes and returns the last element of the front region.
func (b *Buffer[T]) Pop() (T, bool) {
	if b.frontLen == 0 {
		var zero T
		return zero, false
	}
	b.frontLen--
	return b.raw.data[b.frontLen], true
}

// PopBack removes and returns the first element of the back region.
func (b *Buffer[T]) PopBack() (T, bool) {
	if b.backLen == 0 {
		var zero T
		return zero, false
	}
	v := b.raw.data[b.backOffset()]
	b.backLen--
	return v, true
}

// PopSlice drains up to len(dst) elements from the tail of the front region
// into dst, in logical order, and returns the count actually transferred.
// Receiving fewer than requested is the contract, not an error.
func (b *Buffer[T]) PopSlice(dst []T) int {
	n := min(len(dst), b.frontLen)
	b.frontLen -= n
	copy(dst, b.raw.data[b.frontLen:b.frontLen+n])
	return n
}

// PopSliceBack drains up to len(dst) elements from the head of the back
// region into dst, in logical order, and returns the count transferred.
func (b *Buffer[T]) PopSliceBack(dst []T) int {
	n := min(len(dst), b.backLen)
	copy(dst, b.raw.data[b.backOffset():b.backOffset()+n])
	b.backLen -= n
	return n
}

// Get returns the element at logical index i.
func (b *Buffer[T]) Get(i int) (T, bool) {
	if off, ok := b.indexToOffset(i); ok {
		return b.raw.data[off], true
	}
	var zero T
	return zero, false
}

// Set replaces the element at logical index i, reporting whether i was in
// range.
func (b *Buffer[T]) Set(i int, v T) bool {
	off, ok := b.indexToOffset(i)
	if ok {
		b.raw.data[off] = v
	}
	return ok
}

// SetGap moves the gap boundary to logical index index, shifting elements
// between the regions. The cost is linear in the distance moved, never in
// the total length. Panics if index exceeds Len(); query Len() first.
func (b *Buffer[T]) SetGap(index int) {
	if index < 0 || index > b.Len() {
		panic("gapbuf: index out of bounds")
	}

	switch {
	case index < b.frontLen:
		n := b.frontLen - index
		b.frontLen = index
		b.backLen += n
		copy(b.raw.data[b.backOffset():], b.raw.data[index:index+n])

	case index > b.frontLen:
		n := index - b.frontLen
		copy(b.raw.data[b.frontLen:index], b.raw.data[b.backOffset():b.backOffset()+n])
		b.frontLen = index
		b.backLen -= n
	}
}

// Reserve ensures the gap can hold at least additional more elements,
// reallocating if necessary. Reallocation invalidates all previously
// obtained views into the buffer.
//
// Panics if the required capacity exceeds the signed offset bound.
func (b *Buffer[T]) Reserve(additional int) {
	if additional < 0 {
		panic("gapbuf: negative reserve")
	}
	if additional > maxCapacity[T]()-b.Len() {
		panic("gapbuf: capacity overflow")
	}

	newCap, grow := nextCapacity(b.Capacity(), b.Len()+additional)
	if !grow {
		return
	}
	if m := maxCapacity[T](); newCap > m {
		newCap = m
	}

	prevBackOffset := b.Capacity() - b.backLen
	b.raw.setCapacity(newCap)

	// The back region still sits at its old offset inside the preserved
	// prefix; relocate it to the new end in the same pass.
	copy(b.raw.data[b.backOffset():], b.raw.data[prevBackOffset:prevBackOffset+b.backLen])
}

// TruncateFront shrinks the front region to at most n elements. The dropped
// elements become inert gap space; capacity is unchanged.
func (b *Buffer[T]) TruncateFront(n int) {
	b.frontLen = min(b.frontLen, max(n, 0))
}

// TruncateBack shrinks the back region to at most n elements, dropping from
// the region's head. Capacity is unchanged.
func (b *Buffer[T]) TruncateBack(n int) {
	b.backLen = min(b.backLen, max(n, 0))
}

// Clear removes all elements without releasing capacity.
func (b *Buffer[T]) Clear() {
	b.frontLen = 0
	b.backLen = 0
}

// ShrinkToFit releases all unused capacity.
func (b *Buffer[T]) ShrinkToFit() {
	b.ShrinkTo(b.Len())
}

// ShrinkTo releases unused capacity down to capacity. Capacities at or above
// the current one are a no-op; there is nothing to release.
//
// Panics if capacity is smaller than the current length.
func (b *Buffer[T]) ShrinkTo(capacity int) {
	if capacity < b.Len() {
		panic("gapbuf: capacity smaller than length")
	}
	if capacity >= b.Capacity() {
		return
	}

	// Move the back region to its new offset before the allocation shrinks
	// out from under it.
	copy(b.raw.data[capacity-b.backLen:capacity], b.raw.data[b.backOffset():])
	b.raw.setCapacity(capacity)
}

// IntoSlice consumes the buffer: the back region is compacted against the
// front and the combined front-then-back contents are returned as one slice
// sharing the buffer's allocation. The buffer is reset to empty and must be
// reinitialized before reuse.
func (b *Buffer[T]) IntoSlice() []T {
	n := b.Len()
	copy(b.raw.data[b.frontLen:n], b.raw.data[b.backOffset():])
	out := b.raw.data[:n:n]
	*b = Buffer[T]{}
	return out
}

func (b *Buffer[T]) backOffset() int {
	return b.raw.capacity() - b.backLen
}

func (b *Buffer[T]) gapLen() int {
	return b.raw.capacity() - b.Len()
}

func (b *Buffer[T]) indexToOffset(i int) (int, bool) {
	switch {
	case i < 0:
		return 0, false
	case i < b.frontLen:
		return i, true
	case i < b.Len():
		return i + b.gapLen(), true
	default:
		return 0, false
	}
}

// nextCapacity implements the growth policy: grow only when required exceeds
// the current capacity, to the larger of required and the current capacity
// plus max(capacity/16, 64) headroom. The headroom floor keeps small buffers
// from thrashing; the proportional term amortizes relocation for large ones.
func nextCapacity(capacity, required int) (int, bool) {
	if required <= capacity {
		return 0, false
	}
	return max(required, capacity+max(capacity/16, 64)), true
}
