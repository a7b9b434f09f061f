package gapbuf

// Iterator walks the logical contents of a Buffer front-then-back, skipping
// the gap. It holds views into the buffer and is invalidated by any mutation.
type Iterator[T any] struct {
	front, back []T
	pos         int
	value       T
}

// Iter returns an iterator over the buffer's logical contents.
func (b *Buffer[T]) Iter() *Iterator[T] {
	return &Iterator[T]{front: b.Front(), back: b.Back()}
}

// Next advances to the next element. It returns false when the contents are
// exhausted.
func (it *Iterator[T]) Next() bool {
	if it.pos < len(it.front) {
		it.value = it.front[it.pos]
		it.pos++
		return true
	}
	if it.pos < len(it.front)+len(it.back) {
		it.value = it.back[it.pos-len(it.front)]
		it.pos++
		return true
	}
	return false
}

// Value returns the element produced by the last successful Next call.
func (it *Iterator[T]) Value() T {
	return it.value
}
