// Package gapbuf provides a gap buffer: a growable container that keeps its
// contents in one contiguous allocation split into two logically ordered
// regions (front and back) around a movable span of unused capacity, the gap.
//
// Insertion at either edge of the gap is amortized O(1), random access is
// O(1), and moving the gap costs O(distance moved) rather than O(length).
// That trade suits editing workloads: the edit point moves far less often
// than text is inserted at it.
//
// Two types are provided:
//
//   - Buffer is the generic container. Elements before the gap form the front
//     region, elements after it form the back region; front-then-back is the
//     full logical content, in order.
//   - String wraps a byte Buffer and maintains the invariant that both
//     regions are, independently, valid UTF-8. Every externally supplied
//     index must land on a character boundary.
//
// Basic usage:
//
//	s := gapbuf.FromString("hello world")
//	s.SetGap(5)          // front "hello", back " world"
//	s.PushString(",")    // insert at the gap: "hello, world"
//	doc := s.Front() + s.Back()
//
// A Buffer has exactly one owner and no internal locking; concurrent access
// requires external synchronization. Views obtained from Front, Back, Get or
// the iterators are invalidated by any call that can reallocate or move the
// gap.
package gapbuf
