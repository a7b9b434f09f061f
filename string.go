package gapbuf

import (
	"errors"
	"unicode/utf8"
	"unsafe"

	"github.com/dshills/gapbuf/internal/grapheme"
)

// ErrInvalidUTF8 is returned when bytes imported into a String are not valid
// UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// String is a gap buffer of text. The front and back regions are each,
// independently, valid UTF-8 at every externally observable point; the gap's
// bytes are unreachable and unconstrained. Every index accepted by String is
// a byte index and must land on a character boundary in its region.
//
// The zero value is an empty string that has never allocated.
type String struct {
	inner Buffer[byte]
}

// NewString creates an empty String without allocating.
func NewString() *String {
	return &String{}
}

// StringWithCapacity creates an empty String with capacity for n bytes.
func StringWithCapacity(n int) *String {
	return &String{inner: *WithCapacity[byte](n)}
}

// FromString creates a String holding s as the entire front region.
func FromString(s string) *String {
	return &String{inner: *FromSlice([]byte(s))}
}

// StringFromBytes adopts p as the entire front region without copying.
// The caller must not use p afterwards. Returns ErrInvalidUTF8 if p is not
// valid UTF-8.
func StringFromBytes(p []byte) (*String, error) {
	if !utf8.Valid(p) {
		return nil, ErrInvalidUTF8
	}
	return &String{inner: *FromSlice(p)}, nil
}

// StringFromBuffer validates both regions of b independently and takes
// ownership of the buffer, leaving b empty. Returns ErrInvalidUTF8 if either
// region is not valid UTF-8; b is untouched on failure.
func StringFromBuffer(b *Buffer[byte]) (*String, error) {
	if !utf8.Valid(b.Front()) || !utf8.Valid(b.Back()) {
		return nil, ErrInvalidUTF8
	}
	s := &String{inner: *b}
	*b = Buffer[byte]{}
	return s, nil
}

// Capacity returns the total byte capacity, including the gap.
func (s *String) Capacity() int {
	return s.inner.Capacity()
}

// Len returns the content length in bytes, not counting the gap.
func (s *String) Len() int {
	return s.inner.Len()
}

// IsEmpty reports whether the String holds no text.
func (s *String) IsEmpty() bool {
	return s.inner.IsEmpty()
}

// Push appends r to the front region, encoded as 1-4 bytes. An encoded
// character is never split across regions, so the region invariant holds.
func (s *String) Push(r rune) {
	if uint32(r) < utf8.RuneSelf {
		s.inner.Push(byte(r))
		return
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	s.inner.PushSlice(buf[:n])
}

// PushBack prepends r to the back region, encoded as 1-4 bytes.
func (s *String) PushBack(r rune) {
	if uint32(r) < utf8.RuneSelf {
		s.inner.PushBack(byte(r))
		return
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	s.inner.PushSliceBack(buf[:n])
}

// PushString appends str to the front region.
func (s *String) PushString(str string) {
	s.inner.PushSlice(stringBytes(str))
}

// PushStringBack prepends str to the back region.
func (s *String) PushStringBack(str string) {
	s.inner.PushSliceBack(stringBytes(str))
}

// Pop removes and returns the last character of the front region.
func (s *String) Pop() (rune, bool) {
	r, size := utf8.DecodeLastRuneInString(s.Front())
	if size == 0 {
		return 0, false
	}
	s.inner.TruncateFront(s.inner.frontLen - size)
	return r, true
}

// PopBack removes and returns the first character of the back region.
func (s *String) PopBack() (rune, bool) {
	r, size := utf8.DecodeRuneInString(s.Back())
	if size == 0 {
		return 0, false
	}
	s.inner.TruncateBack(s.inner.backLen - size)
	return r, true
}

// Front returns the text before the gap as a zero-copy view of the buffer.
// The view is invalidated by any call that can reallocate or move the gap.
func (s *String) Front() string {
	return viewString(s.inner.Front())
}

// Back returns the text after the gap as a zero-copy view of the buffer.
// The view is invalidated by any call that can reallocate or move the gap.
func (s *String) Back() string {
	return viewString(s.inner.Back())
}

// IsCharBoundary reports whether index falls on a UTF-8 character boundary.
// Either end of the content is trivially a boundary.
func (s *String) IsCharBoundary(index int) bool {
	b, ok := s.inner.Get(index)
	if !ok {
		return index == s.Len()
	}
	return isBoundaryByte(b)
}

// SetGap moves the gap to byte index index. Panics if index is out of bounds
// or, distinctly, if it does not land on a character boundary; both are
// caller logic errors.
func (s *String) SetGap(index int) {
	if index < 0 || index > s.Len() {
		panic("gapbuf: index out of bounds")
	}
	if !s.IsCharBoundary(index) {
		panic("gapbuf: index not on character boundary")
	}
	s.inner.SetGap(index)
}

// TruncateFront shrinks the front region to at most n bytes. Panics if the
// new boundary would split a character.
func (s *String) TruncateFront(n int) {
	n = min(max(n, 0), s.inner.frontLen)
	if !isBoundaryIn(s.Front(), n) {
		panic("gapbuf: truncation not on character boundary")
	}
	s.inner.TruncateFront(n)
}

// TruncateBack shrinks the back region to at most n bytes, dropping from the
// region's head. Panics if the new boundary would split a character.
func (s *String) TruncateBack(n int) {
	n = min(max(n, 0), s.inner.backLen)
	if !isBoundaryIn(s.Back(), s.inner.backLen-n) {
		panic("gapbuf: truncation not on character boundary")
	}
	s.inner.TruncateBack(n)
}

// Reserve ensures the gap can hold at least additional more bytes.
func (s *String) Reserve(additional int) {
	s.inner.Reserve(additional)
}

// ShrinkToFit releases all unused capacity.
func (s *String) ShrinkToFit() {
	s.inner.ShrinkToFit()
}

// ShrinkTo releases unused capacity down to capacity. Panics if capacity is
// smaller than the current length.
func (s *String) ShrinkTo(capacity int) {
	s.inner.ShrinkTo(capacity)
}

// Clear removes all text without releasing capacity.
func (s *String) Clear() {
	s.inner.Clear()
}

// IntoString consumes the String: the contents are returned as one
// contiguous value sharing the buffer's allocation, and the receiver is
// reset to empty.
func (s *String) IntoString() string {
	return viewString(s.inner.IntoSlice())
}

// String materializes the full front-then-back content as a new Go string.
// Use sparingly for large buffers.
func (s *String) String() string {
	return s.Front() + s.Back()
}

// Graphemes returns the grapheme clusters of the content in logical order.
// Materializes the content; use sparingly for large buffers.
func (s *String) Graphemes() []string {
	return grapheme.Split(s.String())
}

// GraphemeCount returns the number of grapheme clusters in the content.
func (s *String) GraphemeCount() int {
	return grapheme.Count(s.String())
}

// Width returns the display width of the content in terminal cells.
func (s *String) Width() int {
	return grapheme.Width(s.String())
}

// isBoundaryByte reports whether b can start a character: continuation bytes
// (0x80..0xBF) are never boundaries.
func isBoundaryByte(b byte) bool {
	return b < 0x80 || b >= 0xC0
}

func isBoundaryIn(str string, i int) bool {
	if i == len(str) {
		return true
	}
	return isBoundaryByte(str[i])
}

// viewString views p as a string without copying. The result aliases the
// buffer and is valid only as long as p is.
func viewString(p []byte) string {
	if len(p) == 0 {
		return ""
	}
	return unsafe.String(&p[0], len(p))
}

// stringBytes views the bytes of str without copying. The view is read-only
// by convention and must not be retained.
func stringBytes(str string) []byte {
	return unsafe.Slice(unsafe.StringData(str), len(str))
}
