package gapbuf

import "unicode/utf8"

// Runes iterates the characters of a String in logical order, skipping the
// gap and reporting each character's logical byte index. It can be consumed
// from either end: Next takes from the head, Prev from the tail, and the two
// meet in the middle. The iterator holds views into the String and is
// invalidated by any mutation.
type Runes struct {
	front, back string
	frontLen    int
	head, tail  int
	r           rune
	index       int
}

// Runes returns an iterator over the String's characters.
func (s *String) Runes() *Runes {
	front, back := s.Front(), s.Back()
	return &Runes{
		front:    front,
		back:     back,
		frontLen: len(front),
		tail:     len(front) + len(back),
	}
}

// Next consumes the next character from the head end.
func (it *Runes) Next() bool {
	if it.head >= it.tail {
		return false
	}
	var r rune
	var size int
	if it.head < it.frontLen {
		r, size = utf8.DecodeRuneInString(it.front[it.head:])
	} else {
		r, size = utf8.DecodeRuneInString(it.back[it.head-it.frontLen:])
	}
	it.r, it.index = r, it.head
	it.head += size
	return true
}

// Prev consumes the next character from the tail end.
func (it *Runes) Prev() bool {
	if it.tail <= it.head {
		return false
	}
	var r rune
	var size int
	if it.tail > it.frontLen {
		r, size = utf8.DecodeLastRuneInString(it.back[:it.tail-it.frontLen])
	} else {
		r, size = utf8.DecodeLastRuneInString(it.front[:it.tail])
	}
	it.tail -= size
	it.r, it.index = r, it.tail
	return true
}

// Rune returns the character produced by the last successful Next or Prev.
func (it *Runes) Rune() rune {
	return it.r
}

// Index returns the logical byte index of that character.
func (it *Runes) Index() int {
	return it.index
}
