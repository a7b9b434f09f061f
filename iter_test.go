package gapbuf

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIterator(t *testing.T) {
	b := New[byte]()
	b.PushSlice([]byte("hello"))
	b.PushSliceBack([]byte(" world"))

	var got []byte
	it := b.Iter()
	for it.Next() {
		got = append(got, it.Value())
	}

	if string(got) != "hello world" {
		t.Errorf("iterated %q, want %q", got, "hello world")
	}
	if it.Next() {
		t.Error("Next() after exhaustion should report false")
	}
}

func TestIteratorEmpty(t *testing.T) {
	it := New[int]().Iter()
	if it.Next() {
		t.Error("Next() on empty buffer should report false")
	}
}

func TestRunes(t *testing.T) {
	s := NewString()
	s.PushString("hello")
	s.PushStringBack(" £world")

	want := "hello £world"

	it := s.Runes()
	var runes []rune
	var indices []int
	for it.Next() {
		runes = append(runes, it.Rune())
		indices = append(indices, it.Index())
	}

	var wantRunes []rune
	var wantIndices []int
	for i, r := range want {
		wantRunes = append(wantRunes, r)
		wantIndices = append(wantIndices, i)
	}

	if diff := cmp.Diff(wantRunes, runes); diff != "" {
		t.Errorf("runes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantIndices, indices); diff != "" {
		t.Errorf("indices mismatch (-want +got):\n%s", diff)
	}
}

func TestRunesBackward(t *testing.T) {
	s := NewString()
	s.PushString("hello")
	s.PushStringBack(" £world")

	it := s.Runes()
	if !it.Prev() {
		t.Fatal("Prev() on non-empty string should report true")
	}
	// The last character of "hello £world" is 'd' at byte 12 ('£' is two
	// bytes).
	if it.Rune() != 'd' || it.Index() != 12 {
		t.Errorf("Prev() = (%q, %d), want ('d', 12)", it.Rune(), it.Index())
	}

	for it.Prev() {
	}
	if it.Rune() != 'h' || it.Index() != 0 {
		t.Errorf("final Prev() = (%q, %d), want ('h', 0)", it.Rune(), it.Index())
	}
}

func TestRunesMeetInMiddle(t *testing.T) {
	s := FromString("abc")
	s.SetGap(1)

	it := s.Runes()
	if !it.Next() || it.Rune() != 'a' {
		t.Fatalf("Next() = %q, want 'a'", it.Rune())
	}
	if !it.Prev() || it.Rune() != 'c' {
		t.Fatalf("Prev() = %q, want 'c'", it.Rune())
	}
	if !it.Next() || it.Rune() != 'b' {
		t.Fatalf("Next() = %q, want 'b'", it.Rune())
	}
	if it.Next() || it.Prev() {
		t.Error("ends met; further iteration should report false")
	}
}
