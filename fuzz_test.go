package gapbuf

import (
	"bytes"
	"testing"
	"unicode/utf8"
)

func FuzzBufferRoundTrip(f *testing.F) {
	f.Add([]byte("hello world"), 5)
	f.Add([]byte{}, 0)
	f.Add([]byte{0, 1, 2, 3}, 4)
	f.Add(bytes.Repeat([]byte("ab"), 200), 37)

	f.Fuzz(func(t *testing.T, data []byte, gap int) {
		b := FromSlice(append([]byte(nil), data...))

		if gap < 0 {
			gap = -(gap + 1)
		}
		gap %= len(data) + 1

		b.SetGap(gap)
		if b.frontLen != gap {
			t.Fatalf("frontLen = %d after SetGap(%d)", b.frontLen, gap)
		}
		if b.Len() != len(data) {
			t.Fatalf("Len() = %d, want %d", b.Len(), len(data))
		}
		if b.frontLen+b.backLen > b.Capacity() {
			t.Fatalf("regions exceed capacity: %d + %d > %d", b.frontLen, b.backLen, b.Capacity())
		}

		joined := append(append([]byte(nil), b.Front()...), b.Back()...)
		if !bytes.Equal(joined, data) {
			t.Errorf("front+back = %q, want %q", joined, data)
		}
		if !bytes.Equal(b.IntoSlice(), data) {
			t.Error("IntoSlice() does not round-trip")
		}
	})
}

func FuzzStringPushPop(f *testing.F) {
	f.Add("hello")
	f.Add("héllo £5")
	f.Add("日本語")
	f.Add("emoji 🎉 test")
	f.Add("")

	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) {
			return
		}

		gs := NewString()
		var pushed []rune
		for i, r := range s {
			// Alternate ends to exercise both regions.
			if i%2 == 0 {
				gs.Push(r)
			} else {
				gs.PushBack(r)
			}
			pushed = append(pushed, r)

			if !utf8.ValidString(gs.Front()) || !utf8.ValidString(gs.Back()) {
				t.Fatalf("region invariant broken after pushing %q", r)
			}
		}

		// Drain everything back out; each pop must return a pushed rune.
		count := 0
		for {
			r, ok := gs.Pop()
			if !ok {
				r, ok = gs.PopBack()
			}
			if !ok {
				break
			}
			_ = r
			count++
		}
		if count != len(pushed) {
			t.Errorf("popped %d runes, pushed %d", count, len(pushed))
		}
		if !gs.IsEmpty() {
			t.Errorf("Len() = %d after draining", gs.Len())
		}
	})
}

func FuzzStringSetGap(f *testing.F) {
	f.Add("that will be £5 please", 14)
	f.Add("hello", 3)
	f.Add("日本語", 4)
	f.Add("", 0)

	f.Fuzz(func(t *testing.T, s string, index int) {
		if !utf8.ValidString(s) {
			return
		}

		gs := FromString(s)
		if index < 0 {
			index = -(index + 1)
		}
		index %= len(s) + 1

		if !gs.IsCharBoundary(index) {
			// A non-boundary index must fail fast and leave state unchanged.
			func() {
				defer func() {
					if recover() == nil {
						t.Errorf("SetGap(%d) inside a character did not panic", index)
					}
				}()
				gs.SetGap(index)
			}()
			if gs.Front() != s || gs.Back() != "" {
				t.Error("failed SetGap mutated state")
			}
			return
		}

		gs.SetGap(index)
		if !utf8.ValidString(gs.Front()) || !utf8.ValidString(gs.Back()) {
			t.Fatal("region invariant broken by SetGap")
		}
		if gs.Front()+gs.Back() != s {
			t.Errorf("front %q + back %q != %q", gs.Front(), gs.Back(), s)
		}
	})
}
