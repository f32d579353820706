package smaz

import (
	"bytes"
	"testing"
)

func TestWorstCaseSize(t *testing.T) {
	cases := []struct{ n, want int }{
		{0, 0},
		{1, 2},
		{2, 4},
		{254, 256},
		{255, 257},
		{256, 260},
		{300, 304},
		{510, 514},
		{511, 517},
		{1000, 1008},
	}
	for _, c := range cases {
		if got := WorstCaseSize(c.n); got != c.want {
			t.Fatalf("WorstCaseSize(%d)=%d want %d", c.n, got, c.want)
		}
	}
}

func TestEncapsulateForms(t *testing.T) {
	if got := Encapsulate(nil, nil); len(got) != 0 {
		t.Fatalf("empty input: got %d bytes", len(got))
	}
	if got := Encapsulate(nil, []byte{'x'}); !bytes.Equal(got, []byte{codeSingle, 'x'}) {
		t.Fatalf("single byte: got %v", got)
	}
	if got := Encapsulate(nil, []byte("ab")); !bytes.Equal(got, []byte{codeRun, 1, 'a', 'b'}) {
		t.Fatalf("two bytes: got %v", got)
	}

	// One maximal run plus a trailing single literal.
	src := bytes.Repeat([]byte{'q'}, maxRun+1)
	got := Encapsulate(nil, src)
	if len(got) != maxRun+4 {
		t.Fatalf("%d bytes in: got %d bytes out", len(src), len(got))
	}
	if got[0] != codeRun || got[1] != maxRun-1 {
		t.Fatalf("first chunk header: got [%d %d]", got[0], got[1])
	}
	if got[len(got)-2] != codeSingle || got[len(got)-1] != 'q' {
		t.Fatalf("trailing single literal: got [%d %d]", got[len(got)-2], got[len(got)-1])
	}

	// Bound holds across chunk boundaries.
	for _, n := range []int{2, 254, 255, 256, 509, 510, 511} {
		src := bytes.Repeat([]byte{0xAA}, n)
		if out := Encapsulate(nil, src); len(out) > WorstCaseSize(n) {
			t.Fatalf("n=%d: %d bytes exceeds bound %d", n, len(out), WorstCaseSize(n))
		}
	}
}

func TestEncapsulateReusesDst(t *testing.T) {
	dst := make([]byte, 0, 64)
	src := []byte("hello")
	got := Encapsulate(dst, src)
	if &got[0] != &dst[:1][0] {
		t.Fatalf("expected dst backing array to be reused")
	}
	if !bytes.Equal(got, []byte{codeRun, 4, 'h', 'e', 'l', 'l', 'o'}) {
		t.Fatalf("unexpected encoding %v", got)
	}
}
