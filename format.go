package smaz

// Wire format constants. Every token is self-describing from its first
// byte: codes 0..252 name a dictionary entry, codeSingle prefixes one raw
// byte, codeRun prefixes a length byte L followed by L+1 raw bytes. Code
// 253 is never valid on the wire.
const (
	codeSingle = 254
	codeRun    = 255

	// MaxEntries is the number of wire codes available to dictionary
	// entries (0..252). NewDictionary rejects longer entry lists.
	MaxEntries = 253

	// MaxMatch is the encoder's scan window in bytes. Entries longer than
	// MaxMatch decode normally but are never chosen by the encoder.
	MaxMatch = 7

	maxRun = 255 // longest literal run one token can carry
)

// WorstCaseSize returns the guaranteed upper bound on encoded size for an
// n-byte input: the cost of shipping the bytes as back-to-back maximal
// literal runs. Encode never returns more than this many bytes, whatever
// the input and whatever the dictionary.
func WorstCaseSize(n int) int {
	switch n {
	case 0:
		return 0
	case 1:
		return 2
	}
	overhead := 2 * (n / maxRun)
	if n%maxRun != 0 {
		overhead += 2
	}
	return n + overhead
}

// Encapsulate encodes src without consulting any dictionary: the input is
// chunked into maximal literal runs, a trailing single byte becoming a
// single-literal token. The result never exceeds WorstCaseSize(len(src))
// bytes and decodes under every dictionary. Encode falls back to this form
// when dictionary tokens would overshoot the bound.
//
// The result starts at dst[:0]; dst may be nil. dst and src must not
// overlap.
func Encapsulate(dst, src []byte) []byte {
	out := growSlice(dst, WorstCaseSize(len(src)))
	for len(src) > 0 {
		n := min(len(src), maxRun)
		out = appendLiterals(out, src[:n])
		src = src[n:]
	}
	return out
}

// appendLiterals emits one literal flush: nothing for an empty slice, the
// single-literal form for one byte, a literal run otherwise. len(lit) must
// not exceed maxRun.
func appendLiterals(out, lit []byte) []byte {
	switch len(lit) {
	case 0:
		return out
	case 1:
		return append(out, codeSingle, lit[0])
	}
	out = append(out, codeRun, byte(len(lit)-1))
	return append(out, lit...)
}

// growSlice returns dst[:0] with capacity at least n, reallocating if
// needed.
func growSlice(dst []byte, n int) []byte {
	if cap(dst) < n {
		return make([]byte, 0, n)
	}
	return dst[:0]
}
