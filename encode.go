package smaz

import (
	"fmt"
	"unsafe"
)

// Encode compresses src against the dictionary. At every position the
// longest entry matching the next MaxMatch bytes wins; bytes no entry
// covers accumulate into literal runs. If the finished token stream would
// exceed WorstCaseSize(len(src)) it is discarded for the encapsulated
// literal form, so the bound holds for every input. Empty input encodes to
// empty output. All byte values are accepted.
//
// The result starts at dst[:0]; dst may be nil. dst and src must not
// overlap.
func (d *Dictionary) Encode(dst, src []byte) []byte {
	if len(src) == 0 {
		return dst[:0]
	}
	worst := WorstCaseSize(len(src))
	out := growSlice(dst, worst)

	// Pending literals are always a contiguous span of src; track its
	// start instead of copying bytes aside.
	litStart := -1
	pos := 0
	for pos < len(src) {
		matched := false
		for matchLen := min(MaxMatch, len(src)-pos); matchLen > 0; matchLen-- {
			code, ok := d.codes[string(src[pos:pos+matchLen])]
			if !ok {
				continue
			}
			if litStart >= 0 {
				out = appendLiterals(out, src[litStart:pos])
				litStart = -1
			}
			out = append(out, code)
			pos += matchLen
			matched = true
			break
		}
		if matched {
			continue
		}
		if litStart < 0 {
			litStart = pos
		}
		pos++
		if pos-litStart == maxRun {
			out = appendLiterals(out, src[litStart:pos])
			litStart = -1
		}
	}
	if litStart >= 0 {
		out = appendLiterals(out, src[litStart:])
	}

	if len(out) > worst {
		// Dictionary tokens fragmented the literals badly enough to
		// expand past the bound; plain encapsulation cannot.
		return Encapsulate(out[:0], src)
	}
	return out
}

// EncodeASCII is Encode restricted to 7-bit input: any byte >= 0x80 yields
// an InputError naming the first offending offset, and no output. For
// callers that promised the decoding side plain ASCII.
func (d *Dictionary) EncodeASCII(dst, src []byte) ([]byte, error) {
	for i, b := range src {
		if b >= 0x80 {
			return nil, InputError(fmt.Sprintf("non-ASCII byte 0x%02x at offset %d", b, i))
		}
	}
	return d.Encode(dst, src), nil
}

// EncodeString compresses s without copying it to a byte slice first.
func (d *Dictionary) EncodeString(s string) []byte {
	return d.Encode(nil, unsafe.Slice(unsafe.StringData(s), len(s)))
}
