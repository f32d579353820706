package smaz

import (
	"fmt"
	"unsafe"
)

// Decode expands a token stream produced against the same dictionary. Any
// stream that does not parse yields a DecodeError and no output: an
// unpopulated dictionary code, a truncated escape, or a literal run
// reaching past the end of src. Decoding never panics, whatever the bytes.
// Empty input decodes to empty output.
//
// The result starts at dst[:0]; dst may be nil. dst and src must not
// overlap.
func (d *Dictionary) Decode(dst, src []byte) ([]byte, error) {
	out := growSlice(dst, len(src)*4)
	pos := 0
	for pos < len(src) {
		tok := pos
		b := src[pos]
		pos++
		switch {
		case b < codeSingle:
			if int(b) >= len(d.entries) {
				return nil, &DecodeError{
					Offset: tok,
					Reason: fmt.Sprintf("dictionary code %d not populated (%d entries)", b, len(d.entries)),
				}
			}
			out = append(out, d.entries[b]...)
		case b == codeSingle:
			if pos >= len(src) {
				return nil, &DecodeError{Offset: tok, Reason: "truncated single-literal token"}
			}
			out = append(out, src[pos])
			pos++
		default: // codeRun
			if pos >= len(src) {
				return nil, &DecodeError{Offset: tok, Reason: "truncated literal-run token"}
			}
			runLen := int(src[pos]) + 1
			pos++
			if pos+runLen > len(src) {
				return nil, &DecodeError{
					Offset: tok,
					Reason: fmt.Sprintf("literal run of %d bytes overflows the stream", runLen),
				}
			}
			out = append(out, src[pos:pos+runLen]...)
			pos += runLen
		}
	}
	return out, nil
}

// DecodeString expands a token stream held in a string without copying it
// to a byte slice first.
func (d *Dictionary) DecodeString(s string) ([]byte, error) {
	return d.Decode(nil, unsafe.Slice(unsafe.StringData(s), len(s)))
}
