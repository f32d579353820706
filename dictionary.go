package smaz

import (
	"bytes"
	"encoding/binary"
	"io"
	"strconv"
)

// Dictionary maps wire codes 0..252 to byte-string entries and back. It is
// immutable after construction and safe for concurrent use by any number
// of encoders and decoders.
//
// Entry order is the wire format: code i always names entry i. Encoder and
// decoder must be built from identical entry lists; the compressed stream
// does not identify its dictionary.
type Dictionary struct {
	entries []string         // code -> entry, dense
	codes   map[string]uint8 // entry -> highest code with that value
}

// NewDictionary builds a Dictionary whose entries become wire codes in
// order. It returns a ConfigError when more than MaxEntries entries are
// supplied or any entry is empty. Duplicate values are legal; reverse
// lookup resolves each to its highest code. Entries longer than MaxMatch
// are legal too, but only streams from other producers can contain their
// codes, since the encoder's scan window never reaches them.
func NewDictionary(entries []string) (*Dictionary, error) {
	if len(entries) > MaxEntries {
		return nil, ConfigError(strconv.Itoa(len(entries)) + " entries, limit " + strconv.Itoa(MaxEntries))
	}
	d := &Dictionary{
		entries: make([]string, len(entries)),
		codes:   make(map[string]uint8, len(entries)),
	}
	for i, e := range entries {
		if e == "" {
			return nil, ConfigError("empty entry at code " + strconv.Itoa(i))
		}
		d.entries[i] = e
		d.codes[e] = uint8(i) // later duplicates overwrite: last wins
	}
	return d, nil
}

// mustDictionary backs the built-in tables, which are valid by
// construction.
func mustDictionary(entries []string) *Dictionary {
	d, err := NewDictionary(entries)
	if err != nil {
		panic(err)
	}
	return d
}

// Len returns the number of entries, equivalently the number of populated
// wire codes.
func (d *Dictionary) Len() int { return len(d.entries) }

// Entries returns a copy of the entry list in wire order.
func (d *Dictionary) Entries() []string {
	out := make([]string, len(d.entries))
	copy(out, d.entries)
	return out
}

// dictVersion is the dictionary file format version (date this layout was
// introduced).
const dictVersion uint64 = 20250310

// WriteTo serializes the Dictionary to w. Layout, little-endian:
//   - 8-byte version word: (version<<32) | (entryCount<<8) | 1, the low
//     byte marking endianness
//   - per entry: one length byte (1..255), then the entry bytes
//
// Entries longer than 255 bytes do not fit the length field; WriteTo
// reports a ConfigError rather than truncating. Only hand-built
// dictionaries can reach that.
func (d *Dictionary) WriteTo(w io.Writer) (int64, error) {
	var (
		n    int64
		buf8 [8]byte
	)
	ver := (dictVersion << 32) | (uint64(len(d.entries)) << 8) | 1
	binary.LittleEndian.PutUint64(buf8[:], ver)
	if nn, err := w.Write(buf8[:]); err != nil {
		return n, err
	} else {
		n += int64(nn)
	}
	for i, e := range d.entries {
		if len(e) > 255 {
			return n, ConfigError("entry at code " + strconv.Itoa(i) + " exceeds 255 bytes")
		}
		buf8[0] = byte(len(e))
		if nn, err := w.Write(buf8[:1]); err != nil {
			return n, err
		} else {
			n += int64(nn)
		}
		if nn, err := io.WriteString(w, e); err != nil {
			return n, err
		} else {
			n += int64(nn)
		}
	}
	return n, nil
}

// ReadFrom replaces the receiver with a Dictionary deserialized from r,
// consuming exactly the bytes WriteTo produced. It returns ErrBadVersion
// for an unknown version word, a ConfigError for a frame the codec cannot
// accept, and the underlying io error for short reads. The receiver is
// left unchanged on error.
func (d *Dictionary) ReadFrom(r io.Reader) (int64, error) {
	var (
		n   int64
		hdr [8]byte
	)
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return n, err
	}
	n += 8
	ver := binary.LittleEndian.Uint64(hdr[:])
	if ver>>32 != dictVersion {
		return n, ErrBadVersion
	}
	count := int((ver >> 8) & 0xFF)
	if count > MaxEntries {
		return n, ConfigError(strconv.Itoa(count) + " entries, limit " + strconv.Itoa(MaxEntries))
	}
	entries := make([]string, count)
	var lenByte [1]byte
	for i := range count {
		if _, err := io.ReadFull(r, lenByte[:]); err != nil {
			return n, err
		}
		n++
		entryLen := int(lenByte[0])
		if entryLen == 0 {
			return n, ConfigError("empty entry at code " + strconv.Itoa(i))
		}
		buf := make([]byte, entryLen)
		if _, err := io.ReadFull(r, buf); err != nil {
			return n, err
		}
		n += int64(entryLen)
		entries[i] = string(buf)
	}
	nd, err := NewDictionary(entries)
	if err != nil {
		return n, err
	}
	*d = *nd
	return n, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (d *Dictionary) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (d *Dictionary) UnmarshalBinary(data []byte) error {
	_, err := d.ReadFrom(bytes.NewReader(data))
	return err
}
