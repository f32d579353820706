package smaz

import (
	"errors"
	"strconv"
)

// ErrBadVersion indicates a serialized dictionary with an unsupported
// version word.
var ErrBadVersion = errors.New("smaz: unsupported dictionary version")

// ConfigError reports a dictionary the codec cannot accept: too many
// entries, an empty entry, or an entry the serialized form cannot frame.
type ConfigError string

func (e ConfigError) Error() string { return "smaz: invalid dictionary: " + string(e) }

// InputError reports input rejected up front by an encoding mode. No
// output accompanies it. Today this only means a byte >= 0x80 under
// EncodeASCII.
type InputError string

func (e InputError) Error() string { return "smaz: invalid input: " + string(e) }

// DecodeError reports a malformed or truncated token stream. Offset is the
// position of the first byte of the token that failed to parse.
type DecodeError struct {
	Offset int
	Reason string
}

func (e *DecodeError) Error() string {
	return "smaz: corrupt stream at offset " + strconv.Itoa(e.Offset) + ": " + e.Reason
}
