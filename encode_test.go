package smaz_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/axiomhq/smaz"
)

func TestEncode(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		require.Empty(t, smaz.Encode(nil, nil))
		require.Empty(t, smaz.Encode(nil, []byte{}))
	})

	t.Run("GreedyLongestMatch", func(t *testing.T) {
		d, err := smaz.NewDictionary([]string{"a", "ab", "abc"})
		require.NoError(t, err)

		require.Equal(t, []byte{0}, d.Encode(nil, []byte("a")))
		require.Equal(t, []byte{1}, d.Encode(nil, []byte("ab")))
		require.Equal(t, []byte{2}, d.Encode(nil, []byte("abc")))

		// Greedy, not optimal: "abca" splits as "abc"+"a".
		require.Equal(t, []byte{2, 0}, d.Encode(nil, []byte("abca")))
	})

	t.Run("LiteralsFlushBeforeMatch", func(t *testing.T) {
		d, err := smaz.NewDictionary([]string{"xyz"})
		require.NoError(t, err)

		comp := d.Encode(nil, []byte("12xyz"))
		require.Equal(t, []byte{255, 1, '1', '2', 0}, comp)
	})

	t.Run("DstReuse", func(t *testing.T) {
		dst := make([]byte, 0, 128)
		comp := smaz.Encode(dst, []byte("the cat sat"))
		require.NotEmpty(t, comp)
		require.Same(t, &dst[:1][0], &comp[0])

		// A too-small dst forces a fresh allocation.
		small := make([]byte, 0, 1)
		comp2 := smaz.Encode(small, []byte("the cat sat"))
		require.Equal(t, comp, comp2)
	})

	t.Run("EntryBeyondWindowNeverMatched", func(t *testing.T) {
		d, err := smaz.NewDictionary([]string{"password", "pass"})
		require.NoError(t, err)

		// "password" is eight bytes, one past the scan window, so the
		// encoder emits "pass" plus literals and code 0 never appears.
		comp := d.Encode(nil, []byte("password"))
		require.Equal(t, byte(1), comp[0])
		require.Equal(t, -1, bytes.IndexByte(comp, 0))

		back, err := d.Decode(nil, comp)
		require.NoError(t, err)
		require.Equal(t, []byte("password"), back)

		// Foreign streams can still carry the long entry's code.
		back, err = d.Decode(nil, []byte{0})
		require.NoError(t, err)
		require.Equal(t, []byte("password"), back)
	})

	t.Run("EncodeString", func(t *testing.T) {
		d := smaz.English()
		require.Equal(t, d.Encode(nil, []byte("hello world")), d.EncodeString("hello world"))
		require.Empty(t, d.EncodeString(""))
	})
}

func TestEncodeASCII(t *testing.T) {
	t.Run("AcceptsSevenBit", func(t *testing.T) {
		in := []byte("plain ascii text\t\n\x7f")
		comp, err := smaz.English().EncodeASCII(nil, in)
		require.NoError(t, err)
		require.Equal(t, smaz.Encode(nil, in), comp)
	})

	t.Run("RejectsHighByte", func(t *testing.T) {
		comp, err := smaz.English().EncodeASCII(nil, []byte("caf\xc3\xa9"))
		require.Nil(t, comp)
		var ie smaz.InputError
		require.ErrorAs(t, err, &ie)
		require.EqualError(t, err, "smaz: invalid input: non-ASCII byte 0xc3 at offset 3")
	})

	t.Run("EmptyInput", func(t *testing.T) {
		comp, err := smaz.English().EncodeASCII(nil, nil)
		require.NoError(t, err)
		require.Empty(t, comp)
	})
}
