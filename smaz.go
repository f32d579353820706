package smaz

// Encode compresses src against the built-in English dictionary. See
// Dictionary.Encode for the dst contract.
func Encode(dst, src []byte) []byte {
	return English().Encode(dst, src)
}

// Decode expands src against the built-in English dictionary. See
// Dictionary.Decode for the dst contract.
func Decode(dst, src []byte) ([]byte, error) {
	return English().Decode(dst, src)
}
