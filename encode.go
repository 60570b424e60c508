package translit

import (
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// appendRunes appends the UTF-8 encoding of rs to dst.
func appendRunes(dst []byte, rs []rune) []byte {
	for _, r := range rs {
		dst = utf8.AppendRune(dst, r)
	}
	return dst
}

// checkInput returns an ErrInvalidUTF8 error naming the offset of the first
// byte of s that does not start a valid UTF-8 sequence.
func checkInput(s string) error {
	if utf8.ValidString(s) {
		return nil
	}
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return errors.Wrapf(ErrInvalidUTF8, "byte %d (0x%02x)", i, s[i])
		}
		i += size
	}
	return errors.WithStack(ErrInvalidUTF8)
}

// checkOutput verifies the scanner produced valid UTF-8.
func checkOutput(b []byte) error {
	if utf8.Valid(b) {
		return nil
	}
	return errors.Mark(
		errors.AssertionFailedf("transliteration produced %d bytes of invalid UTF-8", len(b)),
		ErrInvalidOutput)
}
