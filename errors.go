package translit

import "github.com/cockroachdb/errors"

// Errors returned by this package. Test for them with errors.Is; returned
// errors carry additional context.
var (
	// ErrEmptyDigest is reserved for data collaborators and is not returned
	// by the scanner.
	ErrEmptyDigest = errors.New("digest is empty")

	// ErrBufferOverflow is reserved. Output is written to a growable buffer,
	// so the fixed-size overflow it once reported cannot occur.
	ErrBufferOverflow = errors.New("buffer overflow")

	// ErrIO marks failures of the reader or writer passed to Copy.
	ErrIO = errors.New("i/o error")

	// ErrInvalidUTF8 is returned for input that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 input")

	// ErrInvalidOutput is returned when transliterated output fails UTF-8
	// validation. It indicates a defect in the mapping data.
	ErrInvalidOutput = errors.New("invalid UTF-8 output")
)
