package translit

import (
	"bufio"
	"io"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// maxWordBytes is the longest word Copy accepts.
const maxWordBytes = 1 << 20 // 1 MiB

// countingWriter counts the bytes the underlying writer accepted.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// Copy reads text from r, transliterates it word by word and writes the
// result to w. Words are separated by single spaces as with Process.
//
// It returns the number of bytes written to w. Failures of r or w are marked
// with ErrIO; a word that is not valid UTF-8 or longer than 1 MiB stops the
// copy. Words transliterated before a failure are still written to w.
func (t *Transliterator) Copy(w io.Writer, r io.Reader) (int64, error) {
	tab, err := t.table()
	if err != nil {
		return 0, err
	}

	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	err = tab.copyWords(bw, r)
	if ferr := bw.Flush(); ferr != nil && err == nil {
		err = errors.Mark(errors.Wrap(ferr, "flushing output"), ErrIO)
	}
	return cw.n, err
}

// copyWords scans r into words and writes each transliterated word to bw.
func (t *table) copyWords(bw *bufio.Writer, r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxWordBytes)
	sc.Split(bufio.ScanWords)

	var (
		out []byte
		n   int
	)
	for sc.Scan() {
		b := sc.Bytes()
		if !utf8.Valid(b) {
			return errors.Wrapf(ErrInvalidUTF8, "word %d", n+1)
		}

		out = out[:0]
		if n > 0 {
			out = append(out, ' ')
		}
		out = t.scanWord(out, string(b))
		n++

		if err := writeWord(bw, out); err != nil {
			return errors.Wrapf(err, "word %d", n)
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Mark(errors.Wrap(err, "reading input"), ErrIO)
	}
	return nil
}

// writeWord validates one transliterated word and buffers it.
func writeWord(bw *bufio.Writer, out []byte) error {
	if err := checkOutput(out); err != nil {
		return err
	}
	if _, err := bw.Write(out); err != nil {
		return errors.Mark(errors.Wrap(err, "writing output"), ErrIO)
	}
	return nil
}
