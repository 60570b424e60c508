// Package translit converts Serbian text between the Latin and Cyrillic
// alphabets.
//
// Serbian is written in both scripts and every Cyrillic letter has exactly one
// Latin counterpart. Three Cyrillic letters are written as Latin digraphs
// (Љ = Lj, Њ = Nj, Џ = Dž), and Ђ is often typed as Dj. The digraphs are
// ambiguous when a prefix meets a root (nadživeti is надживети, not
// наџивети); a dictionary of exception markers resolves those cases.
//
// Latin input may contain spellings that are never produced as output: upper
// case digraphs (LJ, DŽ), the Unicode digraph code points (ǅ, ǈ, ǋ),
// typographic ligatures (ﬁ, ﬂ, ﬆ, æ, œ, ĳ), Ð typed for Đ, and decomposed
// diacritics. They are all mapped to canonical Cyrillic. Cyrillic input is
// always converted to canonical Latin, so Cyrillic to Latin to Cyrillic is
// lossless.
//
// Input is split into words on Unicode white space and the result is joined
// with single spaces: leading, trailing and repeated white space is not kept.
// Characters outside both alphabets (digits, punctuation, other scripts) pass
// through unchanged.
//
// All functions and Transliterator values are safe for concurrent use by
// multiple goroutines.
package translit

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Transliterator converts text in one direction.
// The zero value converts Latin to Cyrillic.
type Transliterator struct {
	dir Direction
}

// New returns a Transliterator for d.
func New(d Direction) *Transliterator {
	return &Transliterator{dir: d}
}

// Direction returns the direction t converts in.
func (t *Transliterator) Direction() Direction {
	return t.dir
}

func (t *Transliterator) table() (*table, error) {
	tab := tableFor(t.dir)
	if tab == nil {
		return nil, errors.Newf("unknown direction %s", t.dir)
	}
	return tab, nil
}

// Process transliterates s. It fails only when s is not valid UTF-8 or the
// direction is unknown; on failure the returned string is empty.
func (t *Transliterator) Process(s string) (string, error) {
	tab, err := t.table()
	if err != nil {
		return "", err
	}
	if err := checkInput(s); err != nil {
		return "", err
	}

	words := strings.Fields(s)
	if len(words) == 0 {
		return "", nil
	}

	// Cyrillic letters take two bytes and most Latin letters one.
	out := make([]byte, 0, len(s)+len(s)/2)
	for i, w := range words {
		if i > 0 {
			out = append(out, ' ')
		}
		out = tab.scanWord(out, w)
	}

	if err := checkOutput(out); err != nil {
		return "", err
	}
	return string(out), nil
}

// ToCyrillic converts Latin text to Cyrillic.
func ToCyrillic(s string) (string, error) {
	return New(LatinToCyrillic).Process(s)
}

// ToLatin converts Cyrillic text to Latin.
func ToLatin(s string) (string, error) {
	return New(CyrillicToLatin).Process(s)
}
