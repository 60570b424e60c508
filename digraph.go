package translit

import (
	"strings"

	"github.com/filiparag/translit/internal/charmap"
	"github.com/filiparag/translit/internal/srcase"
)

// digraphRule is one alternative of an exception group: the rendering to use
// when any of markers occurs in the lowercased word.
type digraphRule struct {
	override []rune
	markers  []string
}

// exceptionIndex maps a Latin digraph spelling to its rules, in dictionary
// order.
type exceptionIndex map[string][]digraphRule

// indexExceptions groups the alternatives of exs by Latin spelling. The order
// of exs is kept within each spelling, so the first group to list a spelling
// is consulted first.
func indexExceptions(exs []charmap.Exception) exceptionIndex {
	x := make(exceptionIndex)
	for _, e := range exs {
		for i, lat := range e.Latin {
			x[lat] = append(x[lat], digraphRule{
				override: []rune(e.Cyrillic[i]),
				markers:  e.Markers,
			})
		}
	}
	return x
}

// resolve reports the override for the matched spelling key in w, if one of
// its markers is present. The first marker found, in dictionary order, wins.
func (x exceptionIndex) resolve(key string, w *word) ([]rune, bool) {
	rules, ok := x[key]
	if !ok {
		return nil, false
	}
	lower := w.folded()
	for _, rule := range rules {
		for _, m := range rule.markers {
			if strings.Contains(lower, m) {
				return rule.override, true
			}
		}
	}
	return nil, false
}

// word is the unit the scanner works on.
type word struct {
	text  string
	runes []rune

	lower    string
	hasLower bool
}

func newWord(text string) *word {
	return &word{text: text, runes: []rune(text)}
}

// folded returns the lowercase, composed form of the word, computed on first
// use.
func (w *word) folded() string {
	if !w.hasLower {
		w.lower = srcase.ComposeNFC(srcase.ToLower(w.text))
		w.hasLower = true
	}
	return w.lower
}
