package translit

import (
	"slices"

	"github.com/filiparag/translit/internal/charmap"
	"github.com/filiparag/translit/internal/srcase"
)

// entry is one source sequence of a compiled table.
type entry struct {
	src []rune
	dst []rune
	// key is the composed spelling of src, used for exception lookup.
	key string
}

// table is a compiled mapping for one direction.
type table struct {
	// byFirst holds the candidates for each first rune, longest first.
	byFirst map[rune][]entry
	// exceptions is nil when the direction needs no disambiguation.
	exceptions exceptionIndex
}

// Compiled tables, built once from the charmap data and never modified.
var (
	latinTable    = newTable(latinPairs(), indexExceptions(charmap.Exceptions))
	cyrillicTable = newTable(cyrillicPairs(), nil)
)

// tableFor returns the compiled table for d, or nil for an unknown direction.
func tableFor(d Direction) *table {
	switch d {
	case LatinToCyrillic:
		return latinTable
	case CyrillicToLatin:
		return cyrillicTable
	default:
		return nil
	}
}

// latinPairs returns the Latin to Cyrillic source list: denormalized
// spellings, decomposed spellings, then canonical letters.
func latinPairs() []pairKey {
	var out []pairKey
	for _, p := range charmap.Denormalized {
		out = append(out, pairKey{src: p.Latin, dst: p.Cyrillic, key: p.Latin})
	}
	for _, list := range [][]charmap.Pair{charmap.Denormalized, charmap.Canonical} {
		for _, p := range list {
			if nfd := srcase.Decompose(p.Latin); nfd != p.Latin {
				out = append(out, pairKey{src: nfd, dst: p.Cyrillic, key: p.Latin})
			}
		}
	}
	for _, p := range charmap.Canonical {
		out = append(out, pairKey{src: p.Latin, dst: p.Cyrillic, key: p.Latin})
	}
	return out
}

// cyrillicPairs returns the Cyrillic to Latin source list. Only canonical
// Cyrillic is accepted and output is always canonical Latin.
func cyrillicPairs() []pairKey {
	out := make([]pairKey, 0, len(charmap.Canonical))
	for _, p := range charmap.Canonical {
		out = append(out, pairKey{src: p.Cyrillic, dst: p.Latin, key: p.Cyrillic})
	}
	return out
}

// pairKey is a source/target pair before compilation.
type pairKey struct {
	src, dst, key string
}

// newTable compiles pairs. Candidates sharing a first rune are ordered by
// descending source length; among equal lengths earlier pairs come first, so
// a digraph is always tried before its first letter.
func newTable(pairs []pairKey, exceptions exceptionIndex) *table {
	t := &table{
		byFirst:    make(map[rune][]entry),
		exceptions: exceptions,
	}
	for _, p := range pairs {
		src := []rune(p.src)
		if len(src) == 0 {
			continue
		}
		first := src[0]
		if slices.ContainsFunc(t.byFirst[first], func(e entry) bool { return slices.Equal(e.src, src) }) {
			continue
		}
		t.byFirst[first] = append(t.byFirst[first], entry{
			src: src,
			dst: []rune(p.dst),
			key: p.key,
		})
	}
	for r, bucket := range t.byFirst {
		slices.SortStableFunc(bucket, func(a, b entry) int {
			return len(b.src) - len(a.src)
		})
		t.byFirst[r] = bucket
	}
	return t
}

// match returns the longest candidate that is a prefix of rest.
func (t *table) match(rest []rune) (*entry, bool) {
	bucket := t.byFirst[rest[0]]
	for i := range bucket {
		e := &bucket[i]
		if len(e.src) <= len(rest) && slices.Equal(rest[:len(e.src)], e.src) {
			return e, true
		}
	}
	return nil, false
}
