package translit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filiparag/translit/internal/charmap"
)

func TestTableLongestFirst(t *testing.T) {
	t.Parallel()

	for _, tab := range []*table{latinTable, cyrillicTable} {
		for first, bucket := range tab.byFirst {
			for i := 1; i < len(bucket); i++ {
				assert.GreaterOrEqual(t, len(bucket[i-1].src), len(bucket[i].src),
					"bucket %q not ordered by length", first)
			}
		}
	}
}

func TestMatchPrefersDigraph(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantSrc string
		wantDst string
	}{
		{"lj", "Ljubav", "Lj", "Љ"},
		{"LJ", "LJUBAV", "LJ", "Љ"},
		{"l alone", "lopta", "l", "л"},
		{"dz before d", "džak", "dž", "џ"},
		{"decomposed dz before d", "dz\u030cak", "dz\u030c", "џ"},
		{"decomposed z before z", "z\u030cena", "z\u030c", "ж"},
		{"ligature", "\ufb03", "\ufb03", "ффи"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, ok := latinTable.match([]rune(tt.input))
			require.True(t, ok)
			assert.Equal(t, tt.wantSrc, string(e.src))
			assert.Equal(t, tt.wantDst, string(e.dst))
		})
	}
}

func TestMatchNone(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"1", "?", "Ω", "q", "w", "x", "y"} {
		_, ok := latinTable.match([]rune(in))
		assert.False(t, ok, in)
	}
	_, ok := cyrillicTable.match([]rune("a"))
	assert.False(t, ok)
}

func TestMatchAtEndOfWord(t *testing.T) {
	t.Parallel()

	// A digraph candidate longer than the remaining input must not match.
	e, ok := latinTable.match([]rune("d"))
	require.True(t, ok)
	assert.Equal(t, "d", string(e.src))
}

func TestCanonicalIsBijection(t *testing.T) {
	t.Parallel()

	lat := make(map[string]bool)
	cyr := make(map[string]bool)
	for _, p := range charmap.Canonical {
		assert.False(t, lat[p.Latin], "duplicate Latin %q", p.Latin)
		assert.False(t, cyr[p.Cyrillic], "duplicate Cyrillic %q", p.Cyrillic)
		lat[p.Latin] = true
		cyr[p.Cyrillic] = true
	}
}

func TestDenormalizedMapsToCanonical(t *testing.T) {
	t.Parallel()

	canon := make(map[rune]bool)
	for _, p := range charmap.Canonical {
		for _, r := range p.Cyrillic {
			canon[r] = true
		}
	}
	for _, p := range charmap.Denormalized {
		for _, r := range p.Cyrillic {
			assert.True(t, canon[r], "%q maps to non-canonical %q", p.Latin, p.Cyrillic)
		}
	}
}

func TestExceptionKeysAreCandidates(t *testing.T) {
	t.Parallel()

	// An exception spelling the scanner can never match would be dead data.
	for _, e := range charmap.Exceptions {
		for _, lat := range e.Latin {
			m, ok := latinTable.match([]rune(lat))
			require.True(t, ok, lat)
			assert.Equal(t, lat, m.key, "exception spelling %q is not a table entry", lat)
		}
	}
}
