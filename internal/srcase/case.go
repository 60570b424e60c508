// Package srcase provides case conversion and Unicode composition helpers for
// Serbian text in either script.
//
// Case mapping is the full Unicode mapping (no Turkic rules apply to Serbian).
// The Latin digraph code points follow their Unicode case pairs:
//   - Ǆ (U+01C4) and ǅ (U+01C5) lowercase to ǆ (U+01C6)
//   - Ǉ (U+01C7) and ǈ (U+01C8) lowercase to ǉ (U+01C9)
//   - Ǌ (U+01CA) and ǋ (U+01CB) lowercase to ǌ (U+01CC)
//
// All functions are safe for concurrent use.
package srcase

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToLower returns s lowercased.
func ToLower(s string) string {
	// A Caser keeps state between calls and must not be shared.
	return cases.Lower(language.Serbian).String(s)
}
