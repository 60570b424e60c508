// Package script guesses which Serbian alphabet a text is written in.
//
// Detection counts letter runes: Cyrillic letters from the Cyrillic block
// against everything else that is a letter. The text is Cyrillic when it has
// more Cyrillic than Latin letters. Input longer than 1 MiB is truncated
// (rune-safe) before counting.
package script

import (
	"unicode"
	"unicode/utf8"
)

// Script identifies a writing system.
type Script int

const (
	Unknown  Script = iota // zero value, too few letters
	Latin                  // ISO 15924: Latn
	Cyrillic               // ISO 15924: Cyrl
)

const (
	// maxInputBytes caps how much of the input is inspected.
	maxInputBytes = 1 << 20

	// minLetters is the fewest letter runes needed for a verdict.
	minLetters = 3
)

var scriptNames = [...]string{
	Unknown:  "",
	Latin:    "Latn",
	Cyrillic: "Cyrl",
}

// String returns the ISO 15924 code of the script, or "" for Unknown.
func (s Script) String() string {
	if int(s) >= 0 && int(s) < len(scriptNames) {
		return scriptNames[s]
	}
	return ""
}

// isCyrillic reports whether r is in the Cyrillic block (U+0400..U+04FF).
func isCyrillic(r rune) bool {
	return r >= 0x0400 && r <= 0x04FF
}

// Detect returns the dominant script of s. Ties go to Latin.
func Detect(s string) Script {
	if len(s) > maxInputBytes {
		pos := maxInputBytes
		for pos > 0 && !utf8.RuneStart(s[pos]) {
			pos--
		}
		s = s[:pos]
	}

	var latin, cyrillic int
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		if isCyrillic(r) {
			cyrillic++
		} else {
			latin++
		}
	}

	switch {
	case latin+cyrillic < minLetters:
		return Unknown
	case cyrillic > latin:
		return Cyrillic
	default:
		return Latin
	}
}
