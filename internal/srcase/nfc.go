package srcase

import "golang.org/x/text/unicode/norm"

// Decompose returns the canonical decomposition (NFD) of s.
// Š becomes S followed by U+030C COMBINING CARON.
func Decompose(s string) string {
	return norm.NFD.String(s)
}

// ComposeNFC returns s in canonical composed form (NFC).
func ComposeNFC(s string) string {
	// Fast path: most input is already composed.
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}
