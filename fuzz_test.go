package translit

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func FuzzToCyrillic(f *testing.F) {
	f.Add("")
	f.Add("   ")
	f.Add("1234567890")
	f.Add("Stala mala Mara na kraj stara hana sama.")
	f.Add("Adjektivisati|ZABLUDJE|odžvać|PredŽivot|kenjon|konjug|TANJug")
	f.Add("ǄǅǆǇǈǉǊǋǌ")
	f.Add("ﬀﬁﬂﬃﬄﬅﬆ æœĳ")
	f.Add("dz\u030cep")
	f.Add("\xff\xfe")
	f.Add("\x00")
	f.Add("a b　c")

	f.Fuzz(func(t *testing.T, s string) {
		got, err := ToCyrillic(s)
		checkProcessed(t, s, got, err)

		// Word independence.
		if err == nil {
			var parts []string
			for _, w := range strings.Fields(s) {
				p, err := ToCyrillic(w)
				if err != nil {
					t.Fatalf("ToCyrillic(%q): %v", w, err)
				}
				parts = append(parts, p)
			}
			if joined := strings.Join(parts, " "); joined != got {
				t.Errorf("word by word = %q, whole = %q", joined, got)
			}
		}
	})
}

func FuzzToLatin(f *testing.F) {
	f.Add("")
	f.Add("Стала мала Мара на крај стара хана сама.")
	f.Add("АБВГДЂЕЖЗИЈКЛЉМНЊОПРСТЋУФХЦЧЏШ")
	f.Add("\xff\xfe")

	f.Fuzz(func(t *testing.T, s string) {
		got, err := ToLatin(s)
		checkProcessed(t, s, got, err)
	})
}

// checkProcessed verifies the properties every result must have.
func checkProcessed(t *testing.T, in, got string, err error) {
	t.Helper()

	if !utf8.ValidString(in) {
		if err == nil {
			t.Fatalf("invalid input %q accepted", in)
		}
		return
	}
	if err != nil {
		t.Fatalf("valid input %q rejected: %v", in, err)
	}
	if !utf8.ValidString(got) {
		t.Errorf("invalid UTF-8 output %q for %q", got, in)
	}
	if strings.TrimSpace(got) != got {
		t.Errorf("output %q has leading or trailing space", got)
	}
	if strings.Contains(got, "  ") {
		t.Errorf("output %q has repeated spaces", got)
	}
	if wantWords, gotWords := len(strings.Fields(in)), len(strings.Fields(got)); wantWords != gotWords {
		t.Errorf("word count changed from %d to %d: %q -> %q", wantWords, gotWords, in, got)
	}
}
