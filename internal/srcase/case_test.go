package srcase

import "testing"

func TestToLower(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ascii", "ZABLUDJE", "zabludje"},
		{"latin diacritics", "ČĆŽŠĐ", "čćžšđ"},
		{"cyrillic", "ЉУБАВ", "љубав"},
		{"dz caron digraph upper", "Ǆ", "ǆ"},
		{"dz caron digraph title", "ǅ", "ǆ"},
		{"lj digraph title", "ǈ", "ǉ"},
		{"nj digraph upper", "Ǌ", "ǌ"},
		{"dotted I is not turkic", "I", "i"},
		{"mixed", "PredŽivot", "predživot"},
		{"empty", "", ""},
		{"digits and punctuation", "1234|?.", "1234|?."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ToLower(tt.input); got != tt.want {
				t.Errorf("ToLower(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func BenchmarkToLower_AlreadyLower(b *testing.B) {
	s := "nadživeti"
	for b.Loop() {
		ToLower(s)
	}
}

func BenchmarkToLower_AllUpper(b *testing.B) {
	s := "NADŽIVETI"
	for b.Loop() {
		ToLower(s)
	}
}
