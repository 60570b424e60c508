// Package charmap holds the Serbian Latin/Cyrillic correspondence data used by
// the translit package.
//
// The data is fixed at build time and must not be modified at runtime.
package charmap

// Pair is one correspondence between a Latin and a Cyrillic symbol sequence.
type Pair struct {
	Latin    string
	Cyrillic string
}

// Canonical is the Serbian alphabet in azbuka order, upper case first.
// It is a bijection: every Latin and every Cyrillic sequence appears once.
var Canonical = []Pair{
	{"A", "А"}, {"a", "а"},
	{"B", "Б"}, {"b", "б"},
	{"V", "В"}, {"v", "в"},
	{"G", "Г"}, {"g", "г"},
	{"D", "Д"}, {"d", "д"},
	{"Đ", "Ђ"}, {"đ", "ђ"},
	{"E", "Е"}, {"e", "е"},
	{"Ž", "Ж"}, {"ž", "ж"},
	{"Z", "З"}, {"z", "з"},
	{"I", "И"}, {"i", "и"},
	{"J", "Ј"}, {"j", "ј"},
	{"K", "К"}, {"k", "к"},
	{"L", "Л"}, {"l", "л"},
	{"Lj", "Љ"}, {"lj", "љ"},
	{"M", "М"}, {"m", "м"},
	{"N", "Н"}, {"n", "н"},
	{"Nj", "Њ"}, {"nj", "њ"},
	{"O", "О"}, {"o", "о"},
	{"P", "П"}, {"p", "п"},
	{"R", "Р"}, {"r", "р"},
	{"S", "С"}, {"s", "с"},
	{"T", "Т"}, {"t", "т"},
	{"Ć", "Ћ"}, {"ć", "ћ"},
	{"U", "У"}, {"u", "у"},
	{"F", "Ф"}, {"f", "ф"},
	{"H", "Х"}, {"h", "х"},
	{"C", "Ц"}, {"c", "ц"},
	{"Č", "Ч"}, {"č", "ч"},
	{"Dž", "Џ"}, {"dž", "џ"},
	{"Š", "Ш"}, {"š", "ш"},
}

// Denormalized lists Latin spellings that are accepted as input but are never
// produced as output. Each maps onto canonical Cyrillic.
var Denormalized = []Pair{
	// Upper case digraphs and the informal Dj for Đ.
	{"DJ", "Ђ"}, {"Dj", "Ђ"}, {"dj", "ђ"},
	{"LJ", "Љ"},
	{"NJ", "Њ"},
	{"DŽ", "Џ"},

	// Eth is routinely typed in place of Đ.
	{"Ð", "Ђ"},

	// Unicode digraph code points (U+01C4..U+01CC).
	{"Ǆ", "Џ"}, {"ǅ", "Џ"}, {"ǆ", "џ"},
	{"Ǉ", "Љ"}, {"ǈ", "Љ"}, {"ǉ", "љ"},
	{"Ǌ", "Њ"}, {"ǋ", "Њ"}, {"ǌ", "њ"},

	// Typographic ligatures.
	{"Æ", "Ае"}, {"æ", "ае"},
	{"Œ", "Ое"}, {"œ", "ое"},
	{"Ĳ", "Иј"}, {"ĳ", "иј"},
	{"ﬀ", "фф"},
	{"ﬁ", "фи"},
	{"ﬂ", "фл"},
	{"ﬃ", "ффи"},
	{"ﬄ", "ффл"},
	{"ﬅ", "ст"},
	{"ﬆ", "ст"},
}
