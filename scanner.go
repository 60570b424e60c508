package translit

import "unicode/utf8"

// scanWord transliterates one word with t and appends the result to dst.
//
// At each position the longest matching source sequence is replaced by its
// target. Ambiguous digraphs are checked against the exception dictionary
// first. Runes with no mapping are copied unchanged.
func (t *table) scanWord(dst []byte, text string) []byte {
	w := newWord(text)
	for i := 0; i < len(w.runes); {
		e, ok := t.match(w.runes[i:])
		if !ok {
			dst = utf8.AppendRune(dst, w.runes[i])
			i++
			continue
		}

		if t.exceptions != nil {
			if override, ok := t.exceptions.resolve(e.key, w); ok {
				dst = appendRunes(dst, override)
				i += len(e.src)
				continue
			}
		}

		dst = appendRunes(dst, e.dst)
		i += len(e.src)
	}
	return dst
}
