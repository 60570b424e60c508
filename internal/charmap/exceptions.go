package charmap

import (
	"bytes"
	_ "embed"
	"strings"

	"github.com/cockroachdb/errors"
)

//go:embed exceptions.txt
var exceptionsRaw []byte

// Exception is a group of Latin spellings of one ambiguous digraph.
//
// Latin[i] is rendered as Cyrillic[i] in any word whose lowercase form
// contains one of Markers. Markers are lowercase and compared byte-wise.
type Exception struct {
	Latin    []string
	Cyrillic []string
	Markers  []string
}

// Exceptions is the digraph exception dictionary in file order,
// populated by init().
var Exceptions []Exception

func init() {
	var err error
	Exceptions, err = parseExceptions(exceptionsRaw)
	if err != nil {
		panic("charmap: " + err.Error())
	}
}

// parseExceptions reads the exceptions.txt format: '@' lines open a group of
// latin=cyrillic alternatives, other lines are markers of the open group.
func parseExceptions(raw []byte) ([]Exception, error) {
	var out []Exception
	for n, line := range bytes.Split(raw, []byte("\n")) {
		text := strings.TrimSpace(string(line))
		if text == "" || text[0] == '#' {
			continue
		}

		if text[0] == '@' {
			var e Exception
			for _, alt := range strings.Fields(text[1:]) {
				lat, cyr, ok := strings.Cut(alt, "=")
				if !ok || lat == "" || cyr == "" {
					return nil, errors.Newf("line %d: malformed alternative %q", n+1, alt)
				}
				e.Latin = append(e.Latin, lat)
				e.Cyrillic = append(e.Cyrillic, cyr)
			}
			if len(e.Latin) == 0 {
				return nil, errors.Newf("line %d: group without alternatives", n+1)
			}
			out = append(out, e)
			continue
		}

		if len(out) == 0 {
			return nil, errors.Newf("line %d: marker %q outside of a group", n+1, text)
		}
		if text != strings.ToLower(text) {
			return nil, errors.Newf("line %d: marker %q is not lowercase", n+1, text)
		}
		cur := &out[len(out)-1]
		cur.Markers = append(cur.Markers, text)
	}
	return out, nil
}
