package translit

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Direction selects the source and target alphabet.
type Direction int

const (
	LatinToCyrillic Direction = iota // default, zero value
	CyrillicToLatin
)

// directionNames maps Direction values to their string names.
var directionNames = [...]string{
	LatinToCyrillic: "latin-to-cyrillic",
	CyrillicToLatin: "cyrillic-to-latin",
}

// directionFromName maps names and short aliases back to Direction values.
var directionFromName = map[string]Direction{
	"latin-to-cyrillic": LatinToCyrillic,
	"lat2cyr":           LatinToCyrillic,
	"cyrillic":          LatinToCyrillic,
	"cyrillic-to-latin": CyrillicToLatin,
	"cyr2lat":           CyrillicToLatin,
	"latin":             CyrillicToLatin,
}

// String returns the name of the direction.
func (d Direction) String() string {
	if d.valid() {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

func (d Direction) valid() bool {
	return d >= 0 && int(d) < len(directionNames)
}

// ParseDirection returns the Direction named by s. Besides the names returned
// by String it accepts "lat2cyr" and "cyr2lat", and the name of the target
// alphabet alone ("cyrillic", "latin").
func ParseDirection(s string) (Direction, error) {
	if d, ok := directionFromName[s]; ok {
		return d, nil
	}
	return 0, errors.Newf("unknown direction %q", s)
}

// MarshalText encodes the direction as its name.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.valid() {
		return nil, errors.Newf("cannot marshal %s", d)
	}
	return []byte(d.String()), nil
}

// UnmarshalText decodes a direction name.
func (d *Direction) UnmarshalText(text []byte) error {
	v, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
