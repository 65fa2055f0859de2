package ucd

import (
	"fmt"
	"io"

	verr "github.com/glyphparty/glyphparty/error"
)

// CharacterEntry is one record of UnicodeData.txt: a raw code point in
// hexadecimal, the canonical name (which may be a placeholder like
// `<control>`), and the two-letter General_Category value.
//
// The code point is kept as the raw hexadecimal string on purpose. Whether
// it decodes to a valid scalar value is a per-entry concern of the
// classifier, not a load-time failure.
type CharacterEntry struct {
	CodePoint string
	Name      string
	Category  string
}

// ParseUnicodeData parses the UnicodeData.txt.
//
// https://www.unicode.org/reports/tr44/#UnicodeData.txt
func ParseUnicodeData(r io.Reader, sourceName string) ([]CharacterEntry, error) {
	var entries []CharacterEntry
	p := newParser(r)
	for p.parse() {
		if len(p.fields) == 0 {
			continue
		}
		// Field 0 is the code point, field 1 the Name property, and
		// field 2 the General_Category property.
		if len(p.fields) < 3 {
			return nil, &verr.DataError{
				Cause:      fmt.Errorf("a record must have at least 3 fields, but has %v", len(p.fields)),
				SourceName: sourceName,
				Row:        p.row,
			}
		}
		entries = append(entries, CharacterEntry{
			CodePoint: p.fields[0].symbol(),
			Name:      p.fields[1].symbol(),
			Category:  p.fields[2].symbol(),
		})
	}
	if p.err != nil {
		return nil, &verr.DataError{
			Cause:      p.err,
			SourceName: sourceName,
		}
	}

	return entries, nil
}
