package ucd

import (
	"fmt"
	"io"
	"sort"

	verr "github.com/glyphparty/glyphparty/error"
)

// UnknownBlock is the sentinel block name returned when no configured range
// contains a code point. It is a valid catalogue value, not an error.
const UnknownBlock = "Unknown"

// BlockRange is one record of Blocks.txt: an inclusive code point range and
// the name of the block covering it.
type BlockRange struct {
	From rune
	To   rune
	Name string
}

// BlockIndex resolves a code point to the name of its containing block.
// Built once from Blocks.txt and read-only afterward.
type BlockIndex struct {
	ranges []BlockRange
}

// ParseBlocks parses the Blocks.txt.
//
// The input order of the ranges is not trusted. The index sorts them by
// their starting code point so that Resolve can binary-search.
//
// https://www.unicode.org/reports/tr44/#Blocks.txt
func ParseBlocks(r io.Reader, sourceName string) (*BlockIndex, error) {
	var ranges []BlockRange
	p := newParser(r)
	for p.parse() {
		// Blocks.txt carries a `@missing: 0000..10FFFF; No_Block` line.
		// Unassigned ranges deliberately resolve to the sentinel instead.
		if len(p.fields) == 0 {
			continue
		}
		// A record is a code point range followed by the block name.
		if len(p.fields) < 2 {
			return nil, &verr.DataError{
				Cause:      fmt.Errorf("a record must have 2 fields, but has %v", len(p.fields)),
				SourceName: sourceName,
				Row:        p.row,
			}
		}
		cp, err := p.fields[0].codePointRange()
		if err != nil {
			return nil, &verr.DataError{
				Cause:      err,
				SourceName: sourceName,
				Row:        p.row,
			}
		}
		ranges = append(ranges, BlockRange{
			From: cp.From,
			To:   cp.To,
			Name: p.fields[1].symbol(),
		})
	}
	if p.err != nil {
		return nil, &verr.DataError{
			Cause:      p.err,
			SourceName: sourceName,
		}
	}

	sort.Slice(ranges, func(i, j int) bool {
		return ranges[i].From < ranges[j].From
	})

	return &BlockIndex{
		ranges: ranges,
	}, nil
}

// Resolve returns the name of the block containing c, or UnknownBlock when
// no range matches. It never fails.
func (x *BlockIndex) Resolve(c rune) string {
	n := sort.Search(len(x.ranges), func(i int) bool {
		return x.ranges[i].From > c
	})
	if n == 0 {
		return UnknownBlock
	}
	if r := x.ranges[n-1]; c <= r.To {
		return r.Name
	}
	return UnknownBlock
}

// Len returns the number of configured block ranges.
func (x *BlockIndex) Len() int {
	return len(x.ranges)
}
