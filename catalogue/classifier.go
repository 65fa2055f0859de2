package catalogue

import (
	"fmt"
	"strings"

	"github.com/glyphparty/glyphparty/ucd"
)

// OtherCategoryName labels glyphs whose General_Category is outside the
// curated allowlist. Such glyphs are reachable only via the block gate.
const OtherCategoryName = "Other"

// CategoryNames is the curated category allowlist: the General_Category
// values considered visually interesting, with their human-readable labels.
// A code point in one of these categories qualifies regardless of its block.
var CategoryNames = map[string]string{
	"Sm": "Math Symbols",
	"So": "Other Symbols",
	"Sc": "Currency Symbols",
	"Sk": "Modifier Symbols",
	"Ps": "Open Punctuation",
	"Pe": "Close Punctuation",
	"Pd": "Dash Punctuation",
	"Po": "Other Punctuation",
}

// PriorityBlocks is the curated block allowlist: symbol-heavy blocks whose
// code points qualify regardless of category.
var PriorityBlocks = []string{
	"Arrows",
	"Supplemental Arrows-A",
	"Supplemental Arrows-B",
	"Supplemental Arrows-C",
	"Miscellaneous Symbols and Arrows",
	"Box Drawing",
	"Block Elements",
	"Geometric Shapes",
	"Geometric Shapes Extended",
	"Dingbats",
	"Ornamental Dingbats",
	"Mathematical Operators",
	"Supplemental Mathematical Operators",
	"Miscellaneous Mathematical Symbols-A",
	"Miscellaneous Mathematical Symbols-B",
	"General Punctuation",
	"Supplemental Punctuation",
	"Currency Symbols",
	"Letterlike Symbols",
	"Number Forms",
	"Superscripts and Subscripts",
	"Miscellaneous Technical",
	"Miscellaneous Symbols",
	"Miscellaneous Symbols and Pictographs",
	"Supplemental Symbols and Pictographs",
	"Symbols and Pictographs Extended-A",
	"Emoticons",
	"Transport and Map Symbols",
}

var priorityBlockSet = func() map[string]struct{} {
	s := make(map[string]struct{}, len(PriorityBlocks))
	for _, b := range PriorityBlocks {
		s[b] = struct{}{}
	}
	return s
}()

// Name markers guarding against control-like, private-use, surrogate, and
// noncharacter code points that the structured metadata may not tag. These
// stay literal substring checks; deriving them from category codes misses
// code points that are not tagged Cc in every UCD release.
var exclusionMarkers = []string{
	"<control>",
	"PRIVATE USE",
	"SURROGATE",
	"NONCHARACTER",
}

// Eligible reports whether a decoded code point belongs in the catalogue:
// its category or its resolved block must be on an allowlist, and it must
// pass the printability checks.
func Eligible(c rune, category, name, block string) bool {
	_, catOK := CategoryNames[category]
	_, blockOK := priorityBlockSet[block]
	if !catOK && !blockOK {
		return false
	}
	return printable(c, name)
}

func printable(c rune, name string) bool {
	// C0 and C1 control codes.
	if c < 0x20 || (c >= 0x7F && c <= 0x9F) {
		return false
	}
	// Private Use Area and the supplementary private-use planes.
	if c >= 0xE000 && c <= 0xF8FF {
		return false
	}
	if c >= 0xF0000 {
		return false
	}
	for _, m := range exclusionMarkers {
		if strings.Contains(name, m) {
			return false
		}
	}
	return true
}

// Classify builds the Glyph for a raw character entry whose block has
// already been resolved. It returns false when the entry does not qualify,
// including when its code point does not decode; that is a skip, never an
// error.
func Classify(entry ucd.CharacterEntry, block string, descriptions map[string]string) (Glyph, bool) {
	c, err := ucd.DecodeHexToRune(entry.CodePoint)
	if err != nil {
		return Glyph{}, false
	}
	return classifyRune(c, entry, block, descriptions)
}

func classifyRune(c rune, entry ucd.CharacterEntry, block string, descriptions map[string]string) (Glyph, bool) {
	if !Eligible(c, entry.Category, entry.Name, block) {
		return Glyph{}, false
	}
	categoryName, ok := CategoryNames[entry.Category]
	if !ok {
		categoryName = OtherCategoryName
	}
	code := fmt.Sprintf("%04X", c)
	return Glyph{
		Code:         code,
		Char:         string(c),
		Name:         entry.Name,
		Description:  descriptions[code],
		Category:     entry.Category,
		CategoryName: categoryName,
		Block:        block,
		Decimal:      int(c),
	}, true
}
