package catalogue

import (
	"sort"

	"github.com/glyphparty/glyphparty/ucd"
)

// Build runs the extraction pipeline over the full character table: resolve
// each entry's block, classify it, then sort, group, and summarize the
// matches. Entries whose code point does not decode are skipped.
//
// Build holds no state between calls; every accumulator is local, so it can
// run repeatedly within one process.
func Build(entries []ucd.CharacterEntry, blocks *ucd.BlockIndex, descriptions map[string]string, meta Metadata) *Catalogue {
	glyphs := make([]Glyph, 0, len(entries))
	for _, entry := range entries {
		c, err := ucd.DecodeHexToRune(entry.CodePoint)
		if err != nil {
			continue
		}
		g, ok := classifyRune(c, entry, blocks.Resolve(c), descriptions)
		if !ok {
			continue
		}
		glyphs = append(glyphs, g)
	}

	sort.SliceStable(glyphs, func(i, j int) bool {
		return glyphs[i].Decimal < glyphs[j].Decimal
	})

	byCategory := map[string][]Glyph{}
	byBlock := map[string][]Glyph{}
	for _, g := range glyphs {
		byCategory[g.Category] = append(byCategory[g.Category], g)
		byBlock[g.Block] = append(byBlock[g.Block], g)
	}

	return &Catalogue{
		Characters: glyphs,
		ByCategory: byCategory,
		ByBlock:    byBlock,
		Stats:      newStats(len(glyphs), len(byCategory), len(byBlock), meta),
	}
}
