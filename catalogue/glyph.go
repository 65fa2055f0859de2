package catalogue

import "time"

// Glyph is the catalogue's output record for one qualifying code point.
// The field order is the wire order of the emitted artifacts; keep it
// stable so rebuild diffs stay minimal.
type Glyph struct {
	Code         string `json:"code"`
	Char         string `json:"char"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	CategoryName string `json:"categoryName"`
	Block        string `json:"block"`
	Decimal      int    `json:"decimal"`
}

// Stats summarizes one build of the catalogue.
type Stats struct {
	TotalCharacters   int    `json:"totalCharacters"`
	Categories        int    `json:"categories"`
	Blocks            int    `json:"blocks"`
	UnicodeVersion    string `json:"unicodeVersion"`
	GlyphPartyVersion string `json:"glyphPartyVersion"`
	GeneratedAt       string `json:"generatedAt"`
}

// Metadata carries the version identifiers injected into Stats. They are
// passed through from the operator, never computed.
type Metadata struct {
	UnicodeVersion    string
	GlyphPartyVersion string
}

// Catalogue is the result of one full pipeline run: every qualifying glyph
// sorted ascending by code point, the same glyphs grouped by category and
// by block (group members keep the sorted order), and summary statistics.
type Catalogue struct {
	Characters []Glyph
	ByCategory map[string][]Glyph
	ByBlock    map[string][]Glyph
	Stats      Stats
}

func newStats(total, categories, blocks int, meta Metadata) Stats {
	return Stats{
		TotalCharacters:   total,
		Categories:        categories,
		Blocks:            blocks,
		UnicodeVersion:    meta.UnicodeVersion,
		GlyphPartyVersion: meta.GlyphPartyVersion,
		GeneratedAt:       time.Now().UTC().Format(time.RFC3339),
	}
}
