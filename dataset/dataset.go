package dataset

import (
	"github.com/glyphparty/glyphparty/catalogue"
)

// File names of the emitted artifacts.
const (
	CompactFileName           = "unicode-data.json"
	FullFileName              = "unicode-data-full.json"
	CategoryReferenceFileName = "category-reference.json"
)

// Compact is the artifact the client UI loads at startup. It omits the
// groupings to keep the payload small; the client re-derives its filter
// options from the flat sequence.
type Compact struct {
	Stats      catalogue.Stats   `json:"stats"`
	Characters []catalogue.Glyph `json:"characters"`
}

// Full is the compact artifact plus the category and block groupings. It is
// meant for human inspection, not for the client.
type Full struct {
	Stats      catalogue.Stats              `json:"stats"`
	Characters []catalogue.Glyph            `json:"characters"`
	ByCategory map[string][]catalogue.Glyph `json:"byCategory"`
	ByBlock    map[string][]catalogue.Glyph `json:"byBlock"`
}

// Versions identifies the inputs a reference artifact was generated for.
type Versions struct {
	Unicode    string `json:"unicode"`
	GlyphParty string `json:"glyphParty"`
}

// CategoryReference is a static reference artifact describing the curated
// allowlists themselves, independent of what the current UCD snapshot
// actually contains.
type CategoryReference struct {
	Categories     map[string]string `json:"categories"`
	PriorityBlocks []string          `json:"priorityBlocks"`
	Versions       Versions          `json:"versions"`
}

// Artifacts bundles the three serialized outputs of one build.
type Artifacts struct {
	Compact           *Compact
	Full              *Full
	CategoryReference *CategoryReference
}

// FromCatalogue assembles the artifacts for a built catalogue.
func FromCatalogue(c *catalogue.Catalogue) *Artifacts {
	return &Artifacts{
		Compact: &Compact{
			Stats:      c.Stats,
			Characters: c.Characters,
		},
		Full: &Full{
			Stats:      c.Stats,
			Characters: c.Characters,
			ByCategory: c.ByCategory,
			ByBlock:    c.ByBlock,
		},
		CategoryReference: &CategoryReference{
			Categories:     catalogue.CategoryNames,
			PriorityBlocks: catalogue.PriorityBlocks,
			Versions: Versions{
				Unicode:    c.Stats.UnicodeVersion,
				GlyphParty: c.Stats.GlyphPartyVersion,
			},
		},
	}
}
