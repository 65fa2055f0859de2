package catalogue

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glyphparty/glyphparty/ucd"
)

const builderBlocksSample = `0000..007F; Basic Latin
0080..00FF; Latin-1 Supplement
2070..209F; Superscripts and Subscripts
2190..21FF; Arrows
2300..23FF; Miscellaneous Technical
`

// Source order is deliberately shuffled; the catalogue must come out sorted
// by code point no matter how the table is ordered.
var builderEntries = []ucd.CharacterEntry{
	{CodePoint: "2318", Name: "PLACE OF INTEREST SIGN", Category: "So"},
	{CodePoint: "00A7", Name: "SECTION SIGN", Category: "Po"},
	{CodePoint: "0041", Name: "LATIN CAPITAL LETTER A", Category: "Lu"},
	{CodePoint: "21A9", Name: "LEFTWARDS ARROW WITH HOOK", Category: "So"},
	{CodePoint: "0007", Name: "<control>", Category: "Cc"},
	{CodePoint: "2070", Name: "SUPERSCRIPT ZERO", Category: "No"},
	{CodePoint: "garbage", Name: "UNDECODABLE", Category: "So"},
}

func buildTestCatalogue(t *testing.T, descriptions map[string]string) *Catalogue {
	t.Helper()
	idx, err := ucd.ParseBlocks(strings.NewReader(builderBlocksSample), "Blocks.txt")
	require.NoError(t, err)
	return Build(builderEntries, idx, descriptions, Metadata{
		UnicodeVersion:    "16.0.0",
		GlyphPartyVersion: "test",
	})
}

func TestBuild(t *testing.T) {
	cat := buildTestCatalogue(t, map[string]string{"2318": "Command key symbol"})

	// The letter, the control, and the undecodable entry are out;
	// everything else qualifies.
	codes := make([]string, 0, len(cat.Characters))
	for _, g := range cat.Characters {
		codes = append(codes, g.Code)
	}
	require.Equal(t, []string{"00A7", "2070", "21A9", "2318"}, codes)

	for i := 1; i < len(cat.Characters); i++ {
		require.LessOrEqual(t, cat.Characters[i-1].Decimal, cat.Characters[i].Decimal)
	}

	require.Equal(t, "Command key symbol", cat.Characters[3].Description)
	require.Equal(t, "", cat.Characters[0].Description)
}

func TestBuild_Stats(t *testing.T) {
	cat := buildTestCatalogue(t, nil)

	require.Equal(t, len(cat.Characters), cat.Stats.TotalCharacters)
	require.Equal(t, len(cat.ByCategory), cat.Stats.Categories)
	require.Equal(t, len(cat.ByBlock), cat.Stats.Blocks)
	require.Equal(t, "16.0.0", cat.Stats.UnicodeVersion)
	require.Equal(t, "test", cat.Stats.GlyphPartyVersion)
	require.NotEmpty(t, cat.Stats.GeneratedAt)
}

func TestBuild_Groupings(t *testing.T) {
	cat := buildTestCatalogue(t, nil)

	require.Len(t, cat.ByCategory["So"], 2)
	require.Len(t, cat.ByCategory["Po"], 1)
	require.Len(t, cat.ByCategory["No"], 1)
	require.Len(t, cat.ByBlock["Arrows"], 1)
	require.Len(t, cat.ByBlock["Miscellaneous Technical"], 1)

	// Every glyph lands in exactly one category group and one block group,
	// in catalogue order.
	seen := map[string]int{}
	for _, glyphs := range cat.ByCategory {
		for i := 1; i < len(glyphs); i++ {
			require.Less(t, glyphs[i-1].Decimal, glyphs[i].Decimal)
		}
		for _, g := range glyphs {
			seen[g.Code]++
		}
	}
	require.Len(t, seen, len(cat.Characters))
	for code, n := range seen {
		require.Equal(t, 1, n, "glyph %v duplicated across category groups", code)
	}

	seen = map[string]int{}
	for _, glyphs := range cat.ByBlock {
		for _, g := range glyphs {
			seen[g.Code]++
		}
	}
	require.Len(t, seen, len(cat.Characters))
}

func TestBuild_Uniqueness(t *testing.T) {
	cat := buildTestCatalogue(t, nil)

	codes := map[string]struct{}{}
	for _, g := range cat.Characters {
		_, dup := codes[g.Code]
		require.False(t, dup, "duplicate code %v", g.Code)
		codes[g.Code] = struct{}{}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	descs := map[string]string{"2318": "Command key symbol"}
	a := buildTestCatalogue(t, descs)
	b := buildTestCatalogue(t, descs)

	require.Equal(t, a.Characters, b.Characters)
	require.Equal(t, a.ByCategory, b.ByCategory)
	require.Equal(t, a.ByBlock, b.ByBlock)

	// Stats agree on everything but the generation timestamp.
	sa, sb := a.Stats, b.Stats
	sa.GeneratedAt = ""
	sb.GeneratedAt = ""
	require.Equal(t, sa, sb)
}

func TestBuild_EmptyInput(t *testing.T) {
	idx, err := ucd.ParseBlocks(strings.NewReader(builderBlocksSample), "Blocks.txt")
	require.NoError(t, err)

	cat := Build(nil, idx, nil, Metadata{})
	require.NotNil(t, cat.Characters)
	require.Empty(t, cat.Characters)
	require.Equal(t, 0, cat.Stats.TotalCharacters)
}
