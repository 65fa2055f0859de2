package main

import (
	"github.com/spf13/cobra"
)

// glyphPartyVersion tags the emitted artifacts with the version of this
// tool. Bump it when the curation rules or the artifact shape change.
const glyphPartyVersion = "1.2.0"

var rootCmd = &cobra.Command{
	Use:   "glyphparty",
	Short: "Build the Glyph Party character catalogue from the Unicode Character Database",
	Long: `glyphparty extracts a curated set of visually interesting characters from
the Unicode Character Database (UCD) and emits the static JSON datasets the
Glyph Party browser UI loads:
- Fetches the UCD source tables.
- Builds the glyph catalogue and its summary statistics.
- Prints an emitted dataset in a readable format.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	return rootCmd.Execute()
}
