package main

import (
	"fmt"
	"os"

	"github.com/glyphparty/glyphparty/catalogue"
	"github.com/glyphparty/glyphparty/dataset"
	"github.com/glyphparty/glyphparty/logger"
	"github.com/glyphparty/glyphparty/ucd"
	"github.com/spf13/cobra"
)

var buildFlags = struct {
	unicodeData    *string
	blocks         *string
	descriptions   *string
	out            *string
	unicodeVersion *string
	logMode        *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "build",
		Short:   "Build the glyph catalogue and emit the dataset artifacts",
		Example: `  glyphparty build --unicode-data ucd/UnicodeData.txt --blocks ucd/Blocks.txt --descriptions descriptions.json -o src`,
		Args:    cobra.NoArgs,
		RunE:    runBuild,
	}
	buildFlags.unicodeData = cmd.Flags().String("unicode-data", "", "path to UnicodeData.txt (required)")
	buildFlags.blocks = cmd.Flags().String("blocks", "", "path to Blocks.txt (required)")
	buildFlags.descriptions = cmd.Flags().String("descriptions", "descriptions.json", "path to the description lookup table")
	buildFlags.out = cmd.Flags().StringP("out", "o", ".", "output directory for the dataset artifacts")
	buildFlags.unicodeVersion = cmd.Flags().String("unicode-version", "16.0.0", "Unicode version tag recorded in the dataset statistics")
	buildFlags.logMode = cmd.Flags().String("log-mode", "dev", "log output mode (dev or prod)")
	_ = cmd.MarkFlagRequired("unicode-data")
	_ = cmd.MarkFlagRequired("blocks")
	rootCmd.AddCommand(cmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	log, err := logger.New(*buildFlags.logMode)
	if err != nil {
		return err
	}
	defer log.Sync()

	entries, err := readUnicodeData(*buildFlags.unicodeData)
	if err != nil {
		return err
	}
	log.Info("loaded character table", "path", *buildFlags.unicodeData, "entries", len(entries))

	blocks, err := readBlocks(*buildFlags.blocks)
	if err != nil {
		return err
	}
	log.Info("loaded block table", "path", *buildFlags.blocks, "ranges", blocks.Len())

	descs, err := ucd.ReadDescriptions(*buildFlags.descriptions)
	if err != nil {
		return err
	}
	if len(descs) == 0 {
		log.Warn("no descriptions loaded; glyph descriptions will be empty", "path", *buildFlags.descriptions)
	} else {
		log.Info("loaded description table", "path", *buildFlags.descriptions, "descriptions", len(descs))
	}

	cat := catalogue.Build(entries, blocks, descs, catalogue.Metadata{
		UnicodeVersion:    *buildFlags.unicodeVersion,
		GlyphPartyVersion: glyphPartyVersion,
	})
	log.Info("built catalogue",
		"characters", cat.Stats.TotalCharacters,
		"categories", cat.Stats.Categories,
		"blocks", cat.Stats.Blocks,
	)

	err = dataset.FromCatalogue(cat).Write(*buildFlags.out)
	if err != nil {
		return fmt.Errorf("Cannot write the dataset artifacts: %w", err)
	}
	log.Info("wrote dataset artifacts",
		"dir", *buildFlags.out,
		"files", []string{dataset.CompactFileName, dataset.FullFileName, dataset.CategoryReferenceFileName},
	)

	return nil
}

func readUnicodeData(path string) ([]ucd.CharacterEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot open the character table %s: %w", path, err)
	}
	defer f.Close()
	return ucd.ParseUnicodeData(f, path)
}

func readBlocks(path string) (*ucd.BlockIndex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot open the block table %s: %w", path, err)
	}
	defer f.Close()
	return ucd.ParseBlocks(f, path)
}
