package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"text/template"

	"github.com/glyphparty/glyphparty/catalogue"
	"github.com/glyphparty/glyphparty/dataset"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "show",
		Short:   "Print an emitted dataset in a readable format",
		Example: `  glyphparty show src/unicode-data.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runShow,
	}
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	ds, err := readDataset(args[0])
	if err != nil {
		return err
	}

	return writeDataset(os.Stdout, ds)
}

func readDataset(path string) (*dataset.Compact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot open the dataset %s: %w", path, err)
	}
	defer f.Close()

	d, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	ds := &dataset.Compact{}
	err = json.Unmarshal(d, ds)
	if err != nil {
		return nil, err
	}

	return ds, nil
}

const datasetTemplate = `# Stats

characters: {{ .Stats.TotalCharacters }}
categories: {{ .Stats.Categories }}
blocks:     {{ .Stats.Blocks }}
unicode:    {{ .Stats.UnicodeVersion }}
generator:  glyphparty {{ .Stats.GlyphPartyVersion }}
generated:  {{ .Stats.GeneratedAt }}

# Categories
{{ range tally .Characters "category" }}
{{ printTally . }}
{{- end }}

# Blocks
{{ range tally .Characters "block" }}
{{ printTally . }}
{{- end }}
`

type tallyEntry struct {
	Key   string
	Count int
}

func writeDataset(w io.Writer, ds *dataset.Compact) error {
	fns := template.FuncMap{
		"tally": func(glyphs []catalogue.Glyph, by string) []tallyEntry {
			counts := map[string]int{}
			for _, g := range glyphs {
				switch by {
				case "category":
					counts[fmt.Sprintf("%v (%v)", g.Category, g.CategoryName)]++
				case "block":
					counts[g.Block]++
				}
			}
			entries := make([]tallyEntry, 0, len(counts))
			for k, n := range counts {
				entries = append(entries, tallyEntry{Key: k, Count: n})
			}
			sort.Slice(entries, func(i, j int) bool {
				if entries[i].Count != entries[j].Count {
					return entries[i].Count > entries[j].Count
				}
				return entries[i].Key < entries[j].Key
			})
			return entries
		},
		"printTally": func(e tallyEntry) string {
			return fmt.Sprintf("%6d  %v", e.Count, e.Key)
		},
	}

	tmpl, err := template.New("dataset").Funcs(fns).Parse(datasetTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, ds)
}
