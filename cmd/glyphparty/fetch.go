package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var fetchFlags = struct {
	version *string
	out     *string
}{}

// The UCD data files the build command consumes.
var ucdFileNames = []string{
	"UnicodeData.txt",
	"Blocks.txt",
}

func init() {
	cmd := &cobra.Command{
		Use:     "fetch",
		Short:   "Download the UCD source tables from unicode.org",
		Example: `  glyphparty fetch --version 16.0.0 -o ucd`,
		Args:    cobra.NoArgs,
		RunE:    runFetch,
	}
	fetchFlags.version = cmd.Flags().String("version", "16.0.0", "Unicode version to download")
	fetchFlags.out = cmd.Flags().StringP("out", "o", "ucd", "directory to store the downloaded tables")
	rootCmd.AddCommand(cmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	err := os.MkdirAll(*fetchFlags.out, 0755)
	if err != nil {
		return err
	}
	for _, name := range ucdFileNames {
		url := fmt.Sprintf("https://www.unicode.org/Public/%s/ucd/%s", *fetchFlags.version, name)
		err := fetchFile(url, filepath.Join(*fetchFlags.out, name))
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "fetched %v\n", url)
	}
	return nil
}

func fetchFile(url, path string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Cannot fetch %s: %s", url, resp.Status)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, resp.Body)
	return err
}
