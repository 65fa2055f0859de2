package ucd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ParseDescriptions parses a description lookup table: a JSON object mapping
// uppercase hexadecimal code points to human-authored description text.
func ParseDescriptions(r io.Reader) (map[string]string, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	descs := map[string]string{}
	err = json.Unmarshal(d, &descs)
	if err != nil {
		return nil, err
	}
	return descs, nil
}

// ReadDescriptions loads the description lookup table from a file. A missing
// file is not an error: every glyph then defaults to an empty description.
func ReadDescriptions(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("Cannot open the description table %s: %w", path, err)
	}
	defer f.Close()
	return ParseDescriptions(f)
}
