package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Write serializes the three artifacts into dir. Every artifact is
// marshaled before any file is opened, so a failed run leaves no partial
// output behind.
func (a *Artifacts) Write(dir string) error {
	outputs := []struct {
		name string
		v    interface{}
	}{
		{CompactFileName, a.Compact},
		{FullFileName, a.Full},
		{CategoryReferenceFileName, a.CategoryReference},
	}

	serialized := make([][]byte, len(outputs))
	for i, out := range outputs {
		b, err := json.Marshal(out.v)
		if err != nil {
			return fmt.Errorf("Cannot serialize %s: %w", out.name, err)
		}
		serialized[i] = b
	}

	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return err
	}

	for i, out := range outputs {
		err := writeFile(filepath.Join(dir, out.name), serialized[i])
		if err != nil {
			return err
		}
	}

	return nil
}

func writeFile(path string, b []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, "%v\n", string(b))
	return nil
}
