package bundle

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// StdoutPath selects standard output in WriteFile.
const StdoutPath = "-"

// WriteJSON writes c to w as indented JSON followed by a newline.
func (c *Config) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

// WriteFile writes c as indented JSON to filePath, or to stdout when
// filePath is empty or StdoutPath.
func (c *Config) WriteFile(filePath string) error {
	if filePath == "" || filePath == StdoutPath {
		return c.WriteJSON(os.Stdout)
	}

	f, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	if err = c.WriteJSON(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
