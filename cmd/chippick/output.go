package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/stefanclaw/chippick/internal/picker"
)

// writeSelection prints the chosen chips, one "Label <mail>" line each, or
// as a YAML list.
func writeSelection(w io.Writer, chips []picker.Chip, asYAML bool) error {
	if asYAML {
		if len(chips) == 0 {
			_, err := fmt.Fprintln(w, "[]")
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(chips); err != nil {
			return fmt.Errorf("encoding selection: %w", err)
		}
		return enc.Close()
	}

	for _, c := range chips {
		line := c.Label
		if c.MailID != "" {
			line += " <" + c.MailID + ">"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
