package directory

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry is one selectable person.
type Entry struct {
	ID     int    `yaml:"id,omitempty"`
	Label  string `yaml:"label"`
	Image  string `yaml:"image"`
	MailID string `yaml:"mailId"`
}

// Directory is a fixed, ordered list of entries. It is never mutated after
// construction, so one value can be shared by any number of pickers.
type Directory struct {
	entries []Entry
}

// New builds a directory from entries, copying the slice.
// Entries without an ID get their 1-based position.
func New(entries []Entry) Directory {
	out := make([]Entry, len(entries))
	copy(out, entries)
	for i := range out {
		if out[i].ID == 0 {
			out[i].ID = i + 1
		}
	}
	return Directory{entries: out}
}

// Len returns the number of entries.
func (d Directory) Len() int { return len(d.entries) }

// At returns the entry at index i.
func (d Directory) At(i int) Entry { return d.entries[i] }

// Entries returns a copy of all entries in directory order.
func (d Directory) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// file is the on-disk shape when entries are nested under a key.
type file struct {
	Entries []Entry `yaml:"entries"`
}

// Load reads a directory from a YAML file. The file holds either a list of
// entries or a mapping with an "entries" list.
func Load(path string) (Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Directory{}, fmt.Errorf("reading directory: %w", err)
	}
	return Parse(data)
}

// Parse decodes directory YAML and validates every entry.
func Parse(data []byte) (Directory, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return Directory{}, fmt.Errorf("parsing directory: %w", err)
	}

	var entries []Entry
	if len(node.Content) > 0 {
		root := node.Content[0]
		switch root.Kind {
		case yaml.SequenceNode:
			if err := root.Decode(&entries); err != nil {
				return Directory{}, fmt.Errorf("parsing directory: %w", err)
			}
		case yaml.MappingNode:
			var f file
			if err := root.Decode(&f); err != nil {
				return Directory{}, fmt.Errorf("parsing directory: %w", err)
			}
			entries = f.Entries
		default:
			return Directory{}, fmt.Errorf("parsing directory: expected a list or an entries mapping")
		}
	}

	for i, e := range entries {
		if strings.TrimSpace(e.Label) == "" {
			return Directory{}, fmt.Errorf("entry %d: label is required", i+1)
		}
	}
	return New(entries), nil
}

// Markdown renders the directory as a markdown table.
func Markdown(d Directory) string {
	var b strings.Builder
	b.WriteString("# Directory\n\n")
	if d.Len() == 0 {
		b.WriteString("_No entries._\n")
		return b.String()
	}
	b.WriteString("| # | Name | Mail | Image |\n")
	b.WriteString("|---|------|------|-------|\n")
	for _, e := range d.entries {
		fmt.Fprintf(&b, "| %d | %s | %s | [link](%s) |\n",
			e.ID, escapeCell(e.Label), escapeCell(e.MailID), e.Image)
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
