// Package picker holds the selection state of a people picker: the text
// typed so far, the chips committed, and the dropdown derived from both.
//
// Every transition is total. Out-of-range indices are clamped or ignored and
// removing an unknown chip does nothing.
package picker

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/stefanclaw/chippick/internal/directory"
)

// NoHighlight is the highlight index when no dropdown row is highlighted.
const NoHighlight = -1

// Chip is a committed selection.
type Chip struct {
	ID     string `yaml:"id"`
	Label  string `yaml:"label"`
	Image  string `yaml:"image"`
	MailID string `yaml:"mailId"`
}

// IDFunc returns a chip identifier that has never been returned before.
type IDFunc func() string

// NewChipID returns a time-ordered UUID, so chips created later sort later.
func NewChipID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Filter returns the directory entries whose label contains text
// (case-insensitively) and is not already used by a chip, in directory order.
func Filter(text string, chips []Chip, dir directory.Directory) []directory.Entry {
	needle := strings.ToLower(text)
	taken := make(map[string]struct{}, len(chips))
	for _, c := range chips {
		taken[strings.ToLower(c.Label)] = struct{}{}
	}

	out := []directory.Entry{}
	for i := 0; i < dir.Len(); i++ {
		e := dir.At(i)
		label := strings.ToLower(e.Label)
		if !strings.Contains(label, needle) {
			continue
		}
		if _, ok := taken[label]; ok {
			continue
		}
		out = append(out, e)
	}
	return out
}

// State is the interaction state of one picker instance.
type State struct {
	dir       directory.Directory
	newID     IDFunc
	text      string
	chips     []Chip
	visible   bool
	highlight int
	filtered  []directory.Entry
}

// New returns an empty picker over dir. A nil newID uses NewChipID.
func New(dir directory.Directory, newID IDFunc) State {
	if newID == nil {
		newID = NewChipID
	}
	s := State{dir: dir, newID: newID}
	s.recompute()
	return s
}

// Text returns the current input text.
func (s State) Text() string { return s.text }

// Chips returns a copy of the committed chips in commit order.
func (s State) Chips() []Chip { return slices.Clone(s.chips) }

// DropdownVisible reports whether the dropdown is shown.
func (s State) DropdownVisible() bool { return s.visible }

// Highlight returns the highlighted dropdown index, or NoHighlight.
func (s State) Highlight() int { return s.highlight }

// Filtered returns a copy of the entries currently offered by the dropdown.
func (s State) Filtered() []directory.Entry { return slices.Clone(s.filtered) }

// Directory returns the directory the picker searches.
func (s State) Directory() directory.Directory { return s.dir }

func (s *State) recompute() {
	s.filtered = Filter(s.text, s.chips, s.dir)
	s.highlight = NoHighlight
}

// SetText records an edit of the input text and shows the dropdown.
func (s *State) SetText(v string) {
	s.visible = true
	if v == s.text {
		return
	}
	s.text = v
	s.recompute()
}

// ClickInput shows the dropdown without touching the text.
func (s *State) ClickInput() {
	s.visible = true
}

// HideDropdown hides the dropdown.
func (s *State) HideDropdown() {
	s.visible = false
}

// ArrowDown moves the highlight one row down, stopping at the last row.
func (s *State) ArrowDown() {
	if s.highlight < len(s.filtered)-1 {
		s.highlight++
	}
}

// ArrowUp moves the highlight one row up, stopping at NoHighlight.
func (s *State) ArrowUp() {
	if s.highlight > 0 {
		s.highlight--
		return
	}
	s.highlight = NoHighlight
}

// Enter commits the highlighted entry. It returns the new chip, or false
// when nothing is highlighted.
func (s *State) Enter() (Chip, bool) {
	return s.ClickEntry(s.highlight)
}

// ClickEntry commits the dropdown entry at index i.
func (s *State) ClickEntry(i int) (Chip, bool) {
	if i < 0 || i >= len(s.filtered) {
		return Chip{}, false
	}
	return s.Commit(s.filtered[i]), true
}

// Commit turns e into a chip with a fresh ID, clears the text and hides
// the dropdown.
func (s *State) Commit(e directory.Entry) Chip {
	c := Chip{
		ID:     s.newID(),
		Label:  e.Label,
		Image:  e.Image,
		MailID: e.MailID,
	}
	s.chips = append(slices.Clip(s.chips), c)
	s.text = ""
	s.visible = false
	s.recompute()
	return c
}

// Backspace removes the last chip when the text is empty. It reports
// whether the key was consumed; when false the caller deletes text as usual.
func (s *State) Backspace() (Chip, bool) {
	if s.text != "" || len(s.chips) == 0 {
		return Chip{}, false
	}
	last := s.chips[len(s.chips)-1]
	s.Remove(last.ID)
	return last, true
}

// Remove deletes the chip with the given ID. It reports whether a chip was
// removed.
func (s *State) Remove(id string) bool {
	i := slices.IndexFunc(s.chips, func(c Chip) bool { return c.ID == id })
	if i < 0 {
		return false
	}
	s.chips = slices.Delete(slices.Clone(s.chips), i, i+1)
	s.recompute()
	return true
}
