package picker

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stefanclaw/chippick/internal/directory"
)

// counter returns an IDFunc yielding "chip-1", "chip-2", ...
func counter() IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("chip-%d", n)
	}
}

func labels[T directory.Entry | Chip](items []T) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		switch v := any(it).(type) {
		case directory.Entry:
			out = append(out, v.Label)
		case Chip:
			out = append(out, v.Label)
		}
	}
	return out
}

func threePeople() directory.Directory {
	return directory.New([]directory.Entry{
		{Label: "Alice Adams", MailID: "alice@example.com"},
		{Label: "Bob Brown", MailID: "bob@example.com"},
		{Label: "Carol Clark", MailID: "carol@example.com"},
	})
}

func TestNewState(t *testing.T) {
	s := New(threePeople(), counter())

	assert.Equal(t, "", s.Text())
	assert.Empty(t, s.Chips())
	assert.False(t, s.DropdownVisible())
	assert.Equal(t, NoHighlight, s.Highlight())
	assert.Equal(t, []string{"Alice Adams", "Bob Brown", "Carol Clark"}, labels(s.Filtered()))
}

func TestFilter(t *testing.T) {
	dir := directory.Default()
	tests := []struct {
		name  string
		text  string
		chips []Chip
		want  []string
	}{
		{"empty text matches all", "", nil, []string{"Nick Giannopoulos", "John Doe", "Jane Smith", "Vamsi", "NagRaj"}},
		{"case insensitive", "JOHN", nil, []string{"John Doe"}},
		{"substring in the middle", "an", nil, []string{"Nick Giannopoulos", "Jane Smith"}},
		{"keeps directory order", "a", nil, []string{"Nick Giannopoulos", "Jane Smith", "Vamsi", "NagRaj"}},
		{"excludes chipped labels", "", []Chip{{Label: "john doe"}, {Label: "VAMSI"}}, []string{"Nick Giannopoulos", "Jane Smith", "NagRaj"}},
		{"no match", "zzz", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, labels(Filter(tt.text, tt.chips, dir)))
		})
	}
}

// TestFilterExhaustive checks the filter against a direct reading of its
// contract for every substring of every label and every subset of chips.
func TestFilterExhaustive(t *testing.T) {
	dir := directory.Default()
	entries := dir.Entries()

	var texts []string
	texts = append(texts, "", "x", "N", "DOE")
	for _, e := range entries {
		for i := 0; i < len(e.Label); i++ {
			texts = append(texts, e.Label[i:min(i+2, len(e.Label))])
		}
	}

	for mask := 0; mask < 1<<len(entries); mask++ {
		var chips []Chip
		for i, e := range entries {
			if mask&(1<<i) != 0 {
				chips = append(chips, Chip{Label: strings.ToUpper(e.Label)})
			}
		}
		for _, text := range texts {
			var want []string
			for i, e := range entries {
				if mask&(1<<i) != 0 {
					continue
				}
				if strings.Contains(strings.ToLower(e.Label), strings.ToLower(text)) {
					want = append(want, e.Label)
				}
			}
			got := labels(Filter(text, chips, dir))
			if len(want) == 0 {
				assert.Empty(t, got, "text=%q mask=%b", text, mask)
				continue
			}
			assert.Equal(t, want, got, "text=%q mask=%b", text, mask)
		}
	}
}

func TestSetText(t *testing.T) {
	s := New(directory.Default(), counter())

	s.SetText("jo")
	assert.Equal(t, "jo", s.Text())
	assert.True(t, s.DropdownVisible())
	assert.Equal(t, []string{"John Doe"}, labels(s.Filtered()))
}

func TestSetTextResetsHighlight(t *testing.T) {
	s := New(directory.Default(), counter())
	s.SetText("a")
	s.ArrowDown()
	s.ArrowDown()
	require.Equal(t, 1, s.Highlight())

	s.SetText("an")
	assert.Equal(t, NoHighlight, s.Highlight())
}

func TestSetTextSameValueKeepsHighlight(t *testing.T) {
	s := New(directory.Default(), counter())
	s.SetText("a")
	s.ArrowDown()
	s.HideDropdown()

	s.SetText("a")
	assert.Equal(t, 0, s.Highlight())
	assert.True(t, s.DropdownVisible())
}

func TestClickInput(t *testing.T) {
	s := New(directory.Default(), counter())
	s.SetText("ja")
	s.ArrowDown()
	s.HideDropdown()

	s.ClickInput()
	assert.True(t, s.DropdownVisible())
	assert.Equal(t, "ja", s.Text())
	assert.Equal(t, 0, s.Highlight())
}

func TestArrowClamping(t *testing.T) {
	s := New(threePeople(), counter())
	require.Len(t, s.Filtered(), 3)

	for range 3 {
		s.ArrowDown()
	}
	assert.Equal(t, 2, s.Highlight())
	s.ArrowDown()
	assert.Equal(t, 2, s.Highlight())

	for range 3 {
		s.ArrowUp()
	}
	assert.Equal(t, NoHighlight, s.Highlight())
	s.ArrowUp()
	assert.Equal(t, NoHighlight, s.Highlight())
}

func TestArrowDownEmptyList(t *testing.T) {
	s := New(threePeople(), counter())
	s.SetText("nobody")
	require.Empty(t, s.Filtered())

	s.ArrowDown()
	assert.Equal(t, NoHighlight, s.Highlight())
}

func TestEnterWithoutHighlight(t *testing.T) {
	s := New(threePeople(), counter())
	s.SetText("bob")

	_, ok := s.Enter()
	assert.False(t, ok)
	assert.Empty(t, s.Chips())
	assert.Equal(t, "bob", s.Text())
	assert.True(t, s.DropdownVisible())
}

func TestCommit(t *testing.T) {
	s := New(threePeople(), counter())
	s.SetText("car")
	s.ArrowDown()

	chip, ok := s.Enter()
	require.True(t, ok)
	assert.Equal(t, Chip{ID: "chip-1", Label: "Carol Clark", MailID: "carol@example.com"}, chip)
	assert.Equal(t, []Chip{chip}, s.Chips())
	assert.Equal(t, "", s.Text())
	assert.False(t, s.DropdownVisible())
	assert.Equal(t, NoHighlight, s.Highlight())
	assert.Equal(t, []string{"Alice Adams", "Bob Brown"}, labels(s.Filtered()))
}

func TestClickEntryOutOfRange(t *testing.T) {
	s := New(threePeople(), counter())

	for _, i := range []int{-1, 3, 100} {
		_, ok := s.ClickEntry(i)
		assert.False(t, ok, "index %d", i)
	}
	assert.Empty(t, s.Chips())
}

func TestBackspace(t *testing.T) {
	s := New(threePeople(), counter())
	for range 3 {
		s.ClickEntry(0)
	}
	require.Equal(t, []string{"Alice Adams", "Bob Brown", "Carol Clark"}, labels(s.Chips()))

	removed, ok := s.Backspace()
	require.True(t, ok)
	assert.Equal(t, "Carol Clark", removed.Label)
	assert.Equal(t, []string{"Alice Adams", "Bob Brown"}, labels(s.Chips()))
}

func TestBackspaceWithText(t *testing.T) {
	s := New(threePeople(), counter())
	for range 3 {
		s.ClickEntry(0)
	}
	s.SetText("x")

	_, ok := s.Backspace()
	assert.False(t, ok)
	assert.Len(t, s.Chips(), 3)
}

func TestBackspaceNoChips(t *testing.T) {
	s := New(threePeople(), counter())

	_, ok := s.Backspace()
	assert.False(t, ok)
}

func TestRemove(t *testing.T) {
	s := New(threePeople(), counter())
	for range 3 {
		s.ClickEntry(0)
	}
	before := s.Chips()

	assert.True(t, s.Remove(before[1].ID))
	assert.Equal(t, []Chip{before[0], before[2]}, s.Chips())
	assert.Equal(t, []string{"Bob Brown"}, labels(s.Filtered()))
}

func TestRemoveUnknownIsNoop(t *testing.T) {
	s := New(threePeople(), counter())
	s.ClickEntry(0)
	s.SetText("b")
	s.ArrowDown()
	before := s.Chips()

	assert.False(t, s.Remove("stale"))
	assert.Equal(t, before, s.Chips())
	assert.Equal(t, 0, s.Highlight())
}

func TestChipIdentityUniqueness(t *testing.T) {
	s := New(threePeople(), nil)

	first := s.Commit(s.Directory().At(1))
	require.True(t, s.Remove(first.ID))
	second := s.Commit(s.Directory().At(1))

	assert.Equal(t, first.Label, second.Label)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestNoDuplicateLabels(t *testing.T) {
	dir := directory.New([]directory.Entry{
		{Label: "Sam"}, {Label: "SAM"}, {Label: "Pat"}, {Label: "sam lee"},
	})
	s := New(dir, counter())

	// Commit whatever is first in the dropdown until nothing is left.
	for len(s.Filtered()) > 0 {
		s.ClickEntry(0)
		seen := map[string]bool{}
		for _, c := range s.Chips() {
			key := strings.ToLower(c.Label)
			require.False(t, seen[key], "duplicate chip label %q", c.Label)
			seen[key] = true
		}
	}
	assert.Equal(t, []string{"Sam", "Pat", "sam lee"}, labels(s.Chips()))
}

func TestChipsReturnsCopy(t *testing.T) {
	s := New(threePeople(), counter())
	s.ClickEntry(0)

	chips := s.Chips()
	chips[0].Label = "changed"
	assert.Equal(t, "Alice Adams", s.Chips()[0].Label)
}

func TestCopiedStateIsIndependent(t *testing.T) {
	s := New(threePeople(), counter())
	s.ClickEntry(0)

	snapshot := s
	s.ClickEntry(0)
	s.Remove(s.Chips()[0].ID)

	assert.Equal(t, []string{"Alice Adams"}, labels(snapshot.Chips()))
}

func TestEndToEnd(t *testing.T) {
	dir := directory.New([]directory.Entry{{Label: "John Doe", MailID: "john@example.com"}})
	s := New(dir, counter())

	s.SetText("john")
	require.Equal(t, []string{"John Doe"}, labels(s.Filtered()))

	s.ArrowDown()
	require.Equal(t, 0, s.Highlight())

	chip, ok := s.Enter()
	require.True(t, ok)
	assert.Equal(t, "John Doe", chip.Label)
	assert.Equal(t, "chip-1", chip.ID)
	assert.Equal(t, "", s.Text())
	assert.False(t, s.DropdownVisible())

	s.SetText("john")
	assert.Empty(t, s.Filtered())
	assert.True(t, s.DropdownVisible())
}

func TestNewChipIDUnique(t *testing.T) {
	seen := map[string]bool{}
	for range 1000 {
		id := NewChipID()
		require.False(t, seen[id])
		seen[id] = true
	}
}
