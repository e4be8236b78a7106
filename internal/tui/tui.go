package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/stefanclaw/chippick/internal/directory"
	"github.com/stefanclaw/chippick/internal/picker"
)

// Options configures the TUI.
type Options struct {
	Directory   directory.Directory
	Header      string
	Placeholder string
	EmptyText   string
	Logger      *zap.Logger
	NewID       picker.IDFunc // nil uses picker.NewChipID
}

// Model is the Bubble Tea model for the people picker.
type Model struct {
	options Options
	state   picker.State
	input   textinput.Model
	help    help.Model
	keys    keyMap
	log     *zap.Logger
	width   int
	height  int

	ready     bool
	quitting  bool
	confirmed bool
}

// New creates a new TUI model.
func New(opts Options) Model {
	if opts.Header == "" {
		opts.Header = "Pick Users"
	}
	if opts.EmptyText == "" {
		opts.EmptyText = "No items found"
	}
	if opts.Placeholder == "" {
		opts.Placeholder = "Add new user..."
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	ti := textinput.New()
	ti.Placeholder = opts.Placeholder
	ti.Prompt = inputPromptStyle.Render("> ")
	ti.Width = 40
	ti.Focus()

	return Model{
		options: opts,
		state:   picker.New(opts.Directory, opts.NewID),
		input:   ti,
		help:    help.New(),
		keys:    defaultKeyMap(),
		log:     logger,
	}
}

// Chips returns the committed chips.
func (m Model) Chips() []picker.Chip { return m.state.Chips() }

// Confirmed reports whether the user finished with the confirm key rather
// than aborting.
func (m Model) Confirmed() bool { return m.confirmed }

// State returns the picker state behind the view.
func (m Model) State() picker.State { return m.state }

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := m.handleKey(msg); handled {
			return m, cmd
		}

	case tea.MouseMsg:
		if m.ready {
			m.handleMouse(msg)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-3, 1)
		m.ready = true
		return m, nil
	}

	// Anything not intercepted above edits the text.
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.state.SetText(v)
	}
	return m, cmd
}

// handleKey runs the picker's own key bindings. It reports false when the
// key should fall through to the text input.
func (m *Model) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Abort):
		m.quitting = true
		m.log.Info("picker aborted", zap.Int("chips", len(m.state.Chips())))
		return true, tea.Quit

	case key.Matches(msg, m.keys.Confirm):
		m.quitting = true
		m.confirmed = true
		m.log.Info("picker confirmed", zap.Int("chips", len(m.state.Chips())))
		return true, tea.Quit

	case key.Matches(msg, m.keys.Down):
		m.state.ArrowDown()
		return true, nil

	case key.Matches(msg, m.keys.Up):
		m.state.ArrowUp()
		return true, nil

	case key.Matches(msg, m.keys.Select):
		if chip, ok := m.state.Enter(); ok {
			m.committed(chip)
		}
		return true, nil

	case key.Matches(msg, m.keys.Backspace):
		if chip, ok := m.state.Backspace(); ok {
			m.log.Debug("chip removed", zap.String("id", chip.ID), zap.String("label", chip.Label))
			return true, nil
		}
	}
	return false, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
		return
	}

	f := m.render()
	for _, hit := range f.chipHits {
		if msg.Y == hit.row && msg.X >= hit.startX && msg.X < hit.endX {
			if m.state.Remove(hit.id) {
				m.log.Debug("chip removed", zap.String("id", hit.id))
			}
			return
		}
	}

	switch {
	case msg.Y == f.inputRow:
		m.state.ClickInput()
	case f.dropdownRow >= 0 && msg.Y >= f.dropdownRow && msg.Y < f.dropdownRow+f.dropdownLen:
		if chip, ok := m.state.ClickEntry(msg.Y - f.dropdownRow); ok {
			m.committed(chip)
		}
	}
}

func (m *Model) committed(chip picker.Chip) {
	m.input.Reset()
	m.log.Debug("chip committed",
		zap.String("id", chip.ID),
		zap.String("label", chip.Label),
		zap.String("mail", chip.MailID))
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}
	return strings.Join(m.render().lines, "\n")
}
