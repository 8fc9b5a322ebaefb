package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Accept key.Binding
	Quit   key.Binding
}

func defaultPickerKeys() pickerKeyMap {
	return pickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "accept"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// Picker is a Bubble Tea model that lets the user choose one file among
// several ambiguous candidates.
type Picker struct {
	title   string
	items   []string
	cursor  int
	width   int
	keys    pickerKeyMap
	picked  bool
	aborted bool
}

// NewPicker returns a picker over the candidate list. The list order is
// preserved; the first entry starts selected.
func NewPicker(title string, items []string) *Picker {
	return &Picker{
		title: title,
		items: items,
		width: 80,
		keys:  defaultPickerKeys(),
	}
}

// Choice returns the accepted candidate, or ok=false when the picker was
// cancelled.
func (m *Picker) Choice() (string, bool) {
	if !m.picked || m.aborted || len(m.items) == 0 {
		return "", false
	}
	return m.items[m.cursor], true
}

func (m *Picker) Init() tea.Cmd {
	return nil
}

func (m *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.Accept):
			m.picked = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Quit):
			m.aborted = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	}
	return m, nil
}

func (m *Picker) View() string {
	if len(m.items) == 0 || m.picked || m.aborted {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	nameWidth := m.width - 4
	if nameWidth < 20 {
		nameWidth = 20
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	for i, item := range m.items {
		name := truncate(item, nameWidth)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render(fmt.Sprintf("> %s", name)))
		} else {
			b.WriteString(fmt.Sprintf("  %s", name))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("↑/↓ move, enter accept, esc cancel"))
	b.WriteString("\n")
	return b.String()
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
