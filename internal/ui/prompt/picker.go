package prompt

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/raphi011/bump/internal/ui/styles"
)

var (
	selectedStyle   = lipgloss.NewStyle().Foreground(styles.Accent).Bold(true)
	unselectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle        = lipgloss.NewStyle().Foreground(styles.Muted)
)

// Picker is an interactive fuzzy-filtered chooser.
type Picker struct{}

func (p *Picker) Choose(prompt string, options []string) (Choice, error) {
	if len(options) == 0 {
		return Choice{Cancelled: true}, nil
	}

	model := newPickerModel(prompt, options)
	prog := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	final, err := prog.Run()
	if err != nil {
		return Choice{}, err
	}

	m := final.(pickerModel)
	if m.cancelled || m.selected < 0 {
		return Choice{Cancelled: true}, nil
	}
	return Choice{Index: m.selected, Value: options[m.selected]}, nil
}

// pickerModel is the bubbletea model for option selection.
type pickerModel struct {
	prompt    string
	options   []string
	filtered  []fuzzy.Match
	textInput textinput.Model
	cursor    int
	selected  int
	cancelled bool
	maxHeight int
}

func newPickerModel(prompt string, options []string) pickerModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40

	m := pickerModel{
		prompt:    prompt,
		options:   options,
		textInput: ti,
		selected:  -1,
		maxHeight: 10,
	}
	m.filtered = m.filter("")
	return m
}

func (m pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
				m.selected = m.filtered[m.cursor].Index
			}
			return m, tea.Quit

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)

	m.filtered = m.filter(m.textInput.Value())
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}

	return m, cmd
}

// filter ranks options against the query. An empty query keeps the
// original order.
func (m pickerModel) filter(query string) []fuzzy.Match {
	if query == "" {
		matches := make([]fuzzy.Match, len(m.options))
		for i, opt := range m.options {
			matches[i] = fuzzy.Match{Str: opt, Index: i}
		}
		return matches
	}
	return fuzzy.Find(query, m.options)
}

func (m pickerModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Bold.Render(m.prompt))
	b.WriteString("\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(dimStyle.Render("no matches"))
		b.WriteString("\n")
	}

	shown := min(len(m.filtered), m.maxHeight)
	for i := 0; i < shown; i++ {
		option := m.filtered[i].Str
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + option))
		} else {
			b.WriteString(unselectedStyle.Render("  " + option))
		}
		b.WriteString("\n")
	}
	if len(m.filtered) > shown {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  … %d more", len(m.filtered)-shown)))
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render("↑/↓ move · enter select · esc cancel"))
	b.WriteString("\n")
	return b.String()
}
