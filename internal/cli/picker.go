package cli

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/darkstore/rackplan/pkg/catalog"
)

// List styles.
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// scenarioEntry is one selectable scenario file.
type scenarioEntry struct {
	Path string
	Name string
}

// scenarioListModel is the bubbletea model for interactive scenario selection.
type scenarioListModel struct {
	Entries  []scenarioEntry
	Cursor   int
	Selected *scenarioEntry
	Height   int
	Offset   int
}

func newScenarioListModel(entries []scenarioEntry) scenarioListModel {
	return scenarioListModel{Entries: entries, Height: 15}
}

func (m scenarioListModel) Init() tea.Cmd {
	return nil
}

func (m scenarioListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			entry := m.Entries[m.Cursor]
			m.Selected = &entry
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m scenarioListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Scenario"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Entries) {
		end = len(m.Entries)
	}

	for i := m.Offset; i < end; i++ {
		e := m.Entries[i]
		line := "  " + e.Name + listDimStyle.Render("  "+e.Path)
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render("▸ "+e.Name) + listDimStyle.Render("  "+e.Path))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// pickScenario lists the TOML files under dir and lets the user pick one
// interactively. It returns the chosen path, or "" if the user quit.
func pickScenario(dir string) (string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.toml"))
	if err != nil {
		return "", err
	}
	sort.Strings(paths)

	var entries []scenarioEntry
	for _, p := range paths {
		name := strings.TrimSuffix(filepath.Base(p), ".toml")
		if s, err := catalog.LoadScenario(p); err == nil && s.Name != "" {
			name = s.Name
		}
		entries = append(entries, scenarioEntry{Path: p, Name: name})
	}
	if len(entries) == 0 {
		return "", nil
	}

	model, err := tea.NewProgram(newScenarioListModel(entries), tea.WithOutput(os.Stderr)).Run()
	if err != nil {
		return "", err
	}
	if m, ok := model.(scenarioListModel); ok && m.Selected != nil {
		return m.Selected.Path, nil
	}
	return "", nil
}
