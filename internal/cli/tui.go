package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alansaviolobo/atlaskit/pkg/layers"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// typeListModel is the bubbletea model for interactive layer-type
// selection.
type typeListModel struct {
	types    []string
	cursor   int
	selected string
}

func newTypeListModel() typeListModel {
	return typeListModel{types: layers.Types()}
}

func (m typeListModel) Init() tea.Cmd {
	return nil
}

func (m typeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.types)-1 {
				m.cursor++
			}
		case "enter":
			m.selected = m.types[m.cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m typeListModel) View() string {
	s := StyleTitle.Render("Select a layer type") + "\n\n"

	for i, name := range m.types {
		spec, _ := layers.Spec(name)

		line := "  " + listNormalStyle.Render(name)
		if i == m.cursor {
			line = listSelectedStyle.Render("> " + name)
		}
		s += line + " " + listDimStyle.Render(spec.Description) + "\n"
	}

	s += "\n" + listDimStyle.Render("↑/↓ move · enter select · q quit") + "\n"
	return s
}

// pickLayerType runs the interactive picker and returns the chosen type.
// The boolean is false when the user quit without selecting.
func pickLayerType() (string, bool, error) {
	model, err := tea.NewProgram(newTypeListModel()).Run()
	if err != nil {
		return "", false, fmt.Errorf("run type picker: %w", err)
	}

	final, ok := model.(typeListModel)
	if !ok || final.selected == "" {
		return "", false, nil
	}
	return final.selected, true, nil
}
