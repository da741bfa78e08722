// ABOUTME: Recent configuration picker shown from the dashboard
// ABOUTME: Lets the user reload one of the last planned walls with a single selection

package menu

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/markalston/ledwall-calc/backend/models"
)

// ConfigSelectedMsg is sent when the user picks a configuration
type ConfigSelectedMsg struct {
	Config models.WallConfig
}

// CancelledMsg is sent when the user leaves the menu without choosing
type CancelledMsg struct{}

// Menu lists recent wall configurations
type Menu struct {
	configs  []models.WallConfig
	selected int
	form     *huh.Form
}

// New creates a picker over configs, most recent first
func New(configs []models.WallConfig) *Menu {
	m := &Menu{configs: configs}

	options := make([]huh.Option[int], 0, len(configs))
	for i, cfg := range configs {
		options = append(options, huh.NewOption(Describe(cfg), i))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Recent walls").
				Description("Use ↑/↓ to select, Enter to load, Esc to go back").
				Options(options...).
				Value(&m.selected),
		),
	).WithTheme(huh.ThemeBase())

	return m
}

// Describe renders a one-line summary, e.g. "16 x 5 p26-indoor-500, -5°/cab, 4 spares"
func Describe(cfg models.WallConfig) string {
	s := fmt.Sprintf("%d x %d %s", cfg.Cols, cfg.Rows, cfg.CabinetID)
	if cfg.CabinetID == "" {
		s = fmt.Sprintf("%d x %d default cabinet", cfg.Cols, cfg.Rows)
	}
	if cfg.CurveAngle != 0 {
		s += fmt.Sprintf(", %g°/cab", cfg.CurveAngle)
	} else {
		s += ", flat"
	}
	if cfg.Spares > 0 {
		s += fmt.Sprintf(", %d spares", cfg.Spares)
	}
	return s
}

// Len returns the number of configurations offered
func (m *Menu) Len() int {
	return len(m.configs)
}

// Init implements tea.Model
func (m *Menu) Init() tea.Cmd {
	return m.form.Init()
}

// Update implements tea.Model
func (m *Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return m, func() tea.Msg { return CancelledMsg{} }
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.choose(m.selected)
	}
	return m, cmd
}

// choose emits the selection for index i
func (m *Menu) choose(i int) tea.Cmd {
	if i < 0 || i >= len(m.configs) {
		return func() tea.Msg { return CancelledMsg{} }
	}
	cfg := m.configs[i]
	return func() tea.Msg { return ConfigSelectedMsg{Config: cfg} }
}

// View implements tea.Model
func (m *Menu) View() string {
	return m.form.View()
}
