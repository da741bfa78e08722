// ABOUTME: Wall configuration wizard as a bubbletea model
// ABOUTME: Uses huh forms with visual progress indicator for cabinet, grid, and curve steps

package wizard

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/ledwall-calc/backend/catalog"
	"github.com/markalston/ledwall-calc/backend/models"
	"github.com/markalston/ledwall-calc/cli/internal/tui/icons"
	"github.com/markalston/ledwall-calc/cli/internal/tui/styles"
)

// Grid and angle bounds accepted by the form, matching backend validation
const (
	maxGridSize = 1000
	maxSpares   = 10000
	maxAngleDeg = 90.0
)

// WizardCompleteMsg is sent when the wizard finishes successfully
type WizardCompleteMsg struct {
	Config models.WallConfig
}

// WizardCancelledMsg is sent when the wizard is cancelled
type WizardCancelledMsg struct{}

// Wizard collects a WallConfig as a bubbletea model
type Wizard struct {
	cat   *catalog.Catalog
	cfg   models.WallConfig
	form  *huh.Form
	step  int
	width int

	// Form field values (strings for huh inputs)
	cabinetID string
	cols      string
	rows      string
	angle     string
	spares    string
}

// Step names for progress indicator
var stepNames = []string{"Cabinet", "Grid", "Curve & Spares"}

// createTheme tints huh's base theme with the configurator palette
func createTheme() *huh.Theme {
	t := huh.ThemeBase()
	accent := lipgloss.NewStyle().Foreground(styles.Accent)
	muted := lipgloss.NewStyle().Foreground(styles.Muted)
	danger := lipgloss.NewStyle().Foreground(styles.Danger)

	t.Group.Title = accent.Bold(true).MarginBottom(1)
	t.Group.Description = muted.MarginBottom(1)

	f := &t.Focused
	f.Base = f.Base.BorderStyle(lipgloss.ThickBorder()).BorderForeground(styles.Accent)
	f.Title = accent.Bold(true)
	f.Description = muted
	f.ErrorIndicator = danger.SetString(" *")
	f.ErrorMessage = danger
	f.SelectSelector = accent.SetString("> ")
	f.Option = lipgloss.NewStyle().Foreground(styles.Bright)
	f.SelectedOption = accent
	f.TextInput.Cursor = accent
	f.TextInput.Prompt = accent
	f.TextInput.Placeholder = muted
	f.FocusedButton = lipgloss.NewStyle().Foreground(styles.Bright).Background(styles.Primary).Padding(0, 2).Bold(true)
	f.BlurredButton = muted.Background(styles.Surface).Padding(0, 2)

	t.Blurred = *f
	t.Blurred.Base = f.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Title = muted
	t.Blurred.SelectSelector = lipgloss.NewStyle().SetString("  ")
	return t
}

// New creates a wizard pre-filled with the current configuration
func New(cat *catalog.Catalog, current models.WallConfig) *Wizard {
	cabinetID := current.CabinetID
	if _, ok := cat.LookupCabinet(cabinetID); !ok {
		cabinetID = cat.DefaultCabinet().ID
	}

	w := &Wizard{
		cat:       cat,
		cfg:       current,
		step:      1,
		cabinetID: cabinetID,
		cols:      strconv.Itoa(current.Cols),
		rows:      strconv.Itoa(current.Rows),
		angle:     strconv.FormatFloat(current.CurveAngle, 'f', -1, 64),
		spares:    strconv.Itoa(current.Spares),
	}

	w.form = w.createStep1Form()
	return w
}

// cabinetOptions lists every catalog cabinet as "Brand P2.6 - Model (500x500)"
func cabinetOptions(cat *catalog.Catalog) []huh.Option[string] {
	cabinets := cat.Cabinets()
	opts := make([]huh.Option[string], 0, len(cabinets))
	for _, c := range cabinets {
		opts = append(opts, huh.NewOption(strings.TrimSpace(c.Brand+" "+c.Label()), c.ID))
	}
	return opts
}

func (w *Wizard) createStep1Form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Cabinet model").
				Description("Use ↑/↓ to select, Enter to confirm").
				Options(cabinetOptions(w.cat)...).
				Value(&w.cabinetID),
		).Title("Step 1: Cabinet").
			Description("Every cabinet in the wall is the same model"),
	).WithTheme(createTheme())
}

func (w *Wizard) createStep2Form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Columns").
				Description("Cabinets across").
				Placeholder("e.g., 10").
				CharLimit(4).
				Value(&w.cols).
				Validate(validateGridSize),
			huh.NewInput().
				Title("Rows").
				Description("Cabinets high").
				Placeholder("e.g., 6").
				CharLimit(4).
				Value(&w.rows).
				Validate(validateGridSize),
		).Title("Step 2: Grid").
			Description("How many cabinets make up the wall?"),
	).WithTheme(createTheme())
}

func (w *Wizard) createStep3Form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Curve angle per cabinet").
				Description("Degrees: 0 flat, positive concave, negative convex").
				Placeholder("e.g., 5").
				CharLimit(6).
				Value(&w.angle).
				Validate(validateAngle),
			huh.NewInput().
				Title("Spare cabinets").
				Description("Held in reserve; they add weight and power but no pixels").
				Placeholder("e.g., 4").
				CharLimit(5).
				Value(&w.spares).
				Validate(validateSpares),
		).Title("Step 3: Curve & Spares").
			Description("Shape the wall and plan the reserve stock"),
	).WithTheme(createTheme())
}

// Init implements tea.Model
func (w *Wizard) Init() tea.Cmd {
	return w.form.Init()
}

// Update implements tea.Model
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		form, cmd := w.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			w.form = f
		}
		return w, cmd

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return w, func() tea.Msg { return WizardCancelledMsg{} }
		}
	}

	form, cmd := w.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.form = f
	}

	if w.form.State == huh.StateCompleted {
		return w.advanceStep()
	}

	return w, cmd
}

func (w *Wizard) advanceStep() (tea.Model, tea.Cmd) {
	switch w.step {
	case 1:
		w.cfg.CabinetID = w.cabinetID
		w.step = 2
		w.form = w.createStep2Form()
		return w, w.form.Init()

	case 2:
		w.cfg.Cols, _ = strconv.Atoi(strings.TrimSpace(w.cols))
		w.cfg.Rows, _ = strconv.Atoi(strings.TrimSpace(w.rows))
		w.step = 3
		w.form = w.createStep3Form()
		return w, w.form.Init()

	case 3:
		w.cfg.CurveAngle, _ = strconv.ParseFloat(strings.TrimSpace(w.angle), 64)
		w.cfg.Spares, _ = strconv.Atoi(strings.TrimSpace(w.spares))

		cfg := w.cfg
		return w, func() tea.Msg {
			return WizardCompleteMsg{Config: cfg}
		}
	}

	return w, nil
}

// SetWidth sets the wizard width for proper rendering
func (w *Wizard) SetWidth(width int) {
	w.width = width
}

// Step returns the current step, starting at 1
func (w *Wizard) Step() int {
	return w.step
}

// Config returns the configuration collected so far
func (w *Wizard) Config() models.WallConfig {
	return w.cfg
}

// View implements tea.Model
func (w *Wizard) View() string {
	var sb strings.Builder

	sb.WriteString(w.renderProgress())
	sb.WriteString("\n\n")
	sb.WriteString(w.form.View())

	return sb.String()
}

// renderProgress shows the steps and a preview of the wall collected so far
func (w *Wizard) renderProgress() string {
	// w.width is already one less than the frame; stay one inside it
	width := max(60, w.width-1)

	steps := make([]string, 0, len(stepNames))
	for i, name := range stepNames {
		switch n := i + 1; {
		case n < w.step:
			steps = append(steps, lipgloss.NewStyle().Foreground(styles.Secondary).Render(icons.CheckOK.String())+" "+
				lipgloss.NewStyle().Foreground(styles.Muted).Render(name))
		case n == w.step:
			steps = append(steps, lipgloss.NewStyle().Foreground(styles.Primary).Bold(true).Render("● "+name))
		default:
			steps = append(steps, lipgloss.NewStyle().Foreground(styles.Muted).Render("○ "+name))
		}
	}

	// Border and padding take four columns
	inner := width - 4
	filled := w.step * inner / len(stepNames)
	bar := lipgloss.NewStyle().Foreground(styles.Primary).Render(strings.Repeat("━", filled)) +
		lipgloss.NewStyle().Foreground(styles.Surface).Render(strings.Repeat("─", inner-filled))

	preview := lipgloss.NewStyle().Foreground(styles.Muted).Render(w.preview())

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(styles.Muted).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(steps, "    ") + "\n" + bar + "\n" + preview)
}

// preview summarises the form values, e.g. "10 x 6 ROE Visual BO3, flat, 2 spares"
func (w *Wizard) preview() string {
	cab := w.cat.Cabinet(w.cabinetID)
	s := fmt.Sprintf("%s x %s %s %s", strings.TrimSpace(w.cols), strings.TrimSpace(w.rows), cab.Brand, cab.Model)

	if a, err := strconv.ParseFloat(strings.TrimSpace(w.angle), 64); err == nil && a != 0 {
		s += fmt.Sprintf(", %s°/cab", strconv.FormatFloat(a, 'f', -1, 64))
	} else {
		s += ", flat"
	}
	if n, err := strconv.Atoi(strings.TrimSpace(w.spares)); err == nil && n > 0 {
		s += fmt.Sprintf(", %d spares", n)
	}
	return s
}

func validateGridSize(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 1 || v > maxGridSize {
		return fmt.Errorf("must be a whole number from 1 to %d", maxGridSize)
	}
	return nil
}

func validateSpares(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 || v > maxSpares {
		return fmt.Errorf("must be a whole number from 0 to %d", maxSpares)
	}
	return nil
}

func validateAngle(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < -maxAngleDeg || v > maxAngleDeg {
		return fmt.Errorf("must be between -90 and 90 degrees")
	}
	return nil
}
