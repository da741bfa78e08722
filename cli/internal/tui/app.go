// ABOUTME: Root bubbletea model for the TUI application
// ABOUTME: Manages screen state, replans on every edit, and routes keyboard input to child components

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/ledwall-calc/backend/models"
	"github.com/markalston/ledwall-calc/backend/services"
	"github.com/markalston/ledwall-calc/cli/internal/client"
	"github.com/markalston/ledwall-calc/cli/internal/tui/comparison"
	"github.com/markalston/ledwall-calc/cli/internal/tui/dashboard"
	"github.com/markalston/ledwall-calc/cli/internal/tui/debuglog"
	"github.com/markalston/ledwall-calc/cli/internal/tui/icons"
	"github.com/markalston/ledwall-calc/cli/internal/tui/menu"
	"github.com/markalston/ledwall-calc/cli/internal/tui/recentconfigs"
	"github.com/markalston/ledwall-calc/cli/internal/tui/styles"
	"github.com/markalston/ledwall-calc/cli/internal/tui/wizard"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenWizard
	ScreenAdvice
	ScreenRecent
)

// Layout constants
const (
	minTerminalWidth = 80 // Minimum width before using single-column layout
	panelPadding     = 4  // Total horizontal padding from panel borders (2 each side)
	maxQuestionLen   = 2000
)

// errNoBackend is reported when the advisor is asked without a backend client
var errNoBackend = errors.New("no backend configured; start the server or pass --api-url")

// adviceMsg is sent when the backend advisor answers
type adviceMsg struct {
	question string
	resp     *models.AdviceResponse
	err      error
}

// App is the root model for the TUI
type App struct {
	planner    *services.Planner
	client     *client.Client
	recent     *recentconfigs.RecentConfigs
	screen     Screen
	width      int
	height     int
	err        error
	lastUpdate time.Time

	// Current and previous plans; every edit replans
	cfg      models.WallConfig
	plan     *models.WallPlan
	previous *models.WallPlan

	// Child models
	dashboard    *dashboard.Dashboard
	compView     *comparison.Comparison
	wizardScreen *wizard.Wizard
	recentMenu   *menu.Menu

	// Advisor screen
	question   textinput.Model
	spinner    spinner.Model
	asking     bool
	answer     *models.AdviceResponse
	asked      string
	adviceErr  error
	suggestion int
}

// New creates a new TUI application showing cfg. A nil apiClient disables
// the advisor; a nil recent list keeps no history.
func New(planner *services.Planner, apiClient *client.Client, cfg models.WallConfig, recent *recentconfigs.RecentConfigs) *App {
	if recent == nil {
		recent = recentconfigs.New("")
	}

	q := textinput.New()
	q.Placeholder = "Ask about this wall, or press Tab for a suggestion"
	q.CharLimit = maxQuestionLen

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Accent)

	a := &App{
		planner:  planner,
		client:   apiClient,
		recent:   recent,
		screen:   ScreenDashboard,
		question: q,
		spinner:  sp,
	}
	a.replan(cfg)
	return a
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return nil
}

// replan runs the planner for cfg and keeps the prior plan for comparison
func (a *App) replan(cfg models.WallConfig) {
	plan := a.planner.Plan(cfg)

	a.previous = a.plan
	a.cfg = plan.Config
	a.plan = &plan
	a.lastUpdate = time.Now()
	a.answer = nil
	a.adviceErr = nil

	if a.dashboard == nil {
		a.dashboard = dashboard.New(a.plan, a.dashboardWidth()-panelPadding, a.contentHeight())
	} else {
		a.dashboard.Update(a.plan)
	}
	if a.previous != nil {
		a.compView = comparison.New(a.previous, a.plan, a.actionsWidth()-panelPadding)
	}

	debuglog.Log("planned wall", "cols", cfg.Cols, "rows", cfg.Rows, "cabinet", plan.Cabinet.ID, "angle", cfg.CurveAngle)
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.dashboard.SetSize(a.dashboardWidth()-panelPadding, a.contentHeight())
		if a.compView != nil {
			a.compView.SetWidth(a.actionsWidth() - panelPadding)
		}
		a.question.Width = max(20, a.width-panelPadding*2)
		if a.wizardScreen != nil {
			return a.updateWizard(msg)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.screen {
		case ScreenDashboard:
			return a.updateDashboard(msg)
		case ScreenWizard:
			return a.updateWizard(msg)
		case ScreenAdvice:
			return a.updateAdvice(msg)
		case ScreenRecent:
			return a.updateRecent(msg)
		}

	case wizard.WizardCompleteMsg:
		a.wizardScreen = nil
		a.screen = ScreenDashboard
		a.applyConfig(msg.Config)
		return a, nil

	case wizard.WizardCancelledMsg:
		a.screen = ScreenDashboard
		a.wizardScreen = nil
		return a, nil

	case menu.ConfigSelectedMsg:
		a.recentMenu = nil
		a.screen = ScreenDashboard
		a.applyConfig(msg.Config)
		return a, nil

	case menu.CancelledMsg:
		a.recentMenu = nil
		a.screen = ScreenDashboard
		return a, nil

	case adviceMsg:
		a.asking = false
		a.asked = msg.question
		a.answer = msg.resp
		a.adviceErr = msg.err
		debuglog.Error("advice", msg.err)
		return a, nil

	case spinner.TickMsg:
		if !a.asking {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	default:
		// huh forms need their internal messages delivered
		if a.screen == ScreenWizard && a.wizardScreen != nil {
			return a.updateWizard(msg)
		}
		if a.screen == ScreenRecent && a.recentMenu != nil {
			return a.updateRecent(msg)
		}
		if a.screen == ScreenAdvice {
			var cmd tea.Cmd
			a.question, cmd = a.question.Update(msg)
			return a, cmd
		}
	}

	return a, nil
}

// applyConfig replans for cfg and records it as the most recent wall
func (a *App) applyConfig(cfg models.WallConfig) {
	if err := services.ValidateWallConfig(cfg); err != nil {
		a.err = err
		return
	}
	a.err = nil
	a.replan(cfg)
	if err := a.recent.Add(a.cfg); err != nil {
		debuglog.Error("save recent", err)
	}
}

func (a *App) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "e":
		return a, a.runWizard()
	case "a":
		a.screen = ScreenAdvice
		return a, a.question.Focus()
	case "r":
		if list := a.recent.List(); len(list) > 0 {
			a.recentMenu = menu.New(list)
			a.screen = ScreenRecent
			return a, a.recentMenu.Init()
		}
	}
	return a, nil
}

func (a *App) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.wizardScreen == nil {
		return a, nil
	}
	model, cmd := a.wizardScreen.Update(msg)
	a.wizardScreen = model.(*wizard.Wizard)
	return a, cmd
}

func (a *App) updateRecent(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.recentMenu == nil {
		return a, nil
	}
	model, cmd := a.recentMenu.Update(msg)
	a.recentMenu = model.(*menu.Menu)
	return a, cmd
}

func (a *App) updateAdvice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.question.Blur()
		a.screen = ScreenDashboard
		return a, nil
	case "tab":
		a.question.SetValue(services.SuggestedQuestions[a.suggestion%len(services.SuggestedQuestions)])
		a.question.CursorEnd()
		a.suggestion++
		return a, nil
	case "enter":
		q := strings.TrimSpace(a.question.Value())
		if q == "" || a.asking {
			return a, nil
		}
		a.asking = true
		a.answer = nil
		a.adviceErr = nil
		return a, tea.Batch(a.spinner.Tick, a.askAdvisor(q))
	}

	var cmd tea.Cmd
	a.question, cmd = a.question.Update(msg)
	return a, cmd
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch a.screen {
	case ScreenWizard:
		content = a.viewWizard()
	case ScreenAdvice:
		content = a.viewAdvice()
	case ScreenRecent:
		content = a.viewRecent()
	default:
		content = a.viewDashboard()
	}

	return a.wrapWithFrame(content)
}

// viewDashboard renders the dashboard with the actions and changes pane
func (a *App) viewDashboard() string {
	leftPane := styles.ActivePanel.Width(a.dashboardWidth()).Render(a.dashboard.View())

	var right strings.Builder
	if a.err != nil {
		right.WriteString(styles.StatusCritical.Render("Error: " + a.err.Error()))
		right.WriteString("\n\n")
	}
	right.WriteString(styles.Title.Render(icons.Settings.String() + " Actions"))
	right.WriteString("\n")
	right.WriteString(icons.Edit.String() + " Edit wall\n")
	right.WriteString(icons.Advisor.String() + " Ask the advisor\n")
	if len(a.recent.List()) > 0 {
		right.WriteString(icons.Back.String() + " Recent walls\n")
	}
	right.WriteString(icons.Quit.String() + " Quit application\n")
	if a.compView != nil {
		right.WriteString("\n")
		right.WriteString(a.compView.View())
	}
	rightPane := styles.Panel.Width(a.actionsWidth()).Render(right.String())

	if a.width < minTerminalWidth {
		return lipgloss.JoinVertical(lipgloss.Left, leftPane, rightPane)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)
}

// viewWizard renders the wizard screen
func (a *App) viewWizard() string {
	if a.wizardScreen != nil {
		return a.wizardScreen.View()
	}
	return ""
}

// viewRecent renders the recent walls picker
func (a *App) viewRecent() string {
	if a.recentMenu != nil {
		return a.recentMenu.View()
	}
	return ""
}

// viewAdvice renders the question prompt and the advisor's answer
func (a *App) viewAdvice() string {
	var sb strings.Builder
	width := max(40, a.frameWidth()-panelPadding*2)

	sb.WriteString(styles.Title.Render(icons.Advisor.String() + " Ask the advisor"))
	sb.WriteString("\n")
	sb.WriteString(styles.Subtitle.Render(menu.Describe(a.cfg)))
	sb.WriteString("\n")
	sb.WriteString(a.question.View())
	sb.WriteString("\n\n")

	switch {
	case a.asking:
		sb.WriteString(a.spinner.View() + " Asking the advisor...")
	case a.adviceErr != nil:
		sb.WriteString(styles.StatusCritical.Render(icons.Critical.String() + " " + a.adviceErr.Error()))
	case a.answer != nil:
		sb.WriteString(styles.ValueStyle.Render("Q: " + a.asked))
		sb.WriteString("\n\n")
		sb.WriteString(lipgloss.NewStyle().Width(width).Render(a.answer.Advice))
		if a.answer.Fallback {
			sb.WriteString("\n\n")
			sb.WriteString(styles.StatusWarning.Render(icons.Warning.String() + " The advisor is unavailable; this is the fallback text."))
		} else if a.answer.Cached {
			sb.WriteString("\n\n")
			sb.WriteString(styles.Help.Render(icons.Info.String() + " Cached answer"))
		}
	}

	return styles.ActivePanel.Width(width).Render(sb.String())
}

// frameWidth is the rendered width of the header and footer. It stays one
// column short of the terminal to avoid wrapping, with a usable minimum.
func (a *App) frameWidth() int {
	return max(minTerminalWidth, a.width-1)
}

// dashboardWidth calculates the width for the dashboard pane
func (a *App) dashboardWidth() int {
	if a.width < minTerminalWidth {
		return max(0, a.width-panelPadding)
	}
	return (a.width - panelPadding) * 3 / 5
}

// actionsWidth calculates the width for the actions pane
func (a *App) actionsWidth() int {
	if a.width < minTerminalWidth {
		return max(0, a.width-panelPadding)
	}
	return max(0, a.width-a.dashboardWidth()-panelPadding*2)
}

// contentHeight calculates the height available for dashboard content
func (a *App) contentHeight() int {
	// Header, blank line, panel border+padding (4), blank line, footer
	return max(0, a.height-8)
}

// renderHeader creates the header bar with app branding and the current wall
func (a *App) renderHeader() string {
	width := a.frameWidth()

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	leftText := fmt.Sprintf(" %s %s ", icons.App.String(), titleStyle.Render("LED Wall Calculator"))

	rightText := ""
	if a.plan != nil {
		rightText = " " + contextStyle.Render(fmt.Sprintf("%d x %d %s", a.cfg.Cols, a.cfg.Rows, a.plan.Cabinet.ID)) + " "
	}

	fillWidth := max(0, width-4-lipgloss.Width(leftText)-lipgloss.Width(rightText)) // -4 for ╭─ and ─╮
	header := "╭─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╮"

	return borderStyle.Render(header)
}

// renderFooter creates the footer with keyboard shortcuts and status
func (a *App) renderFooter() string {
	width := a.frameWidth()

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Accent)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	statusStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	var shortcuts []string
	switch a.screen {
	case ScreenDashboard:
		shortcuts = []string{"e Edit", "a Advisor", "q Quit"}
		if len(a.recent.List()) > 0 {
			shortcuts = []string{"e Edit", "a Advisor", "r Recent", "q Quit"}
		}
	case ScreenWizard:
		shortcuts = []string{"↑↓ Select", "Enter Confirm", "Esc Cancel"}
	case ScreenAdvice:
		shortcuts = []string{"Enter Ask", "Tab Suggest", "Esc Back"}
	case ScreenRecent:
		shortcuts = []string{"↑↓ Select", "Enter Load", "Esc Back"}
	}

	var styled []string
	for _, s := range shortcuts {
		parts := strings.SplitN(s, " ", 2)
		styled = append(styled, keyStyle.Render(parts[0])+" "+labelStyle.Render(parts[1]))
	}
	leftText := " " + strings.Join(styled, "  ") + " "

	rightText := ""
	if !a.lastUpdate.IsZero() && a.screen == ScreenDashboard {
		rightText = " " + statusStyle.Render("Planned "+a.formatTimeSince(a.lastUpdate)) + " "
	}

	fillWidth := max(0, width-4-lipgloss.Width(leftText)-lipgloss.Width(rightText)) // -4 for ╰─ and ─╯
	footer := "╰─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╯"

	return borderStyle.Render(footer)
}

// formatTimeSince formats a duration since the given time in human-readable form
func (a *App) formatTimeSince(t time.Time) string {
	d := time.Since(t)

	switch {
	case d < 5*time.Second:
		return "just now"
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	default:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	}
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}

// runWizard transitions to the wizard screen
func (a *App) runWizard() tea.Cmd {
	a.wizardScreen = wizard.New(a.planner.Catalog(), a.cfg)
	a.wizardScreen.SetWidth(a.frameWidth() - 1)
	a.screen = ScreenWizard
	return a.wizardScreen.Init()
}

// askAdvisor sends the question for the current wall to the backend
func (a *App) askAdvisor(question string) tea.Cmd {
	cfg := a.cfg
	c := a.client
	return func() tea.Msg {
		if c == nil {
			return adviceMsg{question: question, err: errNoBackend}
		}
		resp, err := c.Advice(context.Background(), cfg, question)
		return adviceMsg{question: question, resp: resp, err: err}
	}
}

// Run starts the TUI on cfg. With resume set, the most recently planned
// wall replaces cfg when one exists.
func Run(planner *services.Planner, apiClient *client.Client, cfg models.WallConfig, resume bool) error {
	dir := recentconfigs.DefaultConfigDir()
	if err := debuglog.Init(dir); err != nil {
		// Unwritable config dir: no debug log and no history
		dir = ""
	}
	defer debuglog.Close()

	recent := recentconfigs.New(dir)
	if latest, ok := recent.Latest(); ok && resume {
		cfg = latest
	}

	app := New(planner, apiClient, cfg, recent)

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
