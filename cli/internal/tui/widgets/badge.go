// ABOUTME: Status levels, colors, and inline badges for wall and processor status
// ABOUTME: Grades processor usage and renders verdict and edit-delta badges

package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/ledwall-calc/cli/internal/tui/icons"
)

// StatusLevel represents the severity of a status
type StatusLevel int

const (
	StatusOK StatusLevel = iota
	StatusWarning
	StatusCritical
	StatusInfo
	StatusNeutral
)

// Processor usage grading, in percent of the processor's pixel capacity
const (
	UsageWarn     = 80.0
	UsageCritical = 95.0
)

type levelStyle struct {
	bg, fg lipgloss.Color
	icon   func() string
}

var levels = map[StatusLevel]levelStyle{
	StatusOK:       {lipgloss.Color("#10B981"), lipgloss.Color("#FFFFFF"), icons.CheckOK.String},
	StatusWarning:  {lipgloss.Color("#F59E0B"), lipgloss.Color("#000000"), icons.Warning.String},
	StatusCritical: {lipgloss.Color("#EF4444"), lipgloss.Color("#FFFFFF"), icons.Critical.String},
	StatusInfo:     {lipgloss.Color("#3B82F6"), lipgloss.Color("#FFFFFF"), icons.Info.String},
	StatusNeutral:  {lipgloss.Color("#6B7280"), lipgloss.Color("#FFFFFF"), func() string { return "•" }},
}

func styleFor(level StatusLevel) levelStyle {
	if s, ok := levels[level]; ok {
		return s
	}
	return levels[StatusNeutral]
}

// Color returns the accent color of a status level
func Color(level StatusLevel) lipgloss.Color {
	return styleFor(level).bg
}

// Badge renders text on the level's background color
func Badge(text string, level StatusLevel) string {
	s := styleFor(level)
	return lipgloss.NewStyle().
		Background(s.bg).
		Foreground(s.fg).
		Padding(0, 1).
		Bold(true).
		Render(text)
}

// StatusFromPercent grades a percentage against warn and critical thresholds
func StatusFromPercent(percent, warnThreshold, critThreshold float64) StatusLevel {
	switch {
	case percent >= critThreshold:
		return StatusCritical
	case percent >= warnThreshold:
		return StatusWarning
	default:
		return StatusOK
	}
}

// StatusIcon returns the level's icon in its color
func StatusIcon(level StatusLevel) string {
	s := styleFor(level)
	return lipgloss.NewStyle().Foreground(s.bg).Render(s.icon())
}

// StatusText returns colored text prefixed by the level's icon
func StatusText(text string, level StatusLevel) string {
	return fmt.Sprintf("%s %s", StatusIcon(level), lipgloss.NewStyle().Foreground(Color(level)).Render(text))
}

// DeltaBadge renders a change indicator. Growth is amber when higherIsWorse
// (power, weight) and green otherwise.
func DeltaBadge(delta float64, format string, higherIsWorse bool) string {
	if delta == 0 {
		return Badge("±0", StatusNeutral)
	}

	level := StatusOK
	if (delta > 0) == higherIsWorse {
		level = StatusWarning
	}
	return Badge(fmt.Sprintf("%+"+format, delta), level)
}

// VerdictLevel maps a processor verdict to a status level: incompatible is
// critical, compatible is graded by usage.
func VerdictLevel(compatible bool, usagePercent float64) StatusLevel {
	if !compatible {
		return StatusCritical
	}
	return StatusFromPercent(usagePercent, UsageWarn, UsageCritical)
}

// VerdictBadge renders "FITS" or the incompatibility reason
func VerdictBadge(compatible bool, reason string) string {
	if compatible {
		return Badge("FITS", StatusOK)
	}
	return Badge(strings.ToUpper(reason), StatusCritical)
}
