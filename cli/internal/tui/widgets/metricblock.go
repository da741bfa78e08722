// ABOUTME: Compact metric block widget for dashboard displays
// ABOUTME: Combines icon, value, subtitle, and an optional usage bar in a bordered panel

package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/ledwall-calc/cli/internal/tui/icons"
)

// MetricBlockConfig holds configuration for a metric block
type MetricBlockConfig struct {
	Width       int
	BorderColor lipgloss.Color
	TitleColor  lipgloss.Color
	ValueColor  lipgloss.Color
}

// DefaultMetricBlockConfig returns sensible defaults
func DefaultMetricBlockConfig() MetricBlockConfig {
	return MetricBlockConfig{
		Width:       24,
		BorderColor: lipgloss.Color("#6B7280"), // Muted gray
		TitleColor:  lipgloss.Color("#06B6D4"), // Cyan
		ValueColor:  lipgloss.Color("#F9FAFB"), // Light
	}
}

// MetricBlock renders a compact metric display block
func MetricBlock(icon icons.Icon, title, value, subtitle string, config MetricBlockConfig) string {
	if config.Width <= 0 {
		config.Width = 24
	}
	innerWidth := config.Width - 4

	valueStyle := lipgloss.NewStyle().Foreground(config.ValueColor).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

	return renderBlock(icon, title, []string{
		valueStyle.Render(truncate(value, innerWidth)),
		subtitleStyle.Render(truncate(subtitle, innerWidth)),
	}, config)
}

// MetricBlockWithBar renders a metric block with a usage bar
func MetricBlockWithBar(icon icons.Icon, title string, percent float64, details string, config MetricBlockConfig) string {
	if config.Width <= 0 {
		config.Width = 24
	}
	innerWidth := config.Width - 4
	barWidth := max(1, innerWidth-6)

	level := StatusFromPercent(percent, UsageWarn, UsageCritical)
	statusColor := Color(level)

	valueStyle := lipgloss.NewStyle().Foreground(statusColor).Bold(true)
	detailStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

	return renderBlock(icon, title, []string{
		fmt.Sprintf("%s %s", valueStyle.Render(fmt.Sprintf("%3.0f%%", percent)), StatusIcon(level)),
		CompactProgressBar(percent, barWidth, statusColor),
		detailStyle.Render(truncate(details, innerWidth)),
	}, config)
}

// renderBlock draws the title-in-border box around pre-styled lines
func renderBlock(icon icons.Icon, title string, lines []string, config MetricBlockConfig) string {
	innerWidth := config.Width - 4
	borderStyle := lipgloss.NewStyle().Foreground(config.BorderColor)
	titleStyle := lipgloss.NewStyle().Foreground(config.TitleColor)

	titleStr := truncate(fmt.Sprintf("%s %s", icon.String(), title), innerWidth-1)
	// "┌─ " + title + " " + fill + "┐" spans the full block width
	fill := max(0, config.Width-5-lipgloss.Width(titleStr))

	out := make([]string, 0, len(lines)+2)
	out = append(out, borderStyle.Render("┌─ ")+titleStyle.Render(titleStr)+borderStyle.Render(" "+strings.Repeat("─", fill)+"┐"))
	for _, line := range lines {
		pad := max(0, innerWidth-lipgloss.Width(line))
		out = append(out, borderStyle.Render("│ ")+line+strings.Repeat(" ", pad)+borderStyle.Render(" │"))
	}
	out = append(out, borderStyle.Render("└"+strings.Repeat("─", config.Width-2)+"┘"))

	return strings.Join(out, "\n")
}

// truncate shortens a string to maxLen runes with ellipsis if needed
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:max(0, maxLen)])
	}
	return string(r[:maxLen-3]) + "..."
}
