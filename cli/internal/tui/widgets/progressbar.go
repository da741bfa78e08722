// ABOUTME: Processor usage bars with warn and critical zones
// ABOUTME: Cells are grouped into same-colored runs so each run is styled once

package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const emptyColor = lipgloss.Color("#374151")

// ProgressBarConfig holds configuration for the progress bar
type ProgressBarConfig struct {
	Width         int
	WarnThreshold float64
	CritThreshold float64
	ShowZones     bool // mark the thresholds in the unfilled part
}

// DefaultProgressBarConfig grades at the processor usage thresholds
func DefaultProgressBarConfig() ProgressBarConfig {
	return ProgressBarConfig{
		Width:         20,
		WarnThreshold: UsageWarn,
		CritThreshold: UsageCritical,
		ShowZones:     true,
	}
}

func clampPercent(p float64) float64 {
	return min(max(p, 0), 100)
}

// cell is one bar position
type cell struct {
	glyph string
	color lipgloss.Color
}

// ProgressBar renders "[███░│░]" where filled cells take the color of the
// zone they fall in
func ProgressBar(percent float64, config ProgressBarConfig) string {
	if config.Width <= 0 {
		config.Width = 20
	}
	w := config.Width
	filled := min(int(clampPercent(percent)/100*float64(w)), w)
	warnPos := int(config.WarnThreshold / 100 * float64(w))
	critPos := int(config.CritThreshold / 100 * float64(w))

	cells := make([]cell, w)
	for i := range cells {
		switch {
		case i < filled:
			level := StatusFromPercent(float64(i), float64(warnPos), float64(critPos))
			cells[i] = cell{"█", Color(level)}
		case config.ShowZones && (i == warnPos || i == critPos):
			cells[i] = cell{"│", emptyColor}
		default:
			cells[i] = cell{"░", emptyColor}
		}
	}

	var bar strings.Builder
	bar.WriteString("[")
	for start := 0; start < len(cells); {
		end := start
		var run strings.Builder
		for end < len(cells) && cells[end].color == cells[start].color {
			run.WriteString(cells[end].glyph)
			end++
		}
		bar.WriteString(lipgloss.NewStyle().Foreground(cells[start].color).Render(run.String()))
		start = end
	}
	bar.WriteString("]")
	return bar.String()
}

// ProgressBarWithLabel appends the percentage and a status icon
func ProgressBarWithLabel(percent float64, config ProgressBarConfig, showPercent bool) string {
	bar := ProgressBar(percent, config)
	if !showPercent {
		return bar
	}

	level := StatusFromPercent(percent, config.WarnThreshold, config.CritThreshold)
	label := lipgloss.NewStyle().Foreground(Color(level)).Render(fmt.Sprintf("%3.0f%%", percent))
	return fmt.Sprintf("%s %s %s", bar, label, StatusIcon(level))
}

// CompactProgressBar renders a bracketless single-color bar
func CompactProgressBar(percent float64, width int, color lipgloss.Color) string {
	if width <= 0 {
		width = 10
	}
	filled := int(clampPercent(percent) / 100 * float64(width))

	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("▓", filled)) +
		lipgloss.NewStyle().Foreground(emptyColor).Render(strings.Repeat("░", width-filled))
}
