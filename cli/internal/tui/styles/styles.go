// ABOUTME: Shared lipgloss styles for the wall configurator screens
// ABOUTME: One palette for panels, titles, stat rows, and advisor warnings

package styles

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	Primary   = lipgloss.Color("#7C3AED") // titles, active panel, wizard progress
	Secondary = lipgloss.Color("#10B981") // completed steps, wall context in the header
	Accent    = lipgloss.Color("#06B6D4") // key hints and the spinner
	Warning   = lipgloss.Color("#F59E0B")
	Danger    = lipgloss.Color("#EF4444")
	Muted     = lipgloss.Color("#6B7280")
	Bright    = lipgloss.Color("#F9FAFB")
	Surface   = lipgloss.Color("#374151") // unfilled bars
)

var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Primary).MarginBottom(1)
	Subtitle = lipgloss.NewStyle().Foreground(Muted).MarginBottom(1)
	Help     = lipgloss.NewStyle().Foreground(Muted).MarginTop(1)

	StatusWarning  = lipgloss.NewStyle().Foreground(Warning).Bold(true)
	StatusCritical = lipgloss.NewStyle().Foreground(Danger).Bold(true)

	// Panel frames an inactive pane; ActivePanel the pane holding focus
	Panel       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Muted).Padding(1, 2)
	ActivePanel = Panel.BorderForeground(Primary)

	// ValueStyle emphasises a figure; LabelStyle is the left column of a stat row
	ValueStyle = lipgloss.NewStyle().Foreground(Bright).Bold(true)
	LabelStyle = lipgloss.NewStyle().Foreground(Muted).Width(16)
)
