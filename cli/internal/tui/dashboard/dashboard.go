// ABOUTME: Dashboard component displaying the derived figures of the current wall
// ABOUTME: Shows metric blocks, curvature, and processor compatibility bars in the left pane

package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/markalston/ledwall-calc/backend/models"
	"github.com/markalston/ledwall-calc/cli/internal/tui/icons"
	"github.com/markalston/ledwall-calc/cli/internal/tui/styles"
	"github.com/markalston/ledwall-calc/cli/internal/tui/widgets"
)

// Layout constants
const (
	blockWidth     = 26
	barWidth       = 20
	processorWidth = 22 // brand + name column
)

// Dashboard displays a wall plan
type Dashboard struct {
	plan   *models.WallPlan
	width  int
	height int
}

// New creates a new dashboard for a plan
func New(plan *models.WallPlan, width, height int) *Dashboard {
	return &Dashboard{
		plan:   plan,
		width:  width,
		height: height,
	}
}

// Update replaces the plan shown by the dashboard
func (d *Dashboard) Update(plan *models.WallPlan) {
	d.plan = plan
}

// SetSize updates the dashboard dimensions
func (d *Dashboard) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// View renders the dashboard
func (d *Dashboard) View() string {
	if d.plan == nil {
		return styles.Panel.Width(d.width).Render("No wall configured yet...")
	}

	p := d.plan
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(fmt.Sprintf("%d x %d %s %s", p.Config.Cols, p.Config.Rows, p.Cabinet.Brand, p.Cabinet.Model)))
	sb.WriteString("\n")
	sb.WriteString(styles.Subtitle.Render(p.Cabinet.Label()))
	sb.WriteString("\n")

	sb.WriteString(d.renderBlocks())
	sb.WriteString("\n\n")

	sb.WriteString(renderRow(icons.Curve, "Curve", curveSummary(p.Stats)))
	sb.WriteString(renderRow(icons.Cabinet, "Cabinets", fmt.Sprintf("%d active + %d spare = %d",
		p.Stats.ActiveCabinets, p.Stats.SpareCabinets(), p.Stats.TotalCabinets)))
	sb.WriteString(renderRow(icons.Port, "Ports", fmt.Sprintf("%d estimated", p.Stats.EstimatedPorts)))
	sb.WriteString("\n")

	sb.WriteString(d.renderProcessors())

	return lipgloss.NewStyle().
		Width(d.width).
		MaxHeight(max(0, d.height)).
		Render(sb.String())
}

// renderBlocks lays out the four headline metrics, two per row when narrow
func (d *Dashboard) renderBlocks() string {
	s := d.plan.Stats
	cfg := widgets.DefaultMetricBlockConfig()
	cfg.Width = blockWidth

	blocks := []string{
		widgets.MetricBlock(icons.Resolution, "Resolution",
			fmt.Sprintf("%d x %d", s.TotalPixelsW, s.TotalPixelsH),
			fmt.Sprintf("%s px, %.2f:1", humanize.Comma(int64(s.TotalPixels)), s.AspectRatio), cfg),
		widgets.MetricBlock(icons.Cabinet, "Size",
			fmt.Sprintf("%.2fm x %.2fm", s.TotalWidthMm/1000, s.TotalHeightMm/1000),
			sizeSubtitle(s), cfg),
		widgets.MetricBlock(icons.Power, "Power",
			fmt.Sprintf("%.2f kW max", s.TotalMaxPowerW/1000),
			fmt.Sprintf("%.2f kW average", s.TotalAvgPowerW/1000), cfg),
		widgets.MetricBlock(icons.Weight, "Weight",
			humanize.CommafWithDigits(s.TotalWeightKg, 2)+" kg",
			fmt.Sprintf("incl. %d spares", s.SpareCabinets()), cfg),
	}

	perRow := 4
	if d.width < perRow*blockWidth {
		perRow = 2
	}
	if d.width < perRow*blockWidth {
		perRow = 1
	}

	var rows []string
	for i := 0; i < len(blocks); i += perRow {
		end := min(i+perRow, len(blocks))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, blocks[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderProcessors lists every processor with a usage bar or its rejection badge
func (d *Dashboard) renderProcessors() string {
	verdicts := d.plan.Compatibility

	var sb strings.Builder
	compatible := 0
	for _, v := range verdicts {
		if v.Compatible {
			compatible++
		}
	}
	sb.WriteString(styles.ValueStyle.Render(fmt.Sprintf("%s Processors (%d of %d fit)", icons.Processor, compatible, len(verdicts))))
	sb.WriteString("\n")

	barCfg := widgets.DefaultProgressBarConfig()
	barCfg.Width = barWidth

	for _, v := range verdicts {
		name := fmt.Sprintf("%-*s", processorWidth, truncate(v.Brand+" "+v.ProcessorName, processorWidth))
		level := widgets.VerdictLevel(v.Compatible, v.UsagePercent)
		if v.Compatible {
			sb.WriteString(fmt.Sprintf("  %s %s %s\n", widgets.StatusIcon(level), name,
				widgets.ProgressBarWithLabel(v.UsagePercent, barCfg, true)))
		} else {
			sb.WriteString(fmt.Sprintf("  %s %s %s\n", widgets.StatusIcon(level), name,
				widgets.VerdictBadge(false, v.Reason)))
		}
	}
	return sb.String()
}

func renderRow(icon icons.Icon, label, value string) string {
	return styles.LabelStyle.Render(icon.String()+" "+label) + " " + value + "\n"
}

// curveSummary describes the curvature, e.g. "convex, R = 5.74m, -60° total"
func curveSummary(s models.WallStats) string {
	if !s.IsCurved() {
		return "flat"
	}
	return fmt.Sprintf("%s, R = %.2fm, %s° total", s.CurveType(), *s.CurveRadiusMm/1000, humanize.Ftoa(s.TotalCurveAngle))
}

func sizeSubtitle(s models.WallStats) string {
	if s.IsCurved() {
		return fmt.Sprintf("chord %.2fm", s.LinearWidthMm/1000)
	}
	return "flat"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
