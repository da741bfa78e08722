// ABOUTME: Comparison view showing how the last edit changed the wall
// ABOUTME: Displays previous vs current figures with delta badges

package comparison

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/ledwall-calc/backend/models"
	"github.com/markalston/ledwall-calc/cli/internal/tui/styles"
	"github.com/markalston/ledwall-calc/cli/internal/tui/widgets"
)

// Comparison displays the difference between two plans
type Comparison struct {
	previous *models.WallPlan
	current  *models.WallPlan
	width    int
}

// row is one compared figure
type row struct {
	label         string
	before, after float64
	format        string // fmt verb without the leading %, e.g. ".2f"
	higherIsWorse bool
}

// New creates a new comparison view
func New(previous, current *models.WallPlan, width int) *Comparison {
	return &Comparison{
		previous: previous,
		current:  current,
		width:    width,
	}
}

// SetWidth updates the render width
func (c *Comparison) SetWidth(width int) {
	c.width = width
}

// View renders the comparison
func (c *Comparison) View() string {
	if c.previous == nil || c.current == nil {
		return styles.Subtitle.Render("No earlier configuration to compare")
	}

	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Since last edit"))
	sb.WriteString("\n")

	for _, r := range c.rows() {
		delta := r.after - r.before
		sb.WriteString(fmt.Sprintf("%s %s %s\n",
			styles.LabelStyle.Render(r.label),
			fmt.Sprintf("%"+r.format, r.after),
			widgets.DeltaBadge(delta, r.format, r.higherIsWorse)))
	}

	if gained, lost := c.processorChanges(); len(gained)+len(lost) > 0 {
		sb.WriteString("\n")
		for _, name := range gained {
			sb.WriteString(widgets.StatusText("now fits "+name, widgets.StatusOK) + "\n")
		}
		for _, name := range lost {
			sb.WriteString(widgets.StatusText("no longer fits "+name, widgets.StatusCritical) + "\n")
		}
	}

	return lipgloss.NewStyle().Width(c.width).Render(sb.String())
}

func (c *Comparison) rows() []row {
	b, a := c.previous.Stats, c.current.Stats
	return []row{
		{"Cabinets", float64(b.TotalCabinets), float64(a.TotalCabinets), ".0f", true},
		{"Pixels (MP)", float64(b.TotalPixels) / 1e6, float64(a.TotalPixels) / 1e6, ".2f", false},
		{"Width (m)", b.TotalWidthMm / 1000, a.TotalWidthMm / 1000, ".2f", false},
		{"Height (m)", b.TotalHeightMm / 1000, a.TotalHeightMm / 1000, ".2f", false},
		{"Max power (kW)", b.TotalMaxPowerW / 1000, a.TotalMaxPowerW / 1000, ".2f", true},
		{"Weight (kg)", b.TotalWeightKg, a.TotalWeightKg, ".1f", true},
		{"Ports", float64(b.EstimatedPorts), float64(a.EstimatedPorts), ".0f", true},
	}
}

// processorChanges returns processors whose verdict flipped, by display name
func (c *Comparison) processorChanges() (gained, lost []string) {
	before := make(map[string]bool, len(c.previous.Compatibility))
	for _, v := range c.previous.Compatibility {
		before[v.ProcessorID] = v.Compatible
	}
	for _, v := range c.current.Compatibility {
		was, seen := before[v.ProcessorID]
		if !seen || was == v.Compatible {
			continue
		}
		name := strings.TrimSpace(v.Brand + " " + v.ProcessorName)
		if v.Compatible {
			gained = append(gained, name)
		} else {
			lost = append(lost, name)
		}
	}
	return gained, lost
}
