// ABOUTME: Wall planner that derives every view of a configuration in one pass
// ABOUTME: Resolves the cabinet, then runs metrics, layouts, and compatibility checks

package services

import (
	"github.com/markalston/ledwall-calc/backend/catalog"
	"github.com/markalston/ledwall-calc/backend/models"
)

// Planner computes WallPlans against a catalog.
// It holds no per-wall state and is safe for concurrent use.
type Planner struct {
	catalog *catalog.Catalog
	metrics *MetricsCalculator
	layout  *LayoutCalculator
}

// NewPlanner creates a planner. A nil metrics calculator uses the default port budget.
func NewPlanner(cat *catalog.Catalog, metrics *MetricsCalculator) *Planner {
	if metrics == nil {
		metrics = NewMetricsCalculator(DefaultPixelsPerPort)
	}
	return &Planner{
		catalog: cat,
		metrics: metrics,
		layout:  NewLayoutCalculator(),
	}
}

// Catalog returns the catalog the planner resolves cabinets against
func (p *Planner) Catalog() *catalog.Catalog {
	return p.catalog
}

// PixelsPerPort returns the port budget used for port estimates
func (p *Planner) PixelsPerPort() int {
	return p.metrics.PixelsPerPort
}

// Stats resolves the cabinet and computes the wall statistics only
func (p *Planner) Stats(cfg models.WallConfig) (models.Cabinet, models.WallStats) {
	cab := p.catalog.Cabinet(cfg.CabinetID)
	return cab, p.metrics.Calculate(cfg, cab)
}

// Plan computes the complete plan for cfg. Unknown cabinet ids resolve to
// the catalog default, and the returned Config carries the resolved id.
func (p *Planner) Plan(cfg models.WallConfig) models.WallPlan {
	cab, stats := p.Stats(cfg)
	cfg.CabinetID = cab.ID

	plan := models.WallPlan{
		Config:        cfg,
		Cabinet:       cab,
		Stats:         stats,
		Front:         p.layout.Front(cfg, cab),
		Compatibility: EvaluateAll(stats, p.catalog.Processors()),
	}

	if curved, ok := p.layout.CurvedFromStats(cfg, cab, stats); ok {
		plan.Curved = &curved
	}

	return plan
}
