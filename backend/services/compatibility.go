// ABOUTME: Processor compatibility evaluator for a computed wall
// ABOUTME: Checks total pixel capacity first, then the per-axis resolution limits

package services

import "github.com/markalston/ledwall-calc/backend/models"

// Evaluate checks whether one processor can drive the wall described by stats.
// The pixel-count check takes precedence when both checks fail.
func Evaluate(stats models.WallStats, proc models.Processor) models.CompatibilityVerdict {
	verdict := models.CompatibilityVerdict{
		ProcessorID:   proc.ID,
		ProcessorName: proc.Name,
		Brand:         proc.Brand,
	}

	switch {
	case stats.TotalPixels > proc.MaxPixels:
		verdict.Reason = models.ReasonCapacityExceeded
	case stats.TotalPixelsW > proc.MaxWidth || stats.TotalPixelsH > proc.MaxHeight:
		verdict.Reason = models.ReasonDimensionExceeded
	default:
		verdict.Compatible = true
		if proc.MaxPixels > 0 {
			verdict.UsagePercent = float64(stats.TotalPixels) / float64(proc.MaxPixels) * 100
		}
	}

	return verdict
}

// EvaluateAll returns one verdict per processor, in the order given
func EvaluateAll(stats models.WallStats, procs []models.Processor) []models.CompatibilityVerdict {
	verdicts := make([]models.CompatibilityVerdict, 0, len(procs))
	for _, proc := range procs {
		verdicts = append(verdicts, Evaluate(stats, proc))
	}
	return verdicts
}

// CompatibleCount counts the compatible verdicts
func CompatibleCount(verdicts []models.CompatibilityVerdict) int {
	n := 0
	for _, v := range verdicts {
		if v.Compatible {
			n++
		}
	}
	return n
}
