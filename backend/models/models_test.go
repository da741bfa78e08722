package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestWallStats_FlatRadiusSerializesAsNull(t *testing.T) {
	stats := WallStats{TotalWidthMm: 5000, LinearWidthMm: 5000}

	data, err := json.Marshal(stats)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	if !strings.Contains(string(data), `"curve_radius_mm":null`) {
		t.Errorf("Expected null curve radius, got %s", data)
	}
	if stats.IsCurved() {
		t.Error("Flat stats should not report curved")
	}
}

func TestWallStats_CurveType(t *testing.T) {
	radius := 7000.0

	tests := []struct {
		name     string
		stats    WallStats
		expected string
	}{
		{"flat", WallStats{}, "flat"},
		{"concave", WallStats{CurveRadiusMm: &radius, TotalCurveAngle: 20}, "concave"},
		{"convex", WallStats{CurveRadiusMm: &radius, TotalCurveAngle: -20}, "convex"},
		{"single column", WallStats{CurveRadiusMm: &radius, TotalCurveAngle: 0}, "single column"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stats.CurveType(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestWallStats_SpareCabinets(t *testing.T) {
	stats := WallStats{ActiveCabinets: 60, TotalCabinets: 62}
	if stats.SpareCabinets() != 2 {
		t.Errorf("Expected 2 spares, got %d", stats.SpareCabinets())
	}
}

func TestWallConfig_Orientation(t *testing.T) {
	if (WallConfig{CurveAngle: 0}).IsCurved() {
		t.Error("Zero angle should be flat")
	}
	if !(WallConfig{CurveAngle: 5}).IsConcave() {
		t.Error("Positive angle should be concave")
	}
	if (WallConfig{CurveAngle: -5}).IsConcave() {
		t.Error("Negative angle should be convex")
	}
}

func TestViewport_String(t *testing.T) {
	v := Viewport{MinX: -750, MinY: -750, Width: 6500, Height: 4500.5}
	if got := v.String(); got != "-750 -750 6500 4500.5" {
		t.Errorf("Unexpected viewBox %q", got)
	}
}

func TestCabinet_Label(t *testing.T) {
	cab := Cabinet{Model: "BP2", Pitch: 2.6, WidthMm: 500, HeightMm: 500}
	if got := cab.Label(); got != "P2.6 - BP2 (500x500)" {
		t.Errorf("Unexpected label %q", got)
	}
}
