// ABOUTME: Tests for wall configuration and advice request validation
// ABOUTME: Verifies bounds checks and readable field-level error messages

package services

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/markalston/ledwall-calc/backend/models"
)

func TestValidateWallConfig_Valid(t *testing.T) {
	valid := []models.WallConfig{
		{Rows: 1, Cols: 1},
		{Rows: 6, Cols: 10, CabinetID: "p26-indoor-500"},
		{Rows: 4, Cols: 12, CurveAngle: -15, Spares: 4},
		{Rows: 1000, Cols: 1000, CurveAngle: 90},
	}

	for _, cfg := range valid {
		if err := ValidateWallConfig(cfg); err != nil {
			t.Errorf("ValidateWallConfig(%+v) returned error: %v, expected nil", cfg, err)
		}
	}
}

func TestValidateWallConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		cfg   models.WallConfig
		field string
	}{
		{"zero rows", models.WallConfig{Rows: 0, Cols: 4}, "rows"},
		{"negative cols", models.WallConfig{Rows: 4, Cols: -1}, "cols"},
		{"too many cols", models.WallConfig{Rows: 4, Cols: 1001}, "cols"},
		{"angle too large", models.WallConfig{Rows: 1, Cols: 1, CurveAngle: 91}, "curve_angle"},
		{"angle too small", models.WallConfig{Rows: 1, Cols: 1, CurveAngle: -90.5}, "curve_angle"},
		{"angle NaN", models.WallConfig{Rows: 1, Cols: 1, CurveAngle: math.NaN()}, "curve_angle"},
		{"negative spares", models.WallConfig{Rows: 1, Cols: 1, Spares: -1}, "spares"},
		{"long cabinet id", models.WallConfig{Rows: 1, Cols: 1, CabinetID: strings.Repeat("x", 65)}, "cabinet_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWallConfig(tt.cfg)
			if err == nil {
				t.Fatalf("ValidateWallConfig(%+v) returned nil, expected error", tt.cfg)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Expected *ValidationError, got %T", err)
			}
			if verr.Field != tt.field {
				t.Errorf("Expected field %q, got %q", tt.field, verr.Field)
			}
		})
	}
}

func TestValidateAdviceRequest(t *testing.T) {
	cfg := models.WallConfig{Rows: 2, Cols: 2}

	if err := ValidateAdviceRequest(models.AdviceRequest{Config: cfg, Question: "power?"}); err != nil {
		t.Errorf("Expected valid request, got %v", err)
	}

	tests := []struct {
		name string
		req  models.AdviceRequest
	}{
		{"empty question", models.AdviceRequest{Config: cfg}},
		{"blank question", models.AdviceRequest{Config: cfg, Question: "   "}},
		{"question too long", models.AdviceRequest{Config: cfg, Question: strings.Repeat("q", 2001)}},
		{"invalid config", models.AdviceRequest{Config: models.WallConfig{}, Question: "power?"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateAdviceRequest(tt.req); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestSanitizeQuestion(t *testing.T) {
	got := SanitizeQuestion("  what\x00 about\n power?\x7f ")
	if got != "what about power?" {
		t.Errorf("Expected control characters stripped, got %q", got)
	}
}
