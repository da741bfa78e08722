// ABOUTME: Tests for the check command
// ABOUTME: Verifies headroom checking logic, output formats, and exit codes

package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/markalston/ledwall-calc/backend/catalog"
	"github.com/markalston/ledwall-calc/backend/models"
	"github.com/markalston/ledwall-calc/backend/services"
)

// p29Wall is a 10 x 6 BO3 wall: 1680 x 1008 = 1,693,440 px
var p29Wall = models.WallConfig{Rows: 6, Cols: 10, CabinetID: "p29-indoor-500"}

func builtinPlanner() *services.Planner {
	return services.NewPlanner(catalog.Builtin(), nil)
}

func TestCheckResult_AllPassed(t *testing.T) {
	results := []checkResult{
		{verdict: models.CompatibilityVerdict{ProcessorID: "a", Compatible: true, UsagePercent: 40}, headroom: 60, passed: true},
		{verdict: models.CompatibilityVerdict{ProcessorID: "b", Compatible: true, UsagePercent: 20}, headroom: 80, passed: true},
	}

	passed, failed := countResults(results)
	if passed != 2 {
		t.Errorf("expected 2 passed, got %d", passed)
	}
	if failed != 0 {
		t.Errorf("expected 0 failed, got %d", failed)
	}
}

func TestPerformChecks_Headroom(t *testing.T) {
	verdicts := []models.CompatibilityVerdict{
		{ProcessorID: "roomy", Compatible: true, UsagePercent: 30},
		{ProcessorID: "tight", Compatible: true, UsagePercent: 90},
		{ProcessorID: "small", Compatible: false, Reason: models.ReasonCapacityExceeded},
	}

	results := performChecks(verdicts, 20)

	if !results[0].passed {
		t.Error("expected 70% headroom to pass a 20% minimum")
	}
	if results[1].passed {
		t.Error("expected 10% headroom to fail a 20% minimum")
	}
	if results[1].headroom != 10 {
		t.Errorf("expected headroom 10, got %v", results[1].headroom)
	}
	if results[2].passed {
		t.Error("expected incompatible processor to fail")
	}
}

func TestFormatCheckHuman(t *testing.T) {
	results := []checkResult{
		{verdict: models.CompatibilityVerdict{Brand: "NovaStar", ProcessorName: "VX600", Compatible: true, UsagePercent: 43.4}, headroom: 56.6, passed: true},
		{verdict: models.CompatibilityVerdict{Brand: "Brompton", ProcessorName: "Tessera S4", Compatible: false, Reason: models.ReasonDimensionExceeded}},
	}

	output := formatCheckHuman(results, 0)

	if !strings.Contains(output, "✓ NovaStar VX600: 43.4% used") {
		t.Errorf("expected checkmark line for passed processor, got:\n%s", output)
	}
	if !strings.Contains(output, "✗ Brompton Tessera S4: dimension exceeded") {
		t.Errorf("expected X line with reason, got:\n%s", output)
	}
	if !strings.Contains(output, "FAILED: 1 of 2 processor(s) failed") {
		t.Errorf("expected FAILED summary, got:\n%s", output)
	}
}

func TestFormatCheckHuman_HeadroomFailure(t *testing.T) {
	results := []checkResult{
		{verdict: models.CompatibilityVerdict{Brand: "Brompton", ProcessorName: "Tessera S4", Compatible: true, UsagePercent: 80.6}, headroom: 19.4},
	}

	output := formatCheckHuman(results, 50)

	if !strings.Contains(output, "headroom 19.4% (minimum: 50.0%)") {
		t.Errorf("expected headroom detail, got:\n%s", output)
	}
}

func TestFormatCheckJSON(t *testing.T) {
	results := []checkResult{
		{verdict: models.CompatibilityVerdict{ProcessorID: "novastar-vx600", ProcessorName: "VX600", Compatible: true, UsagePercent: 43.4}, headroom: 56.6, passed: true},
		{verdict: models.CompatibilityVerdict{ProcessorID: "tiny", ProcessorName: "Tiny", Compatible: false, Reason: models.ReasonCapacityExceeded}},
	}

	output := formatCheckJSON(results, 10)

	var parsed struct {
		Status      string                   `json:"status"`
		MinHeadroom float64                  `json:"min_headroom"`
		Checks      []map[string]interface{} `json:"checks"`
	}
	if err := json.Unmarshal([]byte(output), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed.Status != "failed" {
		t.Errorf("expected status failed, got %v", parsed.Status)
	}
	if parsed.MinHeadroom != 10 {
		t.Errorf("expected min_headroom 10, got %v", parsed.MinHeadroom)
	}
	if len(parsed.Checks) != 2 {
		t.Fatalf("expected 2 checks, got %d", len(parsed.Checks))
	}
	if _, ok := parsed.Checks[0]["headroom_percent"]; !ok {
		t.Error("expected headroom_percent on compatible check")
	}
	if parsed.Checks[1]["reason"] != models.ReasonCapacityExceeded {
		t.Errorf("expected reason on incompatible check, got %v", parsed.Checks[1]["reason"])
	}
}

func TestCheckCommand_AllPassed(t *testing.T) {
	var buf bytes.Buffer
	exitCode := runCheck(&buf, builtinPlanner(), p29Wall, nil, 0)

	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d\n%s", exitCode, buf.String())
	}
	if !strings.Contains(buf.String(), "PASSED: All 6 processor(s) compatible") {
		t.Errorf("expected PASSED in output, got:\n%s", buf.String())
	}
}

func TestCheckCommand_HeadroomExceeded(t *testing.T) {
	var buf bytes.Buffer
	exitCode := runCheck(&buf, builtinPlanner(), p29Wall, nil, 50)

	if exitCode != 1 {
		t.Errorf("expected exit code 1 for headroom below minimum, got %d", exitCode)
	}
	output := buf.String()
	if !strings.Contains(output, "FAILED: 1 of 6 processor(s) failed") {
		t.Errorf("expected only the S4 to fail, got:\n%s", output)
	}
	if !strings.Contains(output, "✗ Brompton Tessera S4") {
		t.Errorf("expected S4 failure line, got:\n%s", output)
	}
}

func TestCheckCommand_SelectedProcessors(t *testing.T) {
	var buf bytes.Buffer
	exitCode := runCheck(&buf, builtinPlanner(), p29Wall, []string{"novastar-vx600"}, 50)

	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d\n%s", exitCode, buf.String())
	}
	if strings.Contains(buf.String(), "Brompton") {
		t.Errorf("expected only the selected processor, got:\n%s", buf.String())
	}
}

func TestCheckCommand_Incompatible(t *testing.T) {
	cfg := models.WallConfig{Rows: 20, Cols: 40, CabinetID: "p26-indoor-500"}

	var buf bytes.Buffer
	exitCode := runCheck(&buf, builtinPlanner(), cfg, nil, 0)

	if exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", exitCode)
	}
	if strings.Contains(buf.String(), "✓") {
		t.Errorf("expected no compatible processor, got:\n%s", buf.String())
	}
}

func TestCheckCommand_JSON(t *testing.T) {
	jsonOutput = true
	defer func() { jsonOutput = false }()

	var buf bytes.Buffer
	exitCode := runCheck(&buf, builtinPlanner(), p29Wall, nil, 0)

	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}
	var parsed map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed["status"] != "passed" {
		t.Errorf("expected status passed, got %v", parsed["status"])
	}
}

func TestCheckCommand_UnknownProcessor(t *testing.T) {
	var buf bytes.Buffer
	exitCode := runCheck(&buf, builtinPlanner(), p29Wall, []string{"no-such-box"}, 0)

	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), `unknown processor "no-such-box"`) {
		t.Errorf("expected unknown processor error, got:\n%s", buf.String())
	}
}

func TestValidateHeadroom(t *testing.T) {
	tests := []struct {
		headroom float64
		valid    bool
	}{
		{0, true},
		{25, true},
		{100, true},
		{-1, false},
		{100.5, false},
	}

	for _, tt := range tests {
		err := validateHeadroom(tt.headroom)
		if tt.valid && err != nil {
			t.Errorf("validateHeadroom(%v) expected valid, got error: %v", tt.headroom, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("validateHeadroom(%v) expected error, got nil", tt.headroom)
		}
	}

	var buf bytes.Buffer
	if exitCode := runCheck(&buf, builtinPlanner(), p29Wall, nil, 150); exitCode != 2 {
		t.Errorf("expected exit code 2 for invalid headroom, got %d", exitCode)
	}
}
