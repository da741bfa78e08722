// ABOUTME: Tests for the health command
// ABOUTME: Verifies health check output formatting and exit codes

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/markalston/ledwall-calc/backend/models"
)

func sampleHealth() *models.HealthResponse {
	return &models.HealthResponse{
		Status:            "ok",
		CabinetCount:      6,
		ProcessorCount:    6,
		DefaultCabinet:    "p26-indoor-500",
		AdvisorConfigured: false,
		PixelsPerPort:     655360,
	}
}

func TestFormatHealthHuman(t *testing.T) {
	output := formatHealthHuman("http://localhost:8080", sampleHealth())

	for _, want := range []string{
		"http://localhost:8080",
		"Status:          ok",
		"Cabinets:        6 (default: p26-indoor-500)",
		"Pixels per port: 655360",
		"Advisor:         not configured",
	} {
		if !bytes.Contains([]byte(output), []byte(want)) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestFormatHealthJSON(t *testing.T) {
	output := formatHealthJSON("http://localhost:8080", sampleHealth())

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(output), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed["backend"] != "http://localhost:8080" {
		t.Errorf("expected backend URL in JSON, got %v", parsed["backend"])
	}
	if parsed["advisor_configured"] != false {
		t.Errorf("expected advisor_configured false, got %v", parsed["advisor_configured"])
	}
}

func TestHealthCommand_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/health" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sampleHealth())
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	exitCode := runHealth(context.Background(), &buf)

	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}
	if !bytes.Contains(buf.Bytes(), []byte("ok")) {
		t.Error("expected ok in output")
	}
}

func TestHealthCommand_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.ErrorResponse{Error: "catalog unavailable", Code: 500})
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	exitCode := runHealth(context.Background(), &buf)

	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if !bytes.Contains(buf.Bytes(), []byte("catalog unavailable")) {
		t.Errorf("expected backend error in output, got %s", buf.String())
	}
}

func TestHealthCommand_ConnectionError(t *testing.T) {
	apiURL = "http://localhost:99999"
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	exitCode := runHealth(context.Background(), &buf)

	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
}
