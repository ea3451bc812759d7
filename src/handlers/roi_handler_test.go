package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/username/propfolio/backend/src/processors"
)

func TestHandleCalculateROI(t *testing.T) {
	setupHandlerTest(t)
	handler := NewROIHandler(processors.NewROIProcessor())

	body := `{
		"purchasePrice": 400000,
		"marketValue": 450000,
		"equity": 100000,
		"loanPrincipal": 300000,
		"interestRatePct": 2,
		"amortizationRatePct": 1,
		"monthlyRent": 1800,
		"monthlyExpenses": 600,
		"propertySizeSqm": 80
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/roi/metrics", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.HandleCalculateROI(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rr.Code, rr.Body.String())
	}
	var output map[string]float64
	if err := json.Unmarshal(rr.Body.Bytes(), &output); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got := output["cashOnCashReturn"]; math.Abs(got-0.144) > 1e-9 {
		t.Errorf("cashOnCashReturn = %v, want 0.144", got)
	}
	if got := output["dscr"]; math.Abs(got-1.6) > 1e-9 {
		t.Errorf("dscr = %v, want 1.6", got)
	}
}

func TestHandleCalculateROIEmptyInput(t *testing.T) {
	setupHandlerTest(t)
	handler := NewROIHandler(processors.NewROIProcessor())

	req := httptest.NewRequest(http.MethodPost, "/api/roi/metrics", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	handler.HandleCalculateROI(rr, req)

	// Degenerate input yields zero ratios, never an error.
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var output map[string]float64
	if err := json.Unmarshal(rr.Body.Bytes(), &output); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	for name, value := range output {
		if value != 0 {
			t.Errorf("%s = %v, want 0", name, value)
		}
	}
}

func TestHandleCalculateROIInvalidBody(t *testing.T) {
	setupHandlerTest(t)
	handler := NewROIHandler(processors.NewROIProcessor())

	req := httptest.NewRequest(http.MethodPost, "/api/roi/metrics", strings.NewReader("not json"))
	rr := httptest.NewRecorder()
	handler.HandleCalculateROI(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}
