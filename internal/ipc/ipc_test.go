package ipc

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/anthropics/tutor-engine/internal/calc"
	"github.com/anthropics/tutor-engine/internal/domain"
	"github.com/anthropics/tutor-engine/internal/guard"
	"github.com/anthropics/tutor-engine/internal/solver"
	"github.com/anthropics/tutor-engine/internal/store"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := store.NewDB(dbPath)
	if err != nil {
		t.Fatalf("create db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	manager, err := calc.New(16)
	if err != nil {
		t.Fatalf("create calc manager: %v", err)
	}

	return &Handler{
		Solver:      solver.New(),
		Calc:        manager,
		Guard:       guard.New(1000, 2000),
		DB:          db,
		HistoryRepo: &store.HistoryRepo{},
		CalcLogRepo: &store.CalcLogRepo{},
		Logger:      zap.NewNop(),
		History:     true,
	}
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()

	h.Health(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestSolve_Success(t *testing.T) {
	h := newTestHandler(t)
	body := `{"question":"solve the equation 2x + 5 = 15","render":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/solve", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	h.Solve(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp SolveResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.DetectedSubject != domain.SubjectMathematics {
		t.Errorf("subject = %q, want mathematics", resp.DetectedSubject)
	}
	if resp.FinalAnswer != "x = 5" {
		t.Errorf("final answer = %q", resp.FinalAnswer)
	}
	if resp.Report == "" {
		t.Error("render=true should include a report")
	}
}

func TestSolve_RecordsHistory(t *testing.T) {
	h := newTestHandler(t)
	body := `{"question":"calculate the sum of 2 and 3"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/solve", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	h.Solve(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	records, err := h.HistoryRepo.ListRecent(context.Background(), h.DB, 10)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 history row, got %d", len(records))
	}
	if records[0].Subject != domain.SubjectMathematics {
		t.Errorf("stored subject = %q", records[0].Subject)
	}
}

func TestSolve_EmptyQuestion(t *testing.T) {
	h := newTestHandler(t)
	body := `{"question":"   "}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/solve", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	h.Solve(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSolve_RateLimited(t *testing.T) {
	h := newTestHandler(t)
	h.Guard = guard.New(1, 2000)

	for i := 0; i < 2; i++ {
		body := `{"question":"what is 2 plus 2"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/solve", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		h.Solve(w, req)

		if i == 0 && w.Code != http.StatusOK {
			t.Fatalf("first request: expected 200, got %d", w.Code)
		}
		if i == 1 && w.Code != http.StatusTooManyRequests {
			t.Fatalf("second request: expected 429, got %d", w.Code)
		}
	}
}

func TestCalculate_Success(t *testing.T) {
	h := newTestHandler(t)
	body := `{"expression":"2 + 3 * 4"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calculate", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	h.Calculate(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result domain.CalculationResult
	json.NewDecoder(w.Body).Decode(&result)
	if !result.Success {
		t.Fatalf("calculate failed: %v", result.Error)
	}
	// JSON numbers decode as float64.
	if got, ok := result.Result.(float64); !ok || got != 14 {
		t.Errorf("result = %v (%T), want 14", result.Result, result.Result)
	}

	logs, err := h.CalcLogRepo.ListRecent(context.Background(), h.DB, 10)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(logs) != 1 || logs[0].Kind != "calculate" {
		t.Errorf("calc log = %+v", logs)
	}
}

func TestCalculate_ErrorStillOK(t *testing.T) {
	h := newTestHandler(t)
	body := `{"expression":"1/0"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calculate", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	h.Calculate(w, req)

	// Evaluation failures are domain results, not transport errors.
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var result domain.CalculationResult
	json.NewDecoder(w.Body).Decode(&result)
	if result.Success {
		t.Error("division by zero should not succeed")
	}
}

func TestEquation_Success(t *testing.T) {
	h := newTestHandler(t)
	body := `{"equation":"x^2 - 5x + 6 = 0"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/equation", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	h.SolveEquation(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var sol domain.EquationSolution
	json.NewDecoder(w.Body).Decode(&sol)
	if !sol.Success || sol.Type != domain.EquationQuadratic {
		t.Errorf("solution = %+v", sol)
	}
	if len(sol.Solutions) != 2 {
		t.Errorf("solutions = %v", sol.Solutions)
	}
}

func TestConvert_Success(t *testing.T) {
	h := newTestHandler(t)
	body := `{"value":10,"from_unit":"km","to_unit":"miles"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/convert", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	h.Convert(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var result domain.ConversionResult
	json.NewDecoder(w.Body).Decode(&result)
	if !result.Success || result.Result != 6.21371 {
		t.Errorf("result = %+v", result)
	}
}

func TestTipAndPercentage(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tip", bytes.NewBufferString(`{"amount":50,"percentage":15}`))
	w := httptest.NewRecorder()
	h.Tip(w, req)
	var tip domain.TipResult
	json.NewDecoder(w.Body).Decode(&tip)
	if !tip.Success || tip.TipAmount != 7.5 {
		t.Errorf("tip = %+v", tip)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/percentage", bytes.NewBufferString(`{"value":50,"percentage":20}`))
	w = httptest.NewRecorder()
	h.Percentage(w, req)
	var pct domain.PercentageResult
	json.NewDecoder(w.Body).Decode(&pct)
	if !pct.Success || pct.Result != 10 {
		t.Errorf("percentage = %+v", pct)
	}
}

func TestMathHelp(t *testing.T) {
	h := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/mathhelp/area", nil)
	req.SetPathValue("topic", "area")
	w := httptest.NewRecorder()

	h.MathHelp(w, req)

	var result domain.MathHelpResult
	json.NewDecoder(w.Body).Decode(&result)
	if !result.Success || result.Formulas["square"] != "Area = side²" {
		t.Errorf("help = %+v", result)
	}
}

func TestResources(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resources/physics", nil)
	req.SetPathValue("subject", "physics")
	w := httptest.NewRecorder()
	h.Resources(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/resources/alchemy", nil)
	req.SetPathValue("subject", "alchemy")
	w = httptest.NewRecorder()
	h.Resources(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestListHistory_FilterBySubject(t *testing.T) {
	h := newTestHandler(t)

	questions := []string{
		"calculate the sum of 2 and 3",
		"what force is needed to accelerate a mass of 10 kg at 5 m/s",
	}
	for _, q := range questions {
		body, _ := json.Marshal(SolveRequest{Question: q})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/solve", bytes.NewReader(body))
		w := httptest.NewRecorder()
		h.Solve(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("solve %q: %d", q, w.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history?subject=physics", nil)
	w := httptest.NewRecorder()
	h.ListHistory(w, req)

	var records []domain.SolveRecord
	json.NewDecoder(w.Body).Decode(&records)
	if len(records) != 1 {
		t.Fatalf("expected 1 physics record, got %d", len(records))
	}
	if records[0].Subject != domain.SubjectPhysics {
		t.Errorf("subject = %q", records[0].Subject)
	}
}

func TestServerRouting(t *testing.T) {
	h := newTestHandler(t)
	srv := NewServer(h, ":0")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("CORS header = %q", got)
	}
}

func TestServerRejectsWrongMethod(t *testing.T) {
	h := newTestHandler(t)
	srv := NewServer(h, ":0")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/solve", nil)
	w := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}
}
