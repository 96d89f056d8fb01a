// Package ipc provides the HTTP API for the Tutor Engine.
package ipc

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/anthropics/tutor-engine/internal/calc"
	"github.com/anthropics/tutor-engine/internal/domain"
	"github.com/anthropics/tutor-engine/internal/guard"
	"github.com/anthropics/tutor-engine/internal/render"
	"github.com/anthropics/tutor-engine/internal/solver"
	"github.com/anthropics/tutor-engine/internal/store"
)

// Handler holds all dependencies for the HTTP handlers.
type Handler struct {
	Solver      *solver.Engine
	Calc        *calc.Manager
	Guard       *guard.Guard
	DB          *sql.DB
	HistoryRepo *store.HistoryRepo
	CalcLogRepo *store.CalcLogRepo
	Logger      *zap.Logger
	History     bool
}

// SolveRequest is the body for POST /api/v1/solve.
type SolveRequest struct {
	Question string `json:"question"`
	Render   bool   `json:"render"`
}

// SolveResponse wraps a solution record with an optional rendered report.
type SolveResponse struct {
	domain.SolutionRecord
	Report string `json:"report,omitempty"`
}

// CalculateRequest is the body for POST /api/v1/calculate.
type CalculateRequest struct {
	Expression string `json:"expression"`
}

// EquationRequest is the body for POST /api/v1/equation.
type EquationRequest struct {
	Equation string `json:"equation"`
}

// ConvertRequest is the body for POST /api/v1/convert.
type ConvertRequest struct {
	Value    float64 `json:"value"`
	FromUnit string  `json:"from_unit"`
	ToUnit   string  `json:"to_unit"`
}

// TipRequest is the body for POST /api/v1/tip.
type TipRequest struct {
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// PercentageRequest is the body for POST /api/v1/percentage.
type PercentageRequest struct {
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// APIError is a structured error response.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Health handles GET /api/v1/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Solve handles POST /api/v1/solve.
func (h *Handler) Solve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, APIError{Code: 400, Message: "invalid request body"})
		return
	}

	if err := h.Guard.Allow(clientKey(r)); err != nil {
		writeError(w, err)
		return
	}
	if err := h.Guard.CheckQuestion(req.Question); err != nil {
		writeError(w, err)
		return
	}

	rec := h.Solver.Solve(req.Question)

	if h.History && h.DB != nil {
		row := domain.SolveRecord{
			ID:          uuid.NewString(),
			Question:    req.Question,
			Subject:     rec.DetectedSubject,
			Confidence:  rec.Confidence,
			FinalAnswer: rec.FinalAnswer,
			Method:      rec.Method,
			CreatedAt:   time.Now().Unix(),
		}
		if err := h.HistoryRepo.Record(r.Context(), h.DB, row); err != nil {
			h.Logger.Warn("record solve history", zap.Error(err))
		}
	}

	resp := SolveResponse{SolutionRecord: rec}
	if req.Render {
		resp.Report = render.Format(rec)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Calculate handles POST /api/v1/calculate.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, APIError{Code: 400, Message: "invalid request body"})
		return
	}

	result := h.Calc.Calculate(req.Expression)

	output := result.Error
	if result.Success {
		output = fmt.Sprint(result.Result)
	}
	h.logCalc(r, "calculate", req.Expression, output, result.Success)

	writeJSON(w, http.StatusOK, result)
}

// SolveEquation handles POST /api/v1/equation.
func (h *Handler) SolveEquation(w http.ResponseWriter, r *http.Request) {
	var req EquationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, APIError{Code: 400, Message: "invalid request body"})
		return
	}

	sol := h.Calc.SolveEquation(req.Equation)

	output := sol.Error
	if sol.Success {
		output = fmt.Sprint(sol.Solutions)
	}
	h.logCalc(r, "equation", req.Equation, output, sol.Success)

	writeJSON(w, http.StatusOK, sol)
}

// Convert handles POST /api/v1/convert.
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, APIError{Code: 400, Message: "invalid request body"})
		return
	}

	result := h.Calc.ConvertUnits(req.Value, req.FromUnit, req.ToUnit)

	input := fmt.Sprintf("%g %s -> %s", req.Value, req.FromUnit, req.ToUnit)
	output := result.Error
	if result.Success {
		output = strconv.FormatFloat(result.Result, 'g', -1, 64)
	}
	h.logCalc(r, "convert", input, output, result.Success)

	writeJSON(w, http.StatusOK, result)
}

// Tip handles POST /api/v1/tip.
func (h *Handler) Tip(w http.ResponseWriter, r *http.Request) {
	var req TipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, APIError{Code: 400, Message: "invalid request body"})
		return
	}
	writeJSON(w, http.StatusOK, h.Calc.CalculateTip(req.Amount, req.Percentage))
}

// Percentage handles POST /api/v1/percentage.
func (h *Handler) Percentage(w http.ResponseWriter, r *http.Request) {
	var req PercentageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, APIError{Code: 400, Message: "invalid request body"})
		return
	}
	writeJSON(w, http.StatusOK, h.Calc.CalculatePercentage(req.Value, req.Percentage))
}

// MathHelp handles GET /api/v1/mathhelp/{topic}.
func (h *Handler) MathHelp(w http.ResponseWriter, r *http.Request) {
	topic := r.PathValue("topic")
	writeJSON(w, http.StatusOK, h.Calc.MathHelp(topic))
}

// Conversions handles GET /api/v1/conversions.
func (h *Handler) Conversions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"categories": h.Calc.AvailableConversions(),
		"type":       "conversions",
	})
}

// Resources handles GET /api/v1/resources/{subject}.
func (h *Handler) Resources(w http.ResponseWriter, r *http.Request) {
	subject := domain.Subject(r.PathValue("subject"))
	resources := h.Solver.Resources(subject)
	if resources == nil {
		writeJSON(w, http.StatusNotFound, APIError{Code: 404, Message: fmt.Sprintf("no resources for subject %q", subject)})
		return
	}
	writeJSON(w, http.StatusOK, resources)
}

// ListHistory handles GET /api/v1/history?limit=N&subject=S.
func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	if h.DB == nil {
		writeJSON(w, http.StatusOK, []domain.SolveRecord{})
		return
	}

	limit := 20
	if s := r.URL.Query().Get("limit"); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	var (
		records []domain.SolveRecord
		err     error
	)
	if subject := r.URL.Query().Get("subject"); subject != "" {
		records, err = h.HistoryRepo.ListBySubject(r.Context(), h.DB, domain.Subject(subject), limit)
	} else {
		records, err = h.HistoryRepo.ListRecent(r.Context(), h.DB, limit)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	if records == nil {
		records = []domain.SolveRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

// logCalc records a calculator invocation, best effort.
func (h *Handler) logCalc(r *http.Request, kind, input, output string, success bool) {
	if !h.History || h.DB == nil {
		return
	}
	rec := domain.CalcRecord{
		ID:        uuid.NewString(),
		Kind:      kind,
		Input:     input,
		Output:    output,
		Success:   success,
		CreatedAt: time.Now().Unix(),
	}
	if err := h.CalcLogRepo.Record(r.Context(), h.DB, rec); err != nil {
		h.Logger.Warn("record calc history", zap.Error(err))
	}
}

// clientKey identifies the caller for rate limiting.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	if engErr, ok := err.(*domain.EngineError); ok {
		status := http.StatusInternalServerError
		switch engErr.Code {
		case domain.ErrRateLimitExceeded.Code:
			status = http.StatusTooManyRequests
		case domain.ErrQuestionTooLong.Code, domain.ErrEmptyQuestion.Code:
			status = http.StatusBadRequest
		case domain.ErrStoreQuery.Code, domain.ErrStoreWrite.Code:
			status = http.StatusInternalServerError
		}
		writeJSON(w, status, APIError{Code: engErr.Code, Message: engErr.Message})
		return
	}
	writeJSON(w, http.StatusInternalServerError, APIError{Code: -1, Message: err.Error()})
}
