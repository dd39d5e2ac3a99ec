/*
handlers.go - HTTP handlers for the budget API

PURPOSE:
  Thin adapters between HTTP and the budget calculator. Every scenario
  endpoint recomputes from the static tables on each request (the
  calculator is cheap and pure); the only stateful surface is the run
  history, which records an audit row per POST /api/runs.

FALLBACK BEHAVIOR:
  Scenario path parameters follow the calculator's compatibility rule:
  unknown identifiers resolve to the comprehensive configuration instead of
  404ing. Responses carry both the requested identifier and the effective
  scenario so clients can detect the substitution.

SEE ALSO:
  - server.go: Route wiring
  - dto.go: Request/response shapes
  - store/sqlite: Run persistence
*/
package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/warp/budget-engine/budget"
	"github.com/warp/budget-engine/export"
	"github.com/warp/budget-engine/store/sqlite"
)

// Handler carries the API dependencies.
type Handler struct {
	store *sqlite.Store
}

// NewHandler creates the API handler. The store may be nil, in which case
// the run-history endpoints respond 503 and everything else still works.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{store: store}
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, ErrorDTO{Error: msg})
}

// =============================================================================
// SCENARIO CATALOG
// =============================================================================

var scenarioDescriptions = map[budget.Scenario]string{
	budget.ScenarioMinimal:       "Small focused team - basic model evaluation and oversight",
	budget.ScenarioModerate:      "Medium agency - comprehensive evaluation, compliance, enforcement",
	budget.ScenarioComprehensive: "Large full-service agency - proactive monitoring, research, international coordination",
}

// ListScenarios returns the scenario catalog.
// GET /api/scenarios
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	catalog := make([]ScenarioDTO, 0, len(budget.Scenarios()))
	for _, s := range budget.Scenarios() {
		catalog = append(catalog, ScenarioDTO{
			ID:          s.String(),
			Name:        s.Label(),
			Description: scenarioDescriptions[s],
			TotalStaff:  budget.NewForScenario(s).TotalStaffCount(),
		})
	}
	respondJSON(w, http.StatusOK, catalog)
}

// GetScenario returns the full summary for one scenario.
// GET /api/scenarios/{id}
func (h *Handler) GetScenario(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	summary, err := budget.New(id).Summary()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, SummaryDTO{
		Requested:   id,
		Known:       budget.KnownScenario(id),
		SummaryJSON: export.FromSummary(summary),
	})
}

// GetStaffing returns only the staffing breakdown for one scenario.
// GET /api/scenarios/{id}/staffing
func (h *Handler) GetStaffing(w http.ResponseWriter, r *http.Request) {
	summary, err := budget.New(chi.URLParam(r, "id")).Summary()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	wire := export.FromSummary(summary)
	respondJSON(w, http.StatusOK, StaffingBreakdownDTO{
		Scenario:   wire.Scenario,
		TotalStaff: wire.TotalStaff,
		Breakdown:  wire.StaffingBreakdown,
	})
}

// GetOperational returns only the operational breakdown for one scenario.
// GET /api/scenarios/{id}/operational
func (h *Handler) GetOperational(w http.ResponseWriter, r *http.Request) {
	summary, err := budget.New(chi.URLParam(r, "id")).Summary()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	wire := export.FromSummary(summary)
	respondJSON(w, http.StatusOK, OperationalBreakdownDTO{
		Scenario:  wire.Scenario,
		Total:     wire.OperationalCosts,
		Breakdown: wire.OperationalBreakdown,
	})
}

// Compare returns the aggregate metrics for every scenario side by side.
// GET /api/compare
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	columns := make([]ComparisonColumnDTO, 0, len(budget.Scenarios()))
	for _, s := range budget.Scenarios() {
		summary, err := budget.NewForScenario(s).Summary()
		if err != nil {
			respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		columns = append(columns, ComparisonColumnDTO{
			Scenario:          s.Label(),
			TotalStaff:        summary.TotalStaff,
			TotalAnnualBudget: summary.TotalAnnualBudget.Float64(),
			PersonnelCosts:    summary.PersonnelCosts.Float64(),
			OperationalCosts:  summary.OperationalCosts.Float64(),
			CostPerEmployee:   summary.CostPerEmployee.Float64(),
		})
	}
	respondJSON(w, http.StatusOK, ComparisonDTO{Scenarios: columns})
}

// ExportDocument returns the full export document as a response body.
// GET /api/export
func (h *Handler) ExportDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := export.Document()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, doc)
}

// =============================================================================
// RUN HISTORY
// =============================================================================

// CreateRun computes a summary and persists it as an audit row.
// POST /api/runs  {"scenario": "moderate"}
func (h *Handler) CreateRun(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		respondError(w, http.StatusServiceUnavailable, "run history is not configured")
		return
	}

	var req CreateRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// The requested identifier follows the same fallback rule as everywhere
	// else; the stored row keeps both forms.
	calc := budget.New(req.Scenario)
	summary, err := calc.Summary()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	wire := export.FromSummary(summary)
	summaryJSON, err := json.Marshal(wire)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	run := sqlite.RunRecord{
		ID:                uuid.NewString(),
		RequestedScenario: req.Scenario,
		Scenario:          summary.Scenario.String(),
		TotalStaff:        summary.TotalStaff,
		TotalAnnualBudget: summary.TotalAnnualBudget.Value.String(),
		PersonnelCosts:    summary.PersonnelCosts.Value.String(),
		OperationalCosts:  summary.OperationalCosts.Value.String(),
		CostPerEmployee:   summary.CostPerEmployee.Value.Round(2).String(),
		SummaryJSON:       string(summaryJSON),
		CreatedAt:         time.Now().UTC(),
	}
	if err := h.store.SaveRun(r.Context(), run); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, runToDTO(run, nil))
}

// ListRuns returns run history, most recent first.
// GET /api/runs?limit=50
func (h *Handler) ListRuns(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		respondError(w, http.StatusServiceUnavailable, "run history is not configured")
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	runs, err := h.store.ListRuns(r.Context(), limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]RunDTO, 0, len(runs))
	for _, run := range runs {
		out = append(out, runToDTO(run, nil))
	}
	respondJSON(w, http.StatusOK, out)
}

// GetRun returns one run including its stored summary document.
// GET /api/runs/{id}
func (h *Handler) GetRun(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		respondError(w, http.StatusServiceUnavailable, "run history is not configured")
		return
	}

	run, err := h.store.GetRun(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if run == nil {
		respondError(w, http.StatusNotFound, "run not found")
		return
	}

	respondJSON(w, http.StatusOK, runToDTO(*run, json.RawMessage(run.SummaryJSON)))
}

func runToDTO(run sqlite.RunRecord, summary json.RawMessage) RunDTO {
	dto := RunDTO{
		ID:                run.ID,
		RequestedScenario: run.RequestedScenario,
		Scenario:          run.Scenario,
		TotalStaff:        run.TotalStaff,
		TotalAnnualBudget: run.TotalAnnualBudget,
		PersonnelCosts:    run.PersonnelCosts,
		OperationalCosts:  run.OperationalCosts,
		CostPerEmployee:   run.CostPerEmployee,
		CreatedAt:         run.CreatedAt.Format(time.RFC3339Nano),
	}
	if summary != nil {
		dto.Summary = summary
	}
	return dto
}
