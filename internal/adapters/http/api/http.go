// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	service "github.com/okian/teamforge/internal/app"
	"github.com/okian/teamforge/internal/adapters/llm"
	"github.com/okian/teamforge/internal/adapters/repository"
	"github.com/okian/teamforge/internal/domain/model"
	"github.com/okian/teamforge/internal/domain/planning"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the planner service.
type Dependencies interface {
	RosterDependencies
	PlannerDependencies
	PlanDependencies
}

// Server wires HTTP routes for the planner API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	playersHandler *PlayersHandler
	plannerHandler *PlannerHandler
	plansHandler   *PlansHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		playersHandler: NewPlayersHandler(deps),
		plannerHandler: NewPlannerHandler(deps),
		plansHandler:   NewPlansHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	mux.HandleFunc("GET /players", MetricsMiddleware(s.playersHandler.HandleList, "players"))
	mux.HandleFunc("POST /players", MetricsMiddleware(s.playersHandler.HandleAdd, "players"))
	mux.HandleFunc("GET /players/{id}", MetricsMiddleware(s.playersHandler.HandleGet, "player"))
	mux.HandleFunc("DELETE /players/{id}", MetricsMiddleware(s.playersHandler.HandleRemove, "player"))
	mux.HandleFunc("PUT /players/{id}/skills/{category}", MetricsMiddleware(s.playersHandler.HandleUpdateSkill, "player_skill"))
	mux.HandleFunc("POST /players/{id}/custom-skills", MetricsMiddleware(s.playersHandler.HandleAddCustomSkill, "player_custom_skill"))
	mux.HandleFunc("DELETE /players/{id}/custom-skills/{skillID}", MetricsMiddleware(s.playersHandler.HandleRemoveCustomSkill, "player_custom_skill"))
	mux.HandleFunc("GET /categories", MetricsMiddleware(s.playersHandler.HandleCategories, "categories"))
	mux.HandleFunc("POST /categories", MetricsMiddleware(s.playersHandler.HandleAddCategory, "categories"))

	mux.HandleFunc("POST /planner/selection/{id}", MetricsMiddleware(s.plannerHandler.HandleToggleSelection, "planner_selection"))
	mux.HandleFunc("PUT /recovery", MetricsMiddleware(s.plannerHandler.HandleUpdateRecovery, "recovery"))
	mux.HandleFunc("POST /generate/{mode}", MetricsMiddleware(s.plannerHandler.HandleGenerate, "generate"))
	mux.HandleFunc("GET /state", MetricsMiddleware(s.plannerHandler.HandleState, "state"))

	mux.HandleFunc("GET /plan", MetricsMiddleware(s.plansHandler.HandleCurrent, "plan"))
	mux.HandleFunc("DELETE /plan", MetricsMiddleware(s.plansHandler.HandleDiscard, "plan"))
	mux.HandleFunc("POST /plan/save", MetricsMiddleware(s.plansHandler.HandleSave, "plan_save"))
	mux.HandleFunc("GET /plans", MetricsMiddleware(s.plansHandler.HandleList, "plans"))
	mux.HandleFunc("GET /plans/{id}", MetricsMiddleware(s.plansHandler.HandleGet, "plans"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Join(ErrBadRequest, err)
	}
	return nil
}

// writeActionError translates a service error into a status and a message
// the coach can read.
func writeActionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, planning.ErrPrecondition):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Code: "precondition_failed", Message: service.UserMessage(err)})
	case errors.Is(err, service.ErrGenerationInProgress):
		writeJSON(w, http.StatusConflict, errorResponse{Code: "generation_in_progress", Message: service.UserMessage(err)})
	case errors.Is(err, llm.ErrMissingAPIKey), errors.Is(err, llm.ErrService):
		writeJSON(w, http.StatusBadGateway, errorResponse{Code: "generation_failed", Message: service.UserMessage(err)})
	case errors.Is(err, service.ErrUnexpected):
		writeJSON(w, http.StatusBadGateway, errorResponse{Code: "unexpected", Message: service.UserMessage(err)})
	case isNotFound(err):
		writeError(w, http.StatusNotFound, "not_found", err)
	case isInvalid(err):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrPlayerNotFound) ||
		errors.Is(err, repository.ErrCustomSkillNotFound) ||
		errors.Is(err, repository.ErrPlanNotFound) ||
		errors.Is(err, service.ErrNoCurrentPlan)
}

func isInvalid(err error) bool {
	return errors.Is(err, ErrBadRequest) ||
		errors.Is(err, repository.ErrInvalidPlayer) ||
		errors.Is(err, repository.ErrUnknownCategory) ||
		errors.Is(err, repository.ErrDuplicateCategory) ||
		errors.Is(err, model.ErrInvalidSkillLevel) ||
		errors.Is(err, model.ErrInvalidPosition) ||
		errors.Is(err, model.ErrInvalidMode)
}
