package api

import (
	"context"
	"net/http"

	"github.com/okian/teamforge/internal/domain/model"
	"github.com/okian/teamforge/internal/domain/types"
)

// PlannerDependencies are the selection, injury form and generation actions.
type PlannerDependencies interface {
	TogglePlannerSelection(ctx context.Context, id string) ([]string, error)
	UpdateRecoveryForm(ctx context.Context, form types.RecoveryForm) error
	Generate(ctx context.Context, mode model.Mode) (model.PracticePlan, error)
	State(ctx context.Context) types.State
}

// PlannerHandler handles planner requests.
type PlannerHandler struct {
	deps PlannerDependencies
}

// NewPlannerHandler creates a new planner handler.
func NewPlannerHandler(deps PlannerDependencies) *PlannerHandler {
	return &PlannerHandler{deps: deps}
}

// HandleToggleSelection handles POST /planner/selection/{id} requests.
func (h *PlannerHandler) HandleToggleSelection(w http.ResponseWriter, r *http.Request) {
	if _, err := h.deps.TogglePlannerSelection(r.Context(), r.PathValue("id")); err != nil {
		writeActionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.State(r.Context()))
}

// HandleUpdateRecovery handles PUT /recovery requests.
func (h *PlannerHandler) HandleUpdateRecovery(w http.ResponseWriter, r *http.Request) {
	var form types.RecoveryForm
	if err := decodeJSON(r, &form); err != nil {
		writeActionError(w, err)
		return
	}
	if err := h.deps.UpdateRecoveryForm(r.Context(), form); err != nil {
		writeActionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.State(r.Context()))
}

// HandleGenerate handles POST /generate/{mode} requests. The attempt is
// detached from the request so a dropped client does not abort it; the
// generator's own timeout still applies.
func (h *PlannerHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	mode, err := model.ParseMode(r.PathValue("mode"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	plan, err := h.deps.Generate(context.WithoutCancel(r.Context()), mode)
	if err != nil {
		writeActionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// HandleState handles GET /state requests.
func (h *PlannerHandler) HandleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.State(r.Context()))
}
