package api

import (
	"context"
	"net/http"

	service "github.com/okian/teamforge/internal/app"
	"github.com/okian/teamforge/internal/domain/model"
)

// PlanDependencies are the current plan and library actions.
type PlanDependencies interface {
	CurrentPlan(ctx context.Context) (model.PracticePlan, bool)
	SavePlan(ctx context.Context) (model.PracticePlan, error)
	DiscardPlan(ctx context.Context)
	SavedPlans(ctx context.Context) []model.PracticePlan
	SavedPlan(ctx context.Context, id string) (model.PracticePlan, error)
}

// PlansHandler handles plan and library requests.
type PlansHandler struct {
	deps PlanDependencies
}

// NewPlansHandler creates a new plans handler.
func NewPlansHandler(deps PlanDependencies) *PlansHandler {
	return &PlansHandler{deps: deps}
}

// HandleCurrent handles GET /plan requests.
func (h *PlansHandler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.deps.CurrentPlan(r.Context())
	if !ok {
		writeActionError(w, service.ErrNoCurrentPlan)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// HandleDiscard handles DELETE /plan requests.
func (h *PlansHandler) HandleDiscard(w http.ResponseWriter, r *http.Request) {
	h.deps.DiscardPlan(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// HandleSave handles POST /plan/save requests.
func (h *PlansHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	saved, err := h.deps.SavePlan(r.Context())
	if err != nil {
		writeActionError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

// HandleList handles GET /plans requests.
func (h *PlansHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.SavedPlans(r.Context()))
}

// HandleGet handles GET /plans/{id} requests.
func (h *PlansHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	plan, err := h.deps.SavedPlan(r.Context(), r.PathValue("id"))
	if err != nil {
		writeActionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}
