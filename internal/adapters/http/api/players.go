package api

import (
	"context"
	"net/http"

	"github.com/okian/teamforge/internal/domain/model"
)

// RosterDependencies are the roster actions behind the players routes.
type RosterDependencies interface {
	AddPlayer(ctx context.Context, name string, position model.Position) (model.Player, error)
	RemovePlayer(ctx context.Context, id string) error
	UpdateSkill(ctx context.Context, id string, category model.SkillCategory, level model.SkillLevel) (model.Player, error)
	AddCustomSkill(ctx context.Context, id, name string, level model.SkillLevel) (model.Player, error)
	RemoveCustomSkill(ctx context.Context, id, skillID string) (model.Player, error)
	AddSkillCategory(ctx context.Context, category model.SkillCategory) error
	Roster(ctx context.Context) []model.Player
	Player(ctx context.Context, id string) (model.Player, error)
	Categories(ctx context.Context) []model.SkillCategory
}

// PlayersHandler handles roster requests.
type PlayersHandler struct {
	deps RosterDependencies
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(deps RosterDependencies) *PlayersHandler {
	return &PlayersHandler{deps: deps}
}

type addPlayerRequest struct {
	Name     string         `json:"name"`
	Position model.Position `json:"position"`
}

type skillRequest struct {
	Level model.SkillLevel `json:"level"`
}

type customSkillRequest struct {
	Name  string           `json:"name"`
	Level model.SkillLevel `json:"level"`
}

type categoryRequest struct {
	Name model.SkillCategory `json:"name"`
}

// HandleList handles GET /players requests.
func (h *PlayersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Roster(r.Context()))
}

// HandleGet handles GET /players/{id} requests.
func (h *PlayersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.deps.Player(r.Context(), r.PathValue("id"))
	if err != nil {
		writeActionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// HandleAdd handles POST /players requests.
func (h *PlayersHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req addPlayerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeActionError(w, err)
		return
	}
	p, err := h.deps.AddPlayer(r.Context(), req.Name, req.Position)
	if err != nil {
		writeActionError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// HandleRemove handles DELETE /players/{id} requests.
func (h *PlayersHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.RemovePlayer(r.Context(), r.PathValue("id")); err != nil {
		writeActionError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleUpdateSkill handles PUT /players/{id}/skills/{category} requests.
func (h *PlayersHandler) HandleUpdateSkill(w http.ResponseWriter, r *http.Request) {
	var req skillRequest
	if err := decodeJSON(r, &req); err != nil {
		writeActionError(w, err)
		return
	}
	category := model.SkillCategory(r.PathValue("category"))
	p, err := h.deps.UpdateSkill(r.Context(), r.PathValue("id"), category, req.Level)
	if err != nil {
		writeActionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// HandleAddCustomSkill handles POST /players/{id}/custom-skills requests.
func (h *PlayersHandler) HandleAddCustomSkill(w http.ResponseWriter, r *http.Request) {
	var req customSkillRequest
	if err := decodeJSON(r, &req); err != nil {
		writeActionError(w, err)
		return
	}
	p, err := h.deps.AddCustomSkill(r.Context(), r.PathValue("id"), req.Name, req.Level)
	if err != nil {
		writeActionError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// HandleRemoveCustomSkill handles DELETE /players/{id}/custom-skills/{skillID} requests.
func (h *PlayersHandler) HandleRemoveCustomSkill(w http.ResponseWriter, r *http.Request) {
	p, err := h.deps.RemoveCustomSkill(r.Context(), r.PathValue("id"), r.PathValue("skillID"))
	if err != nil {
		writeActionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// HandleCategories handles GET /categories requests.
func (h *PlayersHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Categories(r.Context()))
}

// HandleAddCategory handles POST /categories requests.
func (h *PlayersHandler) HandleAddCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeActionError(w, err)
		return
	}
	if err := h.deps.AddSkillCategory(r.Context(), req.Name); err != nil {
		writeActionError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.deps.Categories(r.Context()))
}
