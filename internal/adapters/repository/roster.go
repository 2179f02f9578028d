package repository

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/okian/teamforge/internal/domain/model"
	"github.com/okian/teamforge/pkg/metrics"
)

// Roster mutation labels.
const (
	actionAddPlayer         = "add_player"
	actionRemovePlayer      = "remove_player"
	actionUpdateSkill       = "update_skill"
	actionAddCustomSkill    = "add_custom_skill"
	actionRemoveCustomSkill = "remove_custom_skill"
	actionRegisterCategory  = "register_category"
)

// InMemoryRoster is a mutex-guarded RosterStore.
type InMemoryRoster struct {
	mu         sync.RWMutex
	order      []string
	byID       map[string]model.Player
	categories []model.SkillCategory
	opts       options
}

var _ RosterStore = (*InMemoryRoster)(nil)

// NewInMemoryRoster returns an empty roster rated over the built-in categories.
func NewInMemoryRoster(opts ...Option) *InMemoryRoster {
	r := &InMemoryRoster{
		byID:       make(map[string]model.Player),
		categories: model.SkillCategories(),
		opts:       applyOptions(opts),
	}
	metrics.UpdateRosterSize(0)
	return r
}

// Add implements RosterStore.Add.
func (r *InMemoryRoster) Add(_ context.Context, name string, position model.Position) (model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Player{}, fmt.Errorf("%w: name must not be blank", ErrInvalidPlayer)
	}
	pos, err := model.ParsePosition(string(position))
	if err != nil {
		return model.Player{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p := model.Player{
		ID:           r.opts.newID(),
		Name:         name,
		Position:     pos,
		Skills:       make(map[model.SkillCategory]model.SkillLevel, len(r.categories)),
		CustomSkills: []model.CustomSkill{},
	}
	for _, c := range r.categories {
		p.Skills[c] = model.Neutral
	}
	r.storeLocked(p)
	metrics.RecordRosterMutation(actionAddPlayer)
	return p.Clone(), nil
}

// Insert implements RosterStore.Insert.
func (r *InMemoryRoster) Insert(_ context.Context, p model.Player) (model.Player, error) {
	p = p.Clone()
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return model.Player{}, fmt.Errorf("%w: name must not be blank", ErrInvalidPlayer)
	}
	pos, err := model.ParsePosition(string(p.Position))
	if err != nil {
		return model.Player{}, err
	}
	p.Position = pos

	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == "" {
		p.ID = r.opts.newID()
	}
	if _, exists := r.byID[p.ID]; exists {
		return model.Player{}, fmt.Errorf("%w: %s", ErrDuplicatePlayer, p.ID)
	}
	for c, lvl := range p.Skills {
		if !slices.Contains(r.categories, c) {
			return model.Player{}, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
		}
		if !lvl.Valid() {
			return model.Player{}, fmt.Errorf("%w: %s rated %d", model.ErrInvalidSkillLevel, c, lvl)
		}
	}
	for _, c := range r.categories {
		if _, ok := p.Skills[c]; !ok {
			p.Skills[c] = model.Neutral
		}
	}
	if p.CustomSkills == nil {
		p.CustomSkills = []model.CustomSkill{}
	}
	for i := range p.CustomSkills {
		cs := &p.CustomSkills[i]
		cs.Name = strings.TrimSpace(cs.Name)
		if cs.Name == "" {
			return model.Player{}, fmt.Errorf("%w: custom skill name must not be blank", ErrInvalidPlayer)
		}
		if !cs.Level.Valid() {
			return model.Player{}, fmt.Errorf("%w: custom skill %q", model.ErrInvalidSkillLevel, cs.Name)
		}
		if cs.ID == "" {
			cs.ID = r.opts.newID()
		}
	}

	r.storeLocked(p)
	metrics.RecordRosterMutation(actionAddPlayer)
	return p.Clone(), nil
}

func (r *InMemoryRoster) storeLocked(p model.Player) {
	r.byID[p.ID] = p
	r.order = append(r.order, p.ID)
	metrics.UpdateRosterSize(len(r.order))
}

// Remove implements RosterStore.Remove.
func (r *InMemoryRoster) Remove(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return fmt.Errorf("%w: %s", ErrPlayerNotFound, id)
	}
	delete(r.byID, id)
	r.order = slices.DeleteFunc(r.order, func(v string) bool { return v == id })
	metrics.UpdateRosterSize(len(r.order))
	metrics.RecordRosterMutation(actionRemovePlayer)
	return nil
}

// Get implements RosterStore.Get.
func (r *InMemoryRoster) Get(_ context.Context, id string) (model.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return model.Player{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, id)
	}
	return p.Clone(), nil
}

// List implements RosterStore.List.
func (r *InMemoryRoster) List(_ context.Context) []model.Player {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Player, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out
}

// Count implements RosterStore.Count.
func (r *InMemoryRoster) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// UpdateSkill implements RosterStore.UpdateSkill.
func (r *InMemoryRoster) UpdateSkill(_ context.Context, id string, category model.SkillCategory, level model.SkillLevel) (model.Player, error) {
	if !level.Valid() {
		return model.Player{}, fmt.Errorf("%w: %d", model.ErrInvalidSkillLevel, level)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !slices.Contains(r.categories, category) {
		return model.Player{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	p, ok := r.byID[id]
	if !ok {
		return model.Player{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, id)
	}
	p = p.Clone()
	p.Skills[category] = level
	r.byID[id] = p
	metrics.RecordRosterMutation(actionUpdateSkill)
	return p.Clone(), nil
}

// AddCustomSkill implements RosterStore.AddCustomSkill.
func (r *InMemoryRoster) AddCustomSkill(_ context.Context, id, name string, level model.SkillLevel) (model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Player{}, fmt.Errorf("%w: custom skill name must not be blank", ErrInvalidPlayer)
	}
	if !level.Valid() {
		return model.Player{}, fmt.Errorf("%w: %d", model.ErrInvalidSkillLevel, level)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return model.Player{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, id)
	}
	p = p.Clone()
	p.CustomSkills = append(p.CustomSkills, model.CustomSkill{ID: r.opts.newID(), Name: name, Level: level})
	r.byID[id] = p
	metrics.RecordRosterMutation(actionAddCustomSkill)
	return p.Clone(), nil
}

// RemoveCustomSkill implements RosterStore.RemoveCustomSkill.
func (r *InMemoryRoster) RemoveCustomSkill(_ context.Context, id, skillID string) (model.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return model.Player{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, id)
	}
	idx := slices.IndexFunc(p.CustomSkills, func(cs model.CustomSkill) bool { return cs.ID == skillID })
	if idx < 0 {
		return model.Player{}, fmt.Errorf("%w: %s", ErrCustomSkillNotFound, skillID)
	}
	p = p.Clone()
	p.CustomSkills = slices.Delete(p.CustomSkills, idx, idx+1)
	r.byID[id] = p
	metrics.RecordRosterMutation(actionRemoveCustomSkill)
	return p.Clone(), nil
}

// RegisterCategory implements RosterStore.RegisterCategory.
func (r *InMemoryRoster) RegisterCategory(_ context.Context, category model.SkillCategory) error {
	if strings.TrimSpace(string(category)) == "" {
		return fmt.Errorf("%w: blank category", ErrUnknownCategory)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if slices.Contains(r.categories, category) {
		return fmt.Errorf("%w: %q", ErrDuplicateCategory, category)
	}
	r.categories = append(r.categories, category)
	for id, p := range r.byID {
		p = p.Clone()
		p.Skills[category] = model.Neutral
		r.byID[id] = p
	}
	metrics.RecordRosterMutation(actionRegisterCategory)
	return nil
}

// Categories implements RosterStore.Categories.
func (r *InMemoryRoster) Categories(_ context.Context) []model.SkillCategory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.categories)
}
