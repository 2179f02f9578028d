// Package repository holds the in-memory roster and plan library.
package repository

import (
	"context"

	"github.com/okian/teamforge/internal/domain/model"
)

// RosterStore is the authority over players and their skill ratings.
// Every returned Player is a copy; callers never share maps with the store.
type RosterStore interface {
	// Add creates a player with every registered category rated Neutral.
	Add(ctx context.Context, name string, position model.Position) (model.Player, error)
	// Insert stores a fully described player, backfilling missing categories
	// with Neutral and assigning ids where they are empty.
	Insert(ctx context.Context, p model.Player) (model.Player, error)
	// Remove deletes a player. Returns ErrPlayerNotFound if the id is unknown.
	Remove(ctx context.Context, id string) error

	Get(ctx context.Context, id string) (model.Player, error)
	// List returns players in insertion order.
	List(ctx context.Context) []model.Player
	Count(ctx context.Context) int

	UpdateSkill(ctx context.Context, id string, category model.SkillCategory, level model.SkillLevel) (model.Player, error)
	AddCustomSkill(ctx context.Context, id, name string, level model.SkillLevel) (model.Player, error)
	RemoveCustomSkill(ctx context.Context, id, skillID string) (model.Player, error)

	// RegisterCategory adds a category and rates it Neutral for every player.
	RegisterCategory(ctx context.Context, category model.SkillCategory) error
	// Categories returns the registered categories in display order.
	Categories(ctx context.Context) []model.SkillCategory
}
