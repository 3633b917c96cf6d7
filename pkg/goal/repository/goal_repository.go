package repository

import (
	"errors"

	"lifedash/entities"
)

var ErrNotFound = errors.New("goal not found")

type GoalRepository interface {
	Insert(g *entities.Goal) error
	Update(g *entities.Goal) error
	FindByID(id string) (*entities.Goal, error)
	// Delete is idempotent: removing an absent id is a no-op.
	Delete(id string)
	All() []entities.Goal
}
