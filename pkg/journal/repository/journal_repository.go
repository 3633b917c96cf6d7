package repository

import (
	"errors"

	"lifedash/entities"
)

var ErrNotFound = errors.New("journal not found")

type JournalRepository interface {
	Insert(j *entities.Journal) error
	Update(j *entities.Journal) error
	FindByID(id string) (*entities.Journal, error)
	// Delete reports whether a record was actually removed.
	Delete(id string) bool
	All() []entities.Journal
	// Reload discards in-memory state and re-reads the persisted blob.
	// Listeners call this when an invalidation signal arrives.
	Reload()
}
