package repository

import (
	"errors"

	"lifedash/entities"
)

var ErrNotFound = errors.New("post not found")

type PostRepository interface {
	// Insert prepends: the feed stores newest entries first.
	Insert(p *entities.Post) error
	Update(p *entities.Post) error
	FindByID(id string) (*entities.Post, error)
	Delete(id string) bool
	All() []entities.Post
}
