package service

import "lifedash/entities"

type PostDraft struct {
	Author  string
	Content string
	Tags    []string
}

type PostService interface {
	Add(d PostDraft) (*entities.Post, error)
	// List returns the feed newest first.
	List() []entities.Post
	Like(id string) (*entities.Post, error)
	Delete(id string)
}
