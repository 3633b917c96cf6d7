package serviceImp

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"lifedash/entities"
	repo "lifedash/pkg/social/repository"
	"lifedash/pkg/social/service"
)

type postSvc struct{ r repo.PostRepository }

func NewPostService(r repo.PostRepository) service.PostService { return &postSvc{r} }

func (s *postSvc) Add(d service.PostDraft) (*entities.Post, error) {
	content := strings.TrimSpace(d.Content)
	if content == "" {
		return nil, errors.New("content is required")
	}
	author := strings.TrimSpace(d.Author)
	if author == "" {
		author = "anonymous"
	}
	p := &entities.Post{
		ID:        uuid.New().String(),
		Author:    author,
		Content:   content,
		Tags:      append([]string(nil), d.Tags...),
		CreatedAt: time.Now(),
	}
	if err := s.r.Insert(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *postSvc) List() []entities.Post { return s.r.All() }

func (s *postSvc) Like(id string) (*entities.Post, error) {
	cur, err := s.r.FindByID(id)
	if err != nil {
		return nil, err
	}
	cur.Likes++
	if err := s.r.Update(cur); err != nil {
		return nil, err
	}
	return cur, nil
}

func (s *postSvc) Delete(id string) { s.r.Delete(id) }
