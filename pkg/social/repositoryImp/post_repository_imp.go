package repositoryImp

import (
	"sync"

	"go.uber.org/zap"

	"lifedash/entities"
	"lifedash/pkg/social/repository"
	"lifedash/pkg/storage"
)

type postRepo struct {
	mu    sync.Mutex
	store storage.Store
	log   *zap.SugaredLogger
	items []entities.Post
}

func New(store storage.Store, log *zap.SugaredLogger) repository.PostRepository {
	r := &postRepo{store: store, log: log}
	storage.LoadJSON(store, storage.KeyPosts, &r.items)
	return r
}

func (r *postRepo) save() {
	if err := storage.SaveJSON(r.store, storage.KeyPosts, r.items); err != nil {
		r.log.Errorw("persist posts", "err", err)
	}
}

func (r *postRepo) Insert(p *entities.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]entities.Post{*p}, r.items...)
	r.save()
	return nil
}

func (r *postRepo) Update(p *entities.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == p.ID {
			r.items[i] = *p
			r.save()
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *postRepo) FindByID(id string) (*entities.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			cp := r.items[i]
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *postRepo) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			r.save()
			return true
		}
	}
	return false
}

func (r *postRepo) All() []entities.Post {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Post, len(r.items))
	copy(out, r.items)
	return out
}
