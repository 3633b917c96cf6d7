package repositoryImp

import (
	"sync"

	"lifedash/entities"
	"lifedash/pkg/goal/repository"
)

// Goals are session-only in the reference behavior, so the repository is a
// mutex-guarded in-memory collection that preserves insertion order.
type goalRepo struct {
	mu    sync.Mutex
	order []string
	byID  map[string]*entities.Goal
}

func New() repository.GoalRepository {
	return &goalRepo{byID: make(map[string]*entities.Goal)}
}

func (r *goalRepo) Insert(g *entities.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *g
	r.byID[g.ID] = &cp
	r.order = append(r.order, g.ID)
	return nil
}

func (r *goalRepo) Update(g *entities.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[g.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *g
	r.byID[g.ID] = &cp
	return nil
}

func (r *goalRepo) FindByID(id string) (*entities.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (r *goalRepo) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func (r *goalRepo) All() []entities.Goal {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Goal, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.byID[id])
	}
	return out
}
