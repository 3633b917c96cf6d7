package repositoryImp

import (
	"sort"
	"sync"

	"lifedash/entities"
	"lifedash/pkg/meal/repository"
)

type mealRepo struct {
	mu    sync.Mutex
	items []entities.MealRecord
}

func New() repository.MealRepository { return &mealRepo{} }

func (r *mealRepo) Insert(m *entities.MealRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *m)
	return nil
}

func (r *mealRepo) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return
		}
	}
}

func (r *mealRepo) All() []entities.MealRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.MealRecord, len(r.items))
	copy(out, r.items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}
