package repositoryImp

import (
	"sync"

	"lifedash/entities"
	"lifedash/pkg/health/repository"
)

type healthRepo struct {
	mu    sync.Mutex
	order []string
	byID  map[string]*entities.HealthMetric
	byDay map[string]string // calendar day -> record id
}

func New() repository.HealthRepository {
	return &healthRepo{
		byID:  make(map[string]*entities.HealthMetric),
		byDay: make(map[string]string),
	}
}

func (r *healthRepo) Upsert(m *entities.HealthMetric) (*entities.HealthMetric, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	day := repository.DayKey(m.Date)
	if id, ok := r.byDay[day]; ok {
		cur := r.byID[id]
		keepID, keepCreated := cur.ID, cur.CreatedAt
		*cur = *m
		cur.ID = keepID
		cur.CreatedAt = keepCreated
		cp := *cur
		return &cp, false
	}
	cp := *m
	r.byID[m.ID] = &cp
	r.byDay[day] = m.ID
	r.order = append(r.order, m.ID)
	out := cp
	return &out, true
}

func (r *healthRepo) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.byID[id]
	if !ok {
		return
	}
	delete(r.byDay, repository.DayKey(m.Date))
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func (r *healthRepo) All() []entities.HealthMetric {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.HealthMetric, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.byID[id])
	}
	return out
}

func (r *healthRepo) Last() (*entities.HealthMetric, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.order) == 0 {
		return nil, false
	}
	cp := *r.byID[r.order[len(r.order)-1]]
	return &cp, true
}

func (r *healthRepo) FindByDay(day string) (*entities.HealthMetric, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byDay[day]
	if !ok {
		return nil, false
	}
	cp := *r.byID[id]
	return &cp, true
}
