package repositoryImp

import (
	"sync"

	"go.uber.org/zap"

	"lifedash/entities"
	"lifedash/pkg/journal/repository"
	"lifedash/pkg/storage"
)

// journalRepo mirrors the journal collection to the persisted blob store.
// Reads serve from memory; every mutation rewrites the blob. A corrupted or
// missing blob loads as an empty collection.
type journalRepo struct {
	mu    sync.Mutex
	store storage.Store
	log   *zap.SugaredLogger
	items []entities.Journal
}

func New(store storage.Store, log *zap.SugaredLogger) repository.JournalRepository {
	r := &journalRepo{store: store, log: log}
	storage.LoadJSON(store, storage.KeyJournals, &r.items)
	return r
}

// save is best-effort: failures are logged, never propagated.
func (r *journalRepo) save() {
	if err := storage.SaveJSON(r.store, storage.KeyJournals, r.items); err != nil {
		r.log.Errorw("persist journals", "err", err)
	}
}

func (r *journalRepo) Insert(j *entities.Journal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *j)
	r.save()
	return nil
}

func (r *journalRepo) Update(j *entities.Journal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == j.ID {
			r.items[i] = *j
			r.save()
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *journalRepo) FindByID(id string) (*entities.Journal, error) {
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

func (r *journalRepo) Delete(id string) bool {
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

func (r *journalRepo) All() []entities.Journal {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Journal, len(r.items))
	copy(out, r.items)
	return out
}

func (r *journalRepo) Reload() {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []entities.Journal
	storage.LoadJSON(r.store, storage.KeyJournals, &items)
	r.items = items
}
