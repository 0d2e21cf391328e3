package license

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("license not found")

type Repository interface {
	CreateBatch(licenses []License) ([]License, error)
	ListByUser(userID int) ([]License, error)
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []License
	nextID  int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) CreateBatch(licenses []License) ([]License, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]License, 0, len(licenses))
	for _, l := range licenses {
		l.ID = r.nextID
		r.nextID++
		r.storage = append(r.storage, l)
		out = append(out, l)
	}
	return out, nil
}

func (r *InMemoryRepository) ListByUser(userID int) ([]License, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]License, 0)
	for _, l := range r.storage {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}
