package order

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("order not found")

type Repository interface {
	Create(ord Order) (Order, error)
	UpdateStatus(orderID int, status, paymentStatus string) error
	ListByUser(userID int) ([]Order, error)
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Order
	nextID  int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Create(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ord.OrderID = r.nextID
	r.nextID++
	r.storage = append(r.storage, ord)
	return ord, nil
}

func (r *InMemoryRepository) UpdateStatus(orderID int, status, paymentStatus string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].OrderID == orderID {
			r.storage[i].Status = status
			r.storage[i].PaymentStatus = paymentStatus
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) ListByUser(userID int) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, 0)
	for _, ord := range r.storage {
		if ord.UserID == userID {
			out = append(out, ord)
		}
	}
	return out, nil
}
