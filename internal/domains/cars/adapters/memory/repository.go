package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/Apurer/devcars-api/internal/domains/cars/domain"
	"github.com/Apurer/devcars-api/internal/domains/cars/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory car persistence adapter.
type Repository struct {
	mu     sync.RWMutex
	cars   map[int64]*domain.Car
	nextID int64
}

func NewRepository() *Repository {
	return &Repository{cars: map[int64]*domain.Car{}}
}

// Save inserts new cars and applies the optimistic version check on updates.
func (r *Repository) Save(_ context.Context, car *domain.Car) (*domain.Car, error) {
	if car == nil {
		return nil, errors.New("car is nil")
	}
	clone := *car
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
		clone.Version = 1
	} else {
		existing, ok := r.cars[clone.ID]
		if !ok {
			return nil, ports.ErrNotFound
		}
		if existing.Version != clone.Version {
			return nil, ports.ErrVersionConflict
		}
		clone.Version++
	}
	r.cars[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Car, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	car, ok := r.cars[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *car
	return &clone, nil
}

func (r *Repository) FindByStatus(_ context.Context, status domain.Status) ([]*domain.Car, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Car, 0)
	for _, car := range r.cars {
		if car.Status == status {
			clone := *car
			list = append(list, &clone)
		}
	}
	sortByID(list)
	return list, nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Car, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Car, 0, len(r.cars))
	for _, car := range r.cars {
		clone := *car
		list = append(list, &clone)
	}
	sortByID(list)
	return list, nil
}

func sortByID(list []*domain.Car) {
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
}
