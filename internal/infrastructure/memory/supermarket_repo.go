package memory

import (
	"context"

	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
	"github.com/jhoicas/ticket-logger-api/internal/domain/repository"
)

// SupermarketRepo implementa repository.SupermarketRepository.
type SupermarketRepo struct{ s *Store }

func NewSupermarketRepository(s *Store) *SupermarketRepo { return &SupermarketRepo{s: s} }

var _ repository.SupermarketRepository = (*SupermarketRepo)(nil)

func (r *SupermarketRepo) nameTaken(name string, exceptID int64) bool {
	for id, v := range r.s.supermarkets {
		if v.Name == name && id != exceptID {
			return true
		}
	}
	return false
}

func (r *SupermarketRepo) Create(_ context.Context, sm *entity.Supermarket) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.nameTaken(sm.Name, 0) {
		return duplicate("supermarkets", sm.Name)
	}
	sm.ID = r.s.nextID()
	r.s.supermarkets[sm.ID] = *sm
	return nil
}

func (r *SupermarketRepo) GetByID(_ context.Context, id int64) (*entity.Supermarket, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	v, ok := r.s.supermarkets[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *SupermarketRepo) Update(_ context.Context, sm *entity.Supermarket) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.supermarkets[sm.ID]; !ok {
		return missingRef("supermarket", sm.ID)
	}
	if r.nameTaken(sm.Name, sm.ID) {
		return duplicate("supermarkets", sm.Name)
	}
	r.s.supermarkets[sm.ID] = *sm
	return nil
}

func (r *SupermarketRepo) List(_ context.Context, limit, offset int) ([]*entity.Supermarket, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Supermarket
	for _, id := range window(sortedIDs(r.s.supermarkets), limit, offset) {
		v := r.s.supermarkets[id]
		out = append(out, &v)
	}
	return out, nil
}

func (r *SupermarketRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, l := range r.s.locations {
		if l.SupermarketID == id {
			return inUse("supermarkets")
		}
	}
	delete(r.s.supermarkets, id)
	return nil
}

func (r *SupermarketRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.nameTaken(name, 0), nil
}

func (r *SupermarketRepo) ExistsByNameAndNotID(_ context.Context, name string, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.nameTaken(name, id), nil
}
