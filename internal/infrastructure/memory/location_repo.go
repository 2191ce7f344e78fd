package memory

import (
	"context"

	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
	"github.com/jhoicas/ticket-logger-api/internal/domain/repository"
)

// LocationRepo implementa repository.LocationRepository.
type LocationRepo struct{ s *Store }

func NewLocationRepository(s *Store) *LocationRepo { return &LocationRepo{s: s} }

var _ repository.LocationRepository = (*LocationRepo)(nil)

func (r *LocationRepo) addressTaken(address string, exceptID int64) bool {
	for id, v := range r.s.locations {
		if v.Address == address && id != exceptID {
			return true
		}
	}
	return false
}

func (s *Store) loadLocation(id int64) (*entity.Location, bool) {
	v, ok := s.locations[id]
	if !ok {
		return nil, false
	}
	if sm, ok := s.supermarkets[v.SupermarketID]; ok {
		v.Supermarket = &sm
	}
	if p, ok := s.loadProvince(v.ProvinceID); ok {
		v.Province = p
	}
	return &v, true
}

func (r *LocationRepo) check(l *entity.Location) error {
	if _, ok := r.s.supermarkets[l.SupermarketID]; !ok {
		return missingRef("supermarket", l.SupermarketID)
	}
	if _, ok := r.s.provinces[l.ProvinceID]; !ok {
		return missingRef("province", l.ProvinceID)
	}
	return nil
}

func locationRow(l *entity.Location) entity.Location {
	v := *l
	v.Supermarket, v.Province = nil, nil
	return v
}

func (r *LocationRepo) Create(_ context.Context, l *entity.Location) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.addressTaken(l.Address, 0) {
		return duplicate("locations", l.Address)
	}
	if err := r.check(l); err != nil {
		return err
	}
	l.ID = r.s.nextID()
	r.s.locations[l.ID] = locationRow(l)
	return nil
}

func (r *LocationRepo) GetByID(_ context.Context, id int64) (*entity.Location, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	l, _ := r.s.loadLocation(id)
	return l, nil
}

func (r *LocationRepo) Update(_ context.Context, l *entity.Location) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.locations[l.ID]; !ok {
		return missingRef("location", l.ID)
	}
	if r.addressTaken(l.Address, l.ID) {
		return duplicate("locations", l.Address)
	}
	if err := r.check(l); err != nil {
		return err
	}
	r.s.locations[l.ID] = locationRow(l)
	return nil
}

func (r *LocationRepo) List(_ context.Context, limit, offset int) ([]*entity.Location, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Location
	for _, id := range window(sortedIDs(r.s.locations), limit, offset) {
		l, _ := r.s.loadLocation(id)
		out = append(out, l)
	}
	return out, nil
}

func (r *LocationRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.tickets {
		if t.LocationID == id {
			return inUse("locations")
		}
	}
	delete(r.s.locations, id)
	return nil
}

func (r *LocationRepo) ExistsByAddress(_ context.Context, address string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.addressTaken(address, 0), nil
}

func (r *LocationRepo) ExistsByAddressAndNotID(_ context.Context, address string, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.addressTaken(address, id), nil
}
