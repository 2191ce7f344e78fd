package memory

import (
	"context"

	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
	"github.com/jhoicas/ticket-logger-api/internal/domain/repository"
)

// RegionRepo implementa repository.RegionRepository.
type RegionRepo struct{ s *Store }

func NewRegionRepository(s *Store) *RegionRepo { return &RegionRepo{s: s} }

var _ repository.RegionRepository = (*RegionRepo)(nil)

func (r *RegionRepo) codeTaken(code string, exceptID int64) bool {
	for id, v := range r.s.regions {
		if v.Code == code && id != exceptID {
			return true
		}
	}
	return false
}

func (r *RegionRepo) Create(_ context.Context, region *entity.Region) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.codeTaken(region.Code, 0) {
		return duplicate("regions", region.Code)
	}
	region.ID = r.s.nextID()
	r.s.regions[region.ID] = *region
	return nil
}

func (r *RegionRepo) GetByID(_ context.Context, id int64) (*entity.Region, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	v, ok := r.s.regions[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *RegionRepo) Update(_ context.Context, region *entity.Region) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.regions[region.ID]; !ok {
		return missingRef("region", region.ID)
	}
	if r.codeTaken(region.Code, region.ID) {
		return duplicate("regions", region.Code)
	}
	r.s.regions[region.ID] = *region
	return nil
}

func (r *RegionRepo) List(_ context.Context, limit, offset int) ([]*entity.Region, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Region
	for _, id := range window(sortedIDs(r.s.regions), limit, offset) {
		v := r.s.regions[id]
		out = append(out, &v)
	}
	return out, nil
}

func (r *RegionRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.provinces {
		if p.RegionID == id {
			return inUse("regions")
		}
	}
	delete(r.s.regions, id)
	return nil
}

func (r *RegionRepo) ExistsByCode(_ context.Context, code string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.codeTaken(code, 0), nil
}

func (r *RegionRepo) ExistsByCodeAndNotID(_ context.Context, code string, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.codeTaken(code, id), nil
}
