package memory

import (
	"context"

	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
	"github.com/jhoicas/ticket-logger-api/internal/domain/repository"
)

// ProvinceRepo implementa repository.ProvinceRepository.
type ProvinceRepo struct{ s *Store }

func NewProvinceRepository(s *Store) *ProvinceRepo { return &ProvinceRepo{s: s} }

var _ repository.ProvinceRepository = (*ProvinceRepo)(nil)

func (r *ProvinceRepo) codeTaken(code string, exceptID int64) bool {
	for id, v := range r.s.provinces {
		if v.Code == code && id != exceptID {
			return true
		}
	}
	return false
}

// load devuelve una copia con la región cargada. Requiere el lock tomado.
func (s *Store) loadProvince(id int64) (*entity.Province, bool) {
	v, ok := s.provinces[id]
	if !ok {
		return nil, false
	}
	if reg, ok := s.regions[v.RegionID]; ok {
		v.Region = &reg
	}
	return &v, true
}

func (r *ProvinceRepo) check(p *entity.Province) error {
	if _, ok := r.s.regions[p.RegionID]; !ok {
		return missingRef("region", p.RegionID)
	}
	return nil
}

func (r *ProvinceRepo) Create(_ context.Context, p *entity.Province) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.codeTaken(p.Code, 0) {
		return duplicate("provinces", p.Code)
	}
	if err := r.check(p); err != nil {
		return err
	}
	p.ID = r.s.nextID()
	row := *p
	row.Region = nil
	r.s.provinces[p.ID] = row
	return nil
}

func (r *ProvinceRepo) GetByID(_ context.Context, id int64) (*entity.Province, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, _ := r.s.loadProvince(id)
	return p, nil
}

func (r *ProvinceRepo) Update(_ context.Context, p *entity.Province) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.provinces[p.ID]; !ok {
		return missingRef("province", p.ID)
	}
	if r.codeTaken(p.Code, p.ID) {
		return duplicate("provinces", p.Code)
	}
	if err := r.check(p); err != nil {
		return err
	}
	row := *p
	row.Region = nil
	r.s.provinces[p.ID] = row
	return nil
}

func (r *ProvinceRepo) List(_ context.Context, limit, offset int) ([]*entity.Province, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Province
	for _, id := range window(sortedIDs(r.s.provinces), limit, offset) {
		p, _ := r.s.loadProvince(id)
		out = append(out, p)
	}
	return out, nil
}

func (r *ProvinceRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, l := range r.s.locations {
		if l.ProvinceID == id {
			return inUse("provinces")
		}
	}
	delete(r.s.provinces, id)
	return nil
}

func (r *ProvinceRepo) ExistsByCode(_ context.Context, code string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.codeTaken(code, 0), nil
}

func (r *ProvinceRepo) ExistsByCodeAndNotID(_ context.Context, code string, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.codeTaken(code, id), nil
}
