package memory

import (
	"context"
	"slices"

	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
	"github.com/jhoicas/ticket-logger-api/internal/domain/repository"
)

// ProductRepo implementa repository.ProductRepository.
type ProductRepo struct{ s *Store }

func NewProductRepository(s *Store) *ProductRepo { return &ProductRepo{s: s} }

var _ repository.ProductRepository = (*ProductRepo)(nil)

func (r *ProductRepo) nameTaken(name string, exceptID int64) bool {
	for id, v := range r.s.products {
		if v.Name == name && id != exceptID {
			return true
		}
	}
	return false
}

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.nameTaken(p.Name, 0) {
		return duplicate("products", p.Name)
	}
	p.ID = r.s.nextID()
	r.s.products[p.ID] = *p
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	v, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *ProductRepo) GetByIDs(_ context.Context, ids []int64) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Product
	for _, id := range sortedIDs(r.s.products) {
		if slices.Contains(ids, id) {
			v := r.s.products[id]
			out = append(out, &v)
		}
	}
	return out, nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; !ok {
		return missingRef("product", p.ID)
	}
	if r.nameTaken(p.Name, p.ID) {
		return duplicate("products", p.Name)
	}
	r.s.products[p.ID] = *p
	return nil
}

func (r *ProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Product
	for _, id := range window(sortedIDs(r.s.products), limit, offset) {
		v := r.s.products[id]
		out = append(out, &v)
	}
	return out, nil
}

func (r *ProductRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, ids := range r.s.ticketProducts {
		if slices.Contains(ids, id) {
			return inUse("products")
		}
	}
	delete(r.s.products, id)
	return nil
}

func (r *ProductRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.nameTaken(name, 0), nil
}

func (r *ProductRepo) ExistsByNameAndNotID(_ context.Context, name string, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.nameTaken(name, id), nil
}
