package memory

import (
	"context"

	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
	"github.com/jhoicas/ticket-logger-api/internal/domain/repository"
)

// CategoryRepo implementa repository.CategoryRepository.
type CategoryRepo struct{ s *Store }

func NewCategoryRepository(s *Store) *CategoryRepo { return &CategoryRepo{s: s} }

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

func (r *CategoryRepo) nameTaken(name string, exceptID int64) bool {
	for id, v := range r.s.categories {
		if v.Name == name && id != exceptID {
			return true
		}
	}
	return false
}

// load copia la categoría con su padre directo; el padre no lleva el abuelo.
func (r *CategoryRepo) load(id int64) (*entity.Category, bool) {
	v, ok := r.s.categories[id]
	if !ok {
		return nil, false
	}
	if v.ParentID != nil {
		if p, ok := r.s.categories[*v.ParentID]; ok {
			p.Parent = nil
			v.Parent = &p
		}
	}
	return &v, true
}

func (r *CategoryRepo) store(c *entity.Category) error {
	if c.ParentID != nil {
		if _, ok := r.s.categories[*c.ParentID]; !ok {
			return missingRef("category", *c.ParentID)
		}
	}
	v := *c
	v.Parent = nil
	if c.ParentID != nil {
		pid := *c.ParentID
		v.ParentID = &pid
	}
	r.s.categories[c.ID] = v
	return nil
}

func (r *CategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.nameTaken(c.Name, 0) {
		return duplicate("categories", c.Name)
	}
	c.ID = r.s.nextID()
	if err := r.store(c); err != nil {
		c.ID = 0
		return err
	}
	return nil
}

func (r *CategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, _ := r.load(id)
	return c, nil
}

func (r *CategoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[c.ID]; !ok {
		return missingRef("category", c.ID)
	}
	if r.nameTaken(c.Name, c.ID) {
		return duplicate("categories", c.Name)
	}
	return r.store(c)
}

func (r *CategoryRepo) List(_ context.Context, limit, offset int) ([]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Category
	for _, id := range window(sortedIDs(r.s.categories), limit, offset) {
		c, _ := r.load(id)
		out = append(out, c)
	}
	return out, nil
}

func (r *CategoryRepo) ListByParent(_ context.Context, parentID int64) ([]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Category
	for _, id := range sortedIDs(r.s.categories) {
		v := r.s.categories[id]
		if v.ParentID != nil && *v.ParentID == parentID {
			c, _ := r.load(id)
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *CategoryRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, v := range r.s.categories {
		if v.ParentID != nil && *v.ParentID == id {
			return inUse("categories")
		}
	}
	delete(r.s.categories, id)
	return nil
}

func (r *CategoryRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.nameTaken(name, 0), nil
}

func (r *CategoryRepo) ExistsByNameAndNotID(_ context.Context, name string, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.nameTaken(name, id), nil
}
