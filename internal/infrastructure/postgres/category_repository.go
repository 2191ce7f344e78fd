package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
	"github.com/jhoicas/ticket-logger-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
// Tabla plana con parent_id; las lecturas hacen LEFT JOIN al padre directo y nada más.
type CategoryRepo struct {
	q Querier
}

func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

const categorySelect = `
	SELECT c.id, c.name, c.image, c.parent_id, c.created_at, c.updated_at,
	       p.id, p.name, p.image, p.parent_id
	FROM categories c
	LEFT JOIN categories p ON p.id = c.parent_id`

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	var pID, pParent *int64
	var pName, pImage *string
	if err := row.Scan(&c.ID, &c.Name, &c.Image, &c.ParentID, &c.CreatedAt, &c.UpdatedAt,
		&pID, &pName, &pImage, &pParent); err != nil {
		return nil, err
	}
	if pID != nil {
		c.Parent = &entity.Category{ID: *pID, ParentID: pParent}
		if pName != nil {
			c.Parent.Name = *pName
		}
		if pImage != nil {
			c.Parent.Image = *pImage
		}
	}
	return &c, nil
}

func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	query := `
		INSERT INTO categories (name, image, parent_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, c.Name, c.Image, c.ParentID, c.CreatedAt, c.UpdatedAt).Scan(&c.ID); err != nil {
		return writeErr("insert category", err)
	}
	return nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	c, err := scanCategory(r.q.QueryRow(ctx, categorySelect+` WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	query := `UPDATE categories SET name = $2, image = $3, parent_id = $4, updated_at = $5 WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, c.ID, c.Name, c.Image, c.ParentID, c.UpdatedAt); err != nil {
		return writeErr("update category", err)
	}
	return nil
}

func (r *CategoryRepo) list(ctx context.Context, op, sql string, args ...any) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *CategoryRepo) List(ctx context.Context, limit, offset int) ([]*entity.Category, error) {
	return r.list(ctx, "list categories", categorySelect+` ORDER BY c.id LIMIT $1 OFFSET $2`, limit, offset)
}

// ListByParent lista las hijas directas de parentID.
func (r *CategoryRepo) ListByParent(ctx context.Context, parentID int64) ([]*entity.Category, error) {
	return r.list(ctx, "list child categories", categorySelect+` WHERE c.parent_id = $1 ORDER BY c.id`, parentID)
}

func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		return deleteErr("delete category", err)
	}
	return nil
}

func (r *CategoryRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	return exists(ctx, r.q, "exists category name",
		`SELECT EXISTS (SELECT 1 FROM categories WHERE name = $1)`, name)
}

func (r *CategoryRepo) ExistsByNameAndNotID(ctx context.Context, name string, id int64) (bool, error) {
	return exists(ctx, r.q, "exists category name",
		`SELECT EXISTS (SELECT 1 FROM categories WHERE name = $1 AND id <> $2)`, name, id)
}
