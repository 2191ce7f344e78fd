package repository

import (
	"context"

	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// GetByID y List cargan solo el padre directo.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	List(ctx context.Context, limit, offset int) ([]*entity.Category, error)
	ListByParent(ctx context.Context, parentID int64) ([]*entity.Category, error)
	Delete(ctx context.Context, id int64) error
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsByNameAndNotID(ctx context.Context, name string, id int64) (bool, error)
}
