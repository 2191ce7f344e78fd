package repository

import (
	"context"

	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
)

// SupermarketRepository define el puerto de persistencia para Supermarket (DIP).
type SupermarketRepository interface {
	Create(ctx context.Context, supermarket *entity.Supermarket) error
	GetByID(ctx context.Context, id int64) (*entity.Supermarket, error)
	Update(ctx context.Context, supermarket *entity.Supermarket) error
	List(ctx context.Context, limit, offset int) ([]*entity.Supermarket, error)
	Delete(ctx context.Context, id int64) error
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsByNameAndNotID(ctx context.Context, name string, id int64) (bool, error)
}
