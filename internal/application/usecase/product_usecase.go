package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/ticket-logger-api/internal/application/dto"
	"github.com/jhoicas/ticket-logger-api/internal/application/mapper"
	"github.com/jhoicas/ticket-logger-api/internal/application/validation"
	"github.com/jhoicas/ticket-logger-api/internal/domain"
	"github.com/jhoicas/ticket-logger-api/internal/domain/repository"
	"github.com/jhoicas/ticket-logger-api/pkg/logger"
)

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	repo repository.ProductRepository
	log  *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, log: log}
}

func validateProduct(in *dto.CreateProductRequest) error {
	if err := validation.Struct(in); err != nil {
		return err
	}
	return checkAmount("price", in.Price, maxPrice)
}

// List lista productos.
func (uc *ProductUseCase) List(ctx context.Context, p dto.PageRequest) (*dto.ProductListResponse, error) {
	p = page(p)
	list, err := uc.repo.List(ctx, p.Limit, p.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *mapper.ToProductDTO(v))
	}
	return &dto.ProductListResponse{Items: items, Page: dto.PageResponse{Limit: p.Limit, Offset: p.Offset}}, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound(domain.MsgProductNotFound)
	}
	return mapper.ToProductDTO(product), nil
}

// Create crea un producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validateProduct(&in); err != nil {
		return nil, err
	}
	exists, err := uc.repo.ExistsByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Duplicate(domain.MsgProductNameExists)
	}
	product := mapper.ToProductEntity(&in)
	now := time.Now()
	product.CreatedAt, product.UpdatedAt = now, now
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, asDuplicate(err, domain.MsgProductNameExists)
	}
	uc.log.Info().Int64("id", product.ID).Str("price", product.Price.String()).Msg("producto creado")
	return mapper.ToProductDTO(product), nil
}

// Update reemplaza nombre y precio.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validateProduct(&in); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound(domain.MsgProductNotFound)
	}
	exists, err := uc.repo.ExistsByNameAndNotID(ctx, in.Name, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Duplicate(domain.MsgProductNameExists)
	}
	product.Name = in.Name
	product.Price = in.Price
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, asDuplicate(err, domain.MsgProductNameExists)
	}
	return mapper.ToProductDTO(product), nil
}

// Delete elimina un producto. Falla con ErrInUse si algún ticket lo referencia.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.NotFound(domain.MsgProductNotFound)
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return asInUse(err)
	}
	uc.log.Info().Int64("id", id).Msg("producto eliminado")
	return nil
}
