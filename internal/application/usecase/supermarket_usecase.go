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

// SupermarketUseCase casos de uso CRUD para supermercados.
type SupermarketUseCase struct {
	repo repository.SupermarketRepository
	log  *logger.Logger
}

func NewSupermarketUseCase(repo repository.SupermarketRepository, log *logger.Logger) *SupermarketUseCase {
	return &SupermarketUseCase{repo: repo, log: log}
}

func (uc *SupermarketUseCase) List(ctx context.Context, p dto.PageRequest) (*dto.SupermarketListResponse, error) {
	p = page(p)
	list, err := uc.repo.List(ctx, p.Limit, p.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupermarketResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *mapper.ToSupermarketDTO(v))
	}
	return &dto.SupermarketListResponse{Items: items, Page: dto.PageResponse{Limit: p.Limit, Offset: p.Offset}}, nil
}

func (uc *SupermarketUseCase) GetByID(ctx context.Context, id int64) (*dto.SupermarketResponse, error) {
	sm, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sm == nil {
		return nil, domain.NotFound(domain.MsgSupermarketNotFound)
	}
	return mapper.ToSupermarketDTO(sm), nil
}

func (uc *SupermarketUseCase) Create(ctx context.Context, in dto.CreateSupermarketRequest) (*dto.SupermarketResponse, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	exists, err := uc.repo.ExistsByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Duplicate(domain.MsgSupermarketNameExists)
	}
	sm := mapper.ToSupermarketEntity(&in)
	now := time.Now()
	sm.CreatedAt, sm.UpdatedAt = now, now
	if err := uc.repo.Create(ctx, sm); err != nil {
		return nil, asDuplicate(err, domain.MsgSupermarketNameExists)
	}
	uc.log.Info().Int64("id", sm.ID).Msg("supermercado creado")
	return mapper.ToSupermarketDTO(sm), nil
}

func (uc *SupermarketUseCase) Update(ctx context.Context, id int64, in dto.CreateSupermarketRequest) (*dto.SupermarketResponse, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	sm, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sm == nil {
		return nil, domain.NotFound(domain.MsgSupermarketNotFound)
	}
	exists, err := uc.repo.ExistsByNameAndNotID(ctx, in.Name, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Duplicate(domain.MsgSupermarketNameExists)
	}
	sm.Name = in.Name
	sm.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, sm); err != nil {
		return nil, asDuplicate(err, domain.MsgSupermarketNameExists)
	}
	return mapper.ToSupermarketDTO(sm), nil
}

func (uc *SupermarketUseCase) Delete(ctx context.Context, id int64) error {
	sm, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sm == nil {
		return domain.NotFound(domain.MsgSupermarketNotFound)
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return asInUse(err)
	}
	uc.log.Info().Int64("id", id).Msg("supermercado eliminado")
	return nil
}
