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

// RegionUseCase casos de uso CRUD para regiones. El código es la clave natural.
type RegionUseCase struct {
	repo repository.RegionRepository
	log  *logger.Logger
}

// NewRegionUseCase construye el caso de uso.
func NewRegionUseCase(repo repository.RegionRepository, log *logger.Logger) *RegionUseCase {
	return &RegionUseCase{repo: repo, log: log}
}

// List lista regiones con paginación.
func (uc *RegionUseCase) List(ctx context.Context, p dto.PageRequest) (*dto.RegionListResponse, error) {
	p = page(p)
	list, err := uc.repo.List(ctx, p.Limit, p.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RegionResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *mapper.ToRegionDTO(r))
	}
	return &dto.RegionListResponse{Items: items, Page: dto.PageResponse{Limit: p.Limit, Offset: p.Offset}}, nil
}

// GetByID obtiene una región por ID.
func (uc *RegionUseCase) GetByID(ctx context.Context, id int64) (*dto.RegionResponse, error) {
	region, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if region == nil {
		return nil, domain.NotFound(domain.MsgRegionNotFound)
	}
	return mapper.ToRegionDTO(region), nil
}

// Create crea una región si el código no está en uso.
func (uc *RegionUseCase) Create(ctx context.Context, in dto.CreateRegionRequest) (*dto.RegionResponse, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	exists, err := uc.repo.ExistsByCode(ctx, in.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		uc.log.Warn().Str("code", in.Code).Msg("región con código duplicado")
		return nil, domain.Duplicate(domain.MsgRegionCodeExists)
	}
	region := mapper.ToRegionEntity(&in)
	now := time.Now()
	region.CreatedAt, region.UpdatedAt = now, now
	if err := uc.repo.Create(ctx, region); err != nil {
		return nil, asDuplicate(err, domain.MsgRegionCodeExists)
	}
	uc.log.Info().Int64("id", region.ID).Msg("región creada")
	return mapper.ToRegionDTO(region), nil
}

// Update reemplaza código y nombre. El código puede mantenerse; no puede chocar con otra región.
func (uc *RegionUseCase) Update(ctx context.Context, id int64, in dto.CreateRegionRequest) (*dto.RegionResponse, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	region, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if region == nil {
		return nil, domain.NotFound(domain.MsgRegionNotFound)
	}
	exists, err := uc.repo.ExistsByCodeAndNotID(ctx, in.Code, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Duplicate(domain.MsgRegionCodeExists)
	}
	region.Code = in.Code
	region.Name = in.Name
	region.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, region); err != nil {
		return nil, asDuplicate(err, domain.MsgRegionCodeExists)
	}
	uc.log.Info().Int64("id", id).Msg("región actualizada")
	return mapper.ToRegionDTO(region), nil
}

// Delete elimina una región por ID.
func (uc *RegionUseCase) Delete(ctx context.Context, id int64) error {
	region, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if region == nil {
		return domain.NotFound(domain.MsgRegionNotFound)
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return asInUse(err)
	}
	uc.log.Info().Int64("id", id).Msg("región eliminada")
	return nil
}
