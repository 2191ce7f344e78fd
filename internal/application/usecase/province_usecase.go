package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/ticket-logger-api/internal/application/dto"
	"github.com/jhoicas/ticket-logger-api/internal/application/mapper"
	"github.com/jhoicas/ticket-logger-api/internal/application/validation"
	"github.com/jhoicas/ticket-logger-api/internal/domain"
	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
	"github.com/jhoicas/ticket-logger-api/internal/domain/repository"
	"github.com/jhoicas/ticket-logger-api/pkg/logger"
)

// ProvinceUseCase casos de uso CRUD para provincias.
type ProvinceUseCase struct {
	repo       repository.ProvinceRepository
	regionRepo repository.RegionRepository
	log        *logger.Logger
}

// NewProvinceUseCase construye el caso de uso.
func NewProvinceUseCase(repo repository.ProvinceRepository, regionRepo repository.RegionRepository, log *logger.Logger) *ProvinceUseCase {
	return &ProvinceUseCase{repo: repo, regionRepo: regionRepo, log: log}
}

// List lista provincias con su región.
func (uc *ProvinceUseCase) List(ctx context.Context, p dto.PageRequest) (*dto.ProvinceListResponse, error) {
	p = page(p)
	list, err := uc.repo.List(ctx, p.Limit, p.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProvinceResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *mapper.ToProvinceDTO(v))
	}
	return &dto.ProvinceListResponse{Items: items, Page: dto.PageResponse{Limit: p.Limit, Offset: p.Offset}}, nil
}

// GetByID obtiene una provincia por ID.
func (uc *ProvinceUseCase) GetByID(ctx context.Context, id int64) (*dto.ProvinceResponse, error) {
	province, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if province == nil {
		return nil, domain.NotFound(domain.MsgProvinceNotFound)
	}
	return mapper.ToProvinceDTO(province), nil
}

func (uc *ProvinceUseCase) region(ctx context.Context, id int64) (*entity.Region, error) {
	region, err := uc.regionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if region == nil {
		return nil, domain.NotFound(domain.MsgProvinceRegionNotFound)
	}
	return region, nil
}

// Create crea una provincia. La región debe existir y el código no puede repetirse.
func (uc *ProvinceUseCase) Create(ctx context.Context, in dto.CreateProvinceRequest) (*dto.ProvinceResponse, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	exists, err := uc.repo.ExistsByCode(ctx, in.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Duplicate(domain.MsgProvinceCodeExists)
	}
	region, err := uc.region(ctx, in.RegionID)
	if err != nil {
		return nil, err
	}
	province := mapper.ToProvinceEntity(&in, region)
	now := time.Now()
	province.CreatedAt, province.UpdatedAt = now, now
	if err := uc.repo.Create(ctx, province); err != nil {
		return nil, asDuplicate(err, domain.MsgProvinceCodeExists)
	}
	uc.log.Info().Int64("id", province.ID).Int64("region_id", region.ID).Msg("provincia creada")
	return mapper.ToProvinceDTO(province), nil
}

// Update reemplaza código, nombre y región.
func (uc *ProvinceUseCase) Update(ctx context.Context, id int64, in dto.CreateProvinceRequest) (*dto.ProvinceResponse, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	province, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if province == nil {
		return nil, domain.NotFound(domain.MsgProvinceNotFound)
	}
	exists, err := uc.repo.ExistsByCodeAndNotID(ctx, in.Code, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Duplicate(domain.MsgProvinceCodeExists)
	}
	region, err := uc.region(ctx, in.RegionID)
	if err != nil {
		return nil, err
	}
	province.Code = in.Code
	province.Name = in.Name
	province.RegionID = region.ID
	province.Region = region
	province.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, province); err != nil {
		return nil, asDuplicate(err, domain.MsgProvinceCodeExists)
	}
	uc.log.Info().Int64("id", id).Msg("provincia actualizada")
	return mapper.ToProvinceDTO(province), nil
}

// Delete elimina una provincia por ID.
func (uc *ProvinceUseCase) Delete(ctx context.Context, id int64) error {
	province, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if province == nil {
		return domain.NotFound(domain.MsgProvinceNotFound)
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return asInUse(err)
	}
	uc.log.Info().Int64("id", id).Msg("provincia eliminada")
	return nil
}
