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

// LocationUseCase casos de uso CRUD para ubicaciones. La dirección es única.
type LocationUseCase struct {
	repo            repository.LocationRepository
	supermarketRepo repository.SupermarketRepository
	provinceRepo    repository.ProvinceRepository
	log             *logger.Logger
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(
	repo repository.LocationRepository,
	supermarketRepo repository.SupermarketRepository,
	provinceRepo repository.ProvinceRepository,
	log *logger.Logger,
) *LocationUseCase {
	return &LocationUseCase{repo: repo, supermarketRepo: supermarketRepo, provinceRepo: provinceRepo, log: log}
}

// List lista ubicaciones con supermercado y provincia.
func (uc *LocationUseCase) List(ctx context.Context, p dto.PageRequest) (*dto.LocationListResponse, error) {
	p = page(p)
	list, err := uc.repo.List(ctx, p.Limit, p.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *mapper.ToLocationDTO(v))
	}
	return &dto.LocationListResponse{Items: items, Page: dto.PageResponse{Limit: p.Limit, Offset: p.Offset}}, nil
}

// GetByID obtiene una ubicación por ID.
func (uc *LocationUseCase) GetByID(ctx context.Context, id int64) (*dto.LocationResponse, error) {
	loc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.NotFound(domain.MsgLocationNotFound)
	}
	return mapper.ToLocationDTO(loc), nil
}

// references resuelve supermercado y provincia de la petición.
func (uc *LocationUseCase) references(ctx context.Context, in *dto.CreateLocationRequest) (*entity.Supermarket, *entity.Province, error) {
	sm, err := uc.supermarketRepo.GetByID(ctx, in.SupermarketID)
	if err != nil {
		return nil, nil, err
	}
	if sm == nil {
		return nil, nil, domain.NotFound(domain.MsgLocationSupermarketNotFound)
	}
	province, err := uc.provinceRepo.GetByID(ctx, in.ProvinceID)
	if err != nil {
		return nil, nil, err
	}
	if province == nil {
		return nil, nil, domain.NotFound(domain.MsgLocationProvinceNotFound)
	}
	return sm, province, nil
}

// Create crea una ubicación.
func (uc *LocationUseCase) Create(ctx context.Context, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	exists, err := uc.repo.ExistsByAddress(ctx, in.Address)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Duplicate(domain.MsgLocationAddressExists)
	}
	sm, province, err := uc.references(ctx, &in)
	if err != nil {
		return nil, err
	}
	loc := mapper.ToLocationEntity(&in, sm, province)
	now := time.Now()
	loc.CreatedAt, loc.UpdatedAt = now, now
	if err := uc.repo.Create(ctx, loc); err != nil {
		return nil, asDuplicate(err, domain.MsgLocationAddressExists)
	}
	uc.log.Info().Int64("id", loc.ID).Msg("ubicación creada")
	return mapper.ToLocationDTO(loc), nil
}

// Update reemplaza dirección, ciudad, supermercado y provincia.
func (uc *LocationUseCase) Update(ctx context.Context, id int64, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	loc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.NotFound(domain.MsgLocationNotFound)
	}
	exists, err := uc.repo.ExistsByAddressAndNotID(ctx, in.Address, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Duplicate(domain.MsgLocationAddressExists)
	}
	sm, province, err := uc.references(ctx, &in)
	if err != nil {
		return nil, err
	}
	loc.Address = in.Address
	loc.City = in.City
	loc.SupermarketID, loc.Supermarket = sm.ID, sm
	loc.ProvinceID, loc.Province = province.ID, province
	loc.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, loc); err != nil {
		return nil, asDuplicate(err, domain.MsgLocationAddressExists)
	}
	uc.log.Info().Int64("id", id).Msg("ubicación actualizada")
	return mapper.ToLocationDTO(loc), nil
}

// Delete elimina una ubicación por ID.
func (uc *LocationUseCase) Delete(ctx context.Context, id int64) error {
	loc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if loc == nil {
		return domain.NotFound(domain.MsgLocationNotFound)
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return asInUse(err)
	}
	uc.log.Info().Int64("id", id).Msg("ubicación eliminada")
	return nil
}
