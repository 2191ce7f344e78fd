package mapper

import (
	"github.com/jhoicas/ticket-logger-api/internal/application/dto"
	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
)

// ToLocationDTO proyecta una ubicación con supermercado y provincia (con región) resumidos.
func ToLocationDTO(l *entity.Location) *dto.LocationResponse {
	if l == nil {
		return nil
	}
	return &dto.LocationResponse{
		ID:          l.ID,
		Address:     l.Address,
		City:        l.City,
		Supermarket: ToSupermarketDTO(l.Supermarket),
		Province:    ToProvinceDTO(l.Province),
	}
}

// ToLocationEntity construye una ubicación nueva con supermercado y provincia ya resueltos.
func ToLocationEntity(in *dto.CreateLocationRequest, supermarket *entity.Supermarket, province *entity.Province) *entity.Location {
	if in == nil {
		return nil
	}
	l := &entity.Location{
		Address:       in.Address,
		City:          in.City,
		SupermarketID: in.SupermarketID,
		ProvinceID:    in.ProvinceID,
		Supermarket:   supermarket,
		Province:      province,
	}
	if supermarket != nil {
		l.SupermarketID = supermarket.ID
	}
	if province != nil {
		l.ProvinceID = province.ID
	}
	return l
}
