package mapper

import (
	"github.com/jhoicas/ticket-logger-api/internal/application/dto"
	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
)

// ToSupermarketDTO proyecta un supermercado.
func ToSupermarketDTO(s *entity.Supermarket) *dto.SupermarketResponse {
	if s == nil {
		return nil
	}
	return &dto.SupermarketResponse{ID: s.ID, Name: s.Name}
}

// ToSupermarketEntity construye un supermercado nuevo.
func ToSupermarketEntity(in *dto.CreateSupermarketRequest) *entity.Supermarket {
	if in == nil {
		return nil
	}
	return &entity.Supermarket{Name: in.Name}
}
