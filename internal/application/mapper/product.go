package mapper

import (
	"github.com/jhoicas/ticket-logger-api/internal/application/dto"
	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
)

// ToProductDTO proyecta un producto.
func ToProductDTO(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{ID: p.ID, Name: p.Name, Price: p.Price}
}

// ToProductEntity construye un producto nuevo.
func ToProductEntity(in *dto.CreateProductRequest) *entity.Product {
	if in == nil {
		return nil
	}
	return &entity.Product{Name: in.Name, Price: in.Price}
}
