// Package mapper convierte entidades en DTOs de salida y DTOs de entrada en entidades.
// Las funciones son puras: entrada nil produce salida nil y nunca asignan el ID.
package mapper

import (
	"github.com/jhoicas/ticket-logger-api/internal/application/dto"
	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
)

// ToRegionDTO proyecta una región.
func ToRegionDTO(r *entity.Region) *dto.RegionResponse {
	if r == nil {
		return nil
	}
	return &dto.RegionResponse{ID: r.ID, Code: r.Code, Name: r.Name}
}

// ToRegionEntity construye una región nueva desde la petición.
func ToRegionEntity(in *dto.CreateRegionRequest) *entity.Region {
	if in == nil {
		return nil
	}
	return &entity.Region{Code: in.Code, Name: in.Name}
}
