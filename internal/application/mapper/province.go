package mapper

import (
	"github.com/jhoicas/ticket-logger-api/internal/application/dto"
	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
)

// ToProvinceDTO proyecta una provincia con su región resumida.
func ToProvinceDTO(p *entity.Province) *dto.ProvinceResponse {
	if p == nil {
		return nil
	}
	return &dto.ProvinceResponse{
		ID:     p.ID,
		Code:   p.Code,
		Name:   p.Name,
		Region: ToRegionDTO(p.Region),
	}
}

// ToProvinceEntity construye una provincia nueva con la región ya resuelta.
func ToProvinceEntity(in *dto.CreateProvinceRequest, region *entity.Region) *entity.Province {
	if in == nil {
		return nil
	}
	p := &entity.Province{Code: in.Code, Name: in.Name, RegionID: in.RegionID, Region: region}
	if region != nil {
		p.RegionID = region.ID
	}
	return p
}
