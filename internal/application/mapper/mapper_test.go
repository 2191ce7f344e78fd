package mapper_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ticket-logger-api/internal/application/dto"
	"github.com/jhoicas/ticket-logger-api/internal/application/mapper"
	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
)

func TestToDTO_NilDevuelveNil(t *testing.T) {
	assert.Nil(t, mapper.ToRegionDTO(nil))
	assert.Nil(t, mapper.ToProvinceDTO(nil))
	assert.Nil(t, mapper.ToSupermarketDTO(nil))
	assert.Nil(t, mapper.ToLocationDTO(nil))
	assert.Nil(t, mapper.ToCategoryDTO(nil))
	assert.Nil(t, mapper.ToProductDTO(nil))
	assert.Nil(t, mapper.ToTicketDTO(nil))
	assert.Nil(t, mapper.ToNotificationDTO(nil))

	assert.Nil(t, mapper.ToRegionEntity(nil))
	assert.Nil(t, mapper.ToProvinceEntity(nil, nil))
	assert.Nil(t, mapper.ToLocationEntity(nil, nil, nil))
	assert.Nil(t, mapper.ToCategoryEntity(nil, nil))
	assert.Nil(t, mapper.ToTicketEntity(nil, nil, nil))
}

func TestRegion_IdaYVuelta(t *testing.T) {
	in := &dto.CreateRegionRequest{Code: "01", Name: "Andalucía"}
	e := mapper.ToRegionEntity(in)
	assert.Zero(t, e.ID, "el mapeo de entrada nunca asigna ID")

	out := mapper.ToRegionDTO(e)
	assert.Equal(t, in.Code, out.Code)
	assert.Equal(t, in.Name, out.Name)
}

func TestProvince_InyectaRegionResuelta(t *testing.T) {
	region := &entity.Region{ID: 7, Code: "01", Name: "Andalucía"}
	in := &dto.CreateProvinceRequest{Code: "41", Name: "Sevilla", RegionID: 7}

	e := mapper.ToProvinceEntity(in, region)
	assert.Zero(t, e.ID)
	assert.Equal(t, int64(7), e.RegionID)

	out := mapper.ToProvinceDTO(e)
	require.NotNil(t, out.Region)
	assert.Equal(t, "Sevilla", out.Name)
	assert.Equal(t, "41", out.Code)
	assert.Equal(t, &dto.RegionResponse{ID: 7, Code: "01", Name: "Andalucía"}, out.Region)
}

func TestLocation_ResumeReferencias(t *testing.T) {
	sm := &entity.Supermarket{ID: 3, Name: "Mercadona"}
	prov := &entity.Province{ID: 4, Code: "41", Name: "Sevilla", Region: &entity.Region{ID: 1, Code: "01", Name: "Andalucía"}}
	in := &dto.CreateLocationRequest{Address: "Calle Feria 1", City: "Sevilla", SupermarketID: 3, ProvinceID: 4}

	out := mapper.ToLocationDTO(mapper.ToLocationEntity(in, sm, prov))
	assert.Equal(t, "Calle Feria 1", out.Address)
	assert.Equal(t, "Sevilla", out.City)
	assert.Equal(t, "Mercadona", out.Supermarket.Name)
	assert.Equal(t, "Andalucía", out.Province.Region.Name)
}

func TestCategory_PadreUnSoloNivel(t *testing.T) {
	abuelo := &entity.Category{ID: 1, Name: "Hogar"}
	padre := &entity.Category{ID: 2, Name: "Electrónica", Image: "a.png", ParentID: &abuelo.ID, Parent: abuelo}
	hija := &entity.Category{ID: 3, Name: "Teléfonos", ParentID: &padre.ID, Parent: padre}

	out := mapper.ToCategoryDTO(hija)
	require.NotNil(t, out.ParentCategory)
	assert.Equal(t, &dto.ParentCategoryResponse{ID: 2, Name: "Electrónica", Image: "a.png"}, out.ParentCategory)
}

func TestCategory_RaizSinPadre(t *testing.T) {
	e := mapper.ToCategoryEntity(&dto.CreateCategoryRequest{Name: "Electrónica"}, nil)
	assert.Nil(t, e.ParentID)

	out := mapper.ToCategoryDTO(e)
	assert.Nil(t, out.ParentCategory)
}

func TestCategory_AsignaParentID(t *testing.T) {
	parent := &entity.Category{ID: 9, Name: "Electrónica"}
	e := mapper.ToCategoryEntity(&dto.CreateCategoryRequest{Name: "Teléfonos"}, parent)
	require.NotNil(t, e.ParentID)
	assert.Equal(t, int64(9), *e.ParentID)
}

func TestTicket_IdaYVuelta_TotalSinCalcular(t *testing.T) {
	loc := &entity.Location{ID: 5, Address: "Calle Feria 1"}
	products := []*entity.Product{
		{ID: 1, Name: "Leche", Price: decimal.RequireFromString("0.95")},
		{ID: 2, Name: "Pan", Price: decimal.RequireFromString("1.20")},
	}
	in := &dto.CreateTicketRequest{
		Date:       dto.NewDate(time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)),
		Discount:   decimal.RequireFromString("10.00"),
		LocationID: 5,
		ProductIDs: []int64{1, 2},
	}

	out := mapper.ToTicketDTO(mapper.ToTicketEntity(in, loc, products))
	assert.Equal(t, "2024-03-10", out.Date.Format("2006-01-02"))
	assert.True(t, in.Discount.Equal(out.Discount))
	assert.Equal(t, int64(5), out.Location.ID)
	require.Len(t, out.Products, 2)
	assert.Equal(t, "Pan", out.Products[1].Name)
	assert.Nil(t, out.Total)
}

func TestNotification_IdaYVuelta(t *testing.T) {
	e := mapper.ToNotificationEntity(&dto.CreateNotificationRequest{Subject: "A", Message: "B"})
	assert.Empty(t, e.ID)

	out := mapper.ToNotificationDTO(e)
	assert.Equal(t, "A", out.Subject)
	assert.Equal(t, "B", out.Message)
	assert.False(t, out.Read)
}
