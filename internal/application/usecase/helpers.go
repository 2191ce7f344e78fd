package usecase

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ticket-logger-api/internal/application/dto"
	"github.com/jhoicas/ticket-logger-api/internal/domain"
)

// asDuplicate traduce la violación de unicidad del almacenamiento (carrera entre dos creates)
// al mismo error que produce la comprobación previa.
func asDuplicate(err error, key string) error {
	if errors.Is(err, domain.ErrDuplicate) {
		return domain.Duplicate(key)
	}
	return err
}

// asInUse traduce la violación de clave foránea al borrar un registro referenciado.
func asInUse(err error) error {
	if errors.Is(err, domain.ErrInUse) {
		return domain.InUse(domain.MsgInUse)
	}
	return err
}

func page(p dto.PageRequest) dto.PageRequest {
	p.DefaultPage()
	return p
}

// Límites de las columnas NUMERIC(12,2) de price y NUMERIC(5,2) de discount (porcentaje).
var (
	maxPrice    = decimal.RequireFromString("9999999999.99")
	maxDiscount = decimal.NewFromInt(100)
)

// checkAmount exige 0 <= v <= limit con a lo sumo dos decimales.
func checkAmount(field string, v, limit decimal.Decimal) error {
	if v.IsNegative() || v.GreaterThan(limit) || !v.Equal(v.Round(2)) {
		return domain.Invalid(domain.MsgValidation, fmt.Sprintf("%s (gte=0,lte=%s,decimals=2)", field, limit.String()))
	}
	return nil
}
