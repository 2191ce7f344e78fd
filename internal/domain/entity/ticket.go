package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ticket ticket de compra emitido en una ubicación, con sus productos (relación N:M).
type Ticket struct {
	ID         int64
	Date       time.Time
	Discount   decimal.Decimal
	LocationID int64
	Location   *Location
	Products   []*Product
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// HasProduct indica si el producto ya está asociado al ticket.
func (t *Ticket) HasProduct(productID int64) bool {
	for _, p := range t.Products {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// ProductIDs ids de los productos asociados, en orden.
func (t *Ticket) ProductIDs() []int64 {
	ids := make([]int64, 0, len(t.Products))
	for _, p := range t.Products {
		ids = append(ids, p.ID)
	}
	return ids
}
