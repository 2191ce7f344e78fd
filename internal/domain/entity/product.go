package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto que puede aparecer en un ticket.
type Product struct {
	ID        int64
	Name      string
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
