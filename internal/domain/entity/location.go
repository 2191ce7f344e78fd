package entity

import "time"

// Location establecimiento físico de un supermercado en una provincia. Address es única.
type Location struct {
	ID            int64
	Address       string
	City          string
	SupermarketID int64
	ProvinceID    int64
	Supermarket   *Supermarket
	Province      *Province // incluye su Region
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
