package entity

import "time"

// Supermarket cadena de supermercados. Name es único.
type Supermarket struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
