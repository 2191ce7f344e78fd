package entity

import "time"

// Region comunidad o región; agrupa provincias. Code es único (2 caracteres).
type Region struct {
	ID        int64
	Code      string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
