package entity

import "time"

// Province provincia perteneciente a una región. Code es único.
type Province struct {
	ID        int64
	Code      string
	Name      string
	RegionID  int64
	Region    *Region // cargada por el repositorio (join)
	CreatedAt time.Time
	UpdatedAt time.Time
}
