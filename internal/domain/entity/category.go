package entity

import "time"

// Category categoría de productos. El árbol se guarda plano: ParentID apunta al padre (nil si es raíz).
type Category struct {
	ID        int64
	Name      string // único
	Image     string // referencia en el almacenamiento; vacío si no tiene
	ParentID  *int64
	Parent    *Category // solo el padre directo, nunca el abuelo
	CreatedAt time.Time
	UpdatedAt time.Time
}
