package entity

import "time"

// DefaultCategoryColor color aplicado cuando el cliente no envía uno.
const DefaultCategoryColor = "#6B7280"

// Category representa una categoría de productos.
type Category struct {
	ID        string
	Name      string
	Color     string // etiqueta de presentación (HEX), opaca para el motor
	CreatedAt time.Time
	UpdatedAt time.Time
}
