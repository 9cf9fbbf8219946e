package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// CurrentStock es un campo derivado: su valor autoritativo es la suma firmada
// de los movimientos del producto y solo lo escribe el libro de movimientos.
type Product struct {
	ID           string
	Code         string // código único opcional (vacío = sin código)
	Name         string
	Description  string
	CategoryID   string // vacío = sin categoría
	Unit         string // unidad de medida: unidad, kg, litro, etc.
	CurrentStock int64
	MinimumStock int64
	UnitPrice    decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLowStock indica si el producto está en o por debajo de su umbral mínimo.
func (p *Product) IsLowStock() bool {
	return p.CurrentStock <= p.MinimumStock
}

// IsOutOfStock indica si el producto no tiene existencias.
func (p *Product) IsOutOfStock() bool {
	return p.CurrentStock == 0
}
