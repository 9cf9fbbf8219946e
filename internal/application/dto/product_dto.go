package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// No acepta current_stock: el stock inicial siempre es 0 y solo cambia
// a través del libro de movimientos.
type CreateProductRequest struct {
	Code         string          `json:"code" validate:"omitempty,max=50"`
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Description  string          `json:"description"`
	CategoryID   string          `json:"category_id"`
	Unit         string          `json:"unit"`
	MinimumStock int64           `json:"minimum_stock" validate:"min=0"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
}

// UpdateProductRequest entrada para actualizar un producto (sin current_stock).
type UpdateProductRequest struct {
	Code         *string          `json:"code"`
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description  *string          `json:"description"`
	CategoryID   *string          `json:"category_id"`
	Unit         *string          `json:"unit"`
	MinimumStock *int64           `json:"minimum_stock"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	CategoryID   string          `json:"category_id"`
	Unit         string          `json:"unit"`
	CurrentStock int64           `json:"current_stock"`
	MinimumStock int64           `json:"minimum_stock"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	LowStock     bool            `json:"low_stock"`
	OutOfStock   bool            `json:"out_of_stock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
