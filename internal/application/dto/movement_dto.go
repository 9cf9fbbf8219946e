package dto

import "time"

// CreateMovementRequest entrada para anotar un movimiento en el libro.
type CreateMovementRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=IN OUT"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
	Notes     string `json:"notes"`
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Type      string    `json:"type"`
	Quantity  int64     `json:"quantity"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// MovementStatsResponse agregados del libro de movimientos.
type MovementStatsResponse struct {
	TotalIn       int64 `json:"total_in"`
	TotalOut      int64 `json:"total_out"`
	Net           int64 `json:"net"`
	MovementCount int64 `json:"movement_count"`
	TodayIn       int64 `json:"today_in"`
	TodayOut      int64 `json:"today_out"`
}
