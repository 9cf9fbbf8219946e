package repository

import "github.com/jhoicas/Inventario-local/internal/domain/entity"

// MovementStats agregados sobre el libro de movimientos (lectura pura).
type MovementStats struct {
	TotalIn       int64
	TotalOut      int64
	Net           int64
	MovementCount int64
	TodayIn       int64
	TodayOut      int64
}

// MovementRepository define el puerto de persistencia para el libro de movimientos (DIP).
// Los listados devuelven el orden canónico: created_at ascendente, id como desempate.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	List() ([]*entity.Movement, error)
	ListByProduct(productID string) ([]*entity.Movement, error)
	ListByType(movementType string) ([]*entity.Movement, error)
	CountByProduct(productID string) (int64, error)
	Delete(id string) error
	Stats() (*MovementStats, error)
}
