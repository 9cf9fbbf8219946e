package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// ValidMovementType verifica si el tipo de movimiento es válido.
func ValidMovementType(t string) bool {
	return t == MovementTypeIN || t == MovementTypeOUT
}

// Movement representa una anotación del libro de movimientos (append-only).
// Los movimientos nunca se modifican; borrar uno revierte su efecto en stock.
// El orden canónico del libro es CreatedAt ascendente con ID como desempate.
type Movement struct {
	ID        string
	ProductID string
	Type      string // IN, OUT
	Quantity  int64  // siempre positivo; el signo lo da Type
	Notes     string
	CreatedAt time.Time
}

// SignedQuantity devuelve la cantidad con el signo que aporta al stock.
func (m *Movement) SignedQuantity() int64 {
	if m.Type == MovementTypeOUT {
		return -m.Quantity
	}
	return m.Quantity
}
