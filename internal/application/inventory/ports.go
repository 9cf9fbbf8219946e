package inventory

import (
	"context"

	"github.com/jhoicas/Inventario-local/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del almacén activo,
// pasando repositorios atados a esa tx. Garantiza que anotar un movimiento y
// ajustar el stock derivado sean una sola unidad indivisible.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
