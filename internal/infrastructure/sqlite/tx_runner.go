package sqlite

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-local/internal/application/inventory"
	"github.com/jhoicas/Inventario-local/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción SQLite del almacén activo.
// Con _txlock=immediate la transacción toma el write-lock al iniciar, por lo
// que los escritores del mismo almacén quedan serializados.
type TxRunner struct {
	manager *StoreManager
}

// NewTxRunner construye el runner sobre el manager de almacenes.
func NewTxRunner(manager *StoreManager) *TxRunner {
	return &TxRunner{manager: manager}
}

// Run inicia una transacción sobre el almacén activo, ejecuta fn con repos
// atados a la tx y hace Commit o Rollback. La pareja movimiento+stock es
// indivisible: o ambas escrituras quedan durables o ninguna.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	db, err := r.manager.activeDB()
	if err != nil {
		return err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	movRepo := NewMovementRepository(txSource{tx})
	productRepo := NewProductRepository(txSource{tx})

	if err := fn(movRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
