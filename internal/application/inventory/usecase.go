package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Inventario-local/internal/application/dto"
	"github.com/jhoicas/Inventario-local/internal/domain"
	"github.com/jhoicas/Inventario-local/internal/domain/entity"
	"github.com/jhoicas/Inventario-local/internal/domain/repository"
)

// MovementUseCase es el libro de movimientos: el único escritor del stock de
// productos. Registrar o borrar un movimiento ajusta el stock derivado dentro
// de la misma transacción (Commit/Rollback vía TxRunner).
type MovementUseCase struct {
	txRunner  TxRunner
	movements repository.MovementRepository
	products  repository.ProductRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	txRunner TxRunner,
	movements repository.MovementRepository,
	products repository.ProductRepository,
) *MovementUseCase {
	return &MovementUseCase{
		txRunner:  txRunner,
		movements: movements,
		products:  products,
	}
}

// Register anota un movimiento y ajusta el stock del producto en una sola
// transacción. Una salida (OUT) mayor al stock disponible falla con
// ErrInsufficientStock y no deja rastro: el stock nunca baja de cero.
func (uc *MovementUseCase) Register(ctx context.Context, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	if !entity.ValidMovementType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	mov := &entity.Movement{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Notes:     in.Notes,
		CreatedAt: time.Now(),
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if in.Type == entity.MovementTypeOUT && product.CurrentStock < in.Quantity {
			return domain.ErrInsufficientStock
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		return productRepo.AdjustStock(product.ID, mov.SignedQuantity(), mov.CreatedAt)
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// Delete borra un movimiento revirtiendo su efecto en stock, con la misma
// garantía todo-o-nada que Register. Si revertir dejara el stock negativo
// (solo posible tras una violación previa del invariante) falla con ErrConflict.
func (uc *MovementUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		mov, err := movRepo.GetByID(id)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrNotFound
		}
		product, err := productRepo.GetByID(mov.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		reversal := -mov.SignedQuantity()
		if product.CurrentStock+reversal < 0 {
			return domain.ErrConflict
		}
		if err := movRepo.Delete(mov.ID); err != nil {
			return err
		}
		return productRepo.AdjustStock(product.ID, reversal, time.Now())
	})
}

// List devuelve el libro completo en orden canónico.
func (uc *MovementUseCase) List(ctx context.Context) ([]dto.MovementResponse, error) {
	movements, err := uc.movements.List()
	if err != nil {
		return nil, err
	}
	return toMovementResponses(movements), nil
}

// ListByProduct lista los movimientos de un producto.
func (uc *MovementUseCase) ListByProduct(ctx context.Context, productID string) ([]dto.MovementResponse, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	movements, err := uc.movements.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(movements), nil
}

// ListByType lista los movimientos de un tipo (IN/OUT).
func (uc *MovementUseCase) ListByType(ctx context.Context, movementType string) ([]dto.MovementResponse, error) {
	if !entity.ValidMovementType(movementType) {
		return nil, domain.ErrInvalidInput
	}
	movements, err := uc.movements.ListByType(movementType)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(movements), nil
}

// Stats devuelve los agregados del libro (lectura pura, sin efectos).
func (uc *MovementUseCase) Stats(ctx context.Context) (*dto.MovementStatsResponse, error) {
	stats, err := uc.movements.Stats()
	if err != nil {
		return nil, err
	}
	return &dto.MovementStatsResponse{
		TotalIn:       stats.TotalIn,
		TotalOut:      stats.TotalOut,
		Net:           stats.Net,
		MovementCount: stats.MovementCount,
		TodayIn:       stats.TodayIn,
		TodayOut:      stats.TodayOut,
	}, nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
	}
}

func toMovementResponses(movements []*entity.Movement) []dto.MovementResponse {
	out := make([]dto.MovementResponse, len(movements))
	for i, m := range movements {
		out[i] = *toMovementResponse(m)
	}
	return out
}
