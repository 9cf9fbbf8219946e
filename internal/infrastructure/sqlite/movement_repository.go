package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/Inventario-local/internal/domain"
	"github.com/jhoicas/Inventario-local/internal/domain/entity"
	"github.com/jhoicas/Inventario-local/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, product_id, type, quantity, notes, created_at`

// MovementRepo implementación del puerto MovementRepository sobre SQLite.
// Resuelve el almacén activo vía Source en cada operación.
type MovementRepo struct {
	src Source
}

// NewMovementRepository construye el adaptador del libro de movimientos.
func NewMovementRepository(src Source) *MovementRepo {
	return &MovementRepo{src: src}
}

// Create anota un movimiento en el libro. Los movimientos no se actualizan nunca.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	q, err := r.src.Conn()
	if err != nil {
		return err
	}
	_, err = q.Exec(
		`INSERT INTO movements (`+movementColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		movement.ID, movement.ProductID, movement.Type, movement.Quantity,
		movement.Notes, movement.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	q, err := r.src.Conn()
	if err != nil {
		return nil, err
	}
	row := q.QueryRow(`SELECT `+movementColumns+` FROM movements WHERE id = ?`, id)
	var m entity.Movement
	err = row.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.Notes, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return &m, nil
}

// List devuelve el libro completo en orden canónico (created_at, id).
func (r *MovementRepo) List() ([]*entity.Movement, error) {
	return r.queryMovements(
		`SELECT ` + movementColumns + ` FROM movements ORDER BY created_at ASC, id ASC`)
}

// ListByProduct lista los movimientos de un producto en orden canónico.
func (r *MovementRepo) ListByProduct(productID string) ([]*entity.Movement, error) {
	return r.queryMovements(
		`SELECT `+movementColumns+` FROM movements WHERE product_id = ? ORDER BY created_at ASC, id ASC`,
		productID,
	)
}

// ListByType lista los movimientos de un tipo (IN/OUT) en orden canónico.
func (r *MovementRepo) ListByType(movementType string) ([]*entity.Movement, error) {
	return r.queryMovements(
		`SELECT `+movementColumns+` FROM movements WHERE type = ? ORDER BY created_at ASC, id ASC`,
		movementType,
	)
}

// CountByProduct cuenta los movimientos que referencian un producto.
func (r *MovementRepo) CountByProduct(productID string) (int64, error) {
	q, err := r.src.Conn()
	if err != nil {
		return 0, err
	}
	var n int64
	err = q.QueryRow(`SELECT COUNT(*) FROM movements WHERE product_id = ?`, productID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("contar movimientos: %w", err)
	}
	return n, nil
}

// Delete elimina un movimiento por ID (única mutación permitida en el libro).
func (r *MovementRepo) Delete(id string) error {
	q, err := r.src.Conn()
	if err != nil {
		return err
	}
	if _, err := q.Exec(`DELETE FROM movements WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete movimiento: %w", err)
	}
	return nil
}

// Stats agrega totales de entradas/salidas sobre el libro completo.
func (r *MovementRepo) Stats() (*repository.MovementStats, error) {
	q, err := r.src.Conn()
	if err != nil {
		return nil, err
	}
	stats := &repository.MovementStats{}

	err = q.QueryRow(
		`SELECT COUNT(*),
			COALESCE(SUM(CASE WHEN type = 'IN' THEN quantity ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type = 'OUT' THEN quantity ELSE 0 END), 0)
		FROM movements`,
	).Scan(&stats.MovementCount, &stats.TotalIn, &stats.TotalOut)
	if err != nil {
		return nil, fmt.Errorf("agregar movimientos: %w", err)
	}
	stats.Net = stats.TotalIn - stats.TotalOut

	// "Hoy" es el día de la zona local del proceso, como rango semiabierto.
	// DATE() de SQLite convertiría a UTC y desplazaría el corte del día.
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)
	err = q.QueryRow(
		`SELECT COALESCE(SUM(CASE WHEN type = 'IN' THEN quantity ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type = 'OUT' THEN quantity ELSE 0 END), 0)
		FROM movements WHERE created_at >= ? AND created_at < ?`, dayStart, dayEnd,
	).Scan(&stats.TodayIn, &stats.TodayOut)
	if err != nil {
		return nil, fmt.Errorf("agregar movimientos del día: %w", err)
	}
	return stats, nil
}

func (r *MovementRepo) queryMovements(query string, args ...any) ([]*entity.Movement, error) {
	q, err := r.src.Conn()
	if err != nil {
		return nil, err
	}
	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.Notes, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
