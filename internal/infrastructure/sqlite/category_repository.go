package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/Inventario-local/internal/domain"
	"github.com/jhoicas/Inventario-local/internal/domain/entity"
	"github.com/jhoicas/Inventario-local/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre SQLite.
// Resuelve el almacén activo vía Source en cada operación.
type CategoryRepo struct {
	src Source
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(src Source) *CategoryRepo {
	return &CategoryRepo{src: src}
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(category *entity.Category) error {
	q, err := r.src.Conn()
	if err != nil {
		return err
	}
	_, err = q.Exec(
		`INSERT INTO categories (id, name, color, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		category.ID, category.Name, category.Color, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert categoría: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	q, err := r.src.Conn()
	if err != nil {
		return nil, err
	}
	row := q.QueryRow(
		`SELECT id, name, color, created_at, updated_at FROM categories WHERE id = ?`, id)
	return scanCategory(row)
}

// GetByName obtiene una categoría por nombre exacto.
func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	q, err := r.src.Conn()
	if err != nil {
		return nil, err
	}
	row := q.QueryRow(
		`SELECT id, name, color, created_at, updated_at FROM categories WHERE name = ?`, name)
	return scanCategory(row)
}

// Update actualiza nombre y color de una categoría existente.
func (r *CategoryRepo) Update(category *entity.Category) error {
	q, err := r.src.Conn()
	if err != nil {
		return err
	}
	_, err = q.Exec(
		`UPDATE categories SET name = ?, color = ?, updated_at = ? WHERE id = ?`,
		category.Name, category.Color, category.UpdatedAt, category.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update categoría: %w", err)
	}
	return nil
}

// List lista las categorías en orden de inserción (created_at, id).
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	q, err := r.src.Conn()
	if err != nil {
		return nil, err
	}
	rows, err := q.Query(
		`SELECT id, name, color, created_at, updated_at FROM categories ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list categorías: %w", err)
	}
	defer rows.Close()

	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Color, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan categoría: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina una categoría por ID.
func (r *CategoryRepo) Delete(id string) error {
	q, err := r.src.Conn()
	if err != nil {
		return err
	}
	if _, err := q.Exec(`DELETE FROM categories WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete categoría: %w", err)
	}
	return nil
}

func scanCategory(row *sql.Row) (*entity.Category, error) {
	var c entity.Category
	err := row.Scan(&c.ID, &c.Name, &c.Color, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoría: %w", err)
	}
	return &c, nil
}
