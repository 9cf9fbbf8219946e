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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, code, name, description, category_id, unit, current_stock, minimum_stock, unit_price, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre SQLite.
// Resuelve el almacén activo vía Source en cada operación.
type ProductRepo struct {
	src Source
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(src Source) *ProductRepo {
	return &ProductRepo{src: src}
}

// Create persiste un nuevo producto. CurrentStock inicia en 0.
func (r *ProductRepo) Create(product *entity.Product) error {
	q, err := r.src.Conn()
	if err != nil {
		return err
	}
	_, err = q.Exec(
		`INSERT INTO products (`+productColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		product.ID, nullable(product.Code), product.Name, product.Description,
		nullable(product.CategoryID), product.Unit, product.CurrentStock,
		product.MinimumStock, product.UnitPrice.String(), product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	q, err := r.src.Conn()
	if err != nil {
		return nil, err
	}
	row := q.QueryRow(`SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	return scanProductRow(row)
}

// GetByCode obtiene un producto por su código único.
func (r *ProductRepo) GetByCode(code string) (*entity.Product, error) {
	q, err := r.src.Conn()
	if err != nil {
		return nil, err
	}
	row := q.QueryRow(`SELECT `+productColumns+` FROM products WHERE code = ?`, code)
	return scanProductRow(row)
}

// Update actualiza un producto existente. No toca current_stock:
// esa columna solo la escribe AdjustStock desde el libro de movimientos.
func (r *ProductRepo) Update(product *entity.Product) error {
	q, err := r.src.Conn()
	if err != nil {
		return err
	}
	_, err = q.Exec(
		`UPDATE products SET code = ?, name = ?, description = ?, category_id = ?, unit = ?,
			minimum_stock = ?, unit_price = ?, updated_at = ?
		WHERE id = ?`,
		nullable(product.Code), product.Name, product.Description, nullable(product.CategoryID),
		product.Unit, product.MinimumStock, product.UnitPrice.String(), product.UpdatedAt,
		product.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// AdjustStock aplica un delta firmado al stock cacheado del producto.
// Reservado al libro de movimientos; el CHECK de la tabla impide negativos.
func (r *ProductRepo) AdjustStock(productID string, delta int64, now time.Time) error {
	q, err := r.src.Conn()
	if err != nil {
		return err
	}
	res, err := q.Exec(
		`UPDATE products SET current_stock = current_stock + ?, updated_at = ? WHERE id = ?`,
		delta, now, productID,
	)
	if err != nil {
		return fmt.Errorf("ajustar stock: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ajustar stock: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista todos los productos ordenados por nombre.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	return r.queryProducts(`SELECT ` + productColumns + ` FROM products ORDER BY name ASC, id ASC`)
}

// ListByCategory lista los productos de una categoría (vacío si no hay).
func (r *ProductRepo) ListByCategory(categoryID string) ([]*entity.Product, error) {
	return r.queryProducts(
		`SELECT `+productColumns+` FROM products WHERE category_id = ? ORDER BY name ASC, id ASC`,
		categoryID,
	)
}

// Search busca por subcadena literal (insensible a mayúsculas) en nombre,
// código y descripción. Los metacaracteres de LIKE no actúan como comodines.
func (r *ProductRepo) Search(query string) ([]*entity.Product, error) {
	pattern := "%" + escapeLike(query) + "%"
	return r.queryProducts(
		`SELECT `+productColumns+` FROM products
		WHERE lower(name) LIKE lower(?) ESCAPE '\'
			OR lower(COALESCE(code, '')) LIKE lower(?) ESCAPE '\'
			OR lower(description) LIKE lower(?) ESCAPE '\'
		ORDER BY name ASC, id ASC`,
		pattern, pattern, pattern,
	)
}

// ListLowStock lista los productos en o por debajo de su stock mínimo (incluye stock cero).
func (r *ProductRepo) ListLowStock() ([]*entity.Product, error) {
	return r.queryProducts(
		`SELECT ` + productColumns + ` FROM products WHERE current_stock <= minimum_stock ORDER BY name ASC, id ASC`)
}

// ListOutOfStock lista los productos sin existencias.
func (r *ProductRepo) ListOutOfStock() ([]*entity.Product, error) {
	return r.queryProducts(
		`SELECT ` + productColumns + ` FROM products WHERE current_stock = 0 ORDER BY name ASC, id ASC`)
}

// CountByCategory cuenta los productos que referencian una categoría.
func (r *ProductRepo) CountByCategory(categoryID string) (int64, error) {
	q, err := r.src.Conn()
	if err != nil {
		return 0, err
	}
	var n int64
	err = q.QueryRow(`SELECT COUNT(*) FROM products WHERE category_id = ?`, categoryID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("contar productos por categoría: %w", err)
	}
	return n, nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	q, err := r.src.Conn()
	if err != nil {
		return err
	}
	if _, err := q.Exec(`DELETE FROM products WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

func (r *ProductRepo) queryProducts(query string, args ...any) ([]*entity.Product, error) {
	q, err := r.src.Conn()
	if err != nil {
		return nil, err
	}
	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// scanner cubre *sql.Row y *sql.Rows para compartir el mapeo de columnas.
type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(s scanner) (*entity.Product, error) {
	var (
		p          entity.Product
		code       sql.NullString
		categoryID sql.NullString
		unitPrice  string
	)
	err := s.Scan(&p.ID, &code, &p.Name, &p.Description, &categoryID, &p.Unit,
		&p.CurrentStock, &p.MinimumStock, &unitPrice, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Code = code.String
	p.CategoryID = categoryID.String
	price, err := decimalFromStore(unitPrice)
	if err != nil {
		return nil, fmt.Errorf("scan producto: %w", err)
	}
	p.UnitPrice = price
	return &p, nil
}

func scanProductRow(row *sql.Row) (*entity.Product, error) {
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}
