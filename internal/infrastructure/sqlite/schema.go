package sqlite

import (
	"database/sql"
	"fmt"
)

// Esquema por almacén: tres colecciones durables (categories, products,
// movements) más los índices que respaldan unicidad y claves foráneas.
// Los CHECK son la última línea de defensa de los invariantes de stock;
// la lógica de negocio vive en los casos de uso.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		color      TEXT NOT NULL DEFAULT '#6B7280',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name ON categories(name)`,
	`CREATE TABLE IF NOT EXISTS products (
		id            TEXT PRIMARY KEY,
		code          TEXT,
		name          TEXT NOT NULL,
		description   TEXT NOT NULL DEFAULT '',
		category_id   TEXT REFERENCES categories(id),
		unit          TEXT NOT NULL DEFAULT '',
		current_stock INTEGER NOT NULL DEFAULT 0 CHECK (current_stock >= 0),
		minimum_stock INTEGER NOT NULL DEFAULT 0 CHECK (minimum_stock >= 0),
		unit_price    TEXT NOT NULL DEFAULT '0',
		created_at    TIMESTAMP NOT NULL,
		updated_at    TIMESTAMP NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_products_code ON products(code) WHERE code IS NOT NULL`,
	`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id)`,
	`CREATE TABLE IF NOT EXISTS movements (
		id         TEXT PRIMARY KEY,
		product_id TEXT NOT NULL REFERENCES products(id),
		type       TEXT NOT NULL CHECK (type IN ('IN', 'OUT')),
		quantity   INTEGER NOT NULL CHECK (quantity > 0),
		notes      TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_movements_product ON movements(product_id)`,
	`CREATE INDEX IF NOT EXISTS idx_movements_created ON movements(created_at)`,
}

// migrate crea el esquema del almacén si no existe.
func migrate(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migrar esquema: %w", err)
		}
	}
	return nil
}
