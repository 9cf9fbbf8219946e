package repository

import (
	"time"

	"github.com/jhoicas/Inventario-local/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// CurrentStock solo se modifica vía AdjustStock, reservado al libro de movimientos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	Update(product *entity.Product) error
	AdjustStock(productID string, delta int64, now time.Time) error
	List() ([]*entity.Product, error)
	ListByCategory(categoryID string) ([]*entity.Product, error)
	Search(query string) ([]*entity.Product, error)
	ListLowStock() ([]*entity.Product, error)
	ListOutOfStock() ([]*entity.Product, error)
	CountByCategory(categoryID string) (int64, error)
	Delete(id string) error
}
