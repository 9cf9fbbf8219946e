package repository

import "github.com/jhoicas/Inventario-local/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Las implementaciones devuelven (nil, nil) cuando el registro no existe.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	Update(category *entity.Category) error
	List() ([]*entity.Category, error)
	Delete(id string) error
}
