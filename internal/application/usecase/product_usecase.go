package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Inventario-local/internal/application/dto"
	"github.com/jhoicas/Inventario-local/internal/domain"
	"github.com/jhoicas/Inventario-local/internal/domain/entity"
	"github.com/jhoicas/Inventario-local/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. CurrentStock no es
// asignable desde aquí: nace en 0 y solo lo mueve el libro de movimientos.
// Política de borrado: un producto con historial de movimientos se rechaza
// con ErrConflict; el libro nunca se poda por un borrado de producto.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	movements  repository.MovementRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	movements repository.MovementRepository,
) *ProductUseCase {
	return &ProductUseCase{products: products, categories: categories, movements: movements}
}

// List lista todos los productos.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// ListByCategory lista los productos de una categoría (vacío si no hay).
func (uc *ProductUseCase) ListByCategory(categoryID string) ([]dto.ProductResponse, error) {
	if categoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	products, err := uc.products.ListByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// Search busca por subcadena en nombre, código y descripción.
// Una consulta vacía devuelve todos los productos.
func (uc *ProductUseCase) Search(query string) ([]dto.ProductResponse, error) {
	if strings.TrimSpace(query) == "" {
		return uc.List()
	}
	products, err := uc.products.Search(query)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Create crea un producto con stock inicial 0, pida lo que pida el cliente.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.MinimumStock < 0 || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.CategoryID != "" {
		category, err := uc.categories.GetByID(in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrInvalidInput
		}
	}
	code := strings.TrimSpace(in.Code)
	if code != "" {
		existing, err := uc.products.GetByCode(code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Code:         code,
		Name:         name,
		Description:  in.Description,
		CategoryID:   in.CategoryID,
		Unit:         in.Unit,
		CurrentStock: 0, // el stock solo cambia vía movimientos
		MinimumStock: in.MinimumStock,
		UnitPrice:    in.UnitPrice,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.products.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. No existe campo de stock en la entrada:
// cualquier intento de fijarlo directamente es estructuralmente imposible.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = name
	}
	if in.Code != nil {
		code := strings.TrimSpace(*in.Code)
		if code != "" && code != product.Code {
			other, err := uc.products.GetByCode(code)
			if err != nil {
				return nil, err
			}
			if other != nil && other.ID != id {
				return nil, domain.ErrDuplicate
			}
		}
		product.Code = code
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CategoryID != nil {
		if *in.CategoryID != "" {
			category, err := uc.categories.GetByID(*in.CategoryID)
			if err != nil {
				return nil, err
			}
			if category == nil {
				return nil, domain.ErrInvalidInput
			}
		}
		product.CategoryID = *in.CategoryID
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.MinimumStock != nil {
		if *in.MinimumStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinimumStock = *in.MinimumStock
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.UnitPrice = *in.UnitPrice
	}
	product.UpdatedAt = time.Now()
	if err := uc.products.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto sin historial de movimientos.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	count, err := uc.movements.CountByProduct(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict
	}
	return uc.products.Delete(id)
}

// LowStock lista los productos en o por debajo de su mínimo (stock cero incluido).
func (uc *ProductUseCase) LowStock() ([]dto.ProductResponse, error) {
	products, err := uc.products.ListLowStock()
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// OutOfStock lista los productos sin existencias.
func (uc *ProductUseCase) OutOfStock() ([]dto.ProductResponse, error) {
	products, err := uc.products.ListOutOfStock()
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Code:         p.Code,
		Name:         p.Name,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		Unit:         p.Unit,
		CurrentStock: p.CurrentStock,
		MinimumStock: p.MinimumStock,
		UnitPrice:    p.UnitPrice,
		LowStock:     p.IsLowStock(),
		OutOfStock:   p.IsOutOfStock(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toProductResponses(products []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, len(products))
	for i, p := range products {
		out[i] = *toProductResponse(p)
	}
	return out
}
