package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-local/internal/application/dto"
	"github.com/jhoicas/Inventario-local/internal/application/usecase"
	"github.com/jhoicas/Inventario-local/internal/domain"
	"github.com/jhoicas/Inventario-local/internal/domain/entity"
	"github.com/jhoicas/Inventario-local/internal/infrastructure/sqlite"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test — almacén SQLite real en un directorio temporal
// ──────────────────────────────────────────────────────────────────────────────

func newCategoryUC(t *testing.T) (*usecase.CategoryUseCase, *usecase.ProductUseCase) {
	t.Helper()
	manager := sqlite.NewStoreManager(t.TempDir())
	t.Cleanup(func() { _ = manager.Disconnect() })

	_, err := manager.Create("test")
	require.NoError(t, err)
	require.NoError(t, manager.Switch("test"))

	categoryRepo := sqlite.NewCategoryRepository(manager)
	productRepo := sqlite.NewProductRepository(manager)
	movementRepo := sqlite.NewMovementRepository(manager)
	return usecase.NewCategoryUseCase(categoryRepo, productRepo),
		usecase.NewProductUseCase(productRepo, categoryRepo, movementRepo)
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoria_CrearConColorPorDefecto(t *testing.T) {
	uc, _ := newCategoryUC(t)

	out, err := uc.Create(dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)
	assert.Equal(t, "Bebidas", out.Name)
	assert.Equal(t, entity.DefaultCategoryColor, out.Color)
	assert.NotEmpty(t, out.ID)
}

func TestCategoria_CrearConColorExplicito(t *testing.T) {
	uc, _ := newCategoryUC(t)

	out, err := uc.Create(dto.CreateCategoryRequest{Name: "Lácteos", Color: "#00FF00"})
	require.NoError(t, err)
	assert.Equal(t, "#00FF00", out.Color)
}

func TestCategoria_NombreVacio_RetornaErrInvalidInput(t *testing.T) {
	uc, _ := newCategoryUC(t)

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "   "})
	assert.Equal(t, domain.ErrInvalidInput, err)
}

func TestCategoria_NombreDuplicado_RetornaErrDuplicate(t *testing.T) {
	uc, _ := newCategoryUC(t)
	_, err := uc.Create(dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateCategoryRequest{Name: "Bebidas"})
	assert.Equal(t, domain.ErrDuplicate, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoria_ActualizarNombreYColor(t *testing.T) {
	uc, _ := newCategoryUC(t)
	created, err := uc.Create(dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateCategoryRequest{
		Name:  strPtr("Refrescos"),
		Color: strPtr("#0000FF"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Refrescos", out.Name)
	assert.Equal(t, "#0000FF", out.Color)
}

func TestCategoria_ActualizarANombreAjeno_RetornaErrDuplicate(t *testing.T) {
	uc, _ := newCategoryUC(t)
	_, err := uc.Create(dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)
	otra, err := uc.Create(dto.CreateCategoryRequest{Name: "Lácteos"})
	require.NoError(t, err)

	_, err = uc.Update(otra.ID, dto.UpdateCategoryRequest{Name: strPtr("Bebidas")})
	assert.Equal(t, domain.ErrDuplicate, err)
}

func TestCategoria_ActualizarMismoNombre_NoEsDuplicado(t *testing.T) {
	uc, _ := newCategoryUC(t)
	created, err := uc.Create(dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateCategoryRequest{Name: strPtr("Bebidas")})
	require.NoError(t, err)
	assert.Equal(t, "Bebidas", out.Name)
}

func TestCategoria_ActualizarInexistente_RetornaErrNotFound(t *testing.T) {
	uc, _ := newCategoryUC(t)

	_, err := uc.Update("no-existe", dto.UpdateCategoryRequest{Name: strPtr("X")})
	assert.Equal(t, domain.ErrNotFound, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete — rechazo con productos asociados
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoria_BorrarSinProductos(t *testing.T) {
	uc, _ := newCategoryUC(t)
	created, err := uc.Create(dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	_, err = uc.GetByID(created.ID)
	assert.Equal(t, domain.ErrNotFound, err)
}

func TestCategoria_BorrarConProductos_RetornaErrConflict(t *testing.T) {
	uc, products := newCategoryUC(t)
	created, err := uc.Create(dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)

	_, err = products.Create(dto.CreateProductRequest{
		Name:       "Cola 350ml",
		CategoryID: created.ID,
		UnitPrice:  decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	err = uc.Delete(created.ID)
	assert.Equal(t, domain.ErrConflict, err, "una categoría con productos no se borra")

	// La categoría sigue existiendo.
	out, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bebidas", out.Name)
}

func TestCategoria_BorrarInexistente_RetornaErrNotFound(t *testing.T) {
	uc, _ := newCategoryUC(t)

	assert.Equal(t, domain.ErrNotFound, uc.Delete("no-existe"))
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoria_ListarOrdenEstable(t *testing.T) {
	uc, _ := newCategoryUC(t)
	for _, name := range []string{"Zumos", "Aguas", "Bebidas"} {
		_, err := uc.Create(dto.CreateCategoryRequest{Name: name})
		require.NoError(t, err)
	}

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	// Orden de inserción, no alfabético.
	assert.Equal(t, "Zumos", list[0].Name)
	assert.Equal(t, "Aguas", list[1].Name)
	assert.Equal(t, "Bebidas", list[2].Name)
}
