package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-local/internal/application/dto"
	"github.com/jhoicas/Inventario-local/internal/application/inventory"
	"github.com/jhoicas/Inventario-local/internal/application/usecase"
	"github.com/jhoicas/Inventario-local/internal/domain"
	"github.com/jhoicas/Inventario-local/internal/infrastructure/sqlite"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type productEnv struct {
	products   *usecase.ProductUseCase
	categories *usecase.CategoryUseCase
	movements  *inventory.MovementUseCase
}

func newProductEnv(t *testing.T) *productEnv {
	t.Helper()
	manager := sqlite.NewStoreManager(t.TempDir())
	t.Cleanup(func() { _ = manager.Disconnect() })

	_, err := manager.Create("test")
	require.NoError(t, err)
	require.NoError(t, manager.Switch("test"))

	categoryRepo := sqlite.NewCategoryRepository(manager)
	productRepo := sqlite.NewProductRepository(manager)
	movementRepo := sqlite.NewMovementRepository(manager)
	txRunner := sqlite.NewTxRunner(manager)

	return &productEnv{
		products:   usecase.NewProductUseCase(productRepo, categoryRepo, movementRepo),
		categories: usecase.NewCategoryUseCase(categoryRepo, productRepo),
		movements:  inventory.NewMovementUseCase(txRunner, movementRepo, productRepo),
	}
}

func (e *productEnv) mustCreate(t *testing.T, in dto.CreateProductRequest) *dto.ProductResponse {
	t.Helper()
	p, err := e.products.Create(in)
	require.NoError(t, err)
	return p
}

func (e *productEnv) registerIn(t *testing.T, productID string, qty int64) {
	t.Helper()
	_, err := e.movements.Register(context.Background(), dto.CreateMovementRequest{
		ProductID: productID, Type: "IN", Quantity: qty,
	})
	require.NoError(t, err)
}

func int64Ptr(v int64) *int64 { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Create — el stock inicial siempre es 0
// ──────────────────────────────────────────────────────────────────────────────

func TestProducto_CrearConStockCero(t *testing.T) {
	env := newProductEnv(t)

	p := env.mustCreate(t, dto.CreateProductRequest{
		Code:         "COLA-350",
		Name:         "Cola 350ml",
		Unit:         "unidad",
		MinimumStock: 10,
		UnitPrice:    decimal.RequireFromString("1.50"),
	})
	assert.Zero(t, p.CurrentStock)
	assert.True(t, p.LowStock, "con stock 0 y mínimo 10 está en stock bajo")
	assert.True(t, p.OutOfStock)
	assert.True(t, decimal.RequireFromString("1.50").Equal(p.UnitPrice))
}

func TestProducto_CrearValidaEntrada(t *testing.T) {
	env := newProductEnv(t)

	cases := []struct {
		name string
		in   dto.CreateProductRequest
	}{
		{"nombre vacío", dto.CreateProductRequest{Name: "  "}},
		{"mínimo negativo", dto.CreateProductRequest{Name: "X", MinimumStock: -1}},
		{"precio negativo", dto.CreateProductRequest{Name: "X", UnitPrice: decimal.NewFromInt(-5)}},
		{"categoría inexistente", dto.CreateProductRequest{Name: "X", CategoryID: "no-existe"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.products.Create(tc.in)
			assert.Equal(t, domain.ErrInvalidInput, err)
		})
	}
}

func TestProducto_CodigoDuplicado_RetornaErrDuplicate(t *testing.T) {
	env := newProductEnv(t)
	env.mustCreate(t, dto.CreateProductRequest{Code: "ABC-1", Name: "Uno"})

	_, err := env.products.Create(dto.CreateProductRequest{Code: "ABC-1", Name: "Dos"})
	assert.Equal(t, domain.ErrDuplicate, err)
}

func TestProducto_SinCodigo_NoColisiona(t *testing.T) {
	env := newProductEnv(t)

	// Varios productos sin código conviven; el código vacío no es único.
	env.mustCreate(t, dto.CreateProductRequest{Name: "Uno"})
	env.mustCreate(t, dto.CreateProductRequest{Name: "Dos"})

	list, err := env.products.List()
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update — sin campo de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestProducto_ActualizarCampos(t *testing.T) {
	env := newProductEnv(t)
	cat, err := env.categories.Create(dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)
	p := env.mustCreate(t, dto.CreateProductRequest{Name: "Cola"})

	precio := decimal.RequireFromString("2.25")
	out, err := env.products.Update(p.ID, dto.UpdateProductRequest{
		Name:         strPtr("Cola Zero"),
		CategoryID:   &cat.ID,
		MinimumStock: int64Ptr(5),
		UnitPrice:    &precio,
	})
	require.NoError(t, err)
	assert.Equal(t, "Cola Zero", out.Name)
	assert.Equal(t, cat.ID, out.CategoryID)
	assert.EqualValues(t, 5, out.MinimumStock)
	assert.True(t, precio.Equal(out.UnitPrice))
}

func TestProducto_ActualizarNoTocaStock(t *testing.T) {
	env := newProductEnv(t)
	p := env.mustCreate(t, dto.CreateProductRequest{Name: "Cola"})
	env.registerIn(t, p.ID, 7)

	out, err := env.products.Update(p.ID, dto.UpdateProductRequest{Name: strPtr("Cola Zero")})
	require.NoError(t, err)
	assert.EqualValues(t, 7, out.CurrentStock, "actualizar datos no altera el stock derivado")
	assert.False(t, out.OutOfStock)
}

func TestProducto_QuitarCategoria(t *testing.T) {
	env := newProductEnv(t)
	cat, err := env.categories.Create(dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)
	p := env.mustCreate(t, dto.CreateProductRequest{Name: "Cola", CategoryID: cat.ID})

	out, err := env.products.Update(p.ID, dto.UpdateProductRequest{CategoryID: strPtr("")})
	require.NoError(t, err)
	assert.Empty(t, out.CategoryID, "la categoría se puede desasignar")
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete — rechazo con historial de movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestProducto_BorrarSinMovimientos(t *testing.T) {
	env := newProductEnv(t)
	p := env.mustCreate(t, dto.CreateProductRequest{Name: "Cola"})

	require.NoError(t, env.products.Delete(p.ID))

	_, err := env.products.GetByID(p.ID)
	assert.Equal(t, domain.ErrNotFound, err)
}

func TestProducto_BorrarConMovimientos_RetornaErrConflict(t *testing.T) {
	env := newProductEnv(t)
	p := env.mustCreate(t, dto.CreateProductRequest{Name: "Cola"})
	env.registerIn(t, p.ID, 3)

	err := env.products.Delete(p.ID)
	assert.Equal(t, domain.ErrConflict, err, "el libro nunca se poda por borrar un producto")
}

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda y filtros
// ──────────────────────────────────────────────────────────────────────────────

func TestProducto_BuscarPorNombreCodigoDescripcion(t *testing.T) {
	env := newProductEnv(t)
	env.mustCreate(t, dto.CreateProductRequest{Code: "COLA-350", Name: "Cola 350ml"})
	env.mustCreate(t, dto.CreateProductRequest{Name: "Agua", Description: "botella de cola retornable"})
	env.mustCreate(t, dto.CreateProductRequest{Name: "Pan"})

	// Insensible a mayúsculas, subcadena en nombre, código o descripción.
	out, err := env.products.Search("CoLa")
	require.NoError(t, err)
	assert.Len(t, out, 2)

	// Consulta vacía equivale a listar todo.
	out, err = env.products.Search("   ")
	require.NoError(t, err)
	assert.Len(t, out, 3)

	out, err = env.products.Search("no-coincide")
	require.NoError(t, err)
	assert.Empty(t, out)
}

// Los comodines de LIKE en la consulta se tratan como texto literal.
func TestProducto_BuscarConMetacaracteresLiterales(t *testing.T) {
	env := newProductEnv(t)
	env.mustCreate(t, dto.CreateProductRequest{Name: "Descuento 100%"})
	env.mustCreate(t, dto.CreateProductRequest{Name: "Descuento 1000"})
	env.mustCreate(t, dto.CreateProductRequest{Name: "Tornillo a_b"})
	env.mustCreate(t, dto.CreateProductRequest{Name: "Tornillo axb"})

	out, err := env.products.Search("100%")
	require.NoError(t, err)
	require.Len(t, out, 1, "%% no es comodín: solo la coincidencia literal")
	assert.Equal(t, "Descuento 100%", out[0].Name)

	out, err = env.products.Search("a_b")
	require.NoError(t, err)
	require.Len(t, out, 1, "_ no es comodín de un carácter")
	assert.Equal(t, "Tornillo a_b", out[0].Name)
}

func TestProducto_ListarPorCategoria(t *testing.T) {
	env := newProductEnv(t)
	cat, err := env.categories.Create(dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)
	env.mustCreate(t, dto.CreateProductRequest{Name: "Cola", CategoryID: cat.ID})
	env.mustCreate(t, dto.CreateProductRequest{Name: "Pan"})

	out, err := env.products.ListByCategory(cat.ID)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Cola", out[0].Name)

	_, err = env.products.ListByCategory("")
	assert.Equal(t, domain.ErrInvalidInput, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock bajo y agotados — el límite es inclusivo y el cero cuenta
// ──────────────────────────────────────────────────────────────────────────────

func TestProducto_StockBajoIncluyeLimiteYCero(t *testing.T) {
	env := newProductEnv(t)

	enLimite := env.mustCreate(t, dto.CreateProductRequest{Name: "En límite", MinimumStock: 5})
	env.registerIn(t, enLimite.ID, 5)

	porEncima := env.mustCreate(t, dto.CreateProductRequest{Name: "Por encima", MinimumStock: 5})
	env.registerIn(t, porEncima.ID, 6)

	// Sin movimientos: stock 0 con mínimo 0 → 0 <= 0, también es stock bajo.
	agotado := env.mustCreate(t, dto.CreateProductRequest{Name: "Agotado", MinimumStock: 0})

	low, err := env.products.LowStock()
	require.NoError(t, err)
	names := []string{}
	for _, p := range low {
		names = append(names, p.Name)
	}
	assert.ElementsMatch(t, []string{"En límite", "Agotado"}, names,
		"stock igual al mínimo cuenta como bajo; por encima no")

	out, err := env.products.OutOfStock()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, agotado.ID, out[0].ID)
}

func TestProducto_AgotadoApareceEnAmbasVistas(t *testing.T) {
	env := newProductEnv(t)
	p := env.mustCreate(t, dto.CreateProductRequest{Name: "Sin stock", MinimumStock: 3})

	low, err := env.products.LowStock()
	require.NoError(t, err)
	out, err := env.products.OutOfStock()
	require.NoError(t, err)

	require.Len(t, low, 1)
	require.Len(t, out, 1)
	assert.Equal(t, p.ID, low[0].ID)
	assert.Equal(t, p.ID, out[0].ID)
}
