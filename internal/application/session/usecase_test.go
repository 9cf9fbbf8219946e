package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-local/internal/application/dto"
	"github.com/jhoicas/Inventario-local/internal/application/session"
	"github.com/jhoicas/Inventario-local/internal/domain"
	"github.com/jhoicas/Inventario-local/internal/infrastructure/sqlite"
	"github.com/jhoicas/Inventario-local/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newSessionUC(t *testing.T) (*session.SessionUseCase, string) {
	t.Helper()
	dir := t.TempDir()
	manager := sqlite.NewStoreManager(dir)
	t.Cleanup(func() { _ = manager.Disconnect() })
	return session.NewSessionUseCase(manager, dir), dir
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear y validar nombres
// ──────────────────────────────────────────────────────────────────────────────

func TestSession_CrearYListar(t *testing.T) {
	uc, _ := newSessionUC(t)

	out, err := uc.Create(dto.CreateStoreRequest{Name: "tienda-a"})
	require.NoError(t, err)
	assert.Equal(t, "tienda-a.db", out.Name)
	assert.False(t, out.Active, "crear no activa")

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "tienda-a.db", list[0].Name)
}

func TestSession_NombresInvalidos(t *testing.T) {
	uc, _ := newSessionUC(t)

	for _, name := range []string{"", "   ", "sub/dir", `otra\ruta`} {
		_, err := uc.Create(dto.CreateStoreRequest{Name: name})
		assert.Equal(t, domain.ErrInvalidInput, err, "nombre %q", name)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Activar, consultar y desconectar
// ──────────────────────────────────────────────────────────────────────────────

func TestSession_SwitchYCurrent(t *testing.T) {
	uc, _ := newSessionUC(t)
	_, err := uc.Create(dto.CreateStoreRequest{Name: "tienda-a"})
	require.NoError(t, err)

	require.NoError(t, uc.Switch(dto.SwitchStoreRequest{Name: "tienda-a"}))
	assert.True(t, uc.IsConnected())

	cur, err := uc.Current()
	require.NoError(t, err)
	require.NotNil(t, cur)
	assert.Equal(t, "tienda-a.db", cur.Name)
	assert.True(t, cur.Active)
}

func TestSession_CurrentSinConexion(t *testing.T) {
	uc, _ := newSessionUC(t)

	cur, err := uc.Current()
	require.NoError(t, err)
	assert.Nil(t, cur)
	assert.False(t, uc.IsConnected())
}

func TestSession_Disconnect_LimpiaEstado(t *testing.T) {
	uc, dir := newSessionUC(t)
	_, err := uc.Create(dto.CreateStoreRequest{Name: "tienda-a"})
	require.NoError(t, err)
	require.NoError(t, uc.Switch(dto.SwitchStoreRequest{Name: "tienda-a"}))

	require.NoError(t, uc.Disconnect())
	assert.False(t, uc.IsConnected())

	st, err := config.LoadState(dir)
	require.NoError(t, err)
	assert.Empty(t, st.LastStore, "desconectar borra el último almacén persistido")
}

// ──────────────────────────────────────────────────────────────────────────────
// Persistencia del último almacén y reconexión
// ──────────────────────────────────────────────────────────────────────────────

func TestSession_SwitchPersisteUltimoAlmacen(t *testing.T) {
	uc, dir := newSessionUC(t)
	_, err := uc.Create(dto.CreateStoreRequest{Name: "tienda-a"})
	require.NoError(t, err)
	require.NoError(t, uc.Switch(dto.SwitchStoreRequest{Name: "tienda-a"}))

	st, err := config.LoadState(dir)
	require.NoError(t, err)
	assert.Equal(t, "tienda-a.db", st.LastStore)
}

func TestSession_Reconnect(t *testing.T) {
	uc, dir := newSessionUC(t)
	_, err := uc.Create(dto.CreateStoreRequest{Name: "tienda-a"})
	require.NoError(t, err)
	require.NoError(t, uc.Switch(dto.SwitchStoreRequest{Name: "tienda-a"}))
	require.NoError(t, uc.Disconnect())

	// El estado se limpió al desconectar; simular un cierre sin desconexión.
	require.NoError(t, config.SaveState(dir, &config.State{LastStore: "tienda-a.db"}))

	// Sesión nueva sobre el mismo directorio, como al arrancar la app.
	manager := sqlite.NewStoreManager(dir)
	t.Cleanup(func() { _ = manager.Disconnect() })
	uc2 := session.NewSessionUseCase(manager, dir)

	name, err := uc2.Reconnect()
	require.NoError(t, err)
	assert.Equal(t, "tienda-a.db", name)
	assert.True(t, uc2.IsConnected())
}

func TestSession_ReconnectSinEstado(t *testing.T) {
	uc, _ := newSessionUC(t)

	name, err := uc.Reconnect()
	require.NoError(t, err)
	assert.Empty(t, name)
	assert.False(t, uc.IsConnected())
}

func TestSession_ReconnectAlmacenBorrado(t *testing.T) {
	uc, dir := newSessionUC(t)
	require.NoError(t, config.SaveState(dir, &config.State{LastStore: "fantasma.db"}))

	_, err := uc.Reconnect()
	assert.Equal(t, domain.ErrNotFound, err)
	assert.False(t, uc.IsConnected())
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminar almacenes
// ──────────────────────────────────────────────────────────────────────────────

func TestSession_DeleteActivo_RetornaErrConflict(t *testing.T) {
	uc, _ := newSessionUC(t)
	_, err := uc.Create(dto.CreateStoreRequest{Name: "tienda-a"})
	require.NoError(t, err)
	require.NoError(t, uc.Switch(dto.SwitchStoreRequest{Name: "tienda-a"}))

	assert.Equal(t, domain.ErrConflict, uc.Delete("tienda-a"))
}

func TestSession_DeleteInactivo(t *testing.T) {
	uc, _ := newSessionUC(t)
	_, err := uc.Create(dto.CreateStoreRequest{Name: "tienda-a"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete("tienda-a"))

	list, err := uc.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}
