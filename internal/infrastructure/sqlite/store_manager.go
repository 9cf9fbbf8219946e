package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/Inventario-local/internal/domain"
	"github.com/jhoicas/Inventario-local/internal/domain/entity"
)

// StoreManager es el dueño exclusivo del handle del almacén activo.
// Cada almacén es un archivo SQLite dentro de dataDir; exactamente uno puede
// estar activo a la vez y el cambio es todo-o-nada: el nuevo handle se abre,
// se verifica y se migra antes de cerrar y reemplazar el anterior.
type StoreManager struct {
	dataDir string

	mu   sync.RWMutex
	db   *sql.DB
	name string
	path string
}

// Asegurar que StoreManager sirve como Source para los repositorios.
var _ Source = (*StoreManager)(nil)

// NewStoreManager construye el manager sobre un directorio de datos.
func NewStoreManager(dataDir string) *StoreManager {
	return &StoreManager{dataDir: dataDir}
}

// DataDir devuelve el directorio de datos configurado.
func (m *StoreManager) DataDir() string {
	return m.dataDir
}

// Conn devuelve el handle del almacén activo o ErrNoActiveStore.
// Se resuelve bajo read-lock en cada operación; nunca se cachea fuera.
func (m *StoreManager) Conn() (Querier, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.db == nil {
		return nil, domain.ErrNoActiveStore
	}
	return m.db, nil
}

// activeDB devuelve el *sql.DB activo para iniciar transacciones (TxRunner).
func (m *StoreManager) activeDB() (*sql.DB, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.db == nil {
		return nil, domain.ErrNoActiveStore
	}
	return m.db, nil
}

// IsConnected indica si hay un almacén activo y abierto.
func (m *StoreManager) IsConnected() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.db != nil
}

// Current devuelve la identidad del almacén activo, o (nil, nil) si no hay.
func (m *StoreManager) Current() (*entity.StoreInfo, error) {
	m.mu.RLock()
	name, path, connected := m.name, m.path, m.db != nil
	m.mu.RUnlock()
	if !connected {
		return nil, nil
	}
	info := &entity.StoreInfo{Name: name, Path: path, Active: true}
	if fi, err := os.Stat(path); err == nil {
		info.SizeBytes = fi.Size()
		info.ModifiedAt = fi.ModTime()
	}
	return info, nil
}

// List enumera los almacenes descubiertos en el directorio de datos.
// Un directorio vacío o inexistente devuelve una lista vacía, no un error.
func (m *StoreManager) List() ([]entity.StoreInfo, error) {
	entries, err := os.ReadDir(m.dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []entity.StoreInfo{}, nil
		}
		return nil, fmt.Errorf("listar almacenes: %w", err)
	}

	m.mu.RLock()
	activeName := m.name
	connected := m.db != nil
	m.mu.RUnlock()

	stores := []entity.StoreInfo{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".db") {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			continue
		}
		stores = append(stores, entity.StoreInfo{
			Name:       e.Name(),
			Path:       filepath.Join(m.dataDir, e.Name()),
			SizeBytes:  fi.Size(),
			ModifiedAt: fi.ModTime(),
			Active:     connected && e.Name() == activeName,
		})
	}
	sort.Slice(stores, func(i, j int) bool { return stores[i].Name < stores[j].Name })
	return stores, nil
}

// Create inicializa un nuevo almacén (archivo + esquema) sin activarlo.
// Un nombre ya tomado es un nombre inválido: falla con ErrInvalidInput.
func (m *StoreManager) Create(name string) (*entity.StoreInfo, error) {
	name = normalizeStoreName(name)
	if err := os.MkdirAll(m.dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	path := filepath.Join(m.dataDir, name)
	if _, err := os.Stat(path); err == nil {
		return nil, domain.ErrInvalidInput
	}

	// Abrir, verificar y migrar; el handle se cierra porque crear no activa.
	db, err := openStore(path)
	if err != nil {
		_ = os.Remove(path) // sin archivo a medio inicializar
		return nil, fmt.Errorf("inicializar almacén %q: %w", name, err)
	}
	_ = db.Close()

	info := &entity.StoreInfo{Name: name, Path: path}
	if fi, err := os.Stat(path); err == nil {
		info.SizeBytes = fi.Size()
		info.ModifiedAt = fi.ModTime()
	}
	return info, nil
}

// Switch activa el almacén indicado. Todo-o-nada: si el nuevo no abre,
// el estado anterior queda intacto. Al retornar con éxito, el handle anterior
// está cerrado y el nuevo es el activo.
func (m *StoreManager) Switch(name string) error {
	name = normalizeStoreName(name)
	path := filepath.Join(m.dataDir, name)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("verificar almacén %q: %w", name, err)
	}

	db, err := openStore(path)
	if err != nil {
		return fmt.Errorf("abrir almacén %q: %w", name, err)
	}

	m.mu.Lock()
	old := m.db
	m.db = db
	m.name = name
	m.path = path
	m.mu.Unlock()

	// Operaciones en vuelo sobre el handle anterior fallan limpiamente con
	// el error del driver; nunca operan en silencio sobre un handle cerrado.
	if old != nil {
		_ = old.Close()
	}
	return nil
}

// Disconnect cierra y libera el handle activo. Sin almacén activo es un no-op.
func (m *StoreManager) Disconnect() error {
	m.mu.Lock()
	old := m.db
	m.db = nil
	m.name = ""
	m.path = ""
	m.mu.Unlock()

	if old == nil {
		return nil
	}
	if err := old.Close(); err != nil {
		return fmt.Errorf("cerrar almacén: %w", err)
	}
	return nil
}

// Delete elimina el archivo de un almacén. El almacén activo no se puede borrar.
func (m *StoreManager) Delete(name string) error {
	name = normalizeStoreName(name)

	m.mu.RLock()
	isActive := m.db != nil && m.name == name
	m.mu.RUnlock()
	if isActive {
		return domain.ErrConflict
	}

	path := filepath.Join(m.dataDir, name)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("verificar almacén %q: %w", name, err)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("eliminar almacén %q: %w", name, err)
	}
	return nil
}

// normalizeStoreName asegura la extensión .db.
func normalizeStoreName(name string) string {
	if filepath.Ext(name) != ".db" {
		return name + ".db"
	}
	return name
}

// openStore abre un archivo SQLite, verifica la conexión y migra el esquema.
// _txlock=immediate hace que toda transacción tome el write-lock al iniciar,
// serializando los escritores del mismo almacén.
func openStore(path string) (*sql.DB, error) {
	dsn := "file:" + path +
		"?_txlock=immediate" +
		"&_time_format=sqlite" +
		"&_pragma=foreign_keys(1)" +
		"&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir base de datos: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping base de datos: %w", err)
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
