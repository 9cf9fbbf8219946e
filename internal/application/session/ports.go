package session

import "github.com/jhoicas/Inventario-local/internal/domain/entity"

// Stores define el puerto del gestor de almacenes locales (DIP).
// La implementación SQLite es la dueña exclusiva del handle activo.
type Stores interface {
	List() ([]entity.StoreInfo, error)
	Create(name string) (*entity.StoreInfo, error)
	Switch(name string) error
	Disconnect() error
	Delete(name string) error
	IsConnected() bool
	Current() (*entity.StoreInfo, error)
}
