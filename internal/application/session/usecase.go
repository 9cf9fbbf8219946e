package session

import (
	"strings"

	"github.com/jhoicas/Inventario-local/internal/application/dto"
	"github.com/jhoicas/Inventario-local/internal/domain"
	"github.com/jhoicas/Inventario-local/internal/domain/entity"
	"github.com/jhoicas/Inventario-local/pkg/config"
)

// SessionUseCase gestiona la sesión sobre los almacenes locales: descubrir,
// crear, activar y cerrar. El último almacén activado se persiste en el
// directorio de datos para reconectar al arrancar.
type SessionUseCase struct {
	stores  Stores
	dataDir string
}

// NewSessionUseCase construye el caso de uso.
func NewSessionUseCase(stores Stores, dataDir string) *SessionUseCase {
	return &SessionUseCase{stores: stores, dataDir: dataDir}
}

// List enumera los almacenes disponibles. Vacío no es error.
func (uc *SessionUseCase) List() ([]dto.StoreResponse, error) {
	stores, err := uc.stores.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreResponse, len(stores))
	for i := range stores {
		out[i] = toStoreResponse(&stores[i])
	}
	return out, nil
}

// Create inicializa un almacén nuevo sin activarlo.
func (uc *SessionUseCase) Create(in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, domain.ErrInvalidInput
	}
	info, err := uc.stores.Create(name)
	if err != nil {
		return nil, err
	}
	out := toStoreResponse(info)
	return &out, nil
}

// Switch activa un almacén existente y persiste la elección.
func (uc *SessionUseCase) Switch(in dto.SwitchStoreRequest) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.ErrInvalidInput
	}
	if err := uc.stores.Switch(name); err != nil {
		return err
	}
	uc.saveLastStore()
	return nil
}

// Disconnect cierra el almacén activo y limpia el estado persistido.
func (uc *SessionUseCase) Disconnect() error {
	if err := uc.stores.Disconnect(); err != nil {
		return err
	}
	_ = config.SaveState(uc.dataDir, &config.State{})
	return nil
}

// Delete elimina el archivo de un almacén no activo.
func (uc *SessionUseCase) Delete(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrInvalidInput
	}
	return uc.stores.Delete(name)
}

// IsConnected indica si hay un almacén activo.
func (uc *SessionUseCase) IsConnected() bool {
	return uc.stores.IsConnected()
}

// Current devuelve el almacén activo, o nil si la sesión está desconectada.
func (uc *SessionUseCase) Current() (*dto.StoreResponse, error) {
	info, err := uc.stores.Current()
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, nil
	}
	out := toStoreResponse(info)
	return &out, nil
}

// Reconnect intenta activar el último almacén usado (arranque de la app).
// Si ya no existe o no abre, la sesión queda desconectada sin error fatal.
func (uc *SessionUseCase) Reconnect() (string, error) {
	st, err := config.LoadState(uc.dataDir)
	if err != nil || st.LastStore == "" {
		return "", err
	}
	if err := uc.stores.Switch(st.LastStore); err != nil {
		return "", err
	}
	return st.LastStore, nil
}

func (uc *SessionUseCase) saveLastStore() {
	info, err := uc.stores.Current()
	if err != nil || info == nil {
		return
	}
	// Solo el nombre de archivo, para que el directorio de datos sea portable
	_ = config.SaveState(uc.dataDir, &config.State{LastStore: info.Name})
}

func toStoreResponse(info *entity.StoreInfo) dto.StoreResponse {
	return dto.StoreResponse{
		Name:       info.Name,
		Path:       info.Path,
		SizeBytes:  info.SizeBytes,
		ModifiedAt: info.ModifiedAt,
		Active:     info.Active,
	}
}
