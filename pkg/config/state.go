package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// State estado persistente de la sesión entre ejecuciones.
// Se guarda como JSON dentro del directorio de datos para que la carpeta
// completa sea portable (solo se guarda el nombre del archivo, no la ruta).
type State struct {
	LastStore string `json:"last_store"`
}

const stateFileName = "session.json"

// LoadState lee el estado de sesión desde el directorio de datos.
// Si el archivo no existe devuelve un estado vacío sin error.
func LoadState(dataDir string) (*State, error) {
	path := filepath.Join(dataDir, stateFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &State{}, nil
		}
		return nil, err
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		// Estado corrupto: se descarta y se parte de cero
		return &State{}, nil
	}
	return &st, nil
}

// SaveState persiste el estado de sesión en el directorio de datos.
func SaveState(dataDir string, st *State) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dataDir, stateFileName), data, 0o644)
}
