package dto

import "time"

// CreateStoreRequest entrada para crear un almacén.
type CreateStoreRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// SwitchStoreRequest entrada para activar un almacén existente.
type SwitchStoreRequest struct {
	Name string `json:"name" validate:"required"`
}

// StoreResponse salida de un almacén descubierto.
type StoreResponse struct {
	Name       string    `json:"name"`
	Path       string    `json:"path"`
	SizeBytes  int64     `json:"size_bytes"`
	ModifiedAt time.Time `json:"modified_at"`
	Active     bool      `json:"active"`
}

// StoreStatusResponse estado de conexión de la sesión.
type StoreStatusResponse struct {
	Connected bool `json:"connected"`
}
