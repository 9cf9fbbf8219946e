package entity

import "time"

// StoreInfo describe un almacén local descubierto en el directorio de datos.
// Cada almacén es un archivo SQLite independiente; solo uno está activo a la vez.
type StoreInfo struct {
	Name       string
	Path       string
	SizeBytes  int64
	ModifiedAt time.Time
	Active     bool
}
