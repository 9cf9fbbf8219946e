package sqlite

import "database/sql"

// Querier abstrae la superficie común de *sql.DB y *sql.Tx para que los
// repositorios funcionen igual dentro o fuera de una transacción.
type Querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// Source resuelve el Querier del almacén activo en cada operación.
// Los repositorios nunca retienen un handle entre llamadas: así un cambio de
// almacén nunca deja operaciones trabajando contra un handle obsoleto.
type Source interface {
	Conn() (Querier, error)
}

// txSource ata un Source a una transacción ya abierta (usado por TxRunner).
type txSource struct {
	tx *sql.Tx
}

func (s txSource) Conn() (Querier, error) {
	return s.tx, nil
}
