package sqlite

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	sqlite3 "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// isUniqueViolation verifica si un error es una violación de constraint único
// (SQLITE_CONSTRAINT_UNIQUE o SQLITE_CONSTRAINT_PRIMARYKEY).
func isUniqueViolation(err error) bool {
	var se *sqlite3.Error
	if errors.As(err, &se) {
		return se.Code() == sqlite3lib.SQLITE_CONSTRAINT_UNIQUE ||
			se.Code() == sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// decimalFromStore interpreta el TEXT persistido de un valor monetario.
func decimalFromStore(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// escapeLike neutraliza los comodines de LIKE para buscar subcadenas literales.
// Requiere la cláusula ESCAPE '\' en la consulta.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// nullable convierte cadenas vacías en NULL para columnas opcionales
// (code, category_id) donde el UNIQUE o la FK no deben aplicar al vacío.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
