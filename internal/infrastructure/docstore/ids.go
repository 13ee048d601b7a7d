// Package docstore implementa los repositorios de productos, usuarios y sesión sobre un DocumentStore.
// Cada operación es una sola lectura o un solo Update atómico del documento.
package docstore

import (
	"errors"
	"time"
)

// errSkip aborta un Update sin escribir; nunca sale del paquete.
var errSkip = errors.New("docstore: sin cambios")

// nextID genera un ID basado en el reloj (milisegundos), estrictamente mayor que maxID
// para que dos altas en el mismo milisegundo no compartan ID.
func nextID(now time.Time, maxID int64) int64 {
	id := now.UnixMilli()
	if id <= maxID {
		id = maxID + 1
	}
	return id
}
