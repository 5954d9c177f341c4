package ports

import "github.com/jhoicas/banco-cliente/internal/domain/entity"

// Notifier productor de notificaciones transitorias.
type Notifier interface {
	Enqueue(message string, severity entity.Severity) entity.Notification
}

// Navigator destino de las redirecciones globales.
// hard=true descarta el estado en memoria de la aplicación (equivale a recargar la página).
type Navigator interface {
	Redirect(path string, hard bool)
}

// Resetter componente con estado en memoria que se descarta en una redirección dura.
type Resetter interface {
	Reset()
}
