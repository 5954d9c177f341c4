package notification

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jhoicas/banco-cliente/internal/application/ports"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
)

// lastID contador global del proceso; los ids nunca se reutilizan, ni entre colas.
var lastID atomic.Int64

func nextID() int64 { return lastID.Add(1) }

// Queue cola FIFO de notificaciones transitorias. Se presenta una sola a la vez (la cabeza).
type Queue struct {
	mu      sync.Mutex
	items   []entity.Notification
	changed chan struct{}
}

var _ ports.Notifier = (*Queue)(nil)

// NewQueue construye una cola vacía.
func NewQueue() *Queue {
	return &Queue{changed: make(chan struct{}, 1)}
}

// Enqueue agrega un mensaje al final. Severidad vacía = info.
func (q *Queue) Enqueue(message string, severity entity.Severity) entity.Notification {
	if severity == "" {
		severity = entity.SeverityInfo
	}
	n := entity.Notification{ID: nextID(), Message: message, Severity: severity}
	q.mu.Lock()
	q.items = append(q.items, n)
	q.mu.Unlock()
	q.signal()
	return n
}

// Remove elimina por id; no hace nada si ya no está.
func (q *Queue) Remove(id int64) {
	q.mu.Lock()
	removed := false
	for i, n := range q.items {
		if n.ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			removed = true
			break
		}
	}
	q.mu.Unlock()
	if removed {
		q.signal()
	}
}

// Current devuelve la cabeza (la única visible).
func (q *Queue) Current() (entity.Notification, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return entity.Notification{}, false
	}
	return q.items[0], true
}

// Dismiss descarta la cabeza y deja visible la siguiente.
func (q *Queue) Dismiss() (entity.Notification, bool) {
	head, ok := q.Current()
	if !ok {
		return head, false
	}
	q.Remove(head.ID)
	return head, true
}

// Len cantidad de notificaciones pendientes.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Snapshot copia del contenido en orden.
func (q *Queue) Snapshot() []entity.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]entity.Notification, len(q.items))
	copy(out, q.items)
	return out
}

// Drain muestra y descarta las notificaciones de a una, empezando por la cabeza.
func (q *Queue) Drain(show func(entity.Notification)) {
	for {
		n, ok := q.Dismiss()
		if !ok {
			return
		}
		show(n)
	}
}

// Present visor único: muestra la cabeza, la retira pasado autoHide (o antes si alguien la descarta)
// y continúa con la siguiente. Retorna cuando ctx se cancela.
func (q *Queue) Present(ctx context.Context, autoHide time.Duration, show func(entity.Notification)) error {
	for {
		head, ok := q.Current()
		if !ok {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-q.changed:
				continue
			}
		}
		show(head)
		if err := q.waitHead(ctx, head.ID, autoHide); err != nil {
			return err
		}
	}
}

// waitHead espera a que venza el tiempo de la notificación visible o a que deje de ser la cabeza.
func (q *Queue) waitHead(ctx context.Context, id int64, autoHide time.Duration) error {
	timer := time.NewTimer(autoHide)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			q.Remove(id)
			return nil
		case <-q.changed:
			if cur, ok := q.Current(); !ok || cur.ID != id {
				return nil
			}
		}
	}
}

func (q *Queue) signal() {
	select {
	case q.changed <- struct{}{}:
	default:
	}
}
