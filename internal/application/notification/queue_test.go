package notification_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/banco-cliente/internal/application/notification"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
)

func TestEnqueue_SeveridadPorDefectoInfo(t *testing.T) {
	q := notification.NewQueue()
	n := q.Enqueue("hola", "")
	assert.Equal(t, entity.SeverityInfo, n.Severity)
	assert.Equal(t, 1, q.Len())
}

func TestEnqueue_IDsMonotonosSinReutilizar(t *testing.T) {
	q := notification.NewQueue()
	a := q.Enqueue("A", entity.SeverityError)
	q.Remove(a.ID)
	require.Equal(t, 0, q.Len())

	b := q.Enqueue("B", entity.SeverityError)
	assert.Greater(t, b.ID, a.ID, "los ids no se reutilizan aunque la cola haya quedado vacía")

	otra := notification.NewQueue()
	c := otra.Enqueue("C", entity.SeverityInfo)
	assert.Greater(t, c.ID, b.ID, "el contador es global del proceso")
}

func TestDismiss_FIFOUnaALaVez(t *testing.T) {
	q := notification.NewQueue()
	q.Enqueue("A", entity.SeverityInfo)
	q.Enqueue("B", entity.SeverityInfo)

	head, ok := q.Current()
	require.True(t, ok)
	assert.Equal(t, "A", head.Message)

	first, _ := q.Dismiss()
	assert.Equal(t, "A", first.Message)
	head, _ = q.Current()
	assert.Equal(t, "B", head.Message)

	q.Dismiss()
	_, ok = q.Current()
	assert.False(t, ok)
}

func TestRemove_IDInexistenteNoHaceNada(t *testing.T) {
	q := notification.NewQueue()
	q.Enqueue("A", entity.SeverityInfo)
	q.Remove(-1)
	assert.Equal(t, 1, q.Len())
}

func TestDrain_MuestraEnOrden(t *testing.T) {
	q := notification.NewQueue()
	q.Enqueue("A", entity.SeverityInfo)
	q.Enqueue("B", entity.SeverityWarning)

	var shown []string
	q.Drain(func(n entity.Notification) {
		shown = append(shown, n.Message)
		if n.Message == "A" {
			head, ok := q.Current()
			require.True(t, ok)
			assert.Equal(t, "B", head.Message, "A ya salió de la cola cuando se muestra")
		}
	})
	assert.Equal(t, []string{"A", "B"}, shown)
	assert.Zero(t, q.Len())
}

func TestPresent_AutoOcultaYMuestraLaSiguiente(t *testing.T) {
	q := notification.NewQueue()
	q.Enqueue("A", entity.SeverityInfo)
	q.Enqueue("B", entity.SeverityInfo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var shown []string
	done := make(chan error, 1)
	go func() {
		done <- q.Present(ctx, 10*time.Millisecond, func(n entity.Notification) {
			mu.Lock()
			shown = append(shown, n.Message)
			mu.Unlock()
		})
	}()

	require.Eventually(t, func() bool { return q.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"A", "B"}, shown)
}

func TestPresent_DescarteManualAvanza(t *testing.T) {
	q := notification.NewQueue()
	q.Enqueue("A", entity.SeverityInfo)
	q.Enqueue("B", entity.SeverityInfo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shown := make(chan string, 4)
	go func() {
		_ = q.Present(ctx, time.Hour, func(n entity.Notification) { shown <- n.Message })
	}()

	assert.Equal(t, "A", <-shown)
	q.Dismiss()
	assert.Equal(t, "B", <-shown)
}
