package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/banco-cliente/internal/domain/entity"
)

// table filas de un tipo indexadas por id, en orden de inserción.
type table[T any] struct {
	seq  int64
	ids  []int64
	rows map[int64]T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: map[int64]T{}}
}

// insert guarda v con el id indicado o con el siguiente de la secuencia si id es 0.
func (t *table[T]) insert(id int64, v T) int64 {
	if id == 0 {
		t.seq++
		id = t.seq
	} else if id > t.seq {
		t.seq = id
	}
	if _, ok := t.rows[id]; !ok {
		t.ids = append(t.ids, id)
	}
	t.rows[id] = v
	return id
}

func (t *table[T]) get(id int64) (T, bool) {
	v, ok := t.rows[id]
	return v, ok
}

func (t *table[T]) put(id int64, v T) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	t.rows[id] = v
	return true
}

func (t *table[T]) remove(id int64) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, x := range t.ids {
		if x == id {
			t.ids = append(t.ids[:i], t.ids[i+1:]...)
			break
		}
	}
	return true
}

func (t *table[T]) all() []T {
	out := make([]T, 0, len(t.ids))
	for _, id := range t.ids {
		out = append(out, t.rows[id])
	}
	return out
}

// DB almacenamiento en memoria del sandbox. Los repositorios guardan copias de las entidades:
// modificar un puntero devuelto no altera la base hasta llamar Update.
type DB struct {
	mu           sync.RWMutex
	tx           sync.Mutex
	users        *table[entity.User]
	borrowers    *table[entity.Borrower]
	loadLogs     *table[entity.LoadLog]
	loans        *table[entity.Loan]
	installments *table[entity.Installment]
	requests     *table[entity.LoanRequest]
	refis        *table[entity.RefinancingRequest]
	employees    *table[entity.Employee]
	audits       *table[entity.AuditLog]
	notices      *table[entity.Notice]
}

// NewDB base vacía.
func NewDB() *DB {
	return &DB{
		users:        newTable[entity.User](),
		borrowers:    newTable[entity.Borrower](),
		loadLogs:     newTable[entity.LoadLog](),
		loans:        newTable[entity.Loan](),
		installments: newTable[entity.Installment](),
		requests:     newTable[entity.LoanRequest](),
		refis:        newTable[entity.RefinancingRequest](),
		employees:    newTable[entity.Employee](),
		audits:       newTable[entity.AuditLog](),
		notices:      newTable[entity.Notice](),
	}
}

// TxRunner serializa los casos de uso que leen y luego escriben (p. ej. tope de préstamos activos
// y aprobación), de modo que ninguna otra escritura se intercale entre la verificación y el alta.
type TxRunner struct {
	db *DB
}

// NewTxRunner construye el runner sobre la base.
func NewTxRunner(db *DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run ejecuta fn con exclusión mutua respecto de otras transacciones.
func (r *TxRunner) Run(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.db.tx.Lock()
	defer r.db.tx.Unlock()
	return fn()
}
