package memory

import (
	"fmt"

	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/internal/domain/repository"
)

var (
	_ repository.BorrowerRepository = (*BorrowerRepo)(nil)
	_ repository.LoadLogRepository  = (*LoadLogRepo)(nil)
)

// BorrowerRepo prestatarios.
type BorrowerRepo struct {
	db *DB
}

// NewBorrowerRepository construye el repositorio.
func NewBorrowerRepository(db *DB) *BorrowerRepo {
	return &BorrowerRepo{db: db}
}

// Create persiste un prestatario y le asigna id.
func (r *BorrowerRepo) Create(b *entity.Borrower) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, x := range r.db.borrowers.all() {
		if x.CI == b.CI {
			return fmt.Errorf("insert borrower: ci %q duplicada", b.CI)
		}
	}
	b.ID = r.db.borrowers.insert(b.ID, *b)
	r.db.borrowers.rows[b.ID] = *b
	return nil
}

// GetByID obtiene un prestatario por id.
func (r *BorrowerRepo) GetByID(id int64) (*entity.Borrower, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	b, ok := r.db.borrowers.get(id)
	if !ok {
		return nil, nil
	}
	return &b, nil
}

// GetByCI obtiene un prestatario por cédula.
func (r *BorrowerRepo) GetByCI(ci string) (*entity.Borrower, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	for _, b := range r.db.borrowers.all() {
		if b.CI == ci {
			return &b, nil
		}
	}
	return nil, nil
}

// List todos los prestatarios en orden de alta.
func (r *BorrowerRepo) List() ([]*entity.Borrower, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return pointers(r.db.borrowers.all()), nil
}

// Update reemplaza el registro.
func (r *BorrowerRepo) Update(b *entity.Borrower) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if !r.db.borrowers.put(b.ID, *b) {
		return fmt.Errorf("update borrower %d: no existe", b.ID)
	}
	return nil
}

// Delete elimina el registro.
func (r *BorrowerRepo) Delete(id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if !r.db.borrowers.remove(id) {
		return fmt.Errorf("delete borrower %d: no existe", id)
	}
	return nil
}

// LoadLogRepo historial de cargas masivas.
type LoadLogRepo struct {
	db *DB
}

// NewLoadLogRepository construye el repositorio.
func NewLoadLogRepository(db *DB) *LoadLogRepo {
	return &LoadLogRepo{db: db}
}

// Create persiste el log y le asigna id.
func (r *LoadLogRepo) Create(log *entity.LoadLog) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	log.ID = r.db.loadLogs.insert(0, *log)
	r.db.loadLogs.rows[log.ID] = *log
	return nil
}

// List logs del más reciente al más antiguo.
func (r *LoadLogRepo) List() ([]*entity.LoadLog, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	all := r.db.loadLogs.all()
	out := make([]*entity.LoadLog, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		l := all[i]
		out = append(out, &l)
	}
	return out, nil
}

func pointers[T any](in []T) []*T {
	out := make([]*T, len(in))
	for i := range in {
		v := in[i]
		out[i] = &v
	}
	return out
}
