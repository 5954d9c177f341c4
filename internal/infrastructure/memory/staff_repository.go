package memory

import (
	"fmt"

	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/internal/domain/repository"
)

var (
	_ repository.EmployeeRepository = (*EmployeeRepo)(nil)
	_ repository.AuditRepository    = (*AuditRepo)(nil)
	_ repository.NoticeRepository   = (*NoticeRepo)(nil)
)

// EmployeeRepo empleados.
type EmployeeRepo struct {
	db *DB
}

// NewEmployeeRepository construye el repositorio.
func NewEmployeeRepository(db *DB) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

// Create persiste un empleado y le asigna id.
func (r *EmployeeRepo) Create(e *entity.Employee) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	e.ID = r.db.employees.insert(e.ID, *e)
	r.db.employees.rows[e.ID] = *e
	return nil
}

// GetByID obtiene un empleado por id.
func (r *EmployeeRepo) GetByID(id int64) (*entity.Employee, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	e, ok := r.db.employees.get(id)
	if !ok {
		return nil, nil
	}
	return &e, nil
}

// List todos los empleados en orden de alta.
func (r *EmployeeRepo) List() ([]*entity.Employee, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return pointers(r.db.employees.all()), nil
}

// Update reemplaza el registro.
func (r *EmployeeRepo) Update(e *entity.Employee) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if !r.db.employees.put(e.ID, *e) {
		return fmt.Errorf("update employee %d: no existe", e.ID)
	}
	return nil
}

// Delete elimina el registro y desliga los usuarios que apuntaban a él.
func (r *EmployeeRepo) Delete(id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if !r.db.employees.remove(id) {
		return fmt.Errorf("delete employee %d: no existe", id)
	}
	for _, u := range r.db.users.all() {
		if u.EmployeeID != nil && *u.EmployeeID == id {
			u.EmployeeID = nil
			r.db.users.put(u.ID, u)
		}
	}
	return nil
}

// AuditRepo registros de auditoría.
type AuditRepo struct {
	db *DB
}

// NewAuditRepository construye el repositorio.
func NewAuditRepository(db *DB) *AuditRepo {
	return &AuditRepo{db: db}
}

// Create persiste el registro y le asigna id.
func (r *AuditRepo) Create(a *entity.AuditLog) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	a.ID = r.db.audits.insert(0, *a)
	r.db.audits.rows[a.ID] = *a
	return nil
}

// GetByID obtiene un registro por id.
func (r *AuditRepo) GetByID(id int64) (*entity.AuditLog, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	a, ok := r.db.audits.get(id)
	if !ok {
		return nil, nil
	}
	return &a, nil
}

// List registros filtrados, del más reciente al más antiguo, con paginación.
func (r *AuditRepo) List(f repository.AuditFilter) ([]*entity.AuditLog, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	all := r.db.audits.all()
	var out []*entity.AuditLog
	skipped := 0
	for i := len(all) - 1; i >= 0; i-- {
		a := all[i]
		if (f.User != "" && a.User != f.User) ||
			(f.Operation != "" && a.Operation != f.Operation) ||
			(f.Table != "" && a.Table != f.Table) {
			continue
		}
		if skipped < f.Offset {
			skipped++
			continue
		}
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
		out = append(out, &a)
	}
	return out, nil
}

// Update reemplaza el registro.
func (r *AuditRepo) Update(a *entity.AuditLog) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if !r.db.audits.put(a.ID, *a) {
		return fmt.Errorf("update audit %d: no existe", a.ID)
	}
	return nil
}

// NoticeRepo avisos a prestatarios.
type NoticeRepo struct {
	db *DB
}

// NewNoticeRepository construye el repositorio.
func NewNoticeRepository(db *DB) *NoticeRepo {
	return &NoticeRepo{db: db}
}

// Create persiste el aviso y le asigna id.
func (r *NoticeRepo) Create(n *entity.Notice) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	n.ID = r.db.notices.insert(0, *n)
	r.db.notices.rows[n.ID] = *n
	return nil
}

// List avisos en orden de alta.
func (r *NoticeRepo) List(borrowerID int64, pendingOnly bool) ([]*entity.Notice, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	var out []*entity.Notice
	for _, n := range r.db.notices.all() {
		n := n
		if borrowerID != 0 && (n.BorrowerID == nil || *n.BorrowerID != borrowerID) {
			continue
		}
		if pendingOnly && n.Sent {
			continue
		}
		out = append(out, &n)
	}
	return out, nil
}

// MarkSent marca como enviados los pendientes del tipo.
func (r *NoticeRepo) MarkSent(kind entity.NoticeKind) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	n := 0
	for _, x := range r.db.notices.all() {
		if x.Kind == kind && !x.Sent {
			x.Sent = true
			r.db.notices.put(x.ID, x)
			n++
		}
	}
	return n, nil
}
