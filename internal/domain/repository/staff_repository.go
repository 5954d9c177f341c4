package repository

import "github.com/jhoicas/banco-cliente/internal/domain/entity"

// EmployeeRepository persistencia de empleados. Las búsquedas devuelven (nil, nil) si no hay registro.
type EmployeeRepository interface {
	Create(e *entity.Employee) error
	GetByID(id int64) (*entity.Employee, error)
	List() ([]*entity.Employee, error)
	Update(e *entity.Employee) error
	Delete(id int64) error
}

// AuditFilter filtros del listado de auditoría; cadenas vacías = sin filtro. Limit 0 = sin límite.
type AuditFilter struct {
	User      string
	Operation string
	Table     string
	Limit     int
	Offset    int
}

// AuditRepository persistencia de registros de auditoría.
type AuditRepository interface {
	Create(a *entity.AuditLog) error
	GetByID(id int64) (*entity.AuditLog, error)
	// List devuelve los registros más recientes primero.
	List(filter AuditFilter) ([]*entity.AuditLog, error)
	Update(a *entity.AuditLog) error
}

// NoticeRepository persistencia de avisos a prestatarios.
type NoticeRepository interface {
	Create(n *entity.Notice) error
	// List filtra por prestatario (0 = todos); solo pendientes de envío si pendingOnly.
	List(borrowerID int64, pendingOnly bool) ([]*entity.Notice, error)
	// MarkSent marca como enviados los pendientes del tipo y devuelve cuántos cambió.
	MarkSent(kind entity.NoticeKind) (int, error)
}
