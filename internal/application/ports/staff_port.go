package ports

import (
	"context"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
)

// EmployeeAPI ABM de empleados (administradores).
type EmployeeAPI interface {
	List(ctx context.Context) ([]entity.Employee, error)
	Get(ctx context.Context, id int64) (*entity.Employee, error)
	Create(ctx context.Context, in dto.CreateEmployeeRequest) error
	Update(ctx context.Context, id int64, in dto.UpdateEmployeeRequest) error
	Delete(ctx context.Context, id int64) error
}

// RegistrationAPI autorregistro público de prestatarios y empleados.
type RegistrationAPI interface {
	RegisterBorrower(ctx context.Context, in dto.RegisterBorrowerRequest) (*entity.Registration, error)
	RegisterEmployee(ctx context.Context, in dto.RegisterEmployeeRequest) (*entity.Registration, error)
}

// AuditAPI registros de auditoría.
type AuditAPI interface {
	Register(ctx context.Context, in dto.RegisterAuditRequest) (int64, error)
	Logs(ctx context.Context, q dto.AuditQuery) ([]entity.AuditLog, error)
	Finish(ctx context.Context, id int64) error
}

// NoticeAPI avisos persistidos por el servicio.
type NoticeAPI interface {
	Pending(ctx context.Context) ([]entity.Notice, error)
	History(ctx context.Context) ([]entity.Notice, error)
	// Send despacha los pendientes del tipo y devuelve cuántos marcó.
	Send(ctx context.Context, kind entity.NoticeKind) (int, error)
	// Generate crea los avisos del tipo que falten y devuelve cuántos creó.
	Generate(ctx context.Context, kind entity.NoticeKind) (int, error)
}
