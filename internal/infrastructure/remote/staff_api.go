package remote

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/application/ports"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
)

// EmployeeAPI adaptador de /api/empleados.
type EmployeeAPI struct {
	c *Client
}

var _ ports.EmployeeAPI = (*EmployeeAPI)(nil)

// NewEmployeeAPI construye el adaptador.
func NewEmployeeAPI(c *Client) *EmployeeAPI { return &EmployeeAPI{c: c} }

func employeePath(id int64) string { return "/api/empleados/" + strconv.FormatInt(id, 10) }

func (a *EmployeeAPI) List(ctx context.Context) ([]entity.Employee, error) {
	var out any
	if err := a.c.Get(ctx, "/api/empleados", nil, &out); err != nil {
		return nil, err
	}
	return mapList(out, mapEmployee), nil
}

func (a *EmployeeAPI) Get(ctx context.Context, id int64) (*entity.Employee, error) {
	var out any
	if err := a.c.Get(ctx, employeePath(id), nil, &out); err != nil {
		return nil, err
	}
	e := mapEmployee(asRecord(out))
	return &e, nil
}

func (a *EmployeeAPI) Create(ctx context.Context, in dto.CreateEmployeeRequest) error {
	return a.c.Post(ctx, "/api/empleados", in, nil)
}

func (a *EmployeeAPI) Update(ctx context.Context, id int64, in dto.UpdateEmployeeRequest) error {
	return a.c.Put(ctx, employeePath(id), in, nil)
}

func (a *EmployeeAPI) Delete(ctx context.Context, id int64) error {
	return a.c.Delete(ctx, employeePath(id), nil)
}

var _ ports.RegistrationAPI = (*AuthAPI)(nil)

// RegisterBorrower POST /api/auth/register-prestatario (sin bearer).
func (a *AuthAPI) RegisterBorrower(ctx context.Context, in dto.RegisterBorrowerRequest) (*entity.Registration, error) {
	var out any
	if err := a.c.PostAnonymous(ctx, "/api/auth/register-prestatario", in, &out); err != nil {
		return nil, err
	}
	return mapRegistration(out), nil
}

// RegisterEmployee POST /api/auth/register-empleado (sin bearer).
func (a *AuthAPI) RegisterEmployee(ctx context.Context, in dto.RegisterEmployeeRequest) (*entity.Registration, error) {
	var out any
	if err := a.c.PostAnonymous(ctx, "/api/auth/register-empleado", in, &out); err != nil {
		return nil, err
	}
	return mapRegistration(out), nil
}

// AuditAPI adaptador de /api/auditoria.
type AuditAPI struct {
	c *Client
}

var _ ports.AuditAPI = (*AuditAPI)(nil)

// NewAuditAPI construye el adaptador.
func NewAuditAPI(c *Client) *AuditAPI { return &AuditAPI{c: c} }

// Register devuelve el id del registro abierto.
func (a *AuditAPI) Register(ctx context.Context, in dto.RegisterAuditRequest) (int64, error) {
	var out any
	if err := a.c.Post(ctx, "/api/auditoria/registrar", in, &out); err != nil {
		return 0, err
	}
	return createdID(out, "id_audit"), nil
}

// Logs solo envía los filtros presentes.
func (a *AuditAPI) Logs(ctx context.Context, q dto.AuditQuery) ([]entity.AuditLog, error) {
	query := url.Values{}
	if q.User != "" {
		query.Set("usuario", q.User)
	}
	if q.Operation != "" {
		query.Set("operacion", q.Operation)
	}
	if q.Table != "" {
		query.Set("tabla", q.Table)
	}
	if q.Limit > 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		query.Set("offset", strconv.Itoa(q.Offset))
	}
	var out any
	if err := a.c.Get(ctx, "/api/auditoria/logs", query, &out); err != nil {
		return nil, err
	}
	return mapList(out, mapAuditLog), nil
}

func (a *AuditAPI) Finish(ctx context.Context, id int64) error {
	return a.c.Post(ctx, "/api/auditoria/finalizar", dto.AuditRef{ID: id}, nil)
}

// NoticeAPI adaptador de /api/notificaciones.
type NoticeAPI struct {
	c *Client
}

var _ ports.NoticeAPI = (*NoticeAPI)(nil)

// NewNoticeAPI construye el adaptador.
func NewNoticeAPI(c *Client) *NoticeAPI { return &NoticeAPI{c: c} }

// noticeGenerators ruta de generación por tipo de aviso.
var noticeGenerators = map[entity.NoticeKind]string{
	entity.NoticePayment:      "/api/notificaciones/recordatorios-pago",
	entity.NoticeDelinquency:  "/api/notificaciones/notificar-mora",
	entity.NoticeCancellation: "/api/notificaciones/notificar-cancelacion",
}

func (a *NoticeAPI) Pending(ctx context.Context) ([]entity.Notice, error) {
	return a.list(ctx, "/api/notificaciones/pendientes")
}

func (a *NoticeAPI) History(ctx context.Context) ([]entity.Notice, error) {
	return a.list(ctx, "/api/notificaciones")
}

func (a *NoticeAPI) list(ctx context.Context, path string) ([]entity.Notice, error) {
	var out any
	if err := a.c.Get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return mapList(out, mapNotice), nil
}

func (a *NoticeAPI) Send(ctx context.Context, kind entity.NoticeKind) (int, error) {
	var out any
	if err := a.c.Post(ctx, "/api/notificaciones/enviar", dto.SendNoticesRequest{Kind: string(kind)}, &out); err != nil {
		return 0, err
	}
	return asRecord(out).int("cantidad"), nil
}

func (a *NoticeAPI) Generate(ctx context.Context, kind entity.NoticeKind) (int, error) {
	path, ok := noticeGenerators[kind]
	if !ok {
		return 0, fmt.Errorf("remote: tipo de aviso desconocido %q", kind)
	}
	var out any
	if err := a.c.Post(ctx, path, nil, &out); err != nil {
		return 0, err
	}
	return asRecord(out).int("cantidad"), nil
}
