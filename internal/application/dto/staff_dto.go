package dto

import "github.com/shopspring/decimal"

// ── Empleados ────────────────────────────────────────────────────────────────

// CreateEmployeeRequest entrada para registrar un empleado.
type CreateEmployeeRequest struct {
	FirstName string           `json:"nombre"`
	LastName  string           `json:"apellido"`
	Position  *string          `json:"cargo,omitempty"`
	Salary    *decimal.Decimal `json:"salario,omitempty"`
	Age       *int             `json:"edad,omitempty"`
}

// UpdateEmployeeRequest campos modificables; nil = sin cambio.
type UpdateEmployeeRequest struct {
	FirstName *string          `json:"nombre,omitempty"`
	LastName  *string          `json:"apellido,omitempty"`
	Position  *string          `json:"cargo,omitempty"`
	Salary    *decimal.Decimal `json:"salario,omitempty"`
	Age       *int             `json:"edad,omitempty"`
}

// EmployeeResponse registro de empleado.
type EmployeeResponse struct {
	ID        int64            `json:"id_empleado"`
	FirstName string           `json:"nombre"`
	LastName  string           `json:"apellido"`
	Position  *string          `json:"cargo"`
	Salary    *decimal.Decimal `json:"salario"`
	Age       *int             `json:"edad"`
}

// ── Autorregistro ────────────────────────────────────────────────────────────

// RegisterBorrowerRequest alta conjunta de prestatario y usuario PRESTATARIO.
type RegisterBorrowerRequest struct {
	Username string                `json:"username"`
	Password string                `json:"password"`
	Borrower CreateBorrowerRequest `json:"prestatario"`
}

// RegisterEmployeeRequest alta conjunta de empleado y usuario EMPLEADO.
type RegisterEmployeeRequest struct {
	Username string                `json:"username"`
	Password string                `json:"password"`
	Employee CreateEmployeeRequest `json:"empleado"`
}

// RegisteredUser usuario creado por un autorregistro.
type RegisteredUser struct {
	Username   string `json:"username"`
	Role       string `json:"role"`
	BorrowerID *int64 `json:"id_prestatario,omitempty"`
	EmployeeID *int64 `json:"id_empleado,omitempty"`
}

// RegistrationResponse usuario y ficha creados.
type RegistrationResponse struct {
	User     RegisteredUser    `json:"user"`
	Borrower *BorrowerResponse `json:"prestatario,omitempty"`
	Employee *EmployeeResponse `json:"empleado,omitempty"`
}

// ── Auditoría ────────────────────────────────────────────────────────────────

// RegisterAuditRequest evento o inicio de sesión a auditar.
type RegisterAuditRequest struct {
	User        string `json:"usuario"`
	IP          string `json:"ip,omitempty"`
	Domain      string `json:"dominio,omitempty"`
	Table       string `json:"tabla,omitempty"`
	Operation   string `json:"operacion,omitempty"`
	Description string `json:"descripcion,omitempty"`
}

// AuditRef id del registro de auditoría.
type AuditRef struct {
	ID int64 `json:"id_audit"`
}

// AuditResponse registro de auditoría.
type AuditResponse struct {
	ID              int64   `json:"id_audit"`
	User            string  `json:"usuario"`
	IP              string  `json:"ip"`
	Domain          string  `json:"dominio"`
	EnteredAt       string  `json:"fecha_entrada"`
	ExitedAt        *string `json:"fecha_salida"`
	Table           string  `json:"tabla_afectada"`
	Operation       string  `json:"operacion"`
	SessionDuration *string `json:"duracion_sesion"`
	Description     string  `json:"descripcion"`
}

// ── Avisos ───────────────────────────────────────────────────────────────────

// NoticeResponse aviso a un prestatario.
type NoticeResponse struct {
	ID            int64  `json:"id_notificacion"`
	BorrowerID    *int64 `json:"id_prestatario"`
	InstallmentID *int64 `json:"id_cuota"`
	LoanID        *int64 `json:"id_prestamo"`
	Kind          string `json:"tipo"`
	Message       string `json:"mensaje"`
	Sent          bool   `json:"enviado"`
	CreatedAt     string `json:"fecha_creacion"`
}

// SendNoticesRequest tipo de aviso a despachar.
type SendNoticesRequest struct {
	Kind string `json:"tipo"`
}

// NoticeBatchResponse resultado de generar o despachar avisos de un tipo.
type NoticeBatchResponse struct {
	Kind  string `json:"tipo"`
	Count int    `json:"cantidad"`
}

// AuditQuery filtros del listado de auditoría tal como viajan en la query.
type AuditQuery struct {
	User      string
	Operation string
	Table     string
	Limit     int
	Offset    int
}
