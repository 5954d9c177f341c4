package dto

import "github.com/shopspring/decimal"

// ── Autenticación ────────────────────────────────────────────────────────────

// LoginRequest credenciales para /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse payload de un login exitoso.
type LoginResponse struct {
	Token string `json:"token"`
}

// ── Prestatarios ─────────────────────────────────────────────────────────────

// CreateBorrowerRequest entrada para registrar un prestatario.
type CreateBorrowerRequest struct {
	CI           string `json:"ci"`
	FirstName    string `json:"nombre"`
	LastName     string `json:"apellido"`
	Address      string `json:"direccion"`
	Email        string `json:"email"`
	Phone        string `json:"telefono"`
	BirthDate    string `json:"fecha_nacimiento"`
	ClientStatus string `json:"estado_cliente"`
	RegisteredBy string `json:"usuario_registro"`
}

// UpdateBorrowerRequest campos modificables; nil = sin cambio.
type UpdateBorrowerRequest struct {
	FirstName    *string `json:"nombre,omitempty"`
	LastName     *string `json:"apellido,omitempty"`
	Address      *string `json:"direccion,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"telefono,omitempty"`
	BirthDate    *string `json:"fecha_nacimiento,omitempty"`
	ClientStatus *string `json:"estado_cliente,omitempty"`
}

// ── Préstamos ────────────────────────────────────────────────────────────────

// CreateLoanRequest entrada para crear un préstamo directamente (empleados).
type CreateLoanRequest struct {
	BorrowerID       *int64          `json:"id_prestatario,omitempty"`
	Amount           decimal.Decimal `json:"monto"`
	InstallmentCount int             `json:"nro_cuotas"`
	InterestType     string          `json:"tipo_interes,omitempty"` // BAJA | MEDIA | ALTA
	EmployeeID       *int64          `json:"id_empleado,omitempty"`
}

// UpdateLoanRequest cambios de un préstamo; hoy solo el estado.
type UpdateLoanRequest struct {
	Status *string `json:"estado,omitempty"`
}

// CreateLoanResult id generado por el servicio.
type CreateLoanResult struct {
	LoanID int64 `json:"id_prestamo"`
}

// ── Cuotas ───────────────────────────────────────────────────────────────────

// PayInstallmentRequest cuerpo para registrar el pago de una cuota.
type PayInstallmentRequest struct {
	PaidDate   string           `json:"fecha_pago,omitempty"` // YYYY-MM-DD
	AmountPaid *decimal.Decimal `json:"monto_pagado,omitempty"`
	Method     string           `json:"metodo,omitempty"`
}

// ── Solicitudes de préstamo ──────────────────────────────────────────────────

// CreateLoanApplicationRequest entrada de una solicitud de préstamo.
// Si quien la envía es PRESTATARIO, el servicio toma id_prestatario del token.
type CreateLoanApplicationRequest struct {
	Amount           decimal.Decimal `json:"monto"`
	InstallmentCount int             `json:"nro_cuotas"`
	BorrowerID       *int64          `json:"id_prestatario,omitempty"`
	EmployeeID       *int64          `json:"id_empleado,omitempty"`
}

// LoanApplicationFilter filtros opcionales del listado de solicitudes (empleados).
type LoanApplicationFilter struct {
	Status     string
	BorrowerID *int64
}

// RejectLoanApplicationRequest motivo opcional de rechazo.
type RejectLoanApplicationRequest struct {
	Reason string `json:"motivo,omitempty"`
}

// ── Refinanciaciones ─────────────────────────────────────────────────────────

// CreateRefinancingRequest entrada de una solicitud de refinanciación.
type CreateRefinancingRequest struct {
	LoanID              int64  `json:"id_prestamo"`
	NewInstallmentCount int    `json:"nuevo_nro_cuotas"`
	BorrowerComment     string `json:"comentario_cliente,omitempty"`
}

// DecideRefinancingRequest comentario opcional del empleado al decidir.
type DecideRefinancingRequest struct {
	EmployeeComment string `json:"comentario_empleado,omitempty"`
}
