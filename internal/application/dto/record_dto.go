package dto

import "github.com/shopspring/decimal"

// Registros tal como los expone el servicio de préstamos (snake_case).

// BorrowerResponse registro de prestatario.
type BorrowerResponse struct {
	ID           int64   `json:"id_prestatario"`
	CI           string  `json:"ci"`
	FirstName    string  `json:"nombre"`
	LastName     string  `json:"apellido"`
	Address      string  `json:"direccion"`
	Email        string  `json:"email"`
	Phone        string  `json:"telefono"`
	BirthDate    string  `json:"fecha_nacimiento"`
	ClientStatus string  `json:"estado_cliente"`
	RegisteredAt string  `json:"fecha_registro"`
	RegisteredBy string  `json:"usuario_registro"`
	PhotoBase64  *string `json:"foto_base64"`
}

// LoanResponse registro de préstamo.
type LoanResponse struct {
	ID               int64           `json:"id_prestamo"`
	LoanRequestID    int64           `json:"id_solicitud_prestamo"`
	BorrowerID       int64           `json:"id_prestatario"`
	Principal        decimal.Decimal `json:"total_prestado"`
	InstallmentCount int             `json:"nro_cuotas"`
	InterestRate     decimal.Decimal `json:"interes"`
	IssuedAt         string          `json:"fecha_emision"`
	DueAt            *string         `json:"fecha_vencimiento"`
	Status           string          `json:"estado"`
}

// InstallmentResponse registro de cuota.
type InstallmentResponse struct {
	ID             int64           `json:"id_cuota"`
	LoanID         int64           `json:"id_prestamo"`
	BorrowerID     int64           `json:"id_prestatario"`
	SequenceNumber int             `json:"nro_cuota"`
	Amount         decimal.Decimal `json:"monto"`
	DueDate        string          `json:"fecha_vencimiento"`
	PaidDate       *string         `json:"fecha_pago"`
	Status         string          `json:"estado"`
}

// InstallmentSummaryResponse cuota resumida con saldo.
type InstallmentSummaryResponse struct {
	LoanID         int64           `json:"id_prestamo"`
	SequenceNumber int             `json:"nro_cuota"`
	Amount         decimal.Decimal `json:"valor_cuota"`
	Balance        decimal.Decimal `json:"saldo"`
	Status         string          `json:"estado"`
	DueDate        string          `json:"fecha_vencimiento"`
}

// BorrowerRefResponse referencia al prestatario en el listado por cédula.
type BorrowerRefResponse struct {
	ID int64  `json:"id_prestatario"`
	CI string `json:"ci"`
}

// BorrowerLoansResponse préstamos y cuotas de un prestatario.
type BorrowerLoansResponse struct {
	Borrower     *BorrowerRefResponse         `json:"prestatario"`
	Loans        []LoanResponse               `json:"prestamos"`
	Installments []InstallmentSummaryResponse `json:"cuotas"`
}

// PaymentResponse resultado de pagar una cuota.
type PaymentResponse struct {
	Installment *InstallmentResponse `json:"cuota"`
	Loan        *LoanResponse        `json:"prestamo"`
}

// LoanApplicationResponse registro de solicitud de préstamo.
type LoanApplicationResponse struct {
	ID                int64           `json:"id_solicitud_prestamo"`
	BorrowerID        int64           `json:"id_prestatario"`
	EmployeeID        *int64          `json:"id_empleado"`
	Amount            decimal.Decimal `json:"monto"`
	InstallmentCount  int             `json:"nro_cuotas"`
	SubmittedAt       string          `json:"fecha_envio"`
	DecidedAt         *string         `json:"fecha_respuesta"`
	Status            string          `json:"estado"`
	Reason            *string         `json:"motivo"`
	BorrowerFirstName string          `json:"prest_nombre,omitempty"`
	BorrowerLastName  string          `json:"prest_apellido,omitempty"`
	BorrowerCI        string          `json:"prest_ci,omitempty"`
}

// LoanApplicationCreated id y estado de la solicitud recién creada.
type LoanApplicationCreated struct {
	ID     int64  `json:"id_solicitud_prestamo"`
	Status string `json:"estado"`
}

// DecisionRef solicitud decidida.
type DecisionRef struct {
	ID     int64   `json:"id_solicitud"`
	Status string  `json:"estado"`
	Reason *string `json:"motivo,omitempty"`
}

// LoanRef préstamo generado por una aprobación.
type LoanRef struct {
	ID int64 `json:"id_prestamo"`
}

// LoanApplicationDecisionResponse resultado de aprobar o rechazar.
type LoanApplicationDecisionResponse struct {
	Request DecisionRef `json:"solicitud"`
	Loan    *LoanRef    `json:"prestamo,omitempty"`
}

// RefinancingResponse registro de solicitud de refinanciación.
type RefinancingResponse struct {
	ID                  int64   `json:"id_solicitud_refinanciacion"`
	LoanID              int64   `json:"id_prestamo"`
	BorrowerID          int64   `json:"id_prestatario"`
	Status              string  `json:"estado"`
	NewInstallmentCount int     `json:"nro_cuotas"`
	RequestedAt         string  `json:"fecha_realizacion"`
	DecidedAt           *string `json:"fecha_decision"`
	BorrowerComment     *string `json:"comentario_cliente"`
	EmployeeComment     *string `json:"comentario_empleado"`
	DeciderID           *int64  `json:"id_empleado_decisor"`
}

// DelinquencyResponse juicio de morosidad.
type DelinquencyResponse struct {
	BorrowerID         int64  `json:"id_prestatario"`
	Status             string `json:"estado"`
	OverdueUnpaidCount int    `json:"cuotas_vencidas_impagas"`
}

// BulkLoadDetailResponse línea rechazada.
type BulkLoadDetailResponse struct {
	Line   int    `json:"linea"`
	Reason string `json:"motivo"`
}

// BulkLoadResponse resumen de carga masiva.
type BulkLoadResponse struct {
	Total    int                      `json:"total"`
	Accepted int                      `json:"aceptados"`
	Rejected int                      `json:"rechazados"`
	Details  []BulkLoadDetailResponse `json:"detalles"`
	LogID    int64                    `json:"id_log_pk"`
}

// LoadLogResponse registro histórico de carga.
type LoadLogResponse struct {
	ID       int64                    `json:"id_log_pk"`
	FileName string                   `json:"nombre_archivo"`
	LoadedAt string                   `json:"fecha_carga"`
	User     string                   `json:"usuario"`
	Valid    int                      `json:"registros_validos"`
	Rejected int                      `json:"registros_rechazados"`
	Details  []BulkLoadDetailResponse `json:"detalles"`
}
