package entity

// NoticeKind tipo de aviso generado por el servicio para los prestatarios.
type NoticeKind string

const (
	NoticePayment      NoticeKind = "PAGO"
	NoticeDelinquency  NoticeKind = "MORA"
	NoticeCancellation NoticeKind = "CANCELACION"
)

// Valid informa si el tipo es uno de los conocidos.
func (k NoticeKind) Valid() bool {
	switch k {
	case NoticePayment, NoticeDelinquency, NoticeCancellation:
		return true
	}
	return false
}

// Notice aviso persistido por el servicio (recordatorio de pago, mora o cancelación).
// No confundir con Notification, el mensaje transitorio de la interfaz.
type Notice struct {
	ID            int64
	BorrowerID    *int64
	InstallmentID *int64
	LoanID        *int64
	Kind          NoticeKind
	Message       string
	Sent          bool
	CreatedAt     string
}
