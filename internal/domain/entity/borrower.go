package entity

import "strings"

// Borrower prestatario (cliente de la entidad financiera).
type Borrower struct {
	ID           int64
	CI           string // cédula; el servicio la acepta como número o string
	FirstName    string
	LastName     string
	Address      string
	Email        string
	Phone        string
	BirthDate    string
	ClientStatus string
	RegisteredAt string
	RegisteredBy string
	PhotoBase64  *string
}

// FullName nombre y apellido separados por espacio.
func (b Borrower) FullName() string {
	return strings.TrimSpace(b.FirstName + " " + b.LastName)
}

// BulkLoadDetail línea rechazada en una carga masiva.
type BulkLoadDetail struct {
	Line   int
	Reason string
}

// BulkLoadResult resumen devuelto por la carga masiva de prestatarios.
type BulkLoadResult struct {
	Total    int
	Accepted int
	Rejected int
	Details  []BulkLoadDetail
	LogID    int64
}

// LoadLog registro histórico de una carga masiva.
type LoadLog struct {
	ID       int64
	FileName string
	LoadedAt string
	User     string
	Valid    int
	Rejected int
	Details  []BulkLoadDetail
}

// DelinquencyStatus juicio de morosidad de un prestatario.
type DelinquencyStatus string

const (
	DelinquencyMoroso DelinquencyStatus = "MOROSO"
	DelinquencyActivo DelinquencyStatus = "ACTIVO"
)

// Delinquency juicio puntual calculado por el servicio remoto; no se guarda en ningún store.
type Delinquency struct {
	BorrowerID         int64
	Status             DelinquencyStatus
	OverdueUnpaidCount int
}
