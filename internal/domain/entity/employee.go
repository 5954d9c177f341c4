package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Employee empleado interno de la entidad. Cargo, salario y edad son opcionales.
type Employee struct {
	ID        int64
	FirstName string
	LastName  string
	Position  *string
	Salary    *decimal.Decimal
	Age       *int
}

// FullName nombre y apellido separados por espacio.
func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// Registration resultado de un autorregistro: el usuario creado y su ficha asociada.
type Registration struct {
	Username   string
	Role       Role
	BorrowerID *int64
	EmployeeID *int64
}
