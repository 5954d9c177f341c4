package usecase

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/internal/domain/repository"
)

// ReportUseCase reportes de cartera: filas planas con columnas en mayúsculas.
type ReportUseCase struct {
	borrowers    repository.BorrowerRepository
	loans        repository.LoanRepository
	installments repository.InstallmentRepository
	refis        repository.RefinancingRepository
	now          Clock
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	borrowers repository.BorrowerRepository,
	loans repository.LoanRepository,
	installments repository.InstallmentRepository,
	refis repository.RefinancingRepository,
	now Clock,
) *ReportUseCase {
	return &ReportUseCase{borrowers: borrowers, loans: loans, installments: installments, refis: refis, now: now.orNow()}
}

// LoanSummary cantidad y monto prestado por estado, ordenado por estado.
func (uc *ReportUseCase) LoanSummary() ([]entity.ReportRow, error) {
	loans, err := uc.loans.List()
	if err != nil {
		return nil, err
	}
	type agg struct {
		count int
		total decimal.Decimal
	}
	byStatus := map[entity.LoanStatus]*agg{}
	for _, l := range loans {
		a, ok := byStatus[l.Status]
		if !ok {
			a = &agg{total: decimal.Zero}
			byStatus[l.Status] = a
		}
		a.count++
		a.total = a.total.Add(l.Principal)
	}
	statuses := make([]string, 0, len(byStatus))
	for s := range byStatus {
		statuses = append(statuses, string(s))
	}
	sort.Strings(statuses)
	rows := make([]entity.ReportRow, 0, len(statuses))
	for _, s := range statuses {
		a := byStatus[entity.LoanStatus(s)]
		rows = append(rows, entity.ReportRow{
			"ESTADO":         s,
			"CANTIDAD":       a.count,
			"TOTAL_PRESTADO": a.total.StringFixed(2),
		})
	}
	return rows, nil
}

// Delinquents prestatarios con cuotas vencidas impagas y el monto adeudado por ellas.
func (uc *ReportUseCase) Delinquents() ([]entity.ReportRow, error) {
	all, err := uc.installments.List()
	if err != nil {
		return nil, err
	}
	today := uc.now.today()
	type agg struct {
		count int
		owed  decimal.Decimal
	}
	byBorrower := map[int64]*agg{}
	var order []int64
	for _, c := range all {
		if effectiveStatus(*c, today) != entity.InstallmentDelinquent {
			continue
		}
		a, ok := byBorrower[c.BorrowerID]
		if !ok {
			a = &agg{owed: decimal.Zero}
			byBorrower[c.BorrowerID] = a
			order = append(order, c.BorrowerID)
		}
		a.count++
		a.owed = a.owed.Add(c.Amount)
	}
	rows := make([]entity.ReportRow, 0, len(order))
	for _, id := range order {
		b, err := uc.borrowers.GetByID(id)
		if err != nil {
			return nil, err
		}
		row := entity.ReportRow{
			"ID_PRESTATARIO": id,
			"CUOTAS_MOROSAS": byBorrower[id].count,
			"MONTO_ADEUDADO": byBorrower[id].owed.StringFixed(2),
		}
		if b != nil {
			row["CI"] = b.CI
			row["NOMBRE"] = b.FullName()
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Refinancings todas las solicitudes de refinanciación con la cédula del prestatario.
func (uc *ReportUseCase) Refinancings() ([]entity.ReportRow, error) {
	list, err := uc.refis.List("", 0)
	if err != nil {
		return nil, err
	}
	rows := make([]entity.ReportRow, 0, len(list))
	for _, r := range list {
		row := entity.ReportRow{
			"ID_SOLICITUD":      r.ID,
			"ID_PRESTAMO":       r.LoanID,
			"ESTADO":            string(r.Status),
			"NRO_CUOTAS":        r.NewInstallmentCount,
			"FECHA_REALIZACION": r.RequestedAt,
		}
		b, err := uc.borrowers.GetByID(r.BorrowerID)
		if err != nil {
			return nil, err
		}
		if b != nil {
			row["CI"] = b.CI
		}
		rows = append(rows, row)
	}
	return rows, nil
}
