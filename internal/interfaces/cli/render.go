package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/banco-cliente/internal/domain/entity"
)

const emptyTable = "(sin registros)"

func money(d decimal.Decimal) string { return d.StringFixed(2) }

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

// table imprime columnas alineadas.
func (a *App) table(headers []string, rows [][]string) {
	if len(rows) == 0 {
		a.printf("%s\n", emptyTable)
		return
	}
	var buf strings.Builder
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, r := range rows {
		fmt.Fprintln(w, strings.Join(r, "\t"))
	}
	_ = w.Flush()
	a.printf("%s", buf.String())
}

func (a *App) loanTable(loans []entity.Loan) {
	rows := make([][]string, 0, len(loans))
	for _, l := range loans {
		rows = append(rows, []string{
			strconv.FormatInt(l.ID, 10),
			strconv.FormatInt(l.BorrowerID, 10),
			money(l.Principal),
			strconv.Itoa(l.InstallmentCount),
			l.InterestRate.String(),
			l.IssuedAt,
			orDash(l.DueAt),
			string(l.Status),
		})
	}
	a.table([]string{"ID", "PRESTATARIO", "MONTO", "CUOTAS", "TASA", "EMISIÓN", "VENCIMIENTO", "ESTADO"}, rows)
}

func (a *App) summaryTable(items []entity.InstallmentSummary) {
	rows := make([][]string, 0, len(items))
	for _, c := range items {
		rows = append(rows, []string{
			strconv.FormatInt(c.LoanID, 10),
			strconv.Itoa(c.SequenceNumber),
			c.DueDate,
			money(c.Amount),
			money(c.Balance),
			string(c.Status),
		})
	}
	a.table([]string{"PRÉSTAMO", "NRO", "VENCE", "MONTO", "SALDO", "ESTADO"}, rows)
}

func (a *App) installmentTable(items []entity.Installment) {
	rows := make([][]string, 0, len(items))
	for _, c := range items {
		rows = append(rows, []string{
			strconv.FormatInt(c.ID, 10),
			strconv.FormatInt(c.LoanID, 10),
			strconv.Itoa(c.SequenceNumber),
			c.DueDate,
			money(c.Amount),
			orDash(c.PaidDate),
			string(c.Status),
		})
	}
	a.table([]string{"ID", "PRÉSTAMO", "NRO", "VENCE", "MONTO", "PAGO", "ESTADO"}, rows)
}

func (a *App) requestTable(items []entity.LoanRequest) {
	rows := make([][]string, 0, len(items))
	for _, r := range items {
		who := r.BorrowerName
		if who == "" {
			who = strconv.FormatInt(r.BorrowerID, 10)
		}
		rows = append(rows, []string{
			strconv.FormatInt(r.ID, 10),
			who,
			money(r.Amount),
			strconv.Itoa(r.InstallmentCount),
			r.SubmittedAt,
			string(r.Status),
			orDash(r.RejectionReason),
		})
	}
	a.table([]string{"ID", "PRESTATARIO", "MONTO", "CUOTAS", "ENVÍO", "ESTADO", "MOTIVO"}, rows)
}

func (a *App) refinancingTable(items []entity.RefinancingRequest) {
	rows := make([][]string, 0, len(items))
	for _, r := range items {
		rows = append(rows, []string{
			strconv.FormatInt(r.ID, 10),
			strconv.FormatInt(r.LoanID, 10),
			strconv.Itoa(r.NewInstallmentCount),
			r.RequestedAt,
			string(r.Status),
			orDash(r.BorrowerComment),
			orDash(r.EmployeeComment),
		})
	}
	a.table([]string{"ID", "PRÉSTAMO", "CUOTAS", "FECHA", "ESTADO", "CLIENTE", "EMPLEADO"}, rows)
}

// rowsTable filas de reporte; las columnas salen de las claves, en orden alfabético.
func (a *App) rowsTable(items []entity.ReportRow) {
	if len(items) == 0 {
		a.printf("%s\n", emptyTable)
		return
	}
	headers := make([]string, 0, len(items[0]))
	for k := range items[0] {
		headers = append(headers, k)
	}
	slices.Sort(headers)
	rows := make([][]string, 0, len(items))
	for _, r := range items {
		row := make([]string, len(headers))
		for i, h := range headers {
			if v, ok := r[h]; ok && v != nil {
				row[i] = fmt.Sprint(v)
			} else {
				row[i] = "-"
			}
		}
		rows = append(rows, row)
	}
	a.table(headers, rows)
}
