package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/banco-cliente/internal/domain"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/internal/domain/repository"
)

// BuildSchedule cronograma plano: total = principal × (1 + tasa), repartido en n cuotas mensuales
// redondeadas a 2 decimales; la última absorbe la diferencia de redondeo. La primera vence un mes
// después de start.
func BuildSchedule(total decimal.Decimal, n int, start time.Time, firstSeq int) []*entity.Installment {
	if n <= 0 {
		return nil
	}
	amount := total.Div(decimal.NewFromInt(int64(n))).Round(2)
	out := make([]*entity.Installment, 0, n)
	acc := decimal.Zero
	for i := 1; i <= n; i++ {
		a := amount
		if i == n {
			a = total.Sub(acc)
		}
		acc = acc.Add(a)
		out = append(out, &entity.Installment{
			SequenceNumber: firstSeq + i - 1,
			Amount:         a,
			DueDate:        start.AddDate(0, i, 0).Format(dateLayout),
			Status:         entity.InstallmentPending,
		})
	}
	return out
}

// loanIssuer emite préstamos con su cronograma y aplica el tope de préstamos activos.
// Lo comparten el alta directa de préstamos y la aprobación de solicitudes.
type loanIssuer struct {
	loans        repository.LoanRepository
	installments repository.InstallmentRepository
	policy       Policy
	now          Clock
}

// checkCap falla con ORA-20001 si el prestatario ya tiene el máximo de préstamos ACTIVO.
func (li *loanIssuer) checkCap(borrowerID int64) error {
	loans, err := li.loans.ListByBorrower(borrowerID)
	if err != nil {
		return err
	}
	active := 0
	for _, l := range loans {
		if l.IsActive() {
			active++
		}
	}
	if active >= li.policy.MaxActiveLoans {
		return domain.NewRuleError(domain.ErrActiveLoanLimit, "ORA-20001", fmt.Sprintf(
			"El prestatario ya tiene %d préstamos activos. No puede tener más de %d préstamos activos a la vez.",
			active, li.policy.MaxActiveLoans))
	}
	return nil
}

// issue crea el préstamo ACTIVO y su cronograma.
func (li *loanIssuer) issue(requestID, borrowerID int64, principal decimal.Decimal, n int, rate decimal.Decimal) (*entity.Loan, error) {
	now := li.now()
	total := principal.Mul(decimal.NewFromInt(1).Add(rate)).Round(2)
	schedule := BuildSchedule(total, n, now, 1)
	due := schedule[len(schedule)-1].DueDate

	loan := &entity.Loan{
		LoanRequestID:    requestID,
		BorrowerID:       borrowerID,
		Principal:        principal,
		InstallmentCount: n,
		InterestRate:     rate,
		IssuedAt:         now.Format(dateLayout),
		DueAt:            &due,
		Status:           entity.LoanActive,
	}
	if err := li.loans.Create(loan); err != nil {
		return nil, err
	}
	for _, c := range schedule {
		c.LoanID = loan.ID
		c.BorrowerID = borrowerID
	}
	if err := li.installments.CreateBatch(schedule); err != nil {
		return nil, err
	}
	return loan, nil
}
