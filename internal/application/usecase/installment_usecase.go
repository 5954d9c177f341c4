package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/domain"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/internal/domain/repository"
)

// InstallmentUseCase listados de cuotas y registro de pagos.
type InstallmentUseCase struct {
	installments repository.InstallmentRepository
	loans        repository.LoanRepository
	tx           TxRunner
	now          Clock
}

// NewInstallmentUseCase construye el caso de uso.
func NewInstallmentUseCase(installments repository.InstallmentRepository, loans repository.LoanRepository, tx TxRunner, now Clock) *InstallmentUseCase {
	return &InstallmentUseCase{installments: installments, loans: loans, tx: tx, now: now.orNow()}
}

// Pending cuotas impagas aún no vencidas. Un PRESTATARIO solo ve las suyas.
func (uc *InstallmentUseCase) Pending(viewer entity.Identity) ([]dto.InstallmentResponse, error) {
	return uc.byStatus(viewer, entity.InstallmentPending)
}

// Delinquent cuotas impagas vencidas. Un PRESTATARIO solo ve las suyas.
func (uc *InstallmentUseCase) Delinquent(viewer entity.Identity) ([]dto.InstallmentResponse, error) {
	return uc.byStatus(viewer, entity.InstallmentDelinquent)
}

func (uc *InstallmentUseCase) byStatus(viewer entity.Identity, status entity.InstallmentStatus) ([]dto.InstallmentResponse, error) {
	all, err := uc.installments.List()
	if err != nil {
		return nil, err
	}
	today := uc.now.today()
	out := []dto.InstallmentResponse{}
	for _, c := range all {
		if !canView(viewer, c.BorrowerID) {
			continue
		}
		if effectiveStatus(*c, today) == status {
			out = append(out, toInstallmentResponse(c, today))
		}
	}
	return out, nil
}

// Pay registra el pago de una cuota PENDIENTE o MOROSA de un préstamo ACTIVO o REFINANCIADO.
// Si era la última impaga, el préstamo pasa a CANCELADO.
func (uc *InstallmentUseCase) Pay(ctx context.Context, viewer entity.Identity, id int64, in dto.PayInstallmentRequest) (*dto.PaymentResponse, error) {
	paidDate := in.PaidDate
	if paidDate == "" {
		paidDate = uc.now.today()
	} else if _, err := time.Parse(dateLayout, paidDate); err != nil {
		return nil, invalid("La fecha de pago debe tener formato AAAA-MM-DD.")
	}

	var paid *entity.Installment
	var loan *entity.Loan
	err := uc.tx.Run(ctx, func() error {
		c, err := uc.installments.GetByID(id)
		if err != nil {
			return err
		}
		if c == nil {
			return notFound("Cuota no encontrada.")
		}
		if !canView(viewer, c.BorrowerID) {
			return errNotOwner
		}
		if c.Status == entity.InstallmentPaid {
			return domain.NewRuleError(domain.ErrNotPayable, "", "La cuota ya se encuentra pagada.")
		}
		l, err := uc.loans.GetByID(c.LoanID)
		if err != nil {
			return err
		}
		if l == nil {
			return notFound("Préstamo no encontrado.")
		}
		if l.Status != entity.LoanActive && l.Status != entity.LoanRefinanced {
			return domain.NewRuleError(domain.ErrNotPayable, "", "El préstamo no admite pagos en su estado actual.")
		}
		if in.AmountPaid != nil && in.AmountPaid.LessThan(c.Amount) {
			return invalid("El monto pagado no cubre el valor de la cuota.")
		}

		c.Status = entity.InstallmentPaid
		c.PaidDate = strPtr(paidDate)
		if err := uc.installments.Update(c); err != nil {
			return err
		}
		schedule, err := uc.installments.ListByLoan(l.ID)
		if err != nil {
			return err
		}
		settled := true
		for _, s := range schedule {
			if s.Status != entity.InstallmentPaid {
				settled = false
				break
			}
		}
		if settled {
			l.Status = entity.LoanCanceled
			if err := uc.loans.Update(l); err != nil {
				return err
			}
		}
		paid, loan = c, l
		return nil
	})
	if err != nil {
		return nil, err
	}
	today := uc.now.today()
	inst := toInstallmentResponse(paid, today)
	lr := toLoanResponse(loan)
	return &dto.PaymentResponse{Installment: &inst, Loan: &lr}, nil
}
