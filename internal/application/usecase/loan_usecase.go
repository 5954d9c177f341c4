package usecase

import (
	"context"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/domain"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/internal/domain/repository"
)

// LoanUseCase consulta, alta directa y cancelación de préstamos.
type LoanUseCase struct {
	loans        repository.LoanRepository
	installments repository.InstallmentRepository
	borrowers    repository.BorrowerRepository
	issuer       *loanIssuer
	tx           TxRunner
	now          Clock
}

// NewLoanUseCase construye el caso de uso.
func NewLoanUseCase(
	loans repository.LoanRepository,
	installments repository.InstallmentRepository,
	borrowers repository.BorrowerRepository,
	tx TxRunner,
	policy Policy,
	now Clock,
) *LoanUseCase {
	now = now.orNow()
	return &LoanUseCase{
		loans:        loans,
		installments: installments,
		borrowers:    borrowers,
		issuer:       &loanIssuer{loans: loans, installments: installments, policy: policy, now: now},
		tx:           tx,
		now:          now,
	}
}

// List todos los préstamos.
func (uc *LoanUseCase) List() ([]dto.LoanResponse, error) {
	list, err := uc.loans.List()
	if err != nil {
		return nil, err
	}
	return toLoanResponses(list), nil
}

// Get préstamo por id; un PRESTATARIO solo ve los suyos.
func (uc *LoanUseCase) Get(viewer entity.Identity, id int64) (*dto.LoanResponse, error) {
	l, err := uc.byID(id)
	if err != nil {
		return nil, err
	}
	if !canView(viewer, l.BorrowerID) {
		return nil, errNotOwner
	}
	out := toLoanResponse(l)
	return &out, nil
}

// ByBorrower préstamos y cuotas resumidas de un prestatario; key es cédula o id.
func (uc *LoanUseCase) ByBorrower(viewer entity.Identity, key string) (*dto.BorrowerLoansResponse, error) {
	b, err := resolveBorrower(uc.borrowers, key)
	if err != nil {
		return nil, err
	}
	if !canView(viewer, b.ID) {
		return nil, errNotOwner
	}
	return uc.borrowerLoans(b.ID, &dto.BorrowerRefResponse{ID: b.ID, CI: b.CI}, false)
}

// Mine préstamos del prestatario autenticado, sin los CANCELADO.
func (uc *LoanUseCase) Mine(viewer entity.Identity) (*dto.BorrowerLoansResponse, error) {
	if viewer.BorrowerID == nil {
		return nil, notFound("El usuario no está asociado a un prestatario.")
	}
	return uc.borrowerLoans(*viewer.BorrowerID, nil, true)
}

func (uc *LoanUseCase) borrowerLoans(borrowerID int64, ref *dto.BorrowerRefResponse, skipCanceled bool) (*dto.BorrowerLoansResponse, error) {
	loans, err := uc.loans.ListByBorrower(borrowerID)
	if err != nil {
		return nil, err
	}
	today := uc.now.today()
	out := &dto.BorrowerLoansResponse{
		Borrower:     ref,
		Loans:        []dto.LoanResponse{},
		Installments: []dto.InstallmentSummaryResponse{},
	}
	for _, l := range loans {
		if skipCanceled && l.Status == entity.LoanCanceled {
			continue
		}
		out.Loans = append(out.Loans, toLoanResponse(l))
		schedule, err := uc.installments.ListByLoan(l.ID)
		if err != nil {
			return nil, err
		}
		out.Installments = append(out.Installments, toSummaries(schedule, today)...)
	}
	return out, nil
}

// Create alta directa de un préstamo ACTIVO con su cronograma. Aplica el tope de préstamos activos.
func (uc *LoanUseCase) Create(ctx context.Context, in dto.CreateLoanRequest) (*dto.CreateLoanResult, error) {
	if in.BorrowerID == nil {
		return nil, invalid("El id del prestatario es obligatorio.")
	}
	if !in.Amount.IsPositive() {
		return nil, invalid("El monto debe ser mayor que cero.")
	}
	if in.InstallmentCount <= 0 {
		return nil, invalid("El número de cuotas debe ser mayor que cero.")
	}
	var loan *entity.Loan
	err := uc.tx.Run(ctx, func() error {
		b, err := uc.borrowers.GetByID(*in.BorrowerID)
		if err != nil {
			return err
		}
		if b == nil {
			return notFound("Prestatario no encontrado.")
		}
		if err := uc.issuer.checkCap(b.ID); err != nil {
			return err
		}
		loan, err = uc.issuer.issue(0, b.ID, in.Amount, in.InstallmentCount, interestRate(in.InterestType))
		return err
	})
	if err != nil {
		return nil, err
	}
	return &dto.CreateLoanResult{LoanID: loan.ID}, nil
}

// Update cambia el estado. Reactivar un préstamo vuelve a aplicar el tope.
func (uc *LoanUseCase) Update(ctx context.Context, id int64, in dto.UpdateLoanRequest) (*dto.LoanResponse, error) {
	if in.Status == nil {
		return nil, invalid("No hay cambios para aplicar.")
	}
	next := entity.LoanStatus(*in.Status)
	switch next {
	case entity.LoanActive, entity.LoanCanceled, entity.LoanRefinanced, entity.LoanPending, entity.LoanRejected:
	default:
		return nil, invalid("Estado de préstamo inválido.")
	}
	var loan *entity.Loan
	err := uc.tx.Run(ctx, func() error {
		l, err := uc.byID(id)
		if err != nil {
			return err
		}
		if next == entity.LoanActive && l.Status != entity.LoanActive {
			if err := uc.issuer.checkCap(l.BorrowerID); err != nil {
				return err
			}
		}
		l.Status = next
		loan = l
		return uc.loans.Update(l)
	})
	if err != nil {
		return nil, err
	}
	out := toLoanResponse(loan)
	return &out, nil
}

// Cancel pasa el préstamo a CANCELADO; el registro se conserva.
func (uc *LoanUseCase) Cancel(ctx context.Context, id int64) error {
	return uc.tx.Run(ctx, func() error {
		l, err := uc.byID(id)
		if err != nil {
			return err
		}
		if l.Status == entity.LoanCanceled {
			return domain.NewRuleError(domain.ErrInvalidTransition, "", "El préstamo ya se encuentra cancelado.")
		}
		l.Status = entity.LoanCanceled
		return uc.loans.Update(l)
	})
}

// Schedule cronograma completo del préstamo con estado derivado.
func (uc *LoanUseCase) Schedule(viewer entity.Identity, loanID int64) ([]dto.InstallmentResponse, error) {
	l, err := uc.byID(loanID)
	if err != nil {
		return nil, err
	}
	if !canView(viewer, l.BorrowerID) {
		return nil, errNotOwner
	}
	schedule, err := uc.installments.ListByLoan(loanID)
	if err != nil {
		return nil, err
	}
	today := uc.now.today()
	out := make([]dto.InstallmentResponse, 0, len(schedule))
	for _, c := range schedule {
		out = append(out, toInstallmentResponse(c, today))
	}
	return out, nil
}

func (uc *LoanUseCase) byID(id int64) (*entity.Loan, error) {
	l, err := uc.loans.GetByID(id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, notFound("Préstamo no encontrado.")
	}
	return l, nil
}
