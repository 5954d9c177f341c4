package usecase

import (
	"context"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/domain"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/internal/domain/repository"
)

var errAlreadyDecided = domain.NewRuleError(domain.ErrInvalidTransition, "", "La solicitud ya fue procesada.")

// LoanRequestUseCase ciclo de vida de las solicitudes de préstamo: PENDIENTE → ACEPTADA | RECHAZADA.
type LoanRequestUseCase struct {
	requests  repository.LoanRequestRepository
	borrowers repository.BorrowerRepository
	issuer    *loanIssuer
	tx        TxRunner
	now       Clock
}

// NewLoanRequestUseCase construye el caso de uso.
func NewLoanRequestUseCase(
	requests repository.LoanRequestRepository,
	borrowers repository.BorrowerRepository,
	loans repository.LoanRepository,
	installments repository.InstallmentRepository,
	tx TxRunner,
	policy Policy,
	now Clock,
) *LoanRequestUseCase {
	now = now.orNow()
	return &LoanRequestUseCase{
		requests:  requests,
		borrowers: borrowers,
		issuer:    &loanIssuer{loans: loans, installments: installments, policy: policy, now: now},
		tx:        tx,
		now:       now,
	}
}

// Mine solicitudes del prestatario autenticado.
func (uc *LoanRequestUseCase) Mine(viewer entity.Identity) ([]dto.LoanApplicationResponse, error) {
	if viewer.BorrowerID == nil {
		return []dto.LoanApplicationResponse{}, nil
	}
	return uc.list(repository.LoanRequestFilter{BorrowerID: *viewer.BorrowerID})
}

// List solicitudes con filtros opcionales de estado y prestatario.
func (uc *LoanRequestUseCase) List(filter dto.LoanApplicationFilter) ([]dto.LoanApplicationResponse, error) {
	f := repository.LoanRequestFilter{Status: entity.LoanRequestStatus(filter.Status)}
	if filter.BorrowerID != nil {
		f.BorrowerID = *filter.BorrowerID
	}
	return uc.list(f)
}

func (uc *LoanRequestUseCase) list(f repository.LoanRequestFilter) ([]dto.LoanApplicationResponse, error) {
	list, err := uc.requests.List(f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LoanApplicationResponse, 0, len(list))
	for _, r := range list {
		b, err := uc.borrowers.GetByID(r.BorrowerID)
		if err != nil {
			return nil, err
		}
		out = append(out, toLoanApplicationResponse(r, b))
	}
	return out, nil
}

// Create registra una solicitud PENDIENTE. Si la envía un PRESTATARIO, el prestatario sale del token.
func (uc *LoanRequestUseCase) Create(viewer entity.Identity, in dto.CreateLoanApplicationRequest) (*dto.LoanApplicationCreated, error) {
	if !in.Amount.IsPositive() {
		return nil, invalid("El monto debe ser mayor que cero.")
	}
	if in.InstallmentCount <= 0 {
		return nil, invalid("El número de cuotas debe ser mayor que cero.")
	}
	var borrowerID int64
	switch {
	case viewer.Role == entity.RoleBorrower && viewer.BorrowerID != nil:
		borrowerID = *viewer.BorrowerID
	case viewer.Role != entity.RoleBorrower && in.BorrowerID != nil:
		borrowerID = *in.BorrowerID
	default:
		return nil, invalid("El id del prestatario es obligatorio.")
	}
	b, err := uc.borrowers.GetByID(borrowerID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, notFound("Prestatario no encontrado.")
	}
	req := &entity.LoanRequest{
		BorrowerID:       borrowerID,
		EmployeeID:       in.EmployeeID,
		Amount:           in.Amount,
		InstallmentCount: in.InstallmentCount,
		SubmittedAt:      uc.now.today(),
		Status:           entity.LoanRequestPending,
	}
	if viewer.Role != entity.RoleBorrower && req.EmployeeID == nil {
		req.EmployeeID = int64Ptr(viewer.ID)
	}
	if err := uc.requests.Create(req); err != nil {
		return nil, err
	}
	return &dto.LoanApplicationCreated{ID: req.ID, Status: string(req.Status)}, nil
}

// Approve acepta una solicitud PENDIENTE y emite el préstamo. Falla con ORA-20001 si el prestatario
// ya alcanzó el tope de préstamos activos; en ese caso la solicitud sigue PENDIENTE.
func (uc *LoanRequestUseCase) Approve(ctx context.Context, viewer entity.Identity, id int64) (*dto.LoanApplicationDecisionResponse, error) {
	var out *dto.LoanApplicationDecisionResponse
	err := uc.tx.Run(ctx, func() error {
		req, err := uc.pending(id)
		if err != nil {
			return err
		}
		if err := uc.issuer.checkCap(req.BorrowerID); err != nil {
			return err
		}
		loan, err := uc.issuer.issue(req.ID, req.BorrowerID, req.Amount, req.InstallmentCount, interestRate(""))
		if err != nil {
			return err
		}
		req.Status = entity.LoanRequestAccepted
		req.DecidedAt = strPtr(uc.now.today())
		if req.EmployeeID == nil {
			req.EmployeeID = int64Ptr(viewer.ID)
		}
		if err := uc.requests.Update(req); err != nil {
			return err
		}
		out = &dto.LoanApplicationDecisionResponse{
			Request: dto.DecisionRef{ID: req.ID, Status: string(req.Status)},
			Loan:    &dto.LoanRef{ID: loan.ID},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Reject rechaza una solicitud PENDIENTE con motivo opcional.
func (uc *LoanRequestUseCase) Reject(ctx context.Context, viewer entity.Identity, id int64, reason string) (*dto.LoanApplicationDecisionResponse, error) {
	var out *dto.LoanApplicationDecisionResponse
	err := uc.tx.Run(ctx, func() error {
		req, err := uc.pending(id)
		if err != nil {
			return err
		}
		req.Status = entity.LoanRequestRejected
		req.DecidedAt = strPtr(uc.now.today())
		if reason != "" {
			req.RejectionReason = strPtr(reason)
		}
		if req.EmployeeID == nil {
			req.EmployeeID = int64Ptr(viewer.ID)
		}
		if err := uc.requests.Update(req); err != nil {
			return err
		}
		out = &dto.LoanApplicationDecisionResponse{
			Request: dto.DecisionRef{ID: req.ID, Status: string(req.Status), Reason: req.RejectionReason},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *LoanRequestUseCase) pending(id int64) (*entity.LoanRequest, error) {
	req, err := uc.requests.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, notFound("Solicitud no encontrada.")
	}
	if !req.IsPending() {
		return nil, errAlreadyDecided
	}
	return req, nil
}
