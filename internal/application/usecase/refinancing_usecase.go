package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/domain"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/internal/domain/repository"
)

// RefinancingUseCase solicitudes de refinanciación: cambiar el número de cuotas del saldo pendiente.
type RefinancingUseCase struct {
	refis        repository.RefinancingRepository
	loans        repository.LoanRepository
	installments repository.InstallmentRepository
	tx           TxRunner
	now          Clock
}

// NewRefinancingUseCase construye el caso de uso.
func NewRefinancingUseCase(
	refis repository.RefinancingRepository,
	loans repository.LoanRepository,
	installments repository.InstallmentRepository,
	tx TxRunner,
	now Clock,
) *RefinancingUseCase {
	return &RefinancingUseCase{refis: refis, loans: loans, installments: installments, tx: tx, now: now.orNow()}
}

// Mine solicitudes del prestatario autenticado.
func (uc *RefinancingUseCase) Mine(viewer entity.Identity) ([]dto.RefinancingResponse, error) {
	if viewer.BorrowerID == nil {
		return []dto.RefinancingResponse{}, nil
	}
	list, err := uc.refis.List("", *viewer.BorrowerID)
	if err != nil {
		return nil, err
	}
	return toRefinancingResponses(list), nil
}

// List solicitudes filtradas por estado ("" = todas).
func (uc *RefinancingUseCase) List(status string) ([]dto.RefinancingResponse, error) {
	list, err := uc.refis.List(entity.RefinancingStatus(status), 0)
	if err != nil {
		return nil, err
	}
	return toRefinancingResponses(list), nil
}

// Create registra una solicitud PENDIENTE sobre un préstamo ACTIVO propio, sin otra pendiente.
func (uc *RefinancingUseCase) Create(ctx context.Context, viewer entity.Identity, in dto.CreateRefinancingRequest) (int64, error) {
	if in.NewInstallmentCount <= 0 {
		return 0, invalid("El nuevo número de cuotas debe ser un entero positivo.")
	}
	var id int64
	err := uc.tx.Run(ctx, func() error {
		l, err := uc.loans.GetByID(in.LoanID)
		if err != nil {
			return err
		}
		if l == nil {
			return notFound("Préstamo no encontrado.")
		}
		if !canView(viewer, l.BorrowerID) {
			return errNotOwner
		}
		if l.Status != entity.LoanActive {
			return domain.NewRuleError(domain.ErrInvalidTransition, "", "Solo se puede refinanciar un préstamo ACTIVO.")
		}
		pending, err := uc.refis.List(entity.RefinancingPending, l.BorrowerID)
		if err != nil {
			return err
		}
		for _, p := range pending {
			if p.LoanID == l.ID {
				return domain.NewRuleError(domain.ErrConflict, "", "Ya existe una solicitud de refinanciación pendiente para este préstamo.")
			}
		}
		req := &entity.RefinancingRequest{
			LoanID:              l.ID,
			BorrowerID:          l.BorrowerID,
			NewInstallmentCount: in.NewInstallmentCount,
			RequestedAt:         uc.now.today(),
			Status:              entity.RefinancingPending,
		}
		if c := strings.TrimSpace(in.BorrowerComment); c != "" {
			req.BorrowerComment = &c
		}
		if err := uc.refis.Create(req); err != nil {
			return err
		}
		id = req.ID
		return nil
	})
	return id, err
}

// Approve reprograma el saldo impago en NewInstallmentCount cuotas sin interés adicional, numeradas
// a continuación de las ya pagadas, y deja el préstamo REFINANCIADO.
func (uc *RefinancingUseCase) Approve(ctx context.Context, viewer entity.Identity, id int64, comment string) (*dto.RefinancingResponse, error) {
	var out *entity.RefinancingRequest
	err := uc.tx.Run(ctx, func() error {
		req, err := uc.pending(id)
		if err != nil {
			return err
		}
		l, err := uc.loans.GetByID(req.LoanID)
		if err != nil {
			return err
		}
		if l == nil {
			return notFound("Préstamo no encontrado.")
		}
		if l.Status != entity.LoanActive && l.Status != entity.LoanRefinanced {
			return domain.NewRuleError(domain.ErrInvalidTransition, "", "El préstamo ya no admite refinanciación.")
		}
		schedule, err := uc.installments.ListByLoan(l.ID)
		if err != nil {
			return err
		}
		outstanding := decimal.Zero
		paid := 0
		for _, c := range schedule {
			if c.Status == entity.InstallmentPaid {
				paid++
				continue
			}
			outstanding = outstanding.Add(c.Amount)
		}
		if _, err := uc.installments.DeleteUnpaidByLoan(l.ID); err != nil {
			return err
		}
		fresh := BuildSchedule(outstanding, req.NewInstallmentCount, uc.now(), paid+1)
		for _, c := range fresh {
			c.LoanID, c.BorrowerID = l.ID, l.BorrowerID
		}
		if err := uc.installments.CreateBatch(fresh); err != nil {
			return err
		}
		l.Status = entity.LoanRefinanced
		l.InstallmentCount = paid + req.NewInstallmentCount
		if len(fresh) > 0 {
			l.DueAt = strPtr(fresh[len(fresh)-1].DueDate)
		}
		if err := uc.loans.Update(l); err != nil {
			return err
		}
		out = uc.decide(req, entity.RefinancingApproved, viewer, comment)
		return uc.refis.Update(out)
	})
	if err != nil {
		return nil, err
	}
	resp := toRefinancingResponse(out)
	return &resp, nil
}

// Reject rechaza la solicitud; el préstamo no cambia.
func (uc *RefinancingUseCase) Reject(ctx context.Context, viewer entity.Identity, id int64, comment string) (*dto.RefinancingResponse, error) {
	var out *entity.RefinancingRequest
	err := uc.tx.Run(ctx, func() error {
		req, err := uc.pending(id)
		if err != nil {
			return err
		}
		out = uc.decide(req, entity.RefinancingRejected, viewer, comment)
		return uc.refis.Update(out)
	})
	if err != nil {
		return nil, err
	}
	resp := toRefinancingResponse(out)
	return &resp, nil
}

func (uc *RefinancingUseCase) decide(req *entity.RefinancingRequest, status entity.RefinancingStatus, viewer entity.Identity, comment string) *entity.RefinancingRequest {
	req.Status = status
	req.DecidedAt = strPtr(uc.now.today())
	req.DeciderID = int64Ptr(viewer.ID)
	if c := strings.TrimSpace(comment); c != "" {
		req.EmployeeComment = &c
	}
	return req
}

func (uc *RefinancingUseCase) pending(id int64) (*entity.RefinancingRequest, error) {
	req, err := uc.refis.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, notFound("Solicitud de refinanciación no encontrada.")
	}
	if !req.IsPending() {
		return nil, errAlreadyDecided
	}
	return req, nil
}
