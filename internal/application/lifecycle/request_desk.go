package lifecycle

import (
	"context"
	"fmt"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/application/ports"
	"github.com/jhoicas/banco-cliente/internal/application/store"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
)

// RequestDesk bandeja del empleado: solicitudes de préstamo y de refinanciación pendientes.
type RequestDesk struct {
	requests *store.LoanRequestStore
	refis    *store.RefinancingStore
	notifier ports.Notifier
}

// NewRequestDesk compone la bandeja.
func NewRequestDesk(requests *store.LoanRequestStore, refis *store.RefinancingStore, notifier ports.Notifier) *RequestDesk {
	return &RequestDesk{requests: requests, refis: refis, notifier: notifier}
}

// Refresh relee ambas bandejas filtradas por PENDIENTE.
func (d *RequestDesk) Refresh(ctx context.Context) error {
	if err := d.requests.FetchAll(ctx, &dto.LoanApplicationFilter{Status: string(entity.LoanRequestPending)}); err != nil {
		return err
	}
	return d.refis.FetchAll(ctx, string(entity.RefinancingPending))
}

// PendingLoanRequests solicitudes de préstamo todavía decidibles.
func (d *RequestDesk) PendingLoanRequests() []entity.LoanRequest {
	var out []entity.LoanRequest
	for _, r := range d.requests.Items() {
		if r.IsPending() {
			out = append(out, r)
		}
	}
	return out
}

// PendingRefinancings solicitudes de refinanciación todavía decidibles.
func (d *RequestDesk) PendingRefinancings() []entity.RefinancingRequest {
	var out []entity.RefinancingRequest
	for _, r := range d.refis.Items() {
		if r.IsPending() {
			out = append(out, r)
		}
	}
	return out
}

// ApproveLoanRequest aprueba; el servicio genera el préstamo y sus cuotas.
func (d *RequestDesk) ApproveLoanRequest(ctx context.Context, id int64) (*entity.LoanRequestDecision, error) {
	res, err := d.requests.Approve(ctx, id)
	if err != nil {
		return nil, err
	}
	var loanID int64
	if res.LoanID != nil {
		loanID = *res.LoanID
	}
	d.notifier.Enqueue(fmt.Sprintf(MsgLoanRequestApproved, loanID), entity.SeveritySuccess)
	return res, nil
}

// RejectLoanRequest rechaza con motivo opcional.
func (d *RequestDesk) RejectLoanRequest(ctx context.Context, id int64, reason string) (*entity.LoanRequestDecision, error) {
	res, err := d.requests.Reject(ctx, id, reason)
	if err != nil {
		return nil, err
	}
	d.notifier.Enqueue(MsgLoanRequestRejected, entity.SeveritySuccess)
	return res, nil
}

// ApproveRefinancing aprueba; el préstamo pasa a REFINANCIADO con un cronograma nuevo.
func (d *RequestDesk) ApproveRefinancing(ctx context.Context, id int64, comment string) error {
	loanID := d.refinancingLoan(id)
	if err := d.refis.Approve(ctx, id, comment); err != nil {
		return err
	}
	d.notifier.Enqueue(fmt.Sprintf(MsgRefinancingApproved, loanID), entity.SeveritySuccess)
	return nil
}

// RejectRefinancing rechaza con comentario del empleado.
func (d *RequestDesk) RejectRefinancing(ctx context.Context, id int64, comment string) error {
	if err := d.refis.Reject(ctx, id, comment); err != nil {
		return err
	}
	d.notifier.Enqueue(MsgRefinancingRejected, entity.SeveritySuccess)
	return nil
}

// refinancingLoan préstamo de la solicitud según la bandeja cargada (0 si no está).
func (d *RequestDesk) refinancingLoan(id int64) int64 {
	for _, r := range d.refis.Items() {
		if r.ID == id {
			return r.LoanID
		}
	}
	return 0
}
