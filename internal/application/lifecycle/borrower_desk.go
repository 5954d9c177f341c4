package lifecycle

import (
	"context"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/application/ports"
	"github.com/jhoicas/banco-cliente/internal/application/store"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
)

// BorrowerDesk autogestión del prestatario: solicitudes propias y refinanciación desde su listado.
type BorrowerDesk struct {
	requests *store.LoanRequestStore
	refis    *store.RefinancingStore
	notifier ports.Notifier
}

// NewBorrowerDesk compone la vista.
func NewBorrowerDesk(requests *store.LoanRequestStore, refis *store.RefinancingStore, notifier ports.Notifier) *BorrowerDesk {
	return &BorrowerDesk{requests: requests, refis: refis, notifier: notifier}
}

// SubmitLoanApplication valida monto y cuotas antes de enviar la solicitud.
// El tope de préstamos activos lo decide el servicio al aprobar, no aquí.
func (d *BorrowerDesk) SubmitLoanApplication(ctx context.Context, rawAmount, rawCount string) (*entity.LoanRequest, error) {
	amount, err := parsePositiveAmount(rawAmount)
	if err != nil {
		d.notifier.Enqueue(MsgInvalidAmount, entity.SeverityError)
		return nil, err
	}
	n, err := parsePositiveInt(rawCount)
	if err != nil {
		d.notifier.Enqueue(MsgInvalidInstallments, entity.SeverityError)
		return nil, err
	}
	req, err := d.requests.Create(ctx, dto.CreateLoanApplicationRequest{Amount: amount, InstallmentCount: n})
	if err != nil {
		return nil, err
	}
	d.notifier.Enqueue(MsgLoanRequestCreated, entity.SeveritySuccess)
	return req, nil
}

// RequestRefinancing solicitud de refinanciación sobre uno de sus préstamos.
func (d *BorrowerDesk) RequestRefinancing(ctx context.Context, loanID int64, rawCount, comment string) (int64, error) {
	n, err := parsePositiveInt(rawCount)
	if err != nil {
		d.notifier.Enqueue(MsgInvalidNewInstallments, entity.SeverityError)
		return 0, err
	}
	id, err := d.refis.Create(ctx, loanID, n, comment)
	if err != nil {
		return 0, err
	}
	d.notifier.Enqueue(MsgRefinancingRequested, entity.SeveritySuccess)
	return id, nil
}
