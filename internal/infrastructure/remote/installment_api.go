package remote

import (
	"context"
	"strconv"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/application/ports"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
)

// InstallmentAPI adaptador de /api/cuotas.
type InstallmentAPI struct {
	c *Client
}

var _ ports.InstallmentAPI = (*InstallmentAPI)(nil)

// NewInstallmentAPI construye el adaptador.
func NewInstallmentAPI(c *Client) *InstallmentAPI { return &InstallmentAPI{c: c} }

// ByLoan cronograma completo de un préstamo.
func (a *InstallmentAPI) ByLoan(ctx context.Context, loanID int64) ([]entity.Installment, error) {
	return a.list(ctx, loanPath(loanID)+"/cuotas")
}

func (a *InstallmentAPI) Pending(ctx context.Context) ([]entity.Installment, error) {
	return a.list(ctx, "/api/cuotas/pendientes")
}

func (a *InstallmentAPI) Delinquent(ctx context.Context) ([]entity.Installment, error) {
	return a.list(ctx, "/api/cuotas/morosas")
}

func (a *InstallmentAPI) list(ctx context.Context, path string) ([]entity.Installment, error) {
	var out any
	if err := a.c.Get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return mapList(out, mapInstallment), nil
}

// Pay registra el pago. El estado de la cuota lo valida el servicio.
func (a *InstallmentAPI) Pay(ctx context.Context, id int64, in dto.PayInstallmentRequest) (*entity.PaymentResult, error) {
	var out any
	path := "/api/cuotas/" + strconv.FormatInt(id, 10) + "/pagar"
	if err := a.c.Post(ctx, path, in, &out); err != nil {
		return nil, err
	}
	return mapPayment(out), nil
}
