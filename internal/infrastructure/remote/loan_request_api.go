package remote

import (
	"context"
	"net/url"
	"strconv"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/application/ports"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
)

// LoanRequestAPI adaptador de /api/solicitudes.
type LoanRequestAPI struct {
	c *Client
}

var _ ports.LoanRequestAPI = (*LoanRequestAPI)(nil)

// NewLoanRequestAPI construye el adaptador.
func NewLoanRequestAPI(c *Client) *LoanRequestAPI { return &LoanRequestAPI{c: c} }

func loanRequestPath(id int64, action string) string {
	return "/api/solicitudes/" + strconv.FormatInt(id, 10) + "/" + action
}

func (a *LoanRequestAPI) Mine(ctx context.Context) ([]entity.LoanRequest, error) {
	var out any
	if err := a.c.Get(ctx, "/api/solicitudes/mis-solicitudes", nil, &out); err != nil {
		return nil, err
	}
	return mapList(out, mapLoanRequest), nil
}

// List filtros vacíos no se envían.
func (a *LoanRequestAPI) List(ctx context.Context, filter dto.LoanApplicationFilter) ([]entity.LoanRequest, error) {
	q := url.Values{}
	if filter.Status != "" {
		q.Set("estado", filter.Status)
	}
	if filter.BorrowerID != nil {
		q.Set("id_prestatario", strconv.FormatInt(*filter.BorrowerID, 10))
	}
	var out any
	if err := a.c.Get(ctx, "/api/solicitudes", q, &out); err != nil {
		return nil, err
	}
	return mapList(out, mapLoanRequest), nil
}

func (a *LoanRequestAPI) Create(ctx context.Context, in dto.CreateLoanApplicationRequest) (int64, error) {
	var out any
	if err := a.c.Post(ctx, "/api/solicitudes", in, &out); err != nil {
		return 0, err
	}
	return createdID(out, "id_solicitud_prestamo"), nil
}

func (a *LoanRequestAPI) Approve(ctx context.Context, id int64) (*entity.LoanRequestDecision, error) {
	var out any
	if err := a.c.Put(ctx, loanRequestPath(id, "aprobar"), struct{}{}, &out); err != nil {
		return nil, err
	}
	return mapLoanRequestDecision(out, id), nil
}

func (a *LoanRequestAPI) Reject(ctx context.Context, id int64, reason string) (*entity.LoanRequestDecision, error) {
	var out any
	if err := a.c.Put(ctx, loanRequestPath(id, "rechazar"), dto.RejectLoanApplicationRequest{Reason: reason}, &out); err != nil {
		return nil, err
	}
	return mapLoanRequestDecision(out, id), nil
}
