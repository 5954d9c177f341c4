package remote

import (
	"context"
	"net/url"
	"strconv"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/application/ports"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
)

// LoanAPI adaptador de /api/prestamos.
type LoanAPI struct {
	c *Client
}

var _ ports.LoanAPI = (*LoanAPI)(nil)

// NewLoanAPI construye el adaptador.
func NewLoanAPI(c *Client) *LoanAPI { return &LoanAPI{c: c} }

func loanPath(id int64) string { return "/api/prestamos/" + strconv.FormatInt(id, 10) }

func (a *LoanAPI) List(ctx context.Context) ([]entity.Loan, error) {
	var out any
	if err := a.c.Get(ctx, "/api/prestamos", nil, &out); err != nil {
		return nil, err
	}
	return mapList(out, mapLoan), nil
}

func (a *LoanAPI) Get(ctx context.Context, id int64) (*entity.Loan, error) {
	var out any
	if err := a.c.Get(ctx, loanPath(id), nil, &out); err != nil {
		return nil, err
	}
	l := mapLoan(asRecord(out))
	return &l, nil
}

func (a *LoanAPI) ByBorrower(ctx context.Context, ci string) (*entity.BorrowerLoans, error) {
	var out any
	if err := a.c.Get(ctx, "/api/prestamos/prestatario/"+url.PathEscape(ci), nil, &out); err != nil {
		return nil, err
	}
	return mapBorrowerLoans(out), nil
}

func (a *LoanAPI) Mine(ctx context.Context) (*entity.BorrowerLoans, error) {
	var out any
	if err := a.c.Get(ctx, "/api/prestamos/mis-prestamos", nil, &out); err != nil {
		return nil, err
	}
	return mapBorrowerLoans(out), nil
}

func (a *LoanAPI) Create(ctx context.Context, in dto.CreateLoanRequest) (int64, error) {
	var out any
	if err := a.c.Post(ctx, "/api/prestamos", in, &out); err != nil {
		return 0, err
	}
	return createdID(out, "id_prestamo"), nil
}

func (a *LoanAPI) Update(ctx context.Context, id int64, in dto.UpdateLoanRequest) (*entity.Loan, error) {
	var out any
	if err := a.c.Put(ctx, loanPath(id), in, &out); err != nil {
		return nil, err
	}
	l := mapLoan(asRecord(out))
	return &l, nil
}

// Cancel DELETE: el servicio pasa el préstamo a CANCELADO, no lo borra.
func (a *LoanAPI) Cancel(ctx context.Context, id int64) error {
	return a.c.Delete(ctx, loanPath(id), nil)
}
