package remote

import (
	"context"

	"github.com/jhoicas/banco-cliente/internal/application/ports"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
)

// ReportAPI adaptador de /api/reportes.
type ReportAPI struct {
	c *Client
}

var _ ports.ReportAPI = (*ReportAPI)(nil)

// NewReportAPI construye el adaptador.
func NewReportAPI(c *Client) *ReportAPI { return &ReportAPI{c: c} }

func (a *ReportAPI) LoanSummary(ctx context.Context) ([]entity.ReportRow, error) {
	return a.rows(ctx, "/api/reportes/prestamos")
}

func (a *ReportAPI) Delinquents(ctx context.Context) ([]entity.ReportRow, error) {
	return a.rows(ctx, "/api/reportes/morosos")
}

func (a *ReportAPI) Refinancings(ctx context.Context) ([]entity.ReportRow, error) {
	return a.rows(ctx, "/api/reportes/refinanciaciones")
}

func (a *ReportAPI) rows(ctx context.Context, path string) ([]entity.ReportRow, error) {
	var out any
	if err := a.c.Get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return mapList(out, mapReportRow), nil
}
