package remote

import (
	"context"
	"net/url"
	"strconv"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/application/ports"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
)

// BorrowerAPI adaptador de /api/prestatarios.
type BorrowerAPI struct {
	c *Client
}

var _ ports.BorrowerAPI = (*BorrowerAPI)(nil)

// NewBorrowerAPI construye el adaptador.
func NewBorrowerAPI(c *Client) *BorrowerAPI { return &BorrowerAPI{c: c} }

func borrowerPath(ci string) string { return "/api/prestatarios/" + url.PathEscape(ci) }

func (a *BorrowerAPI) List(ctx context.Context) ([]entity.Borrower, error) {
	var out any
	if err := a.c.Get(ctx, "/api/prestatarios", nil, &out); err != nil {
		return nil, err
	}
	return mapList(out, mapBorrower), nil
}

func (a *BorrowerAPI) GetByCI(ctx context.Context, ci string) (*entity.Borrower, error) {
	var out any
	if err := a.c.Get(ctx, borrowerPath(ci), nil, &out); err != nil {
		return nil, err
	}
	b := mapBorrower(asRecord(out))
	return &b, nil
}

// Me perfil del prestatario autenticado (id tomado del token por el servicio).
func (a *BorrowerAPI) Me(ctx context.Context) (*entity.Borrower, error) {
	var out any
	if err := a.c.Get(ctx, "/api/prestatarios/me", nil, &out); err != nil {
		return nil, err
	}
	b := mapBorrower(asRecord(out))
	return &b, nil
}

func (a *BorrowerAPI) Create(ctx context.Context, in dto.CreateBorrowerRequest) error {
	return a.c.Post(ctx, "/api/prestatarios", in, nil)
}

func (a *BorrowerAPI) Update(ctx context.Context, ci string, in dto.UpdateBorrowerRequest) error {
	return a.c.Put(ctx, borrowerPath(ci), in, nil)
}

func (a *BorrowerAPI) Delete(ctx context.Context, ci string) error {
	return a.c.Delete(ctx, borrowerPath(ci), nil)
}

// BulkLoad sube el archivo CSV/TXT en el campo multipart "archivo".
func (a *BorrowerAPI) BulkLoad(ctx context.Context, filename string, content []byte) (*entity.BulkLoadResult, error) {
	var out any
	if err := a.c.PostFile(ctx, "/api/prestatarios/carga-masiva", "archivo", filename, content, &out); err != nil {
		return nil, err
	}
	return mapBulkLoad(out), nil
}

func (a *BorrowerAPI) LoadLogs(ctx context.Context) ([]entity.LoadLog, error) {
	var out any
	if err := a.c.Get(ctx, "/api/prestatarios/obtener-logs-carga", nil, &out); err != nil {
		return nil, err
	}
	return mapList(out, mapLoadLog), nil
}

// Delinquency juicio de morosidad calculado por el servicio.
func (a *BorrowerAPI) Delinquency(ctx context.Context, borrowerID int64) (*entity.Delinquency, error) {
	var out any
	path := "/api/prestatarios/" + strconv.FormatInt(borrowerID, 10) + "/morosidad"
	if err := a.c.Get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return mapDelinquency(out, borrowerID), nil
}
