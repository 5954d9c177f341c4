package remote

import (
	"context"
	"net/url"
	"strconv"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/application/ports"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
)

const refinancingBase = "/api/refinanciaciones/solicitudes"

// RefinancingAPI adaptador de /api/refinanciaciones/solicitudes.
type RefinancingAPI struct {
	c *Client
}

var _ ports.RefinancingAPI = (*RefinancingAPI)(nil)

// NewRefinancingAPI construye el adaptador.
func NewRefinancingAPI(c *Client) *RefinancingAPI { return &RefinancingAPI{c: c} }

func (a *RefinancingAPI) Mine(ctx context.Context) ([]entity.RefinancingRequest, error) {
	var out any
	if err := a.c.Get(ctx, refinancingBase+"/mis-solicitudes", nil, &out); err != nil {
		return nil, err
	}
	return mapList(out, mapRefinancing), nil
}

func (a *RefinancingAPI) List(ctx context.Context, status string) ([]entity.RefinancingRequest, error) {
	var q url.Values
	if status != "" {
		q = url.Values{"estado": {status}}
	}
	var out any
	if err := a.c.Get(ctx, refinancingBase, q, &out); err != nil {
		return nil, err
	}
	return mapList(out, mapRefinancing), nil
}

func (a *RefinancingAPI) Create(ctx context.Context, in dto.CreateRefinancingRequest) (int64, error) {
	var out any
	if err := a.c.Post(ctx, refinancingBase, in, &out); err != nil {
		return 0, err
	}
	return createdID(out, "id_solicitud_refinanciacion"), nil
}

func (a *RefinancingAPI) Approve(ctx context.Context, id int64, comment string) error {
	return a.decide(ctx, id, "aprobar", comment)
}

func (a *RefinancingAPI) Reject(ctx context.Context, id int64, comment string) error {
	return a.decide(ctx, id, "rechazar", comment)
}

func (a *RefinancingAPI) decide(ctx context.Context, id int64, action, comment string) error {
	path := refinancingBase + "/" + strconv.FormatInt(id, 10) + "/" + action
	return a.c.Put(ctx, path, dto.DecideRefinancingRequest{EmployeeComment: comment}, nil)
}
