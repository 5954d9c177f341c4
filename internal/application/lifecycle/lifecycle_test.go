package lifecycle_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/application/lifecycle"
	"github.com/jhoicas/banco-cliente/internal/application/notification"
	"github.com/jhoicas/banco-cliente/internal/application/store"
	"github.com/jhoicas/banco-cliente/internal/domain"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/pkg/logger"
)

var errRechazo = errors.New("La solicitud ya fue procesada")

// ── Fakes ──

type loanAPI struct {
	loans   []entity.Loan
	summary []entity.InstallmentSummary
	byCI    []string
}

func (f *loanAPI) List(context.Context) ([]entity.Loan, error) { return f.loans, nil }
func (f *loanAPI) Get(_ context.Context, id int64) (*entity.Loan, error) {
	for _, l := range f.loans {
		if l.ID == id {
			return &l, nil
		}
	}
	return nil, errors.New("Préstamo no encontrado")
}
func (f *loanAPI) ByBorrower(_ context.Context, ci string) (*entity.BorrowerLoans, error) {
	f.byCI = append(f.byCI, ci)
	return &entity.BorrowerLoans{Loans: f.loans, Installments: f.summary}, nil
}
func (f *loanAPI) Mine(context.Context) (*entity.BorrowerLoans, error) {
	return &entity.BorrowerLoans{Loans: f.loans}, nil
}
func (f *loanAPI) Create(context.Context, dto.CreateLoanRequest) (int64, error) { return 0, nil }
func (f *loanAPI) Update(context.Context, int64, dto.UpdateLoanRequest) (*entity.Loan, error) {
	return nil, nil
}
func (f *loanAPI) Cancel(context.Context, int64) error { return nil }

type installmentAPI struct {
	payErr error
	paid   []int64
}

func (f *installmentAPI) ByLoan(context.Context, int64) ([]entity.Installment, error) { return nil, nil }
func (f *installmentAPI) Pending(context.Context) ([]entity.Installment, error)       { return nil, nil }
func (f *installmentAPI) Delinquent(context.Context) ([]entity.Installment, error)    { return nil, nil }
func (f *installmentAPI) Pay(_ context.Context, id int64, _ dto.PayInstallmentRequest) (*entity.PaymentResult, error) {
	if f.payErr != nil {
		return nil, f.payErr
	}
	f.paid = append(f.paid, id)
	return &entity.PaymentResult{Installment: &entity.Installment{ID: id, LoanID: 1, Status: entity.InstallmentPaid}}, nil
}

type refinancingAPI struct {
	mu      sync.Mutex
	items   []entity.RefinancingRequest
	created []dto.CreateRefinancingRequest
	err     error
}

func (f *refinancingAPI) Mine(context.Context) ([]entity.RefinancingRequest, error) {
	return f.items, nil
}
func (f *refinancingAPI) List(_ context.Context, status string) ([]entity.RefinancingRequest, error) {
	var out []entity.RefinancingRequest
	for _, r := range f.items {
		if status == "" || string(r.Status) == status {
			out = append(out, r)
		}
	}
	return out, nil
}
func (f *refinancingAPI) Create(_ context.Context, in dto.CreateRefinancingRequest) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	f.created = append(f.created, in)
	id := int64(len(f.items) + 1)
	f.items = append(f.items, entity.RefinancingRequest{ID: id, LoanID: in.LoanID, NewInstallmentCount: in.NewInstallmentCount, Status: entity.RefinancingPending})
	return id, nil
}
func (f *refinancingAPI) set(id int64, st entity.RefinancingStatus) error {
	for i := range f.items {
		if f.items[i].ID == id {
			if !f.items[i].IsPending() {
				return errRechazo
			}
			f.items[i].Status = st
			return nil
		}
	}
	return errors.New("Solicitud no encontrada")
}
func (f *refinancingAPI) Approve(_ context.Context, id int64, _ string) error {
	return f.set(id, entity.RefinancingApproved)
}
func (f *refinancingAPI) Reject(_ context.Context, id int64, _ string) error {
	return f.set(id, entity.RefinancingRejected)
}

type loanRequestAPI struct {
	items   []entity.LoanRequest
	created []dto.CreateLoanApplicationRequest
}

func (f *loanRequestAPI) Mine(context.Context) ([]entity.LoanRequest, error) { return f.items, nil }
func (f *loanRequestAPI) List(_ context.Context, filter dto.LoanApplicationFilter) ([]entity.LoanRequest, error) {
	var out []entity.LoanRequest
	for _, r := range f.items {
		if filter.Status == "" || string(r.Status) == filter.Status {
			out = append(out, r)
		}
	}
	return out, nil
}
func (f *loanRequestAPI) Create(_ context.Context, in dto.CreateLoanApplicationRequest) (int64, error) {
	f.created = append(f.created, in)
	id := int64(len(f.items) + 1)
	f.items = append(f.items, entity.LoanRequest{ID: id, Amount: in.Amount, InstallmentCount: in.InstallmentCount, Status: entity.LoanRequestPending})
	return id, nil
}
func (f *loanRequestAPI) decide(id int64, st entity.LoanRequestStatus) (*entity.LoanRequestDecision, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			if !f.items[i].IsPending() {
				return nil, errRechazo
			}
			f.items[i].Status = st
			d := &entity.LoanRequestDecision{RequestID: id, Status: st}
			if st == entity.LoanRequestAccepted {
				loanID := int64(40)
				d.LoanID = &loanID
			}
			return d, nil
		}
	}
	return nil, errors.New("Solicitud no encontrada")
}
func (f *loanRequestAPI) Approve(_ context.Context, id int64) (*entity.LoanRequestDecision, error) {
	return f.decide(id, entity.LoanRequestAccepted)
}
func (f *loanRequestAPI) Reject(_ context.Context, id int64, _ string) (*entity.LoanRequestDecision, error) {
	return f.decide(id, entity.LoanRequestRejected)
}

type borrowerAPI struct {
	items    []entity.Borrower
	inFlight atomic.Int32
	peak     atomic.Int32
}

func (f *borrowerAPI) List(context.Context) ([]entity.Borrower, error) { return f.items, nil }
func (f *borrowerAPI) GetByCI(context.Context, string) (*entity.Borrower, error) {
	return nil, nil
}
func (f *borrowerAPI) Me(context.Context) (*entity.Borrower, error)                   { return nil, nil }
func (f *borrowerAPI) Create(context.Context, dto.CreateBorrowerRequest) error        { return nil }
func (f *borrowerAPI) Update(context.Context, string, dto.UpdateBorrowerRequest) error { return nil }
func (f *borrowerAPI) Delete(context.Context, string) error                           { return nil }
func (f *borrowerAPI) BulkLoad(context.Context, string, []byte) (*entity.BulkLoadResult, error) {
	return nil, nil
}
func (f *borrowerAPI) LoadLogs(context.Context) ([]entity.LoadLog, error) { return nil, nil }
func (f *borrowerAPI) Delinquency(_ context.Context, id int64) (*entity.Delinquency, error) {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		p := f.peak.Load()
		if n <= p || f.peak.CompareAndSwap(p, n) {
			break
		}
	}
	if id == 2 {
		return nil, errors.New("Error al calcular morosidad")
	}
	st := entity.DelinquencyActivo
	if id%3 == 0 {
		st = entity.DelinquencyMoroso
	}
	return &entity.Delinquency{BorrowerID: id, Status: st}, nil
}

func messages(q *notification.Queue) []entity.Notification { return q.Snapshot() }

// ── LoanDetail ──

func newDetail(loans *loanAPI, inst *installmentAPI, refis *refinancingAPI) (*lifecycle.LoanDetail, *notification.Queue) {
	q := notification.NewQueue()
	d := lifecycle.NewLoanDetail(
		store.NewLoanStore(loans, nil),
		store.NewInstallmentStore(inst, nil),
		store.NewRefinancingStore(refis, nil),
		q, nil,
	)
	return d, q
}

func prestamos() *loanAPI {
	return &loanAPI{
		loans: []entity.Loan{
			{ID: 1, BorrowerID: 9, Status: entity.LoanActive},
			{ID: 2, BorrowerID: 9, Status: entity.LoanActive},
			{ID: 3, BorrowerID: 9, Status: entity.LoanCanceled},
		},
		summary: []entity.InstallmentSummary{
			{LoanID: 1, SequenceNumber: 1},
			{LoanID: 2, SequenceNumber: 1},
			{LoanID: 1, SequenceNumber: 2},
		},
	}
}

func TestLoanDetail_LoadFiltraCuotasPorPrestamo(t *testing.T) {
	loans := prestamos()
	d, _ := newDetail(loans, &installmentAPI{}, &refinancingAPI{})

	require.NoError(t, d.Load(context.Background(), 1))
	assert.Equal(t, int64(1), d.Loan().ID)
	assert.Equal(t, []string{"9"}, loans.byCI)
	sched := d.Schedule()
	require.Len(t, sched, 2)
	for _, c := range sched {
		assert.Equal(t, int64(1), c.LoanID)
	}
	assert.Len(t, d.Siblings(), 3)
	assert.Equal(t, 2, d.ActiveLoans())
	assert.Empty(t, d.Err())
}

func TestLoanDetail_LoadFallidaConservaVista(t *testing.T) {
	d, _ := newDetail(prestamos(), &installmentAPI{}, &refinancingAPI{})
	ctx := context.Background()
	require.NoError(t, d.Load(ctx, 1))

	require.Error(t, d.Load(ctx, 99))
	assert.Equal(t, int64(1), d.Loan().ID)
	assert.Equal(t, "Préstamo no encontrado", d.Err())
}

func TestLoanDetail_RequestRefinancingValidaEntero(t *testing.T) {
	refis := &refinancingAPI{}
	d, q := newDetail(prestamos(), &installmentAPI{}, refis)
	ctx := context.Background()
	require.NoError(t, d.Load(ctx, 1))

	for _, raw := range []string{"", "0", "-3", "2.5", "doce"} {
		_, err := d.RequestRefinancing(ctx, raw, "")
		require.ErrorIs(t, err, domain.ErrInvalidInput, raw)
	}
	assert.Empty(t, refis.created, "la entrada inválida no llega al servicio")
	msgs := messages(q)
	require.Len(t, msgs, 5)
	assert.Equal(t, lifecycle.MsgInvalidNewInstallments, msgs[0].Message)
	assert.Equal(t, entity.SeverityError, msgs[0].Severity)
}

func TestLoanDetail_RequestRefinancingExitoNotifica(t *testing.T) {
	refis := &refinancingAPI{}
	d, q := newDetail(prestamos(), &installmentAPI{}, refis)
	ctx := context.Background()
	require.NoError(t, d.Load(ctx, 1))

	id, err := d.RequestRefinancing(ctx, " 24 ", "cuotas más bajas")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	require.Len(t, refis.created, 1)
	assert.Equal(t, int64(1), refis.created[0].LoanID)
	assert.Equal(t, 24, refis.created[0].NewInstallmentCount)

	head, ok := q.Current()
	require.True(t, ok)
	assert.Equal(t, lifecycle.MsgRefinancingRequested, head.Message)
	assert.Equal(t, entity.SeveritySuccess, head.Severity)
}

func TestLoanDetail_RequestRefinancingSinPrestamo(t *testing.T) {
	d, q := newDetail(prestamos(), &installmentAPI{}, &refinancingAPI{})
	_, err := d.RequestRefinancing(context.Background(), "12", "")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, q.Len())
}

func TestLoanDetail_PayInstallmentNotificaSoloConExito(t *testing.T) {
	inst := &installmentAPI{}
	d, q := newDetail(prestamos(), inst, &refinancingAPI{})
	ctx := context.Background()
	require.NoError(t, d.Load(ctx, 1))

	inst.payErr = errors.New("La cuota ya está pagada")
	_, err := d.PayInstallment(ctx, 5, dto.PayInstallmentRequest{PaidDate: "2026-03-01"})
	require.Error(t, err)
	assert.Zero(t, q.Len(), "el error lo publica el gateway, no la vista")

	inst.payErr = nil
	res, err := d.PayInstallment(ctx, 5, dto.PayInstallmentRequest{PaidDate: "2026-03-01"})
	require.NoError(t, err)
	assert.Equal(t, entity.InstallmentPaid, res.Installment.Status)
	head, ok := q.Current()
	require.True(t, ok)
	assert.Equal(t, lifecycle.MsgPaymentRegistered, head.Message)
}

func TestLoanDetail_PayInstallmentConRecargaFallida(t *testing.T) {
	loans := prestamos()
	var buf bytes.Buffer
	q := notification.NewQueue()
	d := lifecycle.NewLoanDetail(
		store.NewLoanStore(loans, nil),
		store.NewInstallmentStore(&installmentAPI{}, nil),
		store.NewRefinancingStore(&refinancingAPI{}, nil),
		q, logger.New(logger.Config{Env: "production", Level: "debug", Output: &buf}),
	)
	ctx := context.Background()
	require.NoError(t, d.Load(ctx, 1))
	loans.loans = nil

	res, err := d.PayInstallment(ctx, 5, dto.PayInstallmentRequest{PaidDate: "2026-03-01"})

	require.NoError(t, err, "el pago se registró aunque la recarga falle")
	require.NotNil(t, res)
	assert.Equal(t, "Préstamo no encontrado", d.Err())
	assert.Equal(t, int64(1), d.Loan().ID, "la vista anterior se conserva")
	assert.Contains(t, buf.String(), "recarga del detalle fallida")
	head, ok := q.Current()
	require.True(t, ok)
	assert.Equal(t, lifecycle.MsgPaymentRegistered, head.Message)
}

// ── BorrowerOverview ──

func TestBorrowerOverview_MorosidadConcurrenteLimitada(t *testing.T) {
	api := &borrowerAPI{}
	for i := int64(1); i <= 12; i++ {
		api.items = append(api.items, entity.Borrower{ID: i, CI: fmt.Sprint(1000 + i)})
	}
	borrowers := store.NewBorrowerStore(api, nil)
	o := lifecycle.NewBorrowerOverview(borrowers, 3, nil)

	require.NoError(t, o.Load(context.Background()))
	rows := o.Rows()
	require.Len(t, rows, 12)
	assert.LessOrEqual(t, api.peak.Load(), int32(3))

	assert.Nil(t, rows[1].Delinquency, "la consulta fallida deja la fila sin juicio")
	require.NotNil(t, rows[2].Delinquency)
	assert.Equal(t, entity.DelinquencyMoroso, rows[2].Delinquency.Status)
	assert.Equal(t, entity.DelinquencyActivo, rows[0].Delinquency.Status)

	assert.Len(t, borrowers.Items(), 12, "el store solo guarda prestatarios")
}

// ── RequestDesk ──

func newDesk() (*lifecycle.RequestDesk, *loanRequestAPI, *refinancingAPI, *notification.Queue) {
	reqs := &loanRequestAPI{items: []entity.LoanRequest{
		{ID: 1, Status: entity.LoanRequestPending},
		{ID: 2, Status: entity.LoanRequestPending},
		{ID: 3, Status: entity.LoanRequestAccepted},
	}}
	refis := &refinancingAPI{items: []entity.RefinancingRequest{
		{ID: 7, LoanID: 55, Status: entity.RefinancingPending},
		{ID: 8, LoanID: 56, Status: entity.RefinancingPending},
	}}
	q := notification.NewQueue()
	desk := lifecycle.NewRequestDesk(store.NewLoanRequestStore(reqs, nil), store.NewRefinancingStore(refis, nil), q)
	return desk, reqs, refis, q
}

func TestRequestDesk_AprobarSolicitudDePrestamo(t *testing.T) {
	desk, _, _, q := newDesk()
	ctx := context.Background()
	require.NoError(t, desk.Refresh(ctx))
	require.Len(t, desk.PendingLoanRequests(), 2)

	res, err := desk.ApproveLoanRequest(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.LoanRequestAccepted, res.Status)
	assert.Len(t, desk.PendingLoanRequests(), 1, "la aprobada desaparece de la bandeja")

	head, _ := q.Current()
	assert.Equal(t, "Solicitud de préstamo aprobada. Se generó el préstamo #40 y sus cuotas asociadas.", head.Message)
}

func TestRequestDesk_DecisionSobreNoPendienteNoNotificaExito(t *testing.T) {
	desk, _, _, q := newDesk()
	ctx := context.Background()
	require.NoError(t, desk.Refresh(ctx))

	_, err := desk.ApproveLoanRequest(ctx, 3)
	require.ErrorIs(t, err, errRechazo)
	assert.Zero(t, q.Len())

	_, err = desk.RejectLoanRequest(ctx, 2, "Ingresos insuficientes")
	require.NoError(t, err)
	head, _ := q.Current()
	assert.Equal(t, lifecycle.MsgLoanRequestRejected, head.Message)
}

func TestRequestDesk_Refinanciaciones(t *testing.T) {
	desk, _, _, q := newDesk()
	ctx := context.Background()
	require.NoError(t, desk.Refresh(ctx))
	require.Len(t, desk.PendingRefinancings(), 2)

	require.NoError(t, desk.ApproveRefinancing(ctx, 7, "ok"))
	head, _ := q.Dismiss()
	assert.Equal(t, "Solicitud de refinanciación aprobada. El préstamo #55 ha sido refinanciado.", head.Message)

	require.NoError(t, desk.RejectRefinancing(ctx, 8, "sin respaldo"))
	head, _ = q.Dismiss()
	assert.Equal(t, lifecycle.MsgRefinancingRejected, head.Message)
	assert.Empty(t, desk.PendingRefinancings())

	require.ErrorIs(t, desk.ApproveRefinancing(ctx, 8, ""), errRechazo)
	assert.Zero(t, q.Len())
}

// ── BorrowerDesk ──

func TestBorrowerDesk_SubmitValidaMontoYCuotas(t *testing.T) {
	reqs := &loanRequestAPI{}
	q := notification.NewQueue()
	desk := lifecycle.NewBorrowerDesk(store.NewLoanRequestStore(reqs, nil), store.NewRefinancingStore(&refinancingAPI{}, nil), q)
	ctx := context.Background()

	_, err := desk.SubmitLoanApplication(ctx, "-5", "12")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = desk.SubmitLoanApplication(ctx, "1500.50", "1.5")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, reqs.created)

	msgs := q.Snapshot()
	require.Len(t, msgs, 2)
	assert.Equal(t, lifecycle.MsgInvalidAmount, msgs[0].Message)
	assert.Equal(t, lifecycle.MsgInvalidInstallments, msgs[1].Message)

	req, err := desk.SubmitLoanApplication(ctx, "1500.50", "12")
	require.NoError(t, err)
	require.NotNil(t, req)
	assert.True(t, req.Amount.Equal(decimal.RequireFromString("1500.50")))
	assert.Equal(t, entity.LoanRequestPending, req.Status)
	assert.Equal(t, lifecycle.MsgLoanRequestCreated, q.Snapshot()[2].Message)
}

func TestBorrowerDesk_RequestRefinancing(t *testing.T) {
	refis := &refinancingAPI{}
	q := notification.NewQueue()
	desk := lifecycle.NewBorrowerDesk(store.NewLoanRequestStore(&loanRequestAPI{}, nil), store.NewRefinancingStore(refis, nil), q)

	_, err := desk.RequestRefinancing(context.Background(), 4, "0", "")
	require.Error(t, err)

	id, err := desk.RequestRefinancing(context.Background(), 4, "18", "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, lifecycle.MsgRefinancingRequested, q.Snapshot()[1].Message)
}

// ── Autorregistro ──

type registrationAPI struct {
	borrowers []dto.RegisterBorrowerRequest
	employees []dto.RegisterEmployeeRequest
	err       error
}

func (f *registrationAPI) RegisterBorrower(_ context.Context, in dto.RegisterBorrowerRequest) (*entity.Registration, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.borrowers = append(f.borrowers, in)
	id := int64(len(f.borrowers))
	return &entity.Registration{Username: in.Username, Role: entity.RoleBorrower, BorrowerID: &id}, nil
}

func (f *registrationAPI) RegisterEmployee(_ context.Context, in dto.RegisterEmployeeRequest) (*entity.Registration, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.employees = append(f.employees, in)
	id := int64(len(f.employees))
	return &entity.Registration{Username: in.Username, Role: entity.RoleEmployee, EmployeeID: &id}, nil
}

func TestRegistrationDesk_ValidacionesPrevias(t *testing.T) {
	api := &registrationAPI{}
	q := notification.NewQueue()
	desk := lifecycle.NewRegistrationDesk(api, "BasesDeDatos2", q)
	ctx := context.Background()
	b := dto.CreateBorrowerRequest{CI: "123", FirstName: "Ana", LastName: "Ruiz"}

	_, err := desk.RegisterBorrower(ctx, lifecycle.Credentials{Secret: "basesdedatos2", Username: "ana", Password: "x", Confirm: "x"}, b)
	require.ErrorIs(t, err, domain.ErrForbidden)
	_, err = desk.RegisterBorrower(ctx, lifecycle.Credentials{Secret: "BasesDeDatos2", Username: " ", Password: "x", Confirm: "x"}, b)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = desk.RegisterBorrower(ctx, lifecycle.Credentials{Secret: "BasesDeDatos2", Username: "ana", Password: "x", Confirm: "y"}, b)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, api.borrowers)

	msgs := q.Snapshot()
	require.Len(t, msgs, 3)
	assert.Equal(t, lifecycle.MsgWrongSecret, msgs[0].Message)
	assert.Equal(t, lifecycle.MsgMissingCredentials, msgs[1].Message)
	assert.Equal(t, lifecycle.MsgPasswordMismatch, msgs[2].Message)
	assert.Equal(t, entity.SeverityError, msgs[2].Severity)
}

func TestRegistrationDesk_AltasExitosas(t *testing.T) {
	api := &registrationAPI{}
	q := notification.NewQueue()
	desk := lifecycle.NewRegistrationDesk(api, "BasesDeDatos2", q)
	ctx := context.Background()
	c := lifecycle.Credentials{Secret: "BasesDeDatos2", Username: "ana", Password: "clave", Confirm: "clave"}

	reg, err := desk.RegisterBorrower(ctx, c, dto.CreateBorrowerRequest{CI: "123", FirstName: "Ana", LastName: "Ruiz"})
	require.NoError(t, err)
	require.NotNil(t, reg.BorrowerID)
	require.Len(t, api.borrowers, 1)
	assert.Equal(t, "ana", api.borrowers[0].Borrower.RegisteredBy)

	c.Username = "luis"
	reg, err = desk.RegisterEmployee(ctx, c, dto.CreateEmployeeRequest{FirstName: "Luis", LastName: "Pérez"})
	require.NoError(t, err)
	require.NotNil(t, reg.EmployeeID)

	msgs := q.Snapshot()
	require.Len(t, msgs, 2)
	assert.Equal(t, lifecycle.MsgBorrowerRegistered, msgs[0].Message)
	assert.Equal(t, lifecycle.MsgEmployeeRegistered, msgs[1].Message)
}

func TestRegistrationDesk_RechazoDelServicioNoNotificaExito(t *testing.T) {
	api := &registrationAPI{err: errors.New("El nombre de usuario ya existe.")}
	q := notification.NewQueue()
	desk := lifecycle.NewRegistrationDesk(api, "s", q)

	_, err := desk.RegisterEmployee(context.Background(), lifecycle.Credentials{Secret: "s", Username: "a", Password: "b", Confirm: "b"}, dto.CreateEmployeeRequest{FirstName: "A", LastName: "B"})
	require.Error(t, err)
	assert.Empty(t, q.Snapshot())
}
