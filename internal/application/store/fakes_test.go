package store_test

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
)

var errServicio = errors.New("Ya tiene 2 préstamos activos. No puede tener más de dos préstamos activos a la vez.")

// ── Prestatarios ──

type fakeBorrowerAPI struct {
	mu       sync.Mutex
	items    []entity.Borrower
	listErr  error
	writeErr error
	calls    int
}

func (f *fakeBorrowerAPI) List(context.Context) ([]entity.Borrower, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]entity.Borrower, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeBorrowerAPI) GetByCI(_ context.Context, ci string) (*entity.Borrower, error) {
	for _, b := range f.items {
		if b.CI == ci {
			return &b, nil
		}
	}
	return nil, errors.New("Prestatario no encontrado")
}

func (f *fakeBorrowerAPI) Me(context.Context) (*entity.Borrower, error) {
	if len(f.items) == 0 {
		return nil, errors.New("Prestatario no encontrado")
	}
	b := f.items[0]
	return &b, nil
}

func (f *fakeBorrowerAPI) Create(_ context.Context, in dto.CreateBorrowerRequest) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, entity.Borrower{ID: int64(len(f.items) + 1), CI: in.CI, FirstName: in.FirstName, LastName: in.LastName})
	return nil
}

func (f *fakeBorrowerAPI) Update(_ context.Context, ci string, in dto.UpdateBorrowerRequest) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].CI == ci && in.Email != nil {
			f.items[i].Email = *in.Email
		}
	}
	return nil
}

func (f *fakeBorrowerAPI) Delete(_ context.Context, ci string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].CI == ci {
			f.items = append(f.items[:i], f.items[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeBorrowerAPI) BulkLoad(_ context.Context, filename string, _ []byte) (*entity.BulkLoadResult, error) {
	return &entity.BulkLoadResult{Total: 2, Accepted: 1, Rejected: 1, Details: []entity.BulkLoadDetail{{Line: 2, Reason: "CI duplicado"}}}, nil
}

func (f *fakeBorrowerAPI) LoadLogs(context.Context) ([]entity.LoadLog, error) {
	return []entity.LoadLog{{ID: 1, FileName: "carga.csv"}}, nil
}

func (f *fakeBorrowerAPI) Delinquency(_ context.Context, id int64) (*entity.Delinquency, error) {
	return &entity.Delinquency{BorrowerID: id, Status: entity.DelinquencyActivo}, nil
}

// ── Préstamos ──

type fakeLoanAPI struct {
	mu        sync.Mutex
	loans     []entity.Loan
	createErr error
	createID  int64
	listCalls int
	mineCalls int
}

func (f *fakeLoanAPI) List(context.Context) ([]entity.Loan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	out := make([]entity.Loan, len(f.loans))
	copy(out, f.loans)
	return out, nil
}

func (f *fakeLoanAPI) Get(_ context.Context, id int64) (*entity.Loan, error) {
	for _, l := range f.loans {
		if l.ID == id {
			return &l, nil
		}
	}
	return nil, errors.New("Préstamo no encontrado")
}

func (f *fakeLoanAPI) ByBorrower(_ context.Context, ci string) (*entity.BorrowerLoans, error) {
	return &entity.BorrowerLoans{
		Borrower:     &entity.BorrowerRef{ID: 1, CI: ci},
		Loans:        f.loans,
		Installments: []entity.InstallmentSummary{{LoanID: 1, SequenceNumber: 1}},
	}, nil
}

func (f *fakeLoanAPI) Mine(context.Context) (*entity.BorrowerLoans, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mineCalls++
	return &entity.BorrowerLoans{Loans: f.loans}, nil
}

func (f *fakeLoanAPI) Create(_ context.Context, in dto.CreateLoanRequest) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createID != 0 {
		f.loans = append(f.loans, entity.Loan{ID: f.createID, Principal: in.Amount, Status: entity.LoanActive})
	}
	return f.createID, nil
}

func (f *fakeLoanAPI) Update(_ context.Context, id int64, in dto.UpdateLoanRequest) (*entity.Loan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.loans {
		if f.loans[i].ID == id && in.Status != nil {
			f.loans[i].Status = entity.LoanStatus(*in.Status)
			l := f.loans[i]
			return &l, nil
		}
	}
	return nil, errors.New("Préstamo no encontrado")
}

func (f *fakeLoanAPI) Cancel(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.loans {
		if f.loans[i].ID == id {
			f.loans[i].Status = entity.LoanCanceled
		}
	}
	return nil
}

// ── Cuotas ──

type fakeInstallmentAPI struct {
	mu        sync.Mutex
	items     []entity.Installment
	payErr    error
	byLoanFor []int64
}

func (f *fakeInstallmentAPI) filter(pred func(entity.Installment) bool) []entity.Installment {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Installment
	for _, c := range f.items {
		if pred(c) {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeInstallmentAPI) ByLoan(_ context.Context, loanID int64) ([]entity.Installment, error) {
	f.mu.Lock()
	f.byLoanFor = append(f.byLoanFor, loanID)
	f.mu.Unlock()
	return f.filter(func(c entity.Installment) bool { return c.LoanID == loanID }), nil
}

func (f *fakeInstallmentAPI) Pending(context.Context) ([]entity.Installment, error) {
	return f.filter(func(c entity.Installment) bool { return c.Status == entity.InstallmentPending }), nil
}

func (f *fakeInstallmentAPI) Delinquent(context.Context) ([]entity.Installment, error) {
	return f.filter(func(c entity.Installment) bool { return c.Status == entity.InstallmentDelinquent }), nil
}

func (f *fakeInstallmentAPI) Pay(_ context.Context, id int64, in dto.PayInstallmentRequest) (*entity.PaymentResult, error) {
	if f.payErr != nil {
		return nil, f.payErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Status = entity.InstallmentPaid
			f.items[i].PaidDate = &in.PaidDate
			c := f.items[i]
			return &entity.PaymentResult{Installment: &c}, nil
		}
	}
	return nil, errors.New("Cuota no encontrada")
}

// ── Solicitudes ──

type fakeLoanRequestAPI struct {
	mu       sync.Mutex
	items    []entity.LoanRequest
	filters  []dto.LoanApplicationFilter
	nextID   int64
	decideOK bool
}

func (f *fakeLoanRequestAPI) Mine(context.Context) ([]entity.LoanRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.LoanRequest, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeLoanRequestAPI) List(_ context.Context, filter dto.LoanApplicationFilter) ([]entity.LoanRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters = append(f.filters, filter)
	var out []entity.LoanRequest
	for _, r := range f.items {
		if filter.Status == "" || string(r.Status) == filter.Status {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLoanRequestAPI) Create(_ context.Context, in dto.CreateLoanApplicationRequest) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.items = append(f.items, entity.LoanRequest{ID: f.nextID, Amount: in.Amount, InstallmentCount: in.InstallmentCount, Status: entity.LoanRequestPending})
	return f.nextID, nil
}

func (f *fakeLoanRequestAPI) decide(id int64, st entity.LoanRequestStatus) (*entity.LoanRequestDecision, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			if !f.items[i].IsPending() {
				return nil, errors.New("La solicitud no está pendiente")
			}
			f.items[i].Status = st
			d := &entity.LoanRequestDecision{RequestID: id, Status: st}
			if st == entity.LoanRequestAccepted {
				loanID := int64(100 + id)
				d.LoanID = &loanID
			}
			return d, nil
		}
	}
	return nil, errors.New("Solicitud no encontrada")
}

func (f *fakeLoanRequestAPI) Approve(_ context.Context, id int64) (*entity.LoanRequestDecision, error) {
	return f.decide(id, entity.LoanRequestAccepted)
}

func (f *fakeLoanRequestAPI) Reject(_ context.Context, id int64, _ string) (*entity.LoanRequestDecision, error) {
	return f.decide(id, entity.LoanRequestRejected)
}

// ── Refinanciaciones ──

type fakeRefinancingAPI struct {
	mu       sync.Mutex
	items    []entity.RefinancingRequest
	statuses []string
	created  []dto.CreateRefinancingRequest
}

func (f *fakeRefinancingAPI) Mine(context.Context) ([]entity.RefinancingRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.RefinancingRequest, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeRefinancingAPI) List(_ context.Context, status string) ([]entity.RefinancingRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses = append(f.statuses, status)
	var out []entity.RefinancingRequest
	for _, r := range f.items {
		if status == "" || string(r.Status) == status {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRefinancingAPI) Create(_ context.Context, in dto.CreateRefinancingRequest) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, in)
	id := int64(len(f.items) + 1)
	f.items = append(f.items, entity.RefinancingRequest{ID: id, LoanID: in.LoanID, NewInstallmentCount: in.NewInstallmentCount, Status: entity.RefinancingPending})
	return id, nil
}

func (f *fakeRefinancingAPI) set(id int64, st entity.RefinancingStatus, comment string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			if !f.items[i].IsPending() {
				return errors.New("La solicitud ya fue procesada")
			}
			f.items[i].Status = st
			f.items[i].EmployeeComment = &comment
			return nil
		}
	}
	return errors.New("Solicitud no encontrada")
}

func (f *fakeRefinancingAPI) Approve(_ context.Context, id int64, comment string) error {
	return f.set(id, entity.RefinancingApproved, comment)
}

func (f *fakeRefinancingAPI) Reject(_ context.Context, id int64, comment string) error {
	return f.set(id, entity.RefinancingRejected, comment)
}

// ── Reportes ──

type fakeReportAPI struct{ err error }

func (f fakeReportAPI) LoanSummary(context.Context) ([]entity.ReportRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []entity.ReportRow{{"ESTADO": "ACTIVO", "CANTIDAD": 3}}, nil
}

func (f fakeReportAPI) Delinquents(context.Context) ([]entity.ReportRow, error) {
	return []entity.ReportRow{{"CI": "123"}}, nil
}

func (f fakeReportAPI) Refinancings(context.Context) ([]entity.ReportRow, error) {
	return nil, nil
}

// ── Empleados ──

type fakeEmployeeAPI struct {
	mu       sync.Mutex
	items    []entity.Employee
	listErr  error
	writeErr error
	calls    int
}

func (f *fakeEmployeeAPI) List(context.Context) ([]entity.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]entity.Employee, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeEmployeeAPI) Get(_ context.Context, id int64) (*entity.Employee, error) {
	for _, e := range f.items {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, errors.New("Empleado no encontrado.")
}

func (f *fakeEmployeeAPI) Create(_ context.Context, in dto.CreateEmployeeRequest) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, entity.Employee{ID: int64(len(f.items) + 1), FirstName: in.FirstName, LastName: in.LastName})
	return nil
}

func (f *fakeEmployeeAPI) Update(_ context.Context, id int64, in dto.UpdateEmployeeRequest) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id && in.Position != nil {
			f.items[i].Position = in.Position
		}
	}
	return nil
}

func (f *fakeEmployeeAPI) Delete(_ context.Context, id int64) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.items[:0]
	for _, e := range f.items {
		if e.ID != id {
			out = append(out, e)
		}
	}
	f.items = out
	return nil
}

// ── Auditoría ──

type fakeAuditAPI struct {
	mu      sync.Mutex
	items   []entity.AuditLog
	queries []dto.AuditQuery
}

func (f *fakeAuditAPI) Register(_ context.Context, in dto.RegisterAuditRequest) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := int64(len(f.items) + 1)
	f.items = append(f.items, entity.AuditLog{ID: id, User: in.User, Operation: in.Operation})
	return id, nil
}

func (f *fakeAuditAPI) Logs(_ context.Context, q dto.AuditQuery) ([]entity.AuditLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	var out []entity.AuditLog
	for _, a := range f.items {
		if q.User == "" || a.User == q.User {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAuditAPI) Finish(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			if f.items[i].ExitedAt != nil {
				return errors.New("La sesión ya fue finalizada.")
			}
			out := "2026-01-01 10:00:00"
			f.items[i].ExitedAt = &out
			return nil
		}
	}
	return errors.New("Registro de auditoría no encontrado.")
}

// ── Avisos ──

type fakeNoticeAPI struct {
	mu         sync.Mutex
	items      []entity.Notice
	historyErr error
}

func (f *fakeNoticeAPI) Pending(context.Context) ([]entity.Notice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Notice
	for _, n := range f.items {
		if !n.Sent {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNoticeAPI) History(context.Context) ([]entity.Notice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.historyErr != nil {
		return nil, f.historyErr
	}
	out := make([]entity.Notice, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeNoticeAPI) Send(_ context.Context, kind entity.NoticeKind) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for i := range f.items {
		if f.items[i].Kind == kind && !f.items[i].Sent {
			f.items[i].Sent = true
			n++
		}
	}
	return n, nil
}

func (f *fakeNoticeAPI) Generate(_ context.Context, kind entity.NoticeKind) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := int64(1)
	f.items = append(f.items, entity.Notice{ID: int64(len(f.items) + 1), BorrowerID: &b, Kind: kind})
	return 1, nil
}

type fakeIdentity struct{ id *entity.Identity }

func (f fakeIdentity) Token() string               { return "t" }
func (f fakeIdentity) Identity() *entity.Identity { return f.id }
