package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/banco-cliente/internal/application/auth"
	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/application/usecase"
	"github.com/jhoicas/banco-cliente/internal/domain"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/internal/infrastructure/memory"
)

// anaID y luisID: ids asignados por el seed en orden de alta.
const (
	anaID  int64 = 1
	luisID int64 = 2
)

var employee = entity.Identity{ID: 2, Username: "empleado", Role: entity.RoleEmployee}

func borrowerIdentity(userID, borrowerID int64) entity.Identity {
	return entity.Identity{ID: userID, Username: "p", Role: entity.RoleBorrower, BorrowerID: &borrowerID}
}

type env struct {
	now          time.Time
	borrowers    *usecase.BorrowerUseCase
	loans        *usecase.LoanUseCase
	installments *usecase.InstallmentUseCase
	requests     *usecase.LoanRequestUseCase
	refis        *usecase.RefinancingUseCase
	reports      *usecase.ReportUseCase
	employees    *usecase.EmployeeUseCase
	registration *usecase.RegistrationUseCase
	audits       *usecase.AuditUseCase
	notices      *usecase.NoticeUseCase
	login        *auth.AuthUseCase
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db := memory.NewDB()
	e := &env{now: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)}
	require.NoError(t, memory.Seed(db, memory.DemoBorrowers, memory.DemoUsers, bcrypt.MinCost, e.now))

	clock := usecase.Clock(func() time.Time { return e.now })
	tx := memory.NewTxRunner(db)
	borrowerRepo := memory.NewBorrowerRepository(db)
	loanRepo := memory.NewLoanRepository(db)
	instRepo := memory.NewInstallmentRepository(db)
	refiRepo := memory.NewRefinancingRepository(db)
	policy := usecase.Policy{MaxActiveLoans: 2}

	e.borrowers = usecase.NewBorrowerUseCase(borrowerRepo, memory.NewLoadLogRepository(db), loanRepo, instRepo, tx, clock)
	e.loans = usecase.NewLoanUseCase(loanRepo, instRepo, borrowerRepo, tx, policy, clock)
	e.installments = usecase.NewInstallmentUseCase(instRepo, loanRepo, tx, clock)
	e.requests = usecase.NewLoanRequestUseCase(memory.NewLoanRequestRepository(db), borrowerRepo, loanRepo, instRepo, tx, policy, clock)
	e.refis = usecase.NewRefinancingUseCase(refiRepo, loanRepo, instRepo, tx, clock)
	e.reports = usecase.NewReportUseCase(borrowerRepo, loanRepo, instRepo, refiRepo, clock)

	userRepo := memory.NewUserRepository(db)
	employeeRepo := memory.NewEmployeeRepository(db)
	e.login = auth.NewAuthUseCase(userRepo, borrowerRepo, employeeRepo, auth.JWTConfig{Secret: "x", ExpMinutes: 5})
	e.employees = usecase.NewEmployeeUseCase(employeeRepo)
	e.registration = usecase.NewRegistrationUseCase(e.login, userRepo, borrowerRepo, employeeRepo, tx, clock)
	e.audits = usecase.NewAuditUseCase(memory.NewAuditRepository(db), clock)
	e.notices = usecase.NewNoticeUseCase(memory.NewNoticeRepository(db), loanRepo, instRepo, clock)
	return e
}

// approvedLoan crea y aprueba una solicitud; devuelve el id del préstamo emitido.
func (e *env) approvedLoan(t *testing.T, borrowerID int64, amount string, n int) int64 {
	t.Helper()
	created, err := e.requests.Create(employee, dto.CreateLoanApplicationRequest{
		Amount: decimal.RequireFromString(amount), InstallmentCount: n, BorrowerID: &borrowerID,
	})
	require.NoError(t, err)
	decision, err := e.requests.Approve(context.Background(), employee, created.ID)
	require.NoError(t, err)
	require.NotNil(t, decision.Loan)
	return decision.Loan.ID
}

func sum(items []dto.InstallmentResponse) decimal.Decimal {
	total := decimal.Zero
	for _, c := range items {
		total = total.Add(c.Amount)
	}
	return total
}

// ── Cronograma ───────────────────────────────────────────────────────────────

func TestBuildSchedule_UltimaCuotaAbsorbeRedondeo(t *testing.T) {
	start := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	items := usecase.BuildSchedule(decimal.RequireFromString("1150"), 3, start, 1)
	require.Len(t, items, 3)
	assert.Equal(t, "383.33", items[0].Amount.StringFixed(2))
	assert.Equal(t, "383.33", items[1].Amount.StringFixed(2))
	assert.Equal(t, "383.34", items[2].Amount.StringFixed(2))
	assert.Equal(t, 1, items[0].SequenceNumber)
	assert.Equal(t, 3, items[2].SequenceNumber)
	assert.Equal(t, entity.InstallmentPending, items[0].Status)

	assert.Nil(t, usecase.BuildSchedule(decimal.NewFromInt(10), 0, start, 1))
}

// ── Solicitudes de préstamo ──────────────────────────────────────────────────

func TestApprove_EmitePrestamoConCronograma(t *testing.T) {
	e := newEnv(t)
	loanID := e.approvedLoan(t, anaID, "1000", 3)

	loan, err := e.loans.Get(employee, loanID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.LoanActive), loan.Status)
	assert.Equal(t, anaID, loan.BorrowerID)
	assert.Equal(t, "0.15", loan.InterestRate.String())

	schedule, err := e.loans.Schedule(employee, loanID)
	require.NoError(t, err)
	require.Len(t, schedule, 3)
	assert.Equal(t, "1150.00", sum(schedule).StringFixed(2))
	assert.Equal(t, "2025-02-15", schedule[0].DueDate)
	assert.Equal(t, "2025-04-15", schedule[2].DueDate)
	require.NotNil(t, loan.DueAt)
	assert.Equal(t, "2025-04-15", *loan.DueAt)

	pending, err := e.requests.List(dto.LoanApplicationFilter{Status: "PENDIENTE"})
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestApprove_TopeDePrestamosActivos(t *testing.T) {
	e := newEnv(t)
	e.approvedLoan(t, anaID, "500", 2)
	e.approvedLoan(t, anaID, "700", 2)

	third, err := e.requests.Create(borrowerIdentity(3, anaID), dto.CreateLoanApplicationRequest{
		Amount: decimal.NewFromInt(300), InstallmentCount: 2,
	})
	require.NoError(t, err)

	_, err = e.requests.Approve(context.Background(), employee, third.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrActiveLoanLimit))
	assert.Contains(t, err.Error(), "ORA-20001")
	assert.Contains(t, err.Error(), "2 préstamos activos")

	mine, err := e.requests.Mine(borrowerIdentity(3, anaID))
	require.NoError(t, err)
	require.Len(t, mine, 3)
	assert.Equal(t, "PENDIENTE", mine[2].Status, "la solicitud rechazada por el tope sigue pendiente")

	// otro prestatario no está afectado
	e.approvedLoan(t, luisID, "300", 2)
}

func TestApprove_SoloPendientes(t *testing.T) {
	e := newEnv(t)
	created, err := e.requests.Create(borrowerIdentity(3, anaID), dto.CreateLoanApplicationRequest{
		Amount: decimal.NewFromInt(100), InstallmentCount: 1,
	})
	require.NoError(t, err)

	rejected, err := e.requests.Reject(context.Background(), employee, created.ID, "Ingresos insuficientes")
	require.NoError(t, err)
	assert.Equal(t, "RECHAZADA", rejected.Request.Status)
	require.NotNil(t, rejected.Request.Reason)
	assert.Equal(t, "Ingresos insuficientes", *rejected.Request.Reason)

	_, err = e.requests.Approve(context.Background(), employee, created.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, "La solicitud ya fue procesada.", err.Error())

	_, err = e.requests.Approve(context.Background(), employee, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateRequest_Validaciones(t *testing.T) {
	e := newEnv(t)
	_, err := e.requests.Create(employee, dto.CreateLoanApplicationRequest{Amount: decimal.Zero, InstallmentCount: 3, BorrowerID: ptr(anaID)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = e.requests.Create(employee, dto.CreateLoanApplicationRequest{Amount: decimal.NewFromInt(10), InstallmentCount: 3})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "un empleado debe indicar el prestatario")

	// el prestatario del token prevalece sobre el del cuerpo
	created, err := e.requests.Create(borrowerIdentity(3, anaID), dto.CreateLoanApplicationRequest{
		Amount: decimal.NewFromInt(10), InstallmentCount: 1, BorrowerID: ptr(luisID),
	})
	require.NoError(t, err)
	list, err := e.requests.List(dto.LoanApplicationFilter{BorrowerID: ptr(anaID)})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, "4567891", list[0].BorrowerCI)
}

func ptr(n int64) *int64 { return &n }

// ── Préstamos ────────────────────────────────────────────────────────────────

func TestLoanCreate_AplicaTopeYTipoDeInteres(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	res, err := e.loans.Create(ctx, dto.CreateLoanRequest{BorrowerID: ptr(luisID), Amount: decimal.NewFromInt(1000), InstallmentCount: 2, InterestType: "ALTA"})
	require.NoError(t, err)
	loan, err := e.loans.Get(employee, res.LoanID)
	require.NoError(t, err)
	assert.Equal(t, "0.2", loan.InterestRate.String())

	_, err = e.loans.Create(ctx, dto.CreateLoanRequest{BorrowerID: ptr(luisID), Amount: decimal.NewFromInt(1), InstallmentCount: 1})
	require.NoError(t, err)
	_, err = e.loans.Create(ctx, dto.CreateLoanRequest{BorrowerID: ptr(luisID), Amount: decimal.NewFromInt(1), InstallmentCount: 1})
	assert.ErrorIs(t, err, domain.ErrActiveLoanLimit)

	// cancelar libera un cupo
	require.NoError(t, e.loans.Cancel(ctx, res.LoanID))
	_, err = e.loans.Create(ctx, dto.CreateLoanRequest{BorrowerID: ptr(luisID), Amount: decimal.NewFromInt(1), InstallmentCount: 1})
	assert.NoError(t, err)
}

func TestLoanCancel_ConservaRegistroYMineLoExcluye(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	keep := e.approvedLoan(t, anaID, "100", 1)
	drop := e.approvedLoan(t, anaID, "200", 2)
	require.NoError(t, e.loans.Cancel(ctx, drop))

	err := e.loans.Cancel(ctx, drop)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	all, err := e.loans.ByBorrower(employee, "4567891")
	require.NoError(t, err)
	assert.Len(t, all.Loans, 2, "cancelar no elimina")
	require.NotNil(t, all.Borrower)
	assert.Equal(t, anaID, all.Borrower.ID)
	assert.Len(t, all.Installments, 3)

	mine, err := e.loans.Mine(borrowerIdentity(3, anaID))
	require.NoError(t, err)
	require.Len(t, mine.Loans, 1)
	assert.Equal(t, keep, mine.Loans[0].ID)
	assert.Len(t, mine.Installments, 1)
}

func TestByBorrower_AceptaIDYRestringePrestatario(t *testing.T) {
	e := newEnv(t)
	e.approvedLoan(t, anaID, "100", 1)

	byID, err := e.loans.ByBorrower(borrowerIdentity(3, anaID), "1")
	require.NoError(t, err)
	assert.Len(t, byID.Loans, 1)

	_, err = e.loans.ByBorrower(borrowerIdentity(4, luisID), "4567891")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = e.loans.ByBorrower(employee, "0000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInstallmentSummary_SaldoDecreciente(t *testing.T) {
	e := newEnv(t)
	e.approvedLoan(t, anaID, "1000", 4)
	res, err := e.loans.ByBorrower(employee, "4567891")
	require.NoError(t, err)
	require.Len(t, res.Installments, 4)
	assert.Equal(t, "862.50", res.Installments[0].Balance.StringFixed(2))
	assert.True(t, res.Installments[3].Balance.IsZero())
}

// ── Cuotas ───────────────────────────────────────────────────────────────────

func TestPay_MarcaPagadaYCancelaAlSaldar(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	loanID := e.approvedLoan(t, anaID, "100", 2)
	schedule, err := e.loans.Schedule(employee, loanID)
	require.NoError(t, err)
	ana := borrowerIdentity(3, anaID)

	first, err := e.installments.Pay(ctx, ana, schedule[0].ID, dto.PayInstallmentRequest{})
	require.NoError(t, err)
	assert.Equal(t, "PAGADA", first.Installment.Status)
	require.NotNil(t, first.Installment.PaidDate)
	assert.Equal(t, "2025-01-15", *first.Installment.PaidDate)
	assert.Equal(t, "ACTIVO", first.Loan.Status)

	_, err = e.installments.Pay(ctx, ana, schedule[0].ID, dto.PayInstallmentRequest{})
	assert.ErrorIs(t, err, domain.ErrNotPayable)
	assert.Equal(t, "La cuota ya se encuentra pagada.", err.Error())

	last, err := e.installments.Pay(ctx, ana, schedule[1].ID, dto.PayInstallmentRequest{PaidDate: "2025-01-20"})
	require.NoError(t, err)
	assert.Equal(t, "CANCELADO", last.Loan.Status)
}

func TestPay_RechazaAjenoYMontoInsuficiente(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	loanID := e.approvedLoan(t, anaID, "100", 1)
	schedule, err := e.loans.Schedule(employee, loanID)
	require.NoError(t, err)

	_, err = e.installments.Pay(ctx, borrowerIdentity(4, luisID), schedule[0].ID, dto.PayInstallmentRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	low := decimal.NewFromInt(1)
	_, err = e.installments.Pay(ctx, employee, schedule[0].ID, dto.PayInstallmentRequest{AmountPaid: &low})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = e.installments.Pay(ctx, employee, schedule[0].ID, dto.PayInstallmentRequest{PaidDate: "15/01/2025"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, e.loans.Cancel(ctx, loanID))
	_, err = e.installments.Pay(ctx, employee, schedule[0].ID, dto.PayInstallmentRequest{})
	assert.ErrorIs(t, err, domain.ErrNotPayable, "un préstamo cancelado no admite pagos")
}

func TestMorosidad_DerivadaAlLeer(t *testing.T) {
	e := newEnv(t)
	e.approvedLoan(t, anaID, "300", 3)
	ana := borrowerIdentity(3, anaID)

	pending, err := e.installments.Pending(ana)
	require.NoError(t, err)
	assert.Len(t, pending, 3)
	delinquent, err := e.installments.Delinquent(employee)
	require.NoError(t, err)
	assert.Empty(t, delinquent)

	judgement, err := e.borrowers.Delinquency(employee, anaID)
	require.NoError(t, err)
	assert.Equal(t, "ACTIVO", judgement.Status)

	e.now = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	delinquent, err = e.installments.Delinquent(ana)
	require.NoError(t, err)
	require.Len(t, delinquent, 1)
	assert.Equal(t, "MOROSA", delinquent[0].Status)
	pending, err = e.installments.Pending(employee)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	judgement, err = e.borrowers.Delinquency(employee, anaID)
	require.NoError(t, err)
	assert.Equal(t, "MOROSO", judgement.Status)
	assert.Equal(t, 1, judgement.OverdueUnpaidCount)

	_, err = e.borrowers.Delinquency(borrowerIdentity(4, luisID), anaID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	othersView, err := e.installments.Delinquent(borrowerIdentity(4, luisID))
	require.NoError(t, err)
	assert.Empty(t, othersView)
}

// ── Refinanciaciones ─────────────────────────────────────────────────────────

func TestRefinancing_AprobarReprogramaSaldo(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	ana := borrowerIdentity(3, anaID)
	loanID := e.approvedLoan(t, anaID, "1000", 4)
	schedule, err := e.loans.Schedule(employee, loanID)
	require.NoError(t, err)
	_, err = e.installments.Pay(ctx, ana, schedule[0].ID, dto.PayInstallmentRequest{})
	require.NoError(t, err)

	id, err := e.refis.Create(ctx, ana, dto.CreateRefinancingRequest{LoanID: loanID, NewInstallmentCount: 6, BorrowerComment: " necesito más plazo "})
	require.NoError(t, err)

	_, err = e.refis.Create(ctx, ana, dto.CreateRefinancingRequest{LoanID: loanID, NewInstallmentCount: 8})
	assert.ErrorIs(t, err, domain.ErrConflict, "solo una pendiente por préstamo")

	approved, err := e.refis.Approve(ctx, employee, id, "ok")
	require.NoError(t, err)
	assert.Equal(t, "APROBADA", approved.Status)
	require.NotNil(t, approved.EmployeeComment)
	assert.Equal(t, "ok", *approved.EmployeeComment)
	require.NotNil(t, approved.BorrowerComment)
	assert.Equal(t, "necesito más plazo", *approved.BorrowerComment)

	loan, err := e.loans.Get(ana, loanID)
	require.NoError(t, err)
	assert.Equal(t, "REFINANCIADO", loan.Status)
	assert.Equal(t, 7, loan.InstallmentCount)

	after, err := e.loans.Schedule(ana, loanID)
	require.NoError(t, err)
	require.Len(t, after, 7)
	assert.Equal(t, "PAGADA", after[0].Status)
	assert.Equal(t, 2, after[1].SequenceNumber)
	assert.Equal(t, 7, after[6].SequenceNumber)
	assert.Equal(t, "143.75", after[1].Amount.StringFixed(2))
	assert.Equal(t, "1150.00", sum(after).StringFixed(2), "el total adeudado se conserva")

	_, err = e.refis.Reject(ctx, employee, id, "")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// el préstamo refinanciado sigue admitiendo pagos
	_, err = e.installments.Pay(ctx, ana, after[1].ID, dto.PayInstallmentRequest{})
	assert.NoError(t, err)
}

func TestRefinancing_Validaciones(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	loanID := e.approvedLoan(t, anaID, "100", 2)

	_, err := e.refis.Create(ctx, borrowerIdentity(4, luisID), dto.CreateRefinancingRequest{LoanID: loanID, NewInstallmentCount: 3})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = e.refis.Create(ctx, borrowerIdentity(3, anaID), dto.CreateRefinancingRequest{LoanID: loanID, NewInstallmentCount: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	id, err := e.refis.Create(ctx, borrowerIdentity(3, anaID), dto.CreateRefinancingRequest{LoanID: loanID, NewInstallmentCount: 3})
	require.NoError(t, err)
	rejected, err := e.refis.Reject(ctx, employee, id, "no corresponde")
	require.NoError(t, err)
	assert.Equal(t, "RECHAZADA", rejected.Status)

	loan, err := e.loans.Get(employee, loanID)
	require.NoError(t, err)
	assert.Equal(t, "ACTIVO", loan.Status, "rechazar no toca el préstamo")

	mine, err := e.refis.Mine(borrowerIdentity(3, anaID))
	require.NoError(t, err)
	assert.Len(t, mine, 1)
	pending, err := e.refis.List("PENDIENTE")
	require.NoError(t, err)
	assert.Empty(t, pending)

	require.NoError(t, e.loans.Cancel(ctx, loanID))
	_, err = e.refis.Create(ctx, borrowerIdentity(3, anaID), dto.CreateRefinancingRequest{LoanID: loanID, NewInstallmentCount: 3})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// ── Prestatarios ─────────────────────────────────────────────────────────────

func TestBorrowerCreate_CedulaUnica(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	created, err := e.borrowers.Create(ctx, employee, dto.CreateBorrowerRequest{CI: "9990001", FirstName: "Eva", LastName: "Ríos"})
	require.NoError(t, err)
	assert.Equal(t, "ACTIVO", created.ClientStatus)
	assert.Equal(t, "empleado", created.RegisteredBy)
	assert.Equal(t, "2025-01-15", created.RegisteredAt)

	_, err = e.borrowers.Create(ctx, employee, dto.CreateBorrowerRequest{CI: "9990001", FirstName: "Otra", LastName: "Persona"})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, "Ya existe un prestatario con la cédula 9990001.", err.Error())

	_, err = e.borrowers.Create(ctx, employee, dto.CreateBorrowerRequest{CI: "1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBorrowerUpdateYDelete(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	phone := "79999999"
	updated, err := e.borrowers.Update("5678912", dto.UpdateBorrowerRequest{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, "Luis", updated.FirstName)

	e.approvedLoan(t, anaID, "100", 1)
	err = e.borrowers.Delete(ctx, "4567891")
	assert.ErrorIs(t, err, domain.ErrConflict, "con préstamos no se elimina")

	require.NoError(t, e.borrowers.Delete(ctx, "5678912"))
	_, err = e.borrowers.GetByCI("5678912")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBorrowerMe(t *testing.T) {
	e := newEnv(t)
	me, err := e.borrowers.Me(borrowerIdentity(3, anaID))
	require.NoError(t, err)
	assert.Equal(t, "Ana", me.FirstName)

	_, err = e.borrowers.Me(employee)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBulkLoad_ResumenYLog(t *testing.T) {
	e := newEnv(t)
	csv := strings.Join([]string{
		"ci,nombre,apellido,email",
		"1110001,Marta,Suárez,marta@example.com",
		"1110002,,Sin Nombre",
		"4567891,Ana,Repetida",
		"1110003,Pablo",
		"1110004,Rosa,Lima",
	}, "\n")

	res, err := e.borrowers.BulkLoad(context.Background(), employee, "lote.csv", []byte(csv))
	require.NoError(t, err)
	assert.Equal(t, 5, res.Total)
	assert.Equal(t, 2, res.Accepted)
	assert.Equal(t, 3, res.Rejected)
	require.Len(t, res.Details, 3)
	assert.Equal(t, 3, res.Details[0].Line)
	assert.Equal(t, "El nombre es obligatorio.", res.Details[0].Reason)
	assert.Contains(t, res.Details[1].Reason, "4567891")
	assert.NotZero(t, res.LogID)

	logs, err := e.borrowers.LoadLogs()
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "lote.csv", logs[0].FileName)
	assert.Equal(t, 2, logs[0].Valid)
	assert.Equal(t, "empleado", logs[0].User)

	_, err = e.borrowers.BulkLoad(context.Background(), employee, "vacio.csv", []byte("  \n"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBulkLoad_Latin1(t *testing.T) {
	e := newEnv(t)
	// "Muñoz" en ISO-8859-1
	content := []byte("2220001,Iv\xe1n,Mu\xf1oz\n")
	res, err := e.borrowers.BulkLoad(context.Background(), employee, "latin1.txt", content)
	require.NoError(t, err)
	require.Equal(t, 1, res.Accepted)

	b, err := e.borrowers.GetByCI("2220001")
	require.NoError(t, err)
	assert.Equal(t, "Iván", b.FirstName)
	assert.Equal(t, "Muñoz", b.LastName)
}

// ── Reportes ─────────────────────────────────────────────────────────────────

func TestReports(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	a := e.approvedLoan(t, anaID, "1000", 2)
	e.approvedLoan(t, luisID, "500", 2)
	require.NoError(t, e.loans.Cancel(ctx, a))
	_, err := e.refis.Create(ctx, employee, dto.CreateRefinancingRequest{LoanID: 2, NewInstallmentCount: 4})
	require.NoError(t, err)

	summary, err := e.reports.LoanSummary()
	require.NoError(t, err)
	require.Len(t, summary, 2)
	assert.Equal(t, "ACTIVO", summary[0]["ESTADO"])
	assert.Equal(t, "500.00", summary[0]["TOTAL_PRESTADO"])
	assert.Equal(t, "CANCELADO", summary[1]["ESTADO"])
	assert.Equal(t, 1, summary[1]["CANTIDAD"])

	e.now = time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC)
	morosos, err := e.reports.Delinquents()
	require.NoError(t, err)
	require.Len(t, morosos, 2, "las cuotas de un préstamo cancelado siguen impagas")
	assert.Equal(t, "Ana Pérez", morosos[0]["NOMBRE"])
	assert.Equal(t, 1, morosos[0]["CUOTAS_MOROSAS"])

	refis, err := e.reports.Refinancings()
	require.NoError(t, err)
	require.Len(t, refis, 1)
	assert.Equal(t, "5678912", refis[0]["CI"])
	assert.Equal(t, "PENDIENTE", refis[0]["ESTADO"])
}
