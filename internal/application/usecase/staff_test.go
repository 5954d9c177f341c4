package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/domain"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/internal/domain/repository"
)

func ref[T any](v T) *T { return &v }

// ── Empleados ────────────────────────────────────────────────────────────────

func TestEmployee_ABM(t *testing.T) {
	e := newEnv(t)
	salary := decimal.RequireFromString("3500.50")
	created, err := e.employees.Create(dto.CreateEmployeeRequest{
		FirstName: " Eva ", LastName: "Paz", Position: ref("Cajera"), Salary: &salary, Age: ref(30),
	})
	require.NoError(t, err)
	assert.Equal(t, "Eva", created.FirstName)
	assert.Equal(t, "3500.5", created.Salary.String())

	updated, err := e.employees.Update(created.ID, dto.UpdateEmployeeRequest{Position: ref("Supervisora")})
	require.NoError(t, err)
	assert.Equal(t, "Supervisora", *updated.Position)
	assert.Equal(t, "Paz", updated.LastName)

	list, err := e.employees.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, e.employees.Delete(created.ID))
	_, err = e.employees.Get(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, e.employees.Delete(created.ID), domain.ErrNotFound)
}

func TestEmployee_Validaciones(t *testing.T) {
	e := newEnv(t)
	_, err := e.employees.Create(dto.CreateEmployeeRequest{LastName: "Paz"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = e.employees.Create(dto.CreateEmployeeRequest{FirstName: "Eva", LastName: "Paz", Age: ref(12)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	negative := decimal.NewFromInt(-1)
	_, err = e.employees.Create(dto.CreateEmployeeRequest{FirstName: "Eva", LastName: "Paz", Salary: &negative})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── Autorregistro ────────────────────────────────────────────────────────────

func TestRegisterBorrower_CreaFichaYUsuario(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	res, err := e.registration.RegisterBorrower(ctx, dto.RegisterBorrowerRequest{
		Username: "marta", Password: "clave",
		Borrower: dto.CreateBorrowerRequest{CI: "7778889", FirstName: "Marta", LastName: "Rojas"},
	})
	require.NoError(t, err)
	assert.Equal(t, "PRESTATARIO", res.User.Role)
	require.NotNil(t, res.Borrower)
	require.NotNil(t, res.User.BorrowerID)
	assert.Equal(t, res.Borrower.ID, *res.User.BorrowerID)
	assert.Equal(t, "marta", res.Borrower.RegisteredBy)

	_, err = e.login.Login(dto.LoginRequest{Username: "marta", Password: "clave"})
	assert.NoError(t, err)

	// usuario repetido: no deja ficha huérfana
	_, err = e.registration.RegisterBorrower(ctx, dto.RegisterBorrowerRequest{
		Username: "marta", Password: "otra",
		Borrower: dto.CreateBorrowerRequest{CI: "1112223", FirstName: "M", LastName: "R"},
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
	_, err = e.borrowers.GetByCI("1112223")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = e.registration.RegisterBorrower(ctx, dto.RegisterBorrowerRequest{
		Username: "otra", Password: "clave",
		Borrower: dto.CreateBorrowerRequest{CI: "4567891", FirstName: "A", LastName: "P"},
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRegisterEmployee_CreaFichaYUsuario(t *testing.T) {
	e := newEnv(t)
	res, err := e.registration.RegisterEmployee(context.Background(), dto.RegisterEmployeeRequest{
		Username: "eva", Password: "clave",
		Employee: dto.CreateEmployeeRequest{FirstName: "Eva", LastName: "Paz", Position: ref("Créditos")},
	})
	require.NoError(t, err)
	assert.Equal(t, "EMPLEADO", res.User.Role)
	require.NotNil(t, res.Employee)
	require.NotNil(t, res.User.EmployeeID)
	assert.Equal(t, res.Employee.ID, *res.User.EmployeeID)

	_, err = e.registration.RegisterEmployee(context.Background(), dto.RegisterEmployeeRequest{
		Username: "", Password: "clave",
		Employee: dto.CreateEmployeeRequest{FirstName: "Eva", LastName: "Paz"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := e.employees.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

// ── Auditoría ────────────────────────────────────────────────────────────────

func TestAudit_RegistrarListarYFinalizar(t *testing.T) {
	e := newEnv(t)
	first, err := e.audits.Register(dto.RegisterAuditRequest{User: "empleado", Operation: "login", Domain: "banco.local"})
	require.NoError(t, err)
	_, err = e.audits.Register(dto.RegisterAuditRequest{User: "admin", Operation: "UPDATE", Table: "prestamos"})
	require.NoError(t, err)

	logs, err := e.audits.Logs(repository.AuditFilter{})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "admin", logs[0].User, "más recientes primero")
	assert.Equal(t, "LOGIN", logs[1].Operation)
	assert.Equal(t, "2025-01-15 10:00:00", logs[1].EnteredAt)

	logs, err = e.audits.Logs(repository.AuditFilter{Operation: "login"})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, first.ID, logs[0].ID)

	e.now = e.now.Add(1*time.Hour + 2*time.Minute + 3*time.Second)
	closed, err := e.audits.Finish(first.ID)
	require.NoError(t, err)
	require.NotNil(t, closed.SessionDuration)
	assert.Equal(t, "01:02:03", *closed.SessionDuration)
	assert.Equal(t, "2025-01-15 11:02:03", *closed.ExitedAt)

	_, err = e.audits.Finish(first.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	_, err = e.audits.Finish(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = e.audits.Register(dto.RegisterAuditRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── Avisos ───────────────────────────────────────────────────────────────────

func TestNotices_GeneracionSinDuplicados(t *testing.T) {
	e := newEnv(t)
	loanID := e.approvedLoan(t, anaID, "300", 3)

	e.now = time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	batch, err := e.notices.GeneratePaymentReminders()
	require.NoError(t, err)
	assert.Equal(t, 1, batch.Count, "solo la cuota que vence el 2025-02-15")
	batch, err = e.notices.GeneratePaymentReminders()
	require.NoError(t, err)
	assert.Zero(t, batch.Count)

	e.now = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	batch, err = e.notices.GenerateDelinquencyNotices()
	require.NoError(t, err)
	assert.Equal(t, "MORA", batch.Kind)
	assert.Equal(t, 1, batch.Count)

	require.NoError(t, e.loans.Cancel(context.Background(), loanID))
	batch, err = e.notices.GenerateCancellationNotices()
	require.NoError(t, err)
	assert.Equal(t, 1, batch.Count)

	all, err := e.notices.History(employee)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "PAGO", all[0].Kind)
	assert.Contains(t, all[0].Message, "2025-02-15")
	assert.Equal(t, "CANCELACION", all[2].Kind)
}

func TestNotices_EnviarYVisibilidad(t *testing.T) {
	e := newEnv(t)
	e.approvedLoan(t, anaID, "300", 3)
	e.now = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err := e.notices.GenerateDelinquencyNotices()
	require.NoError(t, err)

	mine, err := e.notices.Pending(borrowerIdentity(3, anaID))
	require.NoError(t, err)
	assert.Len(t, mine, 1)
	others, err := e.notices.Pending(borrowerIdentity(4, luisID))
	require.NoError(t, err)
	assert.Empty(t, others)
	_, err = e.notices.Pending(entity.Identity{Role: entity.RoleBorrower})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	sent, err := e.notices.Send("MORA")
	require.NoError(t, err)
	assert.Equal(t, 1, sent.Count)
	pending, err := e.notices.Pending(employee)
	require.NoError(t, err)
	assert.Empty(t, pending)
	history, err := e.notices.History(borrowerIdentity(3, anaID))
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.True(t, history[0].Sent)

	_, err = e.notices.Send("SMS")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
