package remote

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/banco-cliente/internal/domain/entity"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&v))
	return v
}

func TestMapLoan_MayusculasYSnakeCase(t *testing.T) {
	upper := decode(t, `{"ID_PRESTAMO":10,"ID_PRESTATARIO":4,"TOTAL_PRESTADO":1000000.10,"NRO_CUOTAS":12,"INTERES":0.05,"FECHA_EMISION":"2024-01-01","ESTADO":"ACTIVO"}`)
	snake := decode(t, `{"id_prestamo":10,"id_prestatario":4,"total_prestado":"1000000.10","nro_cuotas":12,"interes":0.05,"fecha_emision":"2024-01-01","estado":"ACTIVO"}`)

	a, b := mapLoan(asRecord(upper)), mapLoan(asRecord(snake))
	assert.Equal(t, int64(10), a.ID)
	assert.Equal(t, entity.LoanActive, a.Status)
	assert.Equal(t, "1000000.1", a.Principal.String(), "los montos no pierden precisión")
	assert.True(t, a.Principal.Equal(b.Principal))
	assert.Equal(t, a.InstallmentCount, b.InstallmentCount)
	assert.Nil(t, a.DueAt, "campo ausente = nil")
}

func TestMapInstallment_CamposFaltantesSonCero(t *testing.T) {
	inst := mapInstallment(asRecord(decode(t, `{"id_cuota":"7","estado":null}`)))
	assert.Equal(t, int64(7), inst.ID, "ids como string también se aceptan")
	assert.Equal(t, entity.InstallmentStatus(""), inst.Status)
	assert.True(t, inst.Amount.IsZero())
	assert.Nil(t, inst.PaidDate)
}

func TestMapLoanRequest_NombrePrestatario(t *testing.T) {
	r := mapLoanRequest(asRecord(decode(t, `{"id_solicitud_prestamo":3,"prest_nombre":"Ana","PREST_APELLIDO":"Paz","prest_ci":1234567,"motivo":"Ingresos insuficientes","estado":"RECHAZADA"}`)))
	assert.Equal(t, "Ana Paz", r.BorrowerName)
	assert.Equal(t, "1234567", r.BorrowerCI)
	require.NotNil(t, r.RejectionReason)
	assert.Equal(t, entity.LoanRequestRejected, r.Status)
}

func TestMapBorrowerLoans(t *testing.T) {
	out := mapBorrowerLoans(decode(t, `{"prestatario":{"id_prestatario":4,"ci":"555"},"prestamos":[{"id_prestamo":1,"estado":"ACTIVO"}],"cuotas":[{"id_prestamo":1,"nro_cuota":1,"valor_cuota":100,"saldo":1100}]}`))
	require.NotNil(t, out.Borrower)
	assert.Equal(t, "555", out.Borrower.CI)
	require.Len(t, out.Loans, 1)
	require.Len(t, out.Installments, 1)
	assert.Equal(t, "1100", out.Installments[0].Balance.String())
}

func TestMapList_PayloadNoListaEsVacio(t *testing.T) {
	assert.Empty(t, mapList(decode(t, `{"x":1}`), mapLoan))
	assert.Empty(t, mapList(nil, mapLoan))
}

func TestMapLoanRequestDecision_IDDeRespaldo(t *testing.T) {
	d := mapLoanRequestDecision(decode(t, `{"solicitud":{"estado":"ACEPTADA"},"prestamo":{"id_prestamo":99}}`), 5)
	assert.Equal(t, int64(5), d.RequestID)
	require.NotNil(t, d.LoanID)
	assert.Equal(t, int64(99), *d.LoanID)
}

func TestParseEnvelope(t *testing.T) {
	env, err := parseEnvelope([]byte(`{"ok":true,"result":[1]}`))
	require.NoError(t, err)
	assert.True(t, env.ok)
	assert.JSONEq(t, `[1]`, string(env.payload))

	env, err = parseEnvelope([]byte(`{"success":false,"data":null,"message":"Credenciales inválidas"}`))
	require.NoError(t, err)
	assert.False(t, env.ok)
	assert.Nil(t, env.payload)
	assert.Equal(t, "Credenciales inválidas", env.message)

	env, err = parseEnvelope([]byte(`{"error":{"message":"anidado"},"detail":"PAK"}`))
	assert.ErrorIs(t, err, errUnknownEnvelope)
	assert.Equal(t, "anidado", env.errText, "los campos de error se leen aunque la variante no se reconozca")
	assert.Equal(t, "PAK", env.detail)

	_, err = parseEnvelope([]byte(`<html>`))
	assert.Error(t, err)
}

func TestMapEmployee_OpcionalesAusentes(t *testing.T) {
	full := mapEmployee(asRecord(decode(t, `{"ID_EMPLEADO":3,"NOMBRE":"Eva","APELLIDO":"Paz","CARGO":"Cajera","SALARIO":3500.50,"EDAD":30}`)))
	assert.Equal(t, int64(3), full.ID)
	require.NotNil(t, full.Salary)
	assert.Equal(t, "3500.5", full.Salary.String())
	require.NotNil(t, full.Age)
	assert.Equal(t, 30, *full.Age)
	assert.Equal(t, "Eva Paz", full.FullName())

	bare := mapEmployee(asRecord(decode(t, `{"id_empleado":4,"nombre":"Leo","apellido":"Ríos","cargo":null}`)))
	assert.Nil(t, bare.Position)
	assert.Nil(t, bare.Salary)
	assert.Nil(t, bare.Age)
}

func TestMapNotice_EnviadoComoLetra(t *testing.T) {
	n := mapNotice(asRecord(decode(t, `{"ID_NOTIFICACION":1,"ID_PRESTATARIO":2,"ID_CUOTA":7,"TIPO":"MORA","MENSAJE":"m","ENVIADO":"S"}`)))
	assert.True(t, n.Sent)
	assert.Equal(t, entity.NoticeDelinquency, n.Kind)
	require.NotNil(t, n.InstallmentID)
	assert.Equal(t, int64(7), *n.InstallmentID)
	assert.Nil(t, n.LoanID)

	assert.False(t, mapNotice(asRecord(decode(t, `{"enviado":"N"}`))).Sent)
	assert.True(t, mapNotice(asRecord(decode(t, `{"enviado":true}`))).Sent)
}

func TestMapAuditLog_IDConSufijoPK(t *testing.T) {
	a := mapAuditLog(asRecord(decode(t, `{"ID_AUDIT_PK":9,"USUARIO":"empleado","FECHA_ENTRADA":"2025-01-15 10:00:00","OPERACION":"LOGIN"}`)))
	assert.Equal(t, int64(9), a.ID)
	assert.True(t, a.IsOpen())
	assert.Equal(t, "LOGIN", a.Operation)
}

func TestMapRegistration(t *testing.T) {
	r := mapRegistration(decode(t, `{"user":{"username":"eva","role":"EMPLEADO","id_empleado":5},"empleado":{"id_empleado":5}}`))
	assert.Equal(t, "eva", r.Username)
	assert.Equal(t, entity.RoleEmployee, r.Role)
	require.NotNil(t, r.EmployeeID)
	assert.Equal(t, int64(5), *r.EmployeeID)
	assert.Nil(t, r.BorrowerID)
}
