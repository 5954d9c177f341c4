package remote

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/banco-cliente/internal/domain/entity"
)

// Frontera de normalización: todo payload remoto pasa por estas funciones antes de llegar
// a un store. Son totales y puras; campo ausente o de tipo inesperado = valor cero o nil.

// record objeto JSON crudo. Los campos pueden venir en snake_case o en MAYÚSCULAS.
type record map[string]any

func (r record) lookup(key string) (any, bool) {
	if r == nil {
		return nil, false
	}
	if v, ok := r[strings.ToUpper(key)]; ok && v != nil {
		return v, true
	}
	if v, ok := r[key]; ok && v != nil {
		return v, true
	}
	return nil, false
}

func (r record) str(keys ...string) string {
	if p := r.optStr(keys...); p != nil {
		return *p
	}
	return ""
}

func (r record) optStr(keys ...string) *string {
	for _, k := range keys {
		v, ok := r.lookup(k)
		if !ok {
			continue
		}
		var s string
		switch t := v.(type) {
		case string:
			s = t
		case json.Number:
			s = t.String()
		case bool, float64, int, int64:
			s = fmt.Sprint(t)
		default:
			continue
		}
		return &s
	}
	return nil
}

func (r record) int64(key string) int64 {
	if p := r.optInt64(key); p != nil {
		return *p
	}
	return 0
}

func (r record) optInt64(key string) *int64 {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	var n int64
	switch t := v.(type) {
	case json.Number:
		i, err := t.Int64()
		if err != nil {
			f, ferr := t.Float64()
			if ferr != nil {
				return nil
			}
			i = int64(f)
		}
		n = i
	case float64:
		n = int64(t)
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return nil
		}
		n = i
	default:
		return nil
	}
	return &n
}

func (r record) int(key string) int { return int(r.int64(key)) }

func (r record) dec(key string) decimal.Decimal {
	v, ok := r.lookup(key)
	if !ok {
		return decimal.Zero
	}
	var (
		d   decimal.Decimal
		err error
	)
	switch t := v.(type) {
	case json.Number:
		d, err = decimal.NewFromString(t.String())
	case string:
		d, err = decimal.NewFromString(strings.TrimSpace(t))
	case float64:
		d = decimal.NewFromFloat(t)
	default:
		return decimal.Zero
	}
	if err != nil {
		return decimal.Zero
	}
	return d
}

func (r record) optDec(key string) *decimal.Decimal {
	if _, ok := r.lookup(key); !ok {
		return nil
	}
	d := r.dec(key)
	return &d
}

func (r record) optInt(key string) *int {
	p := r.optInt64(key)
	if p == nil {
		return nil
	}
	n := int(*p)
	return &n
}

// flag booleano que puede llegar como bool o como 'S'/'N'.
func (r record) flag(key string) bool {
	v, ok := r.lookup(key)
	if !ok {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		s := strings.ToUpper(strings.TrimSpace(t))
		return s == "S" || s == "SI" || s == "TRUE" || s == "1"
	}
	return false
}

func (r record) obj(key string) record {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	return asRecord(v)
}

func (r record) list(key string) []record {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	return asRecords(v)
}

func asRecord(v any) record {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return record(m)
}

func asRecords(v any) []record {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]record, 0, len(items))
	for _, it := range items {
		if r := asRecord(it); r != nil {
			out = append(out, r)
		}
	}
	return out
}

func mapList[T any](v any, fn func(record) T) []T {
	recs := asRecords(v)
	out := make([]T, 0, len(recs))
	for _, r := range recs {
		out = append(out, fn(r))
	}
	return out
}

// ── Entidades ────────────────────────────────────────────────────────────────

func mapBorrower(r record) entity.Borrower {
	return entity.Borrower{
		ID:           r.int64("id_prestatario"),
		CI:           r.str("ci"),
		FirstName:    r.str("nombre"),
		LastName:     r.str("apellido"),
		Address:      r.str("direccion"),
		Email:        r.str("email"),
		Phone:        r.str("telefono"),
		BirthDate:    r.str("fecha_nacimiento"),
		ClientStatus: r.str("estado_cliente"),
		RegisteredAt: r.str("fecha_registro"),
		RegisteredBy: r.str("usuario_registro"),
		PhotoBase64:  r.optStr("foto_base64", "fotoBase64"),
	}
}

func mapLoan(r record) entity.Loan {
	return entity.Loan{
		ID:               r.int64("id_prestamo"),
		LoanRequestID:    r.int64("id_solicitud_prestamo"),
		BorrowerID:       r.int64("id_prestatario"),
		Principal:        r.dec("total_prestado"),
		InstallmentCount: r.int("nro_cuotas"),
		InterestRate:     r.dec("interes"),
		IssuedAt:         r.str("fecha_emision"),
		DueAt:            r.optStr("fecha_vencimiento"),
		Status:           entity.LoanStatus(r.str("estado")),
	}
}

func mapInstallment(r record) entity.Installment {
	return entity.Installment{
		ID:             r.int64("id_cuota"),
		LoanID:         r.int64("id_prestamo"),
		BorrowerID:     r.int64("id_prestatario"),
		SequenceNumber: r.int("nro_cuota"),
		Amount:         r.dec("monto"),
		DueDate:        r.str("fecha_vencimiento"),
		PaidDate:       r.optStr("fecha_pago"),
		Status:         entity.InstallmentStatus(r.str("estado")),
	}
}

func mapInstallmentSummary(r record) entity.InstallmentSummary {
	return entity.InstallmentSummary{
		LoanID:         r.int64("id_prestamo"),
		SequenceNumber: r.int("nro_cuota"),
		Amount:         r.dec("valor_cuota"),
		Balance:        r.dec("saldo"),
		Status:         entity.InstallmentStatus(r.str("estado")),
		DueDate:        r.str("fecha_vencimiento"),
	}
}

func mapBorrowerLoans(v any) *entity.BorrowerLoans {
	r := asRecord(v)
	out := &entity.BorrowerLoans{
		Loans:        mapList(r.lookupOrNil("prestamos"), mapLoan),
		Installments: mapList(r.lookupOrNil("cuotas"), mapInstallmentSummary),
	}
	if p := r.obj("prestatario"); p != nil {
		out.Borrower = &entity.BorrowerRef{ID: p.int64("id_prestatario"), CI: p.str("ci")}
	}
	return out
}

func (r record) lookupOrNil(key string) any {
	v, _ := r.lookup(key)
	return v
}

func mapPayment(v any) *entity.PaymentResult {
	r := asRecord(v)
	out := &entity.PaymentResult{}
	if c := r.obj("cuota"); c != nil {
		inst := mapInstallment(c)
		out.Installment = &inst
	}
	if p := r.obj("prestamo"); p != nil {
		loan := mapLoan(p)
		out.Loan = &loan
	}
	return out
}

func mapLoanRequest(r record) entity.LoanRequest {
	first, last := r.str("prest_nombre"), r.str("prest_apellido")
	return entity.LoanRequest{
		ID:               r.int64("id_solicitud_prestamo"),
		BorrowerID:       r.int64("id_prestatario"),
		EmployeeID:       r.optInt64("id_empleado"),
		Amount:           r.dec("monto"),
		InstallmentCount: r.int("nro_cuotas"),
		SubmittedAt:      r.str("fecha_envio"),
		DecidedAt:        r.optStr("fecha_respuesta"),
		Status:           entity.LoanRequestStatus(r.str("estado")),
		RejectionReason:  r.optStr("motivo"),
		BorrowerName:     strings.TrimSpace(first + " " + last),
		BorrowerCI:       r.str("prest_ci"),
	}
}

func mapLoanRequestDecision(v any, fallbackID int64) *entity.LoanRequestDecision {
	r := asRecord(v)
	sol := r.obj("solicitud")
	out := &entity.LoanRequestDecision{
		RequestID: sol.int64("id_solicitud"),
		Status:    entity.LoanRequestStatus(sol.str("estado")),
		Reason:    sol.optStr("motivo"),
	}
	if out.RequestID == 0 {
		out.RequestID = fallbackID
	}
	if p := r.obj("prestamo"); p != nil {
		out.LoanID = p.optInt64("id_prestamo")
	}
	return out
}

func mapRefinancing(r record) entity.RefinancingRequest {
	return entity.RefinancingRequest{
		ID:                  r.int64("id_solicitud_refinanciacion"),
		LoanID:              r.int64("id_prestamo"),
		BorrowerID:          r.int64("id_prestatario"),
		NewInstallmentCount: r.int("nro_cuotas"),
		RequestedAt:         r.str("fecha_realizacion"),
		DecidedAt:           r.optStr("fecha_decision"),
		Status:              entity.RefinancingStatus(r.str("estado")),
		EmployeeComment:     r.optStr("comentario_empleado"),
		BorrowerComment:     r.optStr("comentario_cliente"),
		DeciderID:           r.optInt64("id_empleado_decisor"),
	}
}

func mapDelinquency(v any, borrowerID int64) *entity.Delinquency {
	r := asRecord(v)
	out := &entity.Delinquency{
		BorrowerID:         r.int64("id_prestatario"),
		Status:             entity.DelinquencyStatus(r.str("estado")),
		OverdueUnpaidCount: r.int("cuotas_vencidas_impagas"),
	}
	if out.BorrowerID == 0 {
		out.BorrowerID = borrowerID
	}
	return out
}

func mapBulkLoadDetail(r record) entity.BulkLoadDetail {
	return entity.BulkLoadDetail{Line: r.int("linea"), Reason: r.str("motivo")}
}

func mapBulkLoad(v any) *entity.BulkLoadResult {
	r := asRecord(v)
	return &entity.BulkLoadResult{
		Total:    r.int("total"),
		Accepted: r.int("aceptados"),
		Rejected: r.int("rechazados"),
		Details:  mapList(r.lookupOrNil("detalles"), mapBulkLoadDetail),
		LogID:    r.int64("id_log_pk"),
	}
}

func mapLoadLog(r record) entity.LoadLog {
	return entity.LoadLog{
		ID:       r.int64("id_log_pk"),
		FileName: r.str("nombre_archivo"),
		LoadedAt: r.str("fecha_carga"),
		User:     r.str("usuario"),
		Valid:    r.int("registros_validos"),
		Rejected: r.int("registros_rechazados"),
		Details:  mapList(r.lookupOrNil("detalles"), mapBulkLoadDetail),
	}
}

func mapReportRow(r record) entity.ReportRow {
	row := make(entity.ReportRow, len(r))
	for k, v := range r {
		row[k] = v
	}
	return row
}

func mapEmployee(r record) entity.Employee {
	return entity.Employee{
		ID:        r.int64("id_empleado"),
		FirstName: r.str("nombre"),
		LastName:  r.str("apellido"),
		Position:  r.optStr("cargo"),
		Salary:    r.optDec("salario"),
		Age:       r.optInt("edad"),
	}
}

func mapRegistration(v any) *entity.Registration {
	u := asRecord(v).obj("user")
	return &entity.Registration{
		Username:   u.str("username"),
		Role:       entity.Role(u.str("role")),
		BorrowerID: u.optInt64("id_prestatario"),
		EmployeeID: u.optInt64("id_empleado"),
	}
}

func mapAuditLog(r record) entity.AuditLog {
	id := r.int64("id_audit")
	if id == 0 {
		id = r.int64("id_audit_pk")
	}
	return entity.AuditLog{
		ID:              id,
		User:            r.str("usuario"),
		IP:              r.str("ip"),
		Domain:          r.str("dominio"),
		EnteredAt:       r.str("fecha_entrada"),
		ExitedAt:        r.optStr("fecha_salida"),
		Table:           r.str("tabla_afectada"),
		Operation:       r.str("operacion"),
		SessionDuration: r.optStr("duracion_sesion"),
		Description:     r.str("descripcion"),
	}
}

func mapNotice(r record) entity.Notice {
	return entity.Notice{
		ID:            r.int64("id_notificacion"),
		BorrowerID:    r.optInt64("id_prestatario"),
		InstallmentID: r.optInt64("id_cuota"),
		LoanID:        r.optInt64("id_prestamo"),
		Kind:          entity.NoticeKind(r.str("tipo")),
		Message:       r.str("mensaje"),
		Sent:          r.flag("enviado"),
		CreatedAt:     r.str("fecha_creacion"),
	}
}

// createdID lee el id generado de un resultado de alta.
func createdID(v any, key string) int64 {
	return asRecord(v).int64(key)
}
