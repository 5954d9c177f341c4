package cli

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/application/lifecycle"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
)

// ── Notificaciones y diagnóstico ─────────────────────────────────────────────

func (a *App) dismiss(context.Context, []string) error {
	n, ok := a.Queue.Dismiss()
	if !ok {
		a.printf("No hay notificaciones.\n")
		return nil
	}
	a.printf("Descartada: %s\n", n.Message)
	return nil
}

func (a *App) diagnostics(context.Context, []string) error {
	if a.Metrics == nil {
		a.printf("Métricas no disponibles.\n")
		return nil
	}
	families, err := a.Metrics.Gather()
	if err != nil {
		return err
	}
	var rows [][]string
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "banco_cliente_") {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			rows = append(rows, []string{mf.GetName(), strings.Join(labels, ","), strconv.FormatFloat(m.GetCounter().GetValue(), 'f', 0, 64)})
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i][1] < rows[j][1] })
	a.table([]string{"MÉTRICA", "ETIQUETAS", "VALOR"}, rows)
	return nil
}

// ── Autorregistro ────────────────────────────────────────────────────────────

func credentials(args []string) lifecycle.Credentials {
	return lifecycle.Credentials{Secret: args[0], Username: args[1], Password: args[2], Confirm: args[3]}
}

func (a *App) signupBorrower(ctx context.Context, args []string) error {
	in := dto.CreateBorrowerRequest{CI: args[4], FirstName: args[5], LastName: args[6]}
	if len(args) > 7 {
		in.Email = args[7]
	}
	if len(args) > 8 {
		in.Phone = args[8]
	}
	reg, err := a.signup.RegisterBorrower(ctx, credentials(args), in)
	if err != nil {
		return err
	}
	a.printRegistration(reg)
	return nil
}

func (a *App) signupEmployee(ctx context.Context, args []string) error {
	in := dto.CreateEmployeeRequest{FirstName: args[4], LastName: args[5]}
	if len(args) > 6 {
		cargo := rest(args, 6)
		in.Position = &cargo
	}
	reg, err := a.signup.RegisterEmployee(ctx, credentials(args), in)
	if err != nil {
		return err
	}
	a.printRegistration(reg)
	return nil
}

func (a *App) printRegistration(reg *entity.Registration) {
	if reg == nil {
		return
	}
	a.printf("Usuario %s creado con rol %s. Inicie sesión con \"login\".\n", reg.Username, reg.Role)
}

// ── Empleados ────────────────────────────────────────────────────────────────

func (a *App) employees(ctx context.Context, _ []string) error {
	if err := a.Employees.FetchAll(ctx); err != nil {
		return err
	}
	items := a.Employees.Items()
	rows := make([][]string, 0, len(items))
	for _, e := range items {
		salary, age := "-", "-"
		if e.Salary != nil {
			salary = money(*e.Salary)
		}
		if e.Age != nil {
			age = strconv.Itoa(*e.Age)
		}
		rows = append(rows, []string{strconv.FormatInt(e.ID, 10), e.FullName(), orDash(e.Position), salary, age})
	}
	a.table([]string{"ID", "NOMBRE", "CARGO", "SALARIO", "EDAD"}, rows)
	return nil
}

func (a *App) createEmployee(ctx context.Context, args []string) error {
	in := dto.CreateEmployeeRequest{FirstName: args[0], LastName: args[1]}
	if len(args) > 2 {
		in.Position = &args[2]
	}
	if len(args) > 3 {
		d, err := decimal.NewFromString(args[3])
		if err != nil {
			return errUsage
		}
		in.Salary = &d
	}
	if len(args) > 4 {
		n, err := strconv.Atoi(args[4])
		if err != nil {
			return errUsage
		}
		in.Age = &n
	}
	if err := a.Employees.Create(ctx, in); err != nil {
		return err
	}
	a.Queue.Enqueue("Empleado registrado correctamente.", entity.SeveritySuccess)
	return nil
}

func (a *App) updateEmployee(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	value := rest(args, 2)
	var in dto.UpdateEmployeeRequest
	switch args[1] {
	case "nombre":
		in.FirstName = &value
	case "apellido":
		in.LastName = &value
	case "cargo":
		in.Position = &value
	case "salario":
		d, err := decimal.NewFromString(value)
		if err != nil {
			return errUsage
		}
		in.Salary = &d
	case "edad":
		n, err := strconv.Atoi(value)
		if err != nil {
			return errUsage
		}
		in.Age = &n
	default:
		return errUsage
	}
	if err := a.Employees.Update(ctx, id, in); err != nil {
		return err
	}
	a.Queue.Enqueue("Empleado actualizado.", entity.SeveritySuccess)
	return nil
}

func (a *App) removeEmployee(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := a.Employees.Remove(ctx, id); err != nil {
		return err
	}
	a.Queue.Enqueue("Empleado eliminado.", entity.SeveritySuccess)
	return nil
}

// ── Auditoría ────────────────────────────────────────────────────────────────

func (a *App) auditLogs(ctx context.Context, args []string) error {
	var q dto.AuditQuery
	if len(args) > 0 {
		q.User = args[0]
	}
	if len(args) > 1 {
		q.Operation = strings.ToUpper(args[1])
	}
	if err := a.Audits.Fetch(ctx, q); err != nil {
		return err
	}
	a.auditTable(a.Audits.Items())
	return nil
}

func (a *App) registerAudit(ctx context.Context, args []string) error {
	in := dto.RegisterAuditRequest{Operation: strings.ToUpper(args[0]), Description: rest(args, 2)}
	if id := a.Session.Identity(); id != nil {
		in.User = id.Username
	}
	if len(args) > 1 {
		in.Table = args[1]
	}
	id, err := a.Audits.Register(ctx, in)
	if err != nil {
		return err
	}
	a.printf("Registro de auditoría #%d\n", id)
	return nil
}

func (a *App) finishAudit(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := a.Audits.Finish(ctx, id); err != nil {
		return err
	}
	a.Queue.Enqueue("Sesión auditada finalizada.", entity.SeveritySuccess)
	a.auditTable(a.Audits.Items())
	return nil
}

func (a *App) auditTable(items []entity.AuditLog) {
	rows := make([][]string, 0, len(items))
	for _, l := range items {
		rows = append(rows, []string{
			strconv.FormatInt(l.ID, 10),
			l.User,
			l.IP,
			l.Operation,
			l.Table,
			l.EnteredAt,
			orDash(l.ExitedAt),
			orDash(l.SessionDuration),
		})
	}
	a.table([]string{"ID", "USUARIO", "IP", "OPERACIÓN", "TABLA", "ENTRADA", "SALIDA", "DURACIÓN"}, rows)
}

// ── Avisos ───────────────────────────────────────────────────────────────────

func parseNoticeKind(raw string) (entity.NoticeKind, error) {
	k := entity.NoticeKind(strings.ToUpper(raw))
	if !k.Valid() {
		return "", errUsage
	}
	return k, nil
}

func (a *App) notices(ctx context.Context, _ []string) error {
	if err := a.Notices.FetchAll(ctx); err != nil {
		return err
	}
	a.printf("Pendientes:\n")
	a.noticeTable(a.Notices.Pending())
	a.printf("\nHistorial:\n")
	a.noticeTable(a.Notices.History())
	return nil
}

func (a *App) generateNotices(ctx context.Context, args []string) error {
	kind, err := parseNoticeKind(args[0])
	if err != nil {
		return err
	}
	n, err := a.Notices.Generate(ctx, kind)
	if err != nil {
		return err
	}
	a.printf("Avisos %s generados: %d\n", kind, n)
	return nil
}

func (a *App) sendNotices(ctx context.Context, args []string) error {
	kind, err := parseNoticeKind(args[0])
	if err != nil {
		return err
	}
	n, err := a.Notices.Send(ctx, kind)
	if err != nil {
		return err
	}
	a.printf("Avisos %s enviados: %d\n", kind, n)
	return nil
}

func (a *App) noticeTable(items []entity.Notice) {
	id := func(p *int64) string {
		if p == nil {
			return "-"
		}
		return strconv.FormatInt(*p, 10)
	}
	rows := make([][]string, 0, len(items))
	for _, n := range items {
		sent := "N"
		if n.Sent {
			sent = "S"
		}
		rows = append(rows, []string{strconv.FormatInt(n.ID, 10), string(n.Kind), id(n.LoanID), id(n.InstallmentID), n.Message, sent, n.CreatedAt})
	}
	a.table([]string{"ID", "TIPO", "PRÉSTAMO", "CUOTA", "MENSAJE", "ENVIADO", "FECHA"}, rows)
}
