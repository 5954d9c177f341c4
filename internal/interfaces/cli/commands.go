package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/application/guard"
	"github.com/jhoicas/banco-cliente/internal/application/store"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
)

// command comando del intérprete. path nil = sin guarda (login, logout, ayuda).
type command struct {
	name    string
	usage   string
	help    string
	minArgs int
	quit    bool
	path    func(args []string) string
	run     func(ctx context.Context, args []string) error
}

func fixed(p string) func([]string) string { return func([]string) string { return p } }

func withArg(prefix string) func([]string) string {
	return func(args []string) string { return prefix + args[0] }
}

func (a *App) add(c *command) {
	a.commands[c.name] = c
	a.order = append(a.order, c)
}

func (a *App) register() {
	// ── Sesión ───────────────────────────────────────────────────────────────
	a.add(&command{name: "ayuda", usage: "ayuda", help: "Lista los comandos.", run: a.help})
	a.add(&command{name: "login", usage: "login <usuario> <clave>", help: "Inicia sesión.", minArgs: 2, run: a.login})
	a.add(&command{name: "logout", usage: "logout", help: "Cierra la sesión.", run: a.logout})
	a.add(&command{name: "perfil", usage: "perfil", help: "Datos de la sesión y del prestatario.", path: fixed("/perfil"), run: a.profile})
	a.add(&command{name: "tema", usage: "tema", help: "Alterna tema claro/oscuro.", path: fixed("/perfil"), run: a.toggleTheme})
	a.add(&command{name: "descartar", usage: "descartar", help: "Descarta la notificación visible.", run: a.dismiss})
	a.add(&command{name: "diagnostico", usage: "diagnostico", help: "Contadores de fallas remotas.", run: a.diagnostics})
	a.add(&command{name: "registro-prestatario", usage: "registro-prestatario <palabra> <usuario> <clave> <confirmación> <ci> <nombre> <apellido> [email] [telefono]", help: "Autorregistro de prestatario.", minArgs: 7, path: fixed("/registro"), run: a.signupBorrower})
	a.add(&command{name: "registro-empleado", usage: "registro-empleado <palabra> <usuario> <clave> <confirmación> <nombre> <apellido> [cargo]", help: "Autorregistro de empleado.", minArgs: 6, path: fixed("/registro"), run: a.signupEmployee})

	// ── Prestatarios (empleados) ─────────────────────────────────────────────
	a.add(&command{name: "prestatarios", usage: "prestatarios", help: "Prestatarios con su morosidad.", path: fixed("/prestatarios"), run: a.borrowers})
	a.add(&command{name: "prestatario-nuevo", usage: "prestatario-nuevo <ci> <nombre> <apellido> [email] [telefono]", help: "Registra un prestatario.", minArgs: 3, path: fixed("/prestatarios/nuevo"), run: a.createBorrower})
	a.add(&command{name: "prestatario-baja", usage: "prestatario-baja <ci>", help: "Elimina un prestatario sin préstamos.", minArgs: 1, path: fixed("/prestatarios"), run: a.removeBorrower})
	a.add(&command{name: "carga-masiva", usage: "carga-masiva <archivo.csv|txt>", help: "Carga prestatarios desde archivo.", minArgs: 1, path: fixed("/prestatarios"), run: a.bulkLoad})
	a.add(&command{name: "logs-carga", usage: "logs-carga", help: "Historial de cargas masivas.", path: fixed("/prestatarios"), run: a.loadLogs})

	// ── Préstamos y cuotas ───────────────────────────────────────────────────
	a.add(&command{name: "prestamos", usage: "prestamos [ci]", help: "Préstamos (todos, de un prestatario o los propios).", path: fixed("/prestamos"), run: a.loans})
	a.add(&command{name: "prestamo", usage: "prestamo <id>", help: "Detalle de un préstamo con sus cuotas.", minArgs: 1, path: withArg("/prestamos/"), run: a.loanDetail})
	a.add(&command{name: "prestamo-crear", usage: "prestamo-crear <id_prestatario> <monto> <cuotas> [BAJA|MEDIA|ALTA]", help: "Crea un préstamo directo.", minArgs: 3, path: fixed("/prestamos/gestion"), run: a.createLoan})
	a.add(&command{name: "prestamo-cancelar", usage: "prestamo-cancelar <id>", help: "Cancela un préstamo.", minArgs: 1, path: fixed("/prestamos/gestion"), run: a.cancelLoan})
	a.add(&command{name: "cuotas", usage: "cuotas <id_prestamo>", help: "Cronograma completo de un préstamo.", minArgs: 1, path: withArg("/cuotas/"), run: a.schedule})
	a.add(&command{name: "cuotas-pendientes", usage: "cuotas-pendientes", help: "Cuotas pendientes y morosas.", path: fixed("/cuotas/pendientes"), run: a.pendingInstallments})
	a.add(&command{name: "pagar", usage: "pagar <id_prestamo> <id_cuota> [monto] [AAAA-MM-DD]", help: "Registra el pago de una cuota.", minArgs: 2, path: withArg("/prestamos/"), run: a.pay})
	a.add(&command{name: "refinanciar", usage: "refinanciar <id_prestamo> <nuevas_cuotas> [comentario]", help: "Solicita refinanciación.", minArgs: 2, path: withArg("/prestamos/"), run: a.refinance})

	// ── Solicitudes ──────────────────────────────────────────────────────────
	a.add(&command{name: "solicitudes", usage: "solicitudes", help: "Mis solicitudes de préstamo.", path: fixed("/solicitudes"), run: a.myRequests})
	a.add(&command{name: "solicitar", usage: "solicitar <monto> <cuotas>", help: "Envía una solicitud de préstamo.", minArgs: 2, path: fixed("/solicitudes/nueva"), run: a.submitRequest})
	a.add(&command{name: "bandeja", usage: "bandeja", help: "Solicitudes pendientes de decisión.", path: fixed("/solicitudes/admin"), run: a.inbox})
	a.add(&command{name: "aprobar", usage: "aprobar <id_solicitud>", help: "Aprueba una solicitud de préstamo.", minArgs: 1, path: fixed("/solicitudes/admin"), run: a.approve})
	a.add(&command{name: "rechazar", usage: "rechazar <id_solicitud> [motivo]", help: "Rechaza una solicitud de préstamo.", minArgs: 1, path: fixed("/solicitudes/admin"), run: a.reject})
	a.add(&command{name: "refinanciaciones", usage: "refinanciaciones", help: "Mis solicitudes de refinanciación.", path: fixed("/refinanciaciones"), run: a.myRefinancings})
	a.add(&command{name: "refi-aprobar", usage: "refi-aprobar <id> [comentario]", help: "Aprueba una refinanciación.", minArgs: 1, path: fixed("/refinanciaciones/admin"), run: a.approveRefinancing})
	a.add(&command{name: "refi-rechazar", usage: "refi-rechazar <id> [comentario]", help: "Rechaza una refinanciación.", minArgs: 1, path: fixed("/refinanciaciones/admin"), run: a.rejectRefinancing})

	// ── Empleados (administradores) ──────────────────────────────────────────
	a.add(&command{name: "empleados", usage: "empleados", help: "Listado de empleados.", path: fixed("/empleados"), run: a.employees})
	a.add(&command{name: "empleado-nuevo", usage: "empleado-nuevo <nombre> <apellido> [cargo] [salario] [edad]", help: "Registra un empleado.", minArgs: 2, path: fixed("/empleados/nuevo"), run: a.createEmployee})
	a.add(&command{name: "empleado-editar", usage: "empleado-editar <id> <nombre|apellido|cargo|salario|edad> <valor>", help: "Modifica un campo de un empleado.", minArgs: 3, path: fixed("/empleados"), run: a.updateEmployee})
	a.add(&command{name: "empleado-baja", usage: "empleado-baja <id>", help: "Elimina un empleado.", minArgs: 1, path: fixed("/empleados"), run: a.removeEmployee})

	// ── Auditoría y avisos ───────────────────────────────────────────────────
	a.add(&command{name: "auditoria", usage: "auditoria [usuario] [operacion]", help: "Registros de auditoría.", path: fixed("/auditoria"), run: a.auditLogs})
	a.add(&command{name: "auditoria-registrar", usage: "auditoria-registrar <operacion> [tabla] [descripcion]", help: "Registra un evento a nombre de la sesión.", minArgs: 1, path: fixed("/auditoria"), run: a.registerAudit})
	a.add(&command{name: "auditoria-finalizar", usage: "auditoria-finalizar <id>", help: "Cierra una sesión auditada.", minArgs: 1, path: fixed("/auditoria"), run: a.finishAudit})
	a.add(&command{name: "notificaciones", usage: "notificaciones", help: "Avisos pendientes e historial.", path: fixed("/notificaciones"), run: a.notices})
	a.add(&command{name: "notificaciones-generar", usage: "notificaciones-generar <PAGO|MORA|CANCELACION>", help: "Genera los avisos que falten.", minArgs: 1, path: fixed("/notificaciones/gestion"), run: a.generateNotices})
	a.add(&command{name: "notificaciones-enviar", usage: "notificaciones-enviar <PAGO|MORA|CANCELACION>", help: "Marca como enviados los avisos pendientes.", minArgs: 1, path: fixed("/notificaciones/gestion"), run: a.sendNotices})

	// ── Reportes ─────────────────────────────────────────────────────────────
	a.add(&command{name: "reporte", usage: "reporte <resumen-prestamos|morosos|refinanciaciones>", help: "Reportes de gestión.", minArgs: 1, path: withArg("/reportes/"), run: a.reportRows})

	a.add(&command{name: "salir", usage: "salir", help: "Termina el cliente.", quit: true})
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errUsage
	}
	return id, nil
}

func rest(args []string, from int) string {
	if len(args) <= from {
		return ""
	}
	return strings.Join(args[from:], " ")
}

// ── Sesión ───────────────────────────────────────────────────────────────────

func (a *App) help(context.Context, []string) error {
	rows := make([][]string, 0, len(a.order))
	for _, c := range a.order {
		rows = append(rows, []string{c.usage, c.help})
	}
	a.table([]string{"COMANDO", "DESCRIPCIÓN"}, rows)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	a.Router.Navigate("/login")
	if err := a.Session.Login(ctx, args[0], args[1]); err != nil {
		return err
	}
	id := a.Session.Identity()
	a.Router.Navigate(guard.HomePath(id))
	if id == nil {
		a.printf("Sesión iniciada.\n")
		return nil
	}
	a.printf("Bienvenido, %s (%s).\n", id.Username, id.Role)
	return nil
}

func (a *App) logout(context.Context, []string) error {
	a.Session.Logout()
	a.Router.Navigate("/login")
	a.printf("Sesión cerrada.\n")
	return nil
}

func (a *App) profile(ctx context.Context, _ []string) error {
	id := a.Session.Identity()
	if id == nil {
		a.printf("Sesión sin identidad decodificable.\n")
		return nil
	}
	a.printf("Usuario: %s\nRol: %s\nTema: %s\n", id.Username, id.Role, a.Theme.Theme())
	if !a.Session.IsBorrower() {
		return nil
	}
	me, err := a.Borrowers.FetchMe(ctx)
	if err != nil {
		return err
	}
	if me != nil {
		a.printf("Prestatario: %s (CI %s)\nEmail: %s\nTeléfono: %s\nEstado: %s\n", me.FullName(), me.CI, me.Email, me.Phone, me.ClientStatus)
	}
	return nil
}

func (a *App) toggleTheme(context.Context, []string) error {
	theme, err := a.Theme.Toggle()
	if err != nil {
		return err
	}
	a.printf("Tema: %s\n", theme)
	return nil
}

// ── Prestatarios ─────────────────────────────────────────────────────────────

func (a *App) borrowers(ctx context.Context, _ []string) error {
	if err := a.overview.Load(ctx); err != nil {
		return err
	}
	var rows [][]string
	for _, r := range a.overview.Rows() {
		status := "-"
		if r.Delinquency != nil {
			status = string(r.Delinquency.Status)
			if r.Delinquency.OverdueUnpaidCount > 0 {
				status += fmt.Sprintf(" (%d vencidas)", r.Delinquency.OverdueUnpaidCount)
			}
		}
		rows = append(rows, []string{strconv.FormatInt(r.Borrower.ID, 10), r.Borrower.CI, r.Borrower.FullName(), r.Borrower.Email, r.Borrower.ClientStatus, status})
	}
	a.table([]string{"ID", "CI", "NOMBRE", "EMAIL", "ESTADO", "MOROSIDAD"}, rows)
	return nil
}

func (a *App) createBorrower(ctx context.Context, args []string) error {
	in := dto.CreateBorrowerRequest{CI: args[0], FirstName: args[1], LastName: args[2]}
	if len(args) > 3 {
		in.Email = args[3]
	}
	if len(args) > 4 {
		in.Phone = args[4]
	}
	b, err := a.Borrowers.Create(ctx, in)
	if err != nil {
		return err
	}
	a.Queue.Enqueue("Prestatario registrado correctamente.", entity.SeveritySuccess)
	if b != nil {
		a.printf("Prestatario #%d: %s (CI %s)\n", b.ID, b.FullName(), b.CI)
	}
	return nil
}

func (a *App) removeBorrower(ctx context.Context, args []string) error {
	if err := a.Borrowers.Remove(ctx, args[0]); err != nil {
		return err
	}
	a.Queue.Enqueue("Prestatario eliminado.", entity.SeveritySuccess)
	return nil
}

func (a *App) bulkLoad(ctx context.Context, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("leer %s: %w", args[0], err)
	}
	res, err := a.Borrowers.BulkLoad(ctx, filepath.Base(args[0]), content)
	if err != nil {
		return err
	}
	a.printf("Líneas: %d  Aceptadas: %d  Rechazadas: %d\n", res.Total, res.Accepted, res.Rejected)
	if len(res.Details) > 0 {
		rows := make([][]string, 0, len(res.Details))
		for _, d := range res.Details {
			rows = append(rows, []string{strconv.Itoa(d.Line), d.Reason})
		}
		a.table([]string{"LÍNEA", "MOTIVO"}, rows)
	}
	return nil
}

func (a *App) loadLogs(ctx context.Context, _ []string) error {
	if err := a.Borrowers.FetchLoadLogs(ctx); err != nil {
		return err
	}
	var rows [][]string
	for _, l := range a.Borrowers.LoadLogs() {
		rows = append(rows, []string{strconv.FormatInt(l.ID, 10), l.FileName, l.LoadedAt, l.User, strconv.Itoa(l.Valid), strconv.Itoa(l.Rejected)})
	}
	a.table([]string{"ID", "ARCHIVO", "FECHA", "USUARIO", "VÁLIDOS", "RECHAZADOS"}, rows)
	return nil
}

// ── Préstamos y cuotas ───────────────────────────────────────────────────────

func (a *App) loans(ctx context.Context, args []string) error {
	var err error
	switch {
	case a.Session.IsBorrower():
		err = a.Loans.FetchMine(ctx)
	case len(args) > 0:
		err = a.Loans.FetchByBorrower(ctx, args[0])
	default:
		err = a.Loans.FetchAll(ctx)
	}
	if err != nil {
		return err
	}
	a.loanTable(a.Loans.Items())
	if inst := a.Loans.Installments(); len(inst) > 0 {
		a.printf("\n")
		a.summaryTable(inst)
	}
	return nil
}

func (a *App) loanDetail(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := a.detail.Load(ctx, id); err != nil {
		return err
	}
	loan := a.detail.Loan()
	a.printf("Préstamo #%d  Estado: %s  Monto: %s  Cuotas: %d  Emitido: %s\n",
		loan.ID, loan.Status, money(loan.Principal), loan.InstallmentCount, loan.IssuedAt)
	a.summaryTable(a.detail.Schedule())
	a.printf("\nPréstamos activos del prestatario: %d\n", a.detail.ActiveLoans())
	return nil
}

func (a *App) createLoan(ctx context.Context, args []string) error {
	borrowerID, err := parseID(args[0])
	if err != nil {
		return err
	}
	amount, err := decimal.NewFromString(args[1])
	if err != nil || !amount.IsPositive() {
		return errUsage
	}
	n, err := strconv.Atoi(args[2])
	if err != nil || n <= 0 {
		return errUsage
	}
	in := dto.CreateLoanRequest{BorrowerID: &borrowerID, Amount: amount, InstallmentCount: n}
	if len(args) > 3 {
		in.InterestType = strings.ToUpper(args[3])
	}
	loan, err := a.Loans.Create(ctx, in)
	if err != nil {
		return err
	}
	a.Queue.Enqueue("Préstamo creado correctamente.", entity.SeveritySuccess)
	if loan != nil {
		a.loanTable([]entity.Loan{*loan})
	}
	return nil
}

func (a *App) cancelLoan(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := a.Loans.Remove(ctx, id); err != nil {
		return err
	}
	a.Queue.Enqueue("Préstamo cancelado.", entity.SeveritySuccess)
	return nil
}

func (a *App) schedule(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := a.Installments.FetchByLoan(ctx, id); err != nil {
		return err
	}
	a.installmentTable(a.Installments.Items())
	return nil
}

func (a *App) pendingInstallments(ctx context.Context, _ []string) error {
	if err := a.Installments.FetchPending(ctx); err != nil {
		return err
	}
	a.printf("Pendientes:\n")
	a.installmentTable(a.Installments.Items())
	if err := a.Installments.FetchDelinquent(ctx); err != nil {
		return err
	}
	a.printf("\nMorosas:\n")
	a.installmentTable(a.Installments.Items())
	return nil
}

func (a *App) pay(ctx context.Context, args []string) error {
	loanID, err := parseID(args[0])
	if err != nil {
		return err
	}
	installmentID, err := parseID(args[1])
	if err != nil {
		return err
	}
	var in dto.PayInstallmentRequest
	if len(args) > 2 {
		amount, err := decimal.NewFromString(args[2])
		if err != nil {
			return errUsage
		}
		in.AmountPaid = &amount
	}
	if len(args) > 3 {
		in.PaidDate = args[3]
	}
	if err := a.detail.Load(ctx, loanID); err != nil {
		return err
	}
	if _, err := a.detail.PayInstallment(ctx, installmentID, in); err != nil {
		return err
	}
	a.summaryTable(a.detail.Schedule())
	return nil
}

func (a *App) refinance(ctx context.Context, args []string) error {
	loanID, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := a.detail.Load(ctx, loanID); err != nil {
		return err
	}
	id, err := a.detail.RequestRefinancing(ctx, args[1], rest(args, 2))
	if err != nil {
		return err
	}
	if id > 0 {
		a.printf("Solicitud de refinanciación #%d\n", id)
	}
	return nil
}

// ── Solicitudes ──────────────────────────────────────────────────────────────

func (a *App) myRequests(ctx context.Context, _ []string) error {
	if err := a.Requests.FetchMine(ctx); err != nil {
		return err
	}
	a.requestTable(a.Requests.Mine())
	return nil
}

func (a *App) submitRequest(ctx context.Context, args []string) error {
	req, err := a.borrowerDesk.SubmitLoanApplication(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	if req != nil {
		a.requestTable([]entity.LoanRequest{*req})
	}
	return nil
}

func (a *App) inbox(ctx context.Context, _ []string) error {
	if err := a.desk.Refresh(ctx); err != nil {
		return err
	}
	a.printf("Solicitudes de préstamo:\n")
	a.requestTable(a.desk.PendingLoanRequests())
	a.printf("\nSolicitudes de refinanciación:\n")
	a.refinancingTable(a.desk.PendingRefinancings())
	return nil
}

func (a *App) approve(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	_, err = a.desk.ApproveLoanRequest(ctx, id)
	return err
}

func (a *App) reject(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	_, err = a.desk.RejectLoanRequest(ctx, id, rest(args, 1))
	return err
}

func (a *App) myRefinancings(ctx context.Context, _ []string) error {
	if err := a.Refis.FetchMine(ctx); err != nil {
		return err
	}
	a.refinancingTable(a.Refis.Mine())
	return nil
}

func (a *App) approveRefinancing(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if len(a.desk.PendingRefinancings()) == 0 {
		if err := a.desk.Refresh(ctx); err != nil {
			return err
		}
	}
	return a.desk.ApproveRefinancing(ctx, id, rest(args, 1))
}

func (a *App) rejectRefinancing(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return a.desk.RejectRefinancing(ctx, id, rest(args, 1))
}

// ── Reportes ─────────────────────────────────────────────────────────────────

func (a *App) reportRows(ctx context.Context, args []string) error {
	kind := store.ReportKind(args[0])
	if err := a.Reports.Fetch(ctx, kind); err != nil {
		return err
	}
	a.rowsTable(a.Reports.Rows(kind))
	return nil
}
