package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/jhoicas/banco-cliente/internal/application/auth"
	"github.com/jhoicas/banco-cliente/internal/application/usecase"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
)

// defaultLoginMax intentos de login por minuto e IP.
const defaultLoginMax = 10

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UserUC         *usecase.UserUseCase
	BorrowerUC     *usecase.BorrowerUseCase
	LoanUC         *usecase.LoanUseCase
	InstallmentUC  *usecase.InstallmentUseCase
	LoanRequestUC  *usecase.LoanRequestUseCase
	RefinancingUC  *usecase.RefinancingUseCase
	ReportUC       *usecase.ReportUseCase
	EmployeeUC     *usecase.EmployeeUseCase
	RegistrationUC *usecase.RegistrationUseCase
	AuditUC        *usecase.AuditUseCase
	NoticeUC       *usecase.NoticeUseCase
	JWTSecret      string
	// LoginMax intentos de login por minuto e IP; 0 = defaultLoginMax.
	LoginMax int
}

// loginLimiter limita los intentos de login; responde con la variante de autenticación.
func loginLimiter(max int) fiber.Handler {
	if max <= 0 {
		max = defaultLoginMax
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "-login"
		},
		LimitReached: func(c *fiber.Ctx) error {
			return authFail(c, fiber.StatusTooManyRequests, "Demasiados intentos de inicio de sesión. Espere un minuto.")
		},
	})
}

// Router registra las rutas de la API de préstamos.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	employee := RequireRole(entity.RoleEmployee)
	borrower := RequireRole(entity.RoleBorrower)
	anyRole := RequireRole(entity.RoleEmployee, entity.RoleBorrower)
	admin := RequireRole(entity.RoleAdmin)
	authMW := AuthMiddleware(deps.JWTSecret)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC, deps.RegistrationUC)
	limited := loginLimiter(deps.LoginMax)
	authGroup.Post("/login", limited, authHandler.Login)
	authGroup.Post("/register-prestatario", limited, authHandler.RegisterBorrower)
	authGroup.Post("/register-empleado", limited, authHandler.RegisterEmployee)
	authGroup.Post("/register", authMW, admin, authHandler.Register)
	authGroup.Get("/me", authMW, authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", authMW)

	// Prestatarios: las rutas fijas van antes de /:ci
	borrowers := protected.Group("/prestatarios")
	borrowerHandler := NewBorrowerHandler(deps.BorrowerUC)
	borrowers.Get("/", employee, borrowerHandler.List)
	borrowers.Post("/", employee, borrowerHandler.Create)
	borrowers.Get("/me", borrower, borrowerHandler.Me)
	borrowers.Get("/obtener-logs-carga", employee, borrowerHandler.LoadLogs)
	borrowers.Post("/carga-masiva", employee, borrowerHandler.BulkLoad)
	borrowers.Get("/:id/morosidad", anyRole, borrowerHandler.Delinquency)
	borrowers.Get("/:ci", employee, borrowerHandler.GetByCI)
	borrowers.Put("/:ci", employee, borrowerHandler.Update)
	borrowers.Delete("/:ci", employee, borrowerHandler.Delete)

	// Préstamos
	loans := protected.Group("/prestamos")
	loanHandler := NewLoanHandler(deps.LoanUC)
	loans.Get("/", employee, loanHandler.List)
	loans.Post("/", employee, loanHandler.Create)
	loans.Get("/mis-prestamos", borrower, loanHandler.Mine)
	loans.Get("/prestatario/:key", anyRole, loanHandler.ByBorrower)
	loans.Get("/:id/cuotas", anyRole, loanHandler.Schedule)
	loans.Get("/:id", anyRole, loanHandler.GetByID)
	loans.Put("/:id", employee, loanHandler.Update)
	loans.Delete("/:id", employee, loanHandler.Cancel)

	// Cuotas
	installments := protected.Group("/cuotas")
	installmentHandler := NewInstallmentHandler(deps.InstallmentUC)
	installments.Get("/pendientes", anyRole, installmentHandler.Pending)
	installments.Get("/morosas", anyRole, installmentHandler.Delinquent)
	installments.Post("/:id/pagar", anyRole, installmentHandler.Pay)

	// Solicitudes de préstamo
	requests := protected.Group("/solicitudes")
	requestHandler := NewLoanRequestHandler(deps.LoanRequestUC)
	requests.Get("/mis-solicitudes", borrower, requestHandler.Mine)
	requests.Get("/", employee, requestHandler.List)
	requests.Post("/", anyRole, requestHandler.Create)
	requests.Put("/:id/aprobar", employee, requestHandler.Approve)
	requests.Put("/:id/rechazar", employee, requestHandler.Reject)

	// Refinanciaciones
	refis := protected.Group("/refinanciaciones/solicitudes")
	refiHandler := NewRefinancingHandler(deps.RefinancingUC)
	refis.Get("/mis-solicitudes", borrower, refiHandler.Mine)
	refis.Get("/", employee, refiHandler.List)
	refis.Post("/", anyRole, refiHandler.Create)
	refis.Put("/:id/aprobar", employee, refiHandler.Approve)
	refis.Put("/:id/rechazar", employee, refiHandler.Reject)

	// Reportes
	reports := protected.Group("/reportes", employee)
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/prestamos", reportHandler.Loans)
	reports.Get("/morosos", reportHandler.Delinquents)
	reports.Get("/refinanciaciones", reportHandler.Refinancings)

	// Empleados
	employees := protected.Group("/empleados", admin)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/:id", employeeHandler.Get)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	// Auditoría
	audits := protected.Group("/auditoria", employee)
	auditHandler := NewAuditHandler(deps.AuditUC)
	audits.Post("/registrar", auditHandler.Register)
	audits.Get("/logs", auditHandler.Logs)
	audits.Post("/finalizar", auditHandler.Finish)

	// Notificaciones
	notices := protected.Group("/notificaciones")
	noticeHandler := NewNoticeHandler(deps.NoticeUC)
	notices.Get("/pendientes", anyRole, noticeHandler.Pending)
	notices.Get("/", anyRole, noticeHandler.History)
	notices.Post("/enviar", employee, noticeHandler.Send)
	notices.Post("/recordatorios-pago", employee, noticeHandler.PaymentReminders)
	notices.Post("/notificar-mora", employee, noticeHandler.Delinquency)
	notices.Post("/notificar-cancelacion", employee, noticeHandler.Cancellation)
}
