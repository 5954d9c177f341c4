// Package sandbox arma el servicio de préstamos de desarrollo: repositorios, casos de uso y rutas fiber.
// Sin DatabaseURL los datos viven en memoria; con DatabaseURL se guardan en PostgreSQL.
package sandbox

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/swaggo/swag"
	"golang.org/x/crypto/bcrypt"

	_ "github.com/jhoicas/banco-cliente/docs"
	"github.com/jhoicas/banco-cliente/internal/application/auth"
	"github.com/jhoicas/banco-cliente/internal/application/usecase"
	"github.com/jhoicas/banco-cliente/internal/domain/repository"
	"github.com/jhoicas/banco-cliente/internal/infrastructure/memory"
	"github.com/jhoicas/banco-cliente/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/banco-cliente/internal/interfaces/http"
	"github.com/jhoicas/banco-cliente/pkg/logger"
)

// Options configuración del sandbox.
type Options struct {
	Name           string
	JWT            auth.JWTConfig
	MaxActiveLoans int
	// LoginMax intentos de login por minuto e IP; 0 = valor por defecto del router.
	LoginMax int
	// BcryptCost costo de hash de los usuarios sembrados; 0 = bcrypt.DefaultCost.
	BcryptCost int
	// Clock fecha "de hoy" del servicio; nil = time.Now.
	Clock    usecase.Clock
	Log      *logger.Logger
	Registry *prometheus.Registry
	// SkipSeed arranca sin prestatarios ni usuarios de demostración.
	SkipSeed bool
	// DatabaseURL solo la usa Open.
	DatabaseURL string
	// SwaggerFile documento OpenAPI servido en /docs; vacío o inexistente = sin /docs.
	SwaggerFile string
}

// Server aplicación fiber lista para escuchar.
type Server struct {
	App     *fiber.App
	Metrics *httpRouter.Metrics
	// DB base en memoria; nil cuando el sandbox usa PostgreSQL.
	DB    *memory.DB
	close func()
}

// Close libera la conexión a la base, si la hay.
func (s *Server) Close() {
	if s.close != nil {
		s.close()
	}
}

// repositories persistencia del sandbox, en memoria o en PostgreSQL.
type repositories struct {
	tx           usecase.TxRunner
	users        repository.UserRepository
	borrowers    repository.BorrowerRepository
	loadLogs     repository.LoadLogRepository
	loans        repository.LoanRepository
	installments repository.InstallmentRepository
	requests     repository.LoanRequestRepository
	refis        repository.RefinancingRepository
	employees    repository.EmployeeRepository
	audits       repository.AuditRepository
	notices      repository.NoticeRepository
}

// New construye el sandbox sobre una base en memoria nueva.
func New(opts Options) (*Server, error) {
	opts, err := withDefaults(opts)
	if err != nil {
		return nil, err
	}
	db := memory.NewDB()
	repos := repositories{
		tx:           memory.NewTxRunner(db),
		users:        memory.NewUserRepository(db),
		borrowers:    memory.NewBorrowerRepository(db),
		loadLogs:     memory.NewLoadLogRepository(db),
		loans:        memory.NewLoanRepository(db),
		installments: memory.NewInstallmentRepository(db),
		requests:     memory.NewLoanRequestRepository(db),
		refis:        memory.NewRefinancingRepository(db),
		employees:    memory.NewEmployeeRepository(db),
		audits:       memory.NewAuditRepository(db),
		notices:      memory.NewNoticeRepository(db),
	}
	srv, err := build(opts, repos)
	if err != nil {
		return nil, err
	}
	srv.DB = db
	return srv, nil
}

// Open construye el sandbox según opts.DatabaseURL: en memoria si está vacía, sobre PostgreSQL si no.
// En PostgreSQL crea las tablas que falten y siembra los datos de demostración solo en una base vacía.
func Open(ctx context.Context, opts Options) (*Server, error) {
	if opts.DatabaseURL == "" {
		return New(opts)
	}
	opts, err := withDefaults(opts)
	if err != nil {
		return nil, err
	}
	pool, err := postgres.NewPool(ctx, opts.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("sandbox: %w", err)
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("sandbox: %w", err)
	}
	repos := repositories{
		tx:           postgres.NewTxRunner(pool),
		users:        postgres.NewUserRepository(pool),
		borrowers:    postgres.NewBorrowerRepository(pool),
		loadLogs:     postgres.NewLoadLogRepository(pool),
		loans:        postgres.NewLoanRepository(pool),
		installments: postgres.NewInstallmentRepository(pool),
		requests:     postgres.NewLoanRequestRepository(pool),
		refis:        postgres.NewRefinancingRepository(pool),
		employees:    postgres.NewEmployeeRepository(pool),
		audits:       postgres.NewAuditRepository(pool),
		notices:      postgres.NewNoticeRepository(pool),
	}
	if !opts.SkipSeed {
		existing, err := repos.users.GetByUsername(memory.DemoUsers[0].Username)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("sandbox: %w", err)
		}
		// ya sembrada en una ejecución anterior
		opts.SkipSeed = existing != nil
	}
	srv, err := build(opts, repos)
	if err != nil {
		pool.Close()
		return nil, err
	}
	srv.close = pool.Close
	return srv, nil
}

func withDefaults(opts Options) (Options, error) {
	if opts.MaxActiveLoans <= 0 {
		return opts, fmt.Errorf("sandbox: tope de préstamos activos debe ser positivo (valor: %d)", opts.MaxActiveLoans)
	}
	if opts.JWT.Secret == "" {
		return opts, fmt.Errorf("sandbox: secreto JWT requerido")
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}
	return opts, nil
}

func build(opts Options, repos repositories) (*Server, error) {
	clock := opts.Clock
	if !opts.SkipSeed {
		err := memory.SeedRepositories(repos.borrowers, repos.users, memory.DemoBorrowers, memory.DemoUsers, opts.BcryptCost, clock())
		if err != nil {
			return nil, fmt.Errorf("sandbox: seed: %w", err)
		}
	}
	policy := usecase.Policy{MaxActiveLoans: opts.MaxActiveLoans}

	app, metrics := httpRouter.NewApp(httpRouter.AppConfig{
		Name:     opts.Name,
		Log:      opts.Log,
		Registry: opts.Registry,
	})
	authUC := auth.NewAuthUseCase(repos.users, repos.borrowers, repos.employees, opts.JWT)
	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         usecase.NewUserUseCase(repos.users),
		BorrowerUC:     usecase.NewBorrowerUseCase(repos.borrowers, repos.loadLogs, repos.loans, repos.installments, repos.tx, clock),
		LoanUC:         usecase.NewLoanUseCase(repos.loans, repos.installments, repos.borrowers, repos.tx, policy, clock),
		InstallmentUC:  usecase.NewInstallmentUseCase(repos.installments, repos.loans, repos.tx, clock),
		LoanRequestUC:  usecase.NewLoanRequestUseCase(repos.requests, repos.borrowers, repos.loans, repos.installments, repos.tx, policy, clock),
		RefinancingUC:  usecase.NewRefinancingUseCase(repos.refis, repos.loans, repos.installments, repos.tx, clock),
		ReportUC:       usecase.NewReportUseCase(repos.borrowers, repos.loans, repos.installments, repos.refis, clock),
		EmployeeUC:     usecase.NewEmployeeUseCase(repos.employees),
		RegistrationUC: usecase.NewRegistrationUseCase(authUC, repos.users, repos.borrowers, repos.employees, repos.tx, clock),
		AuditUC:        usecase.NewAuditUseCase(repos.audits, clock),
		NoticeUC:       usecase.NewNoticeUseCase(repos.notices, repos.loans, repos.installments, clock),
		JWTSecret:      opts.JWT.Secret,
		LoginMax:       opts.LoginMax,
	})
	mountDocs(app, opts)
	return &Server{App: app, Metrics: metrics}, nil
}

// mountDocs /openapi.json desde el registro de swag y, si hay archivo, Swagger UI en /docs.
func mountDocs(app *fiber.App, opts Options) {
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return err
		}
		c.Type("json")
		return c.SendString(doc)
	})
	if opts.SwaggerFile == "" {
		return
	}
	if _, err := os.Stat(opts.SwaggerFile); err != nil {
		opts.Log.Warn().Err(err).Str("archivo", opts.SwaggerFile).Msg("documentación OpenAPI no disponible")
		return
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: opts.SwaggerFile,
		Path:     "docs",
		Title:    "Banco Sandbox API",
	}))
}
