package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/banco-cliente/internal/application/gateway"
	"github.com/jhoicas/banco-cliente/internal/application/navigation"
	"github.com/jhoicas/banco-cliente/internal/application/notification"
	"github.com/jhoicas/banco-cliente/internal/application/preferences"
	"github.com/jhoicas/banco-cliente/internal/application/session"
	"github.com/jhoicas/banco-cliente/internal/application/store"
	"github.com/jhoicas/banco-cliente/internal/infrastructure/remote"
	"github.com/jhoicas/banco-cliente/internal/infrastructure/storage"
	"github.com/jhoicas/banco-cliente/internal/interfaces/cli"
	"github.com/jhoicas/banco-cliente/pkg/config"
	"github.com/jhoicas/banco-cliente/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando cliente")

	kv, err := storage.OpenBolt(cfg.Storage.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Storage.Path).Msg("abrir almacenamiento local")
	}
	defer kv.Close()

	sess := session.NewStore(kv, log)
	if err := sess.HydrateFromStorage(); err != nil {
		log.Warn().Err(err).Msg("restaurar sesión")
	}

	router := navigation.NewRouter("/", log)
	queue := notification.NewQueue()
	reg := prometheus.NewRegistry()
	gw := gateway.New(queue, sess, router, log, gateway.NewMetrics(reg))
	client := remote.NewClient(cfg.API, sess, gw, log)
	authAPI := remote.NewAuthAPI(client)
	sess.SetAuthenticator(authAPI)

	deps := cli.Deps{
		Session:      sess,
		Router:       router,
		Queue:        queue,
		Theme:        preferences.NewStore(kv, log),
		Borrowers:    store.NewBorrowerStore(remote.NewBorrowerAPI(client), log),
		Loans:        store.NewLoanStore(remote.NewLoanAPI(client), log),
		Installments: store.NewInstallmentStore(remote.NewInstallmentAPI(client), log),
		Requests:     store.NewLoanRequestStore(remote.NewLoanRequestAPI(client), log),
		Refis:        store.NewRefinancingStore(remote.NewRefinancingAPI(client), log),
		Reports:      store.NewReportStore(remote.NewReportAPI(client), log),
		Employees:    store.NewEmployeeStore(remote.NewEmployeeAPI(client), log),
		Audits:       store.NewAuditStore(remote.NewAuditAPI(client), log),
		Notices:      store.NewNoticeStore(remote.NewNoticeAPI(client), sess, log),
		Registration: authAPI,
		Metrics:      reg,
		AutoHide:     cfg.UI.AutoHide(),
		Log:          log,

		RegistrationSecret: cfg.UI.RegistrationSecret,
	}
	router.Register(deps.Borrowers, deps.Loans, deps.Installments, deps.Requests, deps.Refis, deps.Reports,
		deps.Employees, deps.Audits, deps.Notices)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// la lectura de stdin no se interrumpe con ctx; ante una señal se sale sin esperarla
	done := make(chan error, 1)
	go func() { done <- cli.New(deps, os.Stdout).Run(ctx, os.Stdin) }()
	select {
	case err := <-done:
		if err != nil {
			log.Error().Err(err).Msg("lectura de comandos")
		}
	case <-ctx.Done():
		log.Info().Msg("señal de apagado recibida")
	}
	log.Info().Msg("cliente detenido")
}
