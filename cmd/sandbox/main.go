package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jhoicas/banco-cliente/internal/application/auth"
	"github.com/jhoicas/banco-cliente/internal/sandbox"
	"github.com/jhoicas/banco-cliente/pkg/config"
	"github.com/jhoicas/banco-cliente/pkg/logger"
)

// @title                       Banco Sandbox API
// @version                     1.0
// @description                 Servicio de préstamos de desarrollo: prestatarios, préstamos, cuotas, solicitudes, refinanciaciones, reportes, empleados, auditoría y avisos.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Token JWT con el prefijo "Bearer ".
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
		Str("addr", cfg.Sandbox.Addr()).
		Int("max_prestamos_activos", cfg.Sandbox.MaxActiveLoans).
		Bool("postgres", cfg.Sandbox.DatabaseURL != "").
		Msg("iniciando sandbox")

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	srv, err := sandbox.Open(context.Background(), sandbox.Options{
		Name: cfg.App.Name + "-sandbox",
		JWT: auth.JWTConfig{
			Secret:     cfg.Sandbox.JWTSecret,
			Issuer:     cfg.Sandbox.JWTIssuer,
			ExpMinutes: cfg.Sandbox.JWTExpMinutes,
		},
		MaxActiveLoans: cfg.Sandbox.MaxActiveLoans,
		Log:            log,
		Registry:       reg,
		DatabaseURL:    cfg.Sandbox.DatabaseURL,
		// Swagger UI en local: http://localhost:<port>/docs
		SwaggerFile: "./docs/swagger.json",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("construir sandbox")
	}
	defer srv.Close()

	go func() {
		if err := srv.App.Listen(cfg.Sandbox.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando sandbox...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.App.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("sandbox detenido")
}
