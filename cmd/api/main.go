package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/store-admin-api/internal/app"
	"github.com/jhoicas/store-admin-api/internal/application/auth"
	httpRouter "github.com/jhoicas/store-admin-api/internal/interfaces/http"
	"github.com/jhoicas/store-admin-api/pkg/config"
	"github.com/jhoicas/store-admin-api/pkg/logger"
	"github.com/jhoicas/store-admin-api/pkg/telemetry"
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
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:     cfg.OTel.Enabled,
		Endpoint:    cfg.OTel.Endpoint,
		ServiceName: cfg.App.Name,
		Environment: cfg.App.Env,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("configurar trazas")
	}

	db, dialect, closeDB, err := app.OpenDatabase(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a la base de datos")
	}
	defer closeDB()

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: login deshabilitado y todas las peticiones sin identidad")
	}

	application := httpRouter.NewApp(httpRouter.AppConfig{
		Name:        cfg.App.Name,
		CORSOrigins: cfg.HTTP.CORSOrigins,
	}, log)

	// Swagger UI: http://localhost:<port>/docs
	if docsHandler, err := httpRouter.Docs(cfg.HTTP.DocsPath); err == nil {
		application.Use(docsHandler)
	} else {
		log.Warn().Err(err).Str("path", cfg.HTTP.DocsPath).Msg("/docs deshabilitado")
	}

	httpRouter.Router(application, app.RouterDeps(db, dialect, app.Options{
		JWT: auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
		PublicURL: cfg.HTTP.PublicURL,
		Log:       log,
	}))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		return application.Listen(cfg.HTTP.Addr())
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("señal de apagado recibida, cerrando servidor...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := application.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("apagado del servidor")
		}
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("vaciar trazas")
		}
		return nil
	})
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("servidor HTTP finalizado")
	}

	log.Info().Msg("aplicación detenida")
}
