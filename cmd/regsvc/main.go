package main

import (
	"context"
	"log/slog"
	"os"

	"regsvc/config"
	"regsvc/internal/delivery"
	"regsvc/internal/delivery/http"
	"regsvc/internal/delivery/http/middleware"
	"regsvc/internal/delivery/http/router/handler"
	"regsvc/internal/domain/service"
	"regsvc/internal/infra/auth"
	logs "regsvc/internal/infra/log"
	"regsvc/internal/infra/mail"
	"regsvc/internal/infra/persistence/postgres"
	"regsvc/internal/infra/token"
	"regsvc/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			token.NewGenerator,
			newMailSender,
		),
	)
}

// newPasswordHasher creates the bcrypt hasher using the configured cost.
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	return auth.NewBcryptHasherWithCost(cfg.BcryptCost())
}

// newMailSender picks the SMTP sender when mail delivery is configured and
// falls back to the console sender otherwise. SMTP is optional.
func newMailSender(cfg *config.Config, logger *slog.Logger) service.MailSender {
	if cfg.SMTP == nil {
		return mail.NewConsoleSender(cfg.App.BaseURL, logger)
	}

	return mail.NewSMTPSender(cfg.SMTP, cfg.App.BaseURL, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
