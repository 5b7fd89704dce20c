package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/faasr/faasr-gateway/pkg/cli/config"
	"github.com/faasr/faasr-gateway/pkg/controller/server"
	"github.com/faasr/faasr-gateway/pkg/domain/types"
	"github.com/faasr/faasr-gateway/pkg/infra"
	"github.com/faasr/faasr-gateway/pkg/usecase"
	"github.com/faasr/faasr-gateway/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr        string
		frontendURL string

		githubApp config.GitHubApp
		session   config.Session
		supabase  config.Supabase
		bigQuery  config.BigQuery
		sentry    config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("FAASR_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "frontend-url",
			Usage:       "Frontend base URL for installation callback redirects",
			Sources:     cli.EnvVars("FAASR_FRONTEND_URL"),
			Destination: &frontendURL,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			githubApp.Flags(),
			session.Flags(),
			supabase.Flags(),
			bigQuery.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("FrontendURL", frontendURL),
				slog.Any("GitHubApp", githubApp),
				slog.Any("Session", session),
				slog.Any("Supabase", supabase),
				slog.Any("BigQuery", bigQuery),
				slog.Any("Sentry", sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			ghApp, err := githubApp.New()
			if err != nil {
				return err
			}

			infraOptions := []infra.Option{
				infra.WithGitHubApp(ghApp),
			}

			if bqClient, err := bigQuery.NewClient(ctx); err != nil {
				return err
			} else if bqClient != nil {
				infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
			}

			var sessionProvider server.SessionProvider
			switch {
			case supabase.Enabled():
				repo, err := supabase.NewRepository(ctx)
				if err != nil {
					return err
				}
				infraOptions = append(infraOptions, infra.WithProfileRepository(repo))

				sessionProvider, err = server.NewPlatformSessionProvider(supabase.JWTSecret(), repo)
				if err != nil {
					return err
				}

			case session.Enabled():
				sessionProvider, err = session.NewProvider()
				if err != nil {
					return err
				}

			default:
				return goerr.Wrap(types.ErrConfiguration, "either session secret or supabase must be configured")
			}

			clients := infra.New(infraOptions...)

			uc := usecase.New(clients, githubApp.UseCaseOptions()...)
			s := server.New(uc,
				server.WithSessionProvider(sessionProvider),
				server.WithFrontendURL(frontendURL),
			)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
