package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-hayashi/relcycle/pkg/cli/config"
	controller "github.com/m-hayashi/relcycle/pkg/controller/http"
	"github.com/m-hayashi/relcycle/pkg/domain/interfaces"
	slackinfra "github.com/m-hayashi/relcycle/pkg/infra/slack"
	sourceinfra "github.com/m-hayashi/relcycle/pkg/infra/source"
	"github.com/m-hayashi/relcycle/pkg/usecase"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		sourceCfg config.Source
		geminiCfg config.Gemini
		slackCfg  config.Slack
		sentryCfg config.Sentry
	)

	flags := append(serverCfg.Flags(), sourceCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting relcycle server",
				slog.String("addr", serverCfg.Addr),
				slog.String("changelog_url", sourceCfg.URL),
			)

			if sentryCfg.Configured() {
				if err := sentryCfg.Init(); err != nil {
					return err
				}
				defer sentry.Flush(2 * time.Second)
			}

			policy, err := sourceCfg.Policy()
			if err != nil {
				return err
			}

			changelogUC := usecase.NewChangelog(sourceinfra.New(sourceCfg.URL), policy)

			var summaryUC interfaces.SummaryUseCase
			if geminiCfg.Configured() {
				llmClient, err := geminiCfg.NewClient(ctx)
				if err != nil {
					return err
				}
				summaryUC, err = usecase.NewSummary(llmClient, geminiCfg.Model)
				if err != nil {
					return err
				}
				logger.Info("Cycle summarizer enabled", slog.String("model", geminiCfg.Model))
			}

			var notifier interfaces.Notifier
			if slackCfg.Configured() {
				notifier = slackinfra.New(slackCfg.OAuthToken, slackCfg.Channel)
				logger.Info("Slack notifier enabled", slog.String("channel", slackCfg.Channel))
			}

			server, err := controller.NewServer(
				ctx,
				changelogUC,
				summaryUC,
				notifier,
				controller.WithAddr(serverCfg.Addr),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
