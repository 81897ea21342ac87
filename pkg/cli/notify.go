package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-hayashi/relcycle/pkg/cli/config"
	"github.com/m-hayashi/relcycle/pkg/domain/model"
	slackinfra "github.com/m-hayashi/relcycle/pkg/infra/slack"
	sourceinfra "github.com/m-hayashi/relcycle/pkg/infra/source"
	"github.com/m-hayashi/relcycle/pkg/usecase"
)

func cmdNotify() *cli.Command {
	var (
		sourceCfg config.Source
		slackCfg  config.Slack
	)

	flags := append(sourceCfg.Flags(), slackCfg.Flags()...)

	return &cli.Command{
		Name:  "notify",
		Usage: "Post the most recent release cycle digest to Slack",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if !slackCfg.Configured() {
				return goerr.New("Slack token and channel are required")
			}

			policy, err := sourceCfg.Policy()
			if err != nil {
				return err
			}

			uc := usecase.NewChangelog(sourceinfra.New(sourceCfg.URL), policy)
			_, cycles, err := uc.Cycles(ctx, model.Filter{})
			if err != nil {
				return err
			}
			if len(cycles) == 0 {
				return goerr.New("no release cycles found in changelog")
			}

			notifier := slackinfra.New(slackCfg.OAuthToken, slackCfg.Channel)
			if err := notifier.NotifyCycle(ctx, cycles[0]); err != nil {
				return err
			}

			logger.Info("Posted cycle digest",
				slog.String("cycle_key", cycles[0].CycleKey),
				slog.String("channel", slackCfg.Channel),
			)
			return nil
		},
	}
}
