package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/m-hayashi/relcycle/pkg/cli/config"
	"github.com/m-hayashi/relcycle/pkg/domain/model"
	sourceinfra "github.com/m-hayashi/relcycle/pkg/infra/source"
	"github.com/m-hayashi/relcycle/pkg/usecase"
)

func cmdPreview() *cli.Command {
	var sourceCfg config.Source

	return &cli.Command{
		Name:    "preview",
		Aliases: []string{"p"},
		Usage:   "Fetch the changelog once and print release cycles",
		Flags:   sourceCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			policy, err := sourceCfg.Policy()
			if err != nil {
				return err
			}

			uc := usecase.NewChangelog(sourceinfra.New(sourceCfg.URL), policy)
			_, cycles, err := uc.Cycles(ctx, model.Filter{})
			if err != nil {
				return err
			}

			headline := color.New(color.FgCyan, color.Bold)
			version := color.New(color.FgYellow)
			bugfix := color.New(color.FgRed)

			for _, cycle := range cycles {
				marker := ""
				if cycle.IsCurrentCycle {
					marker = " (current)"
				}
				headline.Printf("%s%s\n", cycle.Headline, marker)
				if cycle.ReleaseVersion != "" {
					version.Printf("  release %s, expected live %s\n",
						cycle.ReleaseVersion, cycle.ExpectedLiveDate)
				}

				for _, item := range cycle.Items {
					label := item.Title
					if item.Connector != "" {
						label = fmt.Sprintf("%s: %s", item.Connector, item.Title)
					}
					if item.Type == model.ChangeTypeBugFix {
						bugfix.Printf("  fix  %s\n", label)
					} else {
						fmt.Printf("  feat %s\n", label)
					}
				}
				fmt.Println()
			}

			return nil
		},
	}
}
