package config

import (
	"github.com/urfave/cli/v3"

	"github.com/m-hayashi/relcycle/pkg/changelog"
)

// Source holds changelog source configuration
type Source struct {
	URL        string
	PolicyPath string
}

// Flags returns CLI flags for changelog source configuration
func (c *Source) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "changelog-url",
			Usage:       "URL of the changelog document",
			Value:       changelog.DefaultSourceURL,
			Destination: &c.URL,
			Sources:     cli.EnvVars("RELCYCLE_CHANGELOG_URL"),
		},
		&cli.StringFlag{
			Name:        "policy",
			Usage:       "Path to a TOML parse policy file (fix keywords, anchor weekday)",
			Destination: &c.PolicyPath,
			Sources:     cli.EnvVars("RELCYCLE_POLICY"),
		},
	}
}

// Policy loads the parse policy, using defaults when no file is given
func (c *Source) Policy() (changelog.Policy, error) {
	if c.PolicyPath == "" {
		return changelog.DefaultPolicy(), nil
	}
	return changelog.LoadPolicy(c.PolicyPath)
}
