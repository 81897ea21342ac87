package config

import "github.com/urfave/cli/v3"

// Slack holds Slack notification configuration. Notifications are optional:
// without a token and channel, notify operations respond 503.
type Slack struct {
	OAuthToken string `masq:"secret"`
	Channel    string
}

// Flags returns CLI flags for Slack configuration
func (c *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack bot OAuth token",
			Destination: &c.OAuthToken,
			Sources:     cli.EnvVars("RELCYCLE_SLACK_OAUTH_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel for cycle digests",
			Destination: &c.Channel,
			Sources:     cli.EnvVars("RELCYCLE_SLACK_CHANNEL"),
		},
	}
}

// Configured reports whether both token and channel are set
func (c *Slack) Configured() bool {
	return c.OAuthToken != "" && c.Channel != ""
}
