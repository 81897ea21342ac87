// Package slack posts release cycle digests to a Slack channel.
package slack

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	api "github.com/slack-go/slack"

	"github.com/m-hayashi/relcycle/pkg/changelog"
	"github.com/m-hayashi/relcycle/pkg/domain/model"
)

// Slack rejects section text over 3000 characters
const maxSectionTextLen = 3000

// Notifier posts cycle digests via the Slack Web API
type Notifier struct {
	client  *api.Client
	channel string
}

// New creates a Notifier for the given bot token and channel
func New(token, channel string) *Notifier {
	return &Notifier{
		client:  api.New(token),
		channel: channel,
	}
}

// NotifyCycle posts the digest of one release cycle to the channel
func (n *Notifier) NotifyCycle(ctx context.Context, cycle model.ReleaseCycle) error {
	header := fmt.Sprintf("Release cycle %s", cycle.Headline)
	if cycle.ReleaseVersion != "" {
		header = fmt.Sprintf("%s (%s)", header, cycle.ReleaseVersion)
	}

	digest := changelog.Digest(cycle)
	if digest == "" {
		digest = "(no items)"
	}

	blocks := []api.Block{
		api.NewHeaderBlock(api.NewTextBlockObject(api.PlainTextType, header, false, false)),
		api.NewSectionBlock(api.NewTextBlockObject(api.MarkdownType, truncate(digest, maxSectionTextLen), false, false), nil, nil),
	}

	_, _, err := n.client.PostMessageContext(ctx, n.channel, api.MsgOptionBlocks(blocks...))
	if err != nil {
		return goerr.Wrap(err, "failed to post cycle digest to Slack",
			goerr.V("channel", n.channel), goerr.V("cycle_key", cycle.CycleKey))
	}

	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
