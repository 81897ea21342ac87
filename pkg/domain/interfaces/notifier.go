package interfaces

import (
	"context"

	"github.com/m-hayashi/relcycle/pkg/domain/model"
)

// Notifier delivers a release cycle digest to an external channel
type Notifier interface {
	NotifyCycle(ctx context.Context, cycle model.ReleaseCycle) error
}
