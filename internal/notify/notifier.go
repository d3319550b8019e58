// Package notify delivers generated challenges to the user's device.
// Delivery is best-effort relative to persistence: the pipeline never
// blocks on, or fails because of, a notifier.
package notify

import (
	"context"
	"fmt"
	"os"

	"github.com/skillissue/engine/internal/store"
)

// Notifier delivers one challenge to the user's device.
type Notifier interface {
	Notify(ctx context.Context, c *store.Challenge) error
}

// StderrNotifier writes a delivery line to stderr. Used by the CLI,
// where the real push transport lives outside the engine.
type StderrNotifier struct{}

func (StderrNotifier) Notify(_ context.Context, c *store.Challenge) error {
	_, err := fmt.Fprintf(os.Stderr, "notify: challenge %s -> user %s (difficulty %d)\n",
		c.ID, c.UserID, c.Difficulty)
	return err
}

// NoopNotifier discards notifications.
type NoopNotifier struct{}

func (NoopNotifier) Notify(context.Context, *store.Challenge) error { return nil }
