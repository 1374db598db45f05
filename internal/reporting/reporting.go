// Package reporting forwards unexpected failures to Sentry when a DSN is configured.
package reporting

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/Belphemur/ShowFinder/internal/config"
)

const flushTimeout = 2 * time.Second

var enabled atomic.Bool

// Init configures the Sentry client. Without a DSN it does nothing and the
// returned flush func is a no-op.
func Init(cfg *config.Config) (flush func(), err error) {
	if cfg == nil || cfg.Sentry.DSN == "" {
		return func() {}, nil
	}

	err = sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
	})
	if err != nil {
		return func() {}, err
	}
	enabled.Store(true)

	logger := config.GetLogger()
	logger.Info().Str("environment", cfg.Sentry.Environment).Msg("Sentry error reporting enabled")

	return func() {
		sentry.Flush(flushTimeout)
	}, nil
}

// CaptureError sends err to Sentry with the given tags. Cancellations are
// ignored since they are caused by the caller going away.
func CaptureError(err error, tags map[string]string) {
	if err == nil || !enabled.Load() || IsCancellation(err) {
		return
	}

	hub := sentry.CurrentHub().Clone()
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		hub.CaptureException(err)
	})
}

// IsCancellation reports whether err stems from a cancelled or expired context.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
