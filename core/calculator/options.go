package calculator

import (
	"time"

	"github.com/leofalp/calcgo/providers/history"
	"github.com/leofalp/calcgo/providers/observability"
)

// Option configures a Calculator at construction time.
type Option func(*Calculator)

// WithObserver routes spans, metrics and logs to observer.
// Without it the calculator emits nothing.
func WithObserver(observer observability.Provider) Option {
	return func(c *Calculator) {
		c.observer = observer
	}
}

// WithHistory replaces the default in-memory history store.
// A nil store is ignored.
func WithHistory(store history.Provider) Option {
	return func(c *Calculator) {
		if store != nil {
			c.history = store
		}
	}
}

// WithClock sets the time source used for history timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Calculator) {
		if now != nil {
			c.now = now
		}
	}
}

// WithBuiltins preloads [Builtins]. Operations passed to the constructor
// take precedence over built-ins with the same name.
func WithBuiltins() Option {
	return func(c *Calculator) {
		c.registry.merge(Builtins())
	}
}
