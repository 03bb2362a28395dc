package relay

import (
	"log/slog"

	"github.com/aretw0/relay/pkg/domain"
)

// Option defines a functional option for configuring the Controller.
type Option func(*Controller)

// WithGroups sets the ordered list of groups enclosing the test. When
// omitted, the test belongs to the suite's own root group.
func WithGroups(groups ...*domain.Group) Option {
	return func(c *Controller) {
		c.groups = groups
	}
}

// WithMessageSink replaces the fallback sink that receives messages emitted
// while the message stream has no subscriber.
func WithMessageSink(sink MessageSink) Option {
	return func(c *Controller) {
		c.sink = sink
	}
}

// WithLogger sets a custom structured logger for the controller.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}
