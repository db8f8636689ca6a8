package eq

import (
	"log/slog"

	"github.com/cwbudde/algo-eq/dsp/filter/design"
)

// Option configures a [Processor].
type Option func(*config)

type config struct {
	designer Designer
	channels int
	logger   *slog.Logger
}

func defaultConfig() config {
	return config{
		designer: Designer{Method: design.CutStacked, Limits: design.DefaultLimits()},
		channels: 2,
	}
}

// WithCutMethod selects how cut slopes are built. Default is
// [design.CutStacked].
func WithCutMethod(m design.CutMethod) Option {
	return func(c *config) { c.designer.Method = m }
}

// WithLimits overrides the frequency clamp policy.
func WithLimits(l design.Limits) Option {
	return func(c *config) { c.designer.Limits = l }
}

// WithChannels sets the initial channel count. Values below 1 are ignored.
func WithChannels(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.channels = n
		}
	}
}

// WithLogger sets the logger for update-path diagnostics. A nil logger
// discards output. The audio path never logs.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}
