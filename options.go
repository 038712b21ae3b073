package listx

import "github.com/comalice/listx/pkg/logger"

// Option configures a List at construction.
type Option func(*config)

type config struct {
	name string
	lggr logger.Logger
}

// WithLogger makes the list emit a debug entry for every mutation.
func WithLogger(lggr logger.Logger) Option {
	return func(c *config) {
		c.lggr = lggr
	}
}

// WithName sets the name carried in log fields and snapshots.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}
