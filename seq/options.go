package seq

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmgilman/go/expected/classify"
)

// config holds the settings for one sequence.
type config struct {
	chain     *classify.Chain
	logger    *slog.Logger
	observers []Observer
	newID     func() string
}

// newConfig creates a configuration with default values and applies opts.
func newConfig(opts ...Option) *config {
	c := &config{
		chain:  classify.Default(),
		logger: slog.New(slog.DiscardHandler),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Option configures a sequence.
type Option func(*config)

// WithChain sets the classifier chain used for escaping faults.
// The default is classify.Default().
func WithChain(chain *classify.Chain) Option {
	return func(c *config) {
		if chain != nil {
			c.chain = chain
		}
	}
}

// WithLogger sets the logger for sequence lifecycle records.
// Records are emitted at debug level; misbehaving observers are reported as warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithObserver adds an observer notified of sequence events.
// Multiple observers are notified in the order they were added.
func WithObserver(observer Observer) Option {
	return func(c *config) {
		if observer != nil {
			c.observers = append(c.observers, observer)
		}
	}
}

// WithIDGenerator overrides how sequence IDs are generated.
// The default generates random UUIDs.
func WithIDGenerator(newID func() string) Option {
	return func(c *config) {
		if newID != nil {
			c.newID = newID
		}
	}
}
