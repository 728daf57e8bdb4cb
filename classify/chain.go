package classify

import (
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/jmgilman/go/expected/errors"
)

// CodedName is the name Coded is registered under in Default.
const CodedName = "coded"

// Entry is a named classifier.
type Entry struct {
	Name       string
	Classifier Classifier
}

// Chain is an ordered list of classifiers.
//
// Classifiers are consulted in registration order and the first match wins,
// so specific classifiers must precede generic ones. A chain is mutable only
// until its first Classify call (or an explicit Freeze); after that it is
// read-only and safe for concurrent use.
type Chain struct {
	mu      sync.Mutex
	entries []Entry
	frozen  atomic.Bool
	logger  *slog.Logger
}

// Option configures a Chain.
type Option func(*Chain)

// WithLogger sets the logger used to report misbehaving classifiers.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Chain) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewChain creates an empty, unfrozen chain.
func NewChain(opts ...Option) *Chain {
	c := &Chain{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var (
	defaultChain *Chain
	defaultOnce  sync.Once
)

// Default returns the process-wide chain.
// It starts with Coded and accepts further registrations until first use.
func Default() *Chain {
	defaultOnce.Do(func() {
		defaultChain = NewChain()
		_ = defaultChain.Append(CodedName, Coded)
	})
	return defaultChain
}

// Append adds a classifier at the end of the chain.
func (c *Chain) Append(name string, classifier Classifier) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkLocked(name, classifier); err != nil {
		return err
	}
	c.entries = append(c.entries, Entry{Name: name, Classifier: classifier})
	return nil
}

// AppendAll adds entries at the end of the chain, in order.
// It stops at the first failing entry.
func (c *Chain) AppendAll(entries ...Entry) error {
	for _, e := range entries {
		if err := c.Append(e.Name, e.Classifier); err != nil {
			return err
		}
	}
	return nil
}

// Insert adds a classifier at position index (0 is the front).
func (c *Chain) Insert(index int, name string, classifier Classifier) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkLocked(name, classifier); err != nil {
		return err
	}
	if index < 0 || index > len(c.entries) {
		return errors.Newf(CodeInvalid, "index %d out of range [0, %d]", index, len(c.entries))
	}
	c.entries = slices.Insert(c.entries, index, Entry{Name: name, Classifier: classifier})
	return nil
}

// InsertBefore adds a classifier immediately before the one named target.
func (c *Chain) InsertBefore(target, name string, classifier Classifier) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkLocked(name, classifier); err != nil {
		return err
	}
	idx := c.indexLocked(target)
	if idx < 0 {
		return errors.Newf(CodeNotRegistered, "classifier %q not registered", target)
	}
	c.entries = slices.Insert(c.entries, idx, Entry{Name: name, Classifier: classifier})
	return nil
}

// Freeze makes the chain read-only. It is idempotent.
func (c *Chain) Freeze() {
	c.mu.Lock()
	c.frozen.Store(true)
	c.mu.Unlock()
}

// Frozen reports whether the chain is read-only.
func (c *Chain) Frozen() bool {
	return c.frozen.Load()
}

// Names returns the registered classifier names in order.
func (c *Chain) Names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of registered classifiers.
func (c *Chain) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Classify returns the code for fault.
//
// Classifiers are tried in order; the first one to match decides. A
// classifier that panics is treated as declining. When nothing matches the
// result is errors.CodeUnknown, so Classify is total: it never panics and
// never returns a zero code. The first call freezes the chain.
func (c *Chain) Classify(fault any) errors.Code {
	if !c.frozen.Load() {
		c.Freeze()
	}

	for _, e := range c.entries {
		if code, ok := c.try(e, fault); ok {
			return code
		}
	}
	return errors.CodeUnknown
}

// try invokes one classifier, converting a panic into a decline.
func (c *Chain) try(e Entry, fault any) (code errors.Code, matched bool) {
	defer func() {
		if v := recover(); v != nil {
			c.logger.Warn("classifier panicked",
				"classifier", e.Name,
				"panic", v,
			)
			code, matched = errors.Code{}, false
		}
	}()

	r := e.Classifier.Classify(fault)
	if r.HasValue() {
		return errors.Code{}, false
	}
	code = r.Error()
	if code == errors.CodeUnknown {
		return errors.Code{}, false
	}
	return code, true
}

func (c *Chain) checkLocked(name string, classifier Classifier) error {
	if c.frozen.Load() {
		return errors.Newf(CodeFrozen, "cannot register %q: chain is frozen", name)
	}
	if name == "" {
		return errors.New(CodeInvalid, "classifier name is empty")
	}
	if classifier == nil {
		return errors.Newf(CodeInvalid, "classifier %q is nil", name)
	}
	if c.indexLocked(name) >= 0 {
		return errors.Newf(CodeDuplicate, "classifier %q already registered", name)
	}
	return nil
}

func (c *Chain) indexLocked(name string) int {
	return slices.IndexFunc(c.entries, func(e Entry) bool {
		return e.Name == name
	})
}
