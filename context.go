package kova

import (
	"log/slog"
	"time"
)

// Config carries the per-call options of a validation run.
type Config struct {
	// FailFast stops sibling constraint evaluation after the first violation
	// within the top-level call. Default is false: all siblings run and all
	// violations accumulate in declaration order.
	FailFast bool
	// Clock overrides the time source used by temporal constraints. Nil
	// means time.Now.
	Clock func() time.Time
	// Logger receives one entry per constraint evaluation. Nil disables
	// constraint logging.
	Logger func(LogEntry)
}

// Option configures a validation run.
type Option func(*Config)

// WithFailFast stops sibling evaluation after the first violation.
func WithFailFast() Option {
	return func(c *Config) { c.FailFast = true }
}

// WithClock overrides the time source seen by temporal constraints, which
// makes future/past checks deterministic in tests.
func WithClock(clock func() time.Time) Option {
	return func(c *Config) {
		if clock != nil {
			c.Clock = clock
		}
	}
}

// WithLogger registers a callback receiving one LogEntry per constraint
// evaluation.
func WithLogger(logger func(LogEntry)) Option {
	return func(c *Config) { c.Logger = logger }
}

// LogKind discriminates constraint evaluation outcomes in log entries.
type LogKind int

const (
	// LogSatisfied records a constraint that passed.
	LogSatisfied LogKind = iota
	// LogViolated records a constraint that failed.
	LogViolated
)

func (k LogKind) String() string {
	if k == LogViolated {
		return "violated"
	}
	return "satisfied"
}

// LogEntry describes one constraint evaluation. Entries are emitted for
// observability only and never influence control flow or the final result.
type LogEntry struct {
	Kind         LogKind
	ConstraintID string
	Root         string
	Path         string
	Input        any
	// Args is the raw argument list before message resolution; only set for
	// violations.
	Args []any
}

// SlogLogger bridges constraint logging to a structured slog logger.
// Satisfied constraints log at debug level, violations at info level.
func SlogLogger(log *slog.Logger) func(LogEntry) {
	return func(e LogEntry) {
		attrs := []any{
			slog.String("constraint", e.ConstraintID),
			slog.String("root", e.Root),
			slog.String("path", e.Path),
			slog.Any("input", e.Input),
		}
		if e.Kind == LogViolated {
			log.Info("constraint violated", append(attrs, slog.Any("args", e.Args))...)
			return
		}
		log.Debug("constraint satisfied", attrs...)
	}
}

// Context is the per-call state of one top-level validation: configuration,
// the current path stack, the current root-type label and the identity set
// used for cycle detection. A Context is exclusively owned by one top-level
// call and must not be shared across concurrent validations.
type Context struct {
	cfg      Config
	segments []Segment
	root     string
	visiting map[any]struct{}
	// halted is set by the first violation under fail-fast; constraints
	// evaluated afterwards in the same call are skipped entirely.
	halted bool
}

func newContext(cfg Config) *Context {
	return &Context{cfg: cfg}
}

// Config returns the active configuration.
func (vc *Context) Config() Config { return vc.cfg }

// Path returns a snapshot of the current location in the object graph.
func (vc *Context) Path() Path { return NewPath(vc.segments...) }

// Root returns the current root-type label.
func (vc *Context) Root() string { return vc.root }

// Now returns the configured clock's time, or time.Now.
func (vc *Context) Now() time.Time {
	if vc.cfg.Clock != nil {
		return vc.cfg.Clock()
	}
	return time.Now()
}

func (vc *Context) push(s Segment) { vc.segments = append(vc.segments, s) }

func (vc *Context) pop() { vc.segments = vc.segments[:len(vc.segments)-1] }

// enter registers a node identity as in-progress. It reports false when the
// identity is already on the current descent path, which signals a cycle.
func (vc *Context) enter(key any) bool {
	if vc.visiting == nil {
		vc.visiting = make(map[any]struct{})
	}
	if _, ok := vc.visiting[key]; ok {
		return false
	}
	vc.visiting[key] = struct{}{}
	return true
}

// leave removes a node identity on return from its descent, including early
// and failed returns.
func (vc *Context) leave(key any) { delete(vc.visiting, key) }

// skipping reports whether fail-fast has tripped for this call.
func (vc *Context) skipping() bool { return vc.halted }

// halt trips the fail-fast short-circuit when the configuration asks for it.
func (vc *Context) halt() {
	if vc.cfg.FailFast {
		vc.halted = true
	}
}

func (vc *Context) log(e LogEntry) {
	if vc.cfg.Logger != nil {
		vc.cfg.Logger(e)
	}
}
