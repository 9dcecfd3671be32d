package probe

import (
	"context"
	"fmt"
	"strings"
)

// Status is the outcome class of a probe.
type Status int

const (
	// StatusOK indicates the dependency is present and acceptable.
	StatusOK Status = iota
	// StatusNotFound indicates the dependency is absent.
	StatusNotFound
	// StatusIncompatible indicates the dependency is present but unusable.
	StatusIncompatible
)

// String returns the string representation of a Status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusNotFound:
		return "NOT_FOUND"
	case StatusIncompatible:
		return "INCOMPATIBLE"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(b []byte) error {
	switch strings.ToUpper(string(b)) {
	case "OK":
		*s = StatusOK
	case "NOT_FOUND":
		*s = StatusNotFound
	case "INCOMPATIBLE":
		*s = StatusIncompatible
	default:
		return fmt.Errorf("unknown probe status %q", string(b))
	}
	return nil
}

// Result is the immutable outcome of one probe.
type Result struct {
	Status Status `json:"status"`
	Detail string `json:"detail,omitempty"`
	// Advisory marks an OK result that carries a warning.
	Advisory bool `json:"advisory,omitempty"`
	// Hints are operator setup steps shown for non-OK results.
	Hints []string `json:"hints,omitempty"`
}

// OK returns a passing result.
func OK(detail string) Result {
	return Result{Status: StatusOK, Detail: detail}
}

// Advise returns a passing result flagged with an advisory detail.
func Advise(detail string) Result {
	return Result{Status: StatusOK, Detail: detail, Advisory: true}
}

// NotFound returns a result for an absent dependency.
func NotFound(detail string) Result {
	return Result{Status: StatusNotFound, Detail: detail}
}

// Incompatible returns a result for a dependency outside the accepted range.
func Incompatible(detail string) Result {
	return Result{Status: StatusIncompatible, Detail: detail}
}

// WithHints returns a copy of r carrying setup hints.
func (r Result) WithHints(hints ...string) Result {
	r.Hints = append(append([]string(nil), r.Hints...), hints...)
	return r
}

// IsOK reports whether the result passes.
func (r Result) IsOK() bool {
	return r.Status == StatusOK
}

// Probe checks a single toolchain dependency.
// Check must terminate, must not mutate the system and must not panic.
type Probe interface {
	Name() string
	Check(ctx context.Context) Result
}

type funcProbe struct {
	name string
	fn   func(context.Context) Result
}

func (p funcProbe) Name() string                     { return p.name }
func (p funcProbe) Check(ctx context.Context) Result { return p.fn(ctx) }

// Func adapts a function into a Probe.
func Func(name string, fn func(context.Context) Result) Probe {
	return funcProbe{name: name, fn: fn}
}
