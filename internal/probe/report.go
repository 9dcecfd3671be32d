package probe

import (
	"time"

	"github.com/Aman-CERP/uecheck/internal/output"
)

// Entry is one probe's outcome within a report.
type Entry struct {
	Name     string        `json:"name"`
	Required bool          `json:"required"`
	Result   Result        `json:"result"`
	Duration time.Duration `json:"duration_ns"`
}

// Report is the readiness outcome of a run. It is not mutated after
// construction.
type Report struct {
	Entries []Entry `json:"entries"`
	Ready   bool    `json:"ready"`
}

// NewReport builds a report from entries in registration order.
func NewReport(entries []Entry) Report {
	return Report{Entries: entries, Ready: Aggregate(entries)}
}

// Aggregate reports whether every required entry is OK. Informational
// entries are ignored. The result does not depend on entry order.
func Aggregate(entries []Entry) bool {
	for _, e := range entries {
		if e.Required && !e.Result.IsOK() {
			return false
		}
	}
	return true
}

// Unmet returns the names of required entries that are not OK, in order.
func (r Report) Unmet() []string {
	var names []string
	for _, e := range r.Entries {
		if e.Required && !e.Result.IsOK() {
			names = append(names, e.Name)
		}
	}
	return names
}

// Advisories returns OK entries that carry an advisory.
func (r Report) Advisories() []Entry {
	var out []Entry
	for _, e := range r.Entries {
		if e.Result.IsOK() && e.Result.Advisory {
			out = append(out, e)
		}
	}
	return out
}

// Lookup finds an entry by probe name.
func (r Report) Lookup(name string) (Entry, bool) {
	for _, e := range r.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Print renders the report in registration order. Hints are shown for
// failing entries; verbose adds per-probe durations.
func (r Report) Print(w *output.Writer, verbose bool) {
	w.Section("TOOLCHAIN CHECK")

	for _, e := range r.Entries {
		msg := e.Name + ": " + describe(e.Result)
		if verbose {
			msg += " (" + e.Duration.Round(time.Millisecond).String() + ")"
		}

		switch {
		case !e.Required:
			w.Info(msg + " [informational]")
		case e.Result.IsOK() && e.Result.Advisory:
			w.Warning(msg)
		case e.Result.IsOK():
			w.Success(msg)
		default:
			w.Error(msg)
		}

		if !e.Result.IsOK() && e.Required {
			for _, h := range e.Result.Hints {
				w.Status("", h)
			}
		}
	}

	w.Newline()
	if r.Ready {
		w.Success("Status: READY")
		return
	}
	unmet := r.Unmet()
	w.Errorf("Status: NOT READY (%d unmet requirement(s))", len(unmet))
	w.List(unmet)
}

func describe(res Result) string {
	switch {
	case res.Detail != "":
		if res.Status == StatusOK {
			return res.Detail
		}
		return res.Status.String() + " - " + res.Detail
	default:
		return res.Status.String()
	}
}
