// Package probe runs independent toolchain checks and reduces their results
// to a single readiness decision.
//
// A Probe inspects one dependency and always returns a Result; it never
// fails the run. Probes are registered in a Registry in display order,
// executed by a Runner (optionally in parallel), and collected into a
// Report whose entries keep registration order:
//
//	reg := probe.NewRegistry()
//	reg.MustRegister(gitProbe, true)
//	report := probe.NewRunner(probe.WithParallelism(4)).Run(ctx, reg)
//	if !report.Ready {
//	    // report.Unmet() lists the failing required probes
//	}
package probe
