// Package profile provides optional runtime profiling for teamport.
//
// Profiling is compiled in only with the "pprof" build tag. Without it,
// [Profiler.Start] returns a no-op [Stopper] and [Modes] is empty.
//
// # Modes
//
// With the pprof tag the supported modes are allocs, block, clock, cpu,
// goroutine, heap, mem, mutex, thread, and trace. Use [Modes] to list them.
//
//	p := profile.Profiler{Mode: "cpu", Path: "/tmp/profiles", Quiet: true}
//	defer p.Start().Stop()
//
// Profile files are written to Path with names matching the mode (for
// example, cpu.pprof). Analyze them with:
//
//	go tool pprof -http=: /tmp/profiles/cpu.pprof
//
// The pprof build also registers the [net/http/pprof] handlers.
package profile

// Tag is the build tag that enables profiling.
const Tag = `pprof`
