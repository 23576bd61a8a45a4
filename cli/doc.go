// Package cli contains the command line interface for teamport.
//
// # Usage
//
// The default command imports a team export from a file, stdin, or URL and
// writes the resolved team:
//
//	teamport team.txt
//	teamport --lenient --format=json https://pokepast.es/abc123
//	teamport import --where '"transform" in Moves' --output party.txt -
//
// The other commands are fetch, view, and init.
//
// # Configuration
//
// Flag defaults are read from a YAML file in the user configuration
// directory (for example, ~/.config/teamport/config). Flags live under the
// "config" key; nested keys are joined with hyphens:
//
//	config:
//	  lenient: true
//	  log:
//	    level: debug
//
// The init command writes the current flag values to that file. A
// config.json beside it is read as well.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output on terminals
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/teamport/pprof)
package cli
