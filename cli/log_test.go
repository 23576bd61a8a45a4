package cli

import (
	"os"
	"testing"

	"github.com/ardnew/teamport/log"
)

func TestLogConfigScan(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		level  log.Level
		format log.Format
		caller bool
		pretty bool
		layout string
	}{
		{
			name:   "separate values",
			args:   []string{"team.txt", "--log-level", "debug", "--log-format", "json"},
			level:  log.LevelDebug,
			format: log.FormatJSON,
			pretty: true,
		},
		{
			name:   "assigned values",
			args:   []string{"--log-level=warn", "--log-time-layout=none", "view"},
			level:  log.LevelWarn,
			format: log.DefaultFormat,
			pretty: true,
			layout: "none",
		},
		{
			name:   "switches",
			args:   []string{"--log-caller", "--no-log-pretty"},
			level:  log.DefaultLevel,
			format: log.DefaultFormat,
			caller: true,
		},
		{
			name:   "assigned switches",
			args:   []string{"--log-caller=false", "--no-log-pretty=false", "--log-pretty=bogus"},
			level:  log.DefaultLevel,
			format: log.DefaultFormat,
			pretty: true,
		},
		{
			name:   "missing value",
			args:   []string{"--log-level", "--log-caller"},
			level:  log.DefaultLevel,
			format: log.DefaultFormat,
			caller: true,
			pretty: true,
		},
		{
			name:   "after terminator",
			args:   []string{"--", "--log-level=error"},
			level:  log.DefaultLevel,
			format: log.DefaultFormat,
			pretty: true,
		},
		{
			name:   "negated value flag",
			args:   []string{"--no-log-level", "error"},
			level:  log.DefaultLevel,
			format: log.DefaultFormat,
			pretty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log.Config(log.WithDefaults(os.Stderr))
			t.Cleanup(func() { log.Config(log.WithDefaults(os.Stderr)) })

			f := logConfig{Pretty: true}
			f.scan(tt.args)

			if got := log.Default().Level(); got != tt.level {
				t.Errorf("level = %v, want %v", got, tt.level)
			}

			if got := log.Default().Format(); got != tt.format {
				t.Errorf("format = %v, want %v", got, tt.format)
			}

			if f.Caller != tt.caller || f.Pretty != tt.pretty {
				t.Errorf("caller, pretty = %v, %v, want %v, %v", f.Caller, f.Pretty, tt.caller, tt.pretty)
			}

			if f.TimeLayout != tt.layout {
				t.Errorf("time layout = %q, want %q", f.TimeLayout, tt.layout)
			}
		})
	}
}
