package log

import (
	"slices"
	"strings"
	"testing"
	"time"
)

func TestConfig_Options_SetFields(t *testing.T) {
	c := apply(config{},
		WithLevel(LevelWarn),
		WithFormat(FormatJSON),
		WithCaller(true),
		WithPretty(false),
	)

	if c.level != LevelWarn {
		t.Errorf("expected level warn, got %v", c.level)
	}
	if c.format != FormatJSON {
		t.Errorf("expected format json, got %v", c.format)
	}
	if !c.caller {
		t.Error("expected caller enabled")
	}
	if c.pretty {
		t.Error("expected pretty disabled")
	}
}

func TestConfig_WithDefaults_NilWriterDiscards(t *testing.T) {
	c := makeConfig(nil)

	if c.output == nil {
		t.Fatal("expected non-nil output for nil writer")
	}
	if c.level != DefaultLevel || c.format != DefaultFormat {
		t.Errorf("unexpected defaults: level=%v format=%v", c.level, c.format)
	}
	if c.pretty != DefaultPretty || c.caller != DefaultCaller {
		t.Errorf("unexpected defaults: pretty=%v caller=%v", c.pretty, c.caller)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{" warn ", LevelWarn},
		{"ERROR", LevelError},
		{"info+2", LevelInfo + 2},
		{"bogus", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "trace"},
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{LevelInfo + 2, "info+2"},
		{LevelTrace - 2, "trace-2"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat("JSON") != FormatJSON {
		t.Error("expected JSON to parse as FormatJSON")
	}
	if ParseFormat("text") != FormatText {
		t.Error("expected text to parse as FormatText")
	}
	if ParseFormat("xml") != DefaultFormat {
		t.Error("expected unknown format to fall back to DefaultFormat")
	}
}

func TestLevelsAndFormats_Enumerate(t *testing.T) {
	levels := slices.Collect(Levels())
	if !slices.Equal(levels, []string{"trace", "debug", "info", "warn", "error"}) {
		t.Errorf("unexpected levels: %v", levels)
	}

	formats := slices.Collect(Formats())
	if !slices.Equal(formats, []string{"text", "json"}) {
		t.Errorf("unexpected formats: %v", formats)
	}
}

func TestMakeFormatTimeFunc(t *testing.T) {
	ts := time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name   string
		layout string
		want   string
	}{
		{"named rfc3339", "RFC3339", ts.Format(time.RFC3339)},
		{"named kitchen", "kitchen", ts.Format(time.Kitchen)},
		{"custom", "2006/01/02", "2024/03/09"},
		{"none", "none", ""},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := makeFormatTimeFunc(tt.layout)(ts)
			if got != tt.want {
				t.Errorf("layout %q: got %q, want %q", tt.layout, got, tt.want)
			}
			if tt.want == "" && strings.TrimSpace(got) != "" {
				t.Errorf("expected timestamps disabled, got %q", got)
			}
		})
	}
}
