package log_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/teamport/log"
)

func Example_basic() {
	logger := log.Make(os.Stderr)
	logger.Info("team loaded", slog.Int("entries", 6))
}

func Example_configuration() {
	logger := log.Make(os.Stderr,
		log.WithLevel(log.LevelDebug),
		log.WithFormat(log.FormatJSON),
		log.WithTimeLayout("RFC3339Nano"),
		log.WithCaller(true))

	logger.Debug("debug message with caller info")
}

func Example_withAttributes() {
	logger := log.Make(os.Stderr).With(slog.String("run", "1f2e3d4c"))

	logger.Info("fetching paste")
	logger.Debug("fetch details", slog.String("url", "https://pokepast.es/abc/raw"))
}

func Example_withContext() {
	ctx := context.Background()

	logger := log.Make(os.Stderr, log.WithPretty(false))
	logger.InfoContext(ctx, "parse complete", slog.Int("entries", 1))
}
