package cmd

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/ardnew/teamport/fetch"
	"github.com/ardnew/teamport/log"
	"github.com/ardnew/teamport/team"
)

// Fetch prints the export text behind a paste URL.
type Fetch struct {
	URL     string        `arg:"" help:"Paste URL; pokepast.es pages are fetched as /raw"`
	Timeout time.Duration `default:"5s" help:"Connect and read timeout"`
}

// Run executes the fetch command.
func (c *Fetch) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	run := runID()
	logger := log.With(slog.String("run", run))

	client := &fetch.Client{
		ConnectTimeout: c.Timeout,
		ReadTimeout:    c.Timeout,
		Logger:         logger,
	}

	var res fetch.Result

	select {
	case res = <-client.Go(ctx, c.URL):
	case <-ctx.Done():
		res.Err = context.Cause(ctx)
	}

	if res.Err != nil {
		return ErrFetch.Wrap(res.Err).With(slog.String("run", run))
	}

	_, err = io.WriteString(stdout(ctx), res.Text)
	if err != nil {
		return ErrWriteOutput.Wrap(err).With(slog.String("run", run))
	}

	logger.InfoContext(ctx, "export fetched",
		slog.String("url", fetch.RawURL(c.URL)),
		slog.Int("bytes", len(res.Text)),
		slog.String("digest", team.Digest(res.Text)),
	)

	return nil
}
