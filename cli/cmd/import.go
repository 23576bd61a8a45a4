package cmd

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ardnew/teamport/log"
	"github.com/ardnew/teamport/team"
)

// Output formats accepted by [Import].
const (
	formatNative = "native"
	formatJSON   = "json"
	formatYAML   = "yaml"
)

// stdoutHolder names the holder when no output file is given.
const stdoutHolder = "stdout"

// Import parses a team export and hands the team to its holder.
//
// The holder is the output file, replaced wholesale, or stdout. Each run ends
// with exactly one terminal message: "team loaded" on success, or the
// returned error, which the caller logs once.
type Import struct {
	Input `embed:""`

	Format string `default:"native" enum:"native,json,yaml" help:"Output format (${enum})" short:"f"`
	Indent int    `default:"2" help:"Indentation for json and yaml output (0 for compact)"`
	Where  string `help:"Keep only entries matching this expression" placeholder:"EXPR" short:"w"`
	Output string `help:"Replace this file with the team instead of writing to stdout" short:"o" type:"path"`
}

// Run executes the import command.
func (c *Import) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	run := runID()
	logger := log.With(slog.String("run", run))

	defer func(err *error) {
		if *err != nil {
			*err = ErrImport.Wrap(*err).With(slog.String("run", run))
		}
	}(&err)

	var pred *team.Predicate

	if c.Where != "" {
		pred, err = team.Compile(c.Where)
		if err != nil {
			return ErrPredicate.Wrap(err)
		}
	}

	logger.DebugContext(ctx, "import start",
		slog.String("source", c.Source),
		slog.String("policy", policyName(c.Lenient)),
		slog.String("format", c.Format),
	)

	tm, err := c.load(ctx, logger)
	if err != nil {
		return err
	}

	parsed := len(tm)

	tm, err = tm.Select(pred)
	if err != nil {
		return ErrPredicate.Wrap(err)
	}

	var buf bytes.Buffer

	err = c.render(ctx, &buf, tm)
	if err != nil {
		return ErrFormat.Wrap(err).With(slog.String("format", c.Format))
	}

	holder := stdoutHolder
	if c.Output != "" && c.Output != stdinSource {
		holder = c.Output
	}

	err = c.deliver(ctx, holder, buf.Bytes())
	if err != nil {
		return ErrWriteOutput.Wrap(err).With(slog.String("holder", holder))
	}

	logger.InfoContext(ctx, "team loaded",
		slog.Int("entries", len(tm)),
		slog.Int("parsed", parsed),
		slog.String("holder", holder),
	)

	return nil
}

func (c *Import) render(ctx context.Context, w io.Writer, tm team.Team) error {
	switch c.Format {
	case formatJSON:
		return tm.FormatJSON(ctx, w, c.Indent)
	case formatYAML:
		return tm.FormatYAML(ctx, w, c.Indent)
	default:
		return tm.Format(ctx, w)
	}
}

// deliver hands the rendered team to its holder. A file holder is replaced
// in one step, so readers never observe a partial team.
func (c *Import) deliver(ctx context.Context, holder string, data []byte) error {
	if holder == stdoutHolder {
		_, err := stdout(ctx).Write(data)

		return err
	}

	return replaceFile(holder, data)
}

// replaceFile writes data to a temporary file beside path and renames it over
// path.
func replaceFile(path string, data []byte) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	_, err = tmp.Write(data)
	if err != nil {
		_ = tmp.Close()

		return err
	}

	err = tmp.Close()
	if err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

func policyName(lenient bool) string {
	if lenient {
		return "lenient"
	}

	return "strict"
}
