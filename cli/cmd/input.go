package cmd

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/ardnew/teamport/catalog"
	"github.com/ardnew/teamport/fetch"
	"github.com/ardnew/teamport/log"
	"github.com/ardnew/teamport/team"
)

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// Input selects a team export and how its tokens are resolved.
type Input struct {
	Source  string        `arg:"" default:"-" help:"Team export file, '-' for stdin, or an http(s) URL"`
	Lenient bool          `help:"Skip lines that fail to resolve instead of failing" negatable:"" short:"l"`
	Catalog []string      `help:"Catalog file(s) loaded over the built-in catalog, before $$TEAMPORT_CATALOG_PATH" placeholder:"FILE" short:"c" type:"existingfile"`
	Timeout time.Duration `default:"5s" help:"Connect and read timeout for URL sources"`
}

// policy returns the failure policy selected by the flags.
func (in *Input) policy() team.Policy {
	if in.Lenient {
		return team.Lenient
	}

	return team.Strict
}

// load reads and parses the export named by Source.
func (in *Input) load(ctx context.Context, logger log.Logger) (team.Team, error) {
	cat, err := in.catalog(ctx, logger)
	if err != nil {
		return nil, err
	}

	r, err := in.open(ctx, logger)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	parser := team.NewParser(cat,
		team.WithPolicy(in.policy()),
		team.WithLogger(logger),
	)

	return parser.ParseReader(ctx, r)
}

// catalog merges the built-in catalog with the files named by flags, the
// catalog search path, and the user catalog, in that order of precedence.
func (in *Input) catalog(
	ctx context.Context,
	logger log.Logger,
) (*catalog.Catalog, error) {
	paths := catalog.SearchPath(os.Getenv(catalog.PathEnv), in.Catalog...)

	if ktx := kongContextFrom(ctx); ktx != nil {
		if user := ktx.Model.Vars()[CatalogIdentifier]; user != "" {
			paths = append(paths, user)
		}
	}

	paths = uniqueFiles(paths)

	cat, err := catalog.Open(ctx, paths...)
	if err != nil {
		return nil, ErrCatalog.Wrap(err)
	}

	logger.DebugContext(ctx, "catalog ready",
		slog.Any("files", paths),
		slog.Int("species", cat.Len(team.KindSpecies)),
		slog.Int("moves", cat.Len(team.KindMove)),
	)

	return cat, nil
}

// open returns a reader over the export text.
// Failure to reach the source is reported as [team.ErrFetch].
func (in *Input) open(ctx context.Context, logger log.Logger) (io.ReadCloser, error) {
	switch {
	case in.Source == stdinSource:
		return io.NopCloser(os.Stdin), nil

	case isURL(in.Source):
		client := &fetch.Client{
			ConnectTimeout: in.Timeout,
			ReadTimeout:    in.Timeout,
			Logger:         logger,
		}

		text, err := client.Text(ctx, in.Source)
		if err != nil {
			return nil, err
		}

		return io.NopCloser(strings.NewReader(text)), nil

	default:
		file, err := os.Open(in.Source)
		if err != nil {
			return nil, team.ErrFetch.Wrap(err).With(slog.String("path", in.Source))
		}

		return file, nil
	}
}

func isURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
