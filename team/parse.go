package team

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"

	"github.com/ardnew/teamport/log"
)

// Parser parses team exports against a catalog.
//
// A Parser holds only configuration; every call to [Parser.Parse] keeps its
// state on its own stack, so a Parser is safe for concurrent use.
type Parser struct {
	catalog     Catalog
	policy      Policy
	logger      log.Logger
	namespace   string
	suggestions int
}

// NewParser returns a parser that resolves tokens against cat.
func NewParser(cat Catalog, opts ...Option) *Parser {
	p := &Parser{catalog: cat}

	applyDefaults(p)
	applyOptions(p, opts...)

	return p
}

// Parse parses text with a one-off parser using the given policy.
func Parse(
	ctx context.Context,
	cat Catalog,
	text string,
	policy Policy,
) (Team, error) {
	return NewParser(cat, WithPolicy(policy)).Parse(ctx, text)
}

// ParseReader parses the export read from r. Lines are read ahead of the
// parser on a separate goroutine. A read failure is reported as [ErrFetch].
func (p *Parser) ParseReader(ctx context.Context, r io.Reader) (Team, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	return p.parse(ctx, ra)
}

// Digest returns the digest of an export's text, as reported in
// [Error.Digest] and in the parser's log records.
func Digest(text string) string {
	return formatDigest(xxh3.HashString(text))
}

func formatDigest(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}

// noEntry is the cursor value between blocks.
const noEntry = -1

// build is the state of a single parse.
type build struct {
	*Parser

	ctx     context.Context
	team    Team
	cursor  int      // index of the entry being built, or noEntry
	line    int      // 1-based number of the line being handled
	pending []*Error // failures raised by the current line
	skipped int
}

// Parse parses text into a team.
//
// Text is handled one physical line at a time. An empty line ends the
// current block; the first line of a block is a header, and later lines are
// fields of the entry the header created. Failures are settled at the end
// of each line: fatal ones and those the policy aborts on end the parse
// with a nil team.
func (p *Parser) Parse(ctx context.Context, text string) (Team, error) {
	return p.parse(ctx, strings.NewReader(text))
}

func (p *Parser) parse(ctx context.Context, r io.Reader) (Team, error) {
	b := &build{
		Parser: p,
		ctx:    ctx,
		team:   Team{},
		cursor: noEntry,
	}

	hash := xxh3.New()
	src := bufio.NewReader(io.TeeReader(r, hash))

	p.logger.DebugContext(ctx, "parse start")

	for {
		raw, err := src.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, ErrFetch.Wrap(err).With(slog.String("source", "reader"))
		}

		if raw == "" && err != nil {
			break
		}

		b.line++
		b.step(strings.TrimSpace(raw))

		if failure := b.settle(); failure != nil {
			// The digest covers the whole export, not just the lines read.
			_, _ = io.Copy(io.Discard, src)

			failure.Digest = formatDigest(hash.Sum64())

			p.logger.DebugContext(ctx, "parse aborted", slog.Any("error", failure))

			return nil, failure
		}

		if err != nil {
			break
		}
	}

	p.logger.DebugContext(ctx, "parse complete",
		slog.String("digest", formatDigest(hash.Sum64())),
		slog.Int("lines", b.line),
		slog.Int("entries", len(b.team)),
		slog.Int("skipped", b.skipped))

	return b.team, nil
}

// step handles one trimmed line.
func (b *build) step(line string) {
	switch {
	case line == "":
		b.cursor = noEntry
	case b.cursor == noEntry:
		b.header(line)
	default:
		b.field(b.team[b.cursor], line)
	}
}

// fail records a failure of the current line.
func (b *build) fail(err *Error) {
	b.pending = append(b.pending, err.At(b.line))
}

// settle resolves the failures of the current line in the order they were
// raised and returns the first one that aborts the parse.
func (b *build) settle() *Error {
	defer func() { b.pending = b.pending[:0] }()

	for _, err := range b.pending {
		err = b.suggest(err)

		if err.Kind.Fatal() || b.policy.Handle(err) == Abort {
			return err
		}

		b.skipped++
		b.logger.InfoContext(b.ctx, "line skipped", slog.Any("error", err))
	}

	return nil
}

func (b *build) suggest(err *Error) *Error {
	if b.suggestions == 0 || err.Kind != UnresolvedToken ||
		err.Subject == KindForm {
		return err
	}

	s, ok := b.catalog.(Suggester)
	if !ok {
		return err
	}

	if alt := s.Suggest(err.Subject, err.Token, b.suggestions); len(alt) > 0 {
		err = err.clone()
		err.Suggestions = alt
	}

	return err
}

// resolve looks up id and records a failure on a miss.
func (b *build) resolve(kind Kind, id string) (Ref, bool) {
	ref, ok := b.catalog.Resolve(kind, id)
	if !ok {
		b.fail(ErrUnresolvedToken.For(kind, id))
	}

	return ref, ok
}
