package team

import (
	"log/slog"
	"strconv"
	"strings"
)

// FailureKind classifies a parse or retrieval failure.
type FailureKind int

const (
	FetchFailure FailureKind = iota + 1
	UnresolvedSpecies
	UnresolvedToken
	MalformedLine
)

func (k FailureKind) String() string {
	switch k {
	case FetchFailure:
		return "FetchFailure"
	case UnresolvedSpecies:
		return "UnresolvedSpecies"
	case UnresolvedToken:
		return "UnresolvedToken"
	case MalformedLine:
		return "MalformedLine"
	default:
		return "FailureKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Fatal reports whether failures of this kind abort regardless of [Policy].
func (k FailureKind) Fatal() bool {
	return k == FetchFailure || k == UnresolvedSpecies
}

// Predefined errors (sentinel values).
var (
	ErrFetch             = newError(FetchFailure, "fetch failed")
	ErrUnresolvedSpecies = newError(UnresolvedSpecies, "unknown species")
	ErrUnresolvedToken   = newError(UnresolvedToken, "unresolved token")
	ErrMalformedLine     = newError(MalformedLine, "malformed line")
	ErrPredicate         = newError(0, "invalid predicate")
)

// Error is a failure raised while retrieving or parsing a team.
// It implements both error and slog.LogValuer interfaces.
//
// Every Error derives from one of the predefined sentinels, and
// [errors.Is] matches an Error against the sentinel it derives from.
type Error struct {
	Kind        FailureKind
	Line        int    // 1-based source line, zero when not tied to a line
	Token       string // offending token, after normalization
	Subject     Kind   // catalog kind of an unresolved token
	Suggestions []string
	Digest      string // digest of the export that failed to parse, see [Digest]

	base  *Error
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

func newError(kind FailureKind, msg string) *Error {
	return &Error{Kind: kind, msg: msg}
}

func (e *Error) root() *Error {
	if e.base != nil {
		return e.base
	}

	return e
}

func (e *Error) clone() *Error {
	c := *e
	c.base = e.root()

	return &c
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	if e.Line > 0 {
		b.WriteString("line ")
		b.WriteString(strconv.Itoa(e.Line))
		b.WriteString(": ")
	}

	b.WriteString(e.msg)

	if e.Token != "" {
		b.WriteByte(' ')
		b.WriteString(strconv.Quote(e.Token))
	}

	if len(e.Suggestions) > 0 {
		quoted := make([]string, len(e.Suggestions))
		for i, s := range e.Suggestions {
			quoted[i] = strconv.Quote(s)
		}

		b.WriteString(" (did you mean ")
		b.WriteString(strings.Join(quoted, ", "))
		b.WriteString("?)")
	}

	if e.err != nil {
		b.WriteString(": ")
		b.WriteString(e.err.Error())
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel e derives from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t == e.root()
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+7)
	attrs = append(attrs, slog.String("error", e.msg))

	if e.Kind != 0 {
		attrs = append(attrs, slog.String("kind", e.Kind.String()))
	}

	if e.Line > 0 {
		attrs = append(attrs, slog.Int("line", e.Line))
	}

	if e.Token != "" {
		attrs = append(attrs, slog.String("token", e.Token))
	}

	if len(e.Suggestions) > 0 {
		attrs = append(attrs,
			slog.String("suggest", strings.Join(e.Suggestions, ",")))
	}

	if e.Digest != "" {
		attrs = append(attrs, slog.String("digest", e.Digest))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	c := e.clone()
	c.err = err

	return c
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	c := e.clone()
	c.attrs = make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(c.attrs, e.attrs)
	copy(c.attrs[len(e.attrs):], attrs)

	return c
}

// At returns a copy of the error tied to a source line.
func (e *Error) At(line int) *Error {
	c := e.clone()
	c.Line = line

	return c
}

// About returns a copy of the error naming the offending token.
func (e *Error) About(tok string) *Error {
	c := e.clone()
	c.Token = tok

	return c
}

// For returns a copy of the error describing an unresolved token of the
// given catalog kind.
func (e *Error) For(kind Kind, tok string) *Error {
	c := e.About(tok)
	c.Subject = kind
	c.msg = "unknown " + kind.String()

	return c
}
