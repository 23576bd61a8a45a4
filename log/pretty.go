package log

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles used by the pretty handlers. Styles are bound to
// a renderer for the handler's writer, so color is only emitted when that
// writer is a terminal.
type palette struct {
	key, str, num, dur, when, null lipgloss.Style
	yes, no                        lipgloss.Style
	debug, info, warn, fail        lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return palette{
		key:   fg("8"),
		str:   fg("6"),
		num:   fg("3"),
		dur:   fg("5"),
		when:  fg("4"),
		null:  fg("8"),
		yes:   fg("2"),
		no:    fg("1"),
		debug: fg("4"),
		info:  fg("2"),
		warn:  fg("3").Bold(true),
		fail:  fg("1").Bold(true),
	}
}

func (p palette) level(l slog.Level) lipgloss.Style {
	switch {
	case l >= slog.LevelError:
		return p.fail
	case l >= slog.LevelWarn:
		return p.warn
	case l >= slog.LevelInfo:
		return p.info
	default:
		return p.debug
	}
}

// prettyHandler is the shared state of the pretty text and JSON handlers.
type prettyHandler struct {
	opts       slog.HandlerOptions
	formatTime FormatTime
	style      palette
	mu         *sync.Mutex
	w          io.Writer
	prefix     string      // dotted group prefix applied to record attrs
	attrs      []slog.Attr // attrs from WithAttrs, keys already qualified
}

func newPrettyHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
	formatTime FormatTime,
) prettyHandler {
	if formatTime == nil {
		formatTime = makeFormatTimeFunc(DefaultTimeLayout)
	}

	return prettyHandler{
		opts:       *opts,
		formatTime: formatTime,
		style:      newPalette(w),
		mu:         &sync.Mutex{},
		w:          w,
	}
}

func (h prettyHandler) enabled(level slog.Level) bool {
	floor := slog.LevelInfo
	if h.opts.Level != nil {
		floor = h.opts.Level.Level()
	}

	return level >= floor
}

func (h prettyHandler) withAttrs(attrs []slog.Attr) prettyHandler {
	qualified := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	qualified = append(qualified, h.attrs...)

	for _, a := range attrs {
		qualified = append(qualified, slog.Attr{Key: h.prefix + a.Key, Value: a.Value})
	}

	h.attrs = qualified

	return h
}

func (h prettyHandler) withGroup(name string) prettyHandler {
	if name != "" {
		h.prefix += name + "."
	}

	return h
}

// header returns the fixed leading fields of a record in output order.
func (h prettyHandler) header(r slog.Record, quote bool) [][2]string {
	q := func(s string) string {
		if quote {
			return strconv.Quote(s)
		}

		return s
	}

	fields := make([][2]string, 0, 4)

	if !r.Time.IsZero() {
		if s := h.formatTime(r.Time); s != "" {
			fields = append(fields, [2]string{slog.TimeKey, h.style.when.Render(q(s))})
		}
	}

	fields = append(fields, [2]string{
		slog.LevelKey,
		h.style.level(r.Level).Render(q(strings.ToUpper(Level(r.Level).String()))),
	})

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			fields = append(fields, [2]string{
				slog.SourceKey,
				h.style.str.Render(q(src.File + ":" + strconv.Itoa(src.Line))),
			})
		}
	}

	return append(fields, [2]string{slog.MessageKey, q(r.Message)})
}

// flatten appends the key/rendered-value pairs of v, expanding groups into
// dotted keys.
func (h prettyHandler) flatten(
	fields [][2]string,
	key string,
	v slog.Value,
	quote bool,
) [][2]string {
	v = v.Resolve()

	if v.Kind() == slog.KindGroup {
		for _, a := range v.Group() {
			sub := a.Key
			if key != "" {
				sub = key + "." + a.Key
			}

			fields = h.flatten(fields, sub, a.Value, quote)
		}

		return fields
	}

	if key == "" {
		return fields
	}

	return append(fields, [2]string{key, h.value(v, quote)})
}

func (h prettyHandler) value(v slog.Value, quote bool) string {
	switch v.Kind() {
	case slog.KindString:
		s := v.String()
		if quote {
			s = strconv.Quote(s)
		}

		return h.style.str.Render(s)

	case slog.KindInt64:
		return h.style.num.Render(strconv.FormatInt(v.Int64(), 10))

	case slog.KindUint64:
		return h.style.num.Render(strconv.FormatUint(v.Uint64(), 10))

	case slog.KindFloat64:
		return h.style.num.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64))

	case slog.KindBool:
		if v.Bool() {
			return h.style.yes.Render("true")
		}

		return h.style.no.Render("false")

	case slog.KindDuration:
		s := v.Duration().String()
		if quote {
			s = strconv.Quote(s)
		}

		return h.style.dur.Render(s)

	case slog.KindTime:
		s := v.Time().Format(time.RFC3339)
		if quote {
			s = strconv.Quote(s)
		}

		return h.style.when.Render(s)

	default:
		if v.Any() == nil {
			return h.style.null.Render("null")
		}

		s := v.String()
		if err, ok := v.Any().(error); ok {
			s = err.Error()
		}

		if quote {
			s = strconv.Quote(s)
		}

		return h.style.str.Render(s)
	}
}

func (h prettyHandler) fields(r slog.Record, quote bool) [][2]string {
	fields := h.header(r, quote)

	for _, a := range h.attrs {
		fields = h.flatten(fields, a.Key, a.Value, quote)
	}

	r.Attrs(func(a slog.Attr) bool {
		fields = h.flatten(fields, h.prefix+a.Key, a.Value, quote)

		return true
	})

	return fields
}

func (h prettyHandler) write(buf *bytes.Buffer) error {
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

// prettyTextHandler writes one "key=value" line per record.
type prettyTextHandler struct{ prettyHandler }

func newPrettyTextHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
	formatTime FormatTime,
) *prettyTextHandler {
	return &prettyTextHandler{newPrettyHandler(w, opts, formatTime)}
}

func (h *prettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.enabled(level)
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	for i, f := range h.fields(r, false) {
		if i > 0 {
			buf.WriteByte(' ')
		}

		buf.WriteString(h.style.key.Render(f[0]))
		buf.WriteByte('=')
		buf.WriteString(f[1])
	}

	return h.write(buf)
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyTextHandler{h.withAttrs(attrs)}
}

func (h *prettyTextHandler) WithGroup(name string) slog.Handler {
	return &prettyTextHandler{h.withGroup(name)}
}

// prettyJSONHandler writes one indented JSON object per record.
type prettyJSONHandler struct{ prettyHandler }

func newPrettyJSONHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
	formatTime FormatTime,
) *prettyJSONHandler {
	return &prettyJSONHandler{newPrettyHandler(w, opts, formatTime)}
}

func (h *prettyJSONHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.enabled(level)
}

func (h *prettyJSONHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)
	buf.WriteString("{\n")

	for i, f := range h.fields(r, true) {
		if i > 0 {
			buf.WriteString(",\n")
		}

		buf.WriteString("  ")
		buf.WriteString(h.style.key.Render(strconv.Quote(f[0])))
		buf.WriteString(": ")
		buf.WriteString(f[1])
	}

	buf.WriteString("\n}")

	return h.write(buf)
}

func (h *prettyJSONHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyJSONHandler{h.withAttrs(attrs)}
}

func (h *prettyJSONHandler) WithGroup(name string) slog.Handler {
	return &prettyJSONHandler{h.withGroup(name)}
}
