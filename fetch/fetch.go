// Package fetch retrieves team exports over HTTP.
//
// A [Client] bounds both the connection phase and every read of the
// response body, so a stalled server fails the fetch instead of hanging
// the caller. Paste page links are rewritten to their raw form with
// [RawURL], and HTML pages are reduced to the export text they display.
package fetch

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/ardnew/teamport/log"
	"github.com/ardnew/teamport/pkg"
	"github.com/ardnew/teamport/team"
)

// DefaultTimeout is the default connect and read timeout.
const DefaultTimeout = 5 * time.Second

// MaxBytes bounds the size of a fetched export.
const MaxBytes = 1 << 20

// ErrReadTimeout is the cause of a fetch whose body stalled.
var ErrReadTimeout = errors.New("read timeout")

// ErrTooLarge is the cause of a fetch whose body exceeds [MaxBytes].
var ErrTooLarge = errors.New("export exceeds size limit")

// ErrNoExport is the cause of a fetch whose HTML page held no export.
var ErrNoExport = errors.New("no export found in page")

// StatusError is the cause of a fetch answered with a non-2xx status.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	if e.Status != "" {
		return "unexpected status " + e.Status
	}

	return "unexpected status " + strconv.Itoa(e.Code)
}

// Client fetches export text. The zero value uses [DefaultTimeout] for
// both timeouts and discards logs.
//
// Every failure is a [team.ErrFetch] wrapping its cause.
type Client struct {
	ConnectTimeout time.Duration // dial and TLS handshake
	ReadTimeout    time.Duration // response headers and each body read
	Logger         log.Logger

	once sync.Once
	http *http.Client
}

func (c *Client) timeouts() (connect, read time.Duration) {
	connect, read = c.ConnectTimeout, c.ReadTimeout
	if connect <= 0 {
		connect = DefaultTimeout
	}

	if read <= 0 {
		read = DefaultTimeout
	}

	return connect, read
}

func (c *Client) client() *http.Client {
	c.once.Do(func() {
		connect, read := c.timeouts()
		dialer := &net.Dialer{Timeout: connect}

		c.http = &http.Client{
			Transport: &http.Transport{
				Proxy:                 http.ProxyFromEnvironment,
				DialContext:           dialer.DialContext,
				TLSHandshakeTimeout:   connect,
				ResponseHeaderTimeout: read,
				MaxIdleConns:          4,
				IdleConnTimeout:       30 * time.Second,
			},
		}
	})

	return c.http
}

// RawURL rewrites a paste page link such as https://pokepast.es/<id> to
// the plain text form https://pokepast.es/<id>/raw. Other URLs, and links
// already in raw form, are returned unchanged.
func RawURL(s string) string {
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") {
		return s
	}

	if host := strings.TrimPrefix(u.Hostname(), "www."); host != "pokepast.es" {
		return s
	}

	id := strings.Trim(u.Path, "/")
	if id == "" || strings.Contains(id, "/") {
		return s
	}

	u.Path = "/" + id + "/raw"

	return u.String()
}

// Text fetches the export at rawURL after rewriting it with [RawURL].
// Cancelling ctx aborts the fetch.
func (c *Client) Text(ctx context.Context, rawURL string) (string, error) {
	target := RawURL(rawURL)
	fail := func(err error) error {
		return team.ErrFetch.Wrap(err).With(slog.String("url", target))
	}

	_, readTimeout := c.timeouts()

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fail(err)
	}

	req.Header.Set("User-Agent", pkg.Name+"/"+strings.TrimSpace(pkg.Version))
	req.Header.Set("Accept", "text/plain, text/html;q=0.9")

	start := time.Now()

	c.Logger.DebugContext(ctx, "fetch start", slog.String("url", target))

	resp, err := c.client().Do(req)
	if err != nil {
		return "", fail(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fail(&StatusError{Code: resp.StatusCode, Status: resp.Status})
	}

	body := newIdleReader(ctx, resp.Body, readTimeout, cancel)
	defer body.stop()

	data, err := io.ReadAll(io.LimitReader(body, MaxBytes+1))
	if err != nil {
		return "", fail(err)
	}

	if len(data) > MaxBytes {
		return "", fail(ErrTooLarge)
	}

	text := string(data)

	if isHTML(resp.Header.Get("Content-Type")) {
		if text, err = extract(data); err != nil {
			return "", fail(err)
		}
	}

	c.Logger.DebugContext(ctx, "fetch complete",
		slog.String("url", target),
		slog.Int("bytes", len(data)),
		slog.Duration("elapsed", time.Since(start)))

	return text, nil
}

// Result is the outcome of an asynchronous fetch.
type Result struct {
	Text string
	Err  error
}

// Go starts fetching rawURL and returns a channel that receives exactly one
// [Result] and is then closed.
func (c *Client) Go(ctx context.Context, rawURL string) <-chan Result {
	ch := make(chan Result, 1)

	go func() {
		defer close(ch)

		text, err := c.Text(ctx, rawURL)
		ch <- Result{Text: text, Err: err}
	}()

	return ch
}

func isHTML(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)

	return err == nil && (mt == "text/html" || mt == "application/xhtml+xml")
}

// extract returns the text of every <pre> block in an HTML page, one
// export block per <pre>.
func extract(page []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return "", err
	}

	var blocks []string

	doc.Find("pre").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})

	if len(blocks) == 0 {
		return "", ErrNoExport
	}

	return strings.Join(blocks, "\n\n") + "\n", nil
}
