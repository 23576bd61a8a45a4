package cmd

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ardnew/teamport/team"
)

func TestFetchRun(t *testing.T) {
	logs := captureLog(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(export))
	}))
	defer srv.Close()

	var out bytes.Buffer

	c := &Fetch{URL: srv.URL + "/abc", Timeout: time.Second}
	if err := c.Run(kongContext(t, &out, nil)); err != nil {
		t.Fatal(err)
	}

	if out.String() != export {
		t.Errorf("output = %q, want %q", out.String(), export)
	}

	if !strings.Contains(logs.String(), `"msg":"export fetched"`) {
		t.Errorf("missing fetch message:\n%s", logs)
	}

	if !strings.Contains(logs.String(), `"digest":"`+team.Digest(export)+`"`) {
		t.Errorf("fetch message lacks the export digest:\n%s", logs)
	}
}

func TestFetchRunFailure(t *testing.T) {
	captureLog(t)

	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	var out bytes.Buffer

	err := (&Fetch{URL: srv.URL, Timeout: time.Second}).Run(kongContext(t, &out, nil))
	if !errors.Is(err, ErrFetch) || !errors.Is(err, team.ErrFetch) {
		t.Errorf("Run() error = %v, want ErrFetch", err)
	}

	if out.Len() != 0 {
		t.Errorf("output written on failure: %q", out.String())
	}
}

func TestFetchRunCancelled(t *testing.T) {
	captureLog(t)

	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	var out bytes.Buffer

	ctx, cancel := context.WithCancel(kongContext(t, &out, nil))
	cancel()

	err := (&Fetch{URL: srv.URL, Timeout: time.Minute}).Run(ctx)
	if !errors.Is(err, ErrFetch) {
		t.Errorf("Run() error = %v, want ErrFetch", err)
	}
}
