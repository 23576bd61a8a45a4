package fetch

import (
	"context"
	"errors"
	"io"
	"time"
)

// idleReader fails a body read that makes no progress within timeout by
// cancelling the request context.
type idleReader struct {
	ctx     context.Context
	r       io.Reader
	timeout time.Duration
	timer   *time.Timer
}

func newIdleReader(
	ctx context.Context,
	r io.Reader,
	timeout time.Duration,
	cancel context.CancelCauseFunc,
) *idleReader {
	return &idleReader{
		ctx:     ctx,
		r:       r,
		timeout: timeout,
		timer:   time.AfterFunc(timeout, func() { cancel(ErrReadTimeout) }),
	}
}

func (r *idleReader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if err != nil && errors.Is(context.Cause(r.ctx), ErrReadTimeout) {
		return n, ErrReadTimeout
	}

	if n > 0 {
		r.timer.Reset(r.timeout)
	}

	return n, err
}

func (r *idleReader) stop() { r.timer.Stop() }
