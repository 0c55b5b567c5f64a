package weavetest

import (
	"testing"

	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/errors"
)

func TestDecoratorWithError(t *testing.T) {
	d := Decorator{
		CheckErr:   errors.ErrUnauthorized,
		DeliverErr: errors.ErrNotFound,
	}

	// Handler is never called when the decorator fails. A nil handler
	// would panic otherwise.
	var handler photosale.Handler

	_, err := d.Check(nil, nil, nil, handler)
	if want := errors.ErrUnauthorized; !want.Is(err) {
		t.Errorf("want %q, got %q", want, err)
	}

	_, err = d.Deliver(nil, nil, nil, handler)
	if want := errors.ErrNotFound; !want.Is(err) {
		t.Errorf("want %q, got %q", want, err)
	}
	assertCounts(t, &d, 1, 1)
}

func TestDecorate(t *testing.T) {
	var (
		d Decorator
		h Handler
	)
	decorated := Decorate(&h, &d)

	_, _ = decorated.Check(nil, nil, nil)
	assertCounts(t, &d, 1, 0)
	assertCounts(t, &h, 1, 0)

	_, _ = decorated.Deliver(nil, nil, nil)
	_, _ = decorated.Deliver(nil, nil, nil)
	assertCounts(t, &d, 1, 2)
	assertCounts(t, &h, 1, 2)

	// Failing calls are counted as well, but never reach the handler.
	d.DeliverErr = errors.ErrNotFound
	_, _ = decorated.Deliver(nil, nil, nil)
	assertCounts(t, &d, 1, 3)
	assertCounts(t, &h, 1, 2)
}

type counter interface {
	CheckCallCount() int
	DeliverCallCount() int
	CallCount() int
}

func assertCounts(t testing.TB, c counter, wantCheck, wantDeliver int) {
	t.Helper()
	if got := c.CheckCallCount(); got != wantCheck {
		t.Errorf("want %d checks, got %d", wantCheck, got)
	}
	if got := c.DeliverCallCount(); got != wantDeliver {
		t.Errorf("want %d delivers, got %d", wantDeliver, got)
	}
	if got := c.CallCount(); got != wantCheck+wantDeliver {
		t.Errorf("want %d total, got %d", wantCheck+wantDeliver, got)
	}
}
