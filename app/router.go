package app

import (
	"fmt"
	"regexp"

	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/errors"
)

// isPath is the RegExp to ensure the routes make sense
var isPath = regexp.MustCompile(`^[a-zA-Z0-9_/]+$`).MatchString

// Router allows us to register many handlers with different
// paths and then direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux
type Router struct {
	routes map[string]photosale.Handler
}

var _ photosale.Registry = (*Router)(nil)
var _ photosale.Handler = (*Router)(nil)

// NewRouter returns a new empty router instance.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]photosale.Handler, 10),
	}
}

// Handle adds a new Handler for the given message type.
// It panics if the path is malformed or already registered.
func (r *Router) Handle(msg photosale.Msg, h photosale.Handler) {
	path := msg.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %s", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// handler returns the registered Handler for this path.
// If no path is found, returns a noSuchPath Handler.
// Always returns a non-nil Handler.
func (r *Router) handler(m photosale.Msg) photosale.Handler {
	path := m.Path()
	if h, ok := r.routes[path]; ok {
		return h
	}
	return notFoundHandler(path)
}

// Check dispatches to the proper handler based on path
func (r *Router) Check(ctx photosale.Context, store photosale.KVStore, tx photosale.Tx) (*photosale.CheckResult, error) {
	msg, err := photosale.ExtractMsgFromSum(tx)
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg).Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on path
func (r *Router) Deliver(ctx photosale.Context, store photosale.KVStore, tx photosale.Tx) (*photosale.DeliverResult, error) {
	msg, err := photosale.ExtractMsgFromSum(tx)
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg).Deliver(ctx, store, tx)
}

// notFoundHandler always returns ErrNotFound error regardless of the
// arguments.
type notFoundHandler string

func (path notFoundHandler) Check(photosale.Context, photosale.KVStore, photosale.Tx) (*photosale.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", path)
}

func (path notFoundHandler) Deliver(photosale.Context, photosale.KVStore, photosale.Tx) (*photosale.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", path)
}
