package photosale

import (
	"fmt"
)

// Query modifiers understood by the bucket and index query handlers. The
// modifier follows the path after a question mark, ie. /photos?prefix.
const (
	// KeyQueryMod returns the single entry stored under the exact key.
	KeyQueryMod = ""
	// PrefixQueryMod returns all entries whose key starts with the data.
	PrefixQueryMod = "prefix"
)

// Model is a raw key and value pair returned by a query.
type Model struct {
	Key   []byte
	Value []byte
}

// Pair returns a Model for given key and value.
func Pair(key, value []byte) Model {
	return Model{Key: key, Value: value}
}

// QueryHandler reads models from the store. Handlers never modify the
// state.
type QueryHandler interface {
	Query(db ReadOnlyKVStore, mod string, data []byte) ([]Model, error)
}

// QueryRouter dispatches a query to the handler registered for its path.
type QueryRouter struct {
	routes map[string]QueryHandler
}

// NewQueryRouter returns a router without any routes.
func NewQueryRouter() QueryRouter {
	return QueryRouter{routes: make(map[string]QueryHandler)}
}

// Register binds the handler to given path. Registering the same path
// twice is a programming error and panics.
func (r QueryRouter) Register(path string, h QueryHandler) {
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("query path %q already registered", path))
	}
	r.routes[path] = h
}

// Handler returns the handler registered for the path or nil.
func (r QueryRouter) Handler(path string) QueryHandler {
	return r.routes[path]
}
