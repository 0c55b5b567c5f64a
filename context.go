/*
Package photosale defines the interfaces shared by the packages of the photo
sale ledger: messages and transactions, handlers and decorators, the key
value store and the addresses that own wallets and photos.

Call scoped values travel in a context.Context. Each value has a setter and
a getter:

  WithHeight(Context, int64) Context
  GetHeight(Context) (int64, bool)

Setters of values that must not change during a call, like the height or
the chain id, panic when the value is already present.
*/
package photosale

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/tendermint/tendermint/libs/log"
)

// Context is the standard context. The functions below give it typed
// accessors for the ledger values.
type Context = context.Context

type contextKey int

const (
	contextKeyHeight contextKey = iota
	contextKeyChainID
	contextKeyLogger
	contextKeyTime
)

var (
	// DefaultLogger is returned for a context without a logger.
	DefaultLogger = log.NewNopLogger()

	// IsValidChainID returns true for 6 to 20 letters, digits,
	// underscores or dashes.
	IsValidChainID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`).MatchString
)

// WithHeight sets the height of the call. Every delivered call advances
// the height by one.
func WithHeight(ctx Context, height int64) Context {
	if _, ok := GetHeight(ctx); ok {
		panic("height already set")
	}
	return context.WithValue(ctx, contextKeyHeight, height)
}

// GetHeight returns the height of the call and false if it was not set.
func GetHeight(ctx Context) (int64, bool) {
	h, ok := ctx.Value(contextKeyHeight).(int64)
	return h, ok
}

// WithBlockTime sets the time of the call. The time is kept in UTC.
func WithBlockTime(ctx Context, t time.Time) Context {
	if _, ok := BlockTime(ctx); ok {
		panic("block time already set")
	}
	return context.WithValue(ctx, contextKeyTime, t.UTC())
}

// BlockTime returns the time of the call and false if it was not set.
func BlockTime(ctx Context) (time.Time, bool) {
	t, ok := ctx.Value(contextKeyTime).(time.Time)
	return t, ok
}

// WithChainID sets the chain id. It panics if the id is invalid or was
// already set.
func WithChainID(ctx Context, chainID string) Context {
	if ctx.Value(contextKeyChainID) != nil {
		panic("chain id already set")
	}
	if !IsValidChainID(chainID) {
		panic(fmt.Sprintf("invalid chain id %q", chainID))
	}
	return context.WithValue(ctx, contextKeyChainID, chainID)
}

// GetChainID returns the chain id or an empty string.
func GetChainID(ctx Context) string {
	id, _ := ctx.Value(contextKeyChainID).(string)
	return id
}

// WithLogger sets the logger used by handlers of the call.
func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// WithLogInfo returns a context whose logger adds the key value pairs to
// every entry.
func WithLogInfo(ctx Context, keyvals ...interface{}) Context {
	return WithLogger(ctx, GetLogger(ctx).With(keyvals...))
}

// GetLogger returns the logger of the call or DefaultLogger.
func GetLogger(ctx Context) log.Logger {
	if ctx == nil {
		return DefaultLogger
	}
	if logger, ok := ctx.Value(contextKeyLogger).(log.Logger); ok {
		return logger
	}
	return DefaultLogger
}
