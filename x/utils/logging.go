package utils

import (
	"time"

	"github.com/iov-one/photosale"
)

// Logging is a decorator that logs every call together with its duration.
// Failures are logged as errors. Successful Deliver calls are logged at the
// info level, successful Check calls at the debug level.
type Logging struct{}

var _ photosale.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

func (Logging) Check(ctx photosale.Context, store photosale.KVStore, tx photosale.Tx, next photosale.Checker) (*photosale.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	var msg string
	if err == nil {
		msg = res.Log
	}
	logCall(ctx, tx, start, msg, err, true)
	return res, err
}

func (Logging) Deliver(ctx photosale.Context, store photosale.KVStore, tx photosale.Tx, next photosale.Deliverer) (*photosale.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	var msg string
	if err == nil {
		msg = res.Log
	}
	logCall(ctx, tx, start, msg, err, false)
	return res, err
}

// logCall writes a single entry even if msg is empty, the key values carry
// the information.
func logCall(ctx photosale.Context, tx photosale.Tx, start time.Time, msg string, err error, check bool) {
	logger := photosale.GetLogger(ctx).With(
		"path", photosale.GetPath(tx),
		"duration", time.Since(start)/time.Microsecond)
	switch {
	case err != nil:
		logger.Error(msg, "err", err)
	case check:
		logger.Debug(msg)
	default:
		logger.Info(msg)
	}
}
