package errors

import (
	"fmt"
)

const (
	// SuccessABCICode is returned for a nil error.
	SuccessABCICode = 0

	// Errors that do not carry a code are reported as internal.
	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

// ABCIInfo returns the code and the log message that can be presented to a
// client for given error.
//
// An error that does not declare a code anywhere in its cause chain is
// internal. Outside of debug mode its message is replaced with a generic
// one so that implementation details do not leak.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if errIsNil(err) {
		return SuccessABCICode, ""
	}
	code := abciCode(err)
	switch {
	case debug:
		return code, fmt.Sprintf("%+v", err)
	case code == internalABCICode:
		return code, internalABCILog
	default:
		return code, err.Error()
	}
}

type coder interface {
	ABCICode() uint32
}

// abciCode walks the cause chain and returns the first code found.
func abciCode(err error) uint32 {
	for !errIsNil(err) {
		if c, ok := err.(coder); ok {
			return c.ABCICode()
		}
		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return internalABCICode
}
