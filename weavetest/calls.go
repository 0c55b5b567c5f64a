package weavetest

import "context"

// calls counts invocations of a mock. Embed it to expose the counters.
type calls struct {
	check   int
	deliver int
}

// CheckCallCount returns how many times Check was called.
func (c *calls) CheckCallCount() int {
	return c.check
}

// DeliverCallCount returns how many times Deliver was called.
func (c *calls) DeliverCallCount() int {
	return c.deliver
}

// CallCount returns the total number of calls.
func (c *calls) CallCount() int {
	return c.check + c.deliver
}

// withValue exists so that a plain string can be used as the context key
// by the mocks.
func withValue(ctx context.Context, key string, value interface{}) context.Context {
	return context.WithValue(ctx, key, value)
}
