package sink

import "context"

// Sink delivers value and payload to a target and reports success or
// failure. A non-nil error means the transfer did not happen.
type Sink interface {
	Call(ctx context.Context, target string, value uint64, payload []byte) error
}

// Func adapts a function to the Sink interface.
type Func func(ctx context.Context, target string, value uint64, payload []byte) error

// Call invokes the function.
func (f Func) Call(ctx context.Context, target string, value uint64, payload []byte) error {
	return f(ctx, target, value, payload)
}
