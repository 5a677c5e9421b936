// Package async delivers token query results on single-use channels.
package async

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Result carries the outcome of one asynchronous query
type Result[T any] struct {
	Value T
	Err   error
}

// Run calls fn on its own goroutine and returns a channel that receives
// exactly one Result and is then closed. The channel is buffered, so fn
// completes even if nobody reads it.
func Run[T any](ctx context.Context, fn func(context.Context) (T, error)) <-chan Result[T] {
	resultChan := make(chan Result[T], 1)

	go func() {
		defer close(resultChan)
		defer func() {
			if r := recover(); r != nil {
				logrus.WithField("panic", r).Error("Async query panicked")
				resultChan <- Result[T]{Err: fmt.Errorf("query panicked: %v", r)}
			}
		}()

		value, err := fn(ctx)
		resultChan <- Result[T]{Value: value, Err: err}
	}()

	return resultChan
}

// Await waits for the result on ch or for ctx to end, whichever comes first
func Await[T any](ctx context.Context, ch <-chan Result[T]) (T, error) {
	select {
	case res, ok := <-ch:
		if !ok {
			var zero T
			return zero, fmt.Errorf("result channel closed without a value")
		}
		return res.Value, res.Err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
