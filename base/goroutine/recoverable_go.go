// Package goroutine runs functions on their own goroutine and turns panics
// into values.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/x-xyz/dasgo/base/log"
)

// PanicEvent is sent when the function panicked. It is an error so callers
// can report it as a failure.
type PanicEvent struct {
	Panic interface{}
	Stack []byte
}

func (e *PanicEvent) Error() string {
	return fmt.Sprintf("panic: %v", e.Panic)
}

type RecoverableGoOptions struct {
	beforeStart    func()
	afterEnded     func()
	afterRecovered func(panic interface{}, stack []byte)
	logger         *log.Logger
}

type RecoverableGoOptionsFunc = func(*RecoverableGoOptions)

func WithBeforeStart(f func()) RecoverableGoOptionsFunc {
	return func(options *RecoverableGoOptions) {
		options.beforeStart = f
	}
}

func WithAfterEnded(f func()) RecoverableGoOptionsFunc {
	return func(options *RecoverableGoOptions) {
		options.afterEnded = f
	}
}

func WithAfterRecovered(f func(panic interface{}, stack []byte)) RecoverableGoOptionsFunc {
	return func(options *RecoverableGoOptions) {
		options.afterRecovered = f
	}
}

// WithLogger reports the panic on logger instead of the process logger
func WithLogger(logger log.Logger) RecoverableGoOptionsFunc {
	return func(options *RecoverableGoOptions) {
		options.logger = &logger
	}
}

// RecoverableGo runs f on a new goroutine. The returned channel receives the
// panic of f, or is closed once f returned normally.
func RecoverableGo(f func(), fns ...RecoverableGoOptionsFunc) <-chan *PanicEvent {
	opts := RecoverableGoOptions{}
	for _, fn := range fns {
		fn(&opts)
	}
	logger := log.Log()
	if opts.logger != nil {
		logger = *opts.logger
	}

	panicChan := make(chan *PanicEvent, 1)

	go func() {
		defer func() {
			if opts.afterEnded != nil {
				opts.afterEnded()
			}

			p := recover()
			if p == nil {
				close(panicChan)
				return
			}

			stack := debug.Stack()
			logger.WithFields(log.Fields{
				"err":   p,
				"stack": string(stack),
			}).Error("panic")

			if opts.afterRecovered != nil {
				opts.afterRecovered(p, stack)
			}

			panicChan <- &PanicEvent{p, stack}
		}()

		if opts.beforeStart != nil {
			opts.beforeStart()
		}

		f()
	}()

	return panicChan
}
