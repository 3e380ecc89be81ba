package ctx

import (
	"context"
	"time"

	log "github.com/x-xyz/dasgo/base/log"
)

// Ctx carries a request scoped context together with a logger decorated with
// the request's values.
type Ctx struct {
	context.Context
	log.Logger
}

func Background() Ctx {
	return Ctx{
		Context: context.Background(),
		Logger:  log.Log(),
	}
}

// From wraps a plain context with the process logger
func From(parent context.Context) Ctx {
	if c, ok := parent.(Ctx); ok {
		return c
	}
	return Ctx{
		Context: parent,
		Logger:  log.Log(),
	}
}

func WithValue(parent Ctx, key string, val interface{}) Ctx {
	return Ctx{
		Context: context.WithValue(parent, key, val),
		Logger:  parent.Logger.WithField(key, val),
	}
}

func WithValues(parent Ctx, kvs map[string]interface{}) Ctx {
	c := parent
	for k, v := range kvs {
		c = WithValue(c, k, v)
	}
	return c
}

// WithLogFields decorates the logger only; the fields are not readable
// through Value.
func WithLogFields(parent Ctx, fields log.Fields) Ctx {
	return Ctx{
		Context: parent.Context,
		Logger:  parent.Logger.WithFields(fields),
	}
}

func WithCancel(parent Ctx) (Ctx, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	return Ctx{
		Context: ctx,
		Logger:  parent.Logger,
	}, cancel
}

func WithTimeout(parent Ctx, timeout time.Duration) (Ctx, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return Ctx{
		Context: ctx,
		Logger:  parent.Logger,
	}, cancel
}
