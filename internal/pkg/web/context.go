package web

import (
	"context"
	"fmt"
)

type ctxKey int

const payloadCtxKey ctxKey = iota

// NewContextWithPayload stores a decoded request payload in the context.
//
//nolint:ireturn //This function needs to return a context.
func NewContextWithPayload(baseCtx context.Context, payload any) context.Context {
	return context.WithValue(baseCtx, payloadCtxKey, payload)
}

// PayloadFromContext returns the payload stored by NewContextWithPayload.
// It fails when no payload was stored or when it is not a T.
//
// nolint: ireturn //This is a generic function.
func PayloadFromContext[T any](ctx context.Context) (T, error) {
	val := ctx.Value(payloadCtxKey)
	payload, ok := val.(T)
	if !ok {
		var t T
		return t, fmt.Errorf("payload: %v is not a %T", val, t)
	}
	return payload, nil
}
