package service

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const ctxActorKey ctxKey = "actor"

// Actor — аутентифицированный вызывающий. RestaurantID задан только
// для worker/manager и ограничивает, с чьими заказами они работают.
type Actor struct {
	ID           uuid.UUID
	Role         Role
	RestaurantID *uuid.UUID
}

func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, ctxActorKey, a)
}

func ActorFromContext(ctx context.Context) (Actor, bool) {
	v, ok := ctx.Value(ctxActorKey).(Actor)
	return v, ok
}
