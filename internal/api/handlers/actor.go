package handlers

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

type actorKey struct{}

// WithActor кладёт пользователя в контекст запроса
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFrom пользователь запроса; без middleware это гость
func ActorFrom(ctx context.Context) domain.Actor {
	if actor, ok := ctx.Value(actorKey{}).(domain.Actor); ok {
		return actor
	}
	return domain.Guest()
}
