package context

import (
	"context"

	"github.com/muhammadheryan/digital-store/constant"
	"github.com/muhammadheryan/digital-store/model"
)

// WithActor stores the authenticated caller in ctx.
func WithActor(ctx context.Context, actor *model.Actor) context.Context {
	return context.WithValue(ctx, constant.ActorKey, actor)
}

func GetActor(ctx context.Context) (*model.Actor, bool) {
	v := ctx.Value(constant.ActorKey)
	if v == nil {
		return nil, false
	}
	actor, ok := v.(*model.Actor)
	return actor, ok && actor != nil
}

func GetUserID(ctx context.Context) (string, bool) {
	actor, ok := GetActor(ctx)
	if !ok {
		return "", false
	}
	return actor.UserID, true
}
