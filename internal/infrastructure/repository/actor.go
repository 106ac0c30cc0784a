package repository

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	// ActorIDKey is the context key for the authenticated user's ID
	ActorIDKey ctxKey = "actor_id"
	// ActorEmailKey is the context key for the authenticated user's email
	ActorEmailKey ctxKey = "actor_email"
)

// WithActor attaches the authenticated user to the context so the
// services can stamp audit trail entries without threading the user
// through every call
func WithActor(ctx context.Context, id uuid.UUID, email string) context.Context {
	ctx = context.WithValue(ctx, ActorIDKey, id)
	return context.WithValue(ctx, ActorEmailKey, email)
}

// GetActorID extracts the authenticated user's ID from context
func GetActorID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ActorIDKey).(uuid.UUID)
	return id, ok
}

// GetActorEmail extracts the authenticated user's email from context
func GetActorEmail(ctx context.Context) string {
	email, _ := ctx.Value(ActorEmailKey).(string)
	return email
}
