package middleware

import (
	"context"

	"dietlog/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name SessionResolver . SessionResolver
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (core.AuthUser, error)
}
