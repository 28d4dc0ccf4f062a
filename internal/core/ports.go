package core

import (
	"context"

	"dietlog/internal/repository"
	tokenIssuer "dietlog/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user *repository.User) error
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	GetUserByID(ctx context.Context, id uint) (repository.User, error)
	UpdateUser(ctx context.Context, user *repository.User) error
	DeleteUser(ctx context.Context, id uint) error
	CreateSession(ctx context.Context, session *repository.Session) error
	GetSession(ctx context.Context, id string) (repository.Session, error)
	DeleteSession(ctx context.Context, id string) error
	CreateMeal(ctx context.Context, meal *repository.Meal) error
	GetMeal(ctx context.Context, id, userID uint) (repository.Meal, error)
	ListMeals(ctx context.Context, userID uint) ([]repository.Meal, error)
	UpdateMeal(ctx context.Context, meal *repository.Meal) error
	DeleteMeal(ctx context.Context, id, userID uint) error
}

//counterfeiter:generate -o fake -fake-name SessionIssuer . SessionIssuer
type SessionIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
