package handler

import (
	"context"
	"net/http"

	"dietlog/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name DiaryService . DiaryService
type DiaryService interface {
	Login(ctx context.Context, msg core.AuthMessage) (string, error)
	Logout(ctx context.Context, sessionID string) error
	Register(ctx context.Context, msg core.AuthMessage) error
	GetUser(ctx context.Context, id uint) (core.UserRecord, error)
	UpdatePassword(ctx context.Context, caller core.AuthUser, id uint, password string) error
	DeleteUser(ctx context.Context, caller core.AuthUser, id uint) error
	CreateMeal(ctx context.Context, caller core.AuthUser, msg core.MealMessage) (core.MealRecord, error)
	ListMeals(ctx context.Context, caller core.AuthUser) ([]core.MealRecord, error)
	GetMeal(ctx context.Context, caller core.AuthUser, id uint) (core.MealRecord, error)
	UpdateMeal(ctx context.Context, caller core.AuthUser, id uint, msg core.MealMessage) (core.MealRecord, error)
	DeleteMeal(ctx context.Context, caller core.AuthUser, id uint) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
