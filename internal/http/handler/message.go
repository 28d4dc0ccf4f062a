package handler

import (
	"dietlog/internal/core"
	"dietlog/internal/http/payload"
)

const oopsErr = "Oops! Something went wrong. Please try again later."

type Response struct {
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
}

// MealResponse is the wire form of a diary entry.
type MealResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DateTime    string `json:"datetime"`
	InDiet      bool   `json:"in_diet"`
	UserID      uint   `json:"user_id"`
}

func newMealResponse(record core.MealRecord) MealResponse {
	return MealResponse{
		ID:          record.ID,
		Name:        record.Name,
		Description: record.Description,
		DateTime:    payload.FormatDateTime(record.EatenAt),
		InDiet:      record.InDiet,
		UserID:      record.UserID,
	}
}

type UserResponse struct {
	Username string `json:"username"`
}
