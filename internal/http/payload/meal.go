package payload

import (
	"errors"
	"time"

	"dietlog/internal/core"

	"github.com/jellydator/validation"
)

var ErrInvalidDateTime = errors.New("invalid datetime, expected ISO 8601, e.g. 2025-11-15T12:30:00")

// isoLayout is ISO 8601 without a zone offset, the diary's canonical form.
const isoLayout = "2006-01-02T15:04:05"

// MealRequest is the body of both meal creation and full-replace update.
// InDiet is a pointer so an explicit false still passes the presence check.
type MealRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	DateTime    string `json:"datetime"`
	InDiet      *bool  `json:"in_diet"`
}

func (m MealRequest) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Name, validation.Required),
		validation.Field(&m.DateTime, validation.Required),
		validation.Field(&m.InDiet, validation.NotNil),
	)
}

// ToMessage parses the datetime field; a string that is not ISO 8601 is the
// distinct invalid-date error, separate from missing-field validation.
func (m MealRequest) ToMessage() (core.MealMessage, error) {
	eatenAt, err := ParseDateTime(m.DateTime)
	if err != nil {
		return core.MealMessage{}, err
	}

	return core.MealMessage{
		Name:        m.Name,
		Description: m.Description,
		EatenAt:     eatenAt,
		InDiet:      *m.InDiet,
	}, nil
}

// ParseDateTime accepts ISO 8601 with or without a zone offset.
func ParseDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(isoLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDateTime
}

// FormatDateTime renders a timestamp back to the wire form, keeping the
// zoneless layout for offset-free values so input round-trips unchanged.
func FormatDateTime(t time.Time) string {
	if _, offset := t.Zone(); offset == 0 {
		return t.Format(isoLayout)
	}
	return t.Format(time.RFC3339)
}
