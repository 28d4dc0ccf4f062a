package payload

import "github.com/jellydator/validation"

// PasswordRequest is the body of a password update.
type PasswordRequest struct {
	Password string `json:"password"`
}

func (p PasswordRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Password, validation.Required),
	)
}
