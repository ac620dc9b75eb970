package auth

import (
	"net/mail"
	"unicode/utf8"

	"github.com/vndialect/tudien-backend/internal/domain"
)

const (
	maxEmailLen    = 254
	maxNameLen     = 100
	maxPasswordLen = 72 // bcrypt ignores bytes beyond 72
)

// RegisterInput holds parameters for email + password registration.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

// Validate validates the register input. minPassword is the minimum password length.
func (i RegisterInput) Validate(minPassword int) error {
	var errs []domain.FieldError

	errs = checkEmail(errs, i.Email)

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if utf8.RuneCountInString(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	switch {
	case i.Password == "":
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case utf8.RuneCountInString(i.Password) < minPassword:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	case len(i.Password) > maxPasswordLen:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for email + password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if len(i.Email) > maxEmailLen {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > maxPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func checkEmail(errs []domain.FieldError, email string) []domain.FieldError {
	switch {
	case email == "":
		return append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(email) > maxEmailLen:
		return append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}
	return errs
}
