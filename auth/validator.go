package auth

import (
	stderrors "errors"
	"unicode"

	"marketchat/errors"

	"github.com/go-playground/validator/v10"
)

const passwordComplexityTag = "password_complexity"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation(passwordComplexityTag, func(fl validator.FieldLevel) bool {
		return isPasswordComplex(fl.Field().String())
	})
	return v
}

// RegisterRequest is checked before any account is created.
type RegisterRequest struct {
	Email    string `validate:"required,email,max=254"`
	Password string `validate:"required,min=12,max=72,password_complexity"`
}

// ValidateRegister returns errors.ErrInvalidPassword when only the character
// classes are missing, the raw validator error otherwise.
func ValidateRegister(req RegisterRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if stderrors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			if fe.Tag() == passwordComplexityTag {
				return errors.ErrInvalidPassword
			}
		}
	}
	return err
}

// isPasswordComplex wants one upper, one lower, one digit and one symbol.
func isPasswordComplex(s string) bool {
	var upper, lower, digit, special bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsNumber(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}
	return upper && lower && digit && special
}
