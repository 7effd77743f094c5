package validator

import (
	"github.com/go-playground/validator/v10"
	usecasecontract "github.com/mveu/events-api/internal/usecase/contract"
)

// AppValidator implements the usecase contract.IValidator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements the usecase IValidator interface.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	return &AppValidator{validate: v}
}

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	return av.validate.Var(email, "required,email")
}
