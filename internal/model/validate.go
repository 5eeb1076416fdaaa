package model

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared struct validator with the domain rules
// registered ("branch" checks the Branch enum).
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("branch", func(fl validator.FieldLevel) bool {
			v := fl.Field().String()
			for _, b := range Branches {
				if string(b) == v {
					return true
				}
			}
			return false
		})
	})
	return validate
}

// FieldMessages flattens validator errors into one message per field,
// keyed by the struct field name.
func FieldMessages(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = describe(fe)
	}
	return out
}

func describe(fe validator.FieldError) string {
	name := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "email":
		return name + " must be a valid email address"
	case "numeric", "number":
		return name + " must be a number"
	case "branch":
		return fmt.Sprintf("%s must be one of %s, %s", name, BranchLahore, BranchIslamabad)
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", name, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", name, fe.Tag())
	}
}
