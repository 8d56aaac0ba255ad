package util

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("username", validateUsername)
}

func validateUsername(fl validator.FieldLevel) bool {
	return usernameRe.MatchString(fl.Field().String())
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
