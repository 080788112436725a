package handler

import (
	"strings"

	"github.com/bagdasarian/taskhub/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var messages []string
	for _, fieldErr := range err.(validator.ValidationErrors) {
		field := strings.ToLower(fieldErr.Field())
		switch fieldErr.Tag() {
		case "required":
			messages = append(messages, field+" is required")
		case "max":
			messages = append(messages, field+" must be at most "+fieldErr.Param()+" characters")
		case "oneof":
			messages = append(messages, field+" must be one of: "+fieldErr.Param())
		default:
			messages = append(messages, field+" is invalid")
		}
	}

	return domain.NewValidationError(strings.Join(messages, ", "))
}
