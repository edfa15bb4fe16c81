package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var Validate = validator.New()

// ErrResponseWritten signals the handler already sent a response; the app
// error handler swallows it so the body is not overwritten.
var ErrResponseWritten = errors.New("response already written")

// ValidateStruct runs the shared validator and writes a field-error map on
// failure. Returns nil when the struct is valid, ErrResponseWritten
// otherwise.
func ValidateStruct(c *fiber.Ctx, s any) error {
	if err := Validate.Struct(s); err != nil {
		ve, ok := err.(validator.ValidationErrors)
		if !ok {
			_ = JsonError(c, fiber.StatusBadRequest, "invalid input")
			return ErrResponseWritten
		}
		fieldErrors := make(map[string][]string, len(ve))
		for _, fe := range ve {
			fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], tagMessage(fe))
		}
		_ = JsonValidationError(c, fieldErrors)
		return ErrResponseWritten
	}
	return nil
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "url":
		return "must be a valid URL"
	case "datetime":
		return "must match format " + fe.Param()
	default:
		return "is invalid"
	}
}
