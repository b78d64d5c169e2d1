package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"collab-filter/internal/api/errors"
)

// Validator interface for domain validation
type Validator interface {
	Validate() error
}

// ValidateQuery binds query parameters into req and validates struct tags,
// then domain rules if req implements Validator.
func ValidateQuery(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindQuery(req); err != nil {
		return bindingError("Invalid query parameters", "query", err)
	}
	return validateDomain(req)
}

// ValidateURI binds path parameters into req.
func ValidateURI(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindUri(req); err != nil {
		return bindingError("Invalid path parameters", "path", err)
	}
	return validateDomain(req)
}

func validateDomain(req interface{}) error {
	if v, ok := req.(Validator); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func bindingError(message, source string, err error) error {
	details := make(map[string]string)

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrs {
			field := strings.ToLower(fieldError.Field())

			switch fieldError.Tag() {
			case "required":
				details[field] = "is required"
			case "min":
				details[field] = "must be at least " + fieldError.Param()
			case "max":
				details[field] = "must be at most " + fieldError.Param()
			case "oneof":
				details[field] = "must be one of " + fieldError.Param()
			default:
				details[field] = "is invalid"
			}
		}
	} else {
		details[source] = "must be integers"
	}

	return errors.NewValidationError(message, details)
}
