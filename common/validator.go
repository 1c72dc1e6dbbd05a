package common

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct checks the validate tags of payload and turns failures into
// a 400 AppError naming each offending field.
func ValidateStruct(payload interface{}) *AppError {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return NewAppError(http.StatusInternalServerError, "Could not validate request", err)
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		msgs = append(msgs, fe.Field()+" failed on the '"+fe.Tag()+"' rule")
	}
	return NewAppError(http.StatusBadRequest, "Invalid query parameters: "+strings.Join(msgs, "; "), nil)
}
