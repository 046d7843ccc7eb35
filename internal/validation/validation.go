package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct validates the tagged input struct and flattens the first failure
// into a readable message for the error response.
func Struct(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if ok := AsValidationErrors(err, &errs); ok && len(errs) > 0 {
		fe := errs[0]
		return fmt.Errorf("field %s failed on the '%s' rule", toSnake(fe.Field()), fe.Tag())
	}
	return err
}

func AsValidationErrors(err error, target *validator.ValidationErrors) bool {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	*target = errs
	return true
}

func toSnake(field string) string {
	var b strings.Builder
	for i, r := range field {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
