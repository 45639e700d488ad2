package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// bindingErrorDetails flattens a gin binding failure into one line per
// offending field so clients can highlight inputs.
func bindingErrorDetails(err error) []string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]string, len(verrs))
		for i, fe := range verrs {
			details[i] = fmt.Sprintf("%s: failed on '%s'", fe.Field(), fe.Tag())
		}
		return details
	}
	return []string{err.Error()}
}
