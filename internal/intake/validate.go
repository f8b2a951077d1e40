package intake

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Required fields in the order they are reported.
var requiredFields = []string{"name", "email", "message", "inquiryType"}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		_ = v.RegisterValidation("notblank", notBlank)
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		validate = v
	})
	return validate
}

// notBlank fails strings that are empty after trimming whitespace.
func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// Validate returns the JSON names of the required fields that are missing
// or blank. A nil result means the submission is complete.
func Validate(sub Submission) []string {
	err := validatorInstance().Struct(sub)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Only returned for invalid input types, which Submission never is.
		return append([]string(nil), requiredFields...)
	}

	failed := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		failed[fe.Field()] = true
	}

	var missing []string
	for _, field := range requiredFields {
		if failed[field] {
			missing = append(missing, field)
		}
	}
	return missing
}
