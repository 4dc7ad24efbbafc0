package request

import (
	"errors"
	"reflect"
	"strings"

	"tracking-number-generator/internal/domain/tracking"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the custom binding tags used by request DTOs
// and reports field names by their form or json tag.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return ""
	})

	if err := v.RegisterValidation("kebabcase", func(fl validator.FieldLevel) bool {
		return tracking.IsKebabCase(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("weight", func(fl validator.FieldLevel) bool {
		_, err := tracking.ParseWeight(fl.Field().String())
		return err == nil
	})
}

// ValidationDetail maps each failing field to the rule it broke.
func ValidationDetail(err error) map[string]string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		var fe *FieldError
		if errors.As(err, &fe) {
			return map[string]string{fe.Field: fe.Err.Error()}
		}
		return nil
	}

	detail := make(map[string]string, len(ve))
	for _, fe := range ve {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		detail[fe.Field()] = rule
	}
	return detail
}
