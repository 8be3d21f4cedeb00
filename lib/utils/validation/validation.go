package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	apperrors "jobboard-backend/lib/utils/app-errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// в деталях ошибки отдаем имена полей как в json
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// Struct проверяет структуру по тегам validate, возвращает ошибки по полям или nil
func Struct(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}
	details := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		details[fieldPath(fe)] = message(fe)
	}
	return details
}

// Check то же что Struct, но сразу в виде ошибки VALIDATION_ERROR
func Check(s interface{}) error {
	details := Struct(s)
	if len(details) == 0 {
		return nil
	}
	return apperrors.Validation("invalid request", details)
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "gtefield":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "hexcolor":
		return "must be a hex color"
	case "url":
		return "must be a valid url"
	}
	return fmt.Sprintf("failed on '%s'", fe.Tag())
}
