package validator

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/airport-service/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// В деталях ошибок используем имена полей из json-тегов
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
}

// Validate - валидация структуры, ошибки приводятся к AppError с деталями по полям
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.ErrInvalidRequest.WithMessage(err.Error())
	}

	details := make(map[string]interface{}, len(verrs))
	for _, fe := range verrs {
		field := fieldPath(fe)
		msgs, _ := details[field].([]string)
		details[field] = append(msgs, message(fe))
	}

	return errors.ErrValidationFailed.WithDetails(details)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

// fieldPath убирает имя корневой структуры: "CreateOrderRequest.tickets[0].row" -> "tickets[0].row"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Ensure this field has at least %s elements.", fe.Param())
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "gt":
		return fmt.Sprintf("Ensure this value is greater than %s.", fe.Param())
	case "email":
		return "Enter a valid email address."
	default:
		return fmt.Sprintf("Failed on the '%s' rule.", fe.Tag())
	}
}
