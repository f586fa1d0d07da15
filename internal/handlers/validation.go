package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/SscSPs/bank_onboarding_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	registerValidatorsOnce sync.Once
	registerValidatorsErr  error
)

type customTag struct {
	name string
	fn   validator.Func
}

var customTags = []customTag{
	{"documenttype", func(fl validator.FieldLevel) bool {
		return domain.DocumentType(fl.Field().String()).IsValid()
	}},
	{"accountstatus", func(fl validator.FieldLevel) bool {
		return domain.AccountStatus(fl.Field().String()).IsValid()
	}},
	{"money2dp", func(fl validator.FieldLevel) bool {
		amount, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		return amount.IsPositive() && amount.Equal(amount.Round(domain.MoneyScale))
	}},
}

// RegisterValidators installs the custom binding tags on gin's validator engine.
// Safe to call more than once; every call returns the first registration error.
func RegisterValidators() error {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerValidatorsErr = errors.New("gin binding engine is not a go-playground validator")
			return
		}

		// Report fields by their JSON names.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.String()
			}
			return nil
		}, decimal.Decimal{})

		registerValidatorsErr = registerTags(v, customTags)
	})
	return registerValidatorsErr
}

func registerTags(v *validator.Validate, tags []customTag) error {
	for _, tag := range tags {
		if err := v.RegisterValidation(tag.name, tag.fn); err != nil {
			return fmt.Errorf("failed to register validation tag %q: %w", tag.name, err)
		}
	}
	return nil
}

// fieldMessages turns binding errors into a field -> message map. ok is false
// when err is not a validation failure (malformed JSON, wrong types).
func fieldMessages(err error) (map[string]string, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = messageFor(fe)
	}
	return fields, true
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "documenttype":
		return "Document type must be CC, CE or PAS"
	case "email":
		return "Email must be valid"
	case "accountstatus":
		return "Status must be ACTIVE or INACTIVE"
	case "oneof":
		return "Type must be DEPOSIT or WITHDRAWAL"
	case "money2dp":
		return "Amount must be greater than zero with at most 2 decimal places"
	default:
		return fe.Field() + " is invalid"
	}
}
