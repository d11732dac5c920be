package myvalidator

import (
	"math"
	"reflect"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
}

// New panics when a custom rule cannot be registered, like template.Must.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	err := v.RegisterValidation("finite", validateFinite)
	if err != nil {
		panic(err)
	}

	return &Validator{
		validate: v,
	}
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

func validateFinite(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		f := field.Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return true
	}
}
