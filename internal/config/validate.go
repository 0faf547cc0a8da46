package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfiguration is wrapped by every configuration error.
var ErrInvalidConfiguration = errors.New("invalid configuration")

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	if err := validate.RegisterValidation("generations", validGenerations); err != nil {
		panic(err)
	}
}

func validGenerations(fl validator.FieldLevel) bool {
	g := fl.Field().Int()
	return g == int64(Fit) || g >= 1
}

// FieldError describes one rejected field.
type FieldError struct {
	Field string
	Rule  string
	Param string
	Value any
}

func (f FieldError) String() string {
	if f.Param != "" {
		return fmt.Sprintf("%s fails %s=%s (got %v)", f.Field, f.Rule, f.Param, f.Value)
	}
	return fmt.Sprintf("%s fails %s (got %v)", f.Field, f.Rule, f.Value)
}

// ValidationError collects every field that failed validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return ErrInvalidConfiguration.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidConfiguration }

func fromValidator(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		field := fe.Namespace()
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		out.Fields = append(out.Fields, FieldError{
			Field: field,
			Rule:  fe.Tag(),
			Param: fe.Param(),
			Value: fe.Value(),
		})
	}
	return out
}
