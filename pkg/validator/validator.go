package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	translations "github.com/go-playground/validator/v10/translations/en"
	"go.uber.org/multierr"
)

// New returns a gin binding.StructValidator reading the "binding" tag. Fields are
// reported under their json or uri name and messages are english sentences
func New() (*Engine, error) {
	v := validator.New()
	v.SetTagName("binding")
	v.RegisterTagNameFunc(fieldName)
	trans, _ := ut.New(en.New()).GetTranslator("en")
	if err := translations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, err
	}
	return &Engine{validate: v, trans: trans}, nil
}

// fieldName json tag first, then uri, then the go name
func fieldName(f reflect.StructField) string {
	for _, key := range []string{"json", "uri"} {
		name := strings.SplitN(f.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

type Engine struct {
	validate *validator.Validate
	trans    ut.Translator
}

// ValidateStruct accepts structs, pointers to them and slices of them, anything else passes
func (e *Engine) ValidateStruct(obj interface{}) error {
	return e.translate(e.validateValue(reflect.ValueOf(obj)))
}

func (e *Engine) Engine() interface{} {
	return e.validate
}

func (e *Engine) validateValue(value reflect.Value) error {
	switch value.Kind() { // nolint:exhaustive
	case reflect.Ptr:
		if value.IsNil() {
			return nil
		}
		return e.validateValue(value.Elem())
	case reflect.Struct:
		return e.validate.Struct(value.Interface())
	case reflect.Slice, reflect.Array:
		var errs error
		for i := 0; i < value.Len(); i++ {
			errs = multierr.Append(errs, e.validateValue(value.Index(i)))
		}
		return errs
	default:
		return nil
	}
}

func (e *Engine) translate(err error) error {
	if err == nil {
		return nil
	}
	var errs error
	for _, single := range multierr.Errors(err) {
		var vErrs validator.ValidationErrors
		if !errors.As(single, &vErrs) {
			errs = multierr.Append(errs, single)
			continue
		}
		for _, msg := range vErrs.Translate(e.trans) {
			errs = multierr.Append(errs, errors.New(msg))
		}
	}
	return errs
}
