package middleware

import (
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/shewell/maternity-api/internal/model"
)

// RegisterValidators installs the domain validation tags on gin's binding
// engine and makes validation errors report JSON field names.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return fld.Name
		}
		return name
	})

	validators := map[string]validator.Func{
		// YYYY-MM-DD calendar day
		"calendardate": func(fl validator.FieldLevel) bool {
			_, err := time.Parse(model.DateFormat, fl.Field().String())
			return err == nil
		},
		"accountkind": func(fl validator.FieldLevel) bool {
			return model.AccountKind(fl.Field().String()).Valid()
		},
	}
	for tag, fn := range validators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}
