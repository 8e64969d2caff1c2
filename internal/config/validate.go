package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	cerrors "github.com/matzehuels/contribchart/pkg/errors"
	"github.com/matzehuels/contribchart/pkg/theme"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			return theme.Builtin.Has(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}

// Validate checks every field and reports the first violation.
func (c *Config) Validate() error {
	if c == nil {
		return cerrors.New(cerrors.ErrCodeInvalidConfig, "configuration is nil")
	}
	if err := validatorInstance().Struct(c); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return cerrors.Wrap(cerrors.ErrCodeInvalidConfig, err, "invalid configuration")
	}

	fe := verrs[0]
	field := fieldPath(fe.Namespace())
	var msg string
	switch fe.Tag() {
	case "required":
		msg = "is required"
	case "http_url":
		msg = "must be an http(s) URL"
	case "theme":
		msg = fmt.Sprintf("must be one of %s", strings.Join(theme.Builtin.IDs(), ", "))
	case "gt", "lte":
		msg = "must be greater than 0 and at most 4"
	case "hostname_port":
		msg = "must be host:port or :port"
	default:
		msg = fmt.Sprintf("failed %q validation", fe.Tag())
	}
	return cerrors.New(cerrors.ErrCodeInvalidConfig, "%s %s (got %v)", field, msg, fe.Value())
}

// fieldPath drops the root type from a namespace such as "Config.chart.scale".
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
