// SPDX-License-Identifier: MIT

package params

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/epinet/builder"
)

// validate is the package singleton; validator caches struct metadata.
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	// Report the configuration key (beta, network_size) rather than the Go field name.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	// graphtype accepts every name and alias builder.ParseGraphKind resolves.
	if err := validate.RegisterValidation("graphtype", validGraphType); err != nil {
		panic(err)
	}
}

func validGraphType(fl validator.FieldLevel) bool {
	_, err := builder.ParseGraphKind(fl.Field().String())
	return err == nil
}
