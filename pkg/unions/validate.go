package unions

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
)

// ErrRequiredField is wrapped by validation failures for fields tagged
// validate:"required".
var ErrRequiredField = errors.New("required field missing")

// validatorInstance is cached; building a validator walks struct tags.
var (
	validatorInstance *validator.Validate
	validatorOnce     sync.Once
)

func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInstance = validator.New()
		validatorInstance.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validatorInstance
}

// Validate checks the validate struct tags of v using wire field names in
// the returned error.
func Validate(v any) error {
	err := getValidator().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var missing, invalid []string
	for _, fe := range fieldErrs {
		path := wirePath(fe.Namespace(), fe.StructNamespace())
		if fe.Tag() == "required" {
			missing = append(missing, path)
			continue
		}
		invalid = append(invalid, fmt.Sprintf("%s (%s)", path, fe.Tag()))
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrRequiredField, strings.Join(missing, ", "))
	}
	return fmt.Errorf("invalid fields: %s", strings.Join(invalid, ", "))
}

// wirePath turns a validator namespace into a path of JSON field names. The
// leading type name is dropped, as is every embedded struct, which shares its
// Go name in both namespaces because it has no json tag.
func wirePath(ns, structNs string) string {
	wire := strings.Split(ns, ".")
	goNames := strings.Split(structNs, ".")
	if len(wire) != len(goNames) {
		return strings.Join(wire[1:], ".")
	}
	out := make([]string, 0, len(wire)-1)
	for i := 1; i < len(wire); i++ {
		if i < len(wire)-1 && wire[i] == goNames[i] {
			continue
		}
		out = append(out, wire[i])
	}
	return strings.Join(out, ".")
}

// Unmarshal decodes a plain (non-union) document such as a list envelope and
// validates its required fields.
func Unmarshal(data []byte, v any) error {
	family := strings.TrimPrefix(fmt.Sprintf("%T", v), "*")
	if err := json.Unmarshal(data, v); err != nil {
		return &FieldError{Family: family, Err: err}
	}
	if err := Validate(v); err != nil {
		return &FieldError{Family: family, Err: err}
	}
	return nil
}
