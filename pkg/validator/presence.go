package validator

import (
	"fmt"
	"math"
	"reflect"
)

// IsPresent reports whether value counts as a supplied argument.
//
// Strings must not be "" or a single space. Slices, arrays and maps must be non-empty,
// structs must declare at least one field, and numbers must be non-zero and not NaN.
// Booleans report themselves. Nil pointers, interfaces, funcs and chans are absent;
// non-nil pointers and interfaces are checked through to the value they hold.
func IsPresent(value any) bool {
	if value == nil {
		return false
	}
	return isPresent(reflect.ValueOf(value))
}

func isPresent(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Invalid:
		return false
	case reflect.String:
		s := v.String()
		return s != "" && s != " "
	case reflect.Bool:
		return v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Complex64, reflect.Complex128:
		return v.Complex() != 0
	case reflect.Slice, reflect.Array, reflect.Map:
		return v.Len() > 0
	case reflect.Struct:
		return v.NumField() > 0
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return false
		}
		return isPresent(v.Elem())
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return !v.IsNil()
	}
	return true
}

// InvalidMessage is the diagnostic text logged for a failed presence check.
func InvalidMessage(label string) string {
	return fmt.Sprintf("Parameter '%s' is not valid.", label)
}

// Present validates that value is supplied according to IsPresent.
func Present(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			return IsPresent(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        InvalidMessage(field),
			TranslationKey: "validation.invalid_parameter",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
