package signed

import (
	"reflect"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Text returns the canonical base-10 form of n: a sign only when negative,
// a point only when there is a fractional part, no exponent and no
// trailing ".0". Floats use the shortest text that round-trips at their
// own precision, so float32(-5.1) is "-5.1".
func Text[T Number](n T) string {
	v := reflect.ValueOf(n)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	default:
		return strconv.FormatUint(v.Uint(), 10)
	}
}
