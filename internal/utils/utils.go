// Package utils holds small reusable helpers shared across the project:
// generic slice processing (Map, Filter, Contains) and the numeric
// coercion the template helpers rely on (ToFloat64).
package utils

/* some Functional Programming in Go */
// map
type mapFunc[E any, R any] func(E) R

// Map function definition of a functional programming "function"
func Map[S ~[]E, E any, R any](s S, f mapFunc[E, R]) []R {
	result := make([]R, len(s))
	for i, e := range s {
		result[i] = f(e)
	}

	return result
}

// filter
type keepFunc[E any] func(E) bool

// Filter function definition of a functional programming "function"
func Filter[S ~[]E, E any](s S, f keepFunc[E]) S {
	result := S{}
	for _, v := range s {
		if f(v) {
			result = append(result, v)
		}
	}

	return result
}

// Contains reports whether s holds v
func Contains[S ~[]E, E comparable](s S, v E) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}

	return false
}

// ToFloat64 function take any argument and tries to return a float64 if fail, 0
func ToFloat64(value any) float64 {
	switch v := value.(type) {
	case int:

		return float64(v)
	case int8:

		return float64(v)
	case int16:

		return float64(v)
	case int32:

		return float64(v)
	case int64:

		return float64(v)
	case uint:

		return float64(v)
	case uint8:

		return float64(v)
	case uint16:

		return float64(v)
	case uint32:

		return float64(v)
	case uint64:

		return float64(v)
	case float32:

		return float64(v)
	case float64:

		return v
	default:

		return 0
	}
}
