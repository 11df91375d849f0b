package expect

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNotErrorType is wrapped by the UsageError raised when a block is
	// guarded by something that does not denote an error type.
	ErrNotErrorType = errors.New("expect() should have been passed an error type")
	// ErrNilType is wrapped by the UsageError raised when a type check gets nil.
	ErrNilType = errors.New("type argument must not be nil")
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// UsageError reports a mistake in how an expectation was written, as opposed
// to a failed assertion. It is raised with panic.
type UsageError struct {
	Err   error
	Value string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%v, not %s", e.Err, e.Value)
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// resolveType maps a type argument to the type it denotes. Pointers to
// interfaces mean the interface itself. It returns nil for nil.
func resolveType(v any) reflect.Type {
	switch t := v.(type) {
	case nil:
		return nil
	case reflect.Type:
		return t
	}

	rt := reflect.TypeOf(v)
	if rt.Kind() == reflect.Pointer && rt.Elem().Kind() == reflect.Interface {
		return rt.Elem()
	}
	return rt
}

// errorTypeArgument resolves v to an error type. Non-zero values are
// instances, not types, and yield nil.
func errorTypeArgument(v any) reflect.Type {
	if v == nil {
		return nil
	}
	if _, ok := v.(reflect.Type); !ok && !reflect.ValueOf(v).IsZero() {
		return nil
	}
	target := resolveType(v)
	if !target.Implements(errorType) {
		return nil
	}
	return target
}

func (e *Expectation) typeArgument(typ any) reflect.Type {
	target := resolveType(typ)
	if target == nil {
		panic(&UsageError{Err: ErrNilType, Value: "nil"})
	}
	return target
}

// isInstance reports whether v's dynamic type is target, or implements it
// when target is an interface. nil is an instance of nothing.
func isInstance(v any, target reflect.Type) bool {
	if v == nil {
		return false
	}
	actual := reflect.TypeOf(v)
	if target.Kind() == reflect.Interface {
		return actual.Implements(target)
	}
	return actual == target
}

// qualifiedName renders t with its full package path, e.g. "*io/fs.PathError".
// Predeclared types such as error have no package and keep their bare name.
func qualifiedName(t reflect.Type) string {
	switch {
	case t.Name() != "":
		if t.PkgPath() == "" {
			return t.Name()
		}
		return t.PkgPath() + "." + t.Name()
	case t.Kind() == reflect.Pointer:
		return "*" + qualifiedName(t.Elem())
	default:
		return t.String()
	}
}

func dynamicTypeName(v any) string {
	if v == nil {
		return "nil"
	}
	return qualifiedName(reflect.TypeOf(v))
}
