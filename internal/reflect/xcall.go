package reflect

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/goplus/reflectx"
)

var (
	// ErrArgCount error
	ErrArgCount = errors.New("wrong number of arguments")
	// ErrArgType error
	ErrArgType = errors.New("wrong argument type")
)

// Accessible returns v with the read-only restriction of unexported fields
// lifted, so that it can be read with Interface and written with Set.
func Accessible(v reflect.Value) reflect.Value {
	return reflectx.CanSet(v)
}

// ValueOf converts x into a value assignable to typ. A nil x becomes the zero
// value of typ.
func ValueOf(x interface{}, typ reflect.Type) (reflect.Value, error) {
	if x == nil {
		return reflect.Zero(typ), nil
	}
	v := reflect.ValueOf(x)
	if !v.Type().AssignableTo(typ) {
		return reflect.Value{}, fmt.Errorf("%w: cannot use %T as %v", ErrArgType, x, typ)
	}
	return v, nil
}

// Args converts args into the inputs of a call to a function of type typ.
// Trailing arguments of a variadic function are converted one by one.
func Args(typ reflect.Type, args []interface{}) ([]reflect.Value, error) {
	n := typ.NumIn()
	variadic := typ.IsVariadic()
	if variadic {
		if len(args) < n-1 {
			return nil, fmt.Errorf("%w: got %d, want at least %d", ErrArgCount, len(args), n-1)
		}
	} else if len(args) != n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrArgCount, len(args), n)
	}
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var t reflect.Type
		if variadic && i >= n-1 {
			t = typ.In(n - 1).Elem()
		} else {
			t = typ.In(i)
		}
		v, err := ValueOf(arg, t)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		in[i] = v
	}
	return in, nil
}

// Call calls fn with args.
func Call(fn reflect.Value, args []interface{}) ([]reflect.Value, error) {
	in, err := Args(fn.Type(), args)
	if err != nil {
		return nil, err
	}
	return fn.Call(in), nil
}
