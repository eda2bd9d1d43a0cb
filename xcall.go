/*
 Copyright 2026 The GoPlus Authors (goplus.org)

 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package refraction

import (
	"fmt"
	"reflect"

	xcall "github.com/goplus/refraction/internal/reflect"
)

var tyErrorInterface = reflect.TypeOf((*error)(nil)).Elem()

// funcOf wraps the method value fn as a Func.
func funcOf(fn reflect.Value) Func {
	return func(args ...interface{}) (interface{}, error) {
		out, err := xcall.Call(fn, args)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		return results(out)
	}
}

// results folds the outputs of a call into a single value. A trailing error
// output becomes the returned error, unwrapped.
func results(out []reflect.Value) (interface{}, error) {
	if n := len(out); n > 0 && out[n-1].Type() == tyErrorInterface {
		if e := out[n-1]; !e.IsNil() {
			return nil, e.Interface().(error)
		}
		out = out[:n-1]
	}
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0].Interface(), nil
	}
	ret := make([]interface{}, len(out))
	for i, v := range out {
		ret[i] = v.Interface()
	}
	return ret, nil
}

// field is a struct field reached through an instance pointer.
type field struct {
	v reflect.Value
}

func (f field) Get() interface{} {
	return f.v.Interface()
}

func (f field) Set(x interface{}) error {
	v, err := xcall.ValueOf(x, f.v.Type())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	f.v.Set(v)
	return nil
}
