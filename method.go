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
)

// Method is a method bound to one instance.
type Method struct {
	instance interface{}
	typ      Type
	member   Member
	fn       Func
}

// NewMethod binds the method called name to instance.
//
// It fails with ErrNotFound when no type in the instance's ancestry declares
// the method, and with ErrNotVisible when the method is private to an
// ancestor. Private methods of the instance's own type are allowed.
func NewMethod(instance interface{}, name string) (*Method, error) {
	typ, m, err := resolve(instance, name, KindMethod)
	if err != nil {
		return nil, fmt.Errorf("refraction.NewMethod: %w", err)
	}
	method, err := newMethod(instance, typ, m)
	if err != nil {
		return nil, fmt.Errorf("refraction.NewMethod: %w", err)
	}
	return method, nil
}

func newMethod(instance interface{}, typ Type, m Member) (*Method, error) {
	fn, err := typ.BindMethod(instance, m)
	if err != nil {
		return nil, err
	}
	return &Method{instance: instance, typ: typ, member: m, fn: fn}, nil
}

func (m *Method) Name() string {
	return m.member.Name
}

func (m *Method) Visibility() Visibility {
	return m.member.Visibility
}

// Owner returns the type that declares the method. For methods of plain Go
// structs an override cannot be told apart from a promoted method, so the
// owner is the most distant ancestor that has a method of that name, even
// when a closer type's body is the one Invoke runs.
func (m *Method) Owner() Type {
	return m.member.Owner
}

// Member returns the method's descriptor.
func (m *Method) Member() Member {
	return m.member
}

// Instance returns the instance the method is bound to.
func (m *Method) Instance() interface{} {
	return m.instance
}

// Invoke calls the method with args. An error returned by the method itself
// is passed through unchanged.
func (m *Method) Invoke(args ...interface{}) (interface{}, error) {
	return m.fn(args...)
}

// InvokeArgs is like Invoke but takes the arguments as a slice.
func (m *Method) InvokeArgs(args []interface{}) (interface{}, error) {
	return m.fn(args...)
}

// Closure returns the method as a function bound to the instance.
func (m *Method) Closure() Func {
	return m.fn
}

func (m *Method) String() string {
	return m.member.Owner.Name() + "." + m.member.Name + "()"
}
