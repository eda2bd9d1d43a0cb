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

// Package refraction provides instance-bound reflection: the methods and
// properties of a live object exposed as handles that can be invoked, read or
// written without naming the object again.
//
// Unlike plain reflection, refraction respects member visibility across
// inheritance. A private member declared on an ancestor of the instance's
// runtime type is never listed, and a handle cannot be built for it.
package refraction

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidArgument error
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound error
	ErrNotFound = errors.New("member not found")
	// ErrNotVisible error
	ErrNotVisible = errors.New("member not visible")
)

// Visibility is the declared visibility of a member.
type Visibility int

const (
	Private Visibility = iota
	Protected
	Public
)

var visibilityNames = [...]string{
	Private:   "private",
	Protected: "protected",
	Public:    "public",
}

func (v Visibility) String() string {
	if v >= Private && v <= Public {
		return visibilityNames[v]
	}
	return fmt.Sprintf("Visibility(%d)", int(v))
}

// ParseVisibility converts "private", "protected" or "public" (in any case)
// into a Visibility.
func ParseVisibility(s string) (Visibility, error) {
	for v, name := range visibilityNames {
		if strings.EqualFold(s, name) {
			return Visibility(v), nil
		}
	}
	return Private, fmt.Errorf("%w: unknown visibility %q", ErrInvalidArgument, s)
}

// Kind tells methods and properties apart.
type Kind int

const (
	KindMethod Kind = iota
	KindProperty
)

func (k Kind) String() string {
	switch k {
	case KindMethod:
		return "method"
	case KindProperty:
		return "property"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Member describes one member as declared by its owner type.
type Member struct {
	Name       string
	Kind       Kind
	Visibility Visibility
	Owner      Type
}

// Func is a method bound to an instance.
type Func func(args ...interface{}) (interface{}, error)

// Var is a property bound to an instance.
type Var interface {
	Get() interface{}
	Set(v interface{}) error
}

// Type is the runtime type of an instance, as seen by the type-introspection
// facility refraction is built on. Implementations must be comparable: owners
// are matched with ==.
type Type interface {
	Name() string

	// Parent returns the parent type, or nil at the root of the chain.
	Parent() Type

	// Members returns every member of kind declared anywhere in the ancestor
	// chain, private ones included. Declarations of the type itself come
	// before inherited ones.
	Members(kind Kind) []Member

	// BindMethod and BindProperty give access to member m of instance
	// regardless of its declared visibility. They are only called with an
	// instance of this type and a member taken from Members.
	BindMethod(instance interface{}, m Member) (Func, error)
	BindProperty(instance interface{}, m Member) (Var, error)
}

// Object is implemented by instances that describe their own runtime type.
type Object interface {
	RuntimeType() Type
}

// TypeOf returns the runtime type of instance. Values implementing Object
// describe themselves; any other instance must be a non-nil pointer to a
// struct.
func TypeOf(instance interface{}) (Type, error) {
	if instance == nil {
		return nil, fmt.Errorf("%w: instance is nil", ErrInvalidArgument)
	}
	if o, ok := instance.(Object); ok {
		if t := o.RuntimeType(); t != nil {
			return t, nil
		}
		return nil, fmt.Errorf("%w: %T has no runtime type", ErrInvalidArgument, instance)
	}
	return nativeTypeOf(instance)
}

// lookup resolves name against the possible members of typ.
func lookup(typ Type, name string, kind Kind) (Member, bool) {
	for _, m := range typ.Members(kind) {
		if m.Name == name {
			return m, true
		}
	}
	return Member{}, false
}

// visible reports whether m can be reached through an instance of typ: a
// private member is only reachable from the type that declares it.
func visible(typ Type, m Member) bool {
	return m.Visibility != Private || m.Owner == typ
}
