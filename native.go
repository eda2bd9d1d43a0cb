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
	"go/token"
	"reflect"

	xcall "github.com/goplus/refraction/internal/reflect"
)

// TagName is the struct tag that overrides a field's default visibility:
// `refraction:"protected"`.
const TagName = "refraction"

// structType is the runtime type of a pointer-to-struct instance. The first
// embedded struct value of a struct is its parent.
type structType struct {
	t reflect.Type
}

func nativeTypeOf(instance interface{}) (Type, error) {
	v := reflect.ValueOf(instance)
	if v.Kind() != reflect.Ptr || v.Type().Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %T is not an object", ErrInvalidArgument, instance)
	}
	if v.IsNil() {
		return nil, fmt.Errorf("%w: %T is nil", ErrInvalidArgument, instance)
	}
	return structType{v.Type().Elem()}, nil
}

func (t structType) Name() string {
	if name := t.t.Name(); name != "" {
		return name
	}
	return t.t.String()
}

func (t structType) String() string {
	return t.t.String()
}

func (t structType) Parent() Type {
	if p, ok := t.parent(); ok {
		return p
	}
	return nil
}

func (t structType) parent() (structType, bool) {
	if i := parentIndex(t.t); i >= 0 {
		return structType{t.t.Field(i).Type}, true
	}
	return structType{}, false
}

func parentIndex(t reflect.Type) int {
	for i := 0; i < t.NumField(); i++ {
		if f := t.Field(i); f.Anonymous && f.Type.Kind() == reflect.Struct {
			return i
		}
	}
	return -1
}

// ownFields returns the indexes of the fields t declares itself.
func ownFields(t reflect.Type) []int {
	parent := parentIndex(t)
	idx := make([]int, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if i == parent || t.Field(i).Name == "_" {
			continue
		}
		idx = append(idx, i)
	}
	return idx
}

func fieldVisibility(f reflect.StructField) Visibility {
	if tag, ok := f.Tag.Lookup(TagName); ok {
		if v, err := ParseVisibility(tag); err == nil {
			return v
		}
	}
	// reflectx.StructOf leaves PkgPath empty for unexported fields.
	if token.IsExported(f.Name) {
		return Public
	}
	return Private
}

func (t structType) Members(kind Kind) []Member {
	if kind == KindMethod {
		return t.methods()
	}
	return t.properties()
}

// properties lists the fields of t, then those of its ancestors. A field
// shadowed by a field of the same name closer to t is left out.
func (t structType) properties() []Member {
	var members []Member
	seen := make(map[string]bool)
	for cur, ok := t, true; ok; cur, ok = cur.parent() {
		for _, i := range ownFields(cur.t) {
			f := cur.t.Field(i)
			if seen[f.Name] {
				continue
			}
			seen[f.Name] = true
			members = append(members, Member{
				Name:       f.Name,
				Kind:       KindProperty,
				Visibility: fieldVisibility(f),
				Owner:      cur,
			})
		}
	}
	return members
}

// methods lists the method set of *t. Go reflection only sees exported
// methods, so they are all public.
func (t structType) methods() []Member {
	pt := reflect.PtrTo(t.t)
	members := make([]Member, 0, pt.NumMethod())
	for i := 0; i < pt.NumMethod(); i++ {
		name := pt.Method(i).Name
		members = append(members, Member{
			Name:       name,
			Kind:       KindMethod,
			Visibility: Public,
			Owner:      t.methodOwner(name),
		})
	}
	return members
}

// methodOwner returns the most distant ancestor whose method set still has
// name. Method sets cannot tell an override from a promoted method, so an
// override is attributed to the ancestor it replaces.
func (t structType) methodOwner(name string) Type {
	owner := t
	for p, ok := t.parent(); ok; p, ok = p.parent() {
		if _, has := reflect.PtrTo(p.t).MethodByName(name); !has {
			break
		}
		owner = p
	}
	return owner
}

func (t structType) check(instance interface{}) (reflect.Value, error) {
	v := reflect.ValueOf(instance)
	if v.Kind() != reflect.Ptr || v.Type().Elem() != t.t || v.IsNil() {
		return reflect.Value{}, fmt.Errorf("%w: %T is not a *%v", ErrInvalidArgument, instance, t.t)
	}
	return v, nil
}

func (t structType) BindMethod(instance interface{}, m Member) (Func, error) {
	v, err := t.check(instance)
	if err != nil {
		return nil, err
	}
	fn := v.MethodByName(m.Name)
	if !fn.IsValid() {
		return nil, fmt.Errorf("%w: method %s of %v", ErrNotFound, m.Name, t.t)
	}
	return funcOf(fn), nil
}

func (t structType) BindProperty(instance interface{}, m Member) (Var, error) {
	v, err := t.check(instance)
	if err != nil {
		return nil, err
	}
	owner, ok := m.Owner.(structType)
	if !ok {
		return nil, fmt.Errorf("%w: %v is not a struct type", ErrInvalidArgument, m.Owner)
	}
	v = v.Elem()
	cur := t
	for cur != owner {
		i := parentIndex(cur.t)
		if i < 0 {
			return nil, fmt.Errorf("%w: %v does not extend %v", ErrInvalidArgument, t.t, owner.t)
		}
		v = v.Field(i)
		cur = structType{cur.t.Field(i).Type}
	}
	for _, i := range ownFields(owner.t) {
		if owner.t.Field(i).Name == m.Name {
			return field{xcall.Accessible(v.Field(i))}, nil
		}
	}
	return nil, fmt.Errorf("%w: field %s of %v", ErrNotFound, m.Name, owner.t)
}
