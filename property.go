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

// Property is a property bound to one instance.
type Property struct {
	instance interface{}
	typ      Type
	member   Member
	v        Var
}

// NewProperty binds the property called name to instance.
//
// It fails with ErrNotFound when no type in the instance's ancestry declares
// the property, and with ErrNotVisible when the property is private to an
// ancestor.
func NewProperty(instance interface{}, name string) (*Property, error) {
	typ, m, err := resolve(instance, name, KindProperty)
	if err != nil {
		return nil, fmt.Errorf("refraction.NewProperty: %w", err)
	}
	prop, err := newProperty(instance, typ, m)
	if err != nil {
		return nil, fmt.Errorf("refraction.NewProperty: %w", err)
	}
	return prop, nil
}

func newProperty(instance interface{}, typ Type, m Member) (*Property, error) {
	v, err := typ.BindProperty(instance, m)
	if err != nil {
		return nil, err
	}
	return &Property{instance: instance, typ: typ, member: m, v: v}, nil
}

func (p *Property) Name() string {
	return p.member.Name
}

func (p *Property) Visibility() Visibility {
	return p.member.Visibility
}

// Owner returns the type that declares the property.
func (p *Property) Owner() Type {
	return p.member.Owner
}

// Member returns the property's descriptor.
func (p *Property) Member() Member {
	return p.member
}

// Instance returns the instance the property is bound to.
func (p *Property) Instance() interface{} {
	return p.instance
}

// Get returns the property's current value on the instance.
func (p *Property) Get() interface{} {
	return p.v.Get()
}

// Set stores v into the property of the instance. Only the instance is
// changed; the handle keeps no copy of the value.
func (p *Property) Set(v interface{}) error {
	return p.v.Set(v)
}

func (p *Property) String() string {
	return p.member.Owner.Name() + "." + p.member.Name
}
