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

// Package object is a dynamic class model for refraction: classes declared
// at run time with a single parent, private, protected and public methods and
// properties, and instances holding property values.
//
// A *Class is a refraction.Type and an *Instance is a refraction.Object, so
// instances can be passed straight to refraction.NewClass, NewMethod and
// NewProperty.
package object

import (
	"errors"
	"fmt"

	"github.com/goplus/refraction"
)

var (
	// ErrAbstract error
	ErrAbstract = errors.New("abstract method")
)

// Func is the body of a method. this is the instance the method is invoked on.
type Func func(this *Instance, args ...interface{}) (interface{}, error)

type member struct {
	name  string
	vis   refraction.Visibility
	fn    Func
	value interface{}
}

// Class is a class declaration.
type Class struct {
	name    string
	parent  *Class
	methods []*member
	props   []*member
}

// NewClass declares a class called name extending parent. parent may be nil.
func NewClass(name string, parent *Class) *Class {
	return &Class{name: name, parent: parent}
}

// Method declares a method. A nil fn declares an abstract method. Declaring
// the same name twice replaces the first declaration.
func (c *Class) Method(name string, vis refraction.Visibility, fn Func) *Class {
	c.methods = declare(c.methods, &member{name: name, vis: vis, fn: fn})
	return c
}

// Property declares a property with its default value.
func (c *Class) Property(name string, vis refraction.Visibility, value interface{}) *Class {
	c.props = declare(c.props, &member{name: name, vis: vis, value: value})
	return c
}

func declare(list []*member, m *member) []*member {
	for i, old := range list {
		if old.name == m.name {
			list[i] = m
			return list
		}
	}
	return append(list, m)
}

func (c *Class) Name() string {
	return c.name
}

func (c *Class) String() string {
	return c.name
}

// Parent returns the parent class as a refraction.Type, or nil.
func (c *Class) Parent() refraction.Type {
	if c.parent == nil {
		return nil
	}
	return c.parent
}

// Super returns the parent class, or nil.
func (c *Class) Super() *Class {
	return c.parent
}

// Is reports whether c is other or extends it.
func (c *Class) Is(other *Class) bool {
	for cur := c; cur != nil; cur = cur.parent {
		if cur == other {
			return true
		}
	}
	return false
}

// IsAbstract reports whether c itself declares name as a method without a
// body.
func (c *Class) IsAbstract(name string) bool {
	m := c.declaration(refraction.KindMethod, name)
	return m != nil && m.fn == nil
}

func (c *Class) declared(kind refraction.Kind) []*member {
	if kind == refraction.KindMethod {
		return c.methods
	}
	return c.props
}

func (c *Class) declaration(kind refraction.Kind, name string) *member {
	for _, m := range c.declared(kind) {
		if m.name == name {
			return m
		}
	}
	return nil
}

// Members lists the members c declares, then the members of its ancestors
// that no closer class redeclares.
func (c *Class) Members(kind refraction.Kind) []refraction.Member {
	var members []refraction.Member
	seen := make(map[string]bool)
	for cur := c; cur != nil; cur = cur.parent {
		for _, m := range cur.declared(kind) {
			if seen[m.name] {
				continue
			}
			seen[m.name] = true
			members = append(members, refraction.Member{
				Name:       m.name,
				Kind:       kind,
				Visibility: m.vis,
				Owner:      cur,
			})
		}
	}
	return members
}

// New creates an instance of c with every property set to its default.
func (c *Class) New() *Instance {
	var chain []*Class
	for cur := c; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}
	o := &Instance{class: c, slots: make(map[slot]interface{})}
	for i := len(chain) - 1; i >= 0; i-- {
		for _, p := range chain[i].props {
			o.slots[slotOf(chain[i], p)] = p.value
		}
	}
	return o
}

func (c *Class) bind(instance interface{}, kind refraction.Kind, m refraction.Member) (*Instance, *Class, *member, error) {
	o, ok := instance.(*Instance)
	if !ok || o == nil || o.class != c {
		return nil, nil, nil, fmt.Errorf("%w: %T is not an instance of %s", refraction.ErrInvalidArgument, instance, c.name)
	}
	owner, ok := m.Owner.(*Class)
	if !ok || !c.Is(owner) {
		return nil, nil, nil, fmt.Errorf("%w: %s does not extend %v", refraction.ErrInvalidArgument, c.name, m.Owner)
	}
	decl := owner.declaration(kind, m.Name)
	if decl == nil {
		return nil, nil, nil, fmt.Errorf("%w: %s %s.%s", refraction.ErrNotFound, kind, owner.name, m.Name)
	}
	return o, owner, decl, nil
}

func (c *Class) BindMethod(instance interface{}, m refraction.Member) (refraction.Func, error) {
	o, owner, decl, err := c.bind(instance, refraction.KindMethod, m)
	if err != nil {
		return nil, err
	}
	return func(args ...interface{}) (interface{}, error) {
		return call(o, owner, decl, args)
	}, nil
}

func (c *Class) BindProperty(instance interface{}, m refraction.Member) (refraction.Var, error) {
	o, owner, decl, err := c.bind(instance, refraction.KindProperty, m)
	if err != nil {
		return nil, err
	}
	return &slotVar{o: o, key: slotOf(owner, decl)}, nil
}

func call(o *Instance, owner *Class, m *member, args []interface{}) (interface{}, error) {
	if m.fn == nil {
		return nil, fmt.Errorf("%w: %s.%s()", ErrAbstract, owner.name, m.name)
	}
	return m.fn(o, args...)
}
