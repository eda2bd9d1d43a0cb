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
	"strings"
)

// Class is the reflection of one object instance. It lists the methods and
// properties visible on that instance: every member declared by the
// instance's runtime type, plus the protected and public members of its
// ancestors.
type Class struct {
	instance interface{}
	typ      Type
}

// NewClass returns the Class of instance.
func NewClass(instance interface{}) (*Class, error) {
	typ, err := TypeOf(instance)
	if err != nil {
		return nil, fmt.Errorf("refraction.NewClass: %w", err)
	}
	return &Class{instance: instance, typ: typ}, nil
}

// Name returns the name of the instance's runtime type.
func (c *Class) Name() string {
	return c.typ.Name()
}

// Type returns the instance's runtime type.
func (c *Class) Type() Type {
	return c.typ
}

// Parent returns the parent of the instance's runtime type, or nil.
func (c *Class) Parent() Type {
	return c.typ.Parent()
}

// Instance returns the refracted instance.
func (c *Class) Instance() interface{} {
	return c.instance
}

// Methods returns a handle for every visible method. The list is computed
// again on each call.
func (c *Class) Methods() []*Method {
	members := actualMembers(c.typ, KindMethod)
	methods := make([]*Method, 0, len(members))
	for _, m := range members {
		method, err := newMethod(c.instance, c.typ, m)
		if err != nil {
			logger.WithFields(memberFields(c.typ, m)).WithError(err).Warn("refraction: skipping unbindable method")
			continue
		}
		methods = append(methods, method)
	}
	return methods
}

// Properties returns a handle for every visible property. The list is
// computed again on each call.
func (c *Class) Properties() []*Property {
	members := actualMembers(c.typ, KindProperty)
	props := make([]*Property, 0, len(members))
	for _, m := range members {
		prop, err := newProperty(c.instance, c.typ, m)
		if err != nil {
			logger.WithFields(memberFields(c.typ, m)).WithError(err).Warn("refraction: skipping unbindable property")
			continue
		}
		props = append(props, prop)
	}
	return props
}

// Method returns the visible method called name. The match is case-sensitive.
func (c *Class) Method(name string) (*Method, error) {
	for _, m := range c.Methods() {
		if m.Name() == name {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: method %s() in class %s", ErrNotFound, name, c.Name())
}

// Property returns the visible property called name. The match is
// case-sensitive.
func (c *Class) Property(name string) (*Property, error) {
	for _, p := range c.Properties() {
		if p.Name() == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: property %s in class %s", ErrNotFound, name, c.Name())
}

// HasMethod reports whether a visible method called name exists, ignoring
// case.
func (c *Class) HasMethod(name string) bool {
	for _, m := range c.Methods() {
		if strings.EqualFold(m.Name(), name) {
			return true
		}
	}
	return false
}

// HasProperty reports whether a visible property called name exists. Unlike
// HasMethod, the match is case-sensitive.
func (c *Class) HasProperty(name string) bool {
	for _, p := range c.Properties() {
		if p.Name() == name {
			return true
		}
	}
	return false
}

type memberKey struct {
	owner Type
	name  string
}

// actualMembers returns the possible members of typ minus the private
// members of each of its ancestors. Members are matched on (owner, name), so
// a private member redeclared by typ itself survives.
func actualMembers(typ Type, kind Kind) []Member {
	pruned := make(map[memberKey]bool)
	for parent := typ.Parent(); parent != nil; parent = parent.Parent() {
		for _, m := range parent.Members(kind) {
			if m.Visibility == Private && m.Owner == parent {
				pruned[memberKey{parent, m.Name}] = true
			}
		}
	}

	possible := typ.Members(kind)
	actual := make([]Member, 0, len(possible))
	for _, m := range possible {
		if pruned[memberKey{m.Owner, m.Name}] {
			logger.WithFields(memberFields(typ, m)).Debug("refraction: pruned private member of ancestor")
			continue
		}
		actual = append(actual, m)
	}
	return actual
}

// resolve finds member name of kind on instance and checks that it is
// visible through the instance's runtime type.
func resolve(instance interface{}, name string, kind Kind) (Type, Member, error) {
	typ, err := TypeOf(instance)
	if err != nil {
		return nil, Member{}, err
	}
	m, ok := lookup(typ, name, kind)
	if !ok {
		return nil, Member{}, fmt.Errorf("%w: %s %s must be defined in class %s", ErrNotFound, kind, name, typ.Name())
	}
	if !visible(typ, m) {
		logger.WithFields(memberFields(typ, m)).Debug("refraction: rejected private member of ancestor")
		return nil, Member{}, fmt.Errorf("%w: %s %s is defined but not visible to %s", ErrNotVisible, kind, name, typ.Name())
	}
	return typ, m, nil
}
