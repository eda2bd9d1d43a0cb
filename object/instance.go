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

package object

import (
	"fmt"

	"github.com/goplus/refraction"
)

// slot addresses a property value. Private properties are keyed by their
// owner as well, so that a subclass's private property never shares storage
// with an ancestor's property of the same name.
type slot struct {
	owner *Class
	name  string
}

func slotOf(owner *Class, m *member) slot {
	if m.vis == refraction.Private {
		return slot{owner, m.name}
	}
	return slot{nil, m.name}
}

// Instance is an object of a Class.
type Instance struct {
	class *Class
	slots map[slot]interface{}
}

// RuntimeType implements refraction.Object.
func (o *Instance) RuntimeType() refraction.Type {
	if o == nil || o.class == nil {
		return nil
	}
	return o.class
}

// Class returns the class o was created from.
func (o *Instance) Class() *Class {
	return o.class
}

func (o *Instance) String() string {
	return o.class.name + " instance"
}

// public resolves name the way code outside the class hierarchy sees it:
// only public members are reachable.
func (o *Instance) public(kind refraction.Kind, name string) (*Class, *member, error) {
	for cur := o.class; cur != nil; cur = cur.parent {
		if m := cur.declaration(kind, name); m != nil {
			if m.vis != refraction.Public {
				return nil, nil, fmt.Errorf("%w: %s %s.%s is %v", refraction.ErrNotVisible, kind, cur.name, name, m.vis)
			}
			return cur, m, nil
		}
	}
	return nil, nil, fmt.Errorf("%w: %s %s in class %s", refraction.ErrNotFound, kind, name, o.class.name)
}

// Get reads the public property name.
func (o *Instance) Get(name string) (interface{}, error) {
	owner, m, err := o.public(refraction.KindProperty, name)
	if err != nil {
		return nil, err
	}
	return o.slots[slotOf(owner, m)], nil
}

// Set writes the public property name.
func (o *Instance) Set(name string, v interface{}) error {
	owner, m, err := o.public(refraction.KindProperty, name)
	if err != nil {
		return err
	}
	o.slots[slotOf(owner, m)] = v
	return nil
}

// Call invokes the public method name.
func (o *Instance) Call(name string, args ...interface{}) (interface{}, error) {
	owner, m, err := o.public(refraction.KindMethod, name)
	if err != nil {
		return nil, err
	}
	return call(o, owner, m, args)
}

type slotVar struct {
	o   *Instance
	key slot
}

func (v *slotVar) Get() interface{} {
	return v.o.slots[v.key]
}

func (v *slotVar) Set(x interface{}) error {
	v.o.slots[v.key] = x
	return nil
}
