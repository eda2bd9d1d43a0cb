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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/goplus/refraction"
)

var (
	// ErrDuplicateClass error
	ErrDuplicateClass = errors.New("duplicate class")
	// ErrInheritanceCycle error
	ErrInheritanceCycle = errors.New("inheritance cycle")
	// ErrUnknownFunc error
	ErrUnknownFunc = errors.New("unknown func")
)

// FuncMap binds the func names used in class documents to method bodies.
type FuncMap map[string]Func

type document struct {
	Classes []classDecl `yaml:"classes"`
}

type classDecl struct {
	Name       string         `yaml:"name"`
	Extends    string         `yaml:"extends"`
	Methods    []methodDecl   `yaml:"methods"`
	Properties []propertyDecl `yaml:"properties"`
}

type methodDecl struct {
	Name       string `yaml:"name"`
	Visibility string `yaml:"visibility"`
	Func       string `yaml:"func"`
}

type propertyDecl struct {
	Name       string      `yaml:"name"`
	Visibility string      `yaml:"visibility"`
	Value      interface{} `yaml:"value"`
}

// Loader reads class declarations from YAML documents such as
//
//	classes:
//	  - name: Base
//	    methods:
//	      - {name: describe, visibility: protected, func: describe}
//	    properties:
//	      - {name: secret, visibility: private, value: s3cr3t}
//	  - name: Child
//	    extends: Base
//
// A class may extend a class declared later in the same or a previous
// document. Visibility defaults to public; a method without func is abstract.
type Loader struct {
	Funcs FuncMap

	// Stub declares methods whose func is missing from Funcs as abstract
	// instead of failing.
	Stub bool

	decls   map[string]*classDecl
	classes map[string]*Class
	order   []string
}

// NewLoader creates a Loader binding method bodies from funcs. The zero
// Loader is ready to use as well.
func NewLoader(funcs FuncMap) *Loader {
	return &Loader{Funcs: funcs}
}

// LoadFile loads the class document at path.
func (l *Loader) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("object: reading %s: %w", path, err)
	}
	if err := l.LoadBytes(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Load loads a class document from r.
func (l *Loader) Load(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("object: reading classes: %w", err)
	}
	return l.LoadBytes(data)
}

// staging holds the declarations and classes of one load until it succeeds.
type staging struct {
	decls   map[string]*classDecl
	classes map[string]*Class
}

func newStaging() *staging {
	return &staging{
		decls:   make(map[string]*classDecl),
		classes: make(map[string]*Class),
	}
}

// commit merges st into l.
func (l *Loader) commit(st *staging, names []string) {
	if l.decls == nil {
		l.decls = make(map[string]*classDecl)
	}
	if l.classes == nil {
		l.classes = make(map[string]*Class)
	}
	for name, d := range st.decls {
		l.decls[name] = d
	}
	for name, c := range st.classes {
		l.classes[name] = c
	}
	l.order = append(l.order, names...)
}

// LoadBytes loads a class document and defines every class it declares. A
// document that fails to load leaves the Loader unchanged.
func (l *Loader) LoadBytes(data []byte) error {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("object: parsing classes: %w", err)
	}
	st := newStaging()
	names := make([]string, 0, len(doc.Classes))
	for i := range doc.Classes {
		d := &doc.Classes[i]
		if d.Name == "" {
			return fmt.Errorf("object: class %d: %w: missing name", i, refraction.ErrInvalidArgument)
		}
		_, dup := l.decls[d.Name]
		if _, ok := st.decls[d.Name]; ok || dup {
			return fmt.Errorf("object: %w: %s", ErrDuplicateClass, d.Name)
		}
		st.decls[d.Name] = d
		names = append(names, d.Name)
	}
	for _, name := range names {
		if _, err := l.define(st, name, make(map[string]bool)); err != nil {
			return err
		}
	}
	l.commit(st, names)
	return nil
}

// LoadClass returns the class called name, defining it and its ancestors on
// first use.
func (l *Loader) LoadClass(name string) (*Class, error) {
	st := newStaging()
	c, err := l.define(st, name, make(map[string]bool))
	if err != nil {
		return nil, err
	}
	l.commit(st, nil)
	return c, nil
}

// Classes returns the defined classes in declaration order.
func (l *Loader) Classes() []*Class {
	classes := make([]*Class, 0, len(l.classes))
	for _, name := range l.order {
		if c, ok := l.classes[name]; ok {
			classes = append(classes, c)
		}
	}
	return classes
}

func (l *Loader) define(st *staging, name string, visiting map[string]bool) (*Class, error) {
	if c, ok := l.classes[name]; ok {
		return c, nil
	}
	if c, ok := st.classes[name]; ok {
		return c, nil
	}
	d, ok := l.decls[name]
	if !ok {
		d, ok = st.decls[name]
	}
	if !ok {
		return nil, fmt.Errorf("object: %w: class %s", refraction.ErrNotFound, name)
	}
	if visiting[name] {
		return nil, fmt.Errorf("object: %w: %s", ErrInheritanceCycle, name)
	}
	visiting[name] = true

	var parent *Class
	if d.Extends != "" {
		p, err := l.define(st, d.Extends, visiting)
		if err != nil {
			return nil, fmt.Errorf("object: class %s extends %s: %w", name, d.Extends, err)
		}
		parent = p
	}

	c := NewClass(d.Name, parent)
	for _, m := range d.Methods {
		vis, err := visibilityOf(m.Visibility)
		if err != nil {
			return nil, fmt.Errorf("object: method %s.%s: %w", name, m.Name, err)
		}
		var fn Func
		if m.Func != "" {
			if fn, ok = l.Funcs[m.Func]; !ok && !l.Stub {
				return nil, fmt.Errorf("object: method %s.%s: %w: %s", name, m.Name, ErrUnknownFunc, m.Func)
			}
		}
		c.Method(m.Name, vis, fn)
	}
	for _, p := range d.Properties {
		vis, err := visibilityOf(p.Visibility)
		if err != nil {
			return nil, fmt.Errorf("object: property %s.%s: %w", name, p.Name, err)
		}
		c.Property(p.Name, vis, p.Value)
	}
	st.classes[name] = c
	return c, nil
}

func visibilityOf(s string) (refraction.Visibility, error) {
	if s == "" {
		return refraction.Public, nil
	}
	return refraction.ParseVisibility(s)
}
