package object_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goplus/refraction"
	"github.com/goplus/refraction/object"
)

const hierarchy = `
classes:
  - name: Child
    extends: Base
    methods:
      - name: childPrivateMethod
        visibility: private
        func: echo
      - name: extendedMethod
        func: self
    properties:
      - name: childPrivateProperty
        visibility: private
        value: childPrivateProperty
      - name: extendedProperty
        value: childExtendedProperty
  - name: Base
    methods:
      - name: basePrivateMethod
        visibility: private
        func: echo
      - name: baseProtectedMethod
        visibility: protected
        func: echo
      - name: extendedMethod
        func: echo
      - name: abstractMethod
    properties:
      - name: basePrivateProperty
        visibility: private
        value: basePrivateProperty
      - name: extendedProperty
        value: baseExtendedProperty
`

func newLoader() *object.Loader {
	return object.NewLoader(object.FuncMap{
		"echo": echo,
		"self": self,
	})
}

func TestLoader(t *testing.T) {
	l := newLoader()
	require.NoError(t, l.Load(strings.NewReader(hierarchy)))

	var names []string
	for _, c := range l.Classes() {
		names = append(names, c.Name())
	}
	require.Equal(t, []string{"Child", "Base"}, names)

	child, err := l.LoadClass("Child")
	require.NoError(t, err)
	base, err := l.LoadClass("Base")
	require.NoError(t, err)
	require.Same(t, base, child.Super())

	c, err := refraction.NewClass(child.New())
	require.NoError(t, err)
	require.True(t, c.HasMethod("childPrivateMethod"))
	require.True(t, c.HasMethod("baseProtectedMethod"))
	require.False(t, c.HasMethod("basePrivateMethod"))
	require.True(t, c.HasProperty("childPrivateProperty"))
	require.False(t, c.HasProperty("basePrivateProperty"))

	m, err := c.Method("extendedMethod")
	require.NoError(t, err)
	require.Equal(t, refraction.Public, m.Visibility())
	ret, err := m.Invoke()
	require.NoError(t, err)
	require.Same(t, c.Instance(), ret)

	m, err = c.Method("abstractMethod")
	require.NoError(t, err)
	_, err = m.Invoke()
	require.ErrorIs(t, err, object.ErrAbstract)

	p, err := c.Property("extendedProperty")
	require.NoError(t, err)
	require.Equal(t, "childExtendedProperty", p.Get())
}

func TestLoaderAcrossDocuments(t *testing.T) {
	l := newLoader()
	require.NoError(t, l.LoadBytes([]byte("classes:\n  - name: Base\n")))
	require.NoError(t, l.LoadBytes([]byte("classes:\n  - name: Child\n    extends: Base\n")))

	child, err := l.LoadClass("Child")
	require.NoError(t, err)
	require.Equal(t, "Base", child.Super().Name())
	require.Len(t, l.Classes(), 2)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(hierarchy), 0o644))

	l := newLoader()
	require.NoError(t, l.LoadFile(path))
	_, err := l.LoadClass("Base")
	require.NoError(t, err)

	require.Error(t, newLoader().LoadFile(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestLoaderErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		err  error
	}{
		{"unknown parent", "classes:\n  - name: A\n    extends: B\n", refraction.ErrNotFound},
		{"cycle", "classes:\n  - name: A\n    extends: B\n  - name: B\n    extends: A\n", object.ErrInheritanceCycle},
		{"self cycle", "classes:\n  - name: A\n    extends: A\n", object.ErrInheritanceCycle},
		{"duplicate", "classes:\n  - name: A\n  - name: A\n", object.ErrDuplicateClass},
		{"missing name", "classes:\n  - extends: A\n", refraction.ErrInvalidArgument},
		{"unknown func", "classes:\n  - name: A\n    methods:\n      - name: m\n        func: nope\n", object.ErrUnknownFunc},
		{"bad method visibility", "classes:\n  - name: A\n    methods:\n      - name: m\n        visibility: internal\n", refraction.ErrInvalidArgument},
		{"bad property visibility", "classes:\n  - name: A\n    properties:\n      - name: p\n        visibility: friend\n", refraction.ErrInvalidArgument},
	}
	for _, test := range tests {
		err := newLoader().LoadBytes([]byte(test.src))
		require.ErrorIs(t, err, test.err, test.name)
	}

	require.Error(t, newLoader().LoadBytes([]byte("classes: [")))

	_, err := newLoader().LoadClass("Nope")
	require.ErrorIs(t, err, refraction.ErrNotFound)

	// a failed document leaves nothing behind, so the fixed one loads
	l := newLoader()
	err = l.LoadBytes([]byte("classes:\n  - name: A\n  - name: B\n    extends: Missing\n"))
	require.ErrorIs(t, err, refraction.ErrNotFound)
	require.Empty(t, l.Classes())
	_, err = l.LoadClass("A")
	require.ErrorIs(t, err, refraction.ErrNotFound)

	require.NoError(t, l.LoadBytes([]byte("classes:\n  - name: A\n  - name: B\n    extends: A\n")))
	require.Len(t, l.Classes(), 2)
}

func TestZeroLoader(t *testing.T) {
	var l object.Loader
	require.Empty(t, l.Classes())
	_, err := l.LoadClass("A")
	require.ErrorIs(t, err, refraction.ErrNotFound)

	require.NoError(t, l.LoadBytes([]byte("classes:\n  - name: A\n")))
	a, err := l.LoadClass("A")
	require.NoError(t, err)
	require.Equal(t, "A", a.Name())

	l2 := &object.Loader{Funcs: object.FuncMap{"echo": echo}}
	require.NoError(t, l2.LoadBytes([]byte("classes:\n  - name: B\n    methods:\n      - {name: m, func: echo}\n")))
	b, err := l2.LoadClass("B")
	require.NoError(t, err)
	ret, err := b.New().Call("m", 1)
	require.NoError(t, err)
	require.Equal(t, []interface{}{1}, ret)
}

func TestLoaderStub(t *testing.T) {
	src := "classes:\n  - name: A\n    methods:\n      - name: m\n        func: nope\n"
	l := object.NewLoader(nil)
	l.Stub = true
	require.NoError(t, l.LoadBytes([]byte(src)))

	a, err := l.LoadClass("A")
	require.NoError(t, err)
	require.True(t, a.IsAbstract("m"))
	_, err = a.New().Call("m")
	require.ErrorIs(t, err, object.ErrAbstract)
}
