package refraction_test

import (
	"errors"
	"fmt"

	"github.com/goplus/refraction"
	"github.com/goplus/refraction/object"
)

var errBoom = errors.New("boom")

func identity(this *object.Instance, args ...interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("identity: got %d arguments", len(args))
	}
	return args[0], nil
}

func boom(this *object.Instance, args ...interface{}) (interface{}, error) {
	return nil, errBoom
}

// newHierarchy declares Base and Child, where Child extends Base and
// redeclares extendedMethod and extendedProperty.
func newHierarchy() (base, child *object.Class) {
	base = object.NewClass("Base", nil).
		Method("basePrivateMethod", refraction.Private, identity).
		Method("baseProtectedMethod", refraction.Protected, identity).
		Method("basePublicMethod", refraction.Public, identity).
		Method("extendedMethod", refraction.Public, identity).
		Property("basePrivateProperty", refraction.Private, "basePrivateProperty").
		Property("baseProtectedProperty", refraction.Protected, "baseProtectedProperty").
		Property("basePublicProperty", refraction.Public, "basePublicProperty").
		Property("extendedProperty", refraction.Public, "baseExtendedProperty")
	child = object.NewClass("Child", base).
		Method("childPrivateMethod", refraction.Private, identity).
		Method("childProtectedMethod", refraction.Protected, identity).
		Method("childPublicMethod", refraction.Public, identity).
		Method("extendedMethod", refraction.Public, identity).
		Method("explode", refraction.Public, boom).
		Method("abstractMethod", refraction.Public, nil).
		Property("childPrivateProperty", refraction.Private, "childPrivateProperty").
		Property("childProtectedProperty", refraction.Protected, "childProtectedProperty").
		Property("childPublicProperty", refraction.Public, "childPublicProperty").
		Property("extendedProperty", refraction.Public, "childExtendedProperty")
	return
}

func newChild() *object.Instance {
	_, child := newHierarchy()
	return child.New()
}

var errDivideByZero = errors.New("divide by zero")

type nativeBase struct {
	basePrivate   string
	baseProtected string `refraction:"protected"`
	BasePublic    string
	Extended      string
}

func (b *nativeBase) BaseMethod(v string) string { return "base:" + v }

func (b *nativeBase) ExtendedMethod() string { return "base" }

type nativeChild struct {
	nativeBase
	childPrivate string
	ChildPublic  string
	Extended     string
	Helper       *nativeBase
}

func (c *nativeChild) ChildMethod(v string) string { return "child:" + v }

func (c *nativeChild) ExtendedMethod() string { return "child" }

func (c *nativeChild) Divide(a, b int) (int, error) {
	if b == 0 {
		return 0, errDivideByZero
	}
	return a / b, nil
}

func (c *nativeChild) Sum(xs ...int) int {
	n := 0
	for _, x := range xs {
		n += x
	}
	return n
}

func (c *nativeChild) Pair() (string, int) { return "pair", 2 }

func (c *nativeChild) Reset() { c.ChildPublic = "" }

func newNativeChild() *nativeChild {
	return &nativeChild{
		nativeBase: nativeBase{
			basePrivate:   "basePrivate",
			baseProtected: "baseProtected",
			BasePublic:    "BasePublic",
			Extended:      "baseExtended",
		},
		childPrivate: "childPrivate",
		ChildPublic:  "ChildPublic",
		Extended:     "childExtended",
	}
}

func methodNames(methods []*refraction.Method) []string {
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = m.Name()
	}
	return names
}

func propertyNames(props []*refraction.Property) []string {
	names := make([]string, len(props))
	for i, p := range props {
		names[i] = p.Name()
	}
	return names
}
