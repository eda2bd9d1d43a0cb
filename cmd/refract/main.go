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

// Command refract loads a YAML class hierarchy, instantiates one class and
// prints the methods and properties visible on the instance.
//
//	refract [-no-color] [-v] <classes.yaml> <class>
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/goplus/refraction"
	"github.com/goplus/refraction/object"
)

var (
	flagNoColor = flag.Bool("no-color", false, "disable colored output")
	flagVerbose = flag.Bool("v", false, "log debug messages")
)

var visibilityColors = map[refraction.Visibility]*color.Color{
	refraction.Private:   color.New(color.FgRed),
	refraction.Protected: color.New(color.FgYellow),
	refraction.Public:    color.New(color.FgGreen),
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: refract [-no-color] [-v] <classes.yaml> <class>\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *flagVerbose {
		log.SetLevel(logrus.DebugLevel)
	}
	refraction.SetLogger(log)

	if *flagNoColor || !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	if err := run(os.Stdout, flag.Arg(0), flag.Arg(1)); err != nil {
		log.WithError(err).Error("refract failed")
		os.Exit(1)
	}
}

func run(w io.Writer, path, className string) error {
	loader := object.NewLoader(nil)
	loader.Stub = true
	if err := loader.LoadFile(path); err != nil {
		return err
	}
	cls, err := loader.LoadClass(className)
	if err != nil {
		return err
	}
	c, err := refraction.NewClass(cls.New())
	if err != nil {
		return err
	}

	bold := color.New(color.Bold)
	bold.Fprintf(w, "class %s", c.Name())
	for p := c.Parent(); p != nil; p = p.Parent() {
		fmt.Fprintf(w, " extends %s", p.Name())
	}
	fmt.Fprintln(w)

	bold.Fprintln(w, "methods:")
	for _, m := range c.Methods() {
		abstract := ""
		if owner, ok := m.Owner().(*object.Class); ok && owner.IsAbstract(m.Name()) {
			abstract = " abstract"
		}
		fmt.Fprintf(w, "  %s %s()%s [%s]\n", visibilityOf(m.Visibility()), m.Name(), abstract, m.Owner().Name())
	}
	bold.Fprintln(w, "properties:")
	for _, p := range c.Properties() {
		fmt.Fprintf(w, "  %s %s = %v [%s]\n", visibilityOf(p.Visibility()), p.Name(), p.Get(), p.Owner().Name())
	}
	return nil
}

func visibilityOf(v refraction.Visibility) string {
	if c, ok := visibilityColors[v]; ok {
		return c.Sprintf("%-9s", v)
	}
	return v.String()
}
