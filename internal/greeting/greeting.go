// Package greeting turns a name into a greeting line.
package greeting

import "fmt"

// DefaultName is greeted when the caller gives no name.
const DefaultName = "Guest"

// Greeter maps a name to a greeting.
type Greeter interface {
	Greet(name string) string
}

// Func adapts a plain function to Greeter.
type Func func(name string) string

func (f Func) Greet(name string) string { return f(name) }

// Greet returns "Hello, <name>!".
func Greet(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}

// Default is the Greeter backed by Greet.
var Default Greeter = Func(Greet)
