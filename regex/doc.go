/*
Package regex parses regular expressions into abstract syntax trees.

The supported syntax is deliberately small. From lowest to highest precedence:

    expression  ::=  term ( '|' term )*
    term        ::=  factor factor*              // juxtaposition = concatenation
    factor      ::=  primary ( '*' | '+' )*
    primary     ::=  literal  |  '(' expression ')'  |  '\' any-character

A literal is any character other than + * ( ) | \ . A backslash turns the
following character into a literal, whatever it is. There are no character
classes, anchors or back-references.

Example:

    tree, err := regex.Parse("a(b|c)*")
    fmt.Println(tree)   // (cat a (star (or b c)))

Parse errors are reported as *SyntaxError, which carries the error kind and
the position of the offending character.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package regex

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rexa.regex'.
func tracer() tracing.Trace {
	return tracing.Select("rexa.regex")
}
