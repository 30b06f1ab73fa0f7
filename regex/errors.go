package regex

import (
	"fmt"

	"github.com/npillmayer/rexa"
)

// ErrorKind classifies syntax errors.
type ErrorKind int

// Kinds of syntax errors.
const (
	UnbalancedParens ErrorKind = iota + 1 // unmatched '(' or stray ')'
	UnexpectedToken                       // operator without operand, dangling escape
	EmptyExpression                       // nothing to match where an operand is required
)

func (k ErrorKind) String() string {
	switch k {
	case UnbalancedParens:
		return "unbalanced parentheses"
	case UnexpectedToken:
		return "unexpected token"
	case EmptyExpression:
		return "empty expression"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// SyntaxError is returned by Parse for malformed regular expressions.
type SyntaxError struct {
	Kind ErrorKind
	Pos  rexa.Span // position of the offending character, in runes
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("regex syntax error at position %d: %s: %s", e.Pos.From(), e.Kind, e.Msg)
}

func syntaxError(kind ErrorKind, pos int, format string, args ...interface{}) *SyntaxError {
	err := &SyntaxError{
		Kind: kind,
		Pos:  rexa.Span{pos, pos + 1},
		Msg:  fmt.Sprintf(format, args...),
	}
	tracer().Debugf("%s", err.Error())
	return err
}
