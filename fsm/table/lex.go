package table

import (
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of the tabular format.
const (
	tokSemi  int = iota + 1 // field separator
	tokComma                // separator of names within a cell
	tokNewline
	tokText // anything else
)

var lexer *lexmachine.Lexer
var lexerErr error
var lexerOnce sync.Once // monitors one-time initialization

// tableLexer returns the lexer for the tabular format, compiling its DFA on
// first use.
func tableLexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`;`), makeToken(tokSemi))
		lexer.Add([]byte(`\,`), makeToken(tokComma))
		lexer.Add([]byte(`\n`), makeToken(tokNewline))
		lexer.Add([]byte(`\r`), skip) // tolerate CRLF line ends
		lexer.Add([]byte(`[^;\,\n\r]+`), makeToken(tokText))
		if lexerErr = lexer.Compile(); lexerErr != nil {
			tracer().Errorf("error compiling DFA for table lexer: %v", lexerErr)
		}
	})
	return lexer, lexerErr
}

// skip is a lexer action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is a lexer action which wraps a scanned match into a token.
func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// --- Rows and fields -------------------------------------------------------

// field is a ';'-separated field of a row. raw is the field's text as is,
// items are its ','-separated, non-empty parts.
type field struct {
	raw   string
	items []string
}

type row struct {
	line   int
	fields []field
}

func (r row) blank() bool {
	return len(r.fields) == 1 && r.fields[0].raw == ""
}

// splitRows tokenizes input and groups tokens into rows of fields.
// Blank lines are dropped.
func splitRows(input []byte) ([]row, error) {
	lx, err := tableLexer()
	if err != nil {
		return nil, err
	}
	scanner, err := lx.Scanner(input)
	if err != nil {
		return nil, err
	}
	var rows []row
	line := 1
	cur := row{line: line, fields: []field{{}}}
	var item []byte
	closeItem := func() {
		f := &cur.fields[len(cur.fields)-1]
		if len(item) > 0 {
			f.items = append(f.items, string(item))
		}
		item = item[:0]
	}
	closeRow := func() {
		closeItem()
		if !cur.blank() {
			rows = append(rows, cur)
		}
		line++
		cur = row{line: line, fields: []field{{}}}
	}
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			return nil, formatError(line, "cannot scan input: %v", err)
		}
		t := tok.(*lexmachine.Token)
		f := &cur.fields[len(cur.fields)-1]
		switch t.Type {
		case tokSemi:
			closeItem()
			cur.fields = append(cur.fields, field{})
		case tokComma:
			closeItem()
			f.raw += ","
		case tokNewline:
			closeRow()
		case tokText:
			f.raw += string(t.Lexeme)
			item = append(item, t.Lexeme...)
		}
	}
	closeRow()
	tracer().Debugf("table input has %d non-blank rows", len(rows))
	return rows, nil
}
