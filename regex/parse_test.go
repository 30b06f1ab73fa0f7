package regex

import (
	"errors"
	"testing"

	"github.com/npillmayer/rexa"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParsePrecedence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexa.regex")
	defer teardown()
	//
	var cases = []struct {
		input, tree string
	}{
		{"a", "a"},
		{"ab", "(cat a b)"},
		{"abc", "(cat (cat a b) c)"},
		{"a|b", "(or a b)"},
		{"a|b|c", "(or (or a b) c)"},
		{"a|bc*", "(or a (cat b (star c)))"},
		{"ab*c", "(cat (cat a (star b)) c)"},
		{"(a|b)+", "(plus (or a b))"},
		{"a*+", "(plus (star a))"},
		{"(ab)*c", "(cat (star (cat a b)) c)"},
		{"((a))", "a"},
	}
	for _, c := range cases {
		tree, err := Parse(c.input)
		if err != nil {
			t.Errorf("unexpected error for %q: %v", c.input, err)
			continue
		}
		if tree.String() != c.tree {
			t.Errorf("expected %q to parse as %s, is %s", c.input, c.tree, tree)
		}
	}
}

func TestParseEscapes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexa.regex")
	defer teardown()
	//
	tree, err := Parse(`a\*\|\\\(`)
	if err != nil {
		t.Fatal(err)
	}
	syms := Alphabet(tree)
	want := []rexa.Symbol{'(', '*', '\\', 'a', '|'}
	if len(syms) != len(want) {
		t.Fatalf("expected alphabet %v, is %v", want, syms)
	}
	for i := range want {
		if syms[i] != want[i] {
			t.Errorf("expected alphabet %v, is %v", want, syms)
		}
	}
	// an escaped ordinary character is the character itself
	tree, err = Parse(`\a`)
	if err != nil {
		t.Fatal(err)
	}
	if lit, ok := tree.(*Literal); !ok || lit.Sym != 'a' {
		t.Errorf(`expected \a to be literal 'a', is %s`, tree)
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexa.regex")
	defer teardown()
	//
	var cases = []struct {
		input string
		kind  ErrorKind
		pos   int
	}{
		{"", EmptyExpression, 0},
		{"(a", UnbalancedParens, 0},
		{"a(b", UnbalancedParens, 1},
		{"a)", UnbalancedParens, 1},
		{")", UnbalancedParens, 0},
		{"(a))", UnbalancedParens, 3},
		{"(", UnbalancedParens, 1},
		{"()", EmptyExpression, 1},
		{"(()", EmptyExpression, 2}, // first error wins
		{"*a", UnexpectedToken, 0},
		{"a|+", UnexpectedToken, 2},
		{"(*)", UnexpectedToken, 1},
		{"a|", EmptyExpression, 2},
		{"|a", EmptyExpression, 0},
		{"a||b", EmptyExpression, 2},
		{`ab\`, UnexpectedToken, 2},
	}
	for _, c := range cases {
		_, err := Parse(c.input)
		if err == nil {
			t.Errorf("expected %q to fail, did not", c.input)
			continue
		}
		var serr *SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("expected a *SyntaxError for %q, got %T", c.input, err)
			continue
		}
		if serr.Kind != c.kind {
			t.Errorf("expected %q to fail with %s, failed with %s", c.input, c.kind, serr.Kind)
		}
		if serr.Pos.From() != c.pos {
			t.Errorf("expected error for %q at position %d, is %d", c.input, c.pos, serr.Pos.From())
		}
	}
}

func TestAlphabetAndLabels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexa.regex")
	defer teardown()
	//
	tree := MustParse("(b|a)*ab+")
	syms := Alphabet(tree)
	if len(syms) != 2 || syms[0] != 'a' || syms[1] != 'b' {
		t.Errorf("expected alphabet [a b], is %v", syms)
	}
	if Label(tree) != "cat" {
		t.Errorf("expected root to be a concatenation, is %s", Label(tree))
	}
	if n := len(Children(tree)); n != 2 {
		t.Errorf("expected concatenation to have 2 children, has %d", n)
	}
}

func TestUnicodeLiterals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexa.regex")
	defer teardown()
	//
	tree, err := Parse("ä|ö")
	if err != nil {
		t.Fatal(err)
	}
	if tree.String() != "(or ä ö)" {
		t.Errorf("expected (or ä ö), is %s", tree)
	}
	_, err = Parse("ä)")
	var serr *SyntaxError
	if !errors.As(err, &serr) || serr.Pos.From() != 1 {
		t.Errorf("expected error position to count runes, got %v", err)
	}
}
