package typeset_test

import (
	"fmt"

	typeset "github.com/soren-n/typeset-go"
)

// ExampleCompile_simplePadded shows scenario A: a soft composition that
// stays on one line when it fits and splits when it doesn't.
func ExampleCompile_simplePadded() {
	l := typeset.Comp(typeset.Text("Hello"), typeset.Text("World"), true, false)

	fmt.Println(typeset.Render(typeset.Compile(l), 2, 80))
	fmt.Println(typeset.Render(typeset.Compile(l), 2, 5))
	// Output:
	// Hello World
	// Hello
	// World
}

// ExampleCompile_forcedNewline shows scenario C: a Line node always breaks
// regardless of width.
func ExampleCompile_forcedNewline() {
	l := typeset.Line(typeset.Text("First line"), typeset.Text("Second line"))

	fmt.Println(typeset.Render(typeset.Compile(l), 2, 80))
	// Output:
	// First line
	// Second line
}

// ExampleCompile_jsonLike composes a small JSON-like object: its fields stay
// on one line when the object fits, and break one field per line — indented
// under the opening brace, with each field's key, value and trailing comma
// held fixed together — once it doesn't.
func ExampleCompile_jsonLike() {
	field := func(key, value string) *typeset.Layout {
		return typeset.Comp(typeset.Text(key), typeset.Text(value), true, true)
	}
	a := typeset.Comp(field(`"a":`, "1"), typeset.Text(","), false, true)
	fields := typeset.Comp(a, field(`"b":`, "2"), true, false)
	obj := typeset.Comp(
		typeset.Text("{"),
		typeset.Comp(typeset.Nest(typeset.Seq(fields)), typeset.Text("}"), false, false),
		false, false,
	)

	fmt.Println(typeset.Render(typeset.Compile(obj), 2, 80))
	fmt.Println(typeset.Render(typeset.Compile(obj), 2, 10))
	// Output:
	// {"a": 1, "b": 2}
	// {"a": 1,
	//   "b": 2}
}

// ExampleCompile_sExprLike composes a small S-expression-like call tree,
// including a nested call as one of the outer call's arguments: the whole
// form stays on one line when it fits, and breaks one argument per line,
// indented under the opening paren, once it doesn't — while the nested
// call keeps its own, independent breaking decision.
func ExampleCompile_sExprLike() {
	sexpr := func(head string, args ...*typeset.Layout) *typeset.Layout {
		body := typeset.Text(head)
		for _, a := range args {
			body = typeset.Comp(body, a, true, false)
		}
		return typeset.Grp(typeset.Comp(
			typeset.Text("("),
			typeset.Comp(typeset.Nest(typeset.Seq(body)), typeset.Text(")"), false, false),
			false, false,
		))
	}
	mul := sexpr("mul", typeset.Text("2"), typeset.Text("3"))
	add := sexpr("add", typeset.Text("1"), mul)

	fmt.Println(typeset.Render(typeset.Compile(add), 2, 80))
	fmt.Println(typeset.Render(typeset.Compile(add), 2, 14))
	// Output:
	// (add 1 (mul 2 3))
	// (add
	//   1
	//   (mul 2 3))
}
