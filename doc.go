// Package typeset is a pretty-printer: it compiles a small recursive layout
// algebra (text, soft/hard composition, and scope modifiers for grouping,
// fixing, indenting, and column alignment) into a line-wrapped string at a
// chosen tab and line width.
//
// Quick example:
//
//	l := typeset.Comp(typeset.Text("Hello"), typeset.Text("World"), true, false)
//	typeset.Render(typeset.Compile(l), 2, 80) // "Hello World"
//	typeset.Render(typeset.Compile(l), 2, 5)  // "Hello\nWorld"
//
// Everything needed for that one-import use is re-exported here:
// the `layout` constructors (`Null`, `Text`, `Fix`, `Grp`, `Seq`, `Nest`,
// `Pack`, `Line`, `Comp`), the `compiler` entry points (`Compile`,
// `CompileSafe`, `CompileSafeWithDepth`, `Option`, `WithMaxDepth`), and
// `render.Render`. This package is a thin facade over them, not a new
// abstraction — reach for `github.com/soren-n/typeset-go/layout`,
// `.../compiler`, or `.../render` directly if a package boundary matters
// to you (e.g. for `errors.As` against `typeseterr`'s taxonomy, or to read
// the `String()` debug form of an intermediate pass's IR).
//
// Under the hood, a `*layout.Layout` is compiled through ten passes
// (`broken`, `serialize`, `linearize`, `fixed`, `structurize`, `denull`,
// `identities`, `reassociate`, `rescope`, `materialize`, orchestrated by
// `compiler`) into a `*materialize.Doc`, which `render.Render` then walks
// to produce the final string.
package typeset

import (
	"github.com/soren-n/typeset-go/compiler"
	"github.com/soren-n/typeset-go/layout"
	"github.com/soren-n/typeset-go/materialize"
	"github.com/soren-n/typeset-go/render"
)

// Re-exported layout constructors — see package layout for documentation.
var (
	Null = layout.Null
	Text = layout.Text
	Fix  = layout.Fix
	Grp  = layout.Grp
	Seq  = layout.Seq
	Nest = layout.Nest
	Pack = layout.Pack
	Line = layout.Line
	Comp = layout.Comp
)

// Layout is the input algebra's node type; see package layout.
type Layout = layout.Layout

// Doc is a compiled document, ready for Render; see package materialize.
type Doc = materialize.Doc

// Option customizes CompileSafe; see package compiler.
type Option = compiler.Option

// WithMaxDepth bounds CompileSafe's recursion depth; see package compiler.
var WithMaxDepth = compiler.WithMaxDepth

// Compile runs the full pipeline, panicking on an invariant violation.
func Compile(l *Layout) *Doc {
	return compiler.Compile(l)
}

// CompileSafe runs the full pipeline, returning an error instead of
// panicking on an invariant violation.
func CompileSafe(l *Layout, opts ...Option) (*Doc, error) {
	return compiler.CompileSafe(l, opts...)
}

// CompileSafeWithDepth is CompileSafe(l, WithMaxDepth(maxDepth)) sugar.
func CompileSafeWithDepth(l *Layout, maxDepth int) (*Doc, error) {
	return compiler.CompileSafeWithDepth(l, maxDepth)
}

// Render prints d at the given tab width and line width.
func Render(d *Doc, tab, width int) string {
	return render.Render(d, tab, width)
}
