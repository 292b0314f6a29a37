package identities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soren-n/typeset-go/denull"
	"github.com/soren-n/typeset-go/fixed"
	"github.com/soren-n/typeset-go/identities"
	"github.com/soren-n/typeset-go/layout"
	"github.com/soren-n/typeset-go/linearize"
	"github.com/soren-n/typeset-go/serialize"
	"github.com/soren-n/typeset-go/structurize"
)

func compile(l *layout.Layout) *denull.DenullDoc {
	d := denull.Run(structurize.Run(fixed.Run(linearize.Run(serialize.Run(l)))))
	return identities.Run(d)
}

func TestRun_SeqWithZeroCompsIsEliminated(t *testing.T) {
	in := layout.Seq(layout.Text("x"))
	doc := compile(in)
	require.Len(t, doc.Lines, 1)
	assert.Equal(t, `(Text "x")`, doc.Lines[0].String())
}

func TestRun_SeqWithOneCompIsEliminated(t *testing.T) {
	in := layout.Seq(layout.Comp(layout.Text("x"), layout.Text("y"), true, false))
	doc := compile(in)
	assert.Equal(t, `(Comp (Text "x") (Text "y") true)`, doc.Lines[0].String())
}

func TestRun_SeqWithTwoCompsIsKept(t *testing.T) {
	in := layout.Seq(layout.Comp(
		layout.Comp(layout.Text("x"), layout.Text("y"), true, false),
		layout.Text("z"),
		true, false,
	))
	doc := compile(in)
	assert.Equal(t, `(Seq (Comp (Comp (Text "x") (Text "y") true) (Text "z") true))`, doc.Lines[0].String())
}

func TestRun_NestedSeqWithinSeqCountsAsOneScope(t *testing.T) {
	// The inner Seq wraps a single Comp and the outer only one of its own,
	// but nesting shares one tally: two Comps total under the outer Seq, so
	// the outer is kept and the inner is flattened away.
	in := layout.Seq(layout.Comp(
		layout.Seq(layout.Comp(layout.Text("x"), layout.Text("y"), true, false)),
		layout.Text("z"),
		true, false,
	))
	doc := compile(in)
	assert.Equal(t, `(Seq (Comp (Comp (Text "x") (Text "y") true) (Text "z") true))`, doc.Lines[0].String())
}

func TestRun_SeqDoesNotCrossIntoNestedGrp(t *testing.T) {
	// The Grp hides its own Comp from the outer Seq's tally entirely, so the
	// outer Seq sees zero Comps of its own and is eliminated even though the
	// Grp it wraps contains one. The Grp itself survives elimSeqs untouched
	// and is kept by elimGrps too, since a preceding sibling ("w") means it
	// is no longer at the head of the object.
	in := layout.Comp(
		layout.Text("w"),
		layout.Seq(layout.Grp(layout.Comp(layout.Text("x"), layout.Text("y"), true, false))),
		true, false,
	)
	doc := compile(in)
	assert.Equal(t, `(Comp (Text "w") (Grp (Comp (Text "x") (Text "y") true)) true)`, doc.Lines[0].String())
}

func TestRun_HeadGrpIsAlwaysEliminated(t *testing.T) {
	// This Grp wraps two Comps (which would normally keep it) but sits at
	// the very head of the object with nothing preceding it, so it is
	// stripped unconditionally.
	in := layout.Comp(
		layout.Grp(layout.Comp(
			layout.Comp(layout.Text("a"), layout.Text("b"), true, false),
			layout.Text("c"),
			true, false,
		)),
		layout.Text("d"),
		true, false,
	)
	doc := compile(in)
	assert.Equal(t, `(Comp (Comp (Comp (Text "a") (Text "b") true) (Text "c") true) (Text "d") true)`, doc.Lines[0].String())
}

func TestRun_NonHeadGrpWithNoCompsIsEliminated(t *testing.T) {
	in := layout.Comp(
		layout.Text("a"),
		layout.Grp(layout.Text("b")),
		true, false,
	)
	doc := compile(in)
	assert.Equal(t, `(Comp (Text "a") (Text "b") true)`, doc.Lines[0].String())
}

func TestRun_NonHeadGrpWithACompIsKept(t *testing.T) {
	in := layout.Comp(
		layout.Text("a"),
		layout.Grp(layout.Comp(layout.Text("b"), layout.Text("c"), true, false)),
		true, false,
	)
	doc := compile(in)
	assert.Equal(t, `(Comp (Text "a") (Grp (Comp (Text "b") (Text "c") true)) true)`, doc.Lines[0].String())
}

func TestRun_EmptyLinePassesThrough(t *testing.T) {
	in := layout.Comp(layout.Null(), layout.Text(""), true, false)
	doc := compile(in)
	require.Len(t, doc.Lines, 1)
	assert.True(t, doc.Lines[0].Empty)
}
