package rescope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soren-n/typeset-go/denull"
	"github.com/soren-n/typeset-go/fixed"
	"github.com/soren-n/typeset-go/identities"
	"github.com/soren-n/typeset-go/layout"
	"github.com/soren-n/typeset-go/linearize"
	"github.com/soren-n/typeset-go/reassociate"
	"github.com/soren-n/typeset-go/rescope"
	"github.com/soren-n/typeset-go/serialize"
	"github.com/soren-n/typeset-go/structurize"
)

func compile(l *layout.Layout) *rescope.FinalDoc {
	d := denull.Run(structurize.Run(fixed.Run(linearize.Run(serialize.Run(l)))))
	d = reassociate.Run(identities.Run(d))
	return rescope.Run(d)
}

func TestRun_NestAndPackStayAtTheSoleLeaf(t *testing.T) {
	in := layout.Nest(layout.Pack(layout.Text("x")))
	doc := compile(in)
	require.Len(t, doc.Lines, 1)
	assert.Equal(t, `(Nest (Pack 0 (Text "x")))`, doc.Lines[0].String())
}

func TestRun_SharedPackAcrossBothSidesLiftsAroundTheComp(t *testing.T) {
	// One Pack scope wraps the whole Comp, so serialize tags every term
	// inside it identically; rescope should merge that shared tag back
	// into a single marker around the Comp instead of one per side.
	in := layout.Pack(layout.Comp(layout.Text("a"), layout.Text("b"), true, false))
	doc := compile(in)
	assert.Equal(t, `(Pack 0 (Comp (Text "a") (Text "b") true))`, doc.Lines[0].String())
}

func TestRun_DistinctPackTagsDoNotMerge(t *testing.T) {
	in := layout.Comp(
		layout.Pack(layout.Text("a")),
		layout.Pack(layout.Text("b")),
		true, false,
	)
	doc := compile(in)
	assert.Equal(t, `(Comp (Pack 0 (Text "a")) (Pack 1 (Text "b")) true)`, doc.Lines[0].String())
}

func TestRun_SharedNestMergesRegardlessOfTag(t *testing.T) {
	in := layout.Comp(
		layout.Nest(layout.Text("a")),
		layout.Nest(layout.Text("b")),
		true, false,
	)
	doc := compile(in)
	assert.Equal(t, `(Nest (Comp (Text "a") (Text "b") true))`, doc.Lines[0].String())
}

func TestRun_PartialPrefixMergesOnlyTheSharedRun(t *testing.T) {
	// Both sides start with Nest, so that much merges around the Comp; the
	// left's additional Pack has no match on the right and stays local.
	in := layout.Comp(
		layout.Nest(layout.Pack(layout.Text("a"))),
		layout.Nest(layout.Text("b")),
		true, false,
	)
	doc := compile(in)
	assert.Equal(t, `(Nest (Comp (Pack 0 (Text "a")) (Text "b") true))`, doc.Lines[0].String())
}

func TestRun_NoPropsIsUnchanged(t *testing.T) {
	in := layout.Comp(layout.Text("a"), layout.Text("b"), true, false)
	doc := compile(in)
	assert.Equal(t, `(Comp (Text "a") (Text "b") true)`, doc.Lines[0].String())
}

func TestRun_EmptyLinePassesThrough(t *testing.T) {
	in := layout.Comp(layout.Null(), layout.Text(""), true, false)
	doc := compile(in)
	require.Len(t, doc.Lines, 1)
	assert.True(t, doc.Lines[0].Empty)
}
