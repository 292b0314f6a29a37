package reassociate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soren-n/typeset-go/denull"
	"github.com/soren-n/typeset-go/fixed"
	"github.com/soren-n/typeset-go/layout"
	"github.com/soren-n/typeset-go/linearize"
	"github.com/soren-n/typeset-go/reassociate"
	"github.com/soren-n/typeset-go/serialize"
	"github.com/soren-n/typeset-go/structurize"
)

func compile(l *layout.Layout) *denull.DenullDoc {
	d := denull.Run(structurize.Run(fixed.Run(linearize.Run(serialize.Run(l)))))
	return reassociate.Run(d)
}

func TestRun_LeftLeaningChainRotatesRight(t *testing.T) {
	// (a pad1 b) pad2 c becomes a pad1 (b pad2 c): each pad stays glued to
	// the same adjacent pair of leaves it originally separated.
	in := layout.Comp(
		layout.Comp(layout.Text("a"), layout.Text("b"), true, false),
		layout.Text("c"),
		false, false,
	)
	doc := compile(in)
	assert.Equal(t, `(Comp (Text "a") (Comp (Text "b") (Text "c") false) true)`, doc.Lines[0].String())
}

func TestRun_RightLeaningChainIsUnchanged(t *testing.T) {
	in := layout.Comp(
		layout.Text("a"),
		layout.Comp(layout.Text("b"), layout.Text("c"), false, false),
		true, false,
	)
	doc := compile(in)
	assert.Equal(t, `(Comp (Text "a") (Comp (Text "b") (Text "c") false) true)`, doc.Lines[0].String())
}

func TestRun_FourLeafLeftLeaningChainFullyRotates(t *testing.T) {
	in := layout.Comp(
		layout.Comp(
			layout.Comp(layout.Text("a"), layout.Text("b"), true, false),
			layout.Text("c"),
			false, false,
		),
		layout.Text("d"),
		true, false,
	)
	doc := compile(in)
	assert.Equal(t,
		`(Comp (Text "a") (Comp (Text "b") (Comp (Text "c") (Text "d") true) false) true)`,
		doc.Lines[0].String())
}

func TestRun_GrpContentReassociatesIndependently(t *testing.T) {
	in := layout.Comp(
		layout.Text("w"),
		layout.Grp(layout.Comp(
			layout.Comp(layout.Text("a"), layout.Text("b"), true, false),
			layout.Text("c"),
			false, false,
		)),
		true, false,
	)
	doc := compile(in)
	assert.Equal(t,
		`(Comp (Text "w") (Grp (Comp (Text "a") (Comp (Text "b") (Text "c") false) true)) true)`,
		doc.Lines[0].String())
}

func TestRun_SingleLeafObjectIsUnchanged(t *testing.T) {
	in := layout.Text("solo")
	doc := compile(in)
	assert.Equal(t, `(Text "solo")`, doc.Lines[0].String())
}

func TestRun_EmptyLinePassesThrough(t *testing.T) {
	in := layout.Comp(layout.Null(), layout.Text(""), true, false)
	doc := compile(in)
	require.Len(t, doc.Lines, 1)
	assert.True(t, doc.Lines[0].Empty)
}
