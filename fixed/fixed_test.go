package fixed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soren-n/typeset-go/fixed"
	"github.com/soren-n/typeset-go/layout"
	"github.com/soren-n/typeset-go/linearize"
	"github.com/soren-n/typeset-go/serialize"
)

func compile(l *layout.Layout) *fixed.FixedDoc {
	return fixed.Run(linearize.Run(serialize.Run(l)))
}

func TestRun_NoFixStaysAllPlainItems(t *testing.T) {
	in := layout.Comp(layout.Text("a"), layout.Text("b"), false, false)
	doc := compile(in)
	require.Len(t, doc.Objs, 1)
	obj := doc.Objs[0]
	require.Len(t, obj.Items, 2)
	assert.False(t, obj.Items[0].IsFix)
	assert.False(t, obj.Items[1].IsFix)
	require.Len(t, obj.Comps, 1)
}

func TestRun_FixRunCoalescesIntoChain(t *testing.T) {
	in := layout.Fix(layout.Comp(
		layout.Text("a"),
		layout.Comp(layout.Text("b"), layout.Text("c"), true, false),
		false, false,
	))
	doc := compile(in)
	require.Len(t, doc.Objs, 1)
	obj := doc.Objs[0]
	require.Len(t, obj.Items, 1)
	require.True(t, obj.Items[0].IsFix)
	chain := obj.Items[0].Chain
	require.Len(t, chain.Terms, 3)
	assert.Equal(t, "a", chain.Terms[0].Text)
	assert.Equal(t, "b", chain.Terms[1].Text)
	assert.Equal(t, "c", chain.Terms[2].Text)
	require.Len(t, chain.Pads, 2)
	assert.False(t, chain.Pads[0])
	assert.True(t, chain.Pads[1])
	assert.Len(t, obj.Comps, 0)
}

func TestRun_FixPreventsBreakAcrossOnlySomeComps(t *testing.T) {
	// a <fix-comp> b <non-fix-comp> c : one chain item, one plain item.
	in := layout.Comp(
		layout.Fix(layout.Comp(layout.Text("a"), layout.Text("b"), false, false)),
		layout.Text("c"),
		false, false,
	)
	doc := compile(in)
	obj := doc.Objs[0]
	require.Len(t, obj.Items, 2)
	assert.True(t, obj.Items[0].IsFix)
	assert.False(t, obj.Items[1].IsFix)
	require.Len(t, obj.Comps, 1)
	assert.Equal(t, serialize.CompComp, obj.Comps[0].Kind)
}

func TestRun_FixUnderGrpWrapperStillRecognised(t *testing.T) {
	in := layout.Grp(layout.Fix(layout.Comp(layout.Text("a"), layout.Text("b"), true, false)))
	doc := compile(in)
	obj := doc.Objs[0]
	require.Len(t, obj.Items, 1)
	assert.True(t, obj.Items[0].IsFix)
	assert.Len(t, obj.Comps, 0)
}
