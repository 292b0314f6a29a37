package structurize

import (
	"sort"

	"github.com/soren-n/typeset-go/fixed"
	"github.com/soren-n/typeset-go/serialize"
)

// scopeKind distinguishes Grp from Seq scope tags; its zero value is
// scopeGrp.
type scopeKind int

const (
	scopeGrp scopeKind = iota
	scopeSeq
)

type scopeTag struct {
	kind scopeKind
	tag  uint64
}

// interval is the open/close record kept per scope tag while walking one
// line: from is set the moment the scope opens, to is set once it closes.
type interval struct {
	kind   scopeKind
	from   int
	to     int
	closed bool
}

func graphify(d *fixed.FixedDoc) *GraphDoc {
	out := &GraphDoc{}
	for _, obj := range d.Objs {
		out.Objs = append(out.Objs, graphifyObj(obj))
	}
	return out
}

func graphifyObj(obj *fixed.FixedObj) *GraphObj {
	g := &GraphObj{}
	props := map[uint64]*interval{}
	var scope []scopeTag

	n := len(obj.Items)
	for i, item := range obj.Items {
		var term *GraphTerm
		if item.IsFix {
			var fixGraph *GraphFix
			fixGraph, scope = convertChain(i, props, scope, item.Chain)
			term = &GraphTerm{Kind: GraphTermFix, Fix: fixGraph}
		} else {
			term = convertTerm(item.Term)
		}
		node := &GraphNode{Index: i, Term: term}
		g.Nodes = append(g.Nodes, node)

		if i < n-1 {
			stack, pad := liftStack(obj.Comps[i])
			g.Pads = append(g.Pads, pad)
			scope = update(i, props, scope, stack)
		} else {
			closeScopes(i, props, scope)
		}
	}
	transpose(g.Nodes, props)
	return g
}

func convertTerm(t *serialize.Term) *GraphTerm {
	switch t.Kind {
	case serialize.TermNull:
		return &GraphTerm{Kind: GraphTermNull}
	case serialize.TermText:
		return &GraphTerm{Kind: GraphTermText, Text: t.Text}
	case serialize.TermNest:
		return &GraphTerm{Kind: GraphTermNest, Inner: convertTerm(t.Inner)}
	case serialize.TermPack:
		return &GraphTerm{Kind: GraphTermPack, Inner: convertTerm(t.Inner), PackTag: t.PackTag}
	default:
		panic("structurize: unknown serialize.TermKind")
	}
}

// convertChain builds the GraphFix cons-list for one fix chain occupying
// node index. A Grp/Seq wrapper on an internal comp can still open or close
// a scope here (fix only forbids breaking, not scoping), so every internal
// comp is lifted and threaded through update exactly like an ordinary
// inter-item comp — just always at this same node index, since the whole
// chain collapses into a single graph node.
func convertChain(index int, props map[uint64]*interval, scope []scopeTag, c *fixed.FixChain) (*GraphFix, []scopeTag) {
	n := len(c.Terms)
	terms := make([]*GraphTerm, n)
	for i, t := range c.Terms {
		terms[i] = convertTerm(t)
	}
	for _, comp := range c.Comps {
		stack, _ := liftStack(comp)
		scope = update(index, props, scope, stack)
	}
	fix := &GraphFix{Term: terms[n-1]}
	for i := n - 2; i >= 0; i-- {
		fix = &GraphFix{Term: terms[i], Next: fix, Pad: c.Pads[i]}
	}
	return fix, scope
}

// liftStack walks down through c's Grp/Seq wrappers to the innermost Comp,
// returning the wrapper chain outermost-first and the comp's own pad.
func liftStack(c *serialize.Comp) ([]scopeTag, bool) {
	switch c.Kind {
	case serialize.CompComp:
		return nil, c.Attr.Pad
	case serialize.CompGrp:
		inner, pad := liftStack(c.Inner)
		return append([]scopeTag{{scopeGrp, c.Tag}}, inner...), pad
	case serialize.CompSeq:
		inner, pad := liftStack(c.Inner)
		return append([]scopeTag{{scopeSeq, c.Tag}}, inner...), pad
	default:
		panic("structurize: comp between two line-local terms cannot be CompLine")
	}
}

// update diffs the previously active scope stack against the stack active
// at node, closing the longest suffix of scope that no longer matches and
// opening the corresponding suffix of stack, returning the new active scope.
func update(node int, props map[uint64]*interval, scope, stack []scopeTag) []scopeTag {
	i := 0
	for i < len(scope) && i < len(stack) && scope[i] == stack[i] {
		i++
	}
	closeScopes(node, props, scope[i:])
	openScopes(node, props, stack[i:])
	next := append([]scopeTag{}, scope[:i]...)
	return append(next, stack[i:]...)
}

func openScopes(node int, props map[uint64]*interval, tags []scopeTag) {
	for _, t := range tags {
		props[t.tag] = &interval{kind: t.kind, from: node}
	}
}

func closeScopes(node int, props map[uint64]*interval, tags []scopeTag) {
	for _, t := range tags {
		iv := props[t.tag]
		iv.to = node
		iv.closed = true
	}
}

// transpose turns every resolved interval into a GraphEdge linking its
// endpoints, in ascending-tag order so the resulting ins/outs lists have a
// deterministic order for solve to walk. A self-loop (from == to, a scope
// that opened and closed at the same node) contributes no edge.
func transpose(nodes []*GraphNode, props map[uint64]*interval) {
	tags := make([]uint64, 0, len(props))
	for tag := range props {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })

	for _, tag := range tags {
		iv := props[tag]
		if iv.from == iv.to {
			continue
		}
		from := nodes[iv.from]
		to := nodes[iv.to]
		edge := &GraphEdge{IsGrp: iv.kind == scopeGrp, Source: from, Target: to}
		pushIns(edge, to)
		pushOuts(edge, from)
	}
}

func pushIns(edge *GraphEdge, node *GraphNode) {
	if node.InsTail == nil {
		node.InsHead = edge
		node.InsTail = edge
		return
	}
	tail := node.InsTail
	edge.InsPrev = tail
	tail.InsNext = edge
	node.InsTail = edge
}

func pushOuts(edge *GraphEdge, node *GraphNode) {
	if node.OutsTail == nil {
		node.OutsHead = edge
		node.OutsTail = edge
		return
	}
	tail := node.OutsTail
	edge.OutsPrev = tail
	tail.OutsNext = edge
	node.OutsTail = edge
}
