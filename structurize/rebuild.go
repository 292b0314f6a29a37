package structurize

import "github.com/soren-n/typeset-go/fixed"

// Run turns d into a RebuildDoc: every line's Grp/Seq scopes, carried as
// edges in the intermediate graph, become properly nested RebuildObj trees.
func Run(d *fixed.FixedDoc) *RebuildDoc {
	g := graphify(d)
	solve(g)
	return rebuild(g)
}

func rebuild(d *GraphDoc) *RebuildDoc {
	out := &RebuildDoc{}
	for _, obj := range d.Objs {
		out.Lines = append(out.Lines, rebuildObj(obj))
	}
	return out
}

// frame is one currently-open Grp/Seq scope while rebuilding a line. pad is
// the comp separator that reconnects this scope's eventual wrapped result to
// whatever came before it at the enclosing level — it is only consulted when
// that enclosing level already has content (see combine).
type frame struct {
	kind RebuildObjKind // RebuildObjGrp or RebuildObjSeq
	acc  *RebuildObj
	pad  bool
}

// combine appends next onto acc via a pad-separated Comp, or returns next
// unchanged if acc is the empty accumulator (nothing precedes it yet).
func combine(acc *RebuildObj, pad bool, next *RebuildObj) *RebuildObj {
	if acc == nil {
		return next
	}
	return &RebuildObj{Kind: RebuildObjComp, Left: acc, Right: next, Pad: pad}
}

func rebuildObj(g *GraphObj) *RebuildObj {
	root := &frame{}
	stack := []*frame{root}

	for i, node := range g.Nodes {
		nodeObj := nodeRebuildObj(node)
		insCount := countIns(node)
		outsKinds := outsKinds(node)

		padBefore := false
		if i > 0 {
			padBefore = g.Pads[i-1]
		}

		switch {
		case insCount == 0 && len(outsKinds) == 0:
			top := stack[len(stack)-1]
			top.acc = combine(top.acc, padBefore, nodeObj)

		case insCount > 0:
			top := stack[len(stack)-1]
			top.acc = combine(top.acc, padBefore, nodeObj)
			for k := 0; k < insCount; k++ {
				popped := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				wrapped := &RebuildObj{Kind: popped.kind, Inner: popped.acc}
				newTop := stack[len(stack)-1]
				newTop.acc = combine(newTop.acc, popped.pad, wrapped)
			}

		default: // len(outsKinds) > 0
			for k, isGrp := range outsKinds {
				kind := RebuildObjSeq
				if isGrp {
					kind = RebuildObjGrp
				}
				f := &frame{kind: kind}
				if k == 0 {
					f.pad = padBefore
				}
				stack = append(stack, f)
			}
			top := stack[len(stack)-1]
			top.acc = nodeObj
		}
	}

	return stack[0].acc
}

func countIns(node *GraphNode) int {
	n := 0
	for e := node.InsHead; e != nil; e = e.InsNext {
		n++
	}
	return n
}

// outsKinds lists node's outgoing edges in linked order as isGrp flags.
func outsKinds(node *GraphNode) []bool {
	var kinds []bool
	for e := node.OutsHead; e != nil; e = e.OutsNext {
		kinds = append(kinds, e.IsGrp)
	}
	return kinds
}

func nodeRebuildObj(node *GraphNode) *RebuildObj {
	if node.Term.Kind == GraphTermFix {
		return &RebuildObj{Kind: RebuildObjFix, Fix: convertFix(node.Term.Fix)}
	}
	return &RebuildObj{Kind: RebuildObjTerm, Term: convertRebuildTerm(node.Term)}
}

func convertFix(f *GraphFix) *RebuildFix {
	if f.Next == nil {
		return &RebuildFix{Kind: RebuildFixTerm, Term: convertRebuildTerm(f.Term)}
	}
	left := &RebuildFix{Kind: RebuildFixTerm, Term: convertRebuildTerm(f.Term)}
	right := convertFix(f.Next)
	return &RebuildFix{Kind: RebuildFixComp, Left: left, Right: right, Pad: f.Pad}
}

func convertRebuildTerm(t *GraphTerm) *RebuildTerm {
	switch t.Kind {
	case GraphTermNull:
		return &RebuildTerm{Kind: RebuildTermNull}
	case GraphTermText:
		return &RebuildTerm{Kind: RebuildTermText, Text: t.Text}
	case GraphTermNest:
		return &RebuildTerm{Kind: RebuildTermNest, Inner: convertRebuildTerm(t.Inner)}
	case GraphTermPack:
		return &RebuildTerm{Kind: RebuildTermPack, Inner: convertRebuildTerm(t.Inner), PackTag: t.PackTag}
	default:
		panic("structurize: unexpected GraphTermKind in rebuild")
	}
}
