// Package reassociate implements Pass 8 of the compiler pipeline:
// re-associating every Comp chain to lean right. Earlier passes (in
// particular structurize, which grows its trees by accumulating a running
// left child) leave some chains left-leaning; the renderer only needs a
// canonical shape, and a right-leaning one lets it walk a chain without
// recursing into its own accumulator.
package reassociate

import "github.com/soren-n/typeset-go/denull"

// Run reassociates every line in d independently.
func Run(d *denull.DenullDoc) *denull.DenullDoc {
	out := &denull.DenullDoc{}
	for _, line := range d.Lines {
		if line.Empty {
			out.Lines = append(out.Lines, &denull.DenullLine{Empty: true})
			continue
		}
		out.Lines = append(out.Lines, &denull.DenullLine{Obj: reassocObj(line.Obj)})
	}
	return out
}

// leaf is one atomic member of a flattened Comp chain together with the
// pad that separates it from whichever member follows it. It is
// meaningless on the last member of a chain.
type leaf struct {
	obj *denull.DenullObj
	pad bool
}

// reassocObj rebuilds o as a right-leaning Comp chain: flatten collects
// the chain's leaves left to right regardless of the original tree's
// shape (a Comp node's own pad always separates the last leaf of its left
// operand from the first leaf of its right operand, independent of how
// each operand's own internal chain is shaped), then rebuild folds them
// back up right-associated.
func reassocObj(o *denull.DenullObj) *denull.DenullObj {
	if o.Kind != denull.DenullObjComp {
		return reassocAtomic(o)
	}
	var leaves []leaf
	flatten(o, &leaves)
	return rebuild(leaves)
}

// reassocAtomic reassociates a Grp or Seq's own content independently of
// its surroundings (each is a fresh scope for chain purposes) and leaves
// Term/Fix untouched — a Fix chain's internal associativity is fixed
// output shape, not something this pass touches.
func reassocAtomic(o *denull.DenullObj) *denull.DenullObj {
	switch o.Kind {
	case denull.DenullObjGrp:
		return &denull.DenullObj{Kind: denull.DenullObjGrp, Inner: reassocObj(o.Inner)}
	case denull.DenullObjSeq:
		return &denull.DenullObj{Kind: denull.DenullObjSeq, Inner: reassocObj(o.Inner)}
	default:
		return o
	}
}

func flatten(o *denull.DenullObj, out *[]leaf) {
	if o.Kind != denull.DenullObjComp {
		*out = append(*out, leaf{obj: reassocAtomic(o)})
		return
	}
	flatten(o.Left, out)
	(*out)[len(*out)-1].pad = o.Pad
	flatten(o.Right, out)
}

func rebuild(leaves []leaf) *denull.DenullObj {
	n := len(leaves)
	result := leaves[n-1].obj
	for i := n - 2; i >= 0; i-- {
		result = &denull.DenullObj{Kind: denull.DenullObjComp, Left: leaves[i].obj, Right: result, Pad: leaves[i].pad}
	}
	return result
}
