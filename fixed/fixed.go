// Package fixed implements Pass 4 of the compiler pipeline: coalescing every
// maximal run of terms joined entirely by fix-attributed comps into a single
// FixChain, so later passes never need to look back through a Grp/Seq
// wrapper chain to ask "is this comp fixed".
package fixed

import "github.com/soren-n/typeset-go/linearize"
import "github.com/soren-n/typeset-go/serialize"

// Run coalesces every LinearObj in d independently.
func Run(d *linearize.LinearDoc) *FixedDoc {
	out := &FixedDoc{}
	for _, obj := range d.Objs {
		out.Objs = append(out.Objs, runObj(obj))
	}
	return out
}

func runObj(obj *linearize.LinearObj) *FixedObj {
	out := &FixedObj{}
	chainTerms := []*serialize.Term{obj.Terms[0]}
	var chainComps []*serialize.Comp
	var chainPads []bool

	closeChain := func() {
		if len(chainTerms) == 1 {
			out.Items = append(out.Items, FixedItem{IsFix: false, Term: chainTerms[0]})
		} else {
			out.Items = append(out.Items, FixedItem{IsFix: true, Chain: &FixChain{
				Terms: chainTerms,
				Comps: chainComps,
				Pads:  chainPads,
			}})
		}
	}

	for i, c := range obj.Comps {
		next := obj.Terms[i+1]
		if fix, pad, ok := fixedness(c); ok && fix {
			chainTerms = append(chainTerms, next)
			chainComps = append(chainComps, c)
			chainPads = append(chainPads, pad)
			continue
		}
		closeChain()
		out.Comps = append(out.Comps, c)
		chainTerms = []*serialize.Term{next}
		chainComps = nil
		chainPads = nil
	}
	closeChain()
	return out
}

// fixedness walks through Grp/Seq wrappers down to the innermost Comp and
// reports its attr.fix and attr.pad. ok is false for a CompLine, which never
// carries fixedness and always closes a chain.
func fixedness(c *serialize.Comp) (fix bool, pad bool, ok bool) {
	switch c.Kind {
	case serialize.CompComp:
		return c.Attr.Fix, c.Attr.Pad, true
	case serialize.CompGrp, serialize.CompSeq:
		return fixedness(c.Inner)
	default: // serialize.CompLine
		return false, false, false
	}
}
