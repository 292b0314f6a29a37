// Package identities implements Pass 7 of the compiler pipeline: erasing
// Seq and Grp scopes that wrap trivial content and so contribute nothing to
// the rendered layout — a Seq around at most one Comp, and a Grp sitting at
// the very head of an object (nothing ever precedes it, so its boundary is
// already implicit).
package identities

import "github.com/soren-n/typeset-go/denull"

// count is a saturating tally of how many Comp nodes a subtree contributes
// to its nearest enclosing Seq or Grp: Zero, One, or "two or more".
type count int

const (
	countZero count = iota
	countOne
	countMany
)

func addCount(l, r count) count {
	switch {
	case l == countZero:
		return r
	case r == countZero:
		return l
	default:
		return countMany
	}
}

// Run erases redundant Seq scopes first, then redundant Grp scopes, as two
// independent passes over the same tree shape — each one's elimination
// rule depends on a different structural position (nested-under-Seq vs.
// at-the-head-of-the-object), so collapsing them into one combined walk
// would only obscure which rule fired.
func Run(d *denull.DenullDoc) *denull.DenullDoc {
	return elimGrps(elimSeqs(d))
}

func elimSeqs(d *denull.DenullDoc) *denull.DenullDoc {
	out := &denull.DenullDoc{}
	for _, line := range d.Lines {
		if line.Empty {
			out.Lines = append(out.Lines, &denull.DenullLine{Empty: true})
			continue
		}
		_, obj := visitSeqs(line.Obj, false)
		out.Lines = append(out.Lines, &denull.DenullLine{Obj: obj})
	}
	return out
}

// visitSeqs counts Comp nodes within the nearest enclosing Seq scope (Grp
// always resets and hides this count, reporting Zero upward regardless of
// its content) and collapses a Seq wrapping at most one Comp. A Seq nested
// directly inside another Seq is always flattened into it, regardless of
// its own content's count.
func visitSeqs(o *denull.DenullObj, underSeq bool) (count, *denull.DenullObj) {
	switch {
	case o.Kind == denull.DenullObjTerm:
		return countZero, o
	case o.Kind == denull.DenullObjFix && o.Fix.Kind == denull.DenullFixTerm:
		return countZero, &denull.DenullObj{Kind: denull.DenullObjTerm, Term: o.Fix.Term}
	case o.Kind == denull.DenullObjFix:
		return countZero, o

	case o.Kind == denull.DenullObjGrp:
		_, inner := visitSeqs(o.Inner, false)
		return countZero, &denull.DenullObj{Kind: denull.DenullObjGrp, Inner: inner}

	case o.Kind == denull.DenullObjSeq:
		if underSeq {
			return visitSeqs(o.Inner, true)
		}
		c, inner := visitSeqs(o.Inner, true)
		if c == countMany {
			return countMany, &denull.DenullObj{Kind: denull.DenullObjSeq, Inner: inner}
		}
		return c, inner

	default: // denull.DenullObjComp
		lc, left := visitSeqs(o.Left, underSeq)
		rc, right := visitSeqs(o.Right, underSeq)
		c := addCount(countOne, addCount(lc, rc))
		return c, &denull.DenullObj{Kind: denull.DenullObjComp, Left: left, Right: right, Pad: o.Pad}
	}
}

func elimGrps(d *denull.DenullDoc) *denull.DenullDoc {
	out := &denull.DenullDoc{}
	for _, line := range d.Lines {
		if line.Empty {
			out.Lines = append(out.Lines, &denull.DenullLine{Empty: true})
			continue
		}
		_, obj := visitGrps(line.Obj, true)
		out.Lines = append(out.Lines, &denull.DenullLine{Obj: obj})
	}
	return out
}

// visitGrps erases a Grp unconditionally while still at the head of the
// object (inHead), and otherwise only when its content contributes no Comp
// at all. A Seq is never removed here (that was elimSeqs's job) but is
// transparent to the count it reports upward, unlike Grp which always
// reports Zero regardless of what survives inside it.
func visitGrps(o *denull.DenullObj, inHead bool) (count, *denull.DenullObj) {
	switch {
	case o.Kind == denull.DenullObjTerm:
		return countZero, o
	case o.Kind == denull.DenullObjFix && o.Fix.Kind == denull.DenullFixTerm:
		return countZero, &denull.DenullObj{Kind: denull.DenullObjTerm, Term: o.Fix.Term}
	case o.Kind == denull.DenullObjFix:
		return countZero, o

	case o.Kind == denull.DenullObjGrp:
		if inHead {
			return visitGrps(o.Inner, true)
		}
		c, inner := visitGrps(o.Inner, false)
		if c == countZero {
			return countZero, inner
		}
		return countZero, &denull.DenullObj{Kind: denull.DenullObjGrp, Inner: inner}

	case o.Kind == denull.DenullObjSeq:
		c, inner := visitGrps(o.Inner, false)
		return c, &denull.DenullObj{Kind: denull.DenullObjSeq, Inner: inner}

	default: // denull.DenullObjComp
		lc, left := visitGrps(o.Left, inHead)
		rc, right := visitGrps(o.Right, false)
		c := addCount(countOne, addCount(lc, rc))
		return c, &denull.DenullObj{Kind: denull.DenullObjComp, Left: left, Right: right, Pad: o.Pad}
	}
}
