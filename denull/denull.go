package denull

import "github.com/soren-n/typeset-go/structurize"

// Run denulls every line in d independently.
func Run(d *structurize.RebuildDoc) *DenullDoc {
	out := &DenullDoc{}
	for _, line := range d.Lines {
		out.Lines = append(out.Lines, denullLine(line))
	}
	return out
}

func denullLine(obj *structurize.RebuildObj) *DenullLine {
	r := denullObj(obj)
	if !r.ok {
		return &DenullLine{Empty: true}
	}
	return &DenullLine{Obj: r.obj}
}

// result is the outcome of denulling one subtree. ok is false when the
// whole subtree vanished (every term inside it was Null or empty). trailPad
// is a separator that had no surviving content to its right within this
// subtree to attach to — it is only meaningful while ok is true, and it
// must be folded (via OR) into whatever separator ends up immediately to
// this result's right once it is given one, which happens exactly when it
// becomes the left operand of an enclosing comp (see denullObj's Comp
// case). A comp's own separator can symmetrically need to fold into its
// left operand's trailPad first, for the same reason: the dropped operand
// in between contributes no content, but its surrounding pads still mean
// "keep whatever separation was asked for".
type objResult struct {
	obj      *DenullObj
	trailPad bool
	ok       bool
}

// fixResult mirrors objResult, but RebuildFix trees lean the other way:
// convertFix builds them right-deep (the left child is always a bare term,
// the right child carries the rest of the chain), so a dangling separator
// here sits on the LEFT edge of whatever survives and must fold into
// whatever ends up immediately to its left — i.e. leadPad, not trailPad.
type fixResult struct {
	fix     *DenullFix
	leadPad bool
	ok      bool
}

type termResult struct {
	term *DenullTerm
	ok   bool
}

func denullObj(o *structurize.RebuildObj) objResult {
	switch o.Kind {
	case structurize.RebuildObjTerm:
		t := denullTerm(o.Term)
		if !t.ok {
			return objResult{}
		}
		return objResult{obj: &DenullObj{Kind: DenullObjTerm, Term: t.term}, ok: true}

	case structurize.RebuildObjFix:
		f := denullFix(o.Fix)
		if !f.ok {
			return objResult{}
		}
		return objResult{obj: &DenullObj{Kind: DenullObjFix, Fix: f.fix}, ok: true}

	case structurize.RebuildObjGrp:
		inner := denullObj(o.Inner)
		if !inner.ok {
			return objResult{}
		}
		return objResult{obj: &DenullObj{Kind: DenullObjGrp, Inner: inner.obj}, ok: true}

	case structurize.RebuildObjSeq:
		inner := denullObj(o.Inner)
		if !inner.ok {
			return objResult{}
		}
		return objResult{obj: &DenullObj{Kind: DenullObjSeq, Inner: inner.obj}, ok: true}

	case structurize.RebuildObjComp:
		left := denullObj(o.Left)
		right := denullObj(o.Right)
		switch {
		case !left.ok && !right.ok:
			return objResult{}
		case !left.ok:
			// The left operand vanished outright; this comp's own pad sat
			// between it and right with nothing now to its left, so there
			// is nothing to fold it into — drop it and surface right alone.
			return objResult{obj: right.obj, trailPad: right.trailPad, ok: true}
		case !right.ok:
			// The right operand vanished; left survives alone, but this
			// comp's pad (wanting separation from whatever used to be on
			// its right) and left's own trailing pad both describe the
			// same now-open gap, so fold them together for the next
			// sibling left eventually gets.
			return objResult{obj: left.obj, trailPad: left.trailPad || o.Pad, ok: true}
		default:
			pad := left.trailPad || o.Pad
			return objResult{obj: &DenullObj{Kind: DenullObjComp, Left: left.obj, Right: right.obj, Pad: pad}, trailPad: right.trailPad, ok: true}
		}

	default:
		panic("denull: unknown structurize.RebuildObjKind")
	}
}

func denullFix(f *structurize.RebuildFix) fixResult {
	switch f.Kind {
	case structurize.RebuildFixTerm:
		t := denullTerm(f.Term)
		if !t.ok {
			return fixResult{}
		}
		return fixResult{fix: &DenullFix{Kind: DenullFixTerm, Term: t.term}, ok: true}

	case structurize.RebuildFixComp:
		left := denullFix(f.Left)
		right := denullFix(f.Right)
		switch {
		case !left.ok && !right.ok:
			return fixResult{}
		case !left.ok:
			// left is always a bare term in this chain shape, so its
			// vanishing leaves no further leadPad of its own to combine —
			// just this comp's own pad, folded onto right's existing one.
			return fixResult{fix: right.fix, leadPad: f.Pad || right.leadPad, ok: true}
		case !right.ok:
			// right vanished; left (a bare term) stands alone with nothing
			// after it, so this comp's pad has nothing to attach to either.
			return fixResult{fix: left.fix, ok: true}
		default:
			pad := f.Pad || right.leadPad
			return fixResult{fix: &DenullFix{Kind: DenullFixComp, Left: left.fix, Right: right.fix, Pad: pad}, ok: true}
		}

	default:
		panic("denull: unknown structurize.RebuildFixKind")
	}
}

func denullTerm(t *structurize.RebuildTerm) termResult {
	switch t.Kind {
	case structurize.RebuildTermNull:
		return termResult{}
	case structurize.RebuildTermText:
		if t.Text == "" {
			return termResult{}
		}
		return termResult{term: &DenullTerm{Kind: DenullTermText, Text: t.Text}, ok: true}
	case structurize.RebuildTermNest:
		inner := denullTerm(t.Inner)
		if !inner.ok {
			return termResult{}
		}
		return termResult{term: &DenullTerm{Kind: DenullTermNest, Inner: inner.term}, ok: true}
	case structurize.RebuildTermPack:
		inner := denullTerm(t.Inner)
		if !inner.ok {
			return termResult{}
		}
		return termResult{term: &DenullTerm{Kind: DenullTermPack, Inner: inner.term, PackTag: t.PackTag}, ok: true}
	default:
		panic("denull: unknown structurize.RebuildTermKind")
	}
}
