package rescope

import "github.com/soren-n/typeset-go/denull"

// propKind tags which side of a prop union is populated.
type propKind int

const (
	propNest propKind = iota
	propPack
)

// prop is one Nest or Pack marker peeled off a term, in the order it was
// written (outermost first).
type prop struct {
	kind    propKind
	packTag uint64
}

func (p prop) equals(o prop) bool {
	return p.kind == o.kind && (p.kind == propNest || p.packTag == o.packTag)
}

// Run rescopes every line in d independently.
func Run(d *denull.DenullDoc) *FinalDoc {
	out := &FinalDoc{}
	for _, line := range d.Lines {
		if line.Empty {
			out.Lines = append(out.Lines, &FinalLine{Empty: true})
			continue
		}
		props, obj := visitObj(line.Obj)
		out.Lines = append(out.Lines, &FinalLine{Obj: applyProps(props, obj)})
	}
	return out
}

// applyProps wraps obj with props in order, props[0] ending up outermost
// (the same order the Nest/Pack markers appeared in the original term).
func applyProps(props []prop, obj *FinalObj) *FinalObj {
	for i := len(props) - 1; i >= 0; i-- {
		switch props[i].kind {
		case propNest:
			obj = &FinalObj{Kind: FinalObjNest, Inner: obj}
		case propPack:
			obj = &FinalObj{Kind: FinalObjPack, PackTag: props[i].packTag, Inner: obj}
		}
	}
	return obj
}

// joinProps splits the longest common leading run shared by l and r (Nest
// matching Nest, Pack matching Pack of the same tag) into common, leaving
// each side's own unique remainder in lRem/rRem. A run shared by both
// sides of a Comp can be lifted to wrap the whole Comp once instead of
// each side separately.
func joinProps(l, r []prop) (lRem, rRem, common []prop) {
	i := 0
	for i < len(l) && i < len(r) && l[i].equals(r[i]) {
		i++
	}
	return l[i:], r[i:], l[:i]
}

// visitObj peels Nest/Pack markers off of o's content, bubbling them
// upward as props rather than applying them where they were written, and
// returns the rescoped object they will eventually wrap. Grp and Seq are
// transparent to this bubbling (their own content's props pass straight
// through them, to be applied outside the Grp/Seq once this result is
// composed with a sibling, or at the line root if it never is).
func visitObj(o *denull.DenullObj) ([]prop, *FinalObj) {
	switch o.Kind {
	case denull.DenullObjTerm:
		return visitTerm(o.Term)

	case denull.DenullObjFix:
		props, fix := visitFix(o.Fix)
		return props, &FinalObj{Kind: FinalObjFix, Fix: fix}

	case denull.DenullObjGrp:
		props, inner := visitObj(o.Inner)
		return props, &FinalObj{Kind: FinalObjGrp, Inner: inner}

	case denull.DenullObjSeq:
		props, inner := visitObj(o.Inner)
		return props, &FinalObj{Kind: FinalObjSeq, Inner: inner}

	default: // denull.DenullObjComp
		lProps, left := visitObj(o.Left)
		rProps, right := visitObj(o.Right)
		lRem, rRem, common := joinProps(lProps, rProps)
		left2 := applyProps(lRem, left)
		right2 := applyProps(rRem, right)
		return common, &FinalObj{Kind: FinalObjComp, Left: left2, Right: right2, Pad: o.Pad}
	}
}

// visitFix mirrors visitObj for a fix chain, but only the leftmost leaf's
// props are ever bubbled upward (a Comp here keeps the left side's props
// and discards the right's): nothing inside a Fix chain can break, so no
// Nest/Pack anywhere inside it ever has a rendering effect — only the
// chain's very first term sits where rescoping could still place a marker
// just outside the Fix as a whole, so that is the one path this keeps.
func visitFix(f *denull.DenullFix) ([]prop, *FinalFix) {
	switch f.Kind {
	case denull.DenullFixTerm:
		return visitFixTerm(f.Term)

	default: // denull.DenullFixComp
		lProps, left := visitFix(f.Left)
		_, right := visitFix(f.Right)
		return lProps, &FinalFix{Kind: FinalFixComp, Left: left, Right: right, Pad: f.Pad}
	}
}

func visitTerm(t *denull.DenullTerm) ([]prop, *FinalObj) {
	switch t.Kind {
	case denull.DenullTermText:
		return nil, &FinalObj{Kind: FinalObjText, Text: t.Text}
	case denull.DenullTermNest:
		props, leaf := visitTerm(t.Inner)
		return append([]prop{{kind: propNest}}, props...), leaf
	default: // denull.DenullTermPack
		props, leaf := visitTerm(t.Inner)
		return append([]prop{{kind: propPack, packTag: t.PackTag}}, props...), leaf
	}
}

func visitFixTerm(t *denull.DenullTerm) ([]prop, *FinalFix) {
	switch t.Kind {
	case denull.DenullTermText:
		return nil, &FinalFix{Kind: FinalFixText, Text: t.Text}
	case denull.DenullTermNest:
		props, leaf := visitFixTerm(t.Inner)
		return append([]prop{{kind: propNest}}, props...), leaf
	default: // denull.DenullTermPack
		props, leaf := visitFixTerm(t.Inner)
		return append([]prop{{kind: propPack, packTag: t.PackTag}}, props...), leaf
	}
}
