// Package denull implements Pass 6 of the compiler pipeline: dropping every
// Null term and empty Text leaf, folding the pad flag that would have
// separated a dropped leaf from its surviving neighbor into whichever real
// separator ends up adjacent to it instead of losing it.
package denull

type DenullTermKind int

const (
	DenullTermText DenullTermKind = iota
	DenullTermNest
	DenullTermPack
)

type DenullTerm struct {
	Kind    DenullTermKind
	Text    string
	Inner   *DenullTerm
	PackTag uint64
}

type DenullFixKind int

const (
	DenullFixTerm DenullFixKind = iota
	DenullFixComp
)

// DenullFix mirrors a fix chain after denulling: a surviving chain can
// shrink to a single term (DenullFixTerm) once enough interior terms drop
// out, or remain a Comp tree over whatever survived.
type DenullFix struct {
	Kind        DenullFixKind
	Term        *DenullTerm
	Left, Right *DenullFix
	Pad         bool
}

type DenullObjKind int

const (
	DenullObjTerm DenullObjKind = iota
	DenullObjFix
	DenullObjGrp
	DenullObjSeq
	DenullObjComp
)

type DenullObj struct {
	Kind        DenullObjKind
	Term        *DenullTerm
	Fix         *DenullFix
	Inner       *DenullObj
	Left, Right *DenullObj
	Pad         bool
}

// DenullLine is one output line after denulling. A line whose whole object
// vanished (every term in it was Null or empty) is still recorded — as
// Empty — so line counts stay in sync with the original document; Obj is
// nil exactly when Empty is true.
type DenullLine struct {
	Empty bool
	Obj   *DenullObj
}

type DenullDoc struct {
	Lines []*DenullLine
}
