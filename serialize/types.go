package serialize

import "github.com/soren-n/typeset-go/layout"

// TermKind tags which term variant a Term holds.
type TermKind int

const (
	TermNull TermKind = iota
	TermText
	TermNest
	TermPack
)

// Term holds only Null|Text|Nest|Pack, per the Serial contract: Fix has
// already been eliminated (folded into the surrounding Comp's attr.fix) by
// the time a term is emitted.
type Term struct {
	Kind    TermKind
	Text    string
	Inner   *Term  // operand of Nest/Pack
	PackTag uint64 // only meaningful when Kind == TermPack
}

// CompKind tags which comp variant a Comp holds.
type CompKind int

const (
	CompLine CompKind = iota
	CompComp
	CompGrp
	CompSeq
)

// Comp is one separator between two terms in a Serial. Grp and Seq wrap an
// inner Comp (ultimately bottoming out at a CompLine or CompComp), carrying
// the fresh per-scope tag assigned in Pass 2.
type Comp struct {
	Kind  CompKind
	Attr  layout.Attr // only meaningful when Kind == CompComp
	Tag   uint64      // only meaningful when Kind == CompGrp or CompSeq
	Inner *Comp       // only meaningful when Kind == CompGrp or CompSeq
}

// Serial is the flat (term (comp term)*) chain Pass 2 produces: a pair of
// parallel slices with len(Terms) == len(Comps)+1.
type Serial struct {
	Terms []*Term
	Comps []*Comp
}
