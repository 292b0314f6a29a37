package fixed

import "github.com/soren-n/typeset-go/serialize"

// FixChain is a maximal run of terms joined entirely by fix-attributed
// comps: term (comp term)*, all of whose comps carry fix=true. The original
// Comps are kept (not just their pad) because a Grp/Seq scope can still open
// or close partway through a chain — fix only means the comp never breaks,
// not that it carries no scope — so Pass 5 needs the full wrapper chain to
// read those tags; Pads is a parallel convenience slice Pass 5 copies into
// the rebuilt fix chain without caring about scope tags.
type FixChain struct {
	Terms []*serialize.Term
	Comps []*serialize.Comp // len(Comps) == len(Terms)-1
	Pads  []bool            // len(Pads) == len(Terms)-1
}

// FixedItem is one position in a FixedObj: either a plain term, or a
// coalesced FixChain standing in for a run of fix-connected terms.
type FixedItem struct {
	IsFix bool
	Term  *serialize.Term // meaningful when !IsFix
	Chain *FixChain       // meaningful when IsFix
}

// FixedObj is one line: a sequence of Items joined by strictly non-fix Comps
// (len(Comps) == len(Items)-1). The comps reuse serialize.Comp's shape
// (Grp(tag, inner) / Seq(tag, inner) / plain Comp(attr)) unchanged, since
// Pass 5 needs to read exactly that nested tag-wrapper chain and coalescing
// fix runs doesn't touch it.
type FixedObj struct {
	Items []FixedItem
	Comps []*serialize.Comp
}

// FixedDoc is the full document, one FixedObj per eventual output line.
type FixedDoc struct {
	Objs []*FixedObj
}
