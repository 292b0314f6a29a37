// Package rescope implements Pass 9 of the compiler pipeline: lifting Nest
// and Pack markers out of the term where they were written up to the
// smallest enclosing object that can still give them effect, merging a
// run of equal-tagged Pack markers shared by both sides of a Comp into a
// single marker around the whole Comp instead of one around each side.
package rescope

// FinalObjKind reports which variant a FinalObj holds.
type FinalObjKind int

const (
	FinalObjText FinalObjKind = iota
	FinalObjFix
	FinalObjGrp
	FinalObjSeq
	FinalObjNest
	FinalObjPack
	FinalObjComp
)

// FinalObj is one object node after rescoping: Nest and Pack are now
// object-level scopes (like Grp and Seq) rather than term-level wrappers,
// since that is the smallest granularity rescoping can place them at.
type FinalObj struct {
	Kind        FinalObjKind
	Text        string
	Fix         *FinalFix
	Inner       *FinalObj // Grp, Seq, Nest, Pack
	PackTag     uint64    // only meaningful when Kind == FinalObjPack
	Left, Right *FinalObj
	Pad         bool
}

type FinalFixKind int

const (
	FinalFixText FinalFixKind = iota
	FinalFixComp
)

// FinalFix mirrors a fix chain with Nest/Pack already stripped out: nothing
// inside an unbreakable Fix ever breaks, so those markers can never take
// effect there. The markers of the chain's leftmost term are rescoped out
// to whatever encloses the Fix; those of every other term are dropped.
type FinalFix struct {
	Kind        FinalFixKind
	Text        string
	Left, Right *FinalFix
	Pad         bool
}

type FinalLine struct {
	Empty bool
	Obj   *FinalObj
}

type FinalDoc struct {
	Lines []*FinalLine
}
