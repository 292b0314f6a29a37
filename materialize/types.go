// Package materialize implements Pass 10 of the compiler pipeline: the
// final handoff from the arena-shaped types every earlier pass produced to
// plain, independently heap-owned Doc values the renderer (and any caller
// holding onto a compiled document) can keep around without pinning the
// rest of the pipeline's intermediate allocations alive.
package materialize

// DocObjKind reports which variant a DocObj holds.
type DocObjKind int

const (
	DocObjText DocObjKind = iota
	DocObjFix
	DocObjGrp
	DocObjSeq
	DocObjNest
	DocObjPack
	DocObjComp
)

type DocObj struct {
	Kind        DocObjKind
	Text        string
	Fix         *DocObjFix
	Inner       *DocObj // Grp, Seq, Nest, Pack
	PackTag     uint64  // only meaningful when Kind == DocObjPack
	Left, Right *DocObj
	Pad         bool
}

type DocObjFixKind int

const (
	DocObjFixText DocObjFixKind = iota
	DocObjFixComp
)

type DocObjFix struct {
	Kind        DocObjFixKind
	Text        string
	Left, Right *DocObjFix
	Pad         bool
}

// Line is one line of a compiled Doc. Empty marks a line whose content
// vanished entirely during denulling; Obj is nil exactly when Empty is
// true.
type Line struct {
	Empty bool
	Obj   *DocObj
}

// Doc is the final output of the compiler pipeline, ready for the
// renderer to consume.
type Doc struct {
	Lines []*Line
}
