// Package structurize implements Pass 5 of the compiler pipeline: building a
// doubly-linked graph of Grp/Seq scope edges over each line's nodes, solving
// away single-node pass-through scopes, and rebuilding a properly nested
// RebuildDoc from the resulting topology.
//
// Unlike the upstream passes (broken, serialize, linearize, fixed), this
// pass needs genuine pointer surgery on a mutable graph — the same shape of
// problem lvlath's core.Graph solves with adjacency lists guarded by a
// mutex. Here the graph is built, solved, and discarded entirely within one
// call with no concurrent access, so plain pointer fields replace the mutex:
// there is nothing else that could observe it mid-mutation.
package structurize

// GraphTermKind tags which term variant a GraphTerm holds.
type GraphTermKind int

const (
	GraphTermNull GraphTermKind = iota
	GraphTermText
	GraphTermFix
	GraphTermNest
	GraphTermPack
)

// GraphTerm is a term carried by a graph node; shaped like serialize.Term
// plus a Fix variant absorbing a fixed.FixChain wholesale.
type GraphTerm struct {
	Kind    GraphTermKind
	Text    string
	Inner   *GraphTerm
	PackTag uint64
	Fix     *GraphFix
}

// GraphFix mirrors a fixed.FixChain as a cons-list: Next holds the
// continuation, nil Next means this is the chain's last term.
type GraphFix struct {
	Term *GraphTerm
	Next *GraphFix
	Pad  bool // meaningful only when Next != nil
}

// GraphNode is one position (term or fix-chain) within a line, carrying the
// doubly-linked lists of Grp/Seq edges incident on it.
type GraphNode struct {
	Index    int
	Term     *GraphTerm
	InsHead  *GraphEdge
	InsTail  *GraphEdge
	OutsHead *GraphEdge
	OutsTail *GraphEdge
}

// GraphEdge is one Grp or Seq scope edge, doubly linked into both its
// source's outgoing list and its target's incoming list.
type GraphEdge struct {
	IsGrp    bool
	Source   *GraphNode
	Target   *GraphNode
	InsNext  *GraphEdge
	InsPrev  *GraphEdge
	OutsNext *GraphEdge
	OutsPrev *GraphEdge
}

// GraphObj is one line: its nodes in left-to-right order plus one pad flag
// per gap between consecutive nodes.
type GraphObj struct {
	Nodes []*GraphNode
	Pads  []bool
}

// GraphDoc is the whole document, one GraphObj per line.
type GraphDoc struct {
	Objs []*GraphObj
}

// RebuildTermKind tags which term variant a RebuildTerm holds.
type RebuildTermKind int

const (
	RebuildTermNull RebuildTermKind = iota
	RebuildTermText
	RebuildTermNest
	RebuildTermPack
)

// RebuildTerm is a plain term with Fix fully eliminated (absorbed into
// RebuildFix on the enclosing RebuildObj).
type RebuildTerm struct {
	Kind    RebuildTermKind
	Text    string
	Inner   *RebuildTerm
	PackTag uint64
}

// RebuildFixKind tags which variant a RebuildFix holds.
type RebuildFixKind int

const (
	RebuildFixTerm RebuildFixKind = iota
	RebuildFixComp
)

// RebuildFix is a fix chain re-expressed as a binary Term/Comp tree, ready
// for the renderer to walk without needing to know about chains at all.
type RebuildFix struct {
	Kind  RebuildFixKind
	Term  *RebuildTerm // meaningful when Kind == RebuildFixTerm
	Left  *RebuildFix  // meaningful when Kind == RebuildFixComp
	Right *RebuildFix  // meaningful when Kind == RebuildFixComp
	Pad   bool         // meaningful when Kind == RebuildFixComp
}

// RebuildObjKind tags which variant a RebuildObj holds.
type RebuildObjKind int

const (
	RebuildObjTerm RebuildObjKind = iota
	RebuildObjFix
	RebuildObjGrp
	RebuildObjSeq
	RebuildObjComp
)

// RebuildObj is the properly-nested tree Pass 5 produces for one line: Grp
// and Seq scopes are now real enclosing nodes instead of edges in a graph.
type RebuildObj struct {
	Kind  RebuildObjKind
	Term  *RebuildTerm // Kind == RebuildObjTerm
	Fix   *RebuildFix  // Kind == RebuildObjFix
	Inner *RebuildObj  // Kind == RebuildObjGrp or RebuildObjSeq
	Left  *RebuildObj  // Kind == RebuildObjComp
	Right *RebuildObj  // Kind == RebuildObjComp
	Pad   bool         // Kind == RebuildObjComp
}

// RebuildDoc is the whole document, one RebuildObj tree per line.
type RebuildDoc struct {
	Lines []*RebuildObj
}
