package layout

// Layout is one node of the input algebra. Fields are private; construct
// instances with the package-level constructors and read them back with the
// accessor methods below — the same private-storage-plus-accessor shape the
// core graph types in this codebase's lineage use for Vertex/Edge.
type Layout struct {
	kind Kind
	text string
	x    *Layout // operand of Fix, Grp, Seq, Nest, Pack
	l, r *Layout // operands of Line, Comp
	attr Attr    // only meaningful when kind == KindComp
}

// Kind reports which variant l holds.
func (l *Layout) Kind() Kind { return l.kind }

// Text returns the literal payload of a Text node. Meaningless otherwise.
func (l *Layout) Text() string { return l.text }

// X returns the operand of a Fix/Grp/Seq/Nest/Pack node. Meaningless otherwise.
func (l *Layout) X() *Layout { return l.x }

// L returns the left operand of a Line/Comp node. Meaningless otherwise.
func (l *Layout) L() *Layout { return l.l }

// R returns the right operand of a Line/Comp node. Meaningless otherwise.
func (l *Layout) R() *Layout { return l.r }

// CompAttr returns the Attr of a Comp node. Meaningless otherwise.
func (l *Layout) CompAttr() Attr { return l.attr }

// Null builds the empty, neutral-under-composition layout.
func Null() *Layout { return &Layout{kind: KindNull} }

// Text builds a literal whose column-width equals len(s) (byte length).
func Text(s string) *Layout { return &Layout{kind: KindText, text: s} }

// Fix marks x as unbreakable: no composition inside x may break.
func Fix(x *Layout) *Layout { return &Layout{kind: KindFix, x: x} }

// Grp marks x as a group: break only if no enclosing breakable scope can
// absorb the overflow.
func Grp(x *Layout) *Layout { return &Layout{kind: KindGrp, x: x} }

// Seq marks x as all-or-nothing: if any composition under x breaks, all do.
func Seq(x *Layout) *Layout { return &Layout{kind: KindSeq, x: x} }

// Nest marks x to be indented by one tab stop when broken under this scope.
func Nest(x *Layout) *Layout { return &Layout{kind: KindNest, x: x} }

// Pack marks x to align, when broken, to the column where its first text
// landed.
func Pack(x *Layout) *Layout { return &Layout{kind: KindPack, x: x} }

// Line forces a hard line break between l and r.
func Line(l, r *Layout) *Layout { return &Layout{kind: KindLine, l: l, r: r} }

// Comp composes l and r softly: kept on one line (with a space if pad) when
// it fits, otherwise broken — unless fix prevents breaking this composition.
func Comp(l, r *Layout, pad, fix bool) *Layout {
	return &Layout{kind: KindComp, l: l, r: r, attr: Attr{Pad: pad, Fix: fix}}
}
