// Package serialize implements Pass 2 of the compiler pipeline: flattening
// the Edsl tree into an ordered Serial sequence, assigning a fresh integer
// identity to each surviving Grp, Seq, and Pack scope so later passes can
// talk about scopes by integer tag instead of by tree position.
//
// The reference algorithm (spec §4.2) describes this as a continuation-
// passing traversal threading monotone counters and wrapper closures; this
// port realises the same output contract as an ordinary left-to-right
// recursive descent (the control-flow realisation is explicitly left free
// by the base design notes) — the two emit identical Serial sequences,
// since flattening a tree in infix order is exactly what the CPS
// formulation computes one step at a time.
package serialize

import "github.com/soren-n/typeset-go/layout"

// Run flattens e (the Edsl produced by Pass 1) into a Serial.
func Run(e *layout.Layout) *Serial {
	b := &builder{}
	b.emit(e, false, identityTerm, identityComp)
	return &Serial{Terms: b.terms, Comps: b.comps}
}

type builder struct {
	terms []*Term
	comps []*Comp
	nextI uint64
	nextJ uint64
}

func identityTerm(t *Term) *Term { return t }
func identityComp(c *Comp) *Comp { return c }

// emit appends l's flattened terms/comps to the builder in left-to-right
// order. fixed is true once inside a Fix ancestor; wrapTerm/wrapComp
// accumulate the Nest/Pack and Grp/Seq layers currently in scope.
func (b *builder) emit(l *layout.Layout, fixed bool, wrapTerm func(*Term) *Term, wrapComp func(*Comp) *Comp) {
	switch l.Kind() {
	case layout.KindNull:
		b.terms = append(b.terms, wrapTerm(&Term{Kind: TermNull}))
	case layout.KindText:
		b.terms = append(b.terms, wrapTerm(&Term{Kind: TermText, Text: l.Text()}))
	case layout.KindFix:
		b.emit(l.X(), true, wrapTerm, wrapComp)
	case layout.KindGrp:
		tag := b.takeI()
		b.emit(l.X(), fixed, wrapTerm, func(c *Comp) *Comp {
			return wrapComp(&Comp{Kind: CompGrp, Tag: tag, Inner: c})
		})
	case layout.KindSeq:
		tag := b.takeI()
		b.emit(l.X(), fixed, wrapTerm, func(c *Comp) *Comp {
			return wrapComp(&Comp{Kind: CompSeq, Tag: tag, Inner: c})
		})
	case layout.KindNest:
		b.emit(l.X(), fixed, func(t *Term) *Term {
			return wrapTerm(&Term{Kind: TermNest, Inner: t})
		}, wrapComp)
	case layout.KindPack:
		tag := b.takeJ()
		b.emit(l.X(), fixed, func(t *Term) *Term {
			return wrapTerm(&Term{Kind: TermPack, Inner: t, PackTag: tag})
		}, wrapComp)
	case layout.KindLine:
		b.emit(l.L(), fixed, wrapTerm, wrapComp)
		b.comps = append(b.comps, &Comp{Kind: CompLine})
		b.emit(l.R(), fixed, wrapTerm, wrapComp)
	case layout.KindComp:
		attr := l.CompAttr()
		attr.Fix = attr.Fix || fixed
		b.emit(l.L(), fixed, wrapTerm, wrapComp)
		b.comps = append(b.comps, wrapComp(&Comp{Kind: CompComp, Attr: attr}))
		b.emit(l.R(), fixed, wrapTerm, wrapComp)
	}
}

func (b *builder) takeI() uint64 {
	tag := b.nextI
	b.nextI++
	return tag
}

func (b *builder) takeJ() uint64 {
	tag := b.nextJ
	b.nextJ++
	return tag
}
