// Package linearize implements Pass 3 of the compiler pipeline: reifying
// the Line separators in a Serial as boundaries between LinearObj values,
// one per eventual output line.
package linearize

import "github.com/soren-n/typeset-go/serialize"

// LinearObj is one line's worth of (term (comp term)*) content; its Comps
// never contain a CompLine — Line positions are exactly where the parent
// LinearDoc splits into separate objects.
type LinearObj struct {
	Terms []*serialize.Term
	Comps []*serialize.Comp
}

// LinearDoc is the full document split into per-line objects.
type LinearDoc struct {
	Objs []*LinearObj
}

// Run walks s left to right, closing the current object on every Line and
// starting a new one, closing the last object at the end of the chain.
func Run(s *serialize.Serial) *LinearDoc {
	doc := &LinearDoc{}
	cur := &LinearObj{}
	cur.Terms = append(cur.Terms, s.Terms[0])
	for i, c := range s.Comps {
		if c.Kind == serialize.CompLine {
			doc.Objs = append(doc.Objs, cur)
			cur = &LinearObj{}
			cur.Terms = append(cur.Terms, s.Terms[i+1])
			continue
		}
		cur.Comps = append(cur.Comps, c)
		cur.Terms = append(cur.Terms, s.Terms[i+1])
	}
	doc.Objs = append(doc.Objs, cur)
	return doc
}
