package materialize

import "github.com/soren-n/typeset-go/rescope"

// Run copies every line of d into a freshly heap-owned Doc.
func Run(d *rescope.FinalDoc) *Doc {
	out := &Doc{}
	for _, line := range d.Lines {
		if line.Empty {
			out.Lines = append(out.Lines, &Line{Empty: true})
			continue
		}
		out.Lines = append(out.Lines, &Line{Obj: visitObj(line.Obj)})
	}
	return out
}

func visitObj(o *rescope.FinalObj) *DocObj {
	switch o.Kind {
	case rescope.FinalObjText:
		return &DocObj{Kind: DocObjText, Text: o.Text}
	case rescope.FinalObjFix:
		return &DocObj{Kind: DocObjFix, Fix: visitFix(o.Fix)}
	case rescope.FinalObjGrp:
		return &DocObj{Kind: DocObjGrp, Inner: visitObj(o.Inner)}
	case rescope.FinalObjSeq:
		return &DocObj{Kind: DocObjSeq, Inner: visitObj(o.Inner)}
	case rescope.FinalObjNest:
		return &DocObj{Kind: DocObjNest, Inner: visitObj(o.Inner)}
	case rescope.FinalObjPack:
		return &DocObj{Kind: DocObjPack, PackTag: o.PackTag, Inner: visitObj(o.Inner)}
	default: // rescope.FinalObjComp
		return &DocObj{Kind: DocObjComp, Left: visitObj(o.Left), Right: visitObj(o.Right), Pad: o.Pad}
	}
}

func visitFix(f *rescope.FinalFix) *DocObjFix {
	switch f.Kind {
	case rescope.FinalFixText:
		return &DocObjFix{Kind: DocObjFixText, Text: f.Text}
	default: // rescope.FinalFixComp
		return &DocObjFix{Kind: DocObjFixComp, Left: visitFix(f.Left), Right: visitFix(f.Right), Pad: f.Pad}
	}
}
