package denull

import "fmt"

// String renders t in the same parenthesised-prefix grammar layout.Layout
// and structurize's rebuilt-tree types use.
func (t *DenullTerm) String() string {
	switch t.Kind {
	case DenullTermText:
		return fmt.Sprintf("(Text %q)", t.Text)
	case DenullTermNest:
		return fmt.Sprintf("(Nest %s)", t.Inner)
	case DenullTermPack:
		return fmt.Sprintf("(Pack %d %s)", t.PackTag, t.Inner)
	default:
		return "(?)"
	}
}

func (f *DenullFix) String() string {
	switch f.Kind {
	case DenullFixTerm:
		return f.Term.String()
	case DenullFixComp:
		return fmt.Sprintf("(Comp %s %s %t)", f.Left, f.Right, f.Pad)
	default:
		return "(?)"
	}
}

func (o *DenullObj) String() string {
	switch o.Kind {
	case DenullObjTerm:
		return o.Term.String()
	case DenullObjFix:
		return fmt.Sprintf("(Fix %s)", o.Fix)
	case DenullObjGrp:
		return fmt.Sprintf("(Grp %s)", o.Inner)
	case DenullObjSeq:
		return fmt.Sprintf("(Seq %s)", o.Inner)
	case DenullObjComp:
		return fmt.Sprintf("(Comp %s %s %t)", o.Left, o.Right, o.Pad)
	default:
		return "(?)"
	}
}

// String renders l as "(Empty)" or the line's surviving object.
func (l *DenullLine) String() string {
	if l.Empty {
		return "(Empty)"
	}
	return l.Obj.String()
}
