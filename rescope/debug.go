package rescope

import "fmt"

// String renders o in the same parenthesised-prefix grammar the earlier
// pass packages use.
func (o *FinalObj) String() string {
	switch o.Kind {
	case FinalObjText:
		return fmt.Sprintf("(Text %q)", o.Text)
	case FinalObjFix:
		return fmt.Sprintf("(Fix %s)", o.Fix)
	case FinalObjGrp:
		return fmt.Sprintf("(Grp %s)", o.Inner)
	case FinalObjSeq:
		return fmt.Sprintf("(Seq %s)", o.Inner)
	case FinalObjNest:
		return fmt.Sprintf("(Nest %s)", o.Inner)
	case FinalObjPack:
		return fmt.Sprintf("(Pack %d %s)", o.PackTag, o.Inner)
	case FinalObjComp:
		return fmt.Sprintf("(Comp %s %s %t)", o.Left, o.Right, o.Pad)
	default:
		return "(?)"
	}
}

func (f *FinalFix) String() string {
	switch f.Kind {
	case FinalFixText:
		return fmt.Sprintf("(Text %q)", f.Text)
	case FinalFixComp:
		return fmt.Sprintf("(Comp %s %s %t)", f.Left, f.Right, f.Pad)
	default:
		return "(?)"
	}
}

// String renders l as "(Empty)" or the line's surviving object.
func (l *FinalLine) String() string {
	if l.Empty {
		return "(Empty)"
	}
	return l.Obj.String()
}
