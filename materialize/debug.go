package materialize

import "fmt"

// String renders o in the same parenthesised-prefix grammar the earlier
// pass packages use.
func (o *DocObj) String() string {
	switch o.Kind {
	case DocObjText:
		return fmt.Sprintf("(Text %q)", o.Text)
	case DocObjFix:
		return fmt.Sprintf("(Fix %s)", o.Fix)
	case DocObjGrp:
		return fmt.Sprintf("(Grp %s)", o.Inner)
	case DocObjSeq:
		return fmt.Sprintf("(Seq %s)", o.Inner)
	case DocObjNest:
		return fmt.Sprintf("(Nest %s)", o.Inner)
	case DocObjPack:
		return fmt.Sprintf("(Pack %d %s)", o.PackTag, o.Inner)
	case DocObjComp:
		return fmt.Sprintf("(Comp %s %s %t)", o.Left, o.Right, o.Pad)
	default:
		return "(?)"
	}
}

func (f *DocObjFix) String() string {
	switch f.Kind {
	case DocObjFixText:
		return fmt.Sprintf("(Text %q)", f.Text)
	case DocObjFixComp:
		return fmt.Sprintf("(Comp %s %s %t)", f.Left, f.Right, f.Pad)
	default:
		return "(?)"
	}
}

// String renders l as "(Empty)" or the line's surviving object.
func (l *Line) String() string {
	if l.Empty {
		return "(Empty)"
	}
	return l.Obj.String()
}
