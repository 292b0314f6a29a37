package structurize

import "fmt"

// String renders t in the same parenthesised-prefix grammar layout.Layout
// uses, so tests can assert on rebuilt shape directly.
func (t *RebuildTerm) String() string {
	switch t.Kind {
	case RebuildTermNull:
		return "(Null)"
	case RebuildTermText:
		return fmt.Sprintf("(Text %q)", t.Text)
	case RebuildTermNest:
		return fmt.Sprintf("(Nest %s)", t.Inner)
	case RebuildTermPack:
		return fmt.Sprintf("(Pack %d %s)", t.PackTag, t.Inner)
	default:
		return "(?)"
	}
}

func (f *RebuildFix) String() string {
	switch f.Kind {
	case RebuildFixTerm:
		return f.Term.String()
	case RebuildFixComp:
		return fmt.Sprintf("(Comp %s %s %t)", f.Left, f.Right, f.Pad)
	default:
		return "(?)"
	}
}

func (o *RebuildObj) String() string {
	switch o.Kind {
	case RebuildObjTerm:
		return o.Term.String()
	case RebuildObjFix:
		return fmt.Sprintf("(Fix %s)", o.Fix)
	case RebuildObjGrp:
		return fmt.Sprintf("(Grp %s)", o.Inner)
	case RebuildObjSeq:
		return fmt.Sprintf("(Seq %s)", o.Inner)
	case RebuildObjComp:
		return fmt.Sprintf("(Comp %s %s %t)", o.Left, o.Right, o.Pad)
	default:
		return "(?)"
	}
}
