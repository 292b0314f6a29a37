package layout

import "strconv"

// String renders l in parenthesised prefix notation, e.g.
// `(Comp (Text "foo") (Text "bar") true false)` or
// `(Line (Text "x") (Text "y"))`,
// matching the round-trippable debug grammar named in the package
// specification this module implements.
func (l *Layout) String() string {
	if l == nil {
		return "Null"
	}
	switch l.kind {
	case KindNull:
		return "Null"
	case KindText:
		return "(Text " + strconv.Quote(l.text) + ")"
	case KindFix:
		return "(Fix " + l.x.String() + ")"
	case KindGrp:
		return "(Grp " + l.x.String() + ")"
	case KindSeq:
		return "(Seq " + l.x.String() + ")"
	case KindNest:
		return "(Nest " + l.x.String() + ")"
	case KindPack:
		return "(Pack " + l.x.String() + ")"
	case KindLine:
		return "(Line " + l.l.String() + " " + l.r.String() + ")"
	case KindComp:
		return "(Comp " + l.l.String() + " " + l.r.String() + " " +
			strconv.FormatBool(l.attr.Pad) + " " + strconv.FormatBool(l.attr.Fix) + ")"
	default:
		return "?"
	}
}
