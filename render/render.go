// Package render implements the final stage of the compiler pipeline: walking
// a materialized document and producing the string that actually gets
// printed, deciding at each Seq and Comp boundary whether the content ahead
// still fits on the current line or needs a hard break.
package render

import (
	"strings"

	"github.com/soren-n/typeset-go/materialize"
)

// Render prints d at the given tab width and line width.
func Render(d *materialize.Doc, tab, width int) string {
	s := newState(width, tab)
	var sb strings.Builder
	for i, line := range d.Lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if line.Empty {
			s = reset(s)
			continue
		}
		s = reset(s)
		s = visitObj(line.Obj, s, &sb)
	}
	return sb.String()
}

func visitObj(o *materialize.DocObj, s state, sb *strings.Builder) state {
	switch o.Kind {
	case materialize.DocObjText:
		sb.WriteString(o.Text)
		return incPos(len(o.Text), s)

	case materialize.DocObjFix:
		return visitFix(o.Fix, s, sb)

	case materialize.DocObjGrp:
		broken := s.broken
		s1 := s
		s1.broken = false
		s2 := visitObj(o.Inner, s1, sb)
		s2.broken = broken
		return s2

	case materialize.DocObjSeq:
		if willFit(o.Inner, s) {
			return visitObj(o.Inner, s, sb)
		}
		broken := s.broken
		s1 := s
		s1.broken = true
		s2 := visitObj(o.Inner, s1, sb)
		s2.broken = broken
		return s2

	case materialize.DocObjNest:
		lvl := s.lvl
		s1 := indent(s)
		offset := getOffset(s1)
		s2 := incPos(offset, s1)
		writeSpaces(sb, offset)
		s3 := visitObj(o.Inner, s2, sb)
		s3.lvl = lvl
		return s3

	case materialize.DocObjPack:
		lvl := s.lvl
		if markedLvl, ok := s.marks.Lookup(o.PackTag); !ok {
			pos := s.pos
			s1 := s
			s1.marks = s.marks.Insert(o.PackTag, pos)
			s1.lvl = max(lvl, pos)
			s2 := visitObj(o.Inner, s1, sb)
			s2.lvl = lvl
			return s2
		} else {
			s1 := s
			s1.lvl = max(lvl, markedLvl)
			offset := getOffset(s1)
			s2 := incPos(offset, s1)
			writeSpaces(sb, offset)
			s3 := visitObj(o.Inner, s2, sb)
			s3.lvl = lvl
			return s3
		}

	default: // materialize.DocObjComp
		s1 := visitObj(o.Left, s, sb)
		s2 := incPos(padAmount(o.Pad), s1)
		s3 := s2
		s3.head = false

		if shouldBreak(o.Right, s3) {
			sNl := newline(s1)
			offset := getOffset(sNl)
			sNl = incPos(offset, sNl)
			sb.WriteByte('\n')
			writeSpaces(sb, offset)
			return visitObj(o.Right, sNl, sb)
		}

		if o.Pad {
			sb.WriteByte(' ')
		}
		return visitObj(o.Right, s3, sb)
	}
}

func visitFix(f *materialize.DocObjFix, s state, sb *strings.Builder) state {
	switch f.Kind {
	case materialize.DocObjFixText:
		sb.WriteString(f.Text)
		return incPos(len(f.Text), s)
	default: // materialize.DocObjFixComp
		s1 := visitFix(f.Left, s, sb)
		if f.Pad {
			sb.WriteByte(' ')
		}
		s2 := incPos(padAmount(f.Pad), s1)
		return visitFix(f.Right, s2, sb)
	}
}

func writeSpaces(sb *strings.Builder, n int) {
	for i := 0; i < n; i++ {
		sb.WriteByte(' ')
	}
}
