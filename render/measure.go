package render

import "github.com/soren-n/typeset-go/materialize"

// measure reports the column obj would end at if rendered flat from s,
// ignoring every actual break decision — it is the renderer's lookahead
// for "would this fit" and "has this already overflowed" checks, never
// used to emit anything itself.
func measure(o *materialize.DocObj, s state) int {
	return measureObj(o, s).pos
}

func measureObj(o *materialize.DocObj, s state) state {
	switch o.Kind {
	case materialize.DocObjText:
		return incPos(len(o.Text), s)
	case materialize.DocObjFix:
		return measureFix(o.Fix, s)
	case materialize.DocObjGrp:
		return measureObj(o.Inner, s)
	case materialize.DocObjSeq:
		return measureObj(o.Inner, s)
	case materialize.DocObjNest:
		return measureScoped(o.Inner, s)
	case materialize.DocObjPack:
		return measurePack(o, s, measureObj)
	default: // materialize.DocObjComp
		s1 := measureObj(o.Left, s)
		s2 := incPos(padAmount(o.Pad), s1)
		head := s2.head
		s2.head = false
		s3 := measureObj(o.Right, s2)
		s3.head = head
		return s3
	}
}

func measureFix(f *materialize.DocObjFix, s state) state {
	switch f.Kind {
	case materialize.DocObjFixText:
		return incPos(len(f.Text), s)
	default: // materialize.DocObjFixComp
		s1 := measureFix(f.Left, s)
		s2 := incPos(padAmount(f.Pad), s1)
		return measureFix(f.Right, s2)
	}
}

// measureScoped applies a Nest's indent-and-offset bookkeeping around a
// recursive measureObj of inner, restoring lvl on the way back out.
func measureScoped(inner *materialize.DocObj, s state) state {
	lvl := s.lvl
	s1 := indent(s)
	offset := getOffset(s1)
	s2 := incPos(offset, s1)
	s3 := measureObj(inner, s2)
	s3.lvl = lvl
	return s3
}

// measurePack shares the Pack bookkeeping between measure and nextComp,
// which differ only in which visitor they recurse into for o.Inner.
func measurePack(o *materialize.DocObj, s state, visit func(*materialize.DocObj, state) state) state {
	lvl := s.lvl
	if markedLvl, ok := s.marks.Lookup(o.PackTag); !ok {
		pos := s.pos
		s1 := s
		s1.marks = s.marks.Insert(o.PackTag, pos)
		s1.lvl = max(lvl, pos)
		s2 := visit(o.Inner, s1)
		s2.lvl = lvl
		return s2
	} else {
		s1 := s
		s1.lvl = max(lvl, markedLvl)
		offset := getOffset(s1)
		s2 := incPos(offset, s1)
		s3 := visit(o.Inner, s2)
		s3.lvl = lvl
		return s3
	}
}

// nextComp reports the column at which obj's first real composition point
// (the end of its left-most spine) would land — used to decide whether a
// Seq or a Comp's right side must break, without measuring content that a
// break decision would make irrelevant. A Grp not at the head of a line is
// treated as an opaque span (its interior can't reveal an earlier break
// point, since it would need to fit on the current line as a whole or not
// at all), and a Comp only looks at its left operand, since the operand
// immediately to its right is by definition the next composition point.
func nextComp(o *materialize.DocObj, s state) int {
	return nextCompObj(o, s).pos
}

func nextCompObj(o *materialize.DocObj, s state) state {
	switch o.Kind {
	case materialize.DocObjText:
		return incPos(len(o.Text), s)
	case materialize.DocObjFix:
		return measureFix(o.Fix, s)
	case materialize.DocObjGrp:
		if s.head {
			return nextCompObj(o.Inner, s)
		}
		s2 := s
		s2.pos = measure(o.Inner, s)
		return s2
	case materialize.DocObjSeq:
		return nextCompObj(o.Inner, s)
	case materialize.DocObjNest:
		lvl := s.lvl
		s1 := indent(s)
		offset := getOffset(s1)
		s2 := incPos(offset, s1)
		s3 := nextCompObj(o.Inner, s2)
		s3.lvl = lvl
		return s3
	case materialize.DocObjPack:
		return measurePack(o, s, nextCompObj)
	default: // materialize.DocObjComp
		return nextCompObj(o.Left, s)
	}
}

func willFit(o *materialize.DocObj, s state) bool {
	return measure(o, s) <= s.width
}

func shouldBreak(o *materialize.DocObj, s state) bool {
	if s.broken {
		return true
	}
	return s.width < nextComp(o, s)
}
