package render

import "github.com/soren-n/typeset-go/pmap"

// state tracks everything the renderer carries forward across a document:
// width/tab are fixed configuration; head/broken/pos are local to the
// current composition chain; lvl (the active indent level) and marks (a
// pack tag's column, once fixed) are document-global and persist across
// hard line breaks, since a Nest or Pack scope can span more than one
// physical line.
type state struct {
	width, tab int
	head       bool
	broken     bool
	lvl, pos   int
	marks      pmap.Map[uint64, int]
}

func newState(width, tab int) state {
	return state{width: width, tab: tab, head: true, marks: pmap.Empty[uint64, int]()}
}

func incPos(n int, s state) state {
	s.pos += n
	return s
}

// indent advances lvl to the next multiple of tab strictly past the
// current level; a tab of 0 disables indentation entirely.
func indent(s state) state {
	if s.tab == 0 {
		return s
	}
	s.lvl += s.tab - (s.lvl % s.tab)
	return s
}

func newline(s state) state {
	s.head = true
	s.pos = 0
	return s
}

func reset(s state) state {
	s.head = true
	s.broken = false
	s.pos = 0
	return s
}

// getOffset is how many columns of padding are owed to catch pos up to
// lvl — only meaningful right at the head of a line, where nothing has
// been emitted yet to account for the current indent level.
func getOffset(s state) int {
	if !s.head {
		return 0
	}
	return max(0, s.lvl-s.pos)
}

func padAmount(pad bool) int {
	if pad {
		return 1
	}
	return 0
}
