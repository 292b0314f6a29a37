package compiler

import (
	"github.com/soren-n/typeset-go/layout"
	"github.com/soren-n/typeset-go/typeseterr"
)

// checkDepth walks l once, rejecting input whose nesting depth exceeds
// maxDepth before any pass runs. No pass in this pipeline deepens the tree
// by more than a constant factor (denull/reassociate/rescope shrink or
// reshape, the rest preserve shape), so bounding the input's own depth up
// front bounds every pass's recursion too.
func checkDepth(l *layout.Layout, maxDepth int) error {
	guard := typeseterr.NewDepthGuard("compiler.CompileSafeWithDepth", maxDepth)
	return walkDepth(l, guard)
}

func walkDepth(l *layout.Layout, guard *typeseterr.DepthGuard) error {
	if l == nil {
		return nil
	}
	if err := guard.Enter(); err != nil {
		return err
	}
	defer guard.Leave()

	switch l.Kind() {
	case layout.KindNull, layout.KindText:
		return nil
	case layout.KindFix, layout.KindGrp, layout.KindSeq, layout.KindNest, layout.KindPack:
		return walkDepth(l.X(), guard)
	default: // KindLine, KindComp
		if err := walkDepth(l.L(), guard); err != nil {
			return err
		}
		return walkDepth(l.R(), guard)
	}
}
