// Package broken implements Pass 1 of the compiler pipeline: lifting hard
// line breaks that appear anywhere inside a Seq/Grp/Nest/Pack/Comp subtree
// up into the right place, so every later pass can assume no Comp straddles
// a Line unless it is fixed.
//
// Output contract (the "Edsl" intermediate representation): every Comp whose
// subtree transitively contains a Line has been rewritten into a Line,
// unless it was under a Fix (in which case fix=true is preserved on the
// Attr and the Comp survives); every Seq whose subtree contained a Line has
// been replaced by its rewritten child. The output is the same shape as
// Layout, so this package reuses *layout.Layout as its own carrier type
// rather than introducing a parallel struct.
package broken

import "github.com/soren-n/typeset-go/layout"

// Run rewrites l into its Edsl form. Complexity: O(n^2) worst case in the
// size of l — each node's "contains a Line" tag is recomputed on demand
// rather than memoized, which is cheap in practice (Layout trees are
// shallow relative to their node count) and keeps Layout itself untouched
// and safely reusable across Compile calls.
func Run(l *layout.Layout) *layout.Layout {
	return rewrite(l)
}

// containsLine reports whether l's subtree has a Line anywhere in it. This
// is the "mark" half of the pass: every other node asks it fresh, bottom-up,
// rather than threading an ambient top-down flag that could go stale.
func containsLine(l *layout.Layout) bool {
	if l == nil {
		return false
	}
	switch l.Kind() {
	case layout.KindLine:
		return true
	case layout.KindFix, layout.KindGrp, layout.KindSeq, layout.KindNest, layout.KindPack:
		return containsLine(l.X())
	case layout.KindComp:
		return containsLine(l.L()) || containsLine(l.R())
	default: // Null, Text
		return false
	}
}

// rewrite is the "remove" half: it reconstructs l bottom-up, deciding at
// each Seq or Comp node whether *that node's own subtree* contains a Line,
// via containsLine, rather than relying on whether some ancestor happened
// to be a Line. A Comp two levels under a Line but with no Line of its own
// stays a Comp (soft compositions nest inside hard breaks all the time);
// a Comp whose own left or right operand is — or contains — a Line always
// becomes one, since Comp's rendering assumes both operands lay out on a
// single row, which a Line-containing operand violates.
func rewrite(l *layout.Layout) *layout.Layout {
	if l == nil {
		return nil
	}
	switch l.Kind() {
	case layout.KindNull, layout.KindText:
		return l
	case layout.KindFix:
		return layout.Fix(rewrite(l.X()))
	case layout.KindGrp:
		return layout.Grp(rewrite(l.X()))
	case layout.KindSeq:
		if containsLine(l.X()) {
			// Seq's own scope is broken: dropped, replaced by its rewritten
			// child, which independently re-derives its own brokenness —
			// every Comp reachable through it that contains a Line converts
			// too, so the scope breaks all-or-nothing.
			return rewrite(l.X())
		}
		return layout.Seq(rewrite(l.X()))
	case layout.KindNest:
		return layout.Nest(rewrite(l.X()))
	case layout.KindPack:
		return layout.Pack(rewrite(l.X()))
	case layout.KindLine:
		return layout.Line(rewrite(l.L()), rewrite(l.R()))
	case layout.KindComp:
		if containsLine(l) && !l.CompAttr().Fix {
			return layout.Line(rewrite(l.L()), rewrite(l.R()))
		}
		return layout.Comp(rewrite(l.L()), rewrite(l.R()), l.CompAttr().Pad, l.CompAttr().Fix)
	default:
		return l
	}
}
