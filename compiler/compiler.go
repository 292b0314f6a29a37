// Package compiler is the single orchestrator over the pipeline's ten
// passes: one sequence of steps run in a fixed order, the way the reference
// library's builder package runs a fixed sequence of constructors over one
// graph. Rendering is not part of it; the *materialize.Doc it returns is
// handed to render.Render separately.
package compiler

import (
	"github.com/soren-n/typeset-go/broken"
	"github.com/soren-n/typeset-go/denull"
	"github.com/soren-n/typeset-go/fixed"
	"github.com/soren-n/typeset-go/identities"
	"github.com/soren-n/typeset-go/layout"
	"github.com/soren-n/typeset-go/linearize"
	"github.com/soren-n/typeset-go/materialize"
	"github.com/soren-n/typeset-go/reassociate"
	"github.com/soren-n/typeset-go/rescope"
	"github.com/soren-n/typeset-go/serialize"
	"github.com/soren-n/typeset-go/structurize"
	"github.com/soren-n/typeset-go/typeseterr"
)

// Compile runs the pipeline, panicking on an invariant violation rather
// than returning an error. Use CompileSafe to recover instead.
func Compile(l *layout.Layout) *materialize.Doc {
	return run(l)
}

// CompileSafe runs the pipeline, converting any invariant-violation panic
// into an error instead of letting it propagate.
func CompileSafe(l *layout.Layout, opts ...Option) (doc *materialize.Doc, err error) {
	cfg := newConfig(opts...)

	if cfg.maxDepth > 0 {
		if depthErr := checkDepth(l, cfg.maxDepth); depthErr != nil {
			return nil, depthErr
		}
	}

	defer func() {
		if r := recover(); r != nil {
			if iv, ok := r.(*typeseterr.InvariantViolation); ok {
				err = &typeseterr.InvalidInput{Message: iv.Error()}
				return
			}
			err = &typeseterr.InvalidInput{Message: "compiler: unrecovered panic during compilation"}
		}
	}()

	doc = run(l)
	return doc, nil
}

// CompileSafeWithDepth is CompileSafe(l, WithMaxDepth(maxDepth)) sugar,
// kept for parity with the base spec's named three-entry-point API.
func CompileSafeWithDepth(l *layout.Layout, maxDepth int) (*materialize.Doc, error) {
	if maxDepth <= 0 {
		return nil, &typeseterr.InvalidInput{Message: "compiler: maxDepth must be positive"}
	}
	return CompileSafe(l, WithMaxDepth(maxDepth))
}

func run(l *layout.Layout) *materialize.Doc {
	d := denull.Run(structurize.Run(fixed.Run(linearize.Run(serialize.Run(broken.Run(l))))))
	d = reassociate.Run(identities.Run(d))
	return materialize.Run(rescope.Run(d))
}
