package render_test

import (
	"fmt"

	"github.com/soren-n/typeset-go/materialize"
	"github.com/soren-n/typeset-go/render"
)

// ExampleRender_packAlignment demonstrates a Pack scope: the column where
// its first piece of text landed becomes the indentation every later
// broken-line continuation under the same tag aligns to.
func ExampleRender_packAlignment() {
	left := &materialize.DocObj{
		Kind: materialize.DocObjComp,
		Left: &materialize.DocObj{Kind: materialize.DocObjText, Text: "ab"},
		Right: &materialize.DocObj{
			Kind: materialize.DocObjPack, PackTag: 7,
			Inner: &materialize.DocObj{Kind: materialize.DocObjText, Text: "x"},
		},
		Pad: true,
	}
	obj := &materialize.DocObj{
		Kind: materialize.DocObjComp,
		Left: left,
		Right: &materialize.DocObj{
			Kind: materialize.DocObjPack, PackTag: 7,
			Inner: &materialize.DocObj{Kind: materialize.DocObjText, Text: "y"},
		},
		Pad: true,
	}
	doc := &materialize.Doc{Lines: []*materialize.Line{{Obj: obj}}}

	fmt.Println(render.Render(doc, 2, 5))
	// Output:
	// ab x
	//    y
}
