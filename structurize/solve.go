package structurize

import "github.com/soren-n/typeset-go/typeseterr"

// solve walks each line's nodes left to right, collapsing every node that
// both closes an incoming scope and opens an outgoing one: its incoming
// edges are either handed off to the Grp edge that starts here, or threaded
// past any Seq edges that start here, so such pass-through nodes never need
// their own open/close bracket in the rebuilt tree.
func solve(d *GraphDoc) {
	for _, obj := range d.Objs {
		for _, node := range obj.Nodes {
			insOK := (node.InsHead == nil) == (node.InsTail == nil)
			outsOK := (node.OutsHead == nil) == (node.OutsTail == nil)
			if !insOK || !outsOK {
				panic(&typeseterr.InvariantViolation{Pass: "structurize.solve", Detail: "node ins/outs head and tail disagree on emptiness"})
			}
			if node.InsHead == nil || node.OutsHead == nil {
				continue
			}
			first := leftmost(node.InsHead)
			resolve(node, first, node.OutsHead)
		}
	}
}

// leftmost returns the incoming edge on head's chain whose source has the
// smallest index, preferring the earliest such edge on ties.
func leftmost(head *GraphEdge) *GraphEdge {
	result := head
	best := head.Source.Index
	for cur := head; cur.InsNext != nil; cur = cur.InsNext {
		next := cur.InsNext
		if next.Source.Index < best {
			best = next.Source.Index
			result = next
		}
	}
	return result
}

// resolve walks node's outgoing edges starting at outsHead. Each leading Seq
// edge is reparented to originate from ins's source instead of node (it
// passes straight through node). The walk stops at the first Grp edge, if
// any, and hands node's entire incoming chain off to that edge's target.
func resolve(node *GraphNode, ins *GraphEdge, outsHead *GraphEdge) {
	curr := outsHead
	for curr != nil {
		if curr.IsGrp {
			moveIns(node.InsHead, node.InsTail, curr)
			return
		}
		next := curr.OutsNext
		moveOut(curr, ins)
		curr = next
	}
}

func moveOut(curr, ins *GraphEdge) {
	removeOut(curr)
	prependOut(curr, ins)
}

func removeOut(curr *GraphEdge) {
	node := curr.Source
	prev, next := curr.OutsPrev, curr.OutsNext
	switch {
	case prev == nil && next == nil:
		node.OutsHead, node.OutsTail = nil, nil
	case prev != nil && next == nil:
		curr.OutsPrev = nil
		prev.OutsNext = nil
		node.OutsTail = prev
	case prev == nil && next != nil:
		curr.OutsNext = nil
		next.OutsPrev = nil
		node.OutsHead = next
	default:
		curr.OutsPrev, curr.OutsNext = nil, nil
		prev.OutsNext = next
		next.OutsPrev = prev
	}
}

// prependOut splices curr into ins.Source's outgoing list immediately before
// ins, reparenting curr to originate from ins.Source.
func prependOut(curr, ins *GraphEdge) {
	node := ins.Source
	curr.Source = node
	prev := ins.OutsPrev
	if prev == nil {
		curr.OutsNext = ins
		ins.OutsPrev = curr
		node.OutsHead = curr
	} else {
		prev.OutsNext = curr
		curr.OutsPrev = prev
		curr.OutsNext = ins
		ins.OutsPrev = curr
	}
}

func moveIns(head, tail, edge *GraphEdge) {
	removeIns(head)
	appendIns(head, tail, edge)
}

func removeIns(head *GraphEdge) {
	node := head.Target
	node.InsHead, node.InsTail = nil, nil
}

// appendIns splices the [head..tail] chain into edge.Target's incoming list
// immediately after edge, repointing every moved edge's Target to it.
func appendIns(head, tail, edge *GraphEdge) {
	node := edge.Target
	for e := head; e != nil; e = e.InsNext {
		e.Target = node
	}
	next := edge.InsNext
	if next == nil {
		edge.InsNext = head
		head.InsPrev = edge
		node.InsTail = tail
	} else {
		tail.InsNext = next
		next.InsPrev = tail
		edge.InsNext = head
		head.InsPrev = edge
	}
}
