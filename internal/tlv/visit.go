package tlv

// VisitFunc is called once per node during a depth-first pre-order walk.
// depth is the nesting level starting at 0, isLeaf is true when the node has
// no children. Returning false prunes the node's subtree; the walk itself
// continues with the next sibling.
type VisitFunc func(node *Node, depth int, isLeaf bool) bool

// Visit walks the trees rooted at nodes in order, depth-first pre-order.
func Visit(nodes []*Node, fn VisitFunc) {
	for _, node := range nodes {
		visitNode(node, 0, fn)
	}
}

func visitNode(node *Node, depth int, fn VisitFunc) {
	if node == nil {
		return
	}

	if !fn(node, depth, len(node.Children) == 0) {
		return
	}

	for _, child := range node.Children {
		visitNode(child, depth+1, fn)
	}
}
