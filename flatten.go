package huffman

// Flatten returns the leaves of the tree grouped by the root's children: one
// group for the 0 subtree and one for the 1 subtree, each listing its
// Symbols in depth-first order with 0 before 1.  Absent children contribute
// no group.  A lone Leaf flattens to a single group holding its Symbol.
//
// This is a debugging view.  It discards the shape of the tree below the
// first level, so it cannot be used to reconstruct the tree.
//
func Flatten(root Node) [][]Symbol {
	switch x := root.(type) {
	case *Leaf:
		if x == nil {
			return nil
		}
		return [][]Symbol{{x.symbol}}
	case *Internal:
		if x == nil {
			return nil
		}
		groups := make([][]Symbol, 0, 2)
		for _, child := range x.children {
			if child != nil {
				groups = append(groups, appendLeaves(nil, child))
			}
		}
		return groups
	default:
		return nil
	}
}

func appendLeaves(out []Symbol, n Node) []Symbol {
	switch x := n.(type) {
	case *Leaf:
		out = append(out, x.symbol)
	case *Internal:
		for _, child := range x.children {
			if child != nil {
				out = appendLeaves(out, child)
			}
		}
	}
	return out
}
