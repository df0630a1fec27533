package kdgo

// Stats describes the shape of a built tree.
type Stats struct {
	Records       int // Number of records in the backing storage
	Dimension     int // Fixed point dimension
	LeafThreshold int // Effective leaf threshold after clamping
	InternalNodes int // Number of internal split nodes
	Leaves        int // Number of leaf buckets
	MaxLeafSize   int // Largest leaf bucket
	MaxDepth      int // Depth of the deepest node (root = 0)
}

// Stats walks the tree and returns shape statistics.
func (t *KDTree[T]) Stats() Stats {
	s := Stats{
		Records:       len(t.records),
		Dimension:     t.dimension,
		LeafThreshold: t.opts.LeafThreshold,
	}

	var walk func(n *node, depth int)
	walk = func(n *node, depth int) {
		if depth > s.MaxDepth {
			s.MaxDepth = depth
		}
		if n.isLeaf() {
			s.Leaves++
			if size := n.stop - n.start; size > s.MaxLeafSize {
				s.MaxLeafSize = size
			}
			return
		}
		s.InternalNodes++
		walk(n.left, depth+1)
		walk(n.right, depth+1)
	}
	walk(t.root, 0)

	return s
}
