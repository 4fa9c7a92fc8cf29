package domain

// PathNode is one node of a materialized classification tree, corresponding
// to a path prefix appearing in the catalog.
//
// Key is the full slash-joined path from the tree root to this node and is
// unique within a tree. Title is the display label, equal to the final path
// segment. EntityID is set iff some catalog row's full path equals Key; a
// node may carry an entity and still have children.
//
// Invariant: IsLeaf is true iff Children is empty.
type PathNode struct {
	Key      string      `json:"key"`
	Title    string      `json:"title"`
	IsLeaf   bool        `json:"isLeaf"`
	EntityID *int64      `json:"entity_id,omitempty"`
	Children []*PathNode `json:"children"`
}

// Clone returns a deep copy of the node and everything below it.
func (n *PathNode) Clone() *PathNode {
	if n == nil {
		return nil
	}
	c := &PathNode{
		Key:    n.Key,
		Title:  n.Title,
		IsLeaf: n.IsLeaf,
	}
	if n.EntityID != nil {
		id := *n.EntityID
		c.EntityID = &id
	}
	if n.Children != nil {
		c.Children = make([]*PathNode, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}
	return c
}

// CloneTree deep-copies a forest of PathNodes.
func CloneTree(nodes []*PathNode) []*PathNode {
	if nodes == nil {
		return nil
	}
	out := make([]*PathNode, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}
	return out
}
