package domain

// NodeKind identifies what a tree node represents
type NodeKind int

const (
	NodeRoot NodeKind = iota
	NodeSection
	NodeUnassigned
	NodeNote
)

func (k NodeKind) String() string {
	switch k {
	case NodeSection:
		return "section"
	case NodeUnassigned:
		return "unassigned"
	case NodeNote:
		return "note"
	default:
		return "root"
	}
}

// TreeNode represents a section or note for tree navigation
type TreeNode struct {
	Kind       NodeKind
	ID         string
	SectionID  string // owning section for notes, own id for sections
	Name       string
	Icon       Icon
	Children   []*TreeNode
	IsExpanded bool
	Parent     *TreeNode
}

// BuildTree creates the navigation tree of a collection. Regular sections
// come first in order, the unassigned section last.
func BuildTree(c *Collection) *TreeNode {
	root := &TreeNode{Kind: NodeRoot, Name: "Notes", IsExpanded: true}

	for _, s := range c.Sections() {
		root.Children = append(root.Children, sectionNode(s, NodeSection, root))
	}
	if u := c.Unassigned(); u != nil {
		root.Children = append(root.Children, sectionNode(u, NodeUnassigned, root))
	}

	return root
}

func sectionNode(s *Section, kind NodeKind, parent *TreeNode) *TreeNode {
	node := &TreeNode{
		Kind:       kind,
		ID:         s.ID,
		SectionID:  s.ID,
		Name:       s.Name,
		Icon:       s.Icon,
		IsExpanded: s.IsMaximized,
		Parent:     parent,
	}
	for _, n := range s.Notes {
		node.Children = append(node.Children, &TreeNode{
			Kind:       NodeNote,
			ID:         n.ID,
			SectionID:  s.ID,
			Name:       n.Name,
			Icon:       n.Icon,
			IsExpanded: n.IsMaximized,
			Parent:     node,
		})
	}
	return node
}

// IsContainer reports whether the node holds notes
func (n *TreeNode) IsContainer() bool {
	return n.Kind == NodeSection || n.Kind == NodeUnassigned
}

// Flatten returns all visible nodes in the tree (for list rendering).
// Notes are leaves: their expansion controls content, not children.
func (n *TreeNode) Flatten() []*TreeNode {
	var result []*TreeNode
	n.flattenRecursive(&result)
	return result
}

func (n *TreeNode) flattenRecursive(result *[]*TreeNode) {
	*result = append(*result, n)
	if n.IsExpanded {
		for _, child := range n.Children {
			child.flattenRecursive(result)
		}
	}
}

// Depth returns the depth of this node in the tree
func (n *TreeNode) Depth() int {
	depth := 0
	current := n.Parent
	for current != nil {
		depth++
		current = current.Parent
	}
	return depth
}

// Find returns the first node with id, searching depth-first
func (n *TreeNode) Find(id string) *TreeNode {
	if n.ID == id && n.Kind != NodeRoot {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(id); found != nil {
			return found
		}
	}
	return nil
}
