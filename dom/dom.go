// Package dom abstracts the host document tree the drop engine resolves
// against. The engine never touches a concrete DOM; it sees elements through
// the Element interface and geometry through Point and Rect, so any host
// environment with a tree of positioned boxes can drive it.
package dom

// Point is a position in page coordinates.
type Point struct {
	X, Y float64
}

// Element is one node of the host tree. Implementations must be comparable
// (use pointer receivers); the engine relies on == for identity.
type Element interface {
	// Parent returns the parent element, or nil at the tree root.
	Parent() Element

	// ChildIndex returns the element's position among its parent's
	// children. The value at the root is unused.
	ChildIndex() int

	// Matches reports whether the element matches a CSS-style selector.
	Matches(selector string) bool

	// FindAll returns the elements in this element's subtree matching
	// selector, in tree order.
	FindAll(selector string) []Element
}

// Depth returns the length of the element's ancestor chain.
func Depth(el Element) int {
	depth := 0
	for p := el.Parent(); p != nil; p = p.Parent() {
		depth++
	}
	return depth
}
