package dom

import "slices"

// IndexOfDeepest returns the index of the deepest element, preferring later
// DOM order when two elements sit at the same depth. Nil entries are skipped.
// Returns -1 when every entry is nil.
func IndexOfDeepest(els []Element) int {
	deepest := -1

	for i, el := range els {
		if el == nil {
			continue
		}

		if deepest == -1 || deeperThan(el, els[deepest]) {
			deepest = i
		}
	}

	return deepest
}

// deeperThan reports whether a should win the deepest-element tie-break over b.
func deeperThan(a, b Element) bool {
	da, db := Depth(a), Depth(b)
	if da != db {
		return da > db
	}

	// same depth: walk both root paths and let the later sibling win at the
	// first point the paths diverge
	// todo: z-index tie-break for stacked siblings (needs a stacking query on Element)
	pa, pb := rootPath(a), rootPath(b)
	for i := range pa {
		if pa[i] == pb[i] {
			continue
		}

		return pa[i].ChildIndex() > pb[i].ChildIndex()
	}

	return false
}

// rootPath returns the chain from the tree root down to el, inclusive.
func rootPath(el Element) []Element {
	var path []Element
	for e := el; e != nil; e = e.Parent() {
		path = append(path, e)
	}

	slices.Reverse(path)
	return path
}
