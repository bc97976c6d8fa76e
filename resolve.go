package drop

import "github.com/AnatoleLucet/drop/dom"

// resolveDrop applies the qualification test to every active candidate and
// picks the winner: the deepest qualifying element in the host tree, later
// DOM order breaking depth ties. Returns nil when nothing qualifies.
func resolveDrop(active []Candidate, drag DragEvent, pointer PointerEvent, draggable Interactable, draggedElement dom.Element) *Candidate {
	// index-aligned with active so the winning element maps back to its
	// candidate
	qualified := make([]dom.Element, len(active))

	for i, cand := range active {
		zone := cand.Dropzone.Dropzone()
		if zone == nil {
			continue
		}

		if dropCheck(zone, drag, pointer, draggable, draggedElement, cand.Element, cand.Rect, cand.HasRect) {
			qualified[i] = cand.Element
		}
	}

	idx := dom.IndexOfDeepest(qualified)
	if idx == -1 {
		return nil
	}

	return &active[idx]
}
