package drop

import "github.com/AnatoleLucet/drop/dom"

// Candidate is one dropzone element eligible for the current drag.
type Candidate struct {
	Dropzone Interactable
	Element  dom.Element

	// Rect is the element's rectangle captured at collection time. HasRect
	// is false when the element had no renderable box.
	Rect    dom.Rect
	HasRect bool
}

// collect walks the registry and returns the candidates for a drag of
// draggedElement: every enabled zone whose accept rule takes the dragged
// element, expanded into its concrete target elements. Order is registration
// order, then target-expansion order.
func collect(reg Registry, draggedElement dom.Element) []Candidate {
	var out []Candidate
	if reg == nil {
		return out
	}

	for it := range reg.Interactables() {
		zone := it.Dropzone()
		if !zone.Enabled() {
			continue
		}

		if accept := zone.Config().Accept; accept != nil && !accept.Accept(it, draggedElement) {
			continue
		}

		for _, el := range it.TargetElements() {
			if el == nil || el == draggedElement {
				continue
			}

			out = append(out, Candidate{Dropzone: it, Element: el})
		}
	}

	return out
}

// collectWithRects is collect plus each candidate's current rectangle,
// queried from its own dropzone. This is the active-drops set of one drag.
func collectWithRects(reg Registry, draggedElement dom.Element) []Candidate {
	cands := collect(reg, draggedElement)

	for i := range cands {
		cands[i].Rect, cands[i].HasRect = cands[i].Dropzone.Rect(cands[i].Element)
	}

	return cands
}
