package drop

import "github.com/AnatoleLucet/drop/dom"

// dropCheck decides whether a drag currently qualifies for one dropzone
// element. rect is the element's rectangle; hasRect is false when the element
// has no renderable box, in which case only a custom checker can qualify the
// drop.
func dropCheck(z *Zone, drag DragEvent, pointer PointerEvent, draggable Interactable, draggedElement, dropElement dom.Element, rect dom.Rect, hasRect bool) bool {
	opts := z.opts

	if !hasRect {
		if opts.Checker == nil {
			return false
		}

		return opts.Checker(Check{
			Drag:           drag,
			Pointer:        pointer,
			Overlapped:     false,
			Dropzone:       z.owner,
			DropElement:    dropElement,
			Draggable:      draggable,
			DraggedElement: draggedElement,
		})
	}

	dropped := false

	switch opts.Overlap.mode {
	case overlapPointer:
		pos := pagePoint(drag, pointer)
		if draggable != nil {
			origin := draggable.Origin()
			pos.X += origin.X
			pos.Y += origin.Y
		}

		dropped = rect.ContainsPoint(pos, true)

	case overlapCenter:
		if dragRect, ok := draggedRect(draggable, draggedElement); ok {
			dropped = rect.ContainsPoint(dragRect.Center(), false)
		}

	case overlapRatio:
		if dragRect, ok := draggedRect(draggable, draggedElement); ok && dragRect.Area() > 0 {
			dropped = rect.OverlapArea(dragRect)/dragRect.Area() >= opts.Overlap.ratio
		}
	}

	if opts.Checker != nil {
		dropped = opts.Checker(Check{
			Drag:           drag,
			Pointer:        pointer,
			Overlapped:     dropped,
			Dropzone:       z.owner,
			DropElement:    dropElement,
			Draggable:      draggable,
			DraggedElement: draggedElement,
		})
	}

	return dropped
}

// pagePoint prefers the drag event's page position, falling back to the raw
// pointer event.
func pagePoint(drag DragEvent, pointer PointerEvent) dom.Point {
	if drag != nil {
		return drag.PagePoint()
	}

	if pointer != nil {
		return pointer.PagePoint()
	}

	return dom.Point{}
}

// draggedRect returns the dragged element's current rectangle.
func draggedRect(draggable Interactable, el dom.Element) (dom.Rect, bool) {
	if draggable == nil || el == nil {
		return dom.Rect{}, false
	}

	return draggable.Rect(el)
}
