// Package drop resolves drop targets for pointer drag interactions.
//
// The package is a plugin for a drag interaction engine: the host engine
// delivers drag lifecycle signals to an Engine through Handle, and the Engine
// decides which registered dropzone (if any) currently receives the drag,
// firing dropactivate, dragenter, dropmove, dragleave, drop and
// dropdeactivate events on the owning zones as that decision changes.
//
// The host environment stays behind small interfaces: elements and geometry
// behind package dom, the interactable registry behind Registry, and the host
// engine's pointer and drag events behind PointerEvent and DragEvent.
package drop

import (
	"iter"

	"github.com/AnatoleLucet/drop/dom"
)

// ActionDrag is the interaction action type this package reacts to. Signals
// for any other action are a pass-through.
const ActionDrag = "drag"

// Registry lists the registered interactables. Iteration order must be
// registration order; candidate ordering and tie-breaks depend on it.
type Registry interface {
	Interactables() iter.Seq[Interactable]
}

// Interactable is one registered entity of the host interaction engine.
// Implementations must be comparable (use pointer receivers).
type Interactable interface {
	// Dropzone returns the interactable's dropzone trait, or nil when it
	// cannot receive drops.
	Dropzone() *Zone

	// TargetElements expands the interactable's target specification
	// (selector, list, or single element) into the concrete elements it
	// currently represents, in tree order.
	TargetElements() []dom.Element

	// Rect returns the current bounding rectangle of one of the
	// interactable's elements. ok is false when the element has no
	// renderable box.
	Rect(el dom.Element) (r dom.Rect, ok bool)

	// Origin is the coordinate origin configured for the interactable's
	// drag action. The zero value means page coordinates.
	Origin() dom.Point
}

// Interaction is one in-flight pointer interaction. Implementations must be
// comparable (use pointer receivers); the engine keys per-interaction drop
// state on the interface value.
type Interaction interface {
	// ActionType names the gesture the interaction performs, e.g. ActionDrag.
	ActionType() string

	// Interactable is the entity being dragged.
	Interactable() Interactable

	// Element is the concrete element being dragged.
	Element() dom.Element
}

// PointerEvent is the raw pointer event behind a lifecycle signal.
type PointerEvent interface {
	PagePoint() dom.Point
}

// DragEvent is the drag action event the host engine derived from a pointer
// event.
type DragEvent interface {
	PagePoint() dom.Point
}
