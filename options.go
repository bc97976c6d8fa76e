package drop

import (
	"math"

	"github.com/AnatoleLucet/drop/dom"
)

// Accepter restricts which drags a zone will take.
type Accepter interface {
	// Accept reports whether the zone takes a drag of draggedElement.
	Accept(dropzone Interactable, draggedElement dom.Element) bool
}

type acceptElement struct{ el dom.Element }

func (a acceptElement) Accept(_ Interactable, dragged dom.Element) bool {
	return dragged == a.el
}

// AcceptElement accepts only drags of exactly el.
func AcceptElement(el dom.Element) Accepter { return acceptElement{el} }

type acceptSelector string

func (a acceptSelector) Accept(_ Interactable, dragged dom.Element) bool {
	return dragged != nil && dragged.Matches(string(a))
}

// AcceptSelector accepts drags of elements matching a CSS-style selector.
func AcceptSelector(selector string) Accepter { return acceptSelector(selector) }

// AcceptFunc adapts a predicate into an Accepter.
type AcceptFunc func(dropzone Interactable, draggedElement dom.Element) bool

func (f AcceptFunc) Accept(z Interactable, dragged dom.Element) bool { return f(z, dragged) }

type overlapMode int

const (
	overlapPointer overlapMode = iota
	overlapCenter
	overlapRatio
)

// Overlap is a zone's geometric qualification policy. The zero value is the
// pointer policy.
type Overlap struct {
	mode  overlapMode
	ratio float64
}

// OverlapPointer qualifies a drop while the drag's page position is strictly
// inside the zone element's rectangle.
func OverlapPointer() Overlap { return Overlap{mode: overlapPointer} }

// OverlapCenter qualifies a drop while the dragged element's center is inside
// the zone element's rectangle, edges included.
func OverlapCenter() Overlap { return Overlap{mode: overlapCenter} }

// OverlapRatio qualifies a drop while at least p of the dragged element's
// area intersects the zone element's rectangle. p is clamped to [0, 1]; NaN
// clamps to 0.
func OverlapRatio(p float64) Overlap {
	if math.IsNaN(p) || p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}

	return Overlap{mode: overlapRatio, ratio: p}
}

// Ratio returns the configured area ratio, and whether the policy is the
// numeric one.
func (o Overlap) Ratio() (float64, bool) { return o.ratio, o.mode == overlapRatio }

// Check carries everything a custom checker may inspect for one
// qualification test.
type Check struct {
	// Drag is the drag event behind the current step, nil when the test runs
	// outside a drag.
	Drag DragEvent

	// Pointer is the raw pointer event behind the current step.
	Pointer PointerEvent

	// Overlapped is the verdict of the zone's overlap policy; false when no
	// geometry was available for the test.
	Overlapped bool

	Dropzone       Interactable
	DropElement    dom.Element
	Draggable      Interactable
	DraggedElement dom.Element
}

// CheckerFunc overrides a zone's overlap policy: whatever it returns is the
// final qualification verdict. The policy's own verdict is passed in as
// c.Overlapped.
type CheckerFunc func(c Check) bool

// Propagation is a listener's verdict on further delivery within the same
// firing.
type Propagation int

const (
	// Continue lets the remaining listeners of the firing run.
	Continue Propagation = iota

	// Stop skips the remaining listeners of the firing. It never suppresses
	// delivery to other candidates of an activate/deactivate broadcast.
	Stop
)

// Listener handles one drop event firing.
type Listener func(*Event) Propagation

// Options configures a Zone.
type Options struct {
	// Enabled gates the zone's participation in candidate collection.
	Enabled bool

	// Accept restricts which dragged elements qualify; nil accepts all.
	Accept Accepter

	// Overlap is the geometric qualification policy.
	Overlap Overlap

	// Checker, when set, gets the last word on every qualification test.
	Checker CheckerFunc

	OnActivate   Listener
	OnDeactivate Listener
	OnEnter      Listener
	OnLeave      Listener
	OnMove       Listener
	OnDrop       Listener
}
