package drop

import "github.com/AnatoleLucet/drop/dom"

// Kind is a drop event kind.
type Kind int

const (
	// Activate fires on every candidate zone when a drag they accept starts.
	Activate Kind = iota

	// Deactivate fires on every candidate zone when the drag ends.
	Deactivate

	// Enter fires when a zone becomes the drag's target.
	Enter

	// Leave fires when a zone stops being the drag's target.
	Leave

	// Move fires on the target zone for every drag movement.
	Move

	// Drop fires on the target zone when the drag is released over it.
	Drop
)

var kindNames = [...]string{
	"dropactivate",
	"dropdeactivate",
	"dragenter",
	"dragleave",
	"dropmove",
	"drop",
}

func (k Kind) String() string {
	if k < Activate || k > Drop {
		return "unknown"
	}

	return kindNames[k]
}

// Event is one drop event firing. Events are constructed fresh for every
// firing and never reused; Reject is the only sanctioned mutation point.
type Event struct {
	Kind Kind

	// Target is the concrete element of the dropzone the event fires on.
	Target dom.Element

	// Dropzone is the interactable owning Target.
	Dropzone Interactable

	// Draggable is the interactable being dragged.
	Draggable Interactable

	// RelatedTarget is the element being dragged.
	RelatedTarget dom.Element

	// DragEvent is the drag event behind the step that derived this event.
	DragEvent DragEvent

	// DragEnter is the entered element. Set on Enter events only.
	DragEnter dom.Element

	// DragLeave is the element that was left. Set on Leave events only.
	DragLeave dom.Element

	// PrevDropzone is the zone that was left. Set on Leave events only.
	PrevDropzone Interactable

	state *dropState
}

// Reject vetoes the drop for the current target. It is honored when called
// during an Enter or Move firing and ignored otherwise. The veto holds while
// resolution keeps landing on the same dropzone and element, and clears as
// soon as it lands anywhere else.
func (e *Event) Reject() {
	if e.state == nil {
		return
	}

	if e.Kind == Enter || e.Kind == Move {
		e.state.rejected = true
	}
}
