package drop

import (
	"slices"

	"github.com/AnatoleLucet/drop/dom"
)

// Zone is the dropzone trait of an interactable: its drop configuration, its
// listeners, and its qualification test. Compose one into an interactable and
// return it from Dropzone().
type Zone struct {
	owner Interactable
	opts  Options

	nextToken int
	listeners map[Kind][]registration
}

type registration struct {
	token int
	fn    Listener
}

// NewZone returns a zone owned by the given interactable. The owner provides
// the zone's geometry during qualification tests.
func NewZone(owner Interactable, opts Options) *Zone {
	return &Zone{owner: owner, opts: opts}
}

// Configure replaces the zone's configuration wholesale. Listeners registered
// with On are unaffected.
func (z *Zone) Configure(opts Options) { z.opts = opts }

// Config returns the current configuration.
func (z *Zone) Config() Options { return z.opts }

// SetEnabled toggles the zone without touching the rest of the configuration.
func (z *Zone) SetEnabled(v bool) { z.opts.Enabled = v }

// Enabled reports whether the zone takes part in candidate collection. A nil
// zone is disabled.
func (z *Zone) Enabled() bool { return z != nil && z.opts.Enabled }

// On registers an extra listener for kind, after any listener configured in
// Options, and returns a token for Off.
func (z *Zone) On(kind Kind, fn Listener) int {
	if z.listeners == nil {
		z.listeners = make(map[Kind][]registration)
	}

	z.nextToken++
	z.listeners[kind] = append(z.listeners[kind], registration{z.nextToken, fn})

	return z.nextToken
}

// Off removes the listener registered under token.
func (z *Zone) Off(kind Kind, token int) {
	regs := z.listeners[kind]

	for i, reg := range regs {
		if reg.token == token {
			z.listeners[kind] = slices.Delete(regs, i, i+1)
			return
		}
	}
}

// Check is the zone's qualification test, exposed for external invocation.
// A nil rect falls back to the owner's current geometry for dropElement.
func (z *Zone) Check(drag DragEvent, pointer PointerEvent, draggable Interactable, draggedElement, dropElement dom.Element, rect *dom.Rect) bool {
	var (
		r  dom.Rect
		ok bool
	)

	if rect != nil {
		r, ok = *rect, true
	} else if z.owner != nil {
		r, ok = z.owner.Rect(dropElement)
	}

	return dropCheck(z, drag, pointer, draggable, draggedElement, dropElement, r, ok)
}

// optionListener returns the listener configured in Options for kind.
func (z *Zone) optionListener(kind Kind) Listener {
	switch kind {
	case Activate:
		return z.opts.OnActivate
	case Deactivate:
		return z.opts.OnDeactivate
	case Enter:
		return z.opts.OnEnter
	case Leave:
		return z.opts.OnLeave
	case Move:
		return z.opts.OnMove
	case Drop:
		return z.opts.OnDrop
	}

	return nil
}

// fire delivers one event to the zone's listeners, Options listener first,
// then On registrations in registration order. A Stop verdict ends delivery
// for this firing only.
func (z *Zone) fire(ev *Event) {
	if z == nil {
		return
	}

	if fn := z.optionListener(ev.Kind); fn != nil {
		if fn(ev) == Stop {
			return
		}
	}

	// clonning to avoid mutation during iteration
	for _, reg := range slices.Clone(z.listeners[ev.Kind]) {
		if reg.fn(ev) == Stop {
			return
		}
	}
}
