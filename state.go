package drop

import "github.com/AnatoleLucet/drop/dom"

// resolved is a full snapshot of a drop target: the zone and its element are
// always set, or cleared, together.
type resolved struct {
	zone Interactable
	el   dom.Element
}

// derivedEvents is the event set derived from one move/end step, cleared
// after dispatch. deactivate is a broadcast prototype; the dispatcher stamps
// a fresh copy per active candidate.
type derivedEvents struct {
	enter      *Event
	leave      *Event
	move       *Event
	drop       *Event
	deactivate *Event
}

// dropState tracks one drag interaction's drop resolution from prepare to
// stop.
type dropState struct {
	cur, prev resolved

	// rejected is set through Event.Reject and holds while resolution keeps
	// landing on the same target.
	rejected bool

	// activeDrops is the drag's candidate set; nil outside an active drag.
	activeDrops []Candidate

	events derivedEvents
}

func newDropState() *dropState { return &dropState{} }

// start computes the active-drops set and fires the activation broadcast on
// every candidate, whether or not anything resolves yet.
func (s *dropState) start(reg Registry, itn Interaction, drag DragEvent) {
	s.activeDrops = collectWithRects(reg, itn.Element())
	s.broadcast(s.newEvent(Activate, resolved{}, itn, drag))
}

// update runs one move/end step: re-resolve the target, recompute the
// rejection flag, shift cur into prev, and derive the step's events.
func (s *dropState) update(reg Registry, itn Interaction, drag DragEvent, pointer PointerEvent, dynamic, end bool) {
	if dynamic {
		s.activeDrops = collectWithRects(reg, itn.Element())
	}

	res := resolveDrop(s.activeDrops, drag, pointer, itn.Interactable(), itn.Element())

	// a veto is sticky only while resolution stays on the vetoed target
	s.rejected = s.rejected && res != nil &&
		res.Dropzone == s.cur.zone && res.Element == s.cur.el

	s.prev = s.cur
	if res != nil {
		s.cur = resolved{zone: res.Dropzone, el: res.Element}
	} else {
		s.cur = resolved{}
	}

	if !s.rejected {
		if s.cur.el != s.prev.el {
			if s.prev.zone != nil {
				s.events.leave = s.newEvent(Leave, s.prev, itn, drag)
			}
			if s.cur.zone != nil {
				s.events.enter = s.newEvent(Enter, s.cur, itn, drag)
			}
		}

		if s.cur.zone != nil {
			if end {
				s.events.drop = s.newEvent(Drop, s.cur, itn, drag)
			} else {
				s.events.move = s.newEvent(Move, s.cur, itn, drag)
			}
		}
	}

	// the end of the drag deactivates every candidate, vetoed or not
	if end {
		s.events.deactivate = s.newEvent(Deactivate, resolved{}, itn, drag)
	}
}

// stop tears the state down. Safe to call on an already-idle state.
func (s *dropState) stop() {
	s.activeDrops = nil
	s.events = derivedEvents{}
	s.cur = resolved{}
	s.prev = resolved{}
	s.rejected = false
}

// newEvent builds one drop event for the step's drag context.
func (s *dropState) newEvent(kind Kind, tgt resolved, itn Interaction, drag DragEvent) *Event {
	ev := &Event{
		Kind:          kind,
		Target:        tgt.el,
		Dropzone:      tgt.zone,
		Draggable:     itn.Interactable(),
		RelatedTarget: itn.Element(),
		DragEvent:     drag,
		state:         s,
	}

	switch kind {
	case Enter:
		ev.DragEnter = tgt.el
	case Leave:
		ev.DragLeave = tgt.el
		ev.PrevDropzone = tgt.zone
	}

	return ev
}
