package drop

// fire delivers one step's derived events in fixed order: leave, move, enter,
// drop, then the end-of-drag deactivate broadcast. Every firing gets its own
// Event value, so a Stop verdict in one firing never leaks into the next.
func (s *dropState) fire() {
	ev := s.events

	if ev.leave != nil {
		ev.leave.Dropzone.Dropzone().fire(ev.leave)
	}
	if ev.move != nil {
		ev.move.Dropzone.Dropzone().fire(ev.move)
	}
	if ev.enter != nil {
		ev.enter.Dropzone.Dropzone().fire(ev.enter)
	}
	if ev.drop != nil {
		ev.drop.Dropzone.Dropzone().fire(ev.drop)
	}
	if ev.deactivate != nil {
		s.broadcast(ev.deactivate)
	}

	s.prev = s.cur
	s.events = derivedEvents{}
}

// broadcast stamps a fresh copy of the prototype event for every active
// candidate and fires it on the candidate's zone.
func (s *dropState) broadcast(proto *Event) {
	for _, cand := range s.activeDrops {
		ev := *proto
		ev.Target = cand.Element
		ev.Dropzone = cand.Dropzone

		cand.Dropzone.Dropzone().fire(&ev)
	}
}
