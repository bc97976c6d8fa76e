package drop

import (
	"github.com/petermattis/goid"
	"github.com/rs/zerolog"
)

// Phase is one drag lifecycle signal of the host interaction engine.
type Phase int

const (
	// PhaseBeforeStart arms drop tracking for an interaction about to become
	// a drag.
	PhaseBeforeStart Phase = iota

	// PhaseAfterStart collects the active dropzones and fires dropactivate
	// on each of them.
	PhaseAfterStart

	// PhaseMove re-resolves the drop target for a drag movement.
	PhaseMove

	// PhaseEnd re-resolves the drop target for the drag's release.
	PhaseEnd

	// PhaseAfterMove fires the events derived by PhaseMove.
	PhaseAfterMove

	// PhaseAfterEnd fires the events derived by PhaseEnd.
	PhaseAfterEnd

	// PhaseStop tears down the interaction's drop state.
	PhaseStop
)

// Arg is the payload delivered with every lifecycle signal.
type Arg struct {
	Interaction Interaction

	// Pointer is the raw pointer event behind the signal.
	Pointer PointerEvent

	// Drag is the drag event the host engine derived from it; nil for
	// PhaseStop.
	Drag DragEvent
}

// Engine binds dropzone resolution to one host interaction engine.
//
// An Engine is single-threaded: every Handle call must come from the
// goroutine that made the first one. Independent engines are fully
// independent, as are concurrent interactions within one engine.
type Engine struct {
	registry Registry
	dynamic  bool
	log      zerolog.Logger

	gid    int64
	states map[Interaction]*dropState
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithDynamicDrop makes the engine recompute the candidate set on every move
// instead of once at drag start.
func WithDynamicDrop(v bool) EngineOption {
	return func(e *Engine) { e.dynamic = v }
}

// WithLogger routes drop-resolution debug logging to the given logger.
func WithLogger(log zerolog.Logger) EngineOption {
	return func(e *Engine) { e.log = log }
}

// NewEngine returns an engine resolving drops against the given registry.
func NewEngine(reg Registry, opts ...EngineOption) *Engine {
	e := &Engine{
		registry: reg,
		log:      zerolog.Nop(),
		gid:      -1,
		states:   make(map[Interaction]*dropState),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// DynamicDrop reports whether the candidate set is recomputed on every move.
func (e *Engine) DynamicDrop() bool { return e.dynamic }

// SetDynamicDrop toggles per-move candidate recomputation.
func (e *Engine) SetDynamicDrop(v bool) { e.dynamic = v }

// Handle reacts to one lifecycle signal. Signals for interactions whose
// action is not a drag are ignored, as are move/fire/stop signals for
// interactions that never armed.
func (e *Engine) Handle(phase Phase, arg Arg) {
	e.checkGoroutine()

	itn := arg.Interaction
	if itn == nil || itn.ActionType() != ActionDrag {
		return
	}

	switch phase {
	case PhaseBeforeStart:
		e.states[itn] = newDropState()

	case PhaseAfterStart:
		if s := e.states[itn]; s != nil {
			s.start(e.registry, itn, arg.Drag)
			e.log.Debug().Int("active_drops", len(s.activeDrops)).Msg("drag started")
		}

	case PhaseMove, PhaseEnd:
		if s := e.states[itn]; s != nil {
			before := s.cur
			s.update(e.registry, itn, arg.Drag, arg.Pointer, e.dynamic, phase == PhaseEnd)

			if s.cur != before {
				e.log.Debug().
					Bool("target", s.cur.zone != nil).
					Bool("rejected", s.rejected).
					Msg("drop target changed")
			}
		}

	case PhaseAfterMove, PhaseAfterEnd:
		if s := e.states[itn]; s != nil {
			s.fire()
		}

	case PhaseStop:
		if s := e.states[itn]; s != nil {
			s.stop()
			delete(e.states, itn)
		}
	}
}

// checkGoroutine pins the engine to the goroutine of its first Handle call.
func (e *Engine) checkGoroutine() {
	gid := goid.Get()

	if e.gid == -1 {
		e.gid = gid
		return
	}

	if e.gid != gid {
		panic("drop: Engine.Handle called from multiple goroutines")
	}
}
