package drop

import (
	"iter"
	"slices"

	"github.com/AnatoleLucet/drop/dom"
)

// fakeElement is a minimal host tree node for tests. Matches compares the
// selector against the element's class verbatim.
type fakeElement struct {
	name     string
	class    string
	parent   *fakeElement
	children []*fakeElement
}

func newElement(name, class string, parent *fakeElement) *fakeElement {
	el := &fakeElement{name: name, class: class, parent: parent}
	if parent != nil {
		parent.children = append(parent.children, el)
	}

	return el
}

func (f *fakeElement) Parent() dom.Element {
	if f.parent == nil {
		return nil
	}

	return f.parent
}

func (f *fakeElement) ChildIndex() int {
	if f.parent == nil {
		return 0
	}

	return slices.Index(f.parent.children, f)
}

func (f *fakeElement) Matches(selector string) bool { return f.class == selector }

func (f *fakeElement) FindAll(selector string) []dom.Element {
	var out []dom.Element

	var walk func(*fakeElement)
	walk = func(el *fakeElement) {
		for _, c := range el.children {
			if c.Matches(selector) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(f)

	return out
}

type fakeInteractable struct {
	zone   *Zone
	els    []dom.Element
	rects  map[dom.Element]dom.Rect
	origin dom.Point
}

func newInteractable(els ...dom.Element) *fakeInteractable {
	return &fakeInteractable{els: els, rects: map[dom.Element]dom.Rect{}}
}

func (f *fakeInteractable) dropzone(opts Options) *fakeInteractable {
	f.zone = NewZone(f, opts)
	return f
}

func (f *fakeInteractable) rect(el dom.Element, r dom.Rect) *fakeInteractable {
	f.rects[el] = r
	return f
}

func (f *fakeInteractable) Dropzone() *Zone                 { return f.zone }
func (f *fakeInteractable) TargetElements() []dom.Element   { return f.els }
func (f *fakeInteractable) Origin() dom.Point               { return f.origin }
func (f *fakeInteractable) Rect(el dom.Element) (dom.Rect, bool) {
	r, ok := f.rects[el]
	return r, ok
}

// dz builds a one-element dropzone whose element currently sits at r.
func dz(el dom.Element, r dom.Rect, opts Options) *fakeInteractable {
	return newInteractable(el).rect(el, r).dropzone(opts)
}

type fakeRegistry struct{ items []Interactable }

func (r *fakeRegistry) add(items ...Interactable) { r.items = append(r.items, items...) }

func (r *fakeRegistry) Interactables() iter.Seq[Interactable] {
	return func(yield func(Interactable) bool) {
		for _, it := range r.items {
			if !yield(it) {
				return
			}
		}
	}
}

type fakeInteraction struct {
	action string
	it     Interactable
	el     dom.Element
}

func (f *fakeInteraction) ActionType() string         { return f.action }
func (f *fakeInteraction) Interactable() Interactable { return f.it }
func (f *fakeInteraction) Element() dom.Element       { return f.el }

// ptEvent stands in for both the raw pointer event and the drag event of a
// step; the page position is all the engine reads from either.
type ptEvent struct{ p dom.Point }

func (e ptEvent) PagePoint() dom.Point { return e.p }

// dragSim walks one interaction through the lifecycle signals the host
// engine would deliver.
type dragSim struct {
	engine *Engine
	itn    *fakeInteraction
}

func newDrag(engine *Engine, draggable Interactable, el dom.Element) *dragSim {
	return &dragSim{
		engine: engine,
		itn:    &fakeInteraction{action: ActionDrag, it: draggable, el: el},
	}
}

func (d *dragSim) arg(p dom.Point) Arg {
	ev := ptEvent{p}
	return Arg{Interaction: d.itn, Pointer: ev, Drag: ev}
}

func (d *dragSim) start(p dom.Point) {
	d.engine.Handle(PhaseBeforeStart, d.arg(p))
	d.engine.Handle(PhaseAfterStart, d.arg(p))
}

func (d *dragSim) move(p dom.Point) {
	d.engine.Handle(PhaseMove, d.arg(p))
	d.engine.Handle(PhaseAfterMove, d.arg(p))
}

func (d *dragSim) end(p dom.Point) {
	d.engine.Handle(PhaseEnd, d.arg(p))
	d.engine.Handle(PhaseAfterEnd, d.arg(p))
}

func (d *dragSim) stop() {
	d.engine.Handle(PhaseStop, Arg{Interaction: d.itn})
}

// recorder captures event firings as "<kind> <target>" strings.
type recorder struct{ log []string }

func (r *recorder) record(ev *Event) Propagation {
	r.log = append(r.log, eventLabel(ev))
	return Continue
}

func eventLabel(ev *Event) string {
	name := "none"
	if el, ok := ev.Target.(*fakeElement); ok {
		name = el.name
	}

	return ev.Kind.String() + " " + name
}

// recording returns enabled options routing every event kind into r.
func recording(r *recorder) Options {
	return Options{
		Enabled:      true,
		OnActivate:   r.record,
		OnDeactivate: r.record,
		OnEnter:      r.record,
		OnLeave:      r.record,
		OnMove:       r.record,
		OnDrop:       r.record,
	}
}
