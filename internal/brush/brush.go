// Package brush implements a horizontal range selector driven by pointer
// input. It works purely in pixel space; callers convert to data space.
package brush

import "math"

const DefaultHandleSize = 6

// Phase identifies which part of a gesture an Event belongs to.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseBrush
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseBrush:
		return "brush"
	case PhaseEnd:
		return "end"
	}
	return "unknown"
}

// ParsePhase is the inverse of Phase.String.
func ParsePhase(s string) (Phase, bool) {
	switch s {
	case "start":
		return PhaseStart, true
	case "brush":
		return PhaseBrush, true
	case "end":
		return PhaseEnd, true
	}
	return 0, false
}

// State is the drag state machine: Idle -> Dragging -> Released -> Idle.
type State int

const (
	Idle State = iota
	Dragging
	Released
)

// Mode is what a press grabbed.
type Mode int

const (
	ModeNone Mode = iota
	ModeSelect
	ModeMove
	ModeResizeWest
	ModeResizeEast
)

// Extent is the rectangle the brush may occupy.
type Extent struct {
	X0, Y0, X1, Y1 float64
}

func (e Extent) clampX(x float64) float64 {
	return math.Max(e.X0, math.Min(e.X1, x))
}

func (e Extent) containsY(y float64) bool {
	return y >= e.Y0 && y <= e.Y1
}

// Event reports the brush position after each phase of a gesture.
// Selection is nil when the brushed extent is empty.
type Event struct {
	Phase     Phase
	Mode      Mode
	Selection *[2]float64
}

// Brush is a horizontal brush. It is not safe for concurrent use; every
// frontend drives it from its own update loop.
type Brush struct {
	HandleSize float64

	extent    Extent
	selection *[2]float64
	state     State
	mode      Mode

	// pointer position and selection at the time of the press
	anchor float64
	origin [2]float64

	onEvent func(Event)
}

func New(onEvent func(Event)) *Brush {
	return &Brush{
		HandleSize: DefaultHandleSize,
		onEvent:    onEvent,
	}
}

// SetExtent changes the brushable area and clamps the current selection to it.
// A selection that collapses is cleared, unless a gesture is running, since a
// fresh press starts out empty.
func (b *Brush) SetExtent(e Extent) {
	b.extent = e
	if b.selection == nil {
		return
	}
	lo, hi := e.clampX(b.selection[0]), e.clampX(b.selection[1])
	if lo == hi && b.state != Dragging {
		b.selection = nil
		return
	}
	b.selection = &[2]float64{lo, hi}
}

func (b *Brush) Extent() Extent {
	return b.extent
}

// Selection returns a copy of the current pixel selection, or nil.
func (b *Brush) Selection() *[2]float64 {
	if b.selection == nil {
		return nil
	}
	s := *b.selection
	return &s
}

func (b *Brush) State() State {
	return b.state
}

// Move repositions the brush programmatically. It emits no event. A nil or
// empty selection clears the brush.
func (b *Brush) Move(sel *[2]float64) {
	if sel == nil {
		b.selection = nil
		return
	}
	lo, hi := math.Min(sel[0], sel[1]), math.Max(sel[0], sel[1])
	lo, hi = b.extent.clampX(lo), b.extent.clampX(hi)
	if lo == hi {
		b.selection = nil
		return
	}
	b.selection = &[2]float64{lo, hi}
}

// Press begins a gesture at (x, y). It returns false when the point lies
// outside the extent or a gesture is already running.
func (b *Brush) Press(x, y float64) bool {
	if b.state != Idle || !b.extent.containsY(y) || x < b.extent.X0 || x > b.extent.X1 {
		return false
	}

	b.mode = b.grab(x)
	b.anchor = x
	switch b.mode {
	case ModeSelect:
		b.selection = &[2]float64{x, x}
	default:
		b.origin = *b.selection
	}

	b.state = Dragging
	b.emit(PhaseStart)
	return true
}

func (b *Brush) grab(x float64) Mode {
	if b.selection == nil {
		return ModeSelect
	}
	half := b.HandleSize / 2
	lo, hi := b.selection[0], b.selection[1]
	switch {
	case math.Abs(x-hi) <= half:
		return ModeResizeEast
	case math.Abs(x-lo) <= half:
		return ModeResizeWest
	case x > lo && x < hi:
		return ModeMove
	}
	return ModeSelect
}

// Drag continues the gesture with the pointer at x.
func (b *Brush) Drag(x float64) {
	if b.state != Dragging {
		return
	}
	b.update(x)
	b.emit(PhaseBrush)
}

// Release ends the gesture with the pointer at x. An empty selection is
// cleared, as a click without movement deselects.
func (b *Brush) Release(x float64) {
	if b.state != Dragging {
		return
	}
	b.update(x)
	b.state = Released
	if b.selection != nil && b.selection[0] == b.selection[1] {
		b.selection = nil
	}
	b.emit(PhaseEnd)
	b.state = Idle
	b.mode = ModeNone
}

// Cancel abandons a running gesture and restores the selection it started from.
func (b *Brush) Cancel() {
	if b.state != Dragging {
		return
	}
	if b.mode == ModeSelect {
		b.selection = nil
	} else {
		o := b.origin
		b.selection = &o
	}
	b.state = Idle
	b.mode = ModeNone
}

func (b *Brush) update(x float64) {
	x = b.extent.clampX(x)
	switch b.mode {
	case ModeSelect:
		a := b.extent.clampX(b.anchor)
		b.selection = &[2]float64{math.Min(a, x), math.Max(a, x)}
	case ModeMove:
		dx := x - b.anchor
		dx = math.Max(b.extent.X0-b.origin[0], math.Min(b.extent.X1-b.origin[1], dx))
		b.selection = &[2]float64{b.origin[0] + dx, b.origin[1] + dx}
	case ModeResizeWest:
		e := b.origin[1]
		b.selection = &[2]float64{math.Min(x, e), math.Max(x, e)}
	case ModeResizeEast:
		w := b.origin[0]
		b.selection = &[2]float64{math.Min(w, x), math.Max(w, x)}
	}
}

func (b *Brush) emit(phase Phase) {
	if b.onEvent == nil {
		return
	}
	ev := Event{Phase: phase, Mode: b.mode}
	if b.selection != nil && b.selection[0] != b.selection[1] {
		s := *b.selection
		ev.Selection = &s
	}
	b.onEvent(ev)
}
