package deck

import (
	"log"
	"math"

	"cardstack/internal/domain"
	"cardstack/internal/eventbus"
	"cardstack/internal/source"
)

// Phase is the gesture lifecycle state of the deck
type Phase int

const (
	// PhaseIdle means no gesture is active and drag progress is 0
	PhaseIdle Phase = iota
	// PhaseDragging means a gesture is active and progress tracks it
	PhaseDragging
	// PhaseSettling means the gesture ended and progress is animating
	PhaseSettling
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseSettling:
		return "settling"
	default:
		return "unknown"
	}
}

const (
	// CommitThreshold is the minimum |dragProgress| at gesture end that
	// commits a page transition instead of snapping back
	CommitThreshold = 0.3
	// SettleSeconds is how long the settle animation runs, and therefore how
	// long the post-commit window rebuild is deferred
	SettleSeconds = 0.25
)

// Machine is the drag-transition state machine. It owns the page window, the
// continuous drag progress and the gesture phase, and converts gesture events
// into discrete page transitions. All methods must be called from a single
// goroutine (the UI update loop); the machine does no locking of its own.
//
// State is held explicitly rather than in rendering-framework lifecycle hooks
// so the machine is unit-testable without a rendering host.
type Machine struct {
	src source.PageSource
	bus eventbus.EventBus

	window       domain.Window
	selection    domain.PageID
	dragProgress float64
	phase        Phase

	anim           settle
	pendingRebuild bool
	// settleGen invalidates stale deferred rebuilds: every scheduled rebuild
	// captures the generation it was issued under, and any newer gesture or
	// selection change bumps the counter
	settleGen uint64
}

// NewMachine creates a machine over a page source. The bus may be nil when no
// event publication is wanted (tests).
func NewMachine(src source.PageSource, bus eventbus.EventBus) *Machine {
	return &Machine{src: src, bus: bus}
}

// Init seeds the window from the externally owned selection
func (m *Machine) Init(selection domain.PageID) error {
	w, err := BuildWindow(m.src, selection)
	if err != nil {
		return err
	}
	m.window = w
	m.selection = selection
	m.dragProgress = 0
	m.phase = PhaseIdle
	m.publish(domain.WindowRebuiltEvent{Selection: selection, Size: w.Len(), Index: w.SelectedIndex})
	return nil
}

// Window returns the current page window
func (m *Machine) Window() domain.Window { return m.window }

// Selection returns the currently selected page value
func (m *Machine) Selection() domain.PageID { return m.selection }

// Progress returns the current drag progress
func (m *Machine) Progress() float64 { return m.dragProgress }

// Phase returns the current gesture phase
func (m *Machine) Phase() Phase { return m.phase }

// SettleGen returns the generation token for the most recent deferred
// rebuild. A scheduled timer must hand this token back to OnSettleTimer.
func (m *Machine) SettleGen() uint64 { return m.settleGen }

// EffectivePosition is the single continuous coordinate driving all per-page
// geometry: selected index plus drag progress.
func (m *Machine) EffectivePosition() float64 {
	return float64(m.window.SelectedIndex) + m.dragProgress
}

// OnDragStart begins a gesture. A pending deferred rebuild is applied
// immediately first, so the new gesture starts from a consistent window.
func (m *Machine) OnDragStart() {
	m.flushPendingRebuild()
	m.settleGen++ // invalidate any timer already in flight
	m.phase = PhaseDragging
	m.publish(domain.DragStartedEvent{})
}

// OnDragChanged tracks gesture movement. Translation is the raw drag
// distance along the paging axis and extent the container's extent along the
// same axis; progress is their sign-inverted ratio, deliberately unclamped so
// the deck can overshoot elastically past one page.
func (m *Machine) OnDragChanged(translation, extent float64) {
	if extent <= 0 {
		return
	}
	if m.phase != PhaseDragging {
		m.OnDragStart()
	}
	m.dragProgress = -(translation / extent)
}

// OnDragEnded resolves the gesture. Below the commit threshold the deck
// snaps back to the current page with a bouncy ease; at or past it the
// selected index advances against the sign of the progress (negative progress
// advances, mirroring a physical card stack) and the deck animates a flourish
// before the deferred rebuild recenters the window.
//
// The returned direction is +1, -1, or 0 for a cancel.
func (m *Machine) OnDragEnded() (committed bool, direction int) {
	if m.phase != PhaseDragging {
		return false, 0
	}
	m.publish(domain.DragEndedEvent{Progress: m.dragProgress})

	if math.Abs(m.dragProgress) < CommitThreshold || m.window.Len() < 2 {
		m.cancelGesture()
		return false, 0
	}

	if m.dragProgress < 0 {
		direction = 1
	} else {
		direction = -1
	}
	if !m.commit(direction) {
		// Nowhere to go at the ends of the sequence; resolve as a cancel
		m.cancelGesture()
		return false, 0
	}
	return true, direction
}

// OnFrame advances the settle animation by dt seconds. Returns true while
// further frames are needed.
func (m *Machine) OnFrame(dt float64) bool {
	if m.phase != PhaseSettling {
		return false
	}
	v, done := m.anim.advance(dt)
	m.dragProgress = v
	if done && !m.pendingRebuild {
		m.dragProgress = m.anim.to
		m.phase = PhaseIdle
		return false
	}
	// A committed transition stays in settling until its timer rebuilds the
	// window, keeping the final frame and the rebuild atomic
	return !done
}

// OnSettleTimer fires the deferred post-commit rebuild. A token from an
// older generation belongs to a superseded transition and is ignored.
func (m *Machine) OnSettleTimer(gen uint64) {
	if gen != m.settleGen || !m.pendingRebuild {
		return
	}
	m.pendingRebuild = false
	m.rebuild(m.selection)
}

// OnExternalSelectionChanged reacts to the selection being changed by
// something other than this widget's gesture (an indicator tap, say). An
// immediate neighbor animates through the same commit path to keep visuals
// consistent; any other value is a jump cut with no meaningful direction.
// Returns true when the change animates.
func (m *Machine) OnExternalSelectionChanged(v domain.PageID) bool {
	if v == m.selection {
		return false
	}
	m.flushPendingRebuild()
	m.settleGen++

	if d, adjacent := m.windowDirection(v); adjacent {
		if m.commit(d) {
			return true
		}
	}

	m.rebuild(v)
	return false
}

// GoToIndex navigates to a window position. The index clamps into the
// window's bounds and never wraps.
func (m *Machine) GoToIndex(i int) bool {
	if m.window.Len() == 0 {
		return false
	}
	i = clampIndex(i, m.window.MaxIndex())
	if i == m.window.SelectedIndex {
		return false
	}
	return m.OnExternalSelectionChanged(m.window.Pages[i].Value)
}

// windowDirection reports where v sits relative to the selected page within
// the current window, and whether it is an immediate neighbor.
func (m *Machine) windowDirection(v domain.PageID) (int, bool) {
	for _, p := range m.window.Pages {
		if p.Value != v {
			continue
		}
		d := p.Index - m.window.SelectedIndex
		if d == 1 || d == -1 {
			return d, true
		}
		return d, false
	}
	return 0, false
}

// commit advances the selected index by direction and starts the flourish.
// The index change is applied before control returns so every transform
// computed afterwards reflects the new target; drag progress is re-based by
// the same amount to keep the effective position continuous across the
// commit instant. Returns false when the direction is clamped away at the
// ends of the sequence.
func (m *Machine) commit(direction int) bool {
	target := clampIndex(m.window.SelectedIndex+direction, m.window.MaxIndex())
	if target == m.window.SelectedIndex {
		return false
	}

	previous := m.selection
	m.window.SelectedIndex = target
	m.selection = m.window.Pages[target].Value
	m.dragProgress -= float64(direction)

	m.anim = settle{
		from:     m.dragProgress,
		to:       0,
		duration: SettleSeconds,
		ease:     easeOutCubic,
	}
	m.phase = PhaseSettling
	m.pendingRebuild = true
	m.settleGen++

	m.publish(domain.TransitionCommittedEvent{Direction: direction, From: previous, To: m.selection})
	m.publish(domain.SelectionChangedEvent{Previous: previous, Current: m.selection, Index: target})
	return true
}

// cancelGesture animates progress back to zero without changing the index
func (m *Machine) cancelGesture() {
	m.publish(domain.TransitionCancelledEvent{Progress: m.dragProgress})
	if m.dragProgress == 0 {
		m.phase = PhaseIdle
		return
	}
	m.anim = settle{
		from:     m.dragProgress,
		to:       0,
		duration: SettleSeconds,
		ease:     easeOutBack,
	}
	m.phase = PhaseSettling
}

// flushPendingRebuild applies a deferred rebuild right away instead of
// leaving it racing against newer input
func (m *Machine) flushPendingRebuild() {
	if !m.pendingRebuild {
		return
	}
	m.pendingRebuild = false
	m.rebuild(m.selection)
}

// rebuild replaces the window and selected index atomically, centered on the
// given selection, with progress reset and no animation
func (m *Machine) rebuild(selection domain.PageID) {
	w, err := BuildWindow(m.src, selection)
	if err != nil {
		log.Printf("window rebuild for %q failed: %v", selection, err)
		return
	}
	previous := m.selection
	m.window = w
	m.selection = selection
	m.dragProgress = 0
	m.phase = PhaseIdle
	m.pendingRebuild = false

	m.publish(domain.WindowRebuiltEvent{Selection: selection, Size: w.Len(), Index: w.SelectedIndex})
	if previous != selection {
		m.publish(domain.SelectionChangedEvent{Previous: previous, Current: selection, Index: w.SelectedIndex})
	}
}

func (m *Machine) publish(e domain.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}
