package gallery

import (
	"sync"
	"time"

	"betagym/internal/pkg/clock"
)

// DefaultTransition is how long the grid stays dimmed after a selection.
const DefaultTransition = 300 * time.Millisecond

// State is an immutable snapshot of a Gallery.
type State struct {
	Active  Category `json:"active"`
	Visible []Item   `json:"visible"`
	Loading bool     `json:"loading"`
	Empty   bool     `json:"empty"`
}

// Gallery is the per-visitor filter view-model.
type Gallery struct {
	mu         sync.Mutex
	notifyMu   sync.Mutex
	clock      clock.Clock
	transition time.Duration
	items      []Item
	active     Category
	visible    []Item
	loading    bool
	timer      clock.Timer
	closed     bool
	onChange   func(State)
}

// Option configures a Gallery.
type Option func(*Gallery)

func WithClock(c clock.Clock) Option {
	return func(g *Gallery) { g.clock = c }
}

func WithTransition(d time.Duration) Option {
	return func(g *Gallery) { g.transition = d }
}

func WithItems(items []Item) Option {
	return func(g *Gallery) {
		g.items = make([]Item, len(items))
		copy(g.items, items)
	}
}

// OnChange registers an observer called after every state change,
// outside the gallery lock and in state order.
func OnChange(fn func(State)) Option {
	return func(g *Gallery) { g.onChange = fn }
}

// New returns a gallery showing every item.
func New(opts ...Option) *Gallery {
	g := &Gallery{
		clock:      clock.Real(),
		transition: DefaultTransition,
		items:      DefaultItems(),
		active:     CategoryAll,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.visible = Filter(g.items, g.active)
	return g
}

// SelectCategory makes c the active filter. The visible list is recomputed
// right away; Loading stays true for the transition window.
func (g *Gallery) SelectCategory(c Category) error {
	if !c.Valid() {
		return ErrUnknownCategory
	}

	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return ErrGalleryClosed
	}
	g.active = c
	g.visible = Filter(g.items, c)
	g.loading = true
	if g.timer != nil {
		g.timer.Stop()
	}
	if g.transition > 0 {
		g.timer = g.clock.AfterFunc(g.transition, g.endTransition)
	} else {
		g.timer = nil
		g.loading = false
	}
	st := g.snapshotLocked()
	g.unlockAndNotify(st)
	return nil
}

func (g *Gallery) endTransition() {
	g.mu.Lock()
	if g.closed || !g.loading {
		g.mu.Unlock()
		return
	}
	g.loading = false
	g.timer = nil
	st := g.snapshotLocked()
	g.unlockAndNotify(st)
}

func (g *Gallery) Active() Category {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active
}

func (g *Gallery) Visible() []Item {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]Item, len(g.visible))
	copy(out, g.visible)
	return out
}

func (g *Gallery) Loading() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loading
}

// Empty reports the "no results" state.
func (g *Gallery) Empty() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.visible) == 0
}

func (g *Gallery) Snapshot() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

// Close cancels the pending transition. It is safe to call more than once.
func (g *Gallery) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return
	}
	g.closed = true
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
}

func (g *Gallery) snapshotLocked() State {
	visible := make([]Item, len(g.visible))
	copy(visible, g.visible)
	return State{
		Active:  g.active,
		Visible: visible,
		Loading: g.loading,
		Empty:   len(visible) == 0,
	}
}

// unlockAndNotify releases the state lock and reports st. Observers see
// states in the order they were produced.
func (g *Gallery) unlockAndNotify(st State) {
	g.notifyMu.Lock()
	defer g.notifyMu.Unlock()
	g.mu.Unlock()
	if g.onChange != nil {
		g.onChange(st)
	}
}
