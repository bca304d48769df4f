package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"betagym/internal/domain/contact"
	"betagym/internal/domain/gallery"
	"betagym/internal/domain/live"
	"betagym/internal/metrics"
	"betagym/internal/pkg/clock"
)

const (
	DefaultIdleTTL     = 30 * time.Minute
	DefaultMaxVisitors = 10000
)

// Publisher receives view-model changes of a session.
type Publisher interface {
	Publish(sessionID string, event live.Event)
	Disconnect(sessionID string)
}

// Visitor holds the view-models of one browser session.
type Visitor struct {
	ID      string
	Gallery *gallery.Gallery
	Form    *contact.Form

	lastSeen time.Time
}

func (v *Visitor) close() {
	v.Gallery.Close()
	v.Form.Close()
}

// Registry owns every live Visitor. Idle visitors are reaped, which tears
// down their timers and cancels their in-flight submissions.
type Registry struct {
	mu       sync.Mutex
	visitors map[string]*Visitor
	closed   bool

	submitter      contact.Submitter
	publisher      Publisher
	clock          clock.Clock
	idleTTL        time.Duration
	transition     time.Duration
	successDisplay time.Duration
	maxVisitors    int
	metrics        *metrics.Metrics
	log            *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry)

func WithPublisher(p Publisher) Option {
	return func(r *Registry) { r.publisher = p }
}

func WithClock(c clock.Clock) Option {
	return func(r *Registry) { r.clock = c }
}

func WithIdleTTL(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.idleTTL = d
		}
	}
}

func WithTransition(d time.Duration) Option {
	return func(r *Registry) { r.transition = d }
}

func WithSuccessDisplay(d time.Duration) Option {
	return func(r *Registry) { r.successDisplay = d }
}

func WithMaxVisitors(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.maxVisitors = n
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Registry) { r.metrics = m }
}

func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) { r.log = l }
}

func NewRegistry(submitter contact.Submitter, opts ...Option) *Registry {
	r := &Registry{
		visitors:       make(map[string]*Visitor),
		submitter:      submitter,
		clock:          clock.Real(),
		idleTTL:        DefaultIdleTTL,
		transition:     gallery.DefaultTransition,
		successDisplay: contact.DefaultSuccessDisplay,
		maxVisitors:    DefaultMaxVisitors,
		log:            zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get returns the visitor of sessionID, creating it on first use, and
// marks it as seen.
// When the registry is full the least recently seen visitor is evicted.
func (r *Registry) Get(sessionID string) (*Visitor, error) {
	r.mu.Lock()

	if r.closed {
		r.mu.Unlock()
		return nil, ErrRegistryClosed
	}
	now := r.clock.Now()
	if v, ok := r.visitors[sessionID]; ok {
		v.lastSeen = now
		r.mu.Unlock()
		return v, nil
	}

	var evicted *Visitor
	if len(r.visitors) >= r.maxVisitors {
		evicted = r.oldestLocked()
		delete(r.visitors, evicted.ID)
	}

	v := r.newVisitor(sessionID)
	v.lastSeen = now
	r.visitors[sessionID] = v
	r.metrics.SetSessions(len(r.visitors))
	r.mu.Unlock()

	r.log.Debug("visitor session opened", zap.String("session_id", sessionID))
	if evicted != nil {
		r.drop(evicted)
		r.log.Info("evicted least recently seen session",
			zap.String("session_id", evicted.ID),
			zap.Time("last_seen", evicted.lastSeen),
		)
	}
	return v, nil
}

func (r *Registry) oldestLocked() *Visitor {
	var oldest *Visitor
	for _, v := range r.visitors {
		if oldest == nil || v.lastSeen.Before(oldest.lastSeen) {
			oldest = v
		}
	}
	return oldest
}

func (r *Registry) drop(v *Visitor) {
	v.close()
	if r.publisher != nil {
		r.publisher.Disconnect(v.ID)
	}
}

func (r *Registry) newVisitor(sessionID string) *Visitor {
	return &Visitor{
		ID: sessionID,
		Gallery: gallery.New(
			gallery.WithClock(r.clock),
			gallery.WithTransition(r.transition),
			gallery.OnChange(func(st gallery.State) {
				r.publish(sessionID, live.Event{Type: live.EventGallery, Payload: st})
			}),
		),
		Form: contact.NewForm(r.submitter,
			contact.WithClock(r.clock),
			contact.WithSuccessDisplay(r.successDisplay),
			contact.WithLogger(r.log),
			contact.WithObserver(func(st contact.State) {
				r.publish(sessionID, live.Event{Type: live.EventContact, Payload: st})
			}),
		),
	}
}

func (r *Registry) publish(sessionID string, ev live.Event) {
	if r.publisher != nil {
		r.publisher.Publish(sessionID, ev)
	}
}

// Gallery implements gallery.Provider.
func (r *Registry) Gallery(sessionID string) (*gallery.Gallery, error) {
	v, err := r.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return v.Gallery, nil
}

// Form implements contact.Provider.
func (r *Registry) Form(sessionID string) (*contact.Form, error) {
	v, err := r.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return v.Form, nil
}

// Hello returns the current state of both view-models for a new socket.
func (r *Registry) Hello(sessionID string) ([]live.Event, error) {
	v, err := r.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return []live.Event{
		{Type: live.EventGallery, Payload: v.Gallery.Snapshot()},
		{Type: live.EventContact, Payload: v.Form.Snapshot()},
	}, nil
}

// Receive applies a message sent over the live socket.
func (r *Registry) Receive(sessionID string, msg live.ClientMessage) error {
	switch msg.Type {
	case live.MessageSelectCategory:
		c, err := gallery.ParseCategory(msg.Category)
		if err != nil {
			return err
		}
		g, err := r.Gallery(sessionID)
		if err != nil {
			return err
		}
		if err := g.SelectCategory(c); err != nil {
			return err
		}
		r.metrics.ObserveSelection(c.String())
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownMessage, msg.Type)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.visitors)
}

// Reap closes visitors idle for longer than the idle TTL and returns how
// many were removed.
func (r *Registry) Reap() int {
	r.mu.Lock()
	cutoff := r.clock.Now().Add(-r.idleTTL)
	var idle []*Visitor
	for id, v := range r.visitors {
		if v.lastSeen.Before(cutoff) {
			idle = append(idle, v)
			delete(r.visitors, id)
		}
	}
	r.metrics.SetSessions(len(r.visitors))
	r.mu.Unlock()

	for _, v := range idle {
		r.drop(v)
	}
	if len(idle) > 0 {
		r.log.Info("reaped idle sessions", zap.Int("count", len(idle)))
	}
	return len(idle)
}

// Run reaps idle visitors every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.Reap()
		}
	}
}

// Close tears down every visitor. Later Get calls fail.
func (r *Registry) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	all := make([]*Visitor, 0, len(r.visitors))
	for _, v := range r.visitors {
		all = append(all, v)
	}
	r.visitors = make(map[string]*Visitor)
	r.metrics.SetSessions(0)
	r.mu.Unlock()

	for _, v := range all {
		v.close()
	}
}
