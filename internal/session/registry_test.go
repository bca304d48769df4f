package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"betagym/internal/domain/contact"
	"betagym/internal/domain/gallery"
	"betagym/internal/domain/live"
	"betagym/internal/pkg/clock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recorder struct {
	mu           sync.Mutex
	events       map[string][]live.Event
	disconnected []string
}

func newRecorder() *recorder {
	return &recorder{events: map[string][]live.Event{}}
}

func (p *recorder) Publish(sessionID string, ev live.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events[sessionID] = append(p.events[sessionID], ev)
}

func (p *recorder) Disconnect(sessionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.disconnected = append(p.disconnected, sessionID)
}

func (p *recorder) types(sessionID string) []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []string
	for _, ev := range p.events[sessionID] {
		out = append(out, ev.Type)
	}
	return out
}

var okSubmitter = contact.SubmitterFunc(func(ctx context.Context, rec contact.Record) error { return nil })

func newTestRegistry(t *testing.T, s contact.Submitter, opts ...Option) (*Registry, *clock.Fake, *recorder) {
	t.Helper()
	fake := clock.NewFake(time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC))
	pub := newRecorder()
	r := NewRegistry(s, append([]Option{WithClock(fake), WithPublisher(pub), WithIdleTTL(10 * time.Minute)}, opts...)...)
	t.Cleanup(r.Close)
	return r, fake, pub
}

func TestGetReusesVisitor(t *testing.T) {
	r, _, _ := newTestRegistry(t, okSubmitter)

	a, err := r.Get("s1")
	require.NoError(t, err)
	b, err := r.Get("s1")
	require.NoError(t, err)
	c, err := r.Get("s2")
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, 2, r.Len())
}

func TestViewModelChangesArePublished(t *testing.T) {
	r, fake, pub := newTestRegistry(t, okSubmitter)

	g, err := r.Gallery("s1")
	require.NoError(t, err)
	require.NoError(t, g.SelectCategory(gallery.CategoryClasses))
	fake.Advance(gallery.DefaultTransition)

	f, err := r.Form("s1")
	require.NoError(t, err)
	require.NoError(t, f.Submit(context.Background(), contact.Fields{
		Name: "Dana", Phone: "0501234567", Email: "a@b.com", Message: "hi",
	}, contact.Origin{SessionID: "s1"}))
	fake.Advance(contact.DefaultSuccessDisplay)

	assert.Equal(t, []string{
		live.EventGallery, live.EventGallery,
		live.EventContact, live.EventContact, live.EventContact,
	}, pub.types("s1"))
	assert.Empty(t, pub.types("s2"))
}

func TestReceiveSelectsCategory(t *testing.T) {
	r, _, _ := newTestRegistry(t, okSubmitter, WithTransition(0))

	err := r.Receive("s1", live.ClientMessage{Type: live.MessageSelectCategory, Category: "equipment"})
	require.NoError(t, err)

	g, _ := r.Gallery("s1")
	assert.Equal(t, gallery.CategoryEquipment, g.Active())

	err = r.Receive("s1", live.ClientMessage{Type: live.MessageSelectCategory, Category: "pricing"})
	assert.ErrorIs(t, err, gallery.ErrUnknownCategory)

	err = r.Receive("s1", live.ClientMessage{Type: "shout"})
	assert.ErrorIs(t, err, ErrUnknownMessage)
}

func TestHello(t *testing.T) {
	r, _, _ := newTestRegistry(t, okSubmitter)

	events, err := r.Hello("s1")
	require.NoError(t, err)
	require.Len(t, events, 2)

	st, ok := events[0].Payload.(gallery.State)
	require.True(t, ok)
	assert.Equal(t, gallery.CategoryAll, st.Active)
	assert.Len(t, st.Visible, len(gallery.DefaultItems()))
}

func TestReapClosesIdleVisitors(t *testing.T) {
	r, fake, pub := newTestRegistry(t, okSubmitter)

	idle, _ := r.Get("idle")
	fake.Advance(6 * time.Minute)
	_, _ = r.Get("busy")
	fake.Advance(5 * time.Minute)

	assert.Equal(t, 1, r.Reap())
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, []string{"idle"}, pub.disconnected)

	assert.ErrorIs(t, idle.Gallery.SelectCategory(gallery.CategoryClasses), gallery.ErrGalleryClosed)
	assert.ErrorIs(t, idle.Form.Submit(context.Background(), contact.Fields{}, contact.Origin{}), contact.ErrFormClosed)

	// a returning visitor gets fresh view-models
	again, err := r.Get("idle")
	require.NoError(t, err)
	assert.NotSame(t, idle, again)
}

func TestReapCancelsInFlightSubmission(t *testing.T) {
	started := make(chan struct{})
	s := contact.SubmitterFunc(func(ctx context.Context, rec contact.Record) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	})
	r, fake, _ := newTestRegistry(t, s)

	f, _ := r.Form("s1")
	done := make(chan error, 1)
	go func() {
		done <- f.Submit(context.Background(), contact.Fields{
			Name: "Dana", Phone: "0501234567", Email: "a@b.com", Message: "hi",
		}, contact.Origin{SessionID: "s1"})
	}()
	<-started

	fake.Advance(11 * time.Minute)
	require.Equal(t, 1, r.Reap())

	err := <-done
	assert.ErrorIs(t, err, contact.ErrFormClosed)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFullRegistryEvictsLeastRecentlySeen(t *testing.T) {
	r, fake, pub := newTestRegistry(t, okSubmitter, WithMaxVisitors(3))

	first, err := r.Get("s1")
	require.NoError(t, err)
	for _, id := range []string{"s2", "s3"} {
		fake.Advance(time.Second)
		_, err := r.Get(id)
		require.NoError(t, err)
	}
	// s1 is touched again, so s2 is now the oldest
	fake.Advance(time.Second)
	again, err := r.Get("s1")
	require.NoError(t, err)
	assert.Same(t, first, again)

	fake.Advance(time.Second)
	_, err = r.Get("s4")
	require.NoError(t, err)
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []string{"s2"}, pub.disconnected)
}

func TestFullRegistryAdmitsNewVisitorsAfterFlood(t *testing.T) {
	r, fake, _ := newTestRegistry(t, okSubmitter, WithMaxVisitors(100))

	var flood []*Visitor
	for i := 0; i < 100; i++ {
		v, err := r.Get(fmt.Sprintf("bot-%d", i))
		require.NoError(t, err)
		flood = append(flood, v)
		fake.Advance(time.Millisecond)
	}

	v, err := r.Get("real-visitor")
	require.NoError(t, err)
	require.NoError(t, v.Gallery.SelectCategory(gallery.CategoryClasses))
	assert.Equal(t, 100, r.Len())

	// the evicted visitor is torn down
	assert.ErrorIs(t, flood[0].Gallery.SelectCategory(gallery.CategoryAll), gallery.ErrGalleryClosed)
	assert.ErrorIs(t, flood[0].Form.Submit(context.Background(), contact.Fields{}, contact.Origin{}), contact.ErrFormClosed)
}

func TestCloseRejectsNewVisitors(t *testing.T) {
	r, _, _ := newTestRegistry(t, okSubmitter)
	v, _ := r.Get("s1")

	r.Close()
	r.Close()

	_, err := r.Get("s1")
	assert.True(t, errors.Is(err, ErrRegistryClosed))
	assert.ErrorIs(t, v.Gallery.SelectCategory(gallery.CategoryAll), gallery.ErrGalleryClosed)
}

func TestRunStopsWithContext(t *testing.T) {
	r, _, _ := newTestRegistry(t, okSubmitter)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx, time.Millisecond) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
