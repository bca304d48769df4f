package contact

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"betagym/internal/pkg/clock"
)

var validFields = Fields{Name: "Dana", Phone: "0501234567", Email: "a@b.com", Message: "hi"}

func newTestForm(t *testing.T, s Submitter, opts ...FormOption) (*Form, *clock.Fake) {
	t.Helper()
	fake := clock.NewFake(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	f := NewForm(s, append([]FormOption{WithClock(fake)}, opts...)...)
	t.Cleanup(f.Close)
	return f, fake
}

func okSubmitter(calls *atomic.Int32) Submitter {
	return SubmitterFunc(func(ctx context.Context, rec Record) error {
		calls.Add(1)
		return nil
	})
}

func TestSubmitSuccessClearsFieldsAndExpiresBanner(t *testing.T) {
	var calls atomic.Int32
	f, fake := newTestForm(t, okSubmitter(&calls))

	require.NoError(t, f.Submit(context.Background(), validFields, Origin{}))

	st := f.Snapshot()
	assert.Equal(t, Fields{}, st.Fields)
	assert.Empty(t, st.Errors)
	assert.True(t, st.Success)
	assert.False(t, st.InFlight)
	assert.Equal(t, int32(1), calls.Load())

	fake.Advance(DefaultSuccessDisplay - time.Millisecond)
	assert.True(t, f.Success(), "banner cleared too early")

	fake.Advance(time.Millisecond)
	assert.False(t, f.Success(), "banner still shown after 5s")
}

func TestSubmitInvalidDoesNotDispatch(t *testing.T) {
	var calls atomic.Int32
	f, _ := newTestForm(t, okSubmitter(&calls))

	bad := Fields{Name: "Dana", Phone: "123", Email: "a@b.com", Message: "hi"}
	err := f.Submit(context.Background(), bad, Origin{})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ErrorIs(t, err, ErrInvalidFormat)
	assert.Equal(t, map[string]Rule{FieldPhone: RuleInvalidFormat}, verr.Errors.Rules())

	st := f.Snapshot()
	assert.Equal(t, bad, st.Fields, "fields kept for correction")
	assert.Equal(t, RuleInvalidFormat, st.Errors[FieldPhone].Rule)
	assert.False(t, st.InFlight)
	assert.Zero(t, calls.Load())
}

func TestSubmitWhileInFlightIsRejected(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	s := SubmitterFunc(func(ctx context.Context, rec Record) error {
		if calls.Add(1) == 1 {
			close(started)
		}
		<-release
		return nil
	})
	f, _ := newTestForm(t, s)

	done := make(chan error, 1)
	go func() { done <- f.Submit(context.Background(), validFields, Origin{}) }()
	<-started

	assert.True(t, f.InFlight())
	err := f.Submit(context.Background(), validFields, Origin{})
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, int32(1), calls.Load(), "duplicate dispatch")
	assert.False(t, f.InFlight())
}

func TestConcurrentSubmitsDispatchOnce(t *testing.T) {
	var calls atomic.Int32
	gate := make(chan struct{})
	s := SubmitterFunc(func(ctx context.Context, rec Record) error {
		calls.Add(1)
		<-gate
		return nil
	})
	f, _ := newTestForm(t, s)

	var wg sync.WaitGroup
	var rejected atomic.Int32
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if errors.Is(f.Submit(context.Background(), validFields, Origin{}), ErrSubmissionInFlight) {
				rejected.Add(1)
			}
		}()
	}

	// wait until one dispatch started, then let it finish
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
	require.Eventually(t, func() bool { return rejected.Load() == 7 }, time.Second, time.Millisecond)
	close(gate)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}

func TestSubmitFailureKeepsFieldsForRetry(t *testing.T) {
	fail := true
	s := SubmitterFunc(func(ctx context.Context, rec Record) error {
		if fail {
			return errors.New("endpoint down")
		}
		return nil
	})
	f, _ := newTestForm(t, s)

	err := f.Submit(context.Background(), validFields, Origin{})
	require.ErrorIs(t, err, ErrSubmissionFailed)

	st := f.Snapshot()
	assert.Equal(t, validFields, st.Fields)
	assert.False(t, st.InFlight)
	assert.False(t, st.Success)

	fail = false
	require.NoError(t, f.Submit(context.Background(), st.Fields, Origin{}))
	assert.True(t, f.Success())
}

func TestNewSubmissionResetsBanner(t *testing.T) {
	var calls atomic.Int32
	f, fake := newTestForm(t, okSubmitter(&calls))

	require.NoError(t, f.Submit(context.Background(), validFields, Origin{}))
	fake.Advance(3 * time.Second)

	var seen []State
	f.onChange = func(s State) { seen = append(seen, s) }
	require.NoError(t, f.Submit(context.Background(), validFields, Origin{}))
	require.NotEmpty(t, seen)
	assert.False(t, seen[0].Success, "banner must reset when a new submission starts")
	assert.True(t, seen[0].InFlight)

	// the first timer was cancelled, so the banner lives a full window again
	fake.Advance(3 * time.Second)
	assert.True(t, f.Success())
	fake.Advance(2 * time.Second)
	assert.False(t, f.Success())
}

func TestCloseCancelsInFlightSubmission(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	started := make(chan struct{})
	s := SubmitterFunc(func(ctx context.Context, rec Record) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	})
	f, fake := newTestForm(t, s)

	done := make(chan error, 1)
	go func() { done <- f.Submit(context.Background(), validFields, Origin{}) }()
	<-started

	f.Close()
	err := <-done
	assert.ErrorIs(t, err, ErrFormClosed)
	assert.ErrorIs(t, err, context.Canceled)

	st := f.Snapshot()
	assert.Equal(t, validFields, st.Fields, "no state updates after teardown")
	assert.False(t, st.Success)
	assert.Zero(t, fake.Pending())

	assert.ErrorIs(t, f.Submit(context.Background(), validFields, Origin{}), ErrFormClosed)
}

func TestCallerCancellationDoesNotAbortDispatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := SubmitterFunc(func(subCtx context.Context, rec Record) error {
		cancel()
		return subCtx.Err()
	})
	f, _ := newTestForm(t, s)

	require.NoError(t, f.Submit(ctx, validFields, Origin{}))
	assert.True(t, f.Success())
}

func TestCloseStopsSuccessTimer(t *testing.T) {
	var calls atomic.Int32
	var states []State
	f, fake := newTestForm(t, okSubmitter(&calls), WithObserver(func(s State) { states = append(states, s) }))

	require.NoError(t, f.Submit(context.Background(), validFields, Origin{}))
	n := len(states)
	f.Close()
	fake.Advance(time.Minute)

	assert.Len(t, states, n, "timer fired after teardown")
}

func TestSubmitPassesOriginAndTrimmedFields(t *testing.T) {
	var got Record
	s := SubmitterFunc(func(ctx context.Context, rec Record) error {
		got = rec
		return nil
	})
	f, _ := newTestForm(t, s)

	in := Fields{Name: "  Dana ", Phone: " 0501234567", Email: "a@b.com ", Message: " hi "}
	origin := Origin{SessionID: "sid", ClientIP: "10.0.0.1", UserAgent: "test"}
	require.NoError(t, f.Submit(context.Background(), in, origin))

	assert.Equal(t, validFields, got.Fields)
	assert.Equal(t, origin, got.Origin)
}

func TestObserverSeesFinalState(t *testing.T) {
	var mu sync.Mutex
	var last State
	observe := func(st State) {
		mu.Lock()
		last = st
		mu.Unlock()
	}
	var calls atomic.Int32
	f, _ := newTestForm(t, okSubmitter(&calls), WithObserver(observe))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			fields := validFields
			if i%2 == 0 {
				fields.Phone = "123"
			}
			_ = f.Submit(context.Background(), fields, Origin{})
		}(i)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, f.Snapshot(), last, "socket left on a stale state")
}

func TestSubmitterValidationErrorIsReportedAsFieldError(t *testing.T) {
	s := SubmitterFunc(func(ctx context.Context, rec Record) error {
		return &ValidationError{Errors: Errors{FieldMessage: {Rule: RuleMissingField, Message: msgRequired}}}
	})
	f, _ := newTestForm(t, s)

	err := f.Submit(context.Background(), validFields, Origin{})
	assert.ErrorIs(t, err, ErrMissingField)
	assert.NotErrorIs(t, err, ErrSubmissionFailed)

	st := f.Snapshot()
	assert.Equal(t, RuleMissingField, st.Errors[FieldMessage].Rule)
	assert.Equal(t, validFields, st.Fields)
	assert.False(t, st.InFlight)
}
