package contact

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"betagym/internal/pkg/clock"
)

// DefaultSuccessDisplay is how long the thank-you banner stays up.
const DefaultSuccessDisplay = 5 * time.Second

// Submitter forwards a validated record to wherever submissions go.
type Submitter interface {
	Submit(ctx context.Context, rec Record) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, rec Record) error

func (f SubmitterFunc) Submit(ctx context.Context, rec Record) error { return f(ctx, rec) }

// State is an immutable snapshot of a Form.
type State struct {
	Fields   Fields `json:"fields"`
	Errors   Errors `json:"errors"`
	InFlight bool   `json:"in_flight"`
	Success  bool   `json:"success"`
}

// Form is the per-visitor contact form view-model.
type Form struct {
	mu        sync.Mutex
	notifyMu  sync.Mutex
	submitter Submitter
	clock     clock.Clock
	display   time.Duration
	log       *zap.Logger
	onChange  func(State)

	ctx    context.Context
	cancel context.CancelFunc

	fields       Fields
	errors       Errors
	inFlight     bool
	success      bool
	successTimer clock.Timer
	closed       bool
}

// FormOption configures a Form.
type FormOption func(*Form)

func WithClock(c clock.Clock) FormOption {
	return func(f *Form) { f.clock = c }
}

func WithSuccessDisplay(d time.Duration) FormOption {
	return func(f *Form) { f.display = d }
}

func WithLogger(l *zap.Logger) FormOption {
	return func(f *Form) { f.log = l }
}

// WithObserver registers a callback for every state change. It runs
// outside the state lock, one call at a time, in state order.
func WithObserver(fn func(State)) FormOption {
	return func(f *Form) { f.onChange = fn }
}

// NewForm returns an empty form that dispatches through s.
func NewForm(s Submitter, opts ...FormOption) *Form {
	ctx, cancel := context.WithCancel(context.Background())
	f := &Form{
		submitter: s,
		clock:     clock.Real(),
		display:   DefaultSuccessDisplay,
		log:       zap.NewNop(),
		ctx:       ctx,
		cancel:    cancel,
		errors:    Errors{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Submit validates fields and, when valid, forwards them to the submitter.
// It blocks for the whole round trip; concurrent calls made meanwhile are
// rejected with ErrSubmissionInFlight and never reach the submitter.
//
// The dispatch is bound to the form's lifetime rather than ctx: Close
// cancels it, a finished caller does not.
func (f *Form) Submit(ctx context.Context, fields Fields, origin Origin) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrFormClosed
	}
	if f.inFlight {
		f.mu.Unlock()
		return ErrSubmissionInFlight
	}

	fields = fields.Normalize()
	f.fields = fields
	if errs := Validate(fields); len(errs) > 0 {
		f.errors = errs
		st := f.snapshotLocked()
		f.unlockAndNotify(st)
		return &ValidationError{Errors: errs.clone()}
	}

	f.errors = Errors{}
	f.clearSuccessLocked()
	f.inFlight = true
	subCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	stop := context.AfterFunc(f.ctx, cancel)
	st := f.snapshotLocked()
	f.unlockAndNotify(st)

	err := f.submitter.Submit(subCtx, Record{Fields: fields, Origin: origin})
	stop()
	cancel()

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFormClosed, err)
		}
		return nil
	}
	f.inFlight = false

	var verr *ValidationError
	if errors.As(err, &verr) {
		f.errors = verr.Errors.clone()
		st := f.snapshotLocked()
		f.unlockAndNotify(st)
		return verr
	}
	if err != nil {
		f.log.Warn("contact submission failed",
			zap.String("session_id", origin.SessionID),
			zap.Error(err),
		)
		st := f.snapshotLocked()
		f.unlockAndNotify(st)
		return fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	f.fields = Fields{}
	f.errors = Errors{}
	f.success = true
	f.successTimer = f.clock.AfterFunc(f.display, f.expireSuccess)
	st = f.snapshotLocked()
	f.unlockAndNotify(st)
	return nil
}

func (f *Form) expireSuccess() {
	f.mu.Lock()
	if f.closed || !f.success {
		f.mu.Unlock()
		return
	}
	f.success = false
	f.successTimer = nil
	st := f.snapshotLocked()
	f.unlockAndNotify(st)
}

func (f *Form) clearSuccessLocked() {
	if f.successTimer != nil {
		f.successTimer.Stop()
		f.successTimer = nil
	}
	f.success = false
}

func (f *Form) InFlight() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inFlight
}

func (f *Form) Success() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.success
}

func (f *Form) Snapshot() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

// Close tears the form down: the in-flight dispatch is cancelled and the
// success timer stopped. Later calls are no-ops.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	f.cancel()
	if f.successTimer != nil {
		f.successTimer.Stop()
		f.successTimer = nil
	}
}

func (f *Form) snapshotLocked() State {
	return State{
		Fields:   f.fields,
		Errors:   f.errors.clone(),
		InFlight: f.inFlight,
		Success:  f.success,
	}
}

// unlockAndNotify releases the state lock and reports st. Observers see
// states in the order they were produced.
func (f *Form) unlockAndNotify(st State) {
	f.notifyMu.Lock()
	defer f.notifyMu.Unlock()
	f.mu.Unlock()
	if f.onChange != nil {
		f.onChange(st)
	}
}
