package contact

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"

	"betagym/internal/metrics"
)

const defaultSubmitTimeout = 10 * time.Second

// Service stores contact submissions. It is the Submitter used by every Form.
type Service struct {
	repo    *Repository
	guard   Guard
	metrics *metrics.Metrics
	log     *zap.Logger
	timeout time.Duration
	ipSalt  []byte
	now     func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

func WithGuard(g Guard) ServiceOption {
	return func(s *Service) { s.guard = g }
}

func WithTimeout(d time.Duration) ServiceOption {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func WithIPSalt(salt string) ServiceOption {
	return func(s *Service) { s.ipSalt = []byte(salt) }
}

func WithMetrics(m *metrics.Metrics) ServiceOption {
	return func(s *Service) { s.metrics = m }
}

func WithServiceLogger(l *zap.Logger) ServiceOption {
	return func(s *Service) { s.log = l }
}

// NewService creates contact service
func NewService(repo *Repository, opts ...ServiceOption) *Service {
	s := &Service{
		repo:    repo,
		guard:   NewMemoryGuard(),
		log:     zap.NewNop(),
		timeout: defaultSubmitTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit stores a validated record. A message that holds nothing but
// markup is rejected as missing.
func (s *Service) Submit(ctx context.Context, rec Record) error {
	message := CleanMessage(rec.Fields.Message)
	if message == "" {
		return &ValidationError{Errors: Errors{
			FieldMessage: {Rule: RuleMissingField, Message: msgRequired},
		}}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	key := rec.Origin.SessionID
	if key == "" {
		key = "email:" + rec.Fields.Email
	}

	release, err := s.guard.Acquire(ctx, key, s.timeout)
	if err != nil {
		if errors.Is(err, ErrSubmissionInFlight) {
			return err
		}
		return fmt.Errorf("acquire submission guard: %w", err)
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			s.log.Warn("release submission guard", zap.String("key", key), zap.Error(err))
		}
	}()

	sub := &Submission{
		Reference: uuid.NewString(),
		Name:      rec.Fields.Name,
		Phone:     rec.Fields.Phone,
		Email:     rec.Fields.Email,
		Message:   message,
		SessionID: rec.Origin.SessionID,
		IPHash:    s.hashIP(rec.Origin.ClientIP),
		UserAgent: truncate(rec.Origin.UserAgent, 512),
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		s.metrics.ObserveSubmission(metrics.ResultFailed)
		s.log.Error("store contact submission",
			zap.String("session_id", rec.Origin.SessionID),
			zap.Error(err),
		)
		return fmt.Errorf("store submission: %w", err)
	}

	s.metrics.ObserveSubmission(metrics.ResultSuccess)
	s.log.Info("contact submission stored",
		zap.String("reference", sub.Reference),
		zap.String("session_id", rec.Origin.SessionID),
	)
	return nil
}

// List returns stored submissions, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Submission, int64, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, limit, offset)
}

// PruneOlderThan deletes submissions older than the retention window.
func (s *Service) PruneOlderThan(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, fmt.Errorf("retention must be > 0")
	}
	return s.repo.DeleteOlderThan(ctx, s.now().UTC().Add(-retention))
}

func (s *Service) hashIP(ip string) string {
	if ip == "" {
		return ""
	}
	sum := blake2b.Sum256(append(append([]byte{}, s.ipSalt...), ip...))
	return hex.EncodeToString(sum[:])
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
