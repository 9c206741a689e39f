package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"insightx/internal/platform/metrics"
	"insightx/internal/registration/models"
	dErrors "insightx/pkg/domain-errors"
	"insightx/pkg/platform/sentinel"
)

// Store is the persistence port. Create is conflict-tagged: the store's own
// uniqueness enforcement is the authority for duplicate detection, not the
// pre-check read.
type Store interface {
	Create(ctx context.Context, reg *models.Registration) error
	FindByEmailOrContact(ctx context.Context, email, contactNumber string) (*models.Registration, error)
}

// Mailer is the outbound notification port.
type Mailer interface {
	SendConfirmation(ctx context.Context, recipientName, recipientEmail string) error
}

// Service orchestrates the registration workflow: validate, duplicate check,
// persist, notify.
type Service struct {
	store               Store
	mailer              Mailer
	logger              *slog.Logger
	metrics             *metrics.Metrics
	blockOnEmailFailure bool
	now                 func() time.Time
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithBlockOnEmailFailure makes the confirmation send synchronous and fatal
// to the request when it fails. The stored registration is kept either way;
// only the reported outcome changes.
func WithBlockOnEmailFailure(block bool) Option {
	return func(s *Service) {
		s.blockOnEmailFailure = block
	}
}

// WithClock overrides the source of RegisteredAt timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New constructs a Service.
func New(store Store, mailer Mailer, opts ...Option) *Service {
	s := &Service{
		store:  store,
		mailer: mailer,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register runs the submission workflow in strict order: validate required
// fields, check for an existing registration, persist, then dispatch the
// confirmation email. One durable write and one send per successful call.
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.Registration, error) {
	start := time.Now()
	defer s.observeRegister(start)

	if req == nil {
		return nil, dErrors.New(dErrors.CodeValidation, "missing request body")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Friendlier first-pass duplicate answer. The unique indexes behind
	// Create remain the authority; a race past this check is still caught.
	_, err := s.store.FindByEmailOrContact(ctx, req.Email, req.ContactNumber)
	if err == nil {
		return nil, dErrors.New(dErrors.CodeConflict, "email or contact number already registered")
	}
	if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check existing registration")
	}

	reg := models.NewRegistration(req, s.now().UTC())
	if err := s.store.Create(ctx, reg); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "email or contact number already registered")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save registration")
	}
	s.incrementRegistrationsCreated()
	s.logger.InfoContext(ctx, "registration created",
		"registration_id", reg.ID,
		"email", reg.Email,
	)

	if s.blockOnEmailFailure {
		if err := s.notify(ctx, reg); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to send confirmation email")
		}
		return reg, nil
	}

	// Fire-and-log: delivery has no bearing on stored state, so the request
	// does not wait for the relay. WithoutCancel keeps the send alive after
	// the response is written.
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	go func() {
		defer cancel()
		_ = s.notify(sendCtx, reg)
	}()
	return reg, nil
}

func (s *Service) notify(ctx context.Context, reg *models.Registration) error {
	if err := s.mailer.SendConfirmation(ctx, reg.FullName, reg.Email); err != nil {
		s.incrementEmailsFailed()
		s.logger.ErrorContext(ctx, "confirmation email failed",
			"registration_id", reg.ID,
			"email", reg.Email,
			"error", err.Error(),
		)
		return err
	}
	s.incrementEmailsSent()
	return nil
}

func (s *Service) observeRegister(start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveRegister(start)
	}
}

func (s *Service) incrementRegistrationsCreated() {
	if s.metrics != nil {
		s.metrics.IncrementRegistrationsCreated()
	}
}

func (s *Service) incrementEmailsSent() {
	if s.metrics != nil {
		s.metrics.IncrementEmailsSent()
	}
}

func (s *Service) incrementEmailsFailed() {
	if s.metrics != nil {
		s.metrics.IncrementEmailsFailed()
	}
}
