package recruiting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/honeycarbs/unified-ats/internal/domain"
	"github.com/honeycarbs/unified-ats/pkg/logging"
)

type Service interface {
	ListJobs(ctx context.Context) ([]domain.Job, error)
	CreateJob(ctx context.Context, spec domain.JobSpec) (domain.JobConfirmation, error)
	CreateCandidate(ctx context.Context, in domain.CandidateInput) (domain.CandidateResult, error)
	ListApplications(ctx context.Context, jobID string) []domain.Application
}

// Option configures Service
type Option func(*config)

type config struct {
	provider Provider
	logger   *logging.Logger
	clock    func() time.Time
}

// WithProvider sets the ATS provider
func WithProvider(p Provider) Option {
	return func(c *config) {
		c.provider = p
	}
}

// WithLogger sets the logger
func WithLogger(l *logging.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithClock sets a custom clock
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.provider == nil {
		return nil, fmt.Errorf("recruiting.Service: provider is required")
	}
	if cfg.logger == nil {
		cfg.logger = logging.NewNop()
	}

	return &service{
		provider: cfg.provider,
		logger:   cfg.logger.With("provider", cfg.provider.Name()),
		clock:    cfg.clock,
	}, nil
}

// NewServiceWithDeps creates a Service with direct dependencies (Wire-compatible)
func NewServiceWithDeps(provider Provider, logger *logging.Logger) (Service, error) {
	return NewService(WithProvider(provider), WithLogger(logger))
}

type service struct {
	provider Provider
	logger   *logging.Logger
	clock    func() time.Time
}

func (s *service) ListJobs(ctx context.Context) ([]domain.Job, error) {
	start := s.clock()

	jobs, err := s.provider.ListJobs(ctx)
	if err != nil {
		s.logger.Error("list jobs failed", "err", err, "elapsed", s.clock().Sub(start))
		return nil, err
	}

	s.logger.Info("jobs listed", "count", len(jobs), "elapsed", s.clock().Sub(start))
	return jobs, nil
}

func (s *service) CreateJob(ctx context.Context, spec domain.JobSpec) (domain.JobConfirmation, error) {
	spec.Title = strings.TrimSpace(spec.Title)
	spec.City = strings.TrimSpace(spec.City)
	spec.Country = strings.TrimSpace(spec.Country)

	conf, err := s.provider.CreateJob(ctx, spec)
	if err != nil {
		s.logger.Error("create job failed", "err", err, "title", spec.Title)
		return domain.JobConfirmation{}, err
	}

	s.logger.Info("job created", "job_id", conf.ID, "title", spec.Title, "remote", spec.Remote)
	return conf, nil
}

func (s *service) CreateCandidate(ctx context.Context, in domain.CandidateInput) (domain.CandidateResult, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.JobID = strings.TrimSpace(in.JobID)

	res, err := s.provider.CreateCandidate(ctx, in)
	if err != nil {
		s.logger.Error("create candidate failed", "err", err, "email", in.Email)
		return domain.CandidateResult{}, err
	}

	log := s.logger.With("email", in.Email, "job_id", in.JobID, "duplicate", res.Duplicate)
	switch {
	case res.ID == nil:
		log.Warn("candidate id unresolved; returning without an id")
	case res.Association.Attempted && !res.Association.Linked:
		log.Warn("candidate created but not linked to job", "candidate_id", *res.ID, "err", res.Association.Err)
	default:
		log.Info("candidate created", "candidate_id", *res.ID, "linked", res.Association.Linked)
	}

	return res, nil
}

func (s *service) ListApplications(ctx context.Context, jobID string) []domain.Application {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return []domain.Application{}
	}

	apps := s.provider.ListApplications(ctx, jobID)
	if apps == nil {
		apps = []domain.Application{}
	}

	s.logger.Info("applications listed", "job_id", jobID, "count", len(apps))
	return apps
}
