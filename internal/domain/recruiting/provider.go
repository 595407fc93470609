package recruiting

import (
	"context"

	"github.com/honeycarbs/unified-ats/internal/domain"
)

// Provider represents the applicant tracking system behind the unified API
type Provider interface {
	// e.g. "zoho"
	Name() string

	ListJobs(ctx context.Context) ([]domain.Job, error)

	CreateJob(ctx context.Context, spec domain.JobSpec) (domain.JobConfirmation, error)

	// CreateCandidate creates or reuses a candidate and links it to spec.JobID when set
	CreateCandidate(ctx context.Context, in domain.CandidateInput) (domain.CandidateResult, error)

	// ListApplications never fails; vendor problems yield fewer results
	ListApplications(ctx context.Context, jobID string) []domain.Application
}
