package zoho

import (
	"context"
	"fmt"

	"github.com/honeycarbs/unified-ats/internal/domain"
	"github.com/honeycarbs/unified-ats/internal/domain/recruiting"
	"github.com/honeycarbs/unified-ats/pkg/zohorecruit"
)

// gateway describes the subset of the Zoho Recruit client used by the provider.
type gateway interface {
	ListJobs(ctx context.Context) ([]zohorecruit.Job, error)
	CreateJob(ctx context.Context, spec zohorecruit.JobSpec) (zohorecruit.JobConfirmation, error)
	CreateCandidate(ctx context.Context, in zohorecruit.CandidateInput) (zohorecruit.CandidateResult, error)
	SearchApplications(ctx context.Context, jobID string) []zohorecruit.Application
}

// Provider implements recruiting.Provider using Zoho Recruit
type Provider struct {
	client gateway
}

// NewProvider builds a Zoho Recruit provider
func NewProvider(client *zohorecruit.Client) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("zoho provider: client is required")
	}
	return &Provider{client: client}, nil
}

func (p *Provider) Name() string {
	return "zoho"
}

func (p *Provider) ListJobs(ctx context.Context) ([]domain.Job, error) {
	jobs, err := p.client.ListJobs(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, domain.Job{
			ID:          j.ID,
			Title:       j.Title,
			Location:    j.Location,
			Status:      j.Status,
			ExternalURL: j.ExternalURL,
			Description: j.Description,
		})
	}
	return out, nil
}

func (p *Provider) CreateJob(ctx context.Context, spec domain.JobSpec) (domain.JobConfirmation, error) {
	conf, err := p.client.CreateJob(ctx, zohorecruit.JobSpec{
		Title:       spec.Title,
		Description: spec.Description,
		City:        spec.City,
		Country:     spec.Country,
		Remote:      spec.Remote,
	})
	if err != nil {
		return domain.JobConfirmation{}, err
	}
	return domain.JobConfirmation{ID: conf.ID, Message: conf.Message}, nil
}

func (p *Provider) CreateCandidate(ctx context.Context, in domain.CandidateInput) (domain.CandidateResult, error) {
	res, err := p.client.CreateCandidate(ctx, zohorecruit.CandidateInput{
		Name:      in.Name,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		ResumeURL: in.ResumeURL,
		JobID:     in.JobID,
	})
	if err != nil {
		return domain.CandidateResult{}, err
	}

	return domain.CandidateResult{
		ID:        res.ID,
		Message:   res.Message,
		Duplicate: res.Duplicate,
		Association: domain.Association{
			Attempted: res.Association.Attempted,
			Linked:    res.Association.Linked,
			Err:       res.Association.Err,
		},
	}, nil
}

func (p *Provider) ListApplications(ctx context.Context, jobID string) []domain.Application {
	apps := p.client.SearchApplications(ctx, jobID)

	out := make([]domain.Application, 0, len(apps))
	for _, a := range apps {
		out = append(out, domain.Application{
			ID:            a.ID,
			CandidateID:   a.CandidateID,
			CandidateName: a.CandidateName,
			Email:         a.Email,
			Status:        a.Status,
		})
	}
	return out
}

var _ recruiting.Provider = (*Provider)(nil)
