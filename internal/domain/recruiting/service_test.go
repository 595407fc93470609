package recruiting

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/honeycarbs/unified-ats/internal/domain"
	"github.com/honeycarbs/unified-ats/pkg/logging"
)

type stubProvider struct {
	jobs      []domain.Job
	jobsErr   error
	gotSpec   domain.JobSpec
	candidate domain.CandidateResult
	candErr   error
	gotInput  domain.CandidateInput
	apps      []domain.Application
	gotJobID  string
	appCalls  int
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) ListJobs(context.Context) ([]domain.Job, error) {
	return p.jobs, p.jobsErr
}

func (p *stubProvider) CreateJob(_ context.Context, spec domain.JobSpec) (domain.JobConfirmation, error) {
	p.gotSpec = spec
	return domain.JobConfirmation{ID: "900", Message: "Job created successfully"}, nil
}

func (p *stubProvider) CreateCandidate(_ context.Context, in domain.CandidateInput) (domain.CandidateResult, error) {
	p.gotInput = in
	return p.candidate, p.candErr
}

func (p *stubProvider) ListApplications(_ context.Context, jobID string) []domain.Application {
	p.appCalls++
	p.gotJobID = jobID
	return p.apps
}

func observedService(t *testing.T, p Provider) (Service, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	svc, err := NewService(WithProvider(p), WithLogger(logging.FromZap(zap.New(core))))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc, logs
}

func TestNewServiceRequiresProvider(t *testing.T) {
	if _, err := NewService(); err == nil {
		t.Fatal("expected error without provider")
	}
}

func TestListJobsPropagatesError(t *testing.T) {
	want := errors.New("vendor down")
	svc, logs := observedService(t, &stubProvider{jobsErr: want})

	if _, err := svc.ListJobs(context.Background()); !errors.Is(err, want) {
		t.Fatalf("err = %v, want %v", err, want)
	}
	if logs.FilterMessage("list jobs failed").Len() != 1 {
		t.Error("failure not logged")
	}
}

func TestCreateJobTrimsInput(t *testing.T) {
	p := &stubProvider{}
	svc, _ := observedService(t, p)

	if _, err := svc.CreateJob(context.Background(), domain.JobSpec{Title: "  Go Dev ", City: " Pune "}); err != nil {
		t.Fatalf("CreateJob: %v", err)
	}
	if p.gotSpec.Title != "Go Dev" || p.gotSpec.City != "Pune" {
		t.Errorf("spec = %+v", p.gotSpec)
	}
}

func TestCreateCandidateLogsOutcome(t *testing.T) {
	id := "7001"
	tests := []struct {
		name    string
		result  domain.CandidateResult
		wantMsg string
	}{
		{
			name:    "linked",
			result:  domain.CandidateResult{ID: &id, Association: domain.Association{Attempted: true, Linked: true}},
			wantMsg: "candidate created",
		},
		{
			name:    "link failed",
			result:  domain.CandidateResult{ID: &id, Association: domain.Association{Attempted: true, Err: errors.New("job closed")}},
			wantMsg: "candidate created but not linked to job",
		},
		{
			name:    "unresolved duplicate",
			result:  domain.CandidateResult{Duplicate: true},
			wantMsg: "candidate id unresolved; returning without an id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, logs := observedService(t, &stubProvider{candidate: tt.result})

			res, err := svc.CreateCandidate(context.Background(), domain.CandidateInput{Email: " a@b.c ", JobID: "500"})
			if err != nil {
				t.Fatalf("CreateCandidate: %v", err)
			}
			if res.ID != tt.result.ID {
				t.Errorf("id = %v, want %v", res.ID, tt.result.ID)
			}
			if logs.FilterMessage(tt.wantMsg).Len() != 1 {
				t.Errorf("missing log %q; got %v", tt.wantMsg, logs.All())
			}
		})
	}
}

func TestListApplications(t *testing.T) {
	t.Run("blank id short-circuits", func(t *testing.T) {
		p := &stubProvider{}
		svc, _ := observedService(t, p)

		apps := svc.ListApplications(context.Background(), "  ")
		if apps == nil || len(apps) != 0 {
			t.Errorf("apps = %#v", apps)
		}
		if p.appCalls != 0 {
			t.Error("provider called for blank job id")
		}
	})

	t.Run("nil from provider becomes empty", func(t *testing.T) {
		p := &stubProvider{}
		svc, _ := observedService(t, p)

		apps := svc.ListApplications(context.Background(), " 500 ")
		if apps == nil {
			t.Error("apps = nil, want empty slice")
		}
		if p.gotJobID != "500" {
			t.Errorf("job id = %q", p.gotJobID)
		}
	})
}
