package tools

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/unified-ats/internal/domain"
	"github.com/honeycarbs/unified-ats/internal/domain/recruiting"
	"github.com/honeycarbs/unified-ats/pkg/logging"
)

// CreateCandidateParams defines the arguments for the create_candidate tool
type CreateCandidateParams struct {
	Name      string `json:"name,omitempty" jsonschema:"Full name; split into first and last name when those are absent"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email" jsonschema:"Candidate email, used to detect duplicates"`
	Phone     string `json:"phone,omitempty"`
	ResumeURL string `json:"resume_url,omitempty" jsonschema:"Resume or profile link"`
	JobID     string `json:"job_id" jsonschema:"Job opening the candidate applies to"`
}

type candidateTool struct {
	service recruiting.Service
	logger  *logging.Logger
}

// WithCreateCandidate registers the create_candidate tool
func WithCreateCandidate(service recruiting.Service) Option {
	return func(reg *registry) {
		handler := candidateTool{service: service, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "create_candidate",
			Description: "Create a candidate (or reuse an existing one by email) and apply them to a job",
		}, handler.handle)
		reg.add("create_candidate")
	}
}

func (t candidateTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params CreateCandidateParams) (*sdkmcp.CallToolResult, any, error) {
	in := domain.CandidateInput{
		Name:      strings.TrimSpace(params.Name),
		FirstName: strings.TrimSpace(params.FirstName),
		LastName:  strings.TrimSpace(params.LastName),
		Email:     strings.TrimSpace(params.Email),
		Phone:     strings.TrimSpace(params.Phone),
		ResumeURL: strings.TrimSpace(params.ResumeURL),
		JobID:     strings.TrimSpace(params.JobID),
	}
	if (in.Name == "" && in.FirstName == "") || in.Email == "" || in.JobID == "" {
		return nil, nil, fmt.Errorf("missing required fields: name, email, job_id")
	}

	res, err := t.service.CreateCandidate(ctx, in)
	if err != nil {
		t.logger.Error("create_candidate failed", "err", err, "email", in.Email)
		return nil, nil, fmt.Errorf("failed to create candidate: %w", err)
	}

	id := "none"
	if res.ID != nil {
		id = *res.ID
	}
	summary := fmt.Sprintf("[create_candidate] %s (id %s)", res.Message, id)
	if res.Association.Attempted && !res.Association.Linked {
		summary += fmt.Sprintf("; not linked to job %s", in.JobID)
	}
	return jsonResult(summary, res), nil, nil
}
