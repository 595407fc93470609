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

// ListJobsParams takes no arguments
type ListJobsParams struct{}

// CreateJobParams defines the arguments for the create_job tool
type CreateJobParams struct {
	Title       string `json:"title" jsonschema:"Job title"`
	Description string `json:"description,omitempty" jsonschema:"Job description; short text is padded to the vendor minimum"`
	City        string `json:"city,omitempty" jsonschema:"City for on-site roles"`
	Country     string `json:"country,omitempty" jsonschema:"Country for on-site roles"`
	Remote      bool   `json:"remote,omitempty" jsonschema:"Whether the role is remote"`
}

type jobTools struct {
	service recruiting.Service
	logger  *logging.Logger
}

// WithListJobs registers the list_jobs tool
func WithListJobs(service recruiting.Service) Option {
	return func(reg *registry) {
		handler := jobTools{service: service, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "list_jobs",
			Description: "List every job opening in the ATS with normalized location and status",
		}, handler.list)
		reg.add("list_jobs")
	}
}

// WithCreateJob registers the create_job tool
func WithCreateJob(service recruiting.Service) Option {
	return func(reg *registry) {
		handler := jobTools{service: service, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "create_job",
			Description: "Open a new job in the ATS",
		}, handler.create)
		reg.add("create_job")
	}
}

func (t jobTools) list(ctx context.Context, _ *sdkmcp.CallToolRequest, _ ListJobsParams) (*sdkmcp.CallToolResult, any, error) {
	jobs, err := t.service.ListJobs(ctx)
	if err != nil {
		t.logger.Error("list_jobs failed", "err", err)
		return nil, nil, fmt.Errorf("failed to fetch jobs: %w", err)
	}

	if len(jobs) == 0 {
		return textResult("[list_jobs] No job openings found"), nil, nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "[list_jobs] %d job opening(s)", len(jobs))
	for _, j := range jobs {
		fmt.Fprintf(&sb, "\n• %s (%s) %s [%s]", j.Title, j.ID, j.Location, j.Status)
	}
	return jsonResult(sb.String(), jobs), nil, nil
}

func (t jobTools) create(ctx context.Context, _ *sdkmcp.CallToolRequest, params CreateJobParams) (*sdkmcp.CallToolResult, any, error) {
	spec := domain.JobSpec{
		Title:       strings.TrimSpace(params.Title),
		Description: params.Description,
		City:        strings.TrimSpace(params.City),
		Country:     strings.TrimSpace(params.Country),
		Remote:      params.Remote,
	}
	if spec.Title == "" || (!spec.Remote && spec.City == "" && spec.Country == "") {
		return nil, nil, fmt.Errorf("missing required fields: title, location")
	}

	conf, err := t.service.CreateJob(ctx, spec)
	if err != nil {
		t.logger.Error("create_job failed", "err", err, "title", spec.Title)
		return nil, nil, fmt.Errorf("failed to create job: %w", err)
	}

	return jsonResult(fmt.Sprintf("[create_job] %s (id %s)", conf.Message, conf.ID), conf), nil, nil
}
