package tools

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/unified-ats/internal/domain/recruiting"
)

// ListApplicationsParams defines the arguments for the list_applications tool
type ListApplicationsParams struct {
	JobID string `json:"job_id" jsonschema:"Job opening whose applications to list"`
}

type applicationsTool struct {
	service recruiting.Service
}

// WithListApplications registers the list_applications tool
func WithListApplications(service recruiting.Service) Option {
	return func(reg *registry) {
		handler := applicationsTool{service: service}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "list_applications",
			Description: "List applications for one job opening",
		}, handler.handle)
		reg.add("list_applications")
	}
}

func (t applicationsTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params ListApplicationsParams) (*sdkmcp.CallToolResult, any, error) {
	jobID := strings.TrimSpace(params.JobID)
	if jobID == "" {
		return nil, nil, fmt.Errorf("missing required parameter: job_id")
	}

	apps := t.service.ListApplications(ctx, jobID)
	if len(apps) == 0 {
		return textResult(fmt.Sprintf("[list_applications] No applications for job %s", jobID)), nil, nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "[list_applications] %d application(s) for job %s", len(apps), jobID)
	for _, a := range apps {
		fmt.Fprintf(&sb, "\n• %s <%s> %s", a.CandidateName, a.Email, a.Status)
	}
	return jsonResult(sb.String(), apps), nil, nil
}
