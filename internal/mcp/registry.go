package mcp

import (
	"github.com/honeycarbs/unified-ats/internal/domain/recruiting"
	"github.com/honeycarbs/unified-ats/internal/mcp/tools"
)

// Resources holds what the REST and MCP surfaces need
type Resources struct {
	Recruiting recruiting.Service
	Sheets     tools.SheetsExporter
}

func NewResources(svc recruiting.Service, sheets tools.SheetsExporter) *Resources {
	return &Resources{Recruiting: svc, Sheets: sheets}
}

func (r *Resources) toolOptions() []tools.Option {
	return []tools.Option{
		tools.WithListJobs(r.Recruiting),
		tools.WithCreateJob(r.Recruiting),
		tools.WithListApplications(r.Recruiting),
		tools.WithCreateCandidate(r.Recruiting),
		tools.WithApplicationsExport(r.Recruiting, r.Sheets),
	}
}
