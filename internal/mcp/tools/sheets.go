package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/unified-ats/internal/domain/recruiting"
	"github.com/honeycarbs/unified-ats/pkg/logging"
)

// SheetRow is one exported application
type SheetRow struct {
	JobID         string
	ApplicationID string
	CandidateID   string
	CandidateName string
	Email         string
	Status        string
	ExportedAt    string
}

// SheetTarget identifies where rows are written
type SheetTarget struct {
	SpreadsheetID string `json:"spreadsheet_id" jsonschema:"Google Sheets document ID"`
	Tab           string `json:"tab,omitempty" jsonschema:"Tab name, default Applications"`
}

// SheetsExportParams is what the exporter needs to write one batch
type SheetsExportParams struct {
	Sheet    SheetTarget
	Rows     []SheetRow
	ClearTab bool
}

// SheetsExportResult describes the summary returned after export
type SheetsExportResult struct {
	SpreadsheetID string    `json:"spreadsheet_id"`
	Tab           string    `json:"tab"`
	WrittenRows   int       `json:"written_rows"`
	Mode          string    `json:"mode"`
	CompletedAt   time.Time `json:"completed_at"`
	Message       string    `json:"message,omitempty"`
}

// SheetsExporter writes rows to a spreadsheet
type SheetsExporter interface {
	Export(ctx context.Context, params SheetsExportParams) (SheetsExportResult, error)
}

// ExportApplicationsParams defines the arguments for the export_applications tool
type ExportApplicationsParams struct {
	JobID    string      `json:"job_id" jsonschema:"Job opening whose applications to export"`
	Sheet    SheetTarget `json:"sheet" jsonschema:"Destination sheet information"`
	ClearTab bool        `json:"clear_tab,omitempty" jsonschema:"If true, replaces the tab contents instead of appending"`
}

type exportTool struct {
	service  recruiting.Service
	exporter SheetsExporter
	logger   *logging.Logger
	clock    func() time.Time
}

// WithApplicationsExport registers the export_applications tool
func WithApplicationsExport(service recruiting.Service, exporter SheetsExporter) Option {
	return func(reg *registry) {
		handler := exportTool{service: service, exporter: exporter, logger: reg.logger, clock: time.Now}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "export_applications",
			Description: "Export a job's applications to a Google Sheets tab",
		}, handler.handle)
		reg.add("export_applications")
	}
}

func (t exportTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params ExportApplicationsParams) (*sdkmcp.CallToolResult, any, error) {
	jobID := strings.TrimSpace(params.JobID)
	if jobID == "" || strings.TrimSpace(params.Sheet.SpreadsheetID) == "" {
		return nil, nil, fmt.Errorf("missing required parameters: job_id, sheet.spreadsheet_id")
	}
	if t.exporter == nil {
		return nil, nil, fmt.Errorf("sheets export not configured")
	}

	apps := t.service.ListApplications(ctx, jobID)

	exportedAt := t.clock().UTC().Format(time.RFC3339)
	rows := make([]SheetRow, 0, len(apps))
	for _, a := range apps {
		rows = append(rows, SheetRow{
			JobID:         jobID,
			ApplicationID: a.ID,
			CandidateID:   a.CandidateID,
			CandidateName: a.CandidateName,
			Email:         a.Email,
			Status:        a.Status,
			ExportedAt:    exportedAt,
		})
	}

	result, err := t.exporter.Export(ctx, SheetsExportParams{
		Sheet:    params.Sheet,
		Rows:     rows,
		ClearTab: params.ClearTab,
	})
	if err != nil {
		t.logger.Error("export_applications failed", "err", err, "job_id", jobID, "spreadsheet_id", params.Sheet.SpreadsheetID)
		return nil, nil, fmt.Errorf("failed to export applications: %w", err)
	}

	t.logger.Info("export_applications completed", "job_id", jobID, "rows", result.WrittenRows, "mode", result.Mode)
	return jsonResult(fmt.Sprintf("[export_applications] %s", result.Message), result), nil, nil
}
