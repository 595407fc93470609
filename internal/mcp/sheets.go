package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/honeycarbs/unified-ats/internal/mcp/tools"
	sheetsclient "github.com/honeycarbs/unified-ats/pkg/sheets"
)

const defaultTab = "Applications"

var sheetHeader = []any{"Job ID", "Application ID", "Candidate ID", "Candidate", "Email", "Status", "Exported At"}

type valuesWriter interface {
	AppendValues(ctx context.Context, spreadsheetID, a1Range string, values [][]any) (int, error)
	UpdateValues(ctx context.Context, spreadsheetID, a1Range string, values [][]any) (int, error)
	ClearValues(ctx context.Context, spreadsheetID, a1Range string) error
}

type sheetsClientAdapter struct {
	client valuesWriter
	clock  func() time.Time
}

// NewSheetsExporter adapts the Sheets client to the export tool; a nil client
// yields an exporter that reports it is not configured
func NewSheetsExporter(client *sheetsclient.Client) tools.SheetsExporter {
	a := &sheetsClientAdapter{clock: time.Now}
	if client != nil {
		a.client = client
	}
	return a
}

func (a *sheetsClientAdapter) Export(ctx context.Context, params tools.SheetsExportParams) (tools.SheetsExportResult, error) {
	tab := params.Sheet.Tab
	if tab == "" {
		tab = defaultTab
	}

	result := tools.SheetsExportResult{
		SpreadsheetID: params.Sheet.SpreadsheetID,
		Tab:           tab,
		Mode:          "append",
	}

	if a.client == nil {
		result.Message = "Google Sheets client not configured (GOOGLE_SHEETS_CREDENTIALS_PATH not set)"
		return result, fmt.Errorf("sheets: client not configured")
	}

	values := convertRowsToValues(params.Rows)

	if params.ClearTab {
		result.Mode = "replace"
		if err := a.client.ClearValues(ctx, params.Sheet.SpreadsheetID, tab+"!A:Z"); err != nil {
			return result, err
		}
		n, err := a.client.UpdateValues(ctx, params.Sheet.SpreadsheetID, tab+"!A1", append([][]any{sheetHeader}, values...))
		if err != nil {
			return result, err
		}
		result.WrittenRows = max(n-1, 0)
	} else {
		if len(values) == 0 {
			result.CompletedAt = a.clock().UTC()
			result.Message = "no rows to export"
			return result, nil
		}
		n, err := a.client.AppendValues(ctx, params.Sheet.SpreadsheetID, tab+"!A1", values)
		if err != nil {
			return result, err
		}
		result.WrittenRows = n
	}

	result.CompletedAt = a.clock().UTC()
	result.Message = fmt.Sprintf("exported %d application(s) to %s", result.WrittenRows, tab)
	return result, nil
}

func convertRowsToValues(rows []tools.SheetRow) [][]any {
	values := make([][]any, len(rows))
	for i, row := range rows {
		values[i] = []any{
			row.JobID,
			row.ApplicationID,
			row.CandidateID,
			row.CandidateName,
			row.Email,
			row.Status,
			row.ExportedAt,
		}
	}
	return values
}
