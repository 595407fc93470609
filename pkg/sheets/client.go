package sheets

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	inputRaw   = "RAW"
	insertRows = "INSERT_ROWS"
)

// Client writes row values into Google Sheets
type Client struct {
	service *sheets.Service
}

type Config struct {
	CredentialsPath string
	CredentialsJSON []byte

	// Endpoint and HTTPClient point the client at a fake server in tests
	Endpoint   string
	HTTPClient *http.Client
}

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	var opts []option.ClientOption

	switch {
	case cfg.HTTPClient != nil:
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	case cfg.CredentialsPath != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheets.SpreadsheetsScope))
	case len(cfg.CredentialsJSON) > 0:
		opts = append(opts, option.WithCredentialsJSON(cfg.CredentialsJSON), option.WithScopes(sheets.SpreadsheetsScope))
	default:
		return nil, fmt.Errorf("sheets: credentials path or JSON is required")
	}

	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: failed to create service: %w", err)
	}

	return &Client{service: service}, nil
}

// AppendValues adds rows after the last non-empty row of the range
func (c *Client) AppendValues(ctx context.Context, spreadsheetID, a1Range string, values [][]any) (int, error) {
	resp, err := c.service.Spreadsheets.Values.Append(spreadsheetID, a1Range, &sheets.ValueRange{Values: values}).
		ValueInputOption(inputRaw).
		InsertDataOption(insertRows).
		Context(ctx).
		Do()
	if err != nil {
		return 0, fmt.Errorf("sheets: append %s: %w", a1Range, err)
	}

	if resp.Updates == nil {
		return len(values), nil
	}
	return int(resp.Updates.UpdatedRows), nil
}

// UpdateValues overwrites rows starting at the range's top-left cell
func (c *Client) UpdateValues(ctx context.Context, spreadsheetID, a1Range string, values [][]any) (int, error) {
	resp, err := c.service.Spreadsheets.Values.Update(spreadsheetID, a1Range, &sheets.ValueRange{Values: values}).
		ValueInputOption(inputRaw).
		Context(ctx).
		Do()
	if err != nil {
		return 0, fmt.Errorf("sheets: update %s: %w", a1Range, err)
	}
	return int(resp.UpdatedRows), nil
}

func (c *Client) ClearValues(ctx context.Context, spreadsheetID, a1Range string) error {
	_, err := c.service.Spreadsheets.Values.Clear(spreadsheetID, a1Range, &sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: clear %s: %w", a1Range, err)
	}
	return nil
}
