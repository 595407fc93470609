package zohorecruit

import (
	"context"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"
)

const (
	opListJobs  = "list_jobs"
	opCreateJob = "create_job"

	targetDateOffsetDays = 30
	minDescriptionLength = 150
	descriptionFiller    = " We are looking for motivated people to join our growing team."
	openingStatusNew     = "In-progress"
	dateLayout           = "2006-01-02"
)

// ListJobs returns every job opening, walking all pages
func (c *Client) ListJobs(ctx context.Context) (jobs []Job, err error) {
	ctx, span := c.startSpan(ctx, opListJobs)
	defer func() { endSpan(span, err) }()

	records, failure := c.fetchPages(ctx, opListJobs, "JobOpenings", nil)
	if failure != nil {
		return nil, failure.err
	}

	jobs = make([]Job, 0, len(records))
	for _, r := range records {
		jobs = append(jobs, mapJob(r))
	}
	span.SetAttributes(attribute.Int("zohorecruit.records", len(jobs)))

	return jobs, nil
}

// CreateJob opens a new job opening
func (c *Client) CreateJob(ctx context.Context, spec JobSpec) (conf JobConfirmation, err error) {
	ctx, span := c.startSpan(ctx, opCreateJob, attribute.Bool("zohorecruit.remote", spec.Remote))
	defer func() { endSpan(span, err) }()

	resp, err := c.call(ctx, opCreateJob, http.MethodPost, "JobOpenings", nil, mutationRequest{
		Data: []map[string]any{c.jobPayload(spec)},
	}, callTimeout)
	if err != nil {
		return JobConfirmation{}, err
	}

	result, err := firstMutationResult(opCreateJob, resp)
	if err != nil {
		return JobConfirmation{}, err
	}

	id, _ := result.Details.Field(fieldID).Text()
	return JobConfirmation{ID: id, Message: "Job created successfully"}, nil
}

func (c *Client) jobPayload(spec JobSpec) map[string]any {
	now := c.clock()

	record := map[string]any{
		fieldJobOpeningName:   strings.TrimSpace(spec.Title),
		fieldJobDescription:   PadDescription(spec.Description),
		fieldJobOpeningStatus: openingStatusNew,
		fieldRemoteJob:        spec.Remote,
		"Date_Opened":         now.Format(dateLayout),
		"Target_Date":         now.AddDate(0, 0, targetDateOffsetDays).Format(dateLayout),
		"Number_of_Positions": "1",
	}

	if !spec.Remote {
		if city := strings.TrimSpace(spec.City); city != "" {
			record[fieldCity] = city
		}
		if country := strings.TrimSpace(spec.Country); country != "" {
			record[fieldCountry] = country
		}
	}

	return record
}

// PadDescription extends short descriptions with filler so Zoho accepts them.
// The original text is always kept as the prefix.
func PadDescription(description string) string {
	out := strings.TrimSpace(description)
	if out == "" {
		out = strings.TrimSpace(descriptionFiller)
	}
	for len(out) < minDescriptionLength {
		out += descriptionFiller
	}
	return out
}

// firstMutationResult checks both the HTTP status and Zoho's per-record status
func firstMutationResult(op string, resp response) (mutationResult, error) {
	var payload mutationResponse
	decodeErr := resp.decode(&payload)

	if decodeErr != nil || len(payload.Data) == 0 {
		if !resp.ok() {
			return mutationResult{}, vendorError(op, resp.status, "", resp.snippet())
		}
		ve := vendorError(op, resp.status, "", "unexpected response shape: "+resp.snippet())
		ve.Err = decodeErr
		return mutationResult{}, ve
	}

	result := payload.Data[0]
	if !resp.ok() || strings.EqualFold(result.Status, "error") {
		return result, vendorError(op, resp.status, result.Code, result.Message)
	}

	return result, nil
}
