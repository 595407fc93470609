package zohorecruit

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel/attribute"
)

const opSearchApplications = "search_applications"

// SearchApplications lists the applications for a job opening. It never fails:
// any vendor, auth or transport problem is logged and the records gathered so far
// are returned.
//
// Zoho's criteria filter on job id is not reliable and may return applications
// for other openings, so every record is checked again here.
func (c *Client) SearchApplications(ctx context.Context, jobID string) []Application {
	ctx, span := c.startSpan(ctx, opSearchApplications, attribute.String("zohorecruit.job_id", jobID))
	defer span.End()

	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return []Application{}
	}

	q := url.Values{}
	q.Set("criteria", fmt.Sprintf("(($Job_Opening_Id:equals:%s))", jobID))

	records, failure := c.fetchPages(ctx, opSearchApplications, "Applications/search", q)
	if failure != nil {
		span.RecordError(failure.err)
		c.logger.Warn("application search degraded",
			"op", opSearchApplications, "job_id", jobID, "page", failure.page,
			"kept", len(records), "err", failure.err)
	}

	apps := make([]Application, 0, len(records))
	dropped := 0
	for _, r := range records {
		if id, ok := applicationJobID(r); !ok || id != jobID {
			dropped++
			continue
		}
		apps = append(apps, mapApplication(r))
	}

	if dropped > 0 {
		c.logger.Debug("dropped applications for other jobs", "job_id", jobID, "dropped", dropped)
	}
	span.SetAttributes(attribute.Int("zohorecruit.records", len(apps)), attribute.Int("zohorecruit.dropped", dropped))

	return apps
}
