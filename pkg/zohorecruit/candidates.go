package zohorecruit

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel/attribute"
)

const (
	opCreateCandidate = "create_candidate"
	opFindCandidate   = "find_candidate"
	opAssociate       = "associate_candidate"

	codeDuplicateData = "DUPLICATE_DATA"
	candidateSource   = "Unified API"
	assocComment      = "Applied via Unified API"

	msgCandidateCreated    = "Candidate created successfully"
	msgCandidateExisting   = "Candidate already exists; using existing record"
	msgCandidateUnresolved = "Candidate already exists but the existing record could not be found"
)

// CreateCandidate creates a candidate and, when a job id is given, links the
// candidate to that job. The link is best-effort: its outcome is reported on the
// result and never fails the call.
func (c *Client) CreateCandidate(ctx context.Context, in CandidateInput) (res CandidateResult, err error) {
	ctx, span := c.startSpan(ctx, opCreateCandidate, attribute.Bool("zohorecruit.has_job", in.JobID != ""))
	defer func() { endSpan(span, err) }()

	first, last := candidateNames(in)
	record := map[string]any{
		"First_Name": first,
		"Last_Name":  last,
		fieldEmail:   strings.TrimSpace(in.Email),
		"Source":     candidateSource,
	}
	if in.Phone != "" {
		record["Mobile"] = strings.TrimSpace(in.Phone)
	}
	if in.ResumeURL != "" {
		record["Website"] = strings.TrimSpace(in.ResumeURL)
	}

	resp, err := c.call(ctx, opCreateCandidate, http.MethodPost, "Candidates", nil, mutationRequest{
		Data: []map[string]any{record},
	}, callTimeout)
	if err != nil {
		return CandidateResult{}, err
	}

	var id string
	result, err := firstMutationResult(opCreateCandidate, resp)
	switch {
	case err == nil:
		id, _ = result.Details.Field(fieldID).Text()
		res.Message = msgCandidateCreated
	case result.Code == codeDuplicateData:
		res.Duplicate = true
		id = c.findCandidateByEmail(ctx, in.Email)
		if id != "" {
			res.Message = msgCandidateExisting
		} else {
			res.Message = msgCandidateUnresolved
		}
	default:
		return CandidateResult{}, err
	}

	if id == "" {
		c.logger.Warn("candidate id unresolved", "op", opCreateCandidate, "duplicate", res.Duplicate)
		return res, nil
	}
	res.ID = &id

	if in.JobID != "" {
		res.Association = c.associate(ctx, id, in.JobID)
		if res.Association.Err != nil {
			c.logger.Warn("candidate association failed",
				"op", opAssociate, "candidate_id", id, "job_id", in.JobID, "err", res.Association.Err)
		}
	}

	return res, nil
}

func candidateNames(in CandidateInput) (string, string) {
	first := strings.TrimSpace(in.FirstName)
	if first == "" {
		return SplitName(in.Name)
	}
	last := strings.TrimSpace(in.LastName)
	if last == "" {
		last = lastNamePlaceholder
	}
	return first, last
}

// findCandidateByEmail returns the first candidate with the given email or ""
func (c *Client) findCandidateByEmail(ctx context.Context, email string) string {
	q := url.Values{}
	q.Set("criteria", fmt.Sprintf("(Email:equals:%s)", strings.TrimSpace(email)))
	q.Set("page", "1")
	q.Set("per_page", "1")

	resp, err := c.call(ctx, opFindCandidate, http.MethodGet, "Candidates/search", q, nil, callTimeout)
	if err != nil {
		c.logger.Warn("duplicate candidate lookup failed", "op", opFindCandidate, "err", err)
		return ""
	}
	if resp.status == http.StatusNoContent {
		return ""
	}
	if !resp.ok() {
		c.logger.Warn("duplicate candidate lookup rejected",
			"op", opFindCandidate, "status", resp.status, "body", resp.snippet())
		return ""
	}

	var payload listResponse
	if err := resp.decode(&payload); err != nil || len(payload.Data) == 0 {
		return ""
	}
	id, _ := payload.Data[0].Field(fieldID).Text()
	return id
}

// associate links a candidate to a job opening. Failures are reported on the
// outcome, never returned.
func (c *Client) associate(ctx context.Context, candidateID, jobID string) (out AssociationOutcome) {
	out.Attempted = true

	resp, err := c.call(ctx, opAssociate, http.MethodPut, "Candidates/actions/associate", nil, mutationRequest{
		Data: []map[string]any{{
			"jobids":   []string{jobID},
			"ids":      []string{candidateID},
			"comments": assocComment,
		}},
	}, assocTimeout)
	if err != nil {
		out.Err = err
		return out
	}

	if _, err := firstMutationResult(opAssociate, resp); err != nil {
		out.Err = err
		return out
	}

	out.Linked = true
	return out
}

