package api

import (
	"net/http"
	"strings"

	"github.com/honeycarbs/unified-ats/internal/domain"
)

type createJobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Location    string `json:"location"` // alias for city
	Remote      bool   `json:"remote"`
}

func (req createJobRequest) spec() (domain.JobSpec, error) {
	spec := domain.JobSpec{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		City:        strings.TrimSpace(req.City),
		Country:     strings.TrimSpace(req.Country),
		Remote:      req.Remote,
	}
	if spec.City == "" {
		spec.City = strings.TrimSpace(req.Location)
	}

	if spec.Title == "" || (!spec.Remote && spec.City == "" && spec.Country == "") {
		return spec, invalid("Missing required fields: title, location")
	}
	return spec, nil
}

type createCandidateRequest struct {
	Name      string `json:"name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	ResumeURL string `json:"resume_url"`
	JobID     string `json:"job_id"`
}

func (req createCandidateRequest) input() (domain.CandidateInput, error) {
	in := domain.CandidateInput{
		Name:      strings.TrimSpace(req.Name),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		ResumeURL: strings.TrimSpace(req.ResumeURL),
		JobID:     strings.TrimSpace(req.JobID),
	}

	if (in.Name == "" && in.FirstName == "") || in.Email == "" || in.JobID == "" {
		return in, invalid("Missing required fields: name, email, job_id")
	}
	return in, nil
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, "ok")
}

func (h *Handler) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.svc.ListJobs(r.Context())
	if err != nil {
		writeError(w, "Failed to fetch jobs", err)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

func (h *Handler) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req createJobRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "Failed to create job", err)
		return
	}

	spec, err := req.spec()
	if err != nil {
		writeError(w, "Failed to create job", err)
		return
	}

	conf, err := h.svc.CreateJob(r.Context(), spec)
	if err != nil {
		writeError(w, "Failed to create job", err)
		return
	}
	writeJSON(w, http.StatusCreated, conf)
}

func (h *Handler) handleListApplications(w http.ResponseWriter, r *http.Request) {
	jobID := strings.TrimSpace(r.URL.Query().Get("job_id"))
	if jobID == "" {
		writeError(w, "Failed to fetch applications", invalid("Missing required query parameter: job_id"))
		return
	}

	writeJSON(w, http.StatusOK, h.svc.ListApplications(r.Context(), jobID))
}

func (h *Handler) handleCreateCandidate(w http.ResponseWriter, r *http.Request) {
	var req createCandidateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "Failed to create candidate", err)
		return
	}

	in, err := req.input()
	if err != nil {
		writeError(w, "Failed to create candidate", err)
		return
	}

	res, err := h.svc.CreateCandidate(r.Context(), in)
	if err != nil {
		writeError(w, "Failed to create candidate", err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}
