package zohorecruit

import (
	"net/http"
	"time"

	"github.com/honeycarbs/unified-ats/pkg/logging"
)

// Config defines Zoho Recruit client settings
type Config struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	BaseURL      string // e.g. https://recruit.zoho.in/recruit/v2
	AuthURL      string
	TokenTTL     time.Duration
	HTTPClient   *http.Client
	PageSize     int
	TokenStore   TokenStore
	Logger       *logging.Logger
	Clock        func() time.Time
}

// Client talks to the Zoho Recruit v2 API
type Client struct {
	baseURL    string
	httpClient *http.Client
	pageSize   int
	tokens     *TokenCache
	logger     *logging.Logger
	clock      func() time.Time
}

// Job is a job opening in unified form
type Job struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	ExternalURL string `json:"external_url"`
	Description string `json:"description"`
}

// JobSpec describes a job opening to create
type JobSpec struct {
	Title       string
	Description string
	City        string
	Country     string
	Remote      bool
}

// JobConfirmation is returned after a job opening was created
type JobConfirmation struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// CandidateInput describes a candidate to create
type CandidateInput struct {
	Name      string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	ResumeURL string
	JobID     string
}

// CandidateResult is the outcome of CreateCandidate. ID is nil when neither the
// created record nor a duplicate could be resolved.
type CandidateResult struct {
	ID          *string            `json:"id"`
	Message     string             `json:"message"`
	Duplicate   bool               `json:"-"`
	Association AssociationOutcome `json:"-"`
}

// AssociationOutcome reports the best-effort candidate to job link
type AssociationOutcome struct {
	Attempted bool
	Linked    bool
	Err       error
}

// Application is a candidate's application to a job opening
type Application struct {
	ID            string `json:"id"`
	CandidateID   string `json:"candidate_id"`
	CandidateName string `json:"candidate_name"`
	Email         string `json:"email"`
	Status        string `json:"status"`
}

type listResponse struct {
	Data []Record `json:"data"`
	Info struct {
		PerPage     int  `json:"per_page"`
		Count       int  `json:"count"`
		Page        int  `json:"page"`
		MoreRecords bool `json:"more_records"`
	} `json:"info"`
}

// mutationResponse is the envelope Zoho wraps insert/update/action results in
type mutationResponse struct {
	Data []mutationResult `json:"data"`
}

type mutationResult struct {
	Code    string `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Details Record `json:"details"`
}

type mutationRequest struct {
	Data []map[string]any `json:"data"`
}
