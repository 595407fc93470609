package domain

// Job is the normalized job opening
type Job struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	ExternalURL string `json:"external_url"`
	Description string `json:"description"`
}

// JobSpec is the input for opening a new job
type JobSpec struct {
	Title       string
	Description string
	City        string
	Country     string
	Remote      bool
}

// JobConfirmation acknowledges a created job
type JobConfirmation struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// CandidateInput is the input for creating a candidate
type CandidateInput struct {
	Name      string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	ResumeURL string
	JobID     string
}

// Association reports the best-effort link between a candidate and a job
type Association struct {
	Attempted bool
	Linked    bool
	Err       error
}

// CandidateResult is the outcome of creating a candidate. ID is nil when the
// vendor reported a duplicate that could not be resolved to an existing record.
type CandidateResult struct {
	ID          *string     `json:"id"`
	Message     string      `json:"message"`
	Duplicate   bool        `json:"-"`
	Association Association `json:"-"`
}

// Application is a candidate's application to a job
type Application struct {
	ID            string `json:"id"`
	CandidateID   string `json:"candidate_id"`
	CandidateName string `json:"candidate_name"`
	Email         string `json:"email"`
	Status        string `json:"status"`
}
