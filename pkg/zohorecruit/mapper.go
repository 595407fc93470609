package zohorecruit

import (
	"strings"
)

const (
	unknownCandidate     = "Unknown Candidate"
	missingCandidateID   = "N/A"
	missingEmail         = "No Email"
	defaultAppStatus     = "Associated"
	defaultJobStatus     = "OPEN"
	locationRemote       = "Remote"
	locationUnspecified  = "Location not specified"
	lastNamePlaceholder  = "Candidate"
	applicationSeparator = " for "
)

// Zoho field API names
const (
	fieldID                = "id"
	fieldJobOpeningName    = "Job_Opening_Name"
	fieldJobOpeningStatus  = "Job_Opening_Status"
	fieldJobOpeningURL     = "Job_Opening_URL"
	fieldJobDescription    = "Job_Description"
	fieldRemoteJob         = "Remote_Job"
	fieldCity              = "City"
	fieldCountry           = "Country"
	fieldJobOpeningID      = "$Job_Opening_Id"
	fieldCandidateName     = "Candidate_Name"
	fieldFullName          = "Full_Name"
	fieldApplicationName   = "Application_Name"
	fieldCandidateID       = "Candidate_ID"
	fieldCandidateSystemID = "$Candidate_Id"
	fieldApplicationStatus = "Application_Status"
	fieldEmail             = "Email"
)

// DeriveLocation renders the display location of a job opening
func DeriveLocation(remote bool, city, country string) string {
	city = strings.TrimSpace(city)
	country = strings.TrimSpace(country)

	switch {
	case remote:
		return locationRemote
	case city != "" && country != "":
		return city + ", " + country
	case city != "":
		return city
	case country != "":
		return country
	default:
		return locationUnspecified
	}
}

// SplitName breaks a combined name into first and last name. The last name falls
// back to a placeholder for single-token names.
func SplitName(name string) (first, last string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", lastNamePlaceholder
	}
	first = parts[0]
	last = strings.Join(parts[1:], " ")
	if last == "" {
		last = lastNamePlaceholder
	}
	return first, last
}

// NormalizeStatus upper-cases a vendor status. ASSOCIATED is reported as APPLIED.
func NormalizeStatus(status string) string {
	s := strings.ToUpper(strings.TrimSpace(status))
	if s == "ASSOCIATED" {
		return "APPLIED"
	}
	return s
}

func mapJob(r Record) Job {
	city, _ := r.Field(fieldCity).Text()
	country, _ := r.Field(fieldCountry).Text()
	id, _ := r.Field(fieldID).Text()
	title, _ := r.Field(fieldJobOpeningName).Text()
	url, _ := r.Field(fieldJobOpeningURL).Text()
	description, _ := r.Field(fieldJobDescription).Text()

	return Job{
		ID:          id,
		Title:       title,
		Location:    DeriveLocation(r.Field(fieldRemoteJob).Bool(), city, country),
		Status:      strings.ToUpper(resolveText(r, defaultJobStatus, fieldText(fieldJobOpeningStatus))),
		ExternalURL: url,
		Description: description,
	}
}

func mapApplication(r Record) Application {
	id, _ := r.Field(fieldID).Text()

	return Application{
		ID:            id,
		CandidateID:   resolveText(r, missingCandidateID, fieldText(fieldCandidateID), fieldText(fieldCandidateSystemID)),
		CandidateName: resolveText(r, unknownCandidate, fieldRef(fieldCandidateName, "name"), fieldText(fieldFullName), applicationNamePrefix),
		Email:         resolveText(r, missingEmail, fieldText(fieldEmail)),
		Status:        NormalizeStatus(resolveText(r, defaultAppStatus, fieldText(fieldApplicationStatus))),
	}
}

// applicationNamePrefix reads "<name> for <job title>" and keeps the name
func applicationNamePrefix(r Record) (string, bool) {
	s, ok := r.Field(fieldApplicationName).Text()
	if !ok {
		return "", false
	}
	if before, _, found := strings.Cut(s, applicationSeparator); found {
		before = strings.TrimSpace(before)
		return before, before != ""
	}
	return s, true
}

// applicationJobID resolves the job opening an application belongs to
func applicationJobID(r Record) (string, bool) {
	return resolveRef(r, fieldRef(fieldJobOpeningID, fieldID), fieldRef(fieldJobOpeningName, fieldID))
}

func resolveRef(r Record, steps ...textResolver) (string, bool) {
	for _, step := range steps {
		if s, ok := step(r); ok {
			return s, true
		}
	}
	return "", false
}
