package dto

import "github.com/skillcredit/backend/internal/app/models"

// JobPostingResponse represents a posting annotated with the caller's
// eligibility. Eligible is nil when the score could not be fetched.
type JobPostingResponse struct {
	models.JobPosting
	Eligible *bool `json:"eligible,omitempty"`
	Applied  bool  `json:"applied"`
}

// JobListResponse represents the postings list. CreditScore is nil when the
// scoring service was unreachable; the list is still returned.
type JobListResponse struct {
	Jobs        []JobPostingResponse `json:"jobs"`
	CreditScore *int                 `json:"creditScore,omitempty"`
}

// ApplyResponse represents a recorded job application
type ApplyResponse struct {
	JobID     string `json:"jobId"`
	AppliedAt string `json:"appliedAt"`
}
