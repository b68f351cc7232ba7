package models

import "time"

// JobType classifies a posting
type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeInternship JobType = "Internship"
)

// JobPosting is a position gated by a required credit score. Postings are
// local fixture data; there is no network contract for them.
type JobPosting struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Company       string   `json:"company"`
	Location      string   `json:"location"`
	Type          JobType  `json:"type"`
	Description   string   `json:"description"`
	RequiredScore int      `json:"requiredScore"`
	PostedDate    string   `json:"postedDate"`
	Skills        []string `json:"skills"`
}

// JobApplication records that a profile applied to a posting, based on the
// 'job_applications' table. (profile_id, job_id) is unique.
type JobApplication struct {
	ID        int64     `json:"id" db:"id"`
	ProfileID string    `json:"profileId" db:"profile_id"`
	JobID     string    `json:"jobId" db:"job_id"`
	AppliedAt time.Time `json:"appliedAt" db:"applied_at"`
}
