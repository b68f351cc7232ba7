// Package profile holds the normalization, aggregation and filtering core
// for student profiles: the translation between the persisted row shape and
// the in-memory aggregate, derived hackathon counters, and the empty-item
// filter applied before every save.
package profile

import (
	"encoding/json"
	"time"
)

// Persisted is the external row shape of a profile: snake_case keys, pointer
// scalars for nullable columns, raw JSON for the sub-entity collections.
// Nothing outside this package should construct one by hand.
type Persisted struct {
	ID                     string          `json:"id"`
	FullName               *string         `json:"full_name"`
	CollegeName            *string         `json:"college_name"`
	Course                 *string         `json:"course"`
	Degree                 *string         `json:"degree"`
	Address                *string         `json:"address"`
	CGPA                   *float64        `json:"cgpa"`
	DegreeCompleted        *bool           `json:"degree_completed"`
	HackathonParticipation *int            `json:"hackathon_participation"`
	HackathonWins          *int            `json:"hackathon_wins"`
	HackathonDetails       json.RawMessage `json:"hackathon_details"`
	Certifications         json.RawMessage `json:"certifications"`
	Achievements           json.RawMessage `json:"achievements"`
	ResearchPapers         json.RawMessage `json:"research_papers"`
	Projects               json.RawMessage `json:"projects"`
	ProfileImage           *string         `json:"profile_image"`
	UpdatedAt              time.Time       `json:"updated_at"`
}
