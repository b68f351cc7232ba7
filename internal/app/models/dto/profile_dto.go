package dto

import "github.com/skillcredit/backend/internal/app/models"

// Draft edit actions
const (
	EditActionAdd      = "add"
	EditActionUpdate   = "update"
	EditActionRemove   = "remove"
	EditActionSetField = "set"
)

// Draft collection names
const (
	CollectionCertifications   = "certifications"
	CollectionAchievements     = "achievements"
	CollectionResearchPapers   = "researchPapers"
	CollectionHackathonDetails = "hackathonDetails"
	CollectionProjects         = "projects"
)

// EditRequest represents one mutation of the editing session. For "set" the
// Field names a scalar on the profile itself and Collection is empty; for
// "update" both Collection and ItemID are required.
type EditRequest struct {
	Action     string `json:"action" binding:"required,oneof=add update remove set"`
	Collection string `json:"collection,omitempty"`
	ItemID     string `json:"itemId,omitempty"`
	Field      string `json:"field,omitempty"`
	Value      string `json:"value,omitempty"`
}

// DraftResponse represents the current state of the editing session
type DraftResponse struct {
	Profile models.StudentProfile `json:"profile"`
}

// SubmitResponse represents the outcome of saving the profile. ScoreSynced
// is false when the external score push failed; the save itself succeeded.
type SubmitResponse struct {
	Profile     models.StudentProfile `json:"profile"`
	ScoreSynced bool                  `json:"scoreSynced"`
	Warning     string                `json:"warning,omitempty"`
}

// ImageUploadResponse represents a stored profile image
type ImageUploadResponse struct {
	ImageURL string `json:"imageUrl"`
}
