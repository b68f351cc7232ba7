package profile

import (
	"encoding/json"
	"time"

	"github.com/skillcredit/backend/internal/app/models"
)

// FromPersisted converts a stored row into the in-memory aggregate. The
// conversion is total: missing or null scalars become zero values, and each
// collection field that is absent, null, or not a JSON array becomes an
// empty slice. It never returns an error; a malformed row yields a usable
// profile, not a failure.
func FromPersisted(row *Persisted) models.StudentProfile {
	p := models.StudentProfile{
		ID:               row.ID,
		FullName:         deref(row.FullName),
		CollegeName:      deref(row.CollegeName),
		Course:           deref(row.Course),
		Degree:           deref(row.Degree),
		Address:          deref(row.Address),
		ProfileImage:     deref(row.ProfileImage),
		HackathonDetails: decodeSlice[models.HackathonDetail](row.HackathonDetails),
		Certifications:   decodeSlice[models.Certification](row.Certifications),
		Achievements:     decodeSlice[models.Achievement](row.Achievements),
		ResearchPapers:   decodeSlice[models.ResearchPaper](row.ResearchPapers),
		Projects:         decodeSlice[models.Project](row.Projects),
	}
	if row.CGPA != nil {
		p.CGPA = *row.CGPA
	}
	if row.DegreeCompleted != nil {
		p.DegreeCompleted = *row.DegreeCompleted
	}
	if row.HackathonParticipation != nil {
		p.HackathonParticipation = *row.HackathonParticipation
	}
	if row.HackathonWins != nil {
		p.HackathonWins = *row.HackathonWins
	}
	return p
}

// ToPersisted converts the aggregate into the stored row shape and stamps
// updated_at with the current time. It is total for partial profiles; zero
// values persist as their zero value, not as null.
func ToPersisted(p models.StudentProfile) *Persisted {
	return &Persisted{
		ID:                     p.ID,
		FullName:               ptr(p.FullName),
		CollegeName:            ptr(p.CollegeName),
		Course:                 ptr(p.Course),
		Degree:                 ptr(p.Degree),
		Address:                ptr(p.Address),
		CGPA:                   ptr(p.CGPA),
		DegreeCompleted:        ptr(p.DegreeCompleted),
		HackathonParticipation: ptr(p.HackathonParticipation),
		HackathonWins:          ptr(p.HackathonWins),
		HackathonDetails:       encodeSlice(p.HackathonDetails),
		Certifications:         encodeSlice(p.Certifications),
		Achievements:           encodeSlice(p.Achievements),
		ResearchPapers:         encodeSlice(p.ResearchPapers),
		Projects:               encodeSlice(p.Projects),
		ProfileImage:           ptr(p.ProfileImage),
		UpdatedAt:              time.Now().UTC(),
	}
}

// decodeSlice tolerates anything that is not a JSON array of T by returning
// the empty slice. Stored rows can carry nulls or stray shapes from older
// writers; reads must not fail on them.
func decodeSlice[T any](raw json.RawMessage) []T {
	if len(raw) == 0 {
		return []T{}
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return []T{}
	}
	return items
}

func encodeSlice[T any](items []T) json.RawMessage {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return json.RawMessage("[]")
	}
	return raw
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ptr[T any](v T) *T { return &v }
