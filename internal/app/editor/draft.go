package editor

import (
	"strconv"
	"sync"

	"github.com/skillcredit/backend/internal/app/models"
)

// Draft is one user's in-progress editing session: the scalar fields plus
// an editor per sub-entity collection. A draft is begun from the persisted
// profile (or a blank template for new users), mutated by edit operations,
// and consumed on submit.
type Draft struct {
	ID              string
	FullName        string
	CollegeName     string
	Course          string
	Degree          string
	Address         string
	CGPA            float64
	DegreeCompleted bool
	ProfileImage    string

	Certifications   *Editor[models.Certification]
	Achievements     *Editor[models.Achievement]
	ResearchPapers   *Editor[models.ResearchPaper]
	HackathonDetails *Editor[models.HackathonDetail]
	Projects         *Editor[models.Project]
}

// NewDraft begins an editing session from the given profile state. Empty
// collections are seeded with one blank row each.
func NewDraft(p models.StudentProfile) *Draft {
	return &Draft{
		ID:              p.ID,
		FullName:        p.FullName,
		CollegeName:     p.CollegeName,
		Course:          p.Course,
		Degree:          p.Degree,
		Address:         p.Address,
		CGPA:            p.CGPA,
		DegreeCompleted: p.DegreeCompleted,
		ProfileImage:    p.ProfileImage,

		Certifications:   New(p.Certifications, BlankCertification, SetCertificationField),
		Achievements:     New(p.Achievements, BlankAchievement, SetAchievementField),
		ResearchPapers:   New(p.ResearchPapers, BlankResearchPaper, SetResearchPaperField),
		HackathonDetails: New(p.HackathonDetails, BlankHackathonDetail, SetHackathonDetailField),
		Projects:         New(p.Projects, BlankProject, SetProjectField),
	}
}

// SetScalar applies a scalar field edit. Unknown fields are ignored; a
// malformed cgpa value leaves the previous value in place.
func (d *Draft) SetScalar(field, value string) {
	switch field {
	case "fullName":
		d.FullName = value
	case "collegeName":
		d.CollegeName = value
	case "course":
		d.Course = value
	case "degree":
		d.Degree = value
	case "address":
		d.Address = value
	case "cgpa":
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			d.CGPA = v
		}
	case "degreeCompleted":
		d.DegreeCompleted = value == "true"
	}
}

// Snapshot renders the draft's current state as a profile. The result is
// the raw editing state: unfiltered collections, derived counters unset.
// Filtering and counter recomputation happen at submit.
func (d *Draft) Snapshot() models.StudentProfile {
	return models.StudentProfile{
		ID:               d.ID,
		FullName:         d.FullName,
		CollegeName:      d.CollegeName,
		Course:           d.Course,
		Degree:           d.Degree,
		Address:          d.Address,
		CGPA:             d.CGPA,
		DegreeCompleted:  d.DegreeCompleted,
		ProfileImage:     d.ProfileImage,
		Certifications:   d.Certifications.Items(),
		Achievements:     d.Achievements.Items(),
		ResearchPapers:   d.ResearchPapers.Items(),
		HackathonDetails: d.HackathonDetails.Items(),
		Projects:         d.Projects.Items(),
	}
}

// Store holds the active drafts keyed by profile id. Sessions live in
// memory; a server restart discards unsaved edits.
type Store struct {
	mu     sync.Mutex
	drafts map[string]*Draft
}

// NewStore creates an empty draft store.
func NewStore() *Store {
	return &Store{drafts: make(map[string]*Draft)}
}

// Begin replaces any existing session for the profile with a fresh draft.
func (s *Store) Begin(p models.StudentProfile) *Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := NewDraft(p)
	s.drafts[p.ID] = d
	return d
}

// Mutate runs fn against the active draft under the store lock, so edit
// operations on the same session never interleave. It returns false when no
// session exists for the profile.
func (s *Store) Mutate(profileID string, fn func(*Draft)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[profileID]
	if !ok {
		return false
	}
	fn(d)
	return true
}

// End discards the session for the profile.
func (s *Store) End(profileID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, profileID)
}
