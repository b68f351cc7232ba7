package profile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillcredit/backend/internal/app/models"
)

func TestFromPersistedDefaultsEverything(t *testing.T) {
	row := &Persisted{ID: "user-1"}

	p := FromPersisted(row)

	assert.Equal(t, "user-1", p.ID)
	assert.Equal(t, "", p.FullName)
	assert.Equal(t, 0.0, p.CGPA)
	assert.False(t, p.DegreeCompleted)
	assert.Equal(t, 0, p.HackathonParticipation)
	assert.NotNil(t, p.Certifications)
	assert.Empty(t, p.Certifications)
	assert.NotNil(t, p.Projects)
	assert.Empty(t, p.Projects)
}

func TestFromPersistedToleratesMalformedCollections(t *testing.T) {
	tests := []struct {
		name string
		raw  json.RawMessage
	}{
		{"null", json.RawMessage(`null`)},
		{"object instead of array", json.RawMessage(`{"oops":true}`)},
		{"string", json.RawMessage(`"not an array"`)},
		{"number", json.RawMessage(`42`)},
		{"garbage", json.RawMessage(`{{{{`)},
		{"empty bytes", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := &Persisted{ID: "user-1", Certifications: tt.raw}
			p := FromPersisted(row)
			assert.NotNil(t, p.Certifications)
			assert.Empty(t, p.Certifications)
		})
	}
}

func TestFromPersistedDecodesCollections(t *testing.T) {
	row := &Persisted{
		ID:             "user-1",
		Certifications: json.RawMessage(`[{"id":"c1","name":"AWS SAA","issuer":"Amazon","date":"2024-01-05"}]`),
		Projects:       json.RawMessage(`[{"id":"p1","title":"Portfolio","technologies":["React","Go"],"startDate":"2024-02-01","ongoing":true}]`),
	}

	p := FromPersisted(row)

	require.Len(t, p.Certifications, 1)
	assert.Equal(t, "AWS SAA", p.Certifications[0].Name)
	require.Len(t, p.Projects, 1)
	assert.Equal(t, []string{"React", "Go"}, p.Projects[0].Technologies)
	assert.True(t, p.Projects[0].Ongoing)
}

func TestRoundTripFullyPopulatedProfile(t *testing.T) {
	original := models.StudentProfile{
		ID:                     "user-1",
		FullName:               "Asha Rao",
		CollegeName:            "IIT Madras",
		Course:                 "B.Tech",
		Degree:                 "Computer Science",
		Address:                "Chennai",
		CGPA:                   8.7,
		DegreeCompleted:        true,
		HackathonParticipation: 2,
		HackathonWins:          1,
		HackathonDetails: []models.HackathonDetail{
			{ID: "h1", Name: "Smart India Hackathon", Date: "2024-03-10", Position: "1st Place", Won: true},
			{ID: "h2", Name: "HackVerse", Date: "2024-06-02", Won: false},
		},
		Certifications: []models.Certification{
			{ID: "c1", Name: "AWS SAA", Issuer: "Amazon", Date: "2024-01-05"},
		},
		Achievements: []models.Achievement{
			{ID: "a1", Title: "Dean's List", Description: "Top 5% of cohort"},
		},
		ResearchPapers: []models.ResearchPaper{
			{ID: "r1", Title: "Edge Caching Strategies", URL: "https://example.org/paper"},
		},
		Projects: []models.Project{
			{
				ID: "p1", Title: "Portfolio", Description: "Personal site",
				Technologies: []string{"React", "Go"},
				GithubURL:    "https://github.com/asha/portfolio",
				LiveURL:      "https://asha.dev",
				ImageURL:     "https://asha.dev/cover.png",
				StartDate:    "2024-02-01", EndDate: "2024-05-01", Ongoing: false,
			},
		},
		ProfileImage: "user-1/123-photo.png",
	}

	row := ToPersisted(original)
	restored := FromPersisted(row)

	assert.Equal(t, original, restored)
}

func TestToPersistedStampsUpdatedAt(t *testing.T) {
	row := ToPersisted(models.StudentProfile{ID: "user-1"})
	assert.False(t, row.UpdatedAt.IsZero())
}

func TestToPersistedNeverWritesNullCollections(t *testing.T) {
	row := ToPersisted(models.StudentProfile{ID: "user-1"})

	for name, raw := range map[string]json.RawMessage{
		"hackathon_details": row.HackathonDetails,
		"certifications":    row.Certifications,
		"achievements":      row.Achievements,
		"research_papers":   row.ResearchPapers,
		"projects":          row.Projects,
	} {
		assert.JSONEq(t, `[]`, string(raw), "collection %s", name)
	}
}
