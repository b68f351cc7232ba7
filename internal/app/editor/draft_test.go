package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillcredit/backend/internal/app/models"
)

func TestNewDraftSeedsEachCollection(t *testing.T) {
	d := NewDraft(models.StudentProfile{ID: "user-1"})

	assert.Len(t, d.Certifications.Items(), 1)
	assert.Len(t, d.Achievements.Items(), 1)
	assert.Len(t, d.ResearchPapers.Items(), 1)
	assert.Len(t, d.HackathonDetails.Items(), 1)
	assert.Len(t, d.Projects.Items(), 1)
}

func TestNewDraftCarriesExistingItems(t *testing.T) {
	p := models.StudentProfile{
		ID:       "user-1",
		FullName: "Asha Rao",
		Certifications: []models.Certification{
			{ID: "c1", Name: "AWS SAA"},
		},
	}

	d := NewDraft(p)

	assert.Equal(t, "Asha Rao", d.FullName)
	items := d.Certifications.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "AWS SAA", items[0].Name)
}

func TestSetScalar(t *testing.T) {
	d := NewDraft(models.StudentProfile{ID: "user-1"})

	d.SetScalar("fullName", "Asha Rao")
	d.SetScalar("cgpa", "8.7")
	d.SetScalar("degreeCompleted", "true")

	assert.Equal(t, "Asha Rao", d.FullName)
	assert.Equal(t, 8.7, d.CGPA)
	assert.True(t, d.DegreeCompleted)
}

func TestSetScalarMalformedCGPAKeepsPrevious(t *testing.T) {
	d := NewDraft(models.StudentProfile{ID: "user-1", CGPA: 7.5})

	d.SetScalar("cgpa", "not a number")

	assert.Equal(t, 7.5, d.CGPA)
}

func TestSnapshotReflectsEdits(t *testing.T) {
	d := NewDraft(models.StudentProfile{ID: "user-1"})
	d.SetScalar("collegeName", "IIT Madras")
	certID := d.Certifications.Items()[0].ID
	d.Certifications.Update(certID, "name", "AWS SAA")

	snapshot := d.Snapshot()

	assert.Equal(t, "IIT Madras", snapshot.CollegeName)
	require.Len(t, snapshot.Certifications, 1)
	assert.Equal(t, "AWS SAA", snapshot.Certifications[0].Name)
}

func TestStoreLifecycle(t *testing.T) {
	s := NewStore()

	ok := s.Mutate("user-1", func(d *Draft) {})
	assert.False(t, ok, "no session yet")

	s.Begin(models.StudentProfile{ID: "user-1"})

	var fullName string
	ok = s.Mutate("user-1", func(d *Draft) {
		d.SetScalar("fullName", "Asha Rao")
		fullName = d.FullName
	})
	assert.True(t, ok)
	assert.Equal(t, "Asha Rao", fullName)

	s.End("user-1")
	ok = s.Mutate("user-1", func(d *Draft) {})
	assert.False(t, ok, "session discarded")
}

func TestBeginReplacesExistingSession(t *testing.T) {
	s := NewStore()
	s.Begin(models.StudentProfile{ID: "user-1"})
	s.Mutate("user-1", func(d *Draft) { d.SetScalar("fullName", "Old Draft") })

	s.Begin(models.StudentProfile{ID: "user-1", FullName: "Saved Name"})

	var fullName string
	s.Mutate("user-1", func(d *Draft) { fullName = d.FullName })
	assert.Equal(t, "Saved Name", fullName)
}
