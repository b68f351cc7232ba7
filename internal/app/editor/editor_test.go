package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillcredit/backend/internal/app/models"
)

func newCertEditor(items []models.Certification) *Editor[models.Certification] {
	return New(items, BlankCertification, SetCertificationField)
}

func TestNewEditorSeedsBlankRowWhenEmpty(t *testing.T) {
	e := newCertEditor(nil)

	items := e.Items()
	require.Len(t, items, 1)
	assert.NotEmpty(t, items[0].ID)
	assert.Empty(t, items[0].Name)
}

func TestAddAppendsFreshBlank(t *testing.T) {
	e := newCertEditor(nil)
	e.Add()

	items := e.Items()
	require.Len(t, items, 2)
	assert.NotEqual(t, items[0].ID, items[1].ID, "each row gets its own id")
}

func TestUpdateTouchesOnlyTargetItem(t *testing.T) {
	e := newCertEditor([]models.Certification{
		{ID: "c1", Name: "Original One"},
		{ID: "c2", Name: "Original Two"},
	})

	e.Update("c2", "name", "Changed")

	items := e.Items()
	assert.Equal(t, "Original One", items[0].Name, "sibling must be untouched")
	assert.Equal(t, "Changed", items[1].Name)
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	e := newCertEditor([]models.Certification{{ID: "c1", Name: "Keep"}})

	e.Update("missing", "name", "Changed")

	assert.Equal(t, "Keep", e.Items()[0].Name)
}

func TestUpdateUnknownFieldIsNoOp(t *testing.T) {
	e := newCertEditor([]models.Certification{{ID: "c1", Name: "Keep"}})

	e.Update("c1", "nonsense", "Changed")

	assert.Equal(t, models.Certification{ID: "c1", Name: "Keep"}, e.Items()[0])
}

func TestRemoveDeletesWhenMultipleItems(t *testing.T) {
	e := newCertEditor([]models.Certification{
		{ID: "c1", Name: "One"},
		{ID: "c2", Name: "Two"},
	})

	e.Remove("c1")

	items := e.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "c2", items[0].ID)
}

func TestRemoveLastItemResetsToFreshBlank(t *testing.T) {
	e := newCertEditor([]models.Certification{
		{ID: "c1", Name: "AWS SAA", Issuer: "Amazon"},
	})

	e.Remove("c1")

	items := e.Items()
	require.Len(t, items, 1)
	assert.NotEqual(t, "c1", items[0].ID, "reset row gets a new id")
	assert.Empty(t, items[0].Name)
	assert.Empty(t, items[0].Issuer)
}

func TestRemoveUnknownIDIsNoOp(t *testing.T) {
	e := newCertEditor([]models.Certification{{ID: "c1", Name: "Keep"}})

	e.Remove("missing")

	require.Len(t, e.Items(), 1)
	assert.Equal(t, "c1", e.Items()[0].ID)
}

func TestBlankProjectDefaults(t *testing.T) {
	p := BlankProject()

	assert.NotEmpty(t, p.ID)
	assert.True(t, p.Ongoing)
	assert.NotEmpty(t, p.StartDate)
	assert.Empty(t, p.EndDate)
	assert.NotNil(t, p.Technologies)
}

func TestSetProjectFieldTechnologies(t *testing.T) {
	p := BlankProject()

	SetProjectField(&p, "technologies", "React, Node.js,  , TypeScript")

	assert.Equal(t, []string{"React", "Node.js", "TypeScript"}, p.Technologies)
}

func TestSetProjectFieldOngoingClearsEndDate(t *testing.T) {
	p := BlankProject()
	SetProjectField(&p, "ongoing", "false")
	SetProjectField(&p, "endDate", "2026-01-15")

	SetProjectField(&p, "ongoing", "true")

	assert.True(t, p.Ongoing)
	assert.Empty(t, p.EndDate)
}

func TestParseTechnologies(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain list", "React,Go", []string{"React", "Go"}},
		{"spaces and blanks", "React, Node.js,  , TypeScript", []string{"React", "Node.js", "TypeScript"}},
		{"single entry", "Go", []string{"Go"}},
		{"empty string", "", []string{}},
		{"only separators", " , ,, ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTechnologies(tt.input))
		})
	}
}

func TestJoinTechnologies(t *testing.T) {
	assert.Equal(t, "React, Go", JoinTechnologies([]string{"React", "Go"}))
	assert.Equal(t, "", JoinTechnologies(nil))
}

func TestSetHackathonDetailFieldWon(t *testing.T) {
	h := BlankHackathonDetail()

	SetHackathonDetailField(&h, "won", "true")
	assert.True(t, h.Won)

	SetHackathonDetailField(&h, "won", "false")
	assert.False(t, h.Won)
}

func TestItemsReturnsCopy(t *testing.T) {
	e := newCertEditor([]models.Certification{{ID: "c1", Name: "One"}})

	items := e.Items()
	items[0].Name = "Mutated"

	assert.Equal(t, "One", e.Items()[0].Name)
}
