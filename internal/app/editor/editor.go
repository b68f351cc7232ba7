// Package editor implements the in-session editing of profile sub-entity
// collections: add/update/remove on identified rows, a soft floor of one
// blank row per collection while editing, and the free-text technologies
// parser for projects.
package editor

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skillcredit/backend/internal/app/models"
)

// Keyed is implemented by the sub-entity types; Key returns the locally
// unique id used to address an item within its collection.
type Keyed interface {
	Key() string
}

// Editor mutates one sub-entity collection during an editing session. It is
// not safe for concurrent use; sessions are mutated through Store.Mutate.
type Editor[T Keyed] struct {
	items    []T
	blank    func() T
	setField func(*T, string, string)
}

// New seeds an editor with the existing items, or a single blank row when
// the collection is empty, so the session always presents at least one row.
func New[T Keyed](items []T, blank func() T, setField func(*T, string, string)) *Editor[T] {
	e := &Editor[T]{blank: blank, setField: setField}
	if len(items) == 0 {
		e.items = []T{blank()}
	} else {
		e.items = append([]T(nil), items...)
	}
	return e
}

// Add appends a fresh blank item with a new id.
func (e *Editor[T]) Add() {
	e.items = append(e.items, e.blank())
}

// Update sets a single field on the item with the given id. An unknown id
// or field name is a no-op; sibling items are never touched.
func (e *Editor[T]) Update(id, field, value string) {
	for i := range e.items {
		if e.items[i].Key() == id {
			e.setField(&e.items[i], field, value)
			return
		}
	}
}

// Remove deletes the item with the given id. When it is the only item the
// collection is reset to a single fresh blank instead, keeping one visible
// row for the session. This floor is an editing policy only; the filter
// applied at save time may still persist an empty collection.
func (e *Editor[T]) Remove(id string) {
	for i := range e.items {
		if e.items[i].Key() != id {
			continue
		}
		if len(e.items) == 1 {
			e.items = []T{e.blank()}
		} else {
			e.items = append(e.items[:i], e.items[i+1:]...)
		}
		return
	}
}

// Items returns a copy of the current collection.
func (e *Editor[T]) Items() []T {
	return append([]T(nil), e.items...)
}

func newID() string { return uuid.NewString() }

// BlankCertification returns a fresh empty certification row.
func BlankCertification() models.Certification {
	return models.Certification{ID: newID()}
}

// BlankAchievement returns a fresh empty achievement row.
func BlankAchievement() models.Achievement {
	return models.Achievement{ID: newID()}
}

// BlankResearchPaper returns a fresh empty research paper row.
func BlankResearchPaper() models.ResearchPaper {
	return models.ResearchPaper{ID: newID()}
}

// BlankHackathonDetail returns a fresh empty hackathon row.
func BlankHackathonDetail() models.HackathonDetail {
	return models.HackathonDetail{ID: newID()}
}

// BlankProject returns a fresh project row: ongoing, started today.
func BlankProject() models.Project {
	return models.Project{
		ID:           newID(),
		Technologies: []string{},
		StartDate:    time.Now().Format("2006-01-02"),
		Ongoing:      true,
	}
}

// SetCertificationField applies one field edit to a certification.
func SetCertificationField(c *models.Certification, field, value string) {
	switch field {
	case "name":
		c.Name = value
	case "issuer":
		c.Issuer = value
	case "date":
		c.Date = value
	}
}

// SetAchievementField applies one field edit to an achievement.
func SetAchievementField(a *models.Achievement, field, value string) {
	switch field {
	case "title":
		a.Title = value
	case "description":
		a.Description = value
	}
}

// SetResearchPaperField applies one field edit to a research paper.
func SetResearchPaperField(r *models.ResearchPaper, field, value string) {
	switch field {
	case "title":
		r.Title = value
	case "url":
		r.URL = value
	}
}

// SetHackathonDetailField applies one field edit to a hackathon entry.
// The won flag accepts "true"/"false" text from the edit operation.
func SetHackathonDetailField(h *models.HackathonDetail, field, value string) {
	switch field {
	case "name":
		h.Name = value
	case "date":
		h.Date = value
	case "position":
		h.Position = value
	case "won":
		h.Won = value == "true"
	}
}

// SetProjectField applies one field edit to a project. Technologies arrive
// as comma-separated free text and are parsed into the slice form; turning
// ongoing on clears the end date.
func SetProjectField(p *models.Project, field, value string) {
	switch field {
	case "title":
		p.Title = value
	case "description":
		p.Description = value
	case "technologies":
		p.Technologies = ParseTechnologies(value)
	case "githubUrl":
		p.GithubURL = value
	case "liveUrl":
		p.LiveURL = value
	case "imageUrl":
		p.ImageURL = value
	case "startDate":
		p.StartDate = value
	case "endDate":
		p.EndDate = value
	case "ongoing":
		p.Ongoing = value == "true"
		if p.Ongoing {
			p.EndDate = ""
		}
	}
}

// ParseTechnologies splits comma-separated free text into trimmed non-blank
// entries. "React, Node.js,  , TypeScript" parses to three items.
func ParseTechnologies(value string) []string {
	parts := strings.Split(value, ",")
	techs := make([]string, 0, len(parts))
	for _, part := range parts {
		if t := strings.TrimSpace(part); t != "" {
			techs = append(techs, t)
		}
	}
	return techs
}

// JoinTechnologies renders the slice back into display form.
func JoinTechnologies(techs []string) string {
	return strings.Join(techs, ", ")
}
