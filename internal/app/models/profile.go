package models

// StudentProfile is the root aggregate, one per user. Its id matches the
// auth identity id. HackathonParticipation and HackathonWins are derived
// counters: they are recomputed from the filtered hackathon collection on
// every save and never trusted from prior state.
type StudentProfile struct {
	ID                     string            `json:"id"`
	FullName               string            `json:"fullName"`
	CollegeName            string            `json:"collegeName"`
	Course                 string            `json:"course"`
	Degree                 string            `json:"degree"`
	Address                string            `json:"address"`
	CGPA                   float64           `json:"cgpa"` // domain range [0, 10]
	DegreeCompleted        bool              `json:"degreeCompleted"`
	HackathonParticipation int               `json:"hackathonParticipation"`
	HackathonWins          int               `json:"hackathonWins"`
	HackathonDetails       []HackathonDetail `json:"hackathonDetails"`
	Certifications         []Certification   `json:"certifications"`
	Achievements           []Achievement     `json:"achievements"`
	ResearchPapers         []ResearchPaper   `json:"researchPapers"`
	Projects               []Project         `json:"projects"`
	ProfileImage           string            `json:"profileImage,omitempty"`
}

// Certification is a course or exam credential on the profile.
type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// Achievement is a free-form accomplishment entry.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ResearchPaper is a published paper reference.
type ResearchPaper struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// HackathonDetail records one hackathon entry. Position is optional
// free text ("1st Place", "Runner-up").
type HackathonDetail struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	Position string `json:"position,omitempty"`
	Won      bool   `json:"won"`
}

// Project is a portfolio project. Dates are ISO date strings; EndDate is
// empty while Ongoing is true.
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	GithubURL    string   `json:"githubUrl,omitempty"`
	LiveURL      string   `json:"liveUrl,omitempty"`
	ImageURL     string   `json:"imageUrl,omitempty"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"`
	Ongoing      bool     `json:"ongoing"`
}

// Key returns the locally unique id used for update/remove within a collection.
func (c Certification) Key() string   { return c.ID }
func (a Achievement) Key() string     { return a.ID }
func (r ResearchPaper) Key() string   { return r.ID }
func (h HackathonDetail) Key() string { return h.ID }
func (p Project) Key() string         { return p.ID }

// ContentFields returns the user-entered string fields that decide whether
// an item counts as filled in. Ids and auto-populated dates are excluded;
// boolean-only content (a won toggle on an otherwise blank row) does not
// count as filled.
func (c Certification) ContentFields() []string { return []string{c.Name, c.Issuer, c.Date} }
func (a Achievement) ContentFields() []string   { return []string{a.Title, a.Description} }
func (r ResearchPaper) ContentFields() []string { return []string{r.Title, r.URL} }
func (h HackathonDetail) ContentFields() []string {
	return []string{h.Name, h.Date, h.Position}
}
func (p Project) ContentFields() []string {
	return []string{p.Title, p.Description, p.GithubURL, p.LiveURL, p.ImageURL}
}
