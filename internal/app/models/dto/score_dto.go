package dto

// ScoreBreakdown represents the per-category composition of a credit score
type ScoreBreakdown struct {
	Hackathon      int `json:"hackathon"`
	Academic       int `json:"academic"`
	Certifications int `json:"certifications"`
	Research       int `json:"research"`
	Extras         int `json:"extras"`
}

// CreditScoreResponse represents the fetched credit score for a student
type CreditScoreResponse struct {
	StudentID   int            `json:"studentId"`
	CreditScore int            `json:"creditScore"`
	Breakdown   ScoreBreakdown `json:"breakdown"`
	WinRate     string         `json:"winRate"`
}
