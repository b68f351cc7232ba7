package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillcredit/backend/internal/pkg/apperrors"
	"github.com/skillcredit/backend/internal/pkg/logger"
)

// Score is the scoring service's answer for one student.
type Score struct {
	StudentID   int       `json:"student_id"`
	CreditScore int       `json:"credit_score"`
	Breakdown   Breakdown `json:"breakdown"`
}

// Breakdown splits a credit score into its scoring categories.
type Breakdown struct {
	Hackathon      int `json:"hackathon"`
	Academic       int `json:"academic"`
	Certifications int `json:"certifications"`
	Research       int `json:"research"`
	Extras         int `json:"extras"`
}

// PushRequest is the payload sent to the scoring service after a profile
// save, carrying the recomputed inputs the score is derived from.
type PushRequest struct {
	StudentID              int     `json:"student_id"`
	HackathonParticipation int     `json:"hackathon_participation"`
	HackathonWins          int     `json:"hackathon_wins"`
	CGPA                   float64 `json:"cgpa"`
	DegreeCompleted        bool    `json:"degree_completed"`
	Certifications         int     `json:"certifications"`
	Extras                 int     `json:"extras"`
}

// Client is the HTTP client for the external scoring service. The base URL
// comes from configuration; it is never hardcoded.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// NewClient creates a scoring service client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger.WithComponent("scoring_client"),
	}
}

// FetchScore retrieves the credit score for a derived student id. Any
// transport or decoding failure maps to ErrScoreUnavailable; callers decide
// whether that is fatal for their operation.
func (c *Client) FetchScore(ctx context.Context, studentID int) (*Score, error) {
	url := fmt.Sprintf("%s/get-score/%d", c.baseURL, studentID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build score request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Int("studentId", studentID).Msg("Scoring service unreachable")
		return nil, apperrors.ErrScoreUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().Int("status", resp.StatusCode).Int("studentId", studentID).Msg("Scoring service returned non-OK status")
		return nil, apperrors.ErrScoreUnavailable
	}

	var score Score
	if err := json.NewDecoder(resp.Body).Decode(&score); err != nil {
		c.logger.Warn().Err(err).Int("studentId", studentID).Msg("Failed to decode score response")
		return nil, apperrors.ErrScoreUnavailable
	}

	return &score, nil
}

// PushScore sends the recomputed scoring inputs after a profile save. The
// push is best effort; callers log a failure and keep the save.
func (c *Client) PushScore(ctx context.Context, push *PushRequest) error {
	body, err := json.Marshal(push)
	if err != nil {
		return fmt.Errorf("failed to encode score push: %w", err)
	}

	url := c.baseURL + "/update-score"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build score push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Int("studentId", push.StudentID).Msg("Score push failed")
		return apperrors.ErrScoreUnavailable
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn().Int("status", resp.StatusCode).Int("studentId", push.StudentID).Msg("Score push rejected")
		return apperrors.ErrScoreUnavailable
	}

	return nil
}
