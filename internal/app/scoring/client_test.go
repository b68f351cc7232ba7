package scoring

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillcredit/backend/internal/pkg/apperrors"
)

func TestFetchScoreDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/get-score/1234", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"student_id": 1234,
			"credit_score": 185,
			"breakdown": {"hackathon": 40, "academic": 80, "certifications": 30, "research": 20, "extras": 15}
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)

	score, err := c.FetchScore(context.Background(), 1234)
	require.NoError(t, err)
	assert.Equal(t, 185, score.CreditScore)
	assert.Equal(t, 40, score.Breakdown.Hackathon)
	assert.Equal(t, 80, score.Breakdown.Academic)
	assert.Equal(t, 15, score.Breakdown.Extras)
}

func TestFetchScoreNonOKStatusIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)

	_, err := c.FetchScore(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrScoreUnavailable)
}

func TestFetchScoreMalformedBodyIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)

	_, err := c.FetchScore(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrScoreUnavailable)
}

func TestFetchScoreUnreachableHostIsUnavailable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 200*time.Millisecond)

	_, err := c.FetchScore(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrScoreUnavailable)
}

func TestPushScoreSendsPayload(t *testing.T) {
	var received PushRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/update-score", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)

	push := &PushRequest{
		StudentID:              1234,
		HackathonParticipation: 3,
		HackathonWins:          1,
		CGPA:                   8.7,
		DegreeCompleted:        true,
		Certifications:         2,
		Extras:                 4,
	}
	require.NoError(t, c.PushScore(context.Background(), push))
	assert.Equal(t, *push, received)
}

func TestPushScoreRejectedStatusIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)

	err := c.PushScore(context.Background(), &PushRequest{StudentID: 1})
	assert.ErrorIs(t, err, apperrors.ErrScoreUnavailable)
}

func TestClientTrimsTrailingSlashFromBaseURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get-score/5", r.URL.Path)
		w.Write([]byte(`{"credit_score": 100}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", time.Second)

	score, err := c.FetchScore(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 100, score.CreditScore)
}
