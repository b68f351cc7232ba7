package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStudentID(t *testing.T) {
	tests := []struct {
		name   string
		authID string
		want   int
	}{
		{"empty id", "", 0},
		{"no leading alphanumeric", "--foo", 0},
		{"single digit", "7", 7},
		{"single letter", "a", 10},
		{"uppercase equals lowercase", "A", 10},
		{"stops at first separator", "ab-cd", 10*36 + 11},
		{"two digits", "10", 36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStudentID(tt.authID))
		})
	}
}

func TestDeriveStudentIDRange(t *testing.T) {
	ids := []string{
		"0b9af92e-5cf8-4d3a-9f1e-7b2c8d4e6f01",
		"ffffffff-ffff-ffff-ffff-ffffffffffff",
		"a1b2c3d4e5f6a7b8c9d0",
	}

	for _, id := range ids {
		got := DeriveStudentID(id)
		assert.GreaterOrEqual(t, got, 0)
		assert.Less(t, got, 10000)
	}
}

func TestDeriveStudentIDDeterministic(t *testing.T) {
	id := "0b9af92e-5cf8-4d3a-9f1e-7b2c8d4e6f01"
	first := DeriveStudentID(id)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, DeriveStudentID(id))
	}
}

func TestDeriveStudentIDCaseInsensitive(t *testing.T) {
	assert.Equal(t, DeriveStudentID("abc123"), DeriveStudentID("ABC123"))
}
