package profile

import (
	"fmt"

	"github.com/skillcredit/backend/internal/app/models"
)

// HackathonStats derives the participation and win counters from a hackathon
// collection. Callers pass the filtered collection at submit time; the
// counters stored on the profile are always recomputed from it, never
// carried over from previous state.
func HackathonStats(details []models.HackathonDetail) (participation, wins int) {
	participation = len(details)
	for _, d := range details {
		if d.Won {
			wins++
		}
	}
	return participation, wins
}

// WinRate formats the win ratio as a percentage with one decimal place.
// Zero participation yields "N/A", never a division.
func WinRate(participation, wins int) string {
	if participation == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", float64(wins)/float64(participation)*100)
}
