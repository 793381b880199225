package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// 10 appointments, average rating 4, created 5 days ago:
	// 0.5*10 + 0.3*4 + 0.2*(10/(1+5)) = 5 + 1.2 + 0.333...
	stats := ServiceStats{
		AppointmentCount: 10,
		AverageRating:    4,
		CreatedAt:        now.AddDate(0, 0, -5),
	}

	assert.InDelta(t, 6.533333, Score(stats, now), 1e-6)
}

func TestScoreZeroActivity(t *testing.T) {
	now := time.Now()
	stats := ServiceStats{CreatedAt: now.AddDate(0, 0, -30)}

	assert.Equal(t, 0.0, Score(stats, now))
}

func TestRank(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	busy := ServiceStats{ServiceID: 1, AppointmentCount: 10, AverageRating: 4, CreatedAt: now.AddDate(0, 0, -5)}
	loved := ServiceStats{ServiceID: 2, AppointmentCount: 2, AverageRating: 5, CreatedAt: now.AddDate(0, 0, -100)}
	quiet := ServiceStats{ServiceID: 3, AppointmentCount: 0, AverageRating: 0, CreatedAt: now.AddDate(0, 0, -1)}

	ranked := Rank([]ServiceStats{quiet, loved, busy}, now, TopN)

	assert.Equal(t, []uint{1, 2, 3}, []uint{ranked[0].ServiceID, ranked[1].ServiceID, ranked[2].ServiceID})
}

func TestRankTruncates(t *testing.T) {
	now := time.Now()

	stats := make([]ServiceStats, 15)
	for i := range stats {
		stats[i] = ServiceStats{
			ServiceID:        uint(i + 1),
			AppointmentCount: i,
			CreatedAt:        now.AddDate(0, 0, -10),
		}
	}

	ranked := Rank(stats, now, TopN)

	assert.Len(t, ranked, TopN)
	// Highest appointment count first.
	assert.Equal(t, uint(15), ranked[0].ServiceID)
}
