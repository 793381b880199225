package catalog

import (
	"sort"
	"time"
)

// Weights of the popularity score. Fixed on purpose: rankings produced here
// must match the historical ordering exactly.
const (
	countWeight     = 0.5
	ratingWeight    = 0.3
	frequencyWeight = 0.2
)

// TopN is how many services the popularity ranking returns.
const TopN = 10

// ServiceStats carries the per-service aggregates the ranking needs.
type ServiceStats struct {
	ServiceID        uint
	AppointmentCount int
	AverageRating    float64
	CreatedAt        time.Time
}

// Score computes the popularity score of one service as of now:
// 0.5*count + 0.3*avgRating + 0.2*(count / (1 + daysSinceCreation)).
func Score(s ServiceStats, now time.Time) float64 {
	days := now.Sub(s.CreatedAt).Hours() / 24
	frequency := float64(s.AppointmentCount) / (1 + days)

	return countWeight*float64(s.AppointmentCount) +
		ratingWeight*s.AverageRating +
		frequencyWeight*frequency
}

// Rank orders services by descending popularity score and keeps the top n.
func Rank(stats []ServiceStats, now time.Time, n int) []ServiceStats {
	ranked := make([]ServiceStats, len(stats))
	copy(ranked, stats)

	sort.SliceStable(ranked, func(i, j int) bool {
		return Score(ranked[i], now) > Score(ranked[j], now)
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
