package dashboard

import (
	"math"

	"movie-dashboard/models"
)

// Insights summarises the movies currently listed on the page.
type Insights struct {
	Count     int     `json:"count"`
	AvgRating float64 `json:"avg_rating"`
	HasRating bool    `json:"has_rating"`
	TopGenre  string  `json:"top_genre"`
}

// NewInsights computes the listing count, the mean vote_average rounded to
// two decimals, and the most frequent genres value. Ties between genres go
// to the alphabetically first one. Missing cells are ignored.
func NewInsights(t *models.Table) Insights {
	in := Insights{Count: t.Len(), TopGenre: "N/A"}

	var sum float64
	var rated int
	counts := make(map[string]int)
	for i := 0; i < t.Len(); i++ {
		if v, ok := t.Float(i, models.ColVoteAverage); ok {
			sum += v
			rated++
		}
		if g, ok := t.Value(i, models.ColGenres).(string); ok && g != "" {
			counts[g]++
		}
	}
	if rated > 0 {
		in.AvgRating = math.Round(sum/float64(rated)*100) / 100
		in.HasRating = true
	}

	best := 0
	for g, n := range counts {
		if n > best || n == best && g < in.TopGenre {
			best = n
			in.TopGenre = g
		}
	}
	return in
}
