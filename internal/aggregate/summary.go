package aggregate

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the shape of a distribution
type Summary struct {
	Categories int     `json:"categories"`
	MeanCount  float64 `json:"mean_count"`
	Median     float64 `json:"median_count"`
	Top        string  `json:"top,omitempty"`
	TopShare   float64 `json:"top_share"`
	Diversity  float64 `json:"diversity"` // Shannon index, natural log
}

// Summarize reports how cases spread over the categories of r. An
// unavailable or empty distribution yields the zero Summary.
func Summarize(r Result) Summary {
	if !r.Available || len(r.Counts) == 0 || r.Total == 0 {
		return Summary{}
	}

	data := make(stats.Float64Data, len(r.Counts))
	shares := make([]float64, len(r.Counts))
	for i, c := range r.Counts {
		data[i] = float64(c.Count)
		shares[i] = float64(c.Count) / float64(r.Total)
	}

	mean, _ := data.Mean()
	median, _ := data.Median()

	return Summary{
		Categories: len(r.Counts),
		MeanCount:  mean,
		Median:     median,
		Top:        r.Counts[0].Value,
		TopShare:   shares[0],
		Diversity:  stat.Entropy(shares),
	}
}
