// Package report aggregates classified events into summaries and charts.
package report

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/crimson-sun/logwarden/internal/model"
)

// Bucket holds per-category counts for one time bucket.
type Bucket struct {
	Start  time.Time
	Counts map[model.Category]int
}

// Summary is the aggregate view of one pipeline run.
type Summary struct {
	Total      int
	ByCategory map[model.Category]int
	Buckets    []Bucket // hourly, ascending
	Outliers   int
	MeanScore  float64
	MaxScore   float64
}

// Build aggregates events by category and by hour. An empty batch produces
// a zero Summary.
func Build(events []model.ClassifiedEvent) Summary {
	s := Summary{
		Total:      len(events),
		ByCategory: make(map[model.Category]int),
	}
	for _, c := range model.Categories() {
		s.ByCategory[c] = 0
	}
	if len(events) == 0 {
		return s
	}

	scores := make([]float64, len(events))
	byHour := make(map[time.Time]map[model.Category]int)
	for i, ev := range events {
		s.ByCategory[ev.Category]++
		if ev.Outlier {
			s.Outliers++
		}
		scores[i] = ev.Score
		if ev.Score > s.MaxScore {
			s.MaxScore = ev.Score
		}

		hour := ev.Timestamp.Truncate(time.Hour)
		counts, ok := byHour[hour]
		if !ok {
			counts = make(map[model.Category]int)
			byHour[hour] = counts
		}
		counts[ev.Category]++
	}
	s.MeanScore = stat.Mean(scores, nil)

	s.Buckets = make([]Bucket, 0, len(byHour))
	for hour, counts := range byHour {
		s.Buckets = append(s.Buckets, Bucket{Start: hour, Counts: counts})
	}
	sort.Slice(s.Buckets, func(i, j int) bool {
		return s.Buckets[i].Start.Before(s.Buckets[j].Start)
	})
	return s
}
