package dashboard

import (
	"math"
	"time"
)

// Slice is one segment of the status proportion chart.
type Slice struct {
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Distribution splits total into labelled slices with percentages rounded to
// one decimal. An empty total gives 0% everywhere.
func Distribution(labels []string, counts []int) []Slice {
	total := 0
	for _, n := range counts {
		total += n
	}

	slices := make([]Slice, len(labels))
	for i, label := range labels {
		slices[i] = Slice{Label: label, Count: counts[i]}
		if total > 0 {
			slices[i].Percent = math.Round(float64(counts[i])*1000/float64(total)) / 10
		}
	}
	return slices
}

// Day is one bucket of the daily trend.
type Day struct {
	Date  string    `json:"date"`
	Label string    `json:"label"`
	Start time.Time `json:"start"`
	Count int       `json:"count"`
}

// DailyTrend counts instants into the last days calendar days ending with the
// day of now, oldest first, in now's location. A bucket covers
// [dayStart, nextDayStart); zero instants are skipped.
func DailyTrend(instants []time.Time, now time.Time, days int) []Day {
	if days < 1 {
		return []Day{}
	}
	loc := now.Location()
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, loc)

	buckets := make([]Day, days)
	for i := range buckets {
		start := today.AddDate(0, 0, i-days+1)
		buckets[i] = Day{
			Date:  start.Format("2006-01-02"),
			Label: start.Format("Jan 2"),
			Start: start,
		}
	}
	end := today.AddDate(0, 0, 1)

	for _, t := range instants {
		if t.IsZero() {
			continue
		}
		t = t.In(loc)
		if t.Before(buckets[0].Start) || !t.Before(end) {
			continue
		}
		for i := len(buckets) - 1; i >= 0; i-- {
			if !t.Before(buckets[i].Start) {
				buckets[i].Count++
				break
			}
		}
	}
	return buckets
}
