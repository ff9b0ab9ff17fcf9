package analytics

import (
	"sort"

	"extras/internal/core"
)

// DailyPoint is one day of the evolution series: the day's summed value and
// the trailing 7-day moving average ending at that day.
type DailyPoint struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Value float64 `json:"valor"`
	MA7   float64 `json:"ma7"`
}

// movingAverageWindow is the trailing window length for the smoothed line.
const movingAverageWindow = 7

// DailySeries groups records by calendar day, sorts ascending and annotates
// each point with the trailing moving average. Windows shorter than 7 at
// the start of the series divide by their actual length. Records whose date
// does not parse are excluded from the series (but not from totals
// elsewhere).
func DailySeries(records []core.Record) []DailyPoint {
	sums := make(map[string]float64)
	for _, r := range records {
		d, ok := core.ParseDate(r.Date)
		if !ok {
			continue
		}
		sums[d.Format("2006-01-02")] += r.Value
	}
	days := make([]string, 0, len(sums))
	for d := range sums {
		days = append(days, d)
	}
	sort.Strings(days)

	out := make([]DailyPoint, len(days))
	for i, d := range days {
		out[i] = DailyPoint{Date: d, Value: sums[d]}
	}
	for i := range out {
		start := i - movingAverageWindow + 1
		if start < 0 {
			start = 0
		}
		var sum float64
		for j := start; j <= i; j++ {
			sum += out[j].Value
		}
		out[i].MA7 = sum / float64(i-start+1)
	}
	return out
}
