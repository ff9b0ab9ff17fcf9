package analytics

// ParetoEntry is one ranked group annotated with the running cumulative
// percentage of the grand total.
type ParetoEntry struct {
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
	AccumPct float64 `json:"accumPct"`
}

// Pareto is a ranked series with its 80/20 concentration insight.
type Pareto struct {
	Entries []ParetoEntry `json:"entries"`
	// Count80 is the number of leading entries whose cumulative
	// percentage stays at or under 80 (at least 1 for a non-empty
	// series).
	Count80 int `json:"count80"`
	// CutoffPct is the cumulative percentage at the last entry of that
	// leading run, 0 when the very first entry already exceeds 80%.
	CutoffPct float64 `json:"cutoffPct"`
}

// ParetoSeries walks a ranked list accumulating percentages of grandTotal
// and derives the 80/20 cutoff with a strict prefix rule: entries are part
// of the leading run only while their own cumulative percentage is <= 80.
// This is not "the smallest set reaching 80%": when the first entry alone
// is above 80% the run is empty, Count80 clamps to 1 and CutoffPct stays 0.
// A zero grand total short-circuits to an empty series with no insight.
func ParetoSeries(ranked []Pair, grandTotal float64) Pareto {
	if grandTotal == 0 {
		return Pareto{Entries: []ParetoEntry{}}
	}
	entries := make([]ParetoEntry, 0, len(ranked))
	var running float64
	for _, p := range ranked {
		running += p.Value
		entries = append(entries, ParetoEntry{
			Name:     p.Name,
			Value:    p.Value,
			AccumPct: running / grandTotal * 100,
		})
	}

	count80 := 0
	cutoff := 0.0
	for _, e := range entries {
		if e.AccumPct > 80 {
			break
		}
		count80++
		cutoff = e.AccumPct
	}
	if count80 == 0 && len(entries) > 0 {
		count80 = 1
	}
	return Pareto{Entries: entries, Count80: count80, CutoffPct: cutoff}
}
