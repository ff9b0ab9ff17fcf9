// Package analytics is the aggregation engine: pure, side-effect-free
// transformations from a record collection into ranked, bucketed and
// cumulative-percentage summaries. Results are plain serializable data,
// recomputed fully on every call; nothing here touches a clock, I/O or
// shared state, so concurrent queries over the same slice are safe.
package analytics

import (
	"sort"

	"extras/internal/core"
)

// OverflowLabel names the synthetic bucket that absorbs groups beyond a
// Top-N truncation.
const OverflowLabel = "Outros"

// Pair is one group total: a label and the summed value for it.
type Pair struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// KeyFunc extracts a grouping label from a record.
type KeyFunc func(core.Record) string

// Grouping keys for the standard views. Label fields fall back to the N/A
// sentinel at key time so empty cells group together without polluting the
// record itself.
var (
	ByCollaborator KeyFunc = func(r core.Record) string { return labelOrNA(r.Collaborator) }
	ByClient       KeyFunc = func(r core.Record) string { return labelOrNA(r.Client) }
	BySector       KeyFunc = func(r core.Record) string { return labelOrNA(r.Sector) }
	ByReason       KeyFunc = func(r core.Record) string { return labelOrNA(r.Reason) }
)

func labelOrNA(s string) string {
	if s == "" {
		return core.LabelNA
	}
	return s
}

// SumBy accumulates record values into per-key totals, keeping first-seen
// key order. The sum of all pair values equals the sum of the input values.
func SumBy(records []core.Record, key KeyFunc) []Pair {
	totals := make(map[string]float64, len(records))
	order := make([]string, 0, len(records))
	for _, r := range records {
		k := key(r)
		if _, seen := totals[k]; !seen {
			order = append(order, k)
		}
		totals[k] += r.Value
	}
	out := make([]Pair, 0, len(order))
	for _, k := range order {
		out = append(out, Pair{Name: k, Value: totals[k]})
	}
	return out
}

// RankDesc returns the pairs sorted by value descending. The sort is
// stable: equal values keep their first-seen relative order.
func RankDesc(pairs []Pair) []Pair {
	out := append([]Pair(nil), pairs...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out
}

// TopN keeps the first n ranked entries and folds the rest into a single
// "Outros" entry holding their sum. When the folded sum is zero the
// synthetic entry is omitted entirely.
func TopN(ranked []Pair, n int) []Pair {
	if n < 0 {
		n = 0
	}
	if len(ranked) <= n {
		return append([]Pair(nil), ranked...)
	}
	out := append([]Pair(nil), ranked[:n]...)
	var rest float64
	for _, p := range ranked[n:] {
		rest += p.Value
	}
	if rest != 0 {
		out = append(out, Pair{Name: OverflowLabel, Value: rest})
	}
	return out
}

// junkLabels are spreadsheet artifacts that should never appear as a chart
// category (stray zeros, stringified NaN, blanks).
var junkLabels = map[string]struct{}{
	"0": {}, "0.0": {}, "nan": {}, "None": {}, "": {},
}

// CleanPairs drops junk-labeled and non-positive groups. Used for the
// sector and donut-style views where such rows are noise.
func CleanPairs(pairs []Pair) []Pair {
	out := make([]Pair, 0, len(pairs))
	for _, p := range pairs {
		if _, junk := junkLabels[p.Name]; junk {
			continue
		}
		if p.Value <= 0 {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Total sums the pair values.
func Total(pairs []Pair) float64 {
	var t float64
	for _, p := range pairs {
		t += p.Value
	}
	return t
}
