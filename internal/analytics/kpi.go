package analytics

import "extras/internal/core"

// KPI is the sum/count/distinct/mean snapshot for a record subset.
type KPI struct {
	Total         float64 `json:"total"`
	Count         int     `json:"count"`
	Collaborators int     `json:"collaborators"`
	Average       float64 `json:"average"`
}

// Snapshot computes the KPI block. The average is 0 for an empty subset,
// never NaN. Distinct collaborators skips empty names.
func Snapshot(records []core.Record) KPI {
	k := KPI{Count: len(records)}
	seen := make(map[string]struct{})
	for _, r := range records {
		k.Total += r.Value
		if r.Collaborator != "" {
			seen[r.Collaborator] = struct{}{}
		}
	}
	k.Collaborators = len(seen)
	if k.Count > 0 {
		k.Average = k.Total / float64(k.Count)
	}
	return k
}

// Delta is a signed percentage change against a baseline. HasBaseline is
// false when the baseline was zero: there is no prior data to compare
// against, which is distinct from a 0% change.
type Delta struct {
	Pct         float64 `json:"pct"`
	HasBaseline bool    `json:"hasBaseline"`
}

// PercentDelta compares current against previous. A zero baseline yields
// the no-prior-data marker instead of an infinite or NaN percentage.
func PercentDelta(current, previous float64) Delta {
	if previous == 0 {
		return Delta{}
	}
	return Delta{Pct: (current - previous) / previous * 100, HasBaseline: true}
}

// Leakage splits total value by the billable flag. RecoverablePct is the
// billable share of the combined total, 0 when there is no value at all.
type Leakage struct {
	Billable       float64 `json:"billable"`
	NonBillable    float64 `json:"nonBillable"`
	RecoverablePct float64 `json:"recoverablePct"`
}

// LeakageRatio computes the revenue-leakage view over the billable flag.
func LeakageRatio(records []core.Record) Leakage {
	var l Leakage
	for _, r := range records {
		if r.Billable == core.Yes {
			l.Billable += r.Value
		} else {
			l.NonBillable += r.Value
		}
	}
	if total := l.Billable + l.NonBillable; total > 0 {
		l.RecoverablePct = l.Billable / total * 100
	}
	return l
}

// TransportSplit sums value by the transport flag, for the logistics view.
func TransportSplit(records []core.Record) (with, without float64) {
	for _, r := range records {
		if r.Transport == core.Yes {
			with += r.Value
		} else {
			without += r.Value
		}
	}
	return with, without
}
