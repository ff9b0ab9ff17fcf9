package http

import (
	"time"

	"extras/internal/analytics"
	"extras/internal/core"
)

const (
	topClientsLimit       = 10
	topCollaboratorsLimit = 10
	topReasonsLimit       = 10
	paretoLimit           = 15
	topOffendersLimit     = 5
)

// RecordsResponse is the raw normalized dataset.
type RecordsResponse struct {
	Count   int           `json:"count"`
	Records []core.Record `json:"records"`
}

// OverviewResponse backs the landing view: headline KPIs, the daily spend
// series and the main group rankings.
type OverviewResponse struct {
	KPI              analytics.KPI          `json:"kpi"`
	Daily            []analytics.DailyPoint `json:"daily"`
	TopClients       []analytics.Pair       `json:"topClients"`
	TopCollaborators []analytics.Pair       `json:"topCollaborators"`
	Sectors          []analytics.Pair       `json:"sectors"`
	TotalFormatted   string                 `json:"totalFormatted"`
}

// TransportTotals splits spend by the transport flag.
type TransportTotals struct {
	With    float64 `json:"with"`
	Without float64 `json:"without"`
}

// StrategyResponse backs the concentration view: Pareto over collaborators,
// revenue leakage, reason ranking and the hour-of-day histogram.
type StrategyResponse struct {
	Pareto    analytics.Pareto       `json:"pareto"`
	Leakage   analytics.Leakage      `json:"leakage"`
	Reasons   []analytics.Pair       `json:"reasons"`
	Hours     []analytics.HourBucket `json:"hours"`
	Transport TransportTotals        `json:"transport"`
}

// WeeklyResponse compares the last full week against the one before it.
type WeeklyResponse struct {
	CurrentWeek  analytics.WeekWindow   `json:"currentWeek"`
	PreviousWeek analytics.WeekWindow   `json:"previousWeek"`
	Current      analytics.KPI          `json:"current"`
	Previous     analytics.KPI          `json:"previous"`
	TotalDelta   analytics.Delta        `json:"totalDelta"`
	CountDelta   analytics.Delta        `json:"countDelta"`
	TopOffenders []analytics.Pair       `json:"topOffenders"`
	Daily        []analytics.DailyPoint `json:"daily"`
}

func buildRecordsResponse(records []core.Record) RecordsResponse {
	if records == nil {
		records = []core.Record{}
	}
	return RecordsResponse{Count: len(records), Records: records}
}

func buildOverviewResponse(records []core.Record) OverviewResponse {
	kpi := analytics.Snapshot(records)
	return OverviewResponse{
		KPI:              kpi,
		Daily:            analytics.DailySeries(records),
		TopClients:       analytics.TopN(analytics.RankDesc(analytics.SumBy(records, analytics.ByClient)), topClientsLimit),
		TopCollaborators: analytics.TopN(analytics.RankDesc(analytics.SumBy(records, analytics.ByCollaborator)), topCollaboratorsLimit),
		Sectors:          analytics.CleanPairs(analytics.RankDesc(analytics.SumBy(records, analytics.BySector))),
		TotalFormatted:   core.FormatCurrency(kpi.Total),
	}
}

func buildStrategyResponse(records []core.Record) StrategyResponse {
	ranked := analytics.RankDesc(analytics.SumBy(records, analytics.ByCollaborator))
	grand := analytics.Total(ranked)
	if len(ranked) > paretoLimit {
		ranked = ranked[:paretoLimit]
	}

	with, without := analytics.TransportSplit(records)

	return StrategyResponse{
		Pareto:    analytics.ParetoSeries(ranked, grand),
		Leakage:   analytics.LeakageRatio(records),
		Reasons:   analytics.TopN(analytics.CleanPairs(analytics.RankDesc(analytics.SumBy(records, analytics.ByReason))), topReasonsLimit),
		Hours:     analytics.HourHistogram(records),
		Transport: TransportTotals{With: with, Without: without},
	}
}

func buildWeeklyResponse(records []core.Record, ref time.Time) WeeklyResponse {
	current, previous, currentWeek, previousWeek := analytics.PartitionWeeks(records, ref)
	curKPI := analytics.Snapshot(current)
	prevKPI := analytics.Snapshot(previous)

	offenders := analytics.RankDesc(analytics.SumBy(current, analytics.ByCollaborator))
	if len(offenders) > topOffendersLimit {
		offenders = offenders[:topOffendersLimit]
	}

	return WeeklyResponse{
		CurrentWeek:  currentWeek,
		PreviousWeek: previousWeek,
		Current:      curKPI,
		Previous:     prevKPI,
		TotalDelta:   analytics.PercentDelta(curKPI.Total, prevKPI.Total),
		CountDelta:   analytics.PercentDelta(float64(curKPI.Count), float64(prevKPI.Count)),
		TopOffenders: offenders,
		Daily:        analytics.DailySeries(current),
	}
}
