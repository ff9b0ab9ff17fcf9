// Package core holds the canonical record type and the scalar parsers that
// turn raw spreadsheet cells into typed values.
//
// Every parser here is total: malformed input degrades to a defined default
// (0, No, -1 or not-ok) and never produces an error. The aggregation layer
// relies on that to stay free of error paths.
package core

import (
	"strconv"
	"strings"
	"time"
)

// ParseCurrency converts Brazilian currency text ("R$ 1.234,56") to a float.
// Every dot is a thousands separator and the comma is the decimal separator,
// so "1.500" is fifteen hundred, not one and a half. Anything unparseable
// yields 0.
func ParseCurrency(raw string) float64 {
	s := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "R$"))
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// flagKeywords are the affirmative spellings accepted for boolean columns.
var flagKeywords = map[string]struct{}{
	"sim": {}, "s": {}, "yes": {}, "true": {}, "1": {},
}

// ParseFlag normalizes free-text boolean cells to the Sim/Não enum.
// Empty and unknown values are No.
func ParseFlag(raw string) Flag {
	s := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := flagKeywords[s]; ok {
		return Yes
	}
	return No
}

// hourSentinels are spreadsheet artifacts that mean "no time recorded".
var hourSentinels = map[string]struct{}{
	"": {}, "nan": {}, "none": {}, "nat": {},
}

// ExtractHour pulls the hour (0-23) out of a loosely formatted time string.
// Supported shapes: "HH:MM", "HH:MM:SS" and "YYYY-MM-DD HH:MM:SS" (the
// portion after the last space is taken as the time of day). Returns -1 for
// sentinels and anything without a parsable "HH:" prefix. Callers must still
// guard the result against [0,24).
func ExtractHour(raw string) int {
	s := strings.TrimSpace(raw)
	if _, ok := hourSentinels[strings.ToLower(s)]; ok {
		return -1
	}
	if i := strings.LastIndexByte(s, ' '); i >= 0 {
		s = s[i+1:]
	}
	if !strings.Contains(s, ":") {
		return -1
	}
	h, err := strconv.Atoi(strings.SplitN(s, ":", 2)[0])
	if err != nil {
		return -1
	}
	return h
}

// ParseDate resolves the two date shapes the sheet uses: an ISO
// "YYYY-MM-DD" prefix, or "DD/MM/YYYY". Any other shape is rejected so that
// date-bucketed views silently exclude the row. The two-format restriction
// is deliberate; downstream weekly and daily grouping depends on this
// narrow failure mode.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if len(s) >= 10 {
		if t, err := time.ParseInLocation("2006-01-02", s[:10], time.UTC); err == nil {
			return t, true
		}
	}
	if strings.Contains(s, "/") {
		parts := strings.Split(s, "/")
		if len(parts) != 3 {
			return time.Time{}, false
		}
		t, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(parts[2])+"-"+pad2(parts[1])+"-"+pad2(parts[0]), time.UTC)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
	return time.Time{}, false
}

func pad2(s string) string {
	s = strings.TrimSpace(s)
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// FormatCurrency renders a value as Brazilian currency ("R$ 1.234,56").
// ParseCurrency(FormatCurrency(v)) round-trips within float tolerance.
func FormatCurrency(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	cents := int64(v*100 + 0.5)
	whole := strconv.FormatInt(cents/100, 10)
	frac := cents % 100

	var b strings.Builder
	b.WriteString("R$ ")
	if neg {
		b.WriteString("-")
	}
	lead := len(whole) % 3
	if lead > 0 {
		b.WriteString(whole[:lead])
		if len(whole) > lead {
			b.WriteString(".")
		}
	}
	for i := lead; i < len(whole); i += 3 {
		b.WriteString(whole[i : i+3])
		if i+3 < len(whole) {
			b.WriteString(".")
		}
	}
	b.WriteString(",")
	if frac < 10 {
		b.WriteString("0")
	}
	b.WriteString(strconv.FormatInt(frac, 10))
	return b.String()
}
