package analytics

import (
	"fmt"

	"extras/internal/core"
)

// Shift bands partition the day for display grouping only; they never feed
// numeric aggregation.
const (
	ShiftEarly    = "Madrugada" // [00,06)
	ShiftBusiness = "Comercial" // [06,18)
	ShiftNight    = "Noturno"   // [18,24)
)

// HourBucket is one of the 24 fixed histogram slots.
type HourBucket struct {
	Hour    int     `json:"hour"`
	Label   string  `json:"label"` // "HH:00"
	Value   float64 `json:"value"`
	Entries int     `json:"entries"`
	Exits   int     `json:"exits"`
	Shift   string  `json:"shift"`
}

// ShiftBand classifies an in-range hour into its display band.
func ShiftBand(hour int) string {
	switch {
	case hour < 6:
		return ShiftEarly
	case hour < 18:
		return ShiftBusiness
	default:
		return ShiftNight
	}
}

// HourHistogram buckets records by clock hour. Value and the inbound count
// go to the TimeIn hour; the TimeOut hour only gets an outbound count,
// never the value. All 24 buckets are always present, zeroed when empty,
// so the result is dense regardless of input size.
func HourHistogram(records []core.Record) []HourBucket {
	buckets := make([]HourBucket, 24)
	for h := range buckets {
		buckets[h] = HourBucket{
			Hour:  h,
			Label: fmt.Sprintf("%02d:00", h),
			Shift: ShiftBand(h),
		}
	}
	for _, r := range records {
		if h := core.ExtractHour(r.TimeIn); h >= 0 && h < 24 {
			buckets[h].Value += r.Value
			buckets[h].Entries++
		}
		if h := core.ExtractHour(r.TimeOut); h >= 0 && h < 24 {
			buckets[h].Exits++
		}
	}
	return buckets
}
