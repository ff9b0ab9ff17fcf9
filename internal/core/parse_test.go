package core

import (
	"math"
	"testing"
	"time"
)

func TestParseCurrency(t *testing.T) {
	cases := []struct {
		in  string
		out float64
	}{
		{"R$ 1.500,50", 1500.50},
		{"R$ 1.234,56", 1234.56},
		{"1200", 1200},
		{"1.500", 1500}, // dot is always a thousands separator
		{"12,34", 12.34},
		{"R$0,99", 0.99},
		{" R$ 10,00 ", 10},
		{"", 0},
		{"abc", 0},
		{"R$", 0},
	}
	for _, tc := range cases {
		if got := ParseCurrency(tc.in); math.Abs(got-tc.out) > 1e-9 {
			t.Fatalf("ParseCurrency(%q) = %v, want %v", tc.in, got, tc.out)
		}
	}
}

func TestFormatCurrencyRoundTrip(t *testing.T) {
	cases := []float64{0, 0.99, 10, 1234.56, 1500.50, 987654.32, 1000000}
	for _, v := range cases {
		s := FormatCurrency(v)
		if got := ParseCurrency(s); math.Abs(got-v) > 1e-6 {
			t.Fatalf("ParseCurrency(%q) = %v, want %v", s, got, v)
		}
	}
	if got := FormatCurrency(1234.56); got != "R$ 1.234,56" {
		t.Fatalf("FormatCurrency(1234.56) = %q", got)
	}
	if got := FormatCurrency(5); got != "R$ 5,00" {
		t.Fatalf("FormatCurrency(5) = %q", got)
	}
}

func TestParseFlag(t *testing.T) {
	yes := []string{"sim", "Sim", "SIM", " s ", "yes", "TRUE", "1"}
	for _, in := range yes {
		if got := ParseFlag(in); got != Yes {
			t.Fatalf("ParseFlag(%q) = %q, want Sim", in, got)
		}
	}
	no := []string{"", "não", "nao", "no", "0", "x", "2"}
	for _, in := range no {
		if got := ParseFlag(in); got != No {
			t.Fatalf("ParseFlag(%q) = %q, want Não", in, got)
		}
	}
	// Idempotent on its own output.
	if ParseFlag(string(Yes)) != Yes || ParseFlag(string(No)) != No {
		t.Fatal("ParseFlag not idempotent on enum values")
	}
}

func TestExtractHour(t *testing.T) {
	cases := []struct {
		in  string
		out int
	}{
		{"2024-03-01 14:30:00", 14},
		{"18:00", 18},
		{"08:15:30", 8},
		{"", -1},
		{"nat", -1},
		{"NaN", -1},
		{"none", -1},
		{"14", -1}, // bare hour has no colon
		{"ab:cd", -1},
		{"25:00", 25}, // out of range is the caller's guard
	}
	for _, tc := range cases {
		if got := ExtractHour(tc.in); got != tc.out {
			t.Fatalf("ExtractHour(%q) = %d, want %d", tc.in, got, tc.out)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, ok := ParseDate("01/03/2024")
	if !ok || !d.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("ParseDate(01/03/2024) = %v, %v", d, ok)
	}
	d, ok = ParseDate("2024-03-01")
	if !ok || !d.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("ParseDate(2024-03-01) = %v, %v", d, ok)
	}
	// ISO prefix with a time suffix still resolves to the date.
	d, ok = ParseDate("2024-03-01 14:30:00")
	if !ok || d.Day() != 1 {
		t.Fatalf("ParseDate with time suffix = %v, %v", d, ok)
	}
	// Single-digit day/month in the slash shape.
	d, ok = ParseDate("1/3/2024")
	if !ok || d.Month() != time.March {
		t.Fatalf("ParseDate(1/3/2024) = %v, %v", d, ok)
	}
	for _, in := range []string{"", "03-01-2024", "01/03", "a/b/c", "yesterday", "01/03/2024/x"} {
		if _, ok := ParseDate(in); ok {
			t.Fatalf("ParseDate(%q) should fail", in)
		}
	}
}
