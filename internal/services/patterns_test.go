package services

import (
	"math/rand"
	"testing"
)

func TestGenerateTrafficPatterns(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	p := GenerateTrafficPatterns(r, 22)

	if len(p.HourlyData) != 24 {
		t.Fatalf("got %d hourly entries, want 24", len(p.HourlyData))
	}
	for i, h := range p.HourlyData {
		if h.Hour != i {
			t.Fatalf("entry %d has hour %d", i, h.Hour)
		}
		if h.CongestionFactor < 0.1 || h.CongestionFactor > 1.0 {
			t.Fatalf("hour %d congestion %f out of [0.1, 1.0]", h.Hour, h.CongestionFactor)
		}
	}

	wantHighlight := []int{22, 23, 0, 1, 2, 3}
	if len(p.HighlightedHours) != len(wantHighlight) {
		t.Fatalf("highlighted = %v", p.HighlightedHours)
	}
	for i, h := range wantHighlight {
		if p.HighlightedHours[i] != h {
			t.Fatalf("highlighted = %v, want %v", p.HighlightedHours, wantHighlight)
		}
	}
}

func TestOptimalDeparture(t *testing.T) {
	p := TrafficPatterns{HourlyData: []HourPattern{
		{Hour: 0, CongestionFactor: 0.4},
		{Hour: 1, CongestionFactor: 0.15},
		{Hour: 2, CongestionFactor: 0.9},
	}}

	if best := OptimalDeparture(p); best.Hour != 1 {
		t.Fatalf("optimal hour = %d, want 1", best.Hour)
	}
}

func TestFormatHour(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{0, "12:00 AM"},
		{1, "1:00 AM"},
		{11, "11:00 AM"},
		{12, "12:00 PM"},
		{13, "1:00 PM"},
		{23, "11:00 PM"},
	}
	for _, c := range cases {
		if got := FormatHour(c.hour); got != c.want {
			t.Errorf("FormatHour(%d) = %q, want %q", c.hour, got, c.want)
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "0 minutes"},
		{60, "1 minute"},
		{1500, "25 minutes"},
		{3600, "1 hour 0 minutes"},
		{8100, "2 hours 15 minutes"},
		{3660, "1 hour 1 minute"},
	}
	for _, c := range cases {
		if got := FormatSeconds(c.seconds); got != c.want {
			t.Errorf("FormatSeconds(%d) = %q, want %q", c.seconds, got, c.want)
		}
	}
}
