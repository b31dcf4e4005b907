package timeutil

import (
	"testing"
	"time"
)

func TestParseDuration_DaysAndWeeks(t *testing.T) {
	cases := map[string]time.Duration{
		"90m": 90 * time.Minute,
		"3d":  72 * time.Hour,
		"2w":  14 * 24 * time.Hour,
	}
	for in, want := range cases {
		got, err := ParseDuration(in)
		if err != nil {
			t.Fatalf("%s: %v", in, err)
		}
		if got != want {
			t.Fatalf("%s: expected %v, got %v", in, want, got)
		}
	}
	if _, err := ParseDuration("5y"); err == nil {
		t.Fatal("expected unknown unit error")
	}
}

func TestParseDate(t *testing.T) {
	now := time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC)

	got, err := ParseDate("2001-09-09", now)
	if err != nil || got.Format("2006-01-02") != "2001-09-09" {
		t.Fatalf("absolute date: %v %v", got, err)
	}
	got, err = ParseDate("-30d", now)
	if err != nil || got.Format("2006-01-02") != "2024-04-10" {
		t.Fatalf("relative date: %v %v", got, err)
	}
	got, err = ParseDate("today", now)
	if err != nil || !got.Equal(now) {
		t.Fatalf("today: %v %v", got, err)
	}
	if _, err := ParseDate("yesterday-ish", now); err == nil {
		t.Fatal("expected parse error")
	}
}
