package scheduling

import (
	"testing"
	"time"
)

func TestComputeBlockedSlots(t *testing.T) {
	cal := testCalendar()
	booked := []time.Time{
		time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
	}

	blocked := cal.ComputeBlockedSlots(booked)

	if _, ok := blocked["2024-06-10|10:00"]; !ok {
		t.Errorf("expected booked slot 10:00 to be blocked")
	}
	if _, ok := blocked["2024-06-10|11:00"]; !ok {
		t.Errorf("expected buffer slot 11:00 to be blocked")
	}
	if _, ok := blocked["2024-06-10|09:00"]; ok {
		t.Errorf("09:00 must not be blocked")
	}
	if len(blocked) != 2 {
		t.Errorf("expected exactly 2 blocked keys, got %d", len(blocked))
	}
}

func TestComputeBlockedSlotsIdempotent(t *testing.T) {
	cal := testCalendar()
	booked := []time.Time{
		time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 11, 9, 0, 0, 0, time.UTC),
	}

	first := cal.ComputeBlockedSlots(booked)
	second := cal.ComputeBlockedSlots(booked)

	if len(first) != len(second) {
		t.Fatalf("sets differ in size: %d vs %d", len(first), len(second))
	}
	for k := range first {
		if _, ok := second[k]; !ok {
			t.Fatalf("key %q missing from second set", k)
		}
	}
}

func TestComputeBlockedSlotsSkipsZeroTimestamps(t *testing.T) {
	cal := testCalendar()
	booked := []time.Time{
		{}, // malformed remote row
		time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
	}

	blocked := cal.ComputeBlockedSlots(booked)
	if len(blocked) != 2 {
		t.Fatalf("zero timestamp must be skipped, got %d keys", len(blocked))
	}
}

func TestComputeBlockedSlotsBufferCrossesMidnight(t *testing.T) {
	cal := testCalendar()
	booked := []time.Time{
		time.Date(2024, 6, 10, 23, 30, 0, 0, time.UTC),
	}

	blocked := cal.ComputeBlockedSlots(booked)
	if _, ok := blocked["2024-06-11|00:30"]; !ok {
		t.Errorf("buffer key must roll into the next day")
	}
}

func TestIsSlotAvailable(t *testing.T) {
	cal := testCalendar()
	monday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	blocked := cal.ComputeBlockedSlots([]time.Time{
		time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
	})

	tests := []struct {
		name string
		day  time.Time
		slot string
		want bool
	}{
		{"open slot", monday, "09:00", true},
		{"booked slot", monday, "10:00", false},
		{"buffer slot", monday, "11:00", false},
		{"after buffer", monday, "12:00", true},
		{"half hour held back", monday, "09:30", false},
		{"sunday closed", sunday, "09:00", false},
		{"sunday closed regardless of blocked", sunday, "15:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cal.IsSlotAvailable(tt.day, tt.slot, blocked); got != tt.want {
				t.Errorf("IsSlotAvailable(%s, %s) = %v, want %v", tt.day.Format("2006-01-02"), tt.slot, got, tt.want)
			}
		})
	}
}

func TestIsSlotAvailableEverySundaySlot(t *testing.T) {
	cal := testCalendar()
	sunday := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)

	for _, slot := range cal.GenerateSlots() {
		if cal.IsSlotAvailable(sunday, slot, nil) {
			t.Errorf("slot %s must be unavailable on Sunday", slot)
		}
	}
}

func TestAvailableSlots(t *testing.T) {
	cal := testCalendar()
	monday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	blocked := cal.ComputeBlockedSlots([]time.Time{
		time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
	})

	open := cal.AvailableSlots(monday, blocked)

	// 9 on-the-hour slots minus the booked one and its buffer.
	if len(open) != 7 {
		t.Fatalf("expected 7 open slots, got %d: %v", len(open), open)
	}
	for _, s := range open {
		if s == "10:00" || s == "11:00" {
			t.Errorf("slot %s must be filtered out", s)
		}
	}
	if open[0] != "09:00" || open[1] != "12:00" {
		t.Errorf("unexpected leading slots: %v", open[:2])
	}
}
