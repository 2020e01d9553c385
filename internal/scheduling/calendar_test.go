package scheduling

import (
	"testing"
	"time"
)

func testCalendar() Calendar {
	return Calendar{OpenHour: 9, CloseHour: 18, SlotStepMin: 30, Location: time.UTC}
}

func TestGenerateMonthDayCount(t *testing.T) {
	cal := testCalendar()
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		anchor time.Time
		want   int
	}{
		{"june", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), 30},
		{"july", time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC), 31},
		{"february leap", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), 29},
		{"february non leap", time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := cal.GenerateMonth(tt.anchor, now)
			if len(days) != tt.want {
				t.Fatalf("expected %d days, got %d", tt.want, len(days))
			}
			for i, d := range days {
				if d.Date.Day() != i+1 {
					t.Fatalf("day %d is not contiguous: got day-of-month %d", i, d.Date.Day())
				}
			}
		})
	}
}

func TestGenerateMonthPastIsMonotonic(t *testing.T) {
	cal := testCalendar()
	now := time.Date(2024, 6, 15, 23, 30, 0, 0, time.UTC)
	days := cal.GenerateMonth(now, now)

	seenFuture := false
	for i, d := range days {
		if !d.Past {
			seenFuture = true
		}
		if seenFuture && d.Past {
			t.Fatalf("day %d (%s) is past after a non-past day", i, d.ISODate)
		}
	}
	if days[13].ISODate != "2024-06-14" || !days[13].Past {
		t.Fatalf("expected 2024-06-14 to be past, got %+v", days[13])
	}
	if days[14].Past {
		t.Fatalf("expected today (2024-06-15) to be not past")
	}
}

func TestGenerateMonthLabels(t *testing.T) {
	cal := testCalendar()
	// 2024-06-15 is a Saturday.
	now := time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC)
	days := cal.GenerateMonth(now, now)

	if got := days[14].ShortLabel; got != "Hoy" {
		t.Errorf("today short label: got %q, want Hoy", got)
	}
	if got := days[15].ShortLabel; got != "Mañana" {
		t.Errorf("tomorrow short label: got %q, want Mañana", got)
	}
	if got := days[16].ShortLabel; got != "Lunes" {
		t.Errorf("monday short label: got %q, want Lunes", got)
	}
	if got := days[14].LongLabel; got != "sáb 15 jun" {
		t.Errorf("long label: got %q, want sáb 15 jun", got)
	}
}

func TestGenerateSlots(t *testing.T) {
	cal := testCalendar()
	slots := cal.GenerateSlots()

	if len(slots) != 18 {
		t.Fatalf("expected 18 slots, got %d", len(slots))
	}
	if slots[0] != "09:00" || slots[1] != "09:30" {
		t.Fatalf("unexpected opening slots: %v", slots[:2])
	}
	if slots[len(slots)-1] != "17:30" {
		t.Fatalf("expected last slot 17:30 (18:00 exclusive), got %s", slots[len(slots)-1])
	}
}

func TestFirstSelectable(t *testing.T) {
	cal := testCalendar()

	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	days := cal.GenerateMonth(now, now)
	if got := FirstSelectable(days); got != 14 {
		t.Errorf("mid-month: got index %d, want 14", got)
	}

	// Viewing a fully past month: nothing selectable.
	past := cal.GenerateMonth(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), now)
	if got := FirstSelectable(past); got != -1 {
		t.Errorf("past month: got index %d, want -1", got)
	}
}
