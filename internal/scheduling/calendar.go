package scheduling

import (
	"fmt"
	"time"

	"clinica-turnos/config"
)

// CalendarDay is one selectable day in the booking calendar. The slice for
// a month is regenerated wholesale whenever the visible month changes.
type CalendarDay struct {
	ISODate    string    `json:"iso_date"` // YYYY-MM-DD
	Date       time.Time `json:"-"`
	LongLabel  string    `json:"long_label"`  // "lun 02 sep"
	ShortLabel string    `json:"short_label"` // "Hoy", "Mañana" or weekday name
	Past       bool      `json:"past"`
}

// Labels are rendered in the clinic's locale (es-AR).
var (
	weekdayShort = [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"}
	weekdayLong  = [7]string{"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}
	monthShort   = [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"}
)

// Calendar generates the bookable day grid and the slot grid from the
// clinic's business rules. It is a pure value; both generators are
// deterministic given their inputs.
type Calendar struct {
	OpenHour    int
	CloseHour   int
	SlotStepMin int
	Location    *time.Location
}

// NewCalendar builds a Calendar from configuration. An unknown timezone
// falls back to UTC rather than failing startup.
func NewCalendar(cfg config.ClinicConfig) Calendar {
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		loc = time.UTC
	}
	return Calendar{
		OpenHour:    cfg.OpenHour,
		CloseHour:   cfg.CloseHour,
		SlotStepMin: cfg.SlotStepMin,
		Location:    loc,
	}
}

// GenerateMonth produces one CalendarDay per day of the month containing
// anchor, from day 1 through the month's last day. Past is true iff the
// day is strictly before now's date.
func (c Calendar) GenerateMonth(anchor, now time.Time) []CalendarDay {
	anchor = anchor.In(c.Location)
	today := midnight(now.In(c.Location))
	tomorrow := today.AddDate(0, 0, 1)

	year, month, _ := anchor.Date()
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, c.Location).Day()

	days := make([]CalendarDay, 0, lastDay)
	for d := 1; d <= lastDay; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, c.Location)

		var short string
		switch {
		case date.Equal(today):
			short = "Hoy"
		case date.Equal(tomorrow):
			short = "Mañana"
		default:
			short = weekdayLong[int(date.Weekday())]
		}

		days = append(days, CalendarDay{
			ISODate:    ISODate(date),
			Date:       date,
			LongLabel:  fmt.Sprintf("%s %02d %s", weekdayShort[int(date.Weekday())], d, monthShort[int(date.Month())-1]),
			ShortLabel: short,
			Past:       date.Before(today),
		})
	}
	return days
}

// GenerateSlots produces every HH:MM on the slot grid within business
// hours, upper bound exclusive. The list is identical for every day; the
// availability filter decides which slots are actually offered.
func (c Calendar) GenerateSlots() []string {
	var slots []string
	for h := c.OpenHour; h < c.CloseHour; h++ {
		for m := 0; m < 60; m += c.SlotStepMin {
			slots = append(slots, fmt.Sprintf("%02d:%02d", h, m))
		}
	}
	return slots
}

// FirstSelectable returns the index of the first non-past day, or -1 when
// the whole month lies in the past (then no day is auto-selected and the
// slot list stays empty).
func FirstSelectable(days []CalendarDay) int {
	for i, d := range days {
		if !d.Past {
			return i
		}
	}
	return -1
}

// MonthStart truncates t to the first day of its month.
func (c Calendar) MonthStart(t time.Time) time.Time {
	t = t.In(c.Location)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, c.Location)
}

// ISODate formats a date as YYYY-MM-DD in its own location.
func ISODate(t time.Time) string {
	return t.Format("2006-01-02")
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
