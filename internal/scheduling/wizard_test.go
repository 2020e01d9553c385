package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

type stubSlotSource struct {
	times []time.Time
	err   error
	calls int
}

func (s *stubSlotSource) BookedTimes(ctx context.Context, specialistID uuid.UUID) ([]time.Time, error) {
	s.calls++
	return s.times, s.err
}

// Saturday 2024-06-15; the following Monday (index 16) is the first
// weekday used by most scenarios.
func fixedNow() time.Time {
	return time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
}

func newTestWizard(source BookedSlotSource) *Wizard {
	return NewWizard(testCalendar(), source, fixedNow)
}

func TestWizardNextBlockedOnIncompleteStep(t *testing.T) {
	w := newTestWizard(&stubSlotSource{})
	w.Open()

	if err := w.Next(); !errors.Is(err, ErrStepIncomplete) {
		t.Fatalf("expected ErrStepIncomplete, got %v", err)
	}
	if w.Step() != StepSpecialist {
		t.Fatalf("step moved to %d despite incomplete step 1", w.Step())
	}

	// Specialty alone is not enough.
	w.SelectSpecialty("Cardiología")
	if err := w.Next(); !errors.Is(err, ErrStepIncomplete) {
		t.Fatalf("expected ErrStepIncomplete with specialty only, got %v", err)
	}
}

func TestWizardBackAlwaysAllowed(t *testing.T) {
	w := newTestWizard(&stubSlotSource{})
	w.Open()

	w.Back()
	if w.Step() != StepSpecialist {
		t.Fatalf("back on step 1 must stay at 1, got %d", w.Step())
	}

	w.SelectSpecialty("Cardiología")
	if err := w.SelectSpecialist(context.Background(), uuid.New()); err != nil {
		t.Fatalf("select specialist: %v", err)
	}
	if err := w.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	w.Back()
	if w.Step() != StepSpecialist {
		t.Fatalf("expected step 1 after back, got %d", w.Step())
	}
}

func TestWizardEndToEndSubmit(t *testing.T) {
	specialistID := uuid.New()
	w := newTestWizard(&stubSlotSource{})
	w.Open()

	w.SelectSpecialty("Cardiología")
	if err := w.SelectSpecialist(context.Background(), specialistID); err != nil {
		t.Fatalf("select specialist: %v", err)
	}
	if err := w.Next(); err != nil {
		t.Fatalf("next to step 2: %v", err)
	}

	// Monday 2024-06-17.
	w.SelectDay(16)
	if err := w.SelectTime("10:00"); err != nil {
		t.Fatalf("select time: %v", err)
	}
	if err := w.Next(); err != nil {
		t.Fatalf("next to step 3: %v", err)
	}

	got, err := w.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	want := BookingRequest{
		Specialty:    "Cardiología",
		SpecialistID: specialistID,
		ISODate:      "2024-06-17",
		Time:         "10:00",
	}
	if got != want {
		t.Fatalf("submit payload mismatch:\n got  %+v\n want %+v", got, want)
	}
}

func TestWizardSubmitRequiresConfirmStep(t *testing.T) {
	w := newTestWizard(&stubSlotSource{})
	w.Open()

	if _, err := w.Submit(); !errors.Is(err, ErrWizardNotOnStep3) {
		t.Fatalf("expected ErrWizardNotOnStep3, got %v", err)
	}
}

func TestWizardVisibleSlotsExcludeBookedAndBuffer(t *testing.T) {
	source := &stubSlotSource{times: []time.Time{
		time.Date(2024, 6, 17, 10, 0, 0, 0, time.UTC),
	}}
	w := newTestWizard(source)
	w.Open()

	w.SelectSpecialty("Cardiología")
	if err := w.SelectSpecialist(context.Background(), uuid.New()); err != nil {
		t.Fatalf("select specialist: %v", err)
	}
	if err := w.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	w.SelectDay(16)

	slots := w.VisibleSlots()
	has := func(s string) bool {
		for _, v := range slots {
			if v == s {
				return true
			}
		}
		return false
	}
	if has("10:00") || has("11:00") {
		t.Errorf("booked slot and its buffer must be hidden, got %v", slots)
	}
	if !has("09:00") || !has("12:00") {
		t.Errorf("09:00 and 12:00 must stay visible, got %v", slots)
	}

	if err := w.SelectTime("10:00"); !errors.Is(err, ErrSlotUnavailable) {
		t.Errorf("expected ErrSlotUnavailable for booked slot, got %v", err)
	}
	if err := w.SelectTime("11:00"); !errors.Is(err, ErrSlotUnavailable) {
		t.Errorf("expected ErrSlotUnavailable for buffer slot, got %v", err)
	}
}

func TestWizardVisibleSlotsEmptyWithoutSpecialist(t *testing.T) {
	w := newTestWizard(&stubSlotSource{})
	w.Open()

	if slots := w.VisibleSlots(); slots != nil {
		t.Fatalf("expected no slots before a specialist is chosen, got %v", slots)
	}
	if err := w.SelectTime("09:00"); !errors.Is(err, ErrNoSpecialist) {
		t.Fatalf("expected ErrNoSpecialist, got %v", err)
	}
}

func TestWizardFailedRefreshHidesSlots(t *testing.T) {
	source := &stubSlotSource{err: errors.New("upstream down")}
	w := newTestWizard(source)
	w.Open()

	w.SelectSpecialty("Cardiología")
	if err := w.SelectSpecialist(context.Background(), uuid.New()); err == nil {
		t.Fatalf("expected refresh error to propagate")
	}
	if slots := w.VisibleSlots(); slots != nil {
		t.Fatalf("failed refresh must hide every slot, got %v", slots)
	}
}

func TestWizardSpecialtyChangeDiscardsSpecialist(t *testing.T) {
	source := &stubSlotSource{}
	w := newTestWizard(source)
	w.Open()

	w.SelectSpecialty("Cardiología")
	if err := w.SelectSpecialist(context.Background(), uuid.New()); err != nil {
		t.Fatalf("select specialist: %v", err)
	}
	w.SelectSpecialty("Pediatría")

	if err := w.Next(); !errors.Is(err, ErrStepIncomplete) {
		t.Fatalf("specialty change must discard the specialist, got %v", err)
	}
}

func TestWizardSelectDayIgnoresPast(t *testing.T) {
	w := newTestWizard(&stubSlotSource{})
	w.Open()

	before := w.ActiveDay()
	w.SelectDay(0) // 2024-06-01, past
	if w.ActiveDay() != before {
		t.Fatalf("past day selection must be ignored")
	}
	w.SelectDay(99)
	if w.ActiveDay() != before {
		t.Fatalf("out-of-range selection must be ignored")
	}
}

func TestWizardChangeMonthClampedAtCurrent(t *testing.T) {
	w := newTestWizard(&stubSlotSource{})
	w.Open()

	w.ChangeMonth(-1)
	if got := w.MonthBase(); !got.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("navigating before the current month must be a no-op, got %s", got.Format("2006-01-02"))
	}

	w.ChangeMonth(1)
	if got := w.MonthBase(); !got.Equal(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected july, got %s", got.Format("2006-01-02"))
	}
	if w.ActiveDay() != 0 {
		t.Fatalf("future month must auto-select its first day, got %d", w.ActiveDay())
	}

	w.ChangeMonth(-1)
	if got := w.MonthBase(); !got.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected june again, got %s", got.Format("2006-01-02"))
	}
	if w.ActiveDay() != 14 {
		t.Fatalf("current month must auto-select today, got index %d", w.ActiveDay())
	}
}

func TestWizardSwipeMonth(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		want     int
	}{
		{"left past threshold", -60, 1},
		{"left below threshold", -59, 0},
		{"right below threshold", 59, 0},
		{"tap", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWizard(&stubSlotSource{})
			if got := w.SwipeMonth(tt.distance); got != tt.want {
				t.Errorf("SwipeMonth(%v) = %d, want %d", tt.distance, got, tt.want)
			}
		})
	}

	t.Run("right past threshold from a later month", func(t *testing.T) {
		w := newTestWizard(&stubSlotSource{})
		w.ChangeMonth(1)
		if got := w.SwipeMonth(60); got != -1 {
			t.Fatalf("SwipeMonth(60) = %d, want -1", got)
		}
		if got := w.MonthBase(); !got.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("expected june, got %s", got.Format("2006-01-02"))
		}
	})
}

func TestWizardCloseResetsEverything(t *testing.T) {
	source := &stubSlotSource{}
	w := newTestWizard(source)
	w.Open()

	w.SelectSpecialty("Cardiología")
	if err := w.SelectSpecialist(context.Background(), uuid.New()); err != nil {
		t.Fatalf("select specialist: %v", err)
	}
	if err := w.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	w.ChangeMonth(1)
	w.SelectDay(16)

	w.Close()

	if w.IsOpen() {
		t.Errorf("wizard must be hidden after close")
	}
	if w.Step() != StepSpecialist {
		t.Errorf("step must reset to 1, got %d", w.Step())
	}
	if got := w.MonthBase(); !got.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("month must reset to the current month, got %s", got.Format("2006-01-02"))
	}
	if draft := w.Draft(); draft != (BookingRequest{}) {
		t.Errorf("draft must be discarded, got %+v", draft)
	}
}

func TestWizardAdminFlowRequiresPatientEmail(t *testing.T) {
	w := newTestWizard(&stubSlotSource{})
	w.RequirePatientEmail = true
	w.Open()

	w.SelectSpecialty("Cardiología")
	if err := w.SelectSpecialist(context.Background(), uuid.New()); err != nil {
		t.Fatalf("select specialist: %v", err)
	}
	if err := w.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	w.SelectDay(16)
	if err := w.SelectTime("09:00"); err != nil {
		t.Fatalf("select time: %v", err)
	}

	if err := w.Next(); !errors.Is(err, ErrStepIncomplete) {
		t.Fatalf("admin flow without patient email must not advance, got %v", err)
	}

	w.SetPatientEmail("paciente@example.com")
	if err := w.Next(); err != nil {
		t.Fatalf("next after email: %v", err)
	}
	req, err := w.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if req.PatientEmail != "paciente@example.com" {
		t.Fatalf("patient email missing from request: %+v", req)
	}
}
