package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Wizard steps. There is no terminal "done" state: after a successful
// submit the wizard is closed and reset to step 1.
const (
	StepSpecialist = 1 // choose specialty and specialist
	StepSchedule   = 2 // choose date and time
	StepConfirm    = 3 // review and submit
)

// swipeThresholdPx is the minimum horizontal swipe distance that counts
// as a month-navigation gesture.
const swipeThresholdPx = 60.0

var (
	ErrStepIncomplete   = errors.New("current step is incomplete")
	ErrNoSpecialist     = errors.New("no specialist selected")
	ErrNoActiveDay      = errors.New("no day selected")
	ErrSlotUnavailable  = errors.New("slot is not available")
	ErrWizardNotOnStep3 = errors.New("wizard is not on the confirmation step")
)

// BookedSlotSource provides the timestamps already booked for a
// specialist. Selecting a specialist is the only point where the wizard
// touches a remote collaborator.
type BookedSlotSource interface {
	BookedTimes(ctx context.Context, specialistID uuid.UUID) ([]time.Time, error)
}

// BookingRequest is the payload a completed wizard emits. The receiver
// (appointment usecase) is the authoritative boundary: it resolves
// identities and re-checks the slot at commit time. The wizard's own
// availability filter is advisory only.
type BookingRequest struct {
	Specialty    string    `json:"specialty"`
	SpecialistID uuid.UUID `json:"specialist_id"`
	ISODate      string    `json:"iso_date"`
	Time         string    `json:"time"`
	PatientEmail string    `json:"patient_email,omitempty"`
}

// Wizard is the 3-step booking flow. It is not safe for concurrent use;
// callers serialize access (the session store holds one lock per wizard).
type Wizard struct {
	cal    Calendar
	source BookedSlotSource
	now    func() time.Time

	// RequirePatientEmail is set for the admin flow, where the acting
	// user books on behalf of a patient identified by email.
	RequirePatientEmail bool

	open      bool
	step      int
	monthBase time.Time
	days      []CalendarDay
	activeDay int

	specialty     string
	specialistID  uuid.UUID
	hasSpecialist bool
	isoDate       string
	timeHHMM      string
	patientEmail  string

	// blocked is only trusted while blockedReady holds; a failed or
	// superseded refresh leaves every slot hidden rather than stale.
	blocked      map[string]struct{}
	blockedReady bool
	fetchGen     uint64
}

// NewWizard creates a closed wizard positioned on the current month.
// nowFn defaults to time.Now and exists for tests.
func NewWizard(cal Calendar, source BookedSlotSource, nowFn func() time.Time) *Wizard {
	if nowFn == nil {
		nowFn = time.Now
	}
	w := &Wizard{
		cal:    cal,
		source: source,
		now:    nowFn,
		step:   StepSpecialist,
	}
	w.monthBase = cal.MonthStart(nowFn())
	w.regenerateDays()
	return w
}

func (w *Wizard) regenerateDays() {
	w.days = w.cal.GenerateMonth(w.monthBase, w.now())
	w.activeDay = FirstSelectable(w.days)
}

// Open shows the wizard.
func (w *Wizard) Open() { w.open = true }

// IsOpen reports whether the wizard is currently shown.
func (w *Wizard) IsOpen() bool { return w.open }

// Step returns the current wizard step (1..3).
func (w *Wizard) Step() int { return w.step }

// MonthBase returns the first day of the visible month.
func (w *Wizard) MonthBase() time.Time { return w.monthBase }

// Days returns the visible month's day list.
func (w *Wizard) Days() []CalendarDay { return w.days }

// ActiveDay returns the selected day index, -1 when none.
func (w *Wizard) ActiveDay() int { return w.activeDay }

// Draft returns the in-progress selection. It is only meaningful to the
// confirmation view; Submit validates before emitting.
func (w *Wizard) Draft() BookingRequest {
	return BookingRequest{
		Specialty:    w.specialty,
		SpecialistID: w.specialistID,
		ISODate:      w.isoDate,
		Time:         w.timeHHMM,
		PatientEmail: w.patientEmail,
	}
}

// Next advances one step when the current step is complete. Calling it on
// step 3 is a no-op.
func (w *Wizard) Next() error {
	if !w.stepComplete(w.step) {
		return ErrStepIncomplete
	}
	if w.step < StepConfirm {
		w.step++
	}
	return nil
}

// Back retreats one step, clamped at step 1. Always allowed.
func (w *Wizard) Back() {
	if w.step > StepSpecialist {
		w.step--
	}
}

func (w *Wizard) stepComplete(step int) bool {
	switch step {
	case StepSpecialist:
		return w.specialty != "" && w.hasSpecialist
	case StepSchedule:
		if w.isoDate == "" || w.timeHHMM == "" {
			return false
		}
		if w.RequirePatientEmail && w.patientEmail == "" {
			return false
		}
		return true
	default:
		return true
	}
}

// SelectSpecialty records the specialty and discards any previously
// chosen specialist, whose availability no longer applies.
func (w *Wizard) SelectSpecialty(specialty string) {
	if w.step != StepSpecialist {
		return
	}
	w.specialty = specialty
	w.hasSpecialist = false
	w.specialistID = uuid.Nil
	w.blocked = nil
	w.blockedReady = false
}

// SelectSpecialist records the specialist and refreshes that specialist's
// blocked-slot set. Until the refresh completes no slot is shown as
// available; a refresh that fails, or that is superseded by a newer
// selection, leaves the set unusable rather than stale.
func (w *Wizard) SelectSpecialist(ctx context.Context, specialistID uuid.UUID) error {
	if w.step != StepSpecialist {
		return nil
	}
	w.specialistID = specialistID
	w.hasSpecialist = true
	w.blocked = nil
	w.blockedReady = false

	w.fetchGen++
	gen := w.fetchGen

	booked, err := w.source.BookedTimes(ctx, specialistID)
	if err != nil {
		return err
	}
	if gen != w.fetchGen {
		// A newer selection won; drop this result.
		return nil
	}
	w.blocked = w.cal.ComputeBlockedSlots(booked)
	w.blockedReady = true
	return nil
}

// SelectDay activates the day at index i. Past days and out-of-range
// indexes are ignored.
func (w *Wizard) SelectDay(i int) {
	if i < 0 || i >= len(w.days) || w.days[i].Past {
		return
	}
	w.activeDay = i
}

// SelectTime records the date+time pair on the draft. The slot must be
// visible for the active day.
func (w *Wizard) SelectTime(hhmm string) error {
	if w.activeDay < 0 || w.activeDay >= len(w.days) {
		return ErrNoActiveDay
	}
	if !w.blockedReady {
		return ErrNoSpecialist
	}
	day := w.days[w.activeDay]
	if !w.cal.IsSlotAvailable(day.Date, hhmm, w.blocked) {
		return ErrSlotUnavailable
	}
	w.isoDate = day.ISODate
	w.timeHHMM = hhmm
	return nil
}

// SetPatientEmail records the target patient for the admin flow.
func (w *Wizard) SetPatientEmail(email string) {
	w.patientEmail = email
}

// ChangeMonth shifts the visible month by delta months. Navigating before
// the current month is a no-op; otherwise the day list is regenerated and
// the active day resets to the first non-past day.
func (w *Wizard) ChangeMonth(delta int) {
	target := w.monthBase.AddDate(0, delta, 0)
	if target.Before(w.cal.MonthStart(w.now())) {
		return
	}
	w.monthBase = target
	w.regenerateDays()
}

// SwipeMonth translates a horizontal swipe gesture into a month delta:
// swiping left (negative distance) advances, swiping right goes back.
// Returns the applied delta (0 when below the gesture threshold).
func (w *Wizard) SwipeMonth(distancePx float64) int {
	switch {
	case distancePx <= -swipeThresholdPx:
		w.ChangeMonth(1)
		return 1
	case distancePx >= swipeThresholdPx:
		w.ChangeMonth(-1)
		return -1
	default:
		return 0
	}
}

// VisibleSlots returns the offerable slots for the active day. Empty when
// no day is active or the blocked set is not ready (no specialist chosen
// yet, refresh failed, or refresh still pending).
func (w *Wizard) VisibleSlots() []string {
	if w.activeDay < 0 || w.activeDay >= len(w.days) || !w.blockedReady {
		return nil
	}
	return w.cal.AvailableSlots(w.days[w.activeDay].Date, w.blocked)
}

// Submit validates the whole draft and emits the booking request. The
// wizard keeps its state: on a failed persist the caller leaves the user
// at step 3 with the draft intact for retry; on success it calls Close.
func (w *Wizard) Submit() (BookingRequest, error) {
	if w.step != StepConfirm {
		return BookingRequest{}, ErrWizardNotOnStep3
	}
	if !w.stepComplete(StepSpecialist) || !w.stepComplete(StepSchedule) {
		return BookingRequest{}, ErrStepIncomplete
	}
	return w.Draft(), nil
}

// Close hides the wizard, resets it to step 1 and discards the draft.
// Partial drafts never survive across opens.
func (w *Wizard) Close() {
	w.open = false
	w.step = StepSpecialist
	w.specialty = ""
	w.specialistID = uuid.Nil
	w.hasSpecialist = false
	w.isoDate = ""
	w.timeHHMM = ""
	w.patientEmail = ""
	w.blocked = nil
	w.blockedReady = false
	w.monthBase = w.cal.MonthStart(w.now())
	w.regenerateDays()
}
