package entity

import "testing"

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{"requested to confirmed", AppointmentStatusRequested, AppointmentStatusConfirmed, true},
		{"requested to cancelled", AppointmentStatusRequested, AppointmentStatusCancelled, true},
		{"requested to completed skips confirmation", AppointmentStatusRequested, AppointmentStatusCompleted, false},
		{"requested to archived", AppointmentStatusRequested, AppointmentStatusArchived, false},
		{"confirmed to completed", AppointmentStatusConfirmed, AppointmentStatusCompleted, true},
		{"confirmed to cancelled", AppointmentStatusConfirmed, AppointmentStatusCancelled, true},
		{"confirmed back to requested", AppointmentStatusConfirmed, AppointmentStatusRequested, false},
		{"confirmed to archived skips visit", AppointmentStatusConfirmed, AppointmentStatusArchived, false},
		{"completed to archived", AppointmentStatusCompleted, AppointmentStatusArchived, true},
		{"completed to cancelled", AppointmentStatusCompleted, AppointmentStatusCancelled, false},
		{"cancelled is terminal", AppointmentStatusCancelled, AppointmentStatusConfirmed, false},
		{"archived is terminal", AppointmentStatusArchived, AppointmentStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{Status: tt.from}
			if got := a.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestBlocks(t *testing.T) {
	blocking := []AppointmentStatus{
		AppointmentStatusRequested,
		AppointmentStatusConfirmed,
		AppointmentStatusCompleted,
		AppointmentStatusArchived,
	}
	for _, status := range blocking {
		a := &Appointment{Status: status}
		if !a.Blocks() {
			t.Errorf("Blocks() = false for %s, want true", status)
		}
	}

	cancelled := &Appointment{Status: AppointmentStatusCancelled}
	if cancelled.Blocks() {
		t.Error("Blocks() = true for cancelled appointment, want false")
	}
}

func TestIsCompleted(t *testing.T) {
	tests := []struct {
		status AppointmentStatus
		want   bool
	}{
		{AppointmentStatusRequested, false},
		{AppointmentStatusConfirmed, false},
		{AppointmentStatusCompleted, true},
		{AppointmentStatusArchived, true},
		{AppointmentStatusCancelled, false},
	}
	for _, tt := range tests {
		a := &Appointment{Status: tt.status}
		if got := a.IsCompleted(); got != tt.want {
			t.Errorf("IsCompleted() for %s = %v, want %v", tt.status, got, tt.want)
		}
	}
}
