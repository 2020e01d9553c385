package validator

import "testing"

type slotTimeSubject struct {
	Time string `validate:"slot_time"`
}

type isoDateSubject struct {
	Date string `validate:"iso_date"`
}

type bloodPressureSubject struct {
	BP string `validate:"blood_pressure"`
}

func TestSlotTimeTag(t *testing.T) {
	cv := NewValidator()

	tests := []struct {
		value string
		valid bool
	}{
		{"09:00", true},
		{"09:30", true},
		{"00:00", true},
		{"23:59", true},
		{"24:00", false},
		{"9:00", false},
		{"09:60", false},
		{"09-00", false},
		{"", false},
	}

	for _, tt := range tests {
		err := cv.Validate(slotTimeSubject{Time: tt.value})
		if (err == nil) != tt.valid {
			t.Errorf("slot_time %q: got err=%v, want valid=%v", tt.value, err, tt.valid)
		}
	}
}

func TestISODateTag(t *testing.T) {
	cv := NewValidator()

	tests := []struct {
		value string
		valid bool
	}{
		{"2024-06-15", true},
		{"2024-02-29", true},
		{"2023-02-29", false},
		{"2024-13-01", false},
		{"15-06-2024", false},
		{"2024/06/15", false},
		{"", false},
	}

	for _, tt := range tests {
		err := cv.Validate(isoDateSubject{Date: tt.value})
		if (err == nil) != tt.valid {
			t.Errorf("iso_date %q: got err=%v, want valid=%v", tt.value, err, tt.valid)
		}
	}
}

func TestBloodPressureTag(t *testing.T) {
	cv := NewValidator()

	tests := []struct {
		value string
		valid bool
	}{
		{"120/80", true},
		{"95/60", true},
		{"180/110", true},
		{"120-80", false},
		{"120/8", false},
		{"1200/80", false},
		{"120", false},
		{"", false},
	}

	for _, tt := range tests {
		err := cv.Validate(bloodPressureSubject{BP: tt.value})
		if (err == nil) != tt.valid {
			t.Errorf("blood_pressure %q: got err=%v, want valid=%v", tt.value, err, tt.valid)
		}
	}
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	type form struct {
		Email string `validate:"required,email"`
		Time  string `validate:"slot_time"`
	}

	err := cv.Validate(form{Email: "not-an-email", Time: "25:00"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	formatted := cv.FormatValidationErrors(err)
	if formatted["Email"] != "Email must be a valid email address" {
		t.Errorf("unexpected email message: %q", formatted["Email"])
	}
	if formatted["Time"] != "Time must be a HH:MM time" {
		t.Errorf("unexpected time message: %q", formatted["Time"])
	}
}
