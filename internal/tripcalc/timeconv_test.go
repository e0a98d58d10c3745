package tripcalc

import "testing"

func TestTo24Hour(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"9:05 AM", "09:05"},
		{"12:00 AM", "00:00"},
		{"12:30 PM", "12:30"},
		{"1:15 pm", "13:15"},
		{"11:59 PM", "23:59"},
	}
	for _, tc := range cases {
		got, err := To24Hour(tc.in)
		if err != nil {
			t.Fatalf("To24Hour(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("To24Hour(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTo24HourInvalid(t *testing.T) {
	for _, in := range []string{"", "9:05", "13:00 PM", "9:5 AM", "09:65 AM", "9:05 XM", "morning"} {
		if _, err := To24Hour(in); err == nil {
			t.Fatalf("To24Hour(%q) should fail", in)
		}
	}
}

func TestTo12Hour(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"00:10", "12:10 AM"},
		{"12:00", "12:00 PM"},
		{"09:05", "9:05 AM"},
		{"23:59", "11:59 PM"},
	}
	for _, tc := range cases {
		got, err := To12Hour(tc.in)
		if err != nil {
			t.Fatalf("To12Hour(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("To12Hour(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalize24AcceptsBothForms(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"08:30", "08:30"},
		{"8:30", "08:30"},
		{"3:45 PM", "15:45"},
	}
	for _, tc := range cases {
		got, err := Normalize24(tc.in)
		if err != nil {
			t.Fatalf("Normalize24(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Normalize24(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDurationHours(t *testing.T) {
	cases := []struct {
		start, end string
		want       string
	}{
		{"08:00", "20:30", "12.50"},
		{"23:30", "00:15", "0.75"}, // crosses midnight
		{"10:00", "10:00", "0.00"},
		{"06:10", "06:30", "0.33"},
	}
	for _, tc := range cases {
		got, err := DurationHours(tc.start, tc.end)
		if err != nil {
			t.Fatalf("DurationHours(%q,%q) error: %v", tc.start, tc.end, err)
		}
		if got != tc.want {
			t.Fatalf("DurationHours(%q,%q) = %q, want %q", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestDurationHoursInvalid(t *testing.T) {
	if _, err := DurationHours("25:00", "08:00"); err == nil {
		t.Fatal("hour 25 should fail")
	}
	if _, err := DurationHours("", "08:00"); err == nil {
		t.Fatal("blank start should fail")
	}
}
