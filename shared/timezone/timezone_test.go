package timezone_test

import (
	"testing"
	"time"

	"frontdesk/shared/timezone"
)

func TestTimezoneInit(t *testing.T) {
	// Test Now() function
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	// Test GetLocation()
	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}
}

func TestTimezoneMidnight(t *testing.T) {
	testTime := time.Date(2026, 8, 15, 17, 42, 13, 500, timezone.GetLocation())
	midnight := timezone.Midnight(testTime)

	if midnight.Hour() != 0 || midnight.Minute() != 0 || midnight.Second() != 0 || midnight.Nanosecond() != 0 {
		t.Errorf("Midnight() did not truncate to start of day, got %v", midnight)
	}

	if midnight.Year() != 2026 || midnight.Month() != time.August || midnight.Day() != 15 {
		t.Errorf("Midnight() changed the calendar date, got %v", midnight)
	}

	// Two times on the same day collapse to the same midnight.
	other := time.Date(2026, 8, 15, 3, 1, 0, 0, timezone.GetLocation())
	if !timezone.Midnight(other).Equal(midnight) {
		t.Error("expected same-day times to share a midnight")
	}
}
