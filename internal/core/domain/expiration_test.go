package domain

import (
	"testing"
	"time"
)

// reference "today" for every boundary scenario: 2024-06-10 in São Paulo.
var referenceNow = time.Date(2024, 6, 10, 15, 30, 0, 0, ReferenceLocation())

func TestDaysUntilExpiry_Boundaries(t *testing.T) {
	cases := []struct {
		expiration string
		days       int
		urgency    Urgency
	}{
		{"2024-06-09", -1, UrgencyExpired},
		{"2024-06-10", 0, UrgencyExpiresToday},
		{"2024-06-11", 1, UrgencyExpiresTomorrow},
		{"2024-06-13", 3, UrgencyExpiringSoon},
		{"2024-06-17", 7, UrgencyAttention},
		{"2024-06-18", 8, UrgencyOK},
	}

	for _, tc := range cases {
		t.Run(tc.expiration, func(t *testing.T) {
			expiration, err := ParseExpirationDate(tc.expiration)
			if err != nil {
				t.Fatalf("failed to parse expiration: %v", err)
			}

			days := DaysUntilExpiry(referenceNow, expiration)
			if days != tc.days {
				t.Fatalf("expected %d days, got %d", tc.days, days)
			}
			if got := ClassifyExpiration(days); got != tc.urgency {
				t.Fatalf("expected urgency %q, got %q", tc.urgency, got)
			}
		})
	}
}

func TestDaysUntilExpiry_IgnoresTimeOfDay(t *testing.T) {
	expiration, _ := ParseExpirationDate("2024-06-11")

	t.Run("just after midnight", func(t *testing.T) {
		now := time.Date(2024, 6, 10, 0, 0, 1, 0, ReferenceLocation())
		if days := DaysUntilExpiry(now, expiration); days != 1 {
			t.Fatalf("expected 1 day, got %d", days)
		}
	})

	t.Run("just before next midnight", func(t *testing.T) {
		now := time.Date(2024, 6, 10, 23, 59, 59, 0, ReferenceLocation())
		if days := DaysUntilExpiry(now, expiration); days != 1 {
			t.Fatalf("expected 1 day, got %d", days)
		}
	})
}

func TestDaysUntilExpiry_DeviceTimezoneIndependent(t *testing.T) {
	// 2024-06-11 01:00 UTC is still 2024-06-10 22:00 in São Paulo; the day
	// boundary must follow the reference calendar, not the device clock.
	now := time.Date(2024, 6, 11, 1, 0, 0, 0, time.UTC)
	expiration, _ := ParseExpirationDate("2024-06-10")

	if days := DaysUntilExpiry(now, expiration); days != 0 {
		t.Fatalf("expected 0 days (expires today in reference zone), got %d", days)
	}
}

func TestParseExpirationDate(t *testing.T) {
	t.Run("calendar date in reference zone", func(t *testing.T) {
		got, err := ParseExpirationDate("2024-06-10")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		want := time.Date(2024, 6, 10, 0, 0, 0, 0, ReferenceLocation())
		if !got.Equal(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("legacy RFC3339 timestamp", func(t *testing.T) {
		got, err := ParseExpirationDate("2024-06-10T12:00:00-03:00")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.UTC().Hour() != 15 {
			t.Fatalf("expected 15:00 UTC, got %v", got.UTC())
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := ParseExpirationDate("not-a-date"); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestRegistrationStamp_RoundTrip(t *testing.T) {
	instant := time.Date(2024, 6, 10, 18, 4, 5, 123_000_000, time.UTC)

	stamp := FormatRegistrationStamp(instant)
	if stamp != "2024-06-10T15:04:05.123-03:00" {
		t.Fatalf("unexpected stamp %q", stamp)
	}

	parsed, err := ParseRegistrationStamp(stamp)
	if err != nil {
		t.Fatalf("expected stamp to parse, got %v", err)
	}
	if !parsed.Equal(instant) {
		t.Fatalf("expected %v, got %v", instant, parsed)
	}
}
