package domain

import (
	"fmt"
	"math"
	"time"
)

// The inventory lives in a single physical location, so every day-boundary
// computation is anchored to that location's calendar, not the caller's.
const ReferenceTimezone = "America/Sao_Paulo"

// DefaultExpiringWindowDays is the inclusion threshold of the expiring scan.
const DefaultExpiringWindowDays = 3

const (
	// ExpirationDateLayout is the persisted calendar-date form.
	ExpirationDateLayout = "2006-01-02"
	// RegistrationStampLayout renders millisecond precision with an
	// explicit UTC offset, matching previously stored records.
	RegistrationStampLayout = "2006-01-02T15:04:05.000-07:00"
)

var referenceLocation = loadReferenceLocation()

func loadReferenceLocation() *time.Location {
	loc, err := time.LoadLocation(ReferenceTimezone)
	if err != nil {
		// Brazil has not observed DST since 2019; a fixed offset is a
		// faithful stand-in when tzdata is unavailable.
		return time.FixedZone("-03", -3*60*60)
	}
	return loc
}

func ReferenceLocation() *time.Location {
	return referenceLocation
}

type Urgency string

const (
	UrgencyExpired         Urgency = "expired"
	UrgencyExpiresToday    Urgency = "expires_today"
	UrgencyExpiresTomorrow Urgency = "expires_tomorrow"
	UrgencyExpiringSoon    Urgency = "expiring_soon"
	UrgencyAttention       Urgency = "attention"
	UrgencyOK              Urgency = "ok"
)

// DaysUntilExpiry is the one canonical integer day difference used by
// classification, list display and the expiring-within scan alike. Both
// instants are projected into the reference timezone and truncated to
// midnight before subtracting, so a device near a timezone boundary never
// sees an item expire a day early or late.
func DaysUntilExpiry(now, expiration time.Time) int {
	delta := midnightInReference(expiration).Sub(midnightInReference(now))
	// Rounding absorbs a DST hour; for aligned midnights this equals both
	// the ceiling division and the calendar subtraction of the day delta.
	return int(math.Round(delta.Hours() / 24))
}

// ClassifyExpiration maps a day delta to an urgency label.
func ClassifyExpiration(days int) Urgency {
	switch {
	case days < 0:
		return UrgencyExpired
	case days == 0:
		return UrgencyExpiresToday
	case days == 1:
		return UrgencyExpiresTomorrow
	case days <= DefaultExpiringWindowDays:
		return UrgencyExpiringSoon
	case days <= 7:
		return UrgencyAttention
	default:
		return UrgencyOK
	}
}

func midnightInReference(t time.Time) time.Time {
	year, month, day := t.In(referenceLocation).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, referenceLocation)
}

// ParseExpirationDate accepts the persisted calendar-date form and, for
// records written by older clients, a full RFC 3339 timestamp. Date-only
// values are interpreted in the reference timezone.
func ParseExpirationDate(value string) (time.Time, error) {
	if t, err := time.ParseInLocation(ExpirationDateLayout, value, referenceLocation); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid expiration date %q", value)
}

// FormatRegistrationStamp renders an instant in the reference timezone with
// sub-second precision and explicit offset.
func FormatRegistrationStamp(t time.Time) string {
	return t.In(referenceLocation).Format(RegistrationStampLayout)
}

func ParseRegistrationStamp(value string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, value)
}
