// Package astro provides the Julian Date, sidereal time and frame rotation
// math used to move Earth-fixed positions into the inertial frame.
package astro

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrFieldOutOfRange is returned by CalendarTime.Validate for a calendar
// field outside its civil range.
var ErrFieldOutOfRange = errors.New("calendar field out of range")

// CalendarTime is a UTC civil timestamp broken into fields.
// Fields are not range checked; JulianDate accepts any values.
type CalendarTime struct {
	Year   int
	Month  int // 1-12
	Day    int // 1-31
	Hour   int // 0-23
	Minute int // 0-59
	Second float64
}

// FromTime converts a time.Time to calendar fields in UTC.
func FromTime(t time.Time) CalendarTime {
	t = t.UTC()
	return CalendarTime{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: float64(t.Second()) + float64(t.Nanosecond())/1e9,
	}
}

// String formats the timestamp as ISO 8601. Out-of-range fields are printed
// as given.
func (ct CalendarTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%06.3fZ",
		ct.Year, ct.Month, ct.Day, ct.Hour, ct.Minute, ct.Second)
}

// Validate reports whether every field lies within its civil range.
// Day is checked against the length of the given month, including leap years.
func (ct CalendarTime) Validate() error {
	if ct.Month < 1 || ct.Month > 12 {
		return fmt.Errorf("month %d: %w", ct.Month, ErrFieldOutOfRange)
	}
	if ct.Day < 1 || ct.Day > daysIn(ct.Year, ct.Month) {
		return fmt.Errorf("day %d: %w", ct.Day, ErrFieldOutOfRange)
	}
	if ct.Hour < 0 || ct.Hour > 23 {
		return fmt.Errorf("hour %d: %w", ct.Hour, ErrFieldOutOfRange)
	}
	if ct.Minute < 0 || ct.Minute > 59 {
		return fmt.Errorf("minute %d: %w", ct.Minute, ErrFieldOutOfRange)
	}
	if math.IsNaN(ct.Second) || ct.Second < 0 || ct.Second >= 60 {
		return fmt.Errorf("second %v: %w", ct.Second, ErrFieldOutOfRange)
	}
	return nil
}

func daysIn(year, month int) int {
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// JulianDate returns the fractional Julian Date for a Gregorian calendar
// timestamp.
func JulianDate(ct CalendarTime) float64 {
	y := float64(ct.Year)
	m := float64(ct.Month)

	// Jan/Feb are months 13/14 of the previous year
	if ct.Month <= 2 {
		y--
		m += 12
	}

	// Gregorian calendar correction
	A := math.Floor(y / 100)
	B := 2 - A + math.Floor(A/4)

	jd := math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		float64(ct.Day) + B - 1524.5

	dayFrac := (float64(ct.Hour) + float64(ct.Minute)/60.0 + ct.Second/3600.0) / 24.0

	return jd + dayFrac
}
