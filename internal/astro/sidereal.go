package astro

import (
	"fmt"
	"math"
)

// J2000 is the Julian Date of the J2000.0 epoch (2000-01-01 12:00 TT).
const J2000 = 2451545.0

const (
	secondsPerDay  = 86400.0
	daysPerCentury = 36525.0
)

// IAU-82 GMST polynomial coefficients, seconds of time (Vallado Eq 3-47).
const (
	gmstC0 float64 = 67310.54841
	gmstC1 float64 = 876600*60*60 + 8640184.812866
	gmstC2 float64 = 0.093104
	gmstC3 float64 = 6.2e-6
)

// MeanSiderealSeconds returns Greenwich Mean Sidereal Time for a Julian Date
// in seconds of time, reduced with a floored modulo to [0, 86400).
func MeanSiderealSeconds(jd float64) float64 {
	T := (jd - J2000) / daysPerCentury

	gmstSec := gmstC0 +
		gmstC1*T +
		gmstC2*math.Pow(T, 2) -
		gmstC3*math.Pow(T, 3)

	// Floored modulo: negative centuries still land in [0, 86400]. A tiny
	// negative remainder rounds up to exactly 86400 and is kept as is.
	gmstSec = math.Mod(gmstSec, secondsPerDay)
	if gmstSec < 0 {
		gmstSec += secondsPerDay
	}
	return gmstSec
}

// GreenwichSiderealTime returns the sidereal angle in radians, in [0, 2π),
// for a Julian Date. The reduced GMST seconds are scaled by OmegaEarth, then
// shifted by 2π and reduced again, in that order.
func GreenwichSiderealTime(jd float64) float64 {
	return math.Mod(MeanSiderealSeconds(jd)*OmegaEarth+2*math.Pi, 2*math.Pi)
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// FormatHMS formats seconds of time as hh:mm:ss.sss, truncated to the
// millisecond.
func FormatHMS(seconds float64) string {
	// The small offset absorbs binary representation error such as
	// 59.999 stored as 59.99899999...
	ms := int64(math.Floor(seconds*1000 + 1e-6))
	return fmt.Sprintf("%02d:%02d:%02d.%03d",
		ms/3600000, ms/60000%60, ms/1000%60, ms%1000)
}
