package astro

import (
	"math"
)

// OmegaEarth is Earth's rotation rate in rad/s.
const OmegaEarth = 7.2921150e-5

// Vec3 represents a 3D position vector in km, in whichever frame the caller
// says it is in.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// ECEFToECI rotates an Earth-fixed vector into the inertial frame using the
// sidereal angle gst (radians). This is R3(-gst): Z passes through untouched,
// no polar motion or precession is applied.
func ECEFToECI(gst float64, ecef Vec3) Vec3 {
	cosG := math.Cos(-gst)
	sinG := math.Sin(-gst)

	return Vec3{
		X: ecef.X*cosG + ecef.Y*sinG,
		Y: ecef.Y*cosG - ecef.X*sinG,
		Z: ecef.Z,
	}
}

// ECIToECEF is the inverse of ECEFToECI for the same sidereal angle.
func ECIToECEF(gst float64, eci Vec3) Vec3 {
	cosG := math.Cos(gst)
	sinG := math.Sin(gst)

	return Vec3{
		X: eci.X*cosG + eci.Y*sinG,
		Y: eci.Y*cosG - eci.X*sinG,
		Z: eci.Z,
	}
}

// Result holds every intermediate of one ECEF to ECI conversion.
type Result struct {
	Time CalendarTime
	JD   float64
	GST  float64 // radians, [0, 2π)
	ECEF Vec3
	ECI  Vec3
}

// Convert runs the full pipeline: calendar fields to Julian Date, Julian
// Date to sidereal angle, then the rotation.
func Convert(ct CalendarTime, ecef Vec3) Result {
	return ConvertAt(JulianDate(ct), ct, ecef)
}

// ConvertAt is Convert with a precomputed Julian Date. ct is carried along
// for display only.
func ConvertAt(jd float64, ct CalendarTime, ecef Vec3) Result {
	gst := GreenwichSiderealTime(jd)
	return Result{
		Time: ct,
		JD:   jd,
		GST:  gst,
		ECEF: ecef,
		ECI:  ECEFToECI(gst, ecef),
	}
}
