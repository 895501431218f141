// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "1.1.0"

// Milestones:
// 1.1.0 - Live view, -summary report, -strict calendar validation
// 1.0.0 - ECEF to ECI conversion with simplified GST rotation
