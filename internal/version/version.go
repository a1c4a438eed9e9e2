// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "1.0.0"

// Milestones:
// 1.0.0 - Interactive 3D view with mouse orbit/zoom, data table, YAML settings
// 0.2.0 - Tidal tail polyline, pairwise separation annotations, JSON export
// 0.1.0 - Initial release: coordinate transform, scene assembly, summary mode
