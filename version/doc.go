// Package version reports delium's version and build metadata.
//
// Values come from three sources, in order of preference:
//   - Compile-time variables (Version, Commit, Date) set via -ldflags
//   - Runtime build info from debug.ReadBuildInfo()
//   - Fallback defaults for development builds
//
// Release builds set them with:
//
//	-ldflags "-X github.com/dendrascience/delium/version.Version=v1.0.0 -X github.com/dendrascience/delium/version.Commit=abc123 -X github.com/dendrascience/delium/version.Date=2024-01-01T00:00:00Z"
//
// The version string is also stamped into vector metadata so a vector file
// records which build produced it.
package version
