// Package sink defines the destinations a facade logger delivers formatted records to.
// A Provider hands out one Sink per (subsystem, category) pair. The slog-backed provider
// plays the role of the platform logging facility, and the console sink is the fallback
// used whenever no platform sink can be acquired.
package sink
