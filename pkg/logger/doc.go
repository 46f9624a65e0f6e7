// Package logger is a small facade over the platform sink. A Logger is bound to a
// subsystem and category once, then emits leveled, printf-style messages with the call
// site appended, so call sites never repeat that wiring.
//
// Output is produced only in verbose mode. Builds tagged "debug" are verbose by default;
// everything else is silent unless the process opts in through Configure before the first
// logger is created. When no platform sink can be acquired, records go to the console.
//
// Example usage:
//
//	log, err := logger.New("Networking")
//	if err != nil {
//		return err
//	}
//	log.Error("request failed: %@", err)
//
//	// One-off record without holding a logger
//	logger.E("DB", "code %@", 42)
//
// Records whose format and arguments do not match are rendered best-effort by fmt; the
// exact text is unspecified. Caller data is appended to the format before substitution,
// so a format ending in a lone % consumes the line break before it and garbles the
// caller data as well; write %% for a literal percent sign.
package logger
