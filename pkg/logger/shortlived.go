package logger

// I logs one INFO record for category through a throwaway, silent Logger built from the
// process settings. The caller data names the code calling I.
func I(category, format string, args ...any) {
	oneShot(InfoLevel, true, CaptureCallSite(1), category, format, args)
}

// D is I at DEFAULT.
func D(category, format string, args ...any) {
	oneShot(DefaultLevel, true, CaptureCallSite(1), category, format, args)
}

// E is I at ERROR.
func E(category, format string, args ...any) {
	oneShot(ErrorLevel, true, CaptureCallSite(1), category, format, args)
}

// ILog is I with caller data optional.
func ILog(category string, includeCallerData bool, format string, args ...any) {
	oneShot(InfoLevel, includeCallerData, CaptureCallSite(1), category, format, args)
}

// DLog is D with caller data optional.
func DLog(category string, includeCallerData bool, format string, args ...any) {
	oneShot(DefaultLevel, includeCallerData, CaptureCallSite(1), category, format, args)
}

// ELog is E with caller data optional.
func ELog(category string, includeCallerData bool, format string, args ...any) {
	oneShot(ErrorLevel, includeCallerData, CaptureCallSite(1), category, format, args)
}

func oneShot(level Level, includeCallerData bool, site CallSite, category, format string, args []any) {
	l, err := New(category, Silent())
	if err != nil {
		return
	}
	l.emit(level, includeCallerData, site, format, args)
}
