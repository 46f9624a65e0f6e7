package logger

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is how the call time is rendered in caller data, always in UTC.
const TimestampLayout = "2006-01-02 15:04:05 -0700"

// CallSite identifies where in application code a record was logged. It is metadata
// only and should come from CaptureCallSite, never from application logic.
type CallSite struct {
	File     string
	Function string
	Line     int
}

// CaptureCallSite returns the call site skip frames above its caller: 0 is the function
// calling CaptureCallSite.
func CaptureCallSite(skip int) CallSite {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallSite{File: "???", Function: "???"}
	}

	site := CallSite{File: filepath.Base(file), Function: "???", Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		site.Function = functionName(fn.Name())
	}
	return site
}

// functionName strips the import path, leaving e.g. "logger.(*Logger).Info".
func functionName(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		return name[i+1:]
	}
	return name
}

func compose(format string, args []any, includeCallerData bool, site CallSite, now time.Time) string {
	if includeCallerData {
		format += "\n" + escapePercent(callerData(site, now))
	}
	return fmt.Sprintf(translatePlaceholders(format), normalizeArgs(args)...)
}

func callerData(site CallSite, now time.Time) string {
	return site.File + "::" + site.Function + " line: " + strconv.Itoa(site.Line) +
		" @" + now.UTC().Format(TimestampLayout)
}

func escapePercent(s string) string {
	return strings.ReplaceAll(s, "%", "%%")
}

// placeholderModifiers are the characters fmt accepts between % and the verb.
const placeholderModifiers = "+-# 0123456789.*[]"

// translatePlaceholders rewrites the object placeholder %@ to %v, keeping any flags,
// width or precision (%-8@ becomes %-8v). Everything else, including %%, is left for fmt.
func translatePlaceholders(format string) string {
	if !strings.Contains(format, "@") {
		return format
	}

	var b strings.Builder
	b.Grow(len(format))

	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}

		j := i + 1
		for j < len(format) && strings.IndexByte(placeholderModifiers, format[j]) >= 0 {
			j++
		}
		if j == len(format) {
			b.WriteString(format[i:])
			break
		}

		b.WriteString(format[i:j])
		if format[j] == '@' {
			b.WriteByte('v')
		} else {
			b.WriteByte(format[j])
		}
		i = j
	}

	return b.String()
}

// boolArg renders as "true"/"false" under %@, %v and %s, quoted under %q, and leaves
// every other verb, %t included, to fmt's bool handling.
type boolArg bool

func (b boolArg) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		fmt.Fprintf(f, fmt.FormatString(f, 's'), strconv.FormatBool(bool(b)))
	case 'q':
		fmt.Fprintf(f, fmt.FormatString(f, 'q'), strconv.FormatBool(bool(b)))
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), bool(b))
	}
}

// normalizeArgs wraps booleans in boolArg. Every other value goes to fmt unchanged.
func normalizeArgs(args []any) []any {
	if len(args) == 0 {
		return nil
	}

	out := make([]any, len(args))
	for i, arg := range args {
		if b, ok := arg.(bool); ok {
			out[i] = boolArg(b)
			continue
		}
		out[i] = arg
	}
	return out
}
