package hifitime

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders d with automatic unit selection: every non-zero component
// from days down to nanoseconds, space-separated, with a single leading
// minus sign for negative durations.
func (d Duration) String() string {
	if d.TotalNanoseconds().Sign() == 0 {
		return "0 ns"
	}
	sign, days, hours, minutes, seconds, ms, us, ns := d.Decompose()

	var b strings.Builder
	if sign < 0 {
		b.WriteByte('-')
	}

	type part struct {
		val  uint64
		unit string
	}
	parts := []part{
		{days, "days"}, {hours, "h"}, {minutes, "min"}, {seconds, "s"},
		{ms, "ms"}, {us, "μs"}, {ns, "ns"},
	}
	wrote := false
	for _, p := range parts {
		if p.val == 0 {
			continue
		}
		if wrote {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d %s", p.val, p.unit)
		wrote = true
	}
	return b.String()
}

// ScientificString picks the largest unit (ns, ms, s, min, h, days) whose
// magnitude is at least 1, and renders d as a single float in that unit.
func (d Duration) ScientificString() string {
	s := d.InSeconds()
	abs := s
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs < 1e-3:
		return fmt.Sprintf("%v ns", s*1e9)
	case abs < 1:
		return fmt.Sprintf("%v ms", s*1e3)
	case abs < SecondsPerMinute:
		return fmt.Sprintf("%v s", s)
	case abs < SecondsPerHour:
		return fmt.Sprintf("%v min", s/SecondsPerMinute)
	case abs < SecondsPerDay:
		return fmt.Sprintf("%v h", s/SecondsPerHour)
	default:
		return fmt.Sprintf("%v days", s/SecondsPerDay)
	}
}

// durationUnitAliases maps every case-insensitive unit token accepted by
// ParseDuration to its canonical Unit, per spec.md §4.1.
var durationUnitAliases = map[string]Unit{
	"d": Day, "day": Day, "days": Day,
	"h": Hour, "hour": Hour, "hours": Hour,
	"min": Minute, "mins": Minute, "minute": Minute, "minutes": Minute,
	"s": Second, "second": Second, "seconds": Second,
	"ms": Millisecond, "millisecond": Millisecond, "milliseconds": Millisecond,
	"us": Microsecond, "microsecond": Microsecond, "microseconds": Microsecond,
	"ns": Nanosecond, "nanosecond": Nanosecond, "nanoseconds": Nanosecond,
}

// ParseDuration parses "<decimal> <unit>" (whitespace between the two is
// optional) into a Duration. The unit token is matched case-insensitively
// against the aliases listed in spec.md §4.1.
func ParseDuration(s string) (Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ZeroDuration, newError(ParseUnknownFormat, "empty duration string")
	}

	i := 0
	for i < len(s) && (s[i] == '+' || s[i] == '-' || s[i] == '.' || (s[i] >= '0' && s[i] <= '9')) {
		i++
	}
	if i == 0 {
		return ZeroDuration, newError(ParseUnknownFormat, "could not parse duration: %q", s)
	}
	numPart := s[:i]
	rest := strings.TrimSpace(s[i:])
	if rest == "" {
		return ZeroDuration, newError(ParseUnknownFormat, "missing unit in duration: %q", s)
	}

	value, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return ZeroDuration, newError(ParseValueError, "bad numeric value in duration %q: %v", s, err)
	}

	unit, ok := durationUnitAliases[strings.ToLower(rest)]
	if !ok {
		return ZeroDuration, newError(ParseValueError, "unknown duration unit in %q", s)
	}
	return unit.MulFloat(value), nil
}
