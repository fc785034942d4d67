package hifitime

import "time"

// Now returns the current instant as read from the host wall clock,
// interpreted as UTC. The host clock is assumed to already apply leap
// seconds the way POSIX time does (i.e. it smears or repeats around leap
// second insertion); this is the same assumption time.Now() itself makes.
func Now() Epoch {
	return FromTime(time.Now())
}

// FromTime converts a stdlib time.Time into an Epoch, treating it as UTC.
func FromTime(t time.Time) Epoch {
	t = t.UTC()
	return mustFromGregorianUTC(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond())
}

// AsTime converts e to a stdlib time.Time in UTC. Precision beyond
// time.Time's nanosecond resolution is truncated.
func (e Epoch) AsTime() time.Time {
	year, month, day, hour, minute, second, nanos := e.ToGregorianUTC()
	return time.Date(year, time.Month(month), day, hour, minute, second, nanos, time.UTC)
}

// mustFromGregorianUTC is used internally where the tuple is known-valid
// because it was just decomposed from a stdlib time.Time.
func mustFromGregorianUTC(year, month, day, hour, minute, second, nanos int) Epoch {
	e, err := FromGregorianUTC(year, month, day, hour, minute, second, nanos)
	if err != nil {
		panic(err)
	}
	return e
}
