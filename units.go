package hifitime

// Unit is a named time quantum with an exact nanosecond count. Multiplying a
// Unit by a scalar produces a Duration.
type Unit int

const (
	Nanosecond Unit = iota
	Microsecond
	Millisecond
	Second
	Minute
	Hour
	Day
	Century
)

// nanosPerUnit gives the exact nanosecond count of one of the given unit,
// mirroring the constant table hifitime's Unit multiplication macro expands
// against.
var nanosPerUnit = [...]int64{
	Nanosecond:  1,
	Microsecond: 1_000,
	Millisecond: 1_000_000,
	Second:      1_000_000_000,
	Minute:      60 * 1_000_000_000,
	Hour:        3600 * 1_000_000_000,
	Day:         SecondsPerDay * 1_000_000_000,
	Century:     DaysPerCentury * SecondsPerDay * 1_000_000_000,
}

func (u Unit) String() string {
	switch u {
	case Nanosecond:
		return "ns"
	case Microsecond:
		return "us"
	case Millisecond:
		return "ms"
	case Second:
		return "s"
	case Minute:
		return "min"
	case Hour:
		return "h"
	case Day:
		return "day"
	case Century:
		return "century"
	default:
		return "unknown"
	}
}

// Mul returns the Duration equal to q units of u. Integer scalars always
// take the exact big.Int (i128-equivalent) path; there is no int64 fast path.
func (u Unit) Mul(q int64) Duration {
	total := bigMulI64(nanosPerUnit[u], q)
	return durationFromBig(total)
}

// MulFloat returns the Duration equal to q units of u, preserving precision
// for finite decimal scalars (see mulFloatByNanos).
func (u Unit) MulFloat(q float64) Duration {
	return mulFloatByNanos(q, nanosPerUnit[u])
}

// Freq is a named frequency quantum. Dividing a scalar by a Freq produces the
// corresponding period as a Duration, rounded to the nearest nanosecond.
type Freq int

const (
	Hz Freq = iota
	KHz
	MHz
	GHz
)

// periodNanosPerUnitFreq gives the number of nanoseconds in one period of 1
// unit of frequency, i.e. periodNanosPerUnitFreq[Hz] = 1e9 ns (the period of 1 Hz).
var periodNanosPerUnitFreq = [...]float64{
	Hz:  1e9,
	KHz: 1e6,
	MHz: 1e3,
	GHz: 1,
}

func (f Freq) String() string {
	switch f {
	case Hz:
		return "Hz"
	case KHz:
		return "kHz"
	case MHz:
		return "MHz"
	case GHz:
		return "GHz"
	default:
		return "unknown"
	}
}

// Period returns the Duration period of q cycles per second of frequency f,
// i.e. Period(q) = 1/(q*f) expressed as a Duration rounded to the nearest ns.
func (f Freq) Period(q float64) Duration {
	if q == 0 {
		return MaxDuration
	}
	totalNs := periodNanosPerUnitFreq[f] / q
	if totalNs < 0 {
		totalNs = -totalNs
	}
	rounded := int64(totalNs + 0.5)
	d := Nanosecond.Mul(rounded)
	if (periodNanosPerUnitFreq[f] / q) < 0 {
		d = d.Neg()
	}
	return d
}
