package hifitime

import (
	"math"
	"math/big"
)

// Duration is a signed time span stored as a 16-bit signed century count and
// a 64-bit unsigned nanosecond-into-century count, giving nanosecond
// resolution across +/- 32,768 centuries on 80 bits total.
//
// Convention: nanoseconds measures elapsed time *into* the current century in
// the direction of increasing time. A Duration with centuries=-1,
// nanoseconds=0 therefore represents "one century before the origin", the
// most negative value reachable with centuries=-1 — not "one nanosecond
// before the origin". See Sub and the Equal method for the zero-crossing
// corrections this convention requires.
type Duration struct {
	centuries   int16
	nanoseconds uint64
}

// ZeroDuration is the Duration of exactly zero elapsed time.
var ZeroDuration = Duration{centuries: 0, nanoseconds: 0}

// EpsilonDuration is the smallest representable positive Duration: 1 ns.
var EpsilonDuration = Duration{centuries: 0, nanoseconds: 1}

// MinPositiveDuration equals EpsilonDuration.
var MinPositiveDuration = EpsilonDuration

// MinNegativeDuration is the largest Duration strictly less than zero: -1 ns.
var MinNegativeDuration = Duration{centuries: -1, nanoseconds: uint64(NanosPerCentury) - 1}

// MaxDuration is the largest representable Duration. Deliberately left
// unnormalized (nanoseconds equals the modulus, one tick past the
// normalized range) so it sits strictly above every normalized value and
// works as a saturation ceiling.
var MaxDuration = Duration{centuries: math.MaxInt16, nanoseconds: uint64(NanosPerCentury)}

// MinDuration is the smallest (most negative) representable Duration.
// Deliberately left unnormalized (nanoseconds equals the modulus, mirroring
// MaxDuration) so the asymmetry between MIN and MAX lives only in the
// centuries field.
var MinDuration = Duration{centuries: math.MinInt16, nanoseconds: uint64(NanosPerCentury)}

// FromParts normalizes (centuries, nanoseconds) into a Duration.
func FromParts(centuries int16, nanoseconds uint64) Duration {
	d := Duration{centuries: centuries, nanoseconds: nanoseconds}
	d.normalize()
	return d
}

// normalize folds any nanoseconds >= NanosPerCentury into centuries, and
// saturates to MIN/MAX if the carry would overflow the int16 century range.
func (d *Duration) normalize() {
	modulus := uint64(NanosPerCentury)
	extraCenturies := d.nanoseconds / modulus
	if extraCenturies == 0 {
		return
	}
	remNanos := d.nanoseconds % modulus

	if d.centuries == math.MaxInt16 && remNanos > 0 {
		// Already at the MAX sentinel and still overflowing: stay saturated.
		*d = MaxDuration
		return
	}

	sum := int64(d.centuries) + int64(extraCenturies)
	switch {
	case sum > math.MaxInt16:
		*d = MaxDuration
	case sum < math.MinInt16:
		*d = MinDuration
	default:
		d.centuries = int16(sum)
		d.nanoseconds = remNanos
	}
}

// bigNanosPerCentury is NanosPerCentury widened to *big.Int for i128-range
// arithmetic (Go has no native 128-bit integer type; math/big is the
// standard-library way to represent magnitudes beyond int64, the same
// approach used elsewhere in the example pack for wide time values).
var bigNanosPerCentury = big.NewInt(NanosPerCentury)

// FromTotalNanoseconds floor-divides a wide (possibly > int64) nanosecond
// count into centuries and a non-negative remainder, saturating to MIN/MAX
// if the century count doesn't fit in int16.
func FromTotalNanoseconds(nanos *big.Int) Duration {
	if nanos.Sign() == 0 {
		return ZeroDuration
	}
	centuries := new(big.Int)
	remainder := new(big.Int)
	centuries.DivMod(nanos, bigNanosPerCentury, remainder) // Euclidean: remainder >= 0

	maxC := big.NewInt(math.MaxInt16)
	minC := big.NewInt(math.MinInt16)
	if centuries.Cmp(maxC) > 0 {
		return MaxDuration
	}
	if centuries.Cmp(minC) < 0 {
		return MinDuration
	}
	return FromParts(int16(centuries.Int64()), remainder.Uint64())
}

// durationFromBig is an internal alias kept for callers that already hold a
// *big.Int (e.g. Unit.Mul).
func durationFromBig(nanos *big.Int) Duration {
	return FromTotalNanoseconds(nanos)
}

// TotalNanoseconds returns the signed total nanosecond count as a *big.Int,
// since the full range exceeds int64. Holds uniformly for every century,
// positive or negative: total = centuries*modulus + nanoseconds, since
// nanoseconds always measures elapsed time into the century in the
// direction of increasing time.
func (d Duration) TotalNanoseconds() *big.Int {
	v := new(big.Int).Mul(big.NewInt(int64(d.centuries)), bigNanosPerCentury)
	return v.Add(v, new(big.Int).SetUint64(d.nanoseconds))
}

// TryTruncatedNanoseconds returns the total nanoseconds as an int64, or
// ErrOverflow if the magnitude of centuries is too large (>= 3) for the
// value to fit.
func (d Duration) TryTruncatedNanoseconds() (int64, error) {
	if d.centuries >= 3 || d.centuries <= -3 {
		return 0, newError(Overflow, "duration with %d centuries does not fit in int64 nanoseconds", d.centuries)
	}
	return int64(d.centuries)*NanosPerCentury + int64(d.nanoseconds), nil
}

// TruncatedNanoseconds is TryTruncatedNanoseconds but saturates to
// math.MinInt64/MaxInt64 on overflow instead of failing.
func (d Duration) TruncatedNanoseconds() int64 {
	ns, err := d.TryTruncatedNanoseconds()
	if err == nil {
		return ns
	}
	if d.centuries < 0 {
		return math.MinInt64
	}
	return math.MaxInt64
}

// FromTruncatedNanoseconds builds a Duration from a signed int64 nanosecond
// count, handling the negative case by representing it as
// (centuries = -1-extra, nanoseconds = NanosPerCentury - rem).
func FromTruncatedNanoseconds(nanos int64) Duration {
	if nanos < 0 {
		ns := uint64(-nanos)
		extraCenturies := ns / uint64(NanosPerCentury)
		if extraCenturies > math.MaxInt16 {
			return MinDuration
		}
		remNanos := ns % uint64(NanosPerCentury)
		return FromParts(-1-int16(extraCenturies), uint64(NanosPerCentury)-remNanos)
	}
	return FromParts(0, uint64(nanos))
}

// InSeconds returns this Duration in seconds as a float64, splitting whole
// seconds from sub-second nanoseconds before combining with
// centuries*SecondsPerCentury to minimize floating-point loss for small
// durations.
func (d Duration) InSeconds() float64 {
	seconds := d.nanoseconds / 1_000_000_000
	subseconds := d.nanoseconds % 1_000_000_000
	if d.centuries == 0 {
		return float64(seconds) + float64(subseconds)*1e-9
	}
	return float64(d.centuries)*float64(SecondsPerCentury) + float64(seconds) + float64(subseconds)*1e-9
}

// InUnit returns this Duration's magnitude expressed in the given unit.
func (d Duration) InUnit(u Unit) float64 {
	return d.InSeconds() * (1e9 / float64(nanosPerUnit[u]))
}

// Abs returns the absolute value of d.
func (d Duration) Abs() Duration {
	if d.centuries < 0 {
		return d.Neg()
	}
	return d
}

// Signum returns -1 when d's century field is negative, 1 when d is positive,
// and 0 when d is zero.
func (d Duration) Signum() int {
	switch {
	case d.centuries < 0:
		return -1
	case d.centuries > 0:
		return 1
	default:
		if d.nanoseconds > 0 {
			return 1
		}
		return 0
	}
}

func divRemI64(v, div int64) (int64, int64) {
	return v / div, v % div
}

func divRemBig(v, div *big.Int) (*big.Int, *big.Int) {
	q := new(big.Int)
	r := new(big.Int)
	q.QuoRem(v, div, r)
	return q, r
}

// Decompose splits |d| into (sign, days, hours, minutes, seconds,
// milliseconds, microseconds, nanoseconds), all non-negative except sign.
func (d Duration) Decompose() (sign int, days, hours, minutes, seconds, millis, micros, nanos uint64) {
	sign = d.Signum()

	if ns, err := d.TryTruncatedNanoseconds(); err == nil {
		left := ns
		if left < 0 {
			left = -left
		}
		var dd, hh, mm, ss, ms, us, n int64
		dd, left = divRemI64(left, int64(nanosPerUnit[Day]))
		hh, left = divRemI64(left, int64(nanosPerUnit[Hour]))
		mm, left = divRemI64(left, int64(nanosPerUnit[Minute]))
		ss, left = divRemI64(left, int64(nanosPerUnit[Second]))
		ms, left = divRemI64(left, int64(nanosPerUnit[Millisecond]))
		us, n = divRemI64(left, int64(nanosPerUnit[Microsecond]))
		return sign, uint64(dd), uint64(hh), uint64(mm), uint64(ss), uint64(ms), uint64(us), uint64(n)
	}

	total := d.TotalNanoseconds()
	left := new(big.Int).Abs(total)
	dayNs := big.NewInt(nanosPerUnit[Day])
	hourNs := big.NewInt(nanosPerUnit[Hour])
	minNs := big.NewInt(nanosPerUnit[Minute])
	secNs := big.NewInt(nanosPerUnit[Second])
	msNs := big.NewInt(nanosPerUnit[Millisecond])
	usNs := big.NewInt(nanosPerUnit[Microsecond])

	var dd, hh, mm, ss, ms, us *big.Int
	dd, left = divRemBig(left, dayNs)
	hh, left = divRemBig(left, hourNs)
	mm, left = divRemBig(left, minNs)
	ss, left = divRemBig(left, secNs)
	ms, left = divRemBig(left, msNs)
	us, left = divRemBig(left, usNs)
	return sign, dd.Uint64(), hh.Uint64(), mm.Uint64(), ss.Uint64(), ms.Uint64(), us.Uint64(), left.Uint64()
}

// Equal implements the zero-crossing-aware equality required by spec.md §3:
// (centuries=-1, nanoseconds=NanosPerCentury) equals (centuries=0, nanoseconds=0).
func (d Duration) Equal(o Duration) bool {
	if d.centuries == o.centuries {
		return d.nanoseconds == o.nanoseconds
	}
	diff := int32(d.centuries) - int32(o.centuries)
	if diff < 0 {
		diff = -diff
	}
	if diff == 1 && (d.centuries == 0 || o.centuries == 0) {
		modulus := uint64(NanosPerCentury)
		if d.centuries < o.centuries {
			return d.nanoseconds == modulus+o.nanoseconds
		}
		return o.nanoseconds == modulus+d.nanoseconds
	}
	return false
}

// Compare returns -1, 0, or 1 as d is less than, equal to, or greater than o,
// in agreement with the total order over total nanoseconds (spec.md §8.7).
func (d Duration) Compare(o Duration) int {
	if d.Equal(o) {
		return 0
	}
	if d.centuries != o.centuries {
		if d.centuries < o.centuries {
			return -1
		}
		return 1
	}
	if d.nanoseconds < o.nanoseconds {
		return -1
	}
	return 1
}

func (d Duration) Less(o Duration) bool    { return d.Compare(o) < 0 }
func (d Duration) Greater(o Duration) bool { return d.Compare(o) > 0 }
func (d Duration) LessEq(o Duration) bool  { return d.Compare(o) <= 0 }
func (d Duration) GreaterEq(o Duration) bool {
	return d.Compare(o) >= 0
}

// Add returns d+o, saturating centuries at MAX/MIN on overflow.
func (d Duration) Add(o Duration) Duration {
	sum := int32(d.centuries) + int32(o.centuries)
	if sum > math.MaxInt16 {
		return MaxDuration
	}
	if sum < math.MinInt16 {
		return MinDuration
	}
	return FromParts(int16(sum), d.nanoseconds+o.nanoseconds)
}

// Sub returns d-o, saturating centuries at MAX/MIN on overflow. The +1ns
// correction applies only when the subtraction of nanosecond fields does not
// need to borrow a century and self is non-negative while o is negative —
// see DESIGN.md's resolution of spec.md §9's Open Question.
func (d Duration) Sub(o Duration) Duration {
	diff := int32(d.centuries) - int32(o.centuries)

	var nanos uint64
	if d.nanoseconds >= o.nanoseconds {
		nanos = d.nanoseconds - o.nanoseconds
		if d.centuries >= 0 && o.centuries < 0 {
			nanos++
		}
	} else {
		diff--
		nanos = d.nanoseconds + uint64(NanosPerCentury) - o.nanoseconds
	}

	// The borrow above can push diff one past int16's range even when the
	// unborrowed century difference fit, so bounds are checked after it.
	if diff > math.MaxInt16 {
		return MaxDuration
	}
	if diff < math.MinInt16 {
		return MinDuration
	}
	// Every value in the MinInt16 century short of the modulus lies below
	// MinDuration, so it saturates as well.
	if diff == math.MinInt16 && nanos < uint64(NanosPerCentury) {
		return MinDuration
	}
	return FromParts(int16(diff), nanos)
}

// Neg returns -d.
func (d Duration) Neg() Duration {
	return FromParts(-d.centuries-1, uint64(NanosPerCentury)-d.nanoseconds)
}

func bigMulI64(a, b int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(a), big.NewInt(b))
}

// Mul returns d scaled by the integer q, saturating on overflow.
func (d Duration) Mul(q int64) Duration {
	total := new(big.Int).Mul(d.TotalNanoseconds(), big.NewInt(q))
	return FromTotalNanoseconds(total)
}

// mulFloatByNanos multiplies a nanosecond count by a float scalar, rescaling
// by powers of ten until the fractional part vanishes (or a sane cap is hit)
// to preserve exactness for finite decimals, per spec.md §4.1.
func mulFloatByNanos(q float64, perUnitNanos int64) Duration {
	return FromTotalNanoseconds(scaleFloat(q, perUnitNanos))
}

func scaleFloat(q float64, perUnitNanos int64) *big.Int {
	p := 0
	newVal := q
	for p < 18 {
		if math.Abs(newVal-math.Floor(newVal)) < 2.220446049250313e-16 {
			break
		}
		p++
		newVal = q * math.Pow(10, float64(p))
	}
	num := new(big.Int).Mul(big.NewInt(perUnitNanos), bigFromFloat(newVal))
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(p)), nil)
	return new(big.Int).Quo(num, den)
}

func bigFromFloat(v float64) *big.Int {
	bf := new(big.Float).SetFloat64(v)
	bi, _ := bf.Int(nil)
	return bi
}

// MulFloat scales d by the float64 scalar q.
func (d Duration) MulFloat(q float64) Duration {
	total := d.TotalNanoseconds()
	p := 0
	newVal := q
	for p < 18 {
		if math.Abs(newVal-math.Floor(newVal)) < 2.220446049250313e-16 {
			break
		}
		p++
		newVal = q * math.Pow(10, float64(p))
	}
	num := new(big.Int).Mul(total, bigFromFloat(newVal))
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(p)), nil)
	return FromTotalNanoseconds(new(big.Int).Quo(num, den))
}

// Div returns d/q, saturating on overflow. Dividing a Duration by a Duration
// is intentionally not provided (spec.md §4.1); compare TotalNanoseconds
// instead.
func (d Duration) Div(q int64) Duration {
	if q == 0 {
		if d.centuries < 0 {
			return MinDuration
		}
		return MaxDuration
	}
	total := new(big.Int).Quo(d.TotalNanoseconds(), big.NewInt(q))
	return FromTotalNanoseconds(total)
}

// Floor rounds d toward MinDuration to the nearest multiple of step.
func (d Duration) Floor(step Duration) Duration {
	if step.Equal(ZeroDuration) {
		return d
	}
	stepNs := step.TotalNanoseconds()
	total := d.TotalNanoseconds()
	q, r := divRemBig(total, stepNs)
	if r.Sign() != 0 && total.Sign() < 0 {
		q.Sub(q, big.NewInt(1))
	}
	return FromTotalNanoseconds(new(big.Int).Mul(q, stepNs))
}

// Ceil rounds d toward MaxDuration to the nearest multiple of step.
func (d Duration) Ceil(step Duration) Duration {
	if step.Equal(ZeroDuration) {
		return d
	}
	stepNs := step.TotalNanoseconds()
	total := d.TotalNanoseconds()
	q, r := divRemBig(total, stepNs)
	if r.Sign() != 0 && total.Sign() > 0 {
		q.Add(q, big.NewInt(1))
	}
	return FromTotalNanoseconds(new(big.Int).Mul(q, stepNs))
}

// Round rounds d to the nearest multiple of step, ties breaking away from
// zero.
func (d Duration) Round(step Duration) Duration {
	if step.Equal(ZeroDuration) {
		return d
	}
	stepNs := new(big.Int).Abs(step.TotalNanoseconds())
	total := d.TotalNanoseconds()

	q := new(big.Int)
	r := new(big.Int)
	q.QuoRem(total, stepNs, r) // truncated division: r carries total's sign

	absR := new(big.Int).Abs(r)
	if new(big.Int).Lsh(absR, 1).Cmp(stepNs) >= 0 {
		if total.Sign() < 0 {
			q.Sub(q, big.NewInt(1))
		} else {
			q.Add(q, big.NewInt(1))
		}
	}
	return FromTotalNanoseconds(new(big.Int).Mul(q, stepNs))
}
