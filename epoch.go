package hifitime

// Epoch is an instant in time, stored internally as a Duration of TAI
// elapsed since the J1900 reference epoch (1900-01-01 00:00:00 TAI). Every
// other timescale this package understands is a view computed from that one
// canonical Duration.
type Epoch struct {
	tai Duration
}

// J1900 is the zero Epoch: 1900-01-01 00:00:00 TAI.
var J1900 = Epoch{tai: ZeroDuration}

// J2000 is noon on 2000-01-01 TAI, the reference epoch most astrodynamics
// literature anchors ET/TDB against.
var J2000 = Epoch{tai: Second.Mul(J2000ToJ1900Seconds)}

// FromTAIDuration builds an Epoch from a TAI Duration since J1900.
func FromTAIDuration(d Duration) Epoch {
	return Epoch{tai: d}
}

// FromTAISeconds builds an Epoch from a count of TAI seconds since J1900.
func FromTAISeconds(s float64) Epoch {
	return Epoch{tai: Second.MulFloat(s)}
}

// ToTAIDuration returns the TAI Duration since J1900.
func (e Epoch) ToTAIDuration() Duration {
	return e.tai
}

// ToTAISeconds returns the number of TAI seconds since J1900.
func (e Epoch) ToTAISeconds() float64 {
	return e.tai.InSeconds()
}

// Add returns e advanced by d (d may be negative).
func (e Epoch) Add(d Duration) Epoch {
	return Epoch{tai: e.tai.Add(d)}
}

// Sub returns the Duration elapsed from other to e (e - other); positive
// when e is later than other.
func (e Epoch) Sub(other Epoch) Duration {
	return e.tai.Sub(other.tai)
}

// SubDuration returns e set back by d; equivalent to Add(d.Neg()).
func (e Epoch) SubDuration(d Duration) Epoch {
	return Epoch{tai: e.tai.Sub(d)}
}

// Equal reports whether e and other name the same TAI instant.
func (e Epoch) Equal(other Epoch) bool {
	return e.tai.Equal(other.tai)
}

// Before reports whether e occurs strictly before other.
func (e Epoch) Before(other Epoch) bool {
	return e.tai.Less(other.tai)
}

// After reports whether e occurs strictly after other.
func (e Epoch) After(other Epoch) bool {
	return e.tai.Greater(other.tai)
}

// Compare returns -1, 0 or 1 as e is before, equal to, or after other.
func (e Epoch) Compare(other Epoch) int {
	return e.tai.Compare(other.tai)
}

// Floor rounds e down to the nearest multiple of step, measured from J1900
// in the TAI scale.
func (e Epoch) Floor(step Duration) Epoch {
	return Epoch{tai: e.tai.Floor(step)}
}

// Ceil rounds e up to the nearest multiple of step, measured from J1900 in
// the TAI scale.
func (e Epoch) Ceil(step Duration) Epoch {
	return Epoch{tai: e.tai.Ceil(step)}
}

// Round rounds e to the nearest multiple of step, ties away from J1900.
func (e Epoch) Round(step Duration) Epoch {
	return Epoch{tai: e.tai.Round(step)}
}
