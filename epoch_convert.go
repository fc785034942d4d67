package hifitime

import "math"

// unixToJ1900Seconds is the number of seconds between the J1900 epoch
// (1900-01-01 00:00:00) and the Unix epoch (1970-01-01 00:00:00): the same
// constant NTP uses for its own epoch offset, since NTP shares hifitime's
// J1900 reference.
const unixToJ1900Seconds = 2_208_988_800

// ---- UTC ----------------------------------------------------------------

// ToUTCDuration returns the elapsed Duration since J1900 in the UTC scale,
// i.e. with the leap seconds accumulated by this instant subtracted out of
// the TAI duration.
func (e Epoch) ToUTCDuration() Duration {
	unixTAI := int64(e.tai.InSeconds()) - unixToJ1900Seconds
	skew := skewForTAIUnix(unixTAI, false)
	return e.tai.Sub(Second.MulFloat(skew))
}

// FromUTCDuration builds an Epoch from a Duration since J1900 expressed in
// the UTC scale.
func FromUTCDuration(d Duration) Epoch {
	unixUTC := int64(d.InSeconds()) - unixToJ1900Seconds
	skew := cumulativeSkewAtUnix(unixUTC, false)
	return Epoch{tai: d.Add(Second.MulFloat(skew))}
}

// LeapSeconds returns the cumulative TAI-UTC skew, in seconds, that applies
// at this Epoch. When iersOnly is true, only officially announced IERS leap
// seconds count toward the skew; the 14 unannounced pre-1972 SOFA drift
// corrections are excluded, matching the iers_only query mode.
func (e Epoch) LeapSeconds(iersOnly bool) float64 {
	unixTAI := int64(e.tai.InSeconds()) - unixToJ1900Seconds
	return skewForTAIUnix(unixTAI, iersOnly)
}

// ---- TT -------------------------------------------------------------------

// ToTTDuration returns the elapsed Duration since J1900 in the TT
// (Terrestrial Time) scale: TT = TAI + 32.184s exactly, with no leap
// seconds ever applied.
func (e Epoch) ToTTDuration() Duration {
	return e.tai.Add(Millisecond.Mul(TTOffsetMillis))
}

// FromTTDuration builds an Epoch from a Duration since J1900 in the TT
// scale.
func FromTTDuration(d Duration) Epoch {
	return Epoch{tai: d.Sub(Millisecond.Mul(TTOffsetMillis))}
}

// ---- ET / TDB ---------------------------------------------------------

// ttToET applies the NAIF approximation for the periodic TT-ET relativistic
// correction, given the number of TT seconds elapsed since J2000.
func ttToET(ttSecondsPastJ2000 float64) float64 {
	g := NAIFM0 + NAIFM1*ttSecondsPastJ2000
	return ttSecondsPastJ2000 + NAIFK*math.Sin(g+NAIFEB*math.Sin(g))
}

// etToTT inverts ttToET via fixed-point iteration: the correction term is at
// most ~1.7ms in magnitude, so iteration stops as soon as successive updates
// change by less than 1 ns, within a hard cap of five iterations.
func etToTT(etSecondsPastJ2000 float64) float64 {
	tt := etSecondsPastJ2000
	for i := 0; i < 5; i++ {
		next := etSecondsPastJ2000 - (ttToET(tt) - tt)
		if math.Abs(next-tt) < 1e-9 {
			tt = next
			break
		}
		tt = next
	}
	return tt
}

// ToETDuration returns the elapsed Duration since J1900 in the ET
// (ephemeris time) scale.
func (e Epoch) ToETDuration() Duration {
	ttSecPastJ2000 := e.ToTTDuration().Sub(J2000.tai).InSeconds()
	etSecPastJ2000 := ttToET(ttSecPastJ2000)
	return J2000.tai.Add(Second.MulFloat(etSecPastJ2000))
}

// FromETDuration builds an Epoch from a Duration since J1900 in the ET
// scale.
func FromETDuration(d Duration) Epoch {
	etSecPastJ2000 := d.Sub(J2000.tai).InSeconds()
	ttSecPastJ2000 := etToTT(etSecPastJ2000)
	tt := J2000.tai.Add(Second.MulFloat(ttSecPastJ2000))
	return FromTTDuration(tt)
}

// ttToTDB applies the ESA approximation for the TT-TDB periodic correction.
func ttToTDB(ttSecondsPastJ2000 float64) float64 {
	g := degToRad*esaG0 + esaG1*ttSecondsPastJ2000
	return ttSecondsPastJ2000 + esaAmp*math.Sin(g+esaPhase*math.Sin(g))
}

// tdbToTT inverts ttToTDB the same way etToTT inverts ttToET: iterate until
// successive updates change by less than 1 ns, capped at five iterations.
func tdbToTT(tdbSecondsPastJ2000 float64) float64 {
	tt := tdbSecondsPastJ2000
	for i := 0; i < 5; i++ {
		next := tdbSecondsPastJ2000 - (ttToTDB(tt) - tt)
		if math.Abs(next-tt) < 1e-9 {
			tt = next
			break
		}
		tt = next
	}
	return tt
}

// ToTDBDuration returns the elapsed Duration since J1900 in the TDB
// (Barycentric Dynamical Time) scale.
func (e Epoch) ToTDBDuration() Duration {
	ttSecPastJ2000 := e.ToTTDuration().Sub(J2000.tai).InSeconds()
	tdbSecPastJ2000 := ttToTDB(ttSecPastJ2000)
	return J2000.tai.Add(Second.MulFloat(tdbSecPastJ2000))
}

// FromTDBDuration builds an Epoch from a Duration since J1900 in the TDB
// scale.
func FromTDBDuration(d Duration) Epoch {
	tdbSecPastJ2000 := d.Sub(J2000.tai).InSeconds()
	ttSecPastJ2000 := tdbToTT(tdbSecPastJ2000)
	tt := J2000.tai.Add(Second.MulFloat(ttSecPastJ2000))
	return FromTTDuration(tt)
}

// ---- GNSS system times --------------------------------------------------

// ToGPSTDuration returns the elapsed Duration since J1900 in the GPS system
// time scale: a fixed 19s offset from TAI, with no leap seconds applied
// after the GPS epoch.
func (e Epoch) ToGPSTDuration() Duration { return e.tai.Sub(Second.Mul(GPSTAIOffsetSeconds)) }

// FromGPSTDuration builds an Epoch from a Duration since J1900 in GPST.
func FromGPSTDuration(d Duration) Epoch { return Epoch{tai: d.Add(Second.Mul(GPSTAIOffsetSeconds))} }

// ToGSTDuration returns the elapsed Duration since J1900 in the Galileo
// system time scale: fixed 19s offset from TAI.
func (e Epoch) ToGSTDuration() Duration { return e.tai.Sub(Second.Mul(GSTTAIOffsetSeconds)) }

// FromGSTDuration builds an Epoch from a Duration since J1900 in GST.
func FromGSTDuration(d Duration) Epoch { return Epoch{tai: d.Add(Second.Mul(GSTTAIOffsetSeconds))} }

// ToBDTDuration returns the elapsed Duration since J1900 in the BeiDou
// system time scale: fixed 33s offset from TAI.
func (e Epoch) ToBDTDuration() Duration { return e.tai.Sub(Second.Mul(BDTTAIOffsetSeconds)) }

// FromBDTDuration builds an Epoch from a Duration since J1900 in BDT.
func FromBDTDuration(d Duration) Epoch { return Epoch{tai: d.Add(Second.Mul(BDTTAIOffsetSeconds))} }

// ---- Unix -----------------------------------------------------------------

// ToUnixSeconds returns the number of UTC seconds elapsed since the Unix
// epoch (1970-01-01 00:00:00 UTC).
func (e Epoch) ToUnixSeconds() float64 {
	return e.ToUTCDuration().InSeconds() - unixToJ1900Seconds
}

// ToUnixMilliseconds returns the number of UTC milliseconds elapsed since
// the Unix epoch.
func (e Epoch) ToUnixMilliseconds() float64 {
	return e.ToUnixSeconds() * 1000
}

// FromUnixSeconds builds an Epoch from a count of UTC seconds since the
// Unix epoch.
func FromUnixSeconds(s float64) Epoch {
	return FromUTCDuration(Second.MulFloat(s + unixToJ1900Seconds))
}

// FromUnixMilliseconds builds an Epoch from a count of UTC milliseconds
// since the Unix epoch.
func FromUnixMilliseconds(ms float64) Epoch {
	return FromUnixSeconds(ms / 1000)
}

// ---- Julian / Modified Julian Day -----------------------------------------

// j1900MJDDays is the Modified Julian Day number of 1900-01-01 00:00:00.
const j1900MJDDays = J1900Offset

// ToMJDTAIDays returns the Modified Julian Day, TAI scale.
func (e Epoch) ToMJDTAIDays() float64 {
	return float64(j1900MJDDays) + e.tai.InSeconds()/SecondsPerDay
}

// ToJDETAIDays returns the Julian Day, TAI scale.
func (e Epoch) ToJDETAIDays() float64 { return MJDOffset + e.ToMJDTAIDays() }

// ToMJDUTCDays returns the Modified Julian Day, UTC scale.
func (e Epoch) ToMJDUTCDays() float64 {
	return float64(j1900MJDDays) + e.ToUTCDuration().InSeconds()/SecondsPerDay
}

// ToJDEUTCDays returns the Julian Day, UTC scale.
func (e Epoch) ToJDEUTCDays() float64 { return MJDOffset + e.ToMJDUTCDays() }

// ToMJDETDays returns the Modified Julian Day, ET scale.
func (e Epoch) ToMJDETDays() float64 {
	return float64(j1900MJDDays) + e.ToETDuration().InSeconds()/SecondsPerDay
}

// ToJDEETDays returns the Julian Day, ET scale (the scale used by most JPL
// ephemerides).
func (e Epoch) ToJDEETDays() float64 { return MJDOffset + e.ToMJDETDays() }

// FromMJDTAIDays builds an Epoch from a Modified Julian Day, TAI scale.
func FromMJDTAIDays(days float64) Epoch {
	secs := (days - float64(j1900MJDDays)) * SecondsPerDay
	return Epoch{tai: Second.MulFloat(secs)}
}

// FromJDETAIDays builds an Epoch from a Julian Day, TAI scale.
func FromJDETAIDays(days float64) Epoch { return FromMJDTAIDays(days - MJDOffset) }

// FromMJDUTCDays builds an Epoch from a Modified Julian Day, UTC scale.
func FromMJDUTCDays(days float64) Epoch {
	secs := (days - float64(j1900MJDDays)) * SecondsPerDay
	return FromUTCDuration(Second.MulFloat(secs))
}

// FromJDEUTCDays builds an Epoch from a Julian Day, UTC scale.
func FromJDEUTCDays(days float64) Epoch { return FromMJDUTCDays(days - MJDOffset) }

// ---- Gregorian calendar ----------------------------------------------------

var j1900JDN = gregorianToJDN(1900, 1, 1)

// secondsSinceJ1900FromGregorian converts a civil date/time tuple to the
// number of seconds elapsed since 1900-01-01 00:00:00 in whatever scale the
// tuple is meant to represent (TAI or UTC; the caller decides).
func secondsSinceJ1900FromGregorian(year, month, day, hour, minute, second, nanos int) (float64, error) {
	if !isGregorianValid(year, month, day, hour, minute, second, nanos) {
		return 0, newError(Carry, "invalid Gregorian date %04d-%02d-%02dT%02d:%02d:%02d.%09d",
			year, month, day, hour, minute, second, nanos)
	}
	// second == 60 names a leap second instant; it elapses the same number
	// of seconds into the day as second 59 so that both representations of
	// the leap second resolve to the same instant downstream.
	if second == 60 {
		second = 59
	}
	days := gregorianToJDN(year, month, day) - j1900JDN
	secOfDay := float64(hour)*SecondsPerHour + float64(minute)*SecondsPerMinute + float64(second) + float64(nanos)*1e-9
	return float64(days)*SecondsPerDay + secOfDay, nil
}

// gregorianFromSecondsSinceJ1900 is the inverse of
// secondsSinceJ1900FromGregorian.
func gregorianFromSecondsSinceJ1900(totalSeconds float64) (year, month, day, hour, minute, second, nanos int) {
	days := math.Floor(totalSeconds / SecondsPerDay)
	secOfDay := totalSeconds - days*SecondsPerDay
	if secOfDay < 0 {
		secOfDay += SecondsPerDay
		days--
	}
	year, month, day = jdnToGregorian(j1900JDN + int64(days))

	hour = int(secOfDay) / 3600
	minute = (int(secOfDay) % 3600) / 60
	second = int(secOfDay) % 60
	frac := secOfDay - math.Floor(secOfDay)
	nanos = int(math.Round(frac * 1e9))
	if nanos >= 1_000_000_000 {
		nanos -= 1_000_000_000
		second++
	}
	return year, month, day, hour, minute, second, nanos
}

// FromGregorianTAI builds an Epoch from a civil date/time tuple interpreted
// as TAI.
func FromGregorianTAI(year, month, day, hour, minute, second, nanos int) (Epoch, error) {
	secs, err := secondsSinceJ1900FromGregorian(year, month, day, hour, minute, second, nanos)
	if err != nil {
		return Epoch{}, err
	}
	return Epoch{tai: Second.MulFloat(secs)}, nil
}

// FromGregorianUTC builds an Epoch from a civil date/time tuple interpreted
// as UTC, applying the leap second table. second may be 60 to name a leap
// second instant.
func FromGregorianUTC(year, month, day, hour, minute, second, nanos int) (Epoch, error) {
	secs, err := secondsSinceJ1900FromGregorian(year, month, day, hour, minute, second, nanos)
	if err != nil {
		return Epoch{}, err
	}
	return FromUTCDuration(Second.MulFloat(secs)), nil
}

// ToGregorianTAI decomposes e into a civil date/time tuple in the TAI scale.
func (e Epoch) ToGregorianTAI() (year, month, day, hour, minute, second, nanos int) {
	return gregorianFromSecondsSinceJ1900(e.tai.InSeconds())
}

// ToGregorianUTC decomposes e into a civil date/time tuple in the UTC
// scale. An inserted leap second is reported as a repeat of 23:59:59; the
// returned second does not read 60 for it.
func (e Epoch) ToGregorianUTC() (year, month, day, hour, minute, second, nanos int) {
	return gregorianFromSecondsSinceJ1900(e.ToUTCDuration().InSeconds())
}

// Weekday returns the ISO weekday of e in the UTC scale. 1900-01-01 was a
// Monday, which anchors the modulo-7 computation.
func (e Epoch) Weekday() Weekday {
	days := int64(math.Floor(e.ToUTCDuration().InSeconds() / SecondsPerDay))
	w := ((days % 7) + 7) % 7 // Monday == 0 at J1900
	return Weekday(w)
}

// DayOfYear returns the 1-indexed ordinal day of e's UTC-scale calendar
// date within its year.
func (e Epoch) DayOfYear() int {
	year, month, day, _, _, _, _ := e.ToGregorianUTC()
	return dayOfYear(year, month, day)
}
