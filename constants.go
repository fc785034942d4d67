package hifitime

// Exact numeric constants from spec.md §6.
const (
	SecondsPerMinute = 60
	SecondsPerHour   = 3_600
	SecondsPerDay    = 86_400
	DaysPerCentury   = 36_525
	SecondsPerCentury = DaysPerCentury * SecondsPerDay // 3_155_760_000

	// NanosPerCentury is the modulus of the Duration nanoseconds field.
	NanosPerCentury = int64(DaysPerCentury) * SecondsPerDay * 1_000_000_000

	// J1900Offset is the number of days from the MJD epoch (1858-11-17T00:00)
	// to J1900 (1900-01-01T00:00).
	J1900Offset = 15_020
	// MJDOffset is the number of days from the JD epoch to the MJD epoch.
	MJDOffset = 2_400_000.5

	// J2000ToJ1900Seconds is the number of TAI seconds between J1900
	// (1900-01-01T00:00) and J2000 noon (2000-01-01T12:00): 3_155_716_800.
	J2000ToJ1900Seconds = 3_155_716_800

	// TTOffsetMillis is the exact TT-TAI offset: 32.184 s.
	TTOffsetMillis = 32_184
	// GPSTAIOffsetSeconds is TAI - GPST at the GPS epoch.
	GPSTAIOffsetSeconds = 19
	// BDTTAIOffsetSeconds is TAI - BDT at the BeiDou epoch.
	BDTTAIOffsetSeconds = 33
	// GSTTAIOffsetSeconds is TAI - GST at the Galileo epoch.
	GSTTAIOffsetSeconds = 19

	// NAIF ET constants (spec.md §4.3/§6).
	NAIFM0 = 6.239996
	NAIFM1 = 1.99096871e-7
	NAIFEB = 1.671e-2
	NAIFK  = 1.657e-3

	// ESA TDB constants (spec.md §4.3).
	esaG0     = 357.528
	esaG1     = 1.990910018065731e-7
	esaAmp    = 1.658e-3
	esaPhase  = 1.67e-2
	degToRad  = 3.14159265358979323846 / 180.0
)
