package hifitime

import "sync"

// leapEntry pairs a UTC-side Unix timestamp (seconds since 1970-01-01) with
// the cumulative TAI-UTC skew that takes effect from that instant onward.
type leapEntry struct {
	unixUTC        int64
	cumulativeSkew float64
	announced      bool
}

// leaplock guards leapSeconds: the table is read on every UTC<->TAI
// conversion and is only ever mutated by RegisterLeapSecond/RemoveLeapSecond,
// which are expected to run at program start, if at all.
var leaplock sync.RWMutex

// leapSeconds is the built-in table: 14 unannounced pre-1972 SOFA drift
// corrections followed by the 28 announced IERS leap seconds through 2017,
// per original_source/src/epoch.rs's LEAP_SECONDS constant.
var leapSeconds = []leapEntry{
	{-378691200, 1.4228180, false},  // 1960-01-01
	{-365817600, 1.3728180, false},  // 1960-07-01
	{-321062400, 1.8458580, false},  // 1961-08-01
	{-302486400, 1.9458580, false},  // 1962-01-01
	{-271123200, 3.2401300, false},  // 1963-01-01
	{-239587200, 3.4401300, false},
	{-223862400, 3.5401300, false},
	{-207702000, 3.6401300, false},
	{-192441600, 3.7401300, false},
	{-181526400, 3.8401300, false},
	{-168038400, 4.3131700, false},
	{-152294400, 4.2131700, false},
	{-142380000, 4.3131700, false},
	{63072000, 10, true},   // 1972-01-01
	{78796800, 11, true},   // 1972-07-01
	{94694400, 12, true},   // 1973-01-01
	{126230400, 13, true},  // 1974-01-01
	{157766400, 14, true},  // 1975-01-01
	{189302400, 15, true},  // 1976-01-01
	{220924800, 16, true},  // 1977-01-01
	{252460800, 17, true},  // 1978-01-01
	{283996800, 18, true},  // 1979-01-01
	{315532800, 19, true},  // 1980-01-01
	{362793600, 20, true},  // 1981-07-01
	{394329600, 21, true},  // 1982-07-01
	{425865600, 22, true},  // 1983-07-01
	{489024000, 23, true},  // 1985-07-01
	{567993600, 24, true},  // 1988-01-01
	{631152000, 25, true},  // 1990-01-01
	{662688000, 26, true},  // 1991-01-01
	{709948800, 27, true},  // 1992-07-01
	{741484800, 28, true},  // 1993-07-01
	{773020800, 29, true},  // 1994-07-01
	{820454400, 30, true},  // 1996-01-01
	{867715200, 31, true},  // 1997-07-01
	{915148800, 32, true},  // 1999-01-01
	{1136073600, 33, true}, // 2006-01-01
	{1230768000, 34, true}, // 2009-01-01
	{1341100800, 35, true}, // 2012-07-01
	{1435708800, 36, true}, // 2015-07-01
	{1483228800, 37, true}, // 2017-01-01
}

// cumulativeSkewAtUnix returns the TAI-UTC skew in seconds that applies at
// the given UTC-side Unix timestamp, walking the table from the oldest entry
// forward and keeping the last entry at or before unixUTC. When
// iersOnly is true, the 14 unannounced pre-1972 SOFA rows are skipped and
// only officially announced IERS leap seconds contribute to the skew.
func cumulativeSkewAtUnix(unixUTC int64, iersOnly bool) float64 {
	leaplock.RLock()
	defer leaplock.RUnlock()

	skew := 0.0
	for _, e := range leapSeconds {
		if iersOnly && !e.announced {
			continue
		}
		if e.unixUTC > unixUTC {
			break
		}
		skew = e.cumulativeSkew
	}
	return skew
}

// skewForTAIUnix returns the TAI-UTC skew in effect for a TAI-side Unix
// timestamp, by inverting cumulativeSkewAtUnix (the skew at unixTAI - skew is
// self-consistent because the table only grows monotonically). iersOnly has
// the same meaning as in cumulativeSkewAtUnix.
func skewForTAIUnix(unixTAI int64, iersOnly bool) float64 {
	leaplock.RLock()
	defer leaplock.RUnlock()

	skew := 0.0
	for _, e := range leapSeconds {
		if iersOnly && !e.announced {
			continue
		}
		if float64(e.unixUTC)+skew > float64(unixTAI) {
			break
		}
		skew = e.cumulativeSkew
	}
	return skew
}

// RegisterLeapSecond inserts a new leap second announcement into the table,
// keeping it sorted by unixUTC. Intended for programs that need to track
// leap seconds announced after this package was built.
func RegisterLeapSecond(unixUTC int64, cumulativeSkew float64) {
	leaplock.Lock()
	defer leaplock.Unlock()

	entry := leapEntry{unixUTC: unixUTC, cumulativeSkew: cumulativeSkew, announced: true}
	idx := len(leapSeconds)
	for i, e := range leapSeconds {
		if e.unixUTC > unixUTC {
			idx = i
			break
		}
		if e.unixUTC == unixUTC {
			leapSeconds[i] = entry
			return
		}
	}
	leapSeconds = append(leapSeconds, leapEntry{})
	copy(leapSeconds[idx+1:], leapSeconds[idx:])
	leapSeconds[idx] = entry
}

// RemoveLeapSecond deletes the table entry at the given UTC-side Unix
// timestamp, if present.
func RemoveLeapSecond(unixUTC int64) {
	leaplock.Lock()
	defer leaplock.Unlock()

	for i, e := range leapSeconds {
		if e.unixUTC == unixUTC {
			leapSeconds = append(leapSeconds[:i], leapSeconds[i+1:]...)
			return
		}
	}
}

// LeapSecondsCount returns the number of entries currently in the table,
// announced and unannounced combined.
func LeapSecondsCount() int {
	leaplock.RLock()
	defer leaplock.RUnlock()
	return len(leapSeconds)
}
