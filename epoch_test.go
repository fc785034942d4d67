package hifitime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hifitime "github.com/adpaco-aws/hifitime"
)

func TestEpochJ1900IsZero(t *testing.T) {
	assert.True(t, hifitime.J1900.ToTAIDuration().Equal(hifitime.ZeroDuration))
}

func TestEpochAddSubRoundTrip(t *testing.T) {
	e := hifitime.J2000
	d := hifitime.Day.Mul(365)
	later := e.Add(d)
	assert.True(t, later.Sub(e).Equal(d))
}

func TestEpochCompareOrdering(t *testing.T) {
	assert.True(t, hifitime.J1900.Before(hifitime.J2000))
	assert.True(t, hifitime.J2000.After(hifitime.J1900))
	assert.False(t, hifitime.J1900.Equal(hifitime.J2000))
}

func TestEpochUTCLeapSecondOffsetAfter1972(t *testing.T) {
	e, err := hifitime.FromGregorianUTC(2020, 1, 1, 0, 0, 0, 0)
	require.NoError(t, err)

	tai, err := hifitime.FromGregorianTAI(2020, 1, 1, 0, 0, 0, 0)
	require.NoError(t, err)

	skew := e.Sub(tai)
	assert.InDelta(t, 37, skew.InSeconds(), 1e-6, "TAI-UTC skew in 2020 should be 37s")
}

func TestEpochUnixRoundTrip(t *testing.T) {
	e, err := hifitime.FromGregorianUTC(2024, 3, 14, 15, 9, 26, 0)
	require.NoError(t, err)

	unixSecs := e.ToUnixSeconds()
	back := hifitime.FromUnixSeconds(unixSecs)
	assert.InDelta(t, 0, e.Sub(back).InSeconds(), 1e-6)
}

func TestEpochGPSTFixedOffset(t *testing.T) {
	e, err := hifitime.FromGregorianTAI(2024, 1, 1, 0, 0, 0, 0)
	require.NoError(t, err)

	gpst := e.ToGPSTDuration()
	back := hifitime.FromGPSTDuration(gpst)
	assert.True(t, back.Equal(e))
}

func TestEpochETRoundTrip(t *testing.T) {
	et := hifitime.J2000.ToETDuration()
	back := hifitime.FromETDuration(et)
	assert.InDelta(t, 0, back.Sub(hifitime.J2000).InSeconds(), 1e-6)
}

func TestEpochTDBRoundTrip(t *testing.T) {
	tdb := hifitime.J2000.ToTDBDuration()
	back := hifitime.FromTDBDuration(tdb)
	assert.InDelta(t, 0, back.Sub(hifitime.J2000).InSeconds(), 1e-6)
}

func TestEpochMJDJ1900(t *testing.T) {
	assert.InDelta(t, 15020.0, hifitime.J1900.ToMJDTAIDays(), 1e-9)
}

func TestEpochInvalidGregorianReturnsCarryError(t *testing.T) {
	_, err := hifitime.FromGregorianTAI(2023, 2, 30, 0, 0, 0, 0)
	assert.Error(t, err)

	_, err = hifitime.FromGregorianTAI(2023, 13, 1, 0, 0, 0, 0)
	assert.Error(t, err)
}

func TestEpochParseISO8601(t *testing.T) {
	e, err := hifitime.ParseEpoch("2024-03-14T15:09:26.535897932Z UTC")
	require.NoError(t, err)

	year, month, day, hour, minute, second, _ := e.ToGregorianUTC()
	assert.Equal(t, 2024, year)
	assert.Equal(t, 3, month)
	assert.Equal(t, 14, day)
	assert.Equal(t, 15, hour)
	assert.Equal(t, 9, minute)
	assert.Equal(t, 26, second)
}

func TestEpochWeekday(t *testing.T) {
	// 1900-01-01 was a Monday.
	assert.Equal(t, hifitime.Monday, hifitime.J1900.Weekday())
}

// TestEpochParseScenario1TAIDecomposition encodes spec scenario 1.
func TestEpochParseScenario1TAIDecomposition(t *testing.T) {
	e, err := hifitime.ParseEpoch("2017-01-14T00:31:55 UTC")
	require.NoError(t, err)

	want := hifitime.FromParts(1, 537_582_752_000_000_000)
	assert.True(t, e.ToTAIDuration().Equal(want), "got %s want %s", e.ToTAIDuration(), want)
}

// TestEpochGregorianUTCTAIGapAt1972 encodes spec scenario 2: the UTC and TAI
// midnights of the day the leap-second table starts differ by exactly 10s.
func TestEpochGregorianUTCTAIGapAt1972(t *testing.T) {
	utc, err := hifitime.FromGregorianUTC(1972, 1, 1, 0, 0, 0, 0)
	require.NoError(t, err)
	tai, err := hifitime.FromGregorianTAI(1972, 1, 1, 0, 0, 0, 0)
	require.NoError(t, err)

	assert.InDelta(t, 10.0, utc.Sub(tai).InSeconds(), 1e-9)
}

// TestEpochLeapSecondBoundaryGap encodes spec scenario 3: the TAI-UTC gap
// steps from 36s to 37s across the 2016-12-31 leap second insertion.
func TestEpochLeapSecondBoundaryGap(t *testing.T) {
	before, err := hifitime.FromGregorianUTC(2016, 12, 31, 23, 59, 23, 0)
	require.NoError(t, err)
	gapBefore := before.ToTAIDuration().Sub(before.ToUTCDuration()).InSeconds()
	assert.InDelta(t, 36.0, gapBefore, 1e-9)

	after, err := hifitime.FromGregorianUTC(2017, 1, 1, 0, 0, 0, 0)
	require.NoError(t, err)
	gapAfter := after.ToTAIDuration().Sub(after.ToUTCDuration()).InSeconds()
	assert.InDelta(t, 37.0, gapAfter, 1e-9)
}

// TestEpochETKnownValue encodes spec scenario 4 against a known ET value.
func TestEpochETKnownValue(t *testing.T) {
	e, err := hifitime.FromGregorianUTC(2012, 2, 7, 11, 22, 33, 0)
	require.NoError(t, err)

	etSecondsPastJ2000 := e.ToETDuration().Sub(hifitime.J2000.ToTAIDuration()).InSeconds()
	assert.InDelta(t, 381_885_819.18493587, etSecondsPastJ2000, 1e-6)
}

// TestEpochLeapSecondOnArbitraryDateRejected encodes review comment (e):
// second == 60 is only legal on a recognized leap-second insertion boundary.
func TestEpochLeapSecondOnArbitraryDateRejected(t *testing.T) {
	_, err := hifitime.FromGregorianTAI(2023, 5, 15, 10, 30, 60, 0)
	assert.Error(t, err)
}

// TestEpochLeapSecondOnRecognizedBoundaryAccepted verifies that second == 60
// is legal on an actual leap-second insertion boundary.
func TestEpochLeapSecondOnRecognizedBoundaryAccepted(t *testing.T) {
	_, err := hifitime.FromGregorianUTC(2016, 12, 31, 23, 59, 60, 0)
	assert.NoError(t, err)
}
