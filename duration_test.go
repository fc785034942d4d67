package hifitime_test

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hifitime "github.com/adpaco-aws/hifitime"
)

type decomposition struct {
	Sign                          int
	Days, Hours, Minutes, Seconds uint64
	Millis, Micros, Nanos         uint64
}

func decompose(d hifitime.Duration) decomposition {
	sign, days, hours, minutes, seconds, millis, micros, nanos := d.Decompose()
	return decomposition{sign, days, hours, minutes, seconds, millis, micros, nanos}
}

func TestDurationZeroCrossingEquality(t *testing.T) {
	oneCenturyBefore := hifitime.FromParts(-1, uint64(hifitime.NanosPerCentury))
	assert.True(t, oneCenturyBefore.Equal(hifitime.ZeroDuration),
		"(-1 centuries, NanosPerCentury ns) must normalize/compare equal to zero")
}

func TestDurationAddInverse(t *testing.T) {
	d := hifitime.Second.Mul(12345)
	assert.True(t, d.Add(d.Neg()).Equal(hifitime.ZeroDuration))
}

func TestDurationMinPositiveMinusMinNegative(t *testing.T) {
	got := hifitime.MinPositiveDuration.Sub(hifitime.MinNegativeDuration)
	want := hifitime.Nanosecond.Mul(2)
	assert.True(t, got.Equal(want), "got %s want %s", got, want)
}

// TestDurationMinNegativeTimesFour encodes spec scenario 7:
// MinNegativeDuration + 4*MinNegativeDuration == -5 ns.
func TestDurationMinNegativeTimesFour(t *testing.T) {
	got := hifitime.MinNegativeDuration.Add(hifitime.MinNegativeDuration.Mul(4))
	want := hifitime.Nanosecond.Mul(-5)
	assert.True(t, got.Equal(want), "got %s want %s", got, want)
}

func TestDurationSaturatesOnOverflow(t *testing.T) {
	assert.True(t, hifitime.MaxDuration.Add(hifitime.Second.Mul(1)).Equal(hifitime.MaxDuration))
	assert.True(t, hifitime.MinDuration.Sub(hifitime.Second.Mul(1)).Equal(hifitime.MinDuration))
}

func TestDurationCompareOrdering(t *testing.T) {
	small := hifitime.Second.Mul(1)
	large := hifitime.Day.Mul(1)
	assert.True(t, small.Less(large))
	assert.True(t, large.Greater(small))
	assert.False(t, small.Greater(large))
}

func TestDurationTotalNanosecondsRoundTrip(t *testing.T) {
	cases := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(-1),
		big.NewInt(86_400_000_000_000),
		new(big.Int).Neg(big.NewInt(86_400_000_000_000)),
	}
	for _, c := range cases {
		d := hifitime.FromTotalNanoseconds(c)
		require.Equal(t, 0, c.Cmp(d.TotalNanoseconds()), "round trip of %s", c)
	}
}

func TestDurationDecompose(t *testing.T) {
	d := hifitime.Day.Mul(1).Add(hifitime.Hour.Mul(2)).Add(hifitime.Minute.Mul(3)).Add(hifitime.Second.Mul(4))
	want := decomposition{Sign: 1, Days: 1, Hours: 2, Minutes: 3, Seconds: 4}
	if diff := cmp.Diff(want, decompose(d)); diff != "" {
		t.Errorf("decomposition mismatch (-want +got):\n%s", diff)
	}
}

func TestDurationInUnit(t *testing.T) {
	d := hifitime.Hour.Mul(1)
	assert.InDelta(t, 60.0, d.InUnit(hifitime.Minute), 1e-9)
	assert.InDelta(t, 3600.0, d.InUnit(hifitime.Second), 1e-9)
}

func TestDurationFloorCeilRound(t *testing.T) {
	d, err := hifitime.ParseDuration("10.598 days")
	require.NoError(t, err)

	floored := d.Floor(hifitime.Day.Mul(1))
	assert.True(t, floored.Equal(hifitime.Day.Mul(10)))

	ceiled := d.Ceil(hifitime.Day.Mul(1))
	assert.True(t, ceiled.Equal(hifitime.Day.Mul(11)))

	rounded := d.Round(hifitime.Day.Mul(1))
	assert.True(t, rounded.Equal(hifitime.Day.Mul(11)))
}

func TestDurationRoundTiesAwayFromZero(t *testing.T) {
	rounded := hifitime.Second.Mul(-5).Round(hifitime.Second.Mul(2))
	assert.True(t, rounded.Equal(hifitime.Second.Mul(-6)))
}

func TestParseDurationUnits(t *testing.T) {
	cases := map[string]hifitime.Duration{
		"1 day":         hifitime.Day.Mul(1),
		"2.5 hours":     hifitime.Hour.MulFloat(2.5),
		"500 ms":        hifitime.Millisecond.Mul(500),
		"-3 min":        hifitime.Minute.Mul(-3),
		"10.598 days":   hifitime.Day.MulFloat(10.598),
		"1000 ns":       hifitime.Nanosecond.Mul(1000),
	}
	for input, want := range cases {
		got, err := hifitime.ParseDuration(input)
		require.NoError(t, err, input)
		assert.True(t, got.Equal(want), "%s: got %s want %s", input, got, want)
	}
}

func TestParseDurationRejectsGarbage(t *testing.T) {
	_, err := hifitime.ParseDuration("not a duration")
	assert.Error(t, err)

	_, err = hifitime.ParseDuration("")
	assert.Error(t, err)
}

func TestDurationString(t *testing.T) {
	d := hifitime.Day.Mul(1).Add(hifitime.Hour.Mul(2))
	assert.Contains(t, d.String(), "1 days")
	assert.Contains(t, d.String(), "2 h")

	assert.Equal(t, "0 ns", hifitime.ZeroDuration.String())
}
