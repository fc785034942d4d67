package hifitime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	hifitime "github.com/adpaco-aws/hifitime"
)

func TestIsLeapYearKnownValues(t *testing.T) {
	leap := []int{1600, 2000, 2004, 2024}
	notLeap := []int{1700, 1800, 1900, 2001, 2100}

	for _, y := range leap {
		assert.True(t, hifitime.IsLeapYear(y), "%d should be a leap year", y)
	}
	for _, y := range notLeap {
		assert.False(t, hifitime.IsLeapYear(y), "%d should not be a leap year", y)
	}
}

func TestIsLeapYearAcceptsNonPositiveYears(t *testing.T) {
	assert.NotPanics(t, func() {
		hifitime.IsLeapYear(-400)
	})
	assert.True(t, hifitime.IsLeapYear(-400))
}

func TestJDNRoundTrip(t *testing.T) {
	cases := [][3]int{
		{1900, 1, 1},
		{2000, 1, 1},
		{2024, 2, 29},
		{1970, 1, 1},
		{1, 1, 1},
	}
	for _, c := range cases {
		year, month, day := c[0], c[1], c[2]
		e, err := hifitime.FromGregorianTAI(year, month, day, 0, 0, 0, 0)
		assert.NoError(t, err)
		gy, gm, gd, _, _, _, _ := e.ToGregorianTAI()
		assert.Equal(t, year, gy)
		assert.Equal(t, month, gm)
		assert.Equal(t, day, gd)
	}
}
