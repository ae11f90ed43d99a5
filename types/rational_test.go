package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRationalFromString(t *testing.T) {
	tests := []struct {
		input          string
		expectedNum    int
		expectedDen    int
		expectingError bool
	}{
		{"30", 30, 1, false},
		{"30/1", 30, 1, false},
		{"30000/1001", 30000, 1001, false},
		{"60000/1000", 60000, 1000, false},
		{"0/1", 0, 1, false},
		{"1/0", 0, 0, true},
		{"", 0, 0, true},
		{"invalid", 0, 0, true},
		{"10/invalid", 0, 0, true},
	}

	for _, test := range tests {
		rational, err := RationalFromString(test.input)
		if test.expectingError {
			require.Error(t, err, "input %q", test.input)
			continue
		}
		require.NoError(t, err, "input %q", test.input)
		require.Equal(t, test.expectedNum, rational.Num, "input %q", test.input)
		require.Equal(t, test.expectedDen, rational.Den, "input %q", test.input)
	}
}

func TestClockFrameRate(t *testing.T) {
	c := Clock{Framerate: 30, ClockRatio: 1001}
	require.Equal(t, Rational{Num: 30000, Den: 1001}, c.FrameRate())
	require.InDelta(t, 29.97, c.FrameRate().Float64(), 0.01)
	require.True(t, Clock{Framerate: 0, ClockRatio: 1000}.FrameRate().IsZero())
}
