// rational.go defines the Rational type.

package types

import (
	"fmt"
	"strings"
)

// Rational is a fraction, used for frame rates.
type Rational struct {
	Num int
	Den int
}

func (r Rational) Float64() float64 {
	return float64(r.Num) / float64(r.Den)
}

// IsZero reports whether the fraction has a zero numerator or denominator.
func (r Rational) IsZero() bool {
	return r.Num == 0 || r.Den == 0
}

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// RationalFromString parses "NUM/DEN" or a plain integer.
func RationalFromString(s string) (*Rational, error) {
	var r Rational
	switch {
	case len(s) == 0:
		return nil, fmt.Errorf("unable to parse Rational from empty string")
	case strings.Contains(s, "/"):
		if _, err := fmt.Sscanf(s, "%d/%d", &r.Num, &r.Den); err != nil {
			return nil, fmt.Errorf("unable to parse Rational from %q: %w", s, err)
		}
	default:
		if _, err := fmt.Sscanf(s, "%d", &r.Num); err != nil {
			return nil, fmt.Errorf("unable to parse Rational from %q: %w", s, err)
		}
		r.Den = 1
	}
	if r.Den == 0 {
		return nil, fmt.Errorf("denominator cannot be zero")
	}
	return &r, nil
}
