package bankroll

import (
	"fmt"
	"math"
)

// Percent is a percentage, 12.5 means 12.5%.
type Percent float64

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" || res == "-0.00%" {
		return "-"
	}
	return res
}

// finite replaces NaN and infinities by 0.
func (p Percent) finite() Percent {
	if math.IsNaN(float64(p)) || math.IsInf(float64(p), 0) {
		return 0
	}
	return p
}
