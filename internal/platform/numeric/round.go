package numeric

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round rounds v to places decimals, ties to even, on v's shortest decimal form.
func Round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).RoundBank(places).InexactFloat64()
}

func Round1(v float64) float64 { return Round(v, 1) }

func Round2(v float64) float64 { return Round(v, 2) }

// Clamp bounds v to [-limit, limit].
func Clamp(v, limit float64) float64 {
	return math.Max(-limit, math.Min(limit, v))
}
