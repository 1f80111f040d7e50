package domain

import "math"

// PointsPerUnit is the exchange rate between decimal currency prices and
// integer points: 100 points = 1 currency unit.
const PointsPerUnit = 100

// Points converts a decimal price into integer points. Prices carry at most
// tenth-of-cent precision and the conversion rounds half cents up, so a
// 9.995 price costs 1000 points, not 999.
func Points(price float64) int64 {
	// 9.995*100 is 999.4999... in binary floating point, so rounding the
	// product directly loses the half cent. Go through a tenth-of-cent
	// integer and round half-up in decimal.
	mils := int64(math.Round(price * 10 * PointsPerUnit))
	return (mils + 5) / 10
}
