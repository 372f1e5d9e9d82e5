package goal

import "math"

const (
	MinProjectionYears = 1
	MaxProjectionYears = 30
	MinAnnualRate      = 0.0
	MaxAnnualRate      = 20.0
)

// Project simulates a goal balance forward month by month under an assumed
// annual growth rate, given as a percentage. The annual rate is converted to
// an effective monthly rate, contributions land at the start of each month
// (the annual contribution in the first month of every 12-month block), and
// interest compounds after the contributions. The ordering inside each month
// is load-bearing: results are not path-independent under compounding.
func Project(currentAmount, monthlyContribution, annualContribution float64, years int, annualRatePercent float64) float64 {
	monthlyRate := math.Pow(1+annualRatePercent/100, 1.0/12) - 1

	amount := currentAmount
	for month := 1; month <= years*12; month++ {
		amount += monthlyContribution

		if month%12 == 1 {
			amount += annualContribution
		}

		amount *= 1 + monthlyRate
	}

	return amount
}

// ClampProjectionYears bounds the horizon to [1, 30]. Project is undefined
// for years < 1, so every caller must clamp first.
func ClampProjectionYears(years int) int {
	if years < MinProjectionYears {
		return MinProjectionYears
	}
	if years > MaxProjectionYears {
		return MaxProjectionYears
	}
	return years
}

// ClampAnnualRate bounds the growth rate to [0, 20] percent.
func ClampAnnualRate(rate float64) float64 {
	if rate < MinAnnualRate {
		return MinAnnualRate
	}
	if rate > MaxAnnualRate {
		return MaxAnnualRate
	}
	return rate
}
