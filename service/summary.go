package service

import (
	"fmt"
	"math"

	"growth-projector/domain"
)

// Summary explains a projection in one sentence.
func Summary(input domain.GrowthInput, rate float64) string {
	years := input.Periods()
	change := input.EndValue - input.StartValue

	direction := "growth"
	if rate < 0 {
		direction = "decline"
	}

	relative := ""
	if input.StartValue != 0 {
		pct := change / math.Abs(input.StartValue) * 100
		relative = fmt.Sprintf(" (%+.2f%%)", RoundTo2Decimals(pct))
	}

	return fmt.Sprintf(
		"Compound %s from %g in %d to %g in %d over %d %s: CAGR %.2f%%, total change %+g%s.",
		direction,
		input.StartValue, input.StartYear,
		input.EndValue, input.EndYear,
		years, pluralYears(years),
		RoundTo2Decimals(rate*100),
		RoundTo2Decimals(change),
		relative,
	)
}

func pluralYears(n int) string {
	if n == 1 {
		return "year"
	}
	return "years"
}
