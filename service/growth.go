package service

import (
	"math"

	"growth-projector/domain"
)

// Rate solves the compound annual growth rate r for which
// startValue*(1+r)^n == endValue, with n = endYear-startYear.
func Rate(input domain.GrowthInput) (float64, error) {
	growth, err := growthFactor(input)
	if err != nil {
		return 0, err
	}
	return growth - 1, nil
}

// Project returns one point per year from StartYear to EndYear inclusive,
// compounding StartValue at the rate that reaches EndValue in the final year.
// The first point is exactly StartValue and the last exactly EndValue.
func Project(input domain.GrowthInput) (domain.GrowthSeries, error) {
	growth, err := growthFactor(input)
	if err != nil {
		return nil, err
	}

	n := input.Periods()
	series := make(domain.GrowthSeries, 0, n+1)
	for k := 0; k <= n; k++ {
		series = append(series, domain.GrowthPoint{
			Year:  input.StartYear + k,
			Value: input.StartValue * math.Pow(growth, float64(k)),
		})
	}
	// math.Pow accumulates rounding error; the endpoint is known exactly.
	series[n].Value = input.EndValue

	return series, nil
}

func growthFactor(input domain.GrowthInput) (float64, error) {
	if err := validate(input); err != nil {
		return 0, err
	}
	n := input.Periods()
	ratio := input.EndValue / input.StartValue
	if n == 1 {
		return ratio, nil
	}
	return math.Pow(ratio, 1/float64(n)), nil
}

func validate(input domain.GrowthInput) error {
	n := input.Periods()
	if n == 0 {
		return invalid(ErrInvalidRange, "endYear", "must be after startYear %d", input.StartYear)
	}
	if n < 0 {
		return invalid(ErrInvalidRange, "endYear", "%d is before startYear %d", input.EndYear, input.StartYear)
	}
	if n > MaxPeriods {
		return invalid(ErrInvalidRange, "endYear", "range of %d years exceeds the maximum of %d", n, MaxPeriods)
	}

	if !isFinite(input.StartValue) {
		return invalid(ErrInvalidBase, "startValue", "must be a finite number")
	}
	if input.StartValue == 0 {
		return invalid(ErrInvalidBase, "startValue", "must not be zero")
	}
	if !isFinite(input.EndValue) {
		return invalid(ErrInvalidTarget, "endValue", "must be a finite number")
	}

	ratio := input.EndValue / input.StartValue
	if !isFinite(ratio) {
		return invalid(ErrInvalidTarget, "endValue", "ratio to startValue overflows")
	}
	// A negative ratio only has a real root when the exponent 1/n is 1.
	if ratio < 0 && n > 1 {
		if input.StartValue < 0 {
			return invalid(ErrInvalidBase, "startValue", "negative start value cannot compound to %g over %d years", input.EndValue, n)
		}
		return invalid(ErrInvalidTarget, "endValue", "sign differs from startValue over %d years", n)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
