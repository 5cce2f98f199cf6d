package http

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"growth-projector/domain"
)

// Query parameter names accepted by GET /growth/project.
const (
	paramStartValue = "startValue"
	paramEndValue   = "endValue"
	paramStartYear  = "startYear"
	paramEndYear    = "endYear"
)

// InputFromQuery reads the four projection inputs from query parameters.
// Each missing, unparsable or zero parameter falls back to its default.
func InputFromQuery(values url.Values, defaults domain.GrowthInput) domain.GrowthInput {
	return domain.GrowthInput{
		StartValue: floatParam(values, paramStartValue, defaults.StartValue),
		EndValue:   floatParam(values, paramEndValue, defaults.EndValue),
		StartYear:  intParam(values, paramStartYear, defaults.StartYear),
		EndYear:    intParam(values, paramEndYear, defaults.EndYear),
	}
}

// HasAllParams reports whether every projection parameter is present.
func HasAllParams(values url.Values) bool {
	for _, key := range []string{paramStartValue, paramEndValue, paramStartYear, paramEndYear} {
		if strings.TrimSpace(values.Get(key)) == "" {
			return false
		}
	}
	return true
}

func floatParam(values url.Values, key string, fallback float64) float64 {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

func intParam(values url.Values, key string, fallback int) int {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return fallback
	}
	if v, err := strconv.Atoi(raw); err == nil {
		if v == 0 {
			return fallback
		}
		return v
	}
	// Accept integral decimals such as "2021.0".
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f == 0 || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return fallback
	}
	return int(f)
}
