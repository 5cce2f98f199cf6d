package service

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growth-projector/domain"
)

func relDiff(a, b float64) float64 {
	if b == 0 {
		return math.Abs(a)
	}
	return math.Abs(a-b) / math.Abs(b)
}

func TestProject_MarketSizeScenario(t *testing.T) {
	series, err := Project(domain.GrowthInput{StartValue: 265, EndValue: 1870, StartYear: 2021, EndYear: 2030})
	require.NoError(t, err)
	require.Len(t, series, 10)

	assert.Equal(t, 2021, series[0].Year)
	assert.Equal(t, 265.0, series[0].Value)
	assert.Equal(t, 2030, series[9].Year)
	assert.InDelta(t, 1870.0, series[9].Value, 1e-6)

	for i := 1; i < len(series); i++ {
		assert.Equal(t, series[i-1].Year+1, series[i].Year)
		assert.Greater(t, series[i].Value, series[i-1].Value)
	}
}

func TestProject_DeclineScenario(t *testing.T) {
	series, err := Project(domain.GrowthInput{StartValue: 1000, EndValue: 500, StartYear: 2020, EndYear: 2025})
	require.NoError(t, err)
	require.Len(t, series, 6)

	assert.Equal(t, 1000.0, series[0].Value)
	assert.Equal(t, 2025, series[5].Year)
	assert.InDelta(t, 500.0, series[5].Value, 1e-6)
	for i := 1; i < len(series); i++ {
		assert.Less(t, series[i].Value, series[i-1].Value)
	}
}

func TestProject_EndpointsAndCoverage(t *testing.T) {
	inputs := []domain.GrowthInput{
		{StartValue: 1, EndValue: 2, StartYear: 2000, EndYear: 2001},
		{StartValue: 0.5, EndValue: 1e6, StartYear: 1900, EndYear: 2000},
		{StartValue: 42, EndValue: 0.01, StartYear: -5, EndYear: 7},
		{StartValue: -10, EndValue: -80, StartYear: 2010, EndYear: 2013},
		{StartValue: 3, EndValue: 3.0000001, StartYear: 0, EndYear: MaxPeriods},
	}
	for _, in := range inputs {
		series, err := Project(in)
		require.NoError(t, err, "%+v", in)
		require.Len(t, series, in.Periods()+1)

		first, _ := series.First()
		last, _ := series.Last()
		assert.Equal(t, in.StartValue, first.Value)
		assert.Equal(t, in.StartYear, first.Year)
		assert.Equal(t, in.EndYear, last.Year)
		assert.LessOrEqual(t, relDiff(last.Value, in.EndValue), 1e-9)

		for i, p := range series {
			assert.Equal(t, in.StartYear+i, p.Year)
			assert.False(t, math.IsNaN(p.Value) || math.IsInf(p.Value, 0))
		}
	}
}

func TestProject_UnpinnedEndpointWithinTolerance(t *testing.T) {
	in := domain.GrowthInput{StartValue: 265, EndValue: 1870, StartYear: 2021, EndYear: 2030}
	growth, err := growthFactor(in)
	require.NoError(t, err)

	computed := in.StartValue * math.Pow(growth, float64(in.Periods()))
	assert.LessOrEqual(t, relDiff(computed, in.EndValue), EndpointTolerance)
}

func TestProject_ScaleInvariance(t *testing.T) {
	base := domain.GrowthInput{StartValue: 265, EndValue: 1870, StartYear: 2021, EndYear: 2030}
	want, err := Project(base)
	require.NoError(t, err)

	for _, k := range []float64{2, 0.001, 1e6, -3} {
		scaled := base
		scaled.StartValue *= k
		scaled.EndValue *= k

		got, err := Project(scaled)
		require.NoError(t, err, "k=%g", k)
		require.Len(t, got, len(want))
		for i := range got {
			assert.LessOrEqual(t, relDiff(got[i].Value, k*want[i].Value), 1e-9, "k=%g year=%d", k, got[i].Year)
		}
	}
}

func TestProject_IdentityGrowth(t *testing.T) {
	series, err := Project(domain.GrowthInput{StartValue: 123.45, EndValue: 123.45, StartYear: 1990, EndYear: 2020})
	require.NoError(t, err)
	for _, p := range series {
		assert.Equal(t, 123.45, p.Value)
	}

	rate, err := Rate(domain.GrowthInput{StartValue: 7, EndValue: 7, StartYear: 1, EndYear: 9})
	require.NoError(t, err)
	assert.Equal(t, 0.0, rate)
}

func TestProject_ZeroEndValue(t *testing.T) {
	series, err := Project(domain.GrowthInput{StartValue: 100, EndValue: 0, StartYear: 2020, EndYear: 2023})
	require.NoError(t, err)
	assert.Equal(t, 100.0, series[0].Value)
	for _, p := range series[1:] {
		assert.Equal(t, 0.0, p.Value)
	}
}

func TestProject_SignChangeOverOnePeriod(t *testing.T) {
	series, err := Project(domain.GrowthInput{StartValue: 100, EndValue: -50, StartYear: 2020, EndYear: 2021})
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, 100.0, series[0].Value)
	assert.Equal(t, -50.0, series[1].Value)

	rate, err := Rate(domain.GrowthInput{StartValue: 100, EndValue: -50, StartYear: 2020, EndYear: 2021})
	require.NoError(t, err)
	assert.InDelta(t, -1.5, rate, 1e-12)
}

func TestRate_MatchesClosedForm(t *testing.T) {
	rate, err := Rate(domain.GrowthInput{StartValue: 100, EndValue: 200, StartYear: 2000, EndYear: 2010})
	require.NoError(t, err)
	assert.InDelta(t, math.Pow(2, 0.1)-1, rate, 1e-15)
}

func TestProject_Rejections(t *testing.T) {
	cases := []struct {
		name  string
		input domain.GrowthInput
		want  error
		field string
	}{
		{"zero length range", domain.GrowthInput{StartValue: 100, EndValue: 200, StartYear: 2020, EndYear: 2020}, ErrInvalidRange, "endYear"},
		{"reversed range", domain.GrowthInput{StartValue: 100, EndValue: 200, StartYear: 2025, EndYear: 2020}, ErrInvalidRange, "endYear"},
		{"range too long", domain.GrowthInput{StartValue: 100, EndValue: 200, StartYear: 0, EndYear: MaxPeriods + 1}, ErrInvalidRange, "endYear"},
		{"zero base", domain.GrowthInput{StartValue: 0, EndValue: 100, StartYear: 2020, EndYear: 2025}, ErrInvalidBase, "startValue"},
		{"zero base zero target", domain.GrowthInput{StartValue: 0, EndValue: 0, StartYear: 2020, EndYear: 2025}, ErrInvalidBase, "startValue"},
		{"NaN base", domain.GrowthInput{StartValue: math.NaN(), EndValue: 100, StartYear: 2020, EndYear: 2025}, ErrInvalidBase, "startValue"},
		{"negative base positive target", domain.GrowthInput{StartValue: -100, EndValue: 100, StartYear: 2020, EndYear: 2025}, ErrInvalidBase, "startValue"},
		{"infinite target", domain.GrowthInput{StartValue: 1, EndValue: math.Inf(1), StartYear: 2020, EndYear: 2025}, ErrInvalidTarget, "endValue"},
		{"negative target", domain.GrowthInput{StartValue: 100, EndValue: -100, StartYear: 2020, EndYear: 2025}, ErrInvalidTarget, "endValue"},
		{"overflowing ratio", domain.GrowthInput{StartValue: 1e-300, EndValue: 1e300, StartYear: 2020, EndYear: 2025}, ErrInvalidTarget, "endValue"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			series, err := Project(tc.input)
			require.Error(t, err)
			assert.Nil(t, series)
			assert.ErrorIs(t, err, tc.want)
			assert.True(t, IsValidation(err))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.field, verr.Field)

			_, err = Rate(tc.input)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestIsValidation_OtherErrors(t *testing.T) {
	assert.False(t, IsValidation(errors.New("boom")))
	assert.False(t, IsValidation(nil))
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 265.0, CeilToOneDecimal(265))
	assert.Equal(t, 329.5, CeilToOneDecimal(329.41))
	assert.Equal(t, -1.2, CeilToOneDecimal(-1.25))
	assert.Equal(t, 24.25, RoundTo2Decimals(24.2468))
}

func TestSummary(t *testing.T) {
	in := domain.GrowthInput{StartValue: 100, EndValue: 200, StartYear: 2000, EndYear: 2010}
	rate, err := Rate(in)
	require.NoError(t, err)

	s := Summary(in, rate)
	assert.Contains(t, s, "Compound growth")
	assert.Contains(t, s, "over 10 years")
	assert.Contains(t, s, "CAGR 7.18%")
	assert.Contains(t, s, "+100")
	assert.Contains(t, s, "(+100.00%)")

	decline := domain.GrowthInput{StartValue: 1000, EndValue: 500, StartYear: 2020, EndYear: 2021}
	rate, err = Rate(decline)
	require.NoError(t, err)
	s = Summary(decline, rate)
	assert.Contains(t, s, "Compound decline")
	assert.Contains(t, s, "over 1 year:")
	assert.Contains(t, s, "CAGR -50.00%")
}
