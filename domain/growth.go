package domain

// GrowthInput holds the two endpoints of a projection.
type GrowthInput struct {
	StartValue float64 `json:"startValue"`
	EndValue   float64 `json:"endValue"`
	StartYear  int     `json:"startYear"`
	EndYear    int     `json:"endYear"`
}

// Periods is the number of whole years between the endpoints.
func (in GrowthInput) Periods() int {
	return in.EndYear - in.StartYear
}

type GrowthPoint struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// GrowthSeries is ordered by ascending year, one point per year.
type GrowthSeries []GrowthPoint

// First returns the point for the start year.
func (s GrowthSeries) First() (GrowthPoint, bool) {
	if len(s) == 0 {
		return GrowthPoint{}, false
	}
	return s[0], true
}

// Last returns the point for the end year.
func (s GrowthSeries) Last() (GrowthPoint, bool) {
	if len(s) == 0 {
		return GrowthPoint{}, false
	}
	return s[len(s)-1], true
}

// Projection is a computed series together with the rate that produced it.
type Projection struct {
	Input   GrowthInput  `json:"input"`
	Rate    float64      `json:"rate"`
	Series  GrowthSeries `json:"series"`
	Summary string       `json:"summary,omitempty"`
}
