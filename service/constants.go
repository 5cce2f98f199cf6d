package service

import "time"

const (
	MaxPeriods        = 500   // largest accepted endYear-startYear
	DefaultStartValue = 265.0 // market size at DefaultStartYear
	DefaultEndValue   = 1870.0
	DefaultStartYear  = 2021
	DefaultEndYear    = 2030

	// Tolerancia para comparar el valor final calculado con el objetivo
	EndpointTolerance = 1e-9

	DefaultCacheTTL = 24 * time.Hour
)
