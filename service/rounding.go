package service

import "math"

// RoundTo2Decimals redondea un float64 a 2 decimales
func RoundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// CeilToOneDecimal rounds up to one decimal place, the precision used when
// a series is shown as a table.
func CeilToOneDecimal(value float64) float64 {
	return math.Ceil(value*10) / 10
}
