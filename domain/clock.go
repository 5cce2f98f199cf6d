package domain

import "time"

type ClockReading struct {
	TimeZone   string    `json:"timeZone"`
	LocalTime  time.Time `json:"localTime"`
	Hour       int       `json:"hour"`
	Period     string    `json:"period"`
	NextPeriod string    `json:"nextPeriod"`
	Color      string    `json:"color"`
	Icon       string    `json:"icon"`
}
