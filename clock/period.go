// Package clock classifies hours of the day into eight named periods.
//
// The periods form a cycle: each one covers three hours and the successor of
// LateNight is EarlyMorning.
package clock

import "fmt"

type TimePeriod int

const (
	EarlyMorning              TimePeriod = iota // 05:00-08:00
	MidMorning                                  // 08:00-11:00
	LateMorningEarlyAfternoon                   // 11:00-14:00
	MidAfternoon                                // 14:00-17:00
	LateAfternoonEarlyEvening                   // 17:00-20:00
	Evening                                     // 20:00-23:00
	EarlyNight                                  // 23:00-02:00
	LateNight                                   // 02:00-05:00

	periodCount = 8
)

// firstHour is the hour at which EarlyMorning begins.
const firstHour = 5

const hoursPerPeriod = 3

var periodNames = [periodCount]string{
	"EarlyMorning",
	"MidMorning",
	"LateMorningEarlyAfternoon",
	"MidAfternoon",
	"LateAfternoonEarlyEvening",
	"Evening",
	"EarlyNight",
	"LateNight",
}

var periodColors = [periodCount]string{
	"#A0D8EF",
	"#fffacd",
	"#ffd700",
	"#f4a460",
	"#b22222",
	"#4169E1",
	"#000080",
	"#2F4F4F",
}

// Icon names a weather glyph for a period.
type Icon string

const (
	IconPartlySunny         Icon = "partly-sunny"
	IconSunny               Icon = "sunny"
	IconPartlySunnyMirrored Icon = "partly-sunny-mirrored"
	IconNight               Icon = "night"
)

var periodIcons = [periodCount]Icon{
	IconPartlySunny,
	IconSunny,
	IconSunny,
	IconPartlySunnyMirrored,
	IconPartlySunnyMirrored,
	IconNight,
	IconNight,
	IconPartlySunny,
}

// All returns every period in cyclic order starting at EarlyMorning.
func All() []TimePeriod {
	out := make([]TimePeriod, periodCount)
	for i := range out {
		out[i] = TimePeriod(i)
	}
	return out
}

// FromHour classifies an hour on a 24h clock. Hours outside [0,24), such as
// 26 for 2 a.m. of the following day, are reduced modulo 24.
func FromHour(hour int) TimePeriod {
	h := ((hour % 24) + 24) % 24
	offset := (h - firstHour + 24) % 24
	return TimePeriod(offset / hoursPerPeriod)
}

// Parse resolves a period by name.
func Parse(name string) (TimePeriod, error) {
	for i, n := range periodNames {
		if n == name {
			return TimePeriod(i), nil
		}
	}
	return 0, fmt.Errorf("unknown time period %q", name)
}

func (p TimePeriod) Valid() bool {
	return p >= 0 && p < periodCount
}

// Next returns the following period, wrapping LateNight to EarlyMorning.
func (p TimePeriod) Next() TimePeriod {
	return TimePeriod((int(p) + 1) % periodCount)
}

// StartHour is the first hour (0-23) covered by the period.
func (p TimePeriod) StartHour() int {
	return (firstHour + int(p)*hoursPerPeriod) % 24
}

func (p TimePeriod) String() string {
	if !p.Valid() {
		return fmt.Sprintf("TimePeriod(%d)", int(p))
	}
	return periodNames[p]
}

// Color is the clock face color for the period.
func (p TimePeriod) Color() string {
	if !p.Valid() {
		return ""
	}
	return periodColors[p]
}

func (p TimePeriod) Icon() Icon {
	if !p.Valid() {
		return ""
	}
	return periodIcons[p]
}

func (p TimePeriod) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid time period %d", int(p))
	}
	return []byte(p.String()), nil
}

func (p *TimePeriod) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
