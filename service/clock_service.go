package service

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // zone database for hosts without one

	"growth-projector/clock"
	"growth-projector/domain"
)

type ClockService struct {
	now func() time.Time
}

func NewClockService() *ClockService {
	return &ClockService{now: time.Now}
}

// NewClockServiceAt creates a ClockService reading time from now.
func NewClockServiceAt(now func() time.Time) *ClockService {
	return &ClockService{now: now}
}

// Read resolves an IANA time zone name and classifies its current hour.
func (s *ClockService) Read(timeZone string) (domain.ClockReading, error) {
	name := strings.TrimSpace(timeZone)
	if name == "" {
		return domain.ClockReading{}, fmt.Errorf("time zone is required")
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return domain.ClockReading{}, fmt.Errorf("unknown time zone %q: %w", name, err)
	}

	local := s.now().In(loc)
	period := clock.FromHour(local.Hour())

	return domain.ClockReading{
		TimeZone:   loc.String(),
		LocalTime:  local,
		Hour:       local.Hour(),
		Period:     period.String(),
		NextPeriod: period.Next().String(),
		Color:      period.Color(),
		Icon:       string(period.Icon()),
	}, nil
}
