package service

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strconv"
	"time"

	"growth-projector/domain"
	"growth-projector/repository"
)

type GrowthService struct {
	cache  repository.CacheRepository
	ttl    time.Duration
	logger *slog.Logger
}

type GrowthOption func(*GrowthService)

func WithCacheTTL(ttl time.Duration) GrowthOption {
	return func(s *GrowthService) {
		s.ttl = ttl
	}
}

func WithLogger(logger *slog.Logger) GrowthOption {
	return func(s *GrowthService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewGrowthService creates a GrowthService. A nil cache disables caching.
func NewGrowthService(cache repository.CacheRepository, opts ...GrowthOption) *GrowthService {
	s := &GrowthService{
		cache:  cache,
		ttl:    DefaultCacheTTL,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Project computes the projection for input, serving repeated inputs from
// the cache. Cache failures are logged and never fail the call.
func (s *GrowthService) Project(
	ctx context.Context,
	input domain.GrowthInput,
) (domain.Projection, error) {
	key := cacheKey(input)

	if cached, ok := s.lookup(ctx, key); ok {
		return cached, nil
	}

	rate, err := Rate(input)
	if err != nil {
		return domain.Projection{}, err
	}
	series, err := Project(input)
	if err != nil {
		return domain.Projection{}, err
	}

	result := domain.Projection{
		Input:   input,
		Rate:    rate,
		Series:  series,
		Summary: Summary(input, rate),
	}

	s.store(ctx, key, result)

	s.logger.Debug("projection computed",
		slog.String("key", key),
		slog.Int("points", len(series)),
		slog.Float64("rate", rate),
	)
	return result, nil
}

func (s *GrowthService) lookup(ctx context.Context, key string) (domain.Projection, bool) {
	if s.cache == nil {
		return domain.Projection{}, false
	}
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("projection cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		return domain.Projection{}, false
	}
	if !ok {
		return domain.Projection{}, false
	}
	var cached domain.Projection
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		s.logger.Warn("discarding malformed cache entry", slog.String("key", key), slog.String("error", err.Error()))
		return domain.Projection{}, false
	}
	return cached, true
}

func (s *GrowthService) store(ctx context.Context, key string, result domain.Projection) {
	if s.cache == nil {
		return
	}
	encoded, err := json.Marshal(result)
	if err != nil {
		s.logger.Warn("failed to encode projection", slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	if err := s.cache.Set(ctx, key, string(encoded), s.ttl); err != nil {
		s.logger.Warn("projection cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func cacheKey(input domain.GrowthInput) string {
	return "projection:" +
		strconv.FormatFloat(input.StartValue, 'g', -1, 64) + ":" +
		strconv.FormatFloat(input.EndValue, 'g', -1, 64) + ":" +
		strconv.Itoa(input.StartYear) + ":" +
		strconv.Itoa(input.EndYear)
}
