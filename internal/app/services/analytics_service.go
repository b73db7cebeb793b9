package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/yigit/alumnibridge/internal/app/models"
	"github.com/yigit/alumnibridge/internal/db"
	"github.com/yigit/alumnibridge/internal/pkg/logger"
)

const (
	analyticsCacheKey = "analytics:snapshot"
	analyticsCacheTTL = 60 * time.Second
)

// AnalyticsService serves the admin dashboard snapshot, optionally
// through a short-lived redis cache
type AnalyticsService struct {
	analyticsRepo AnalyticsRepository
	cache         *db.Redis
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(analyticsRepo AnalyticsRepository, cache *db.Redis) *AnalyticsService {
	return &AnalyticsService{
		analyticsRepo: analyticsRepo,
		cache:         cache,
	}
}

// Get returns the analytics snapshot. Cache failures fall through to
// the database so the dashboard never breaks on a redis outage.
func (s *AnalyticsService) Get(ctx context.Context) (*models.AnalyticsData, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	data, err := s.analyticsRepo.Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect analytics: %w", err)
	}

	s.toCache(ctx, data)

	return data, nil
}

func (s *AnalyticsService) fromCache(ctx context.Context) *models.AnalyticsData {
	if s.cache == nil || s.cache.Client == nil {
		return nil
	}

	raw, err := s.cache.Client.Get(ctx, analyticsCacheKey).Bytes()
	if err != nil {
		return nil
	}

	var data models.AnalyticsData
	if err := json.Unmarshal(raw, &data); err != nil {
		logger.Warn().Err(err).Msg("Discarding unreadable analytics cache entry")
		return nil
	}

	return &data
}

func (s *AnalyticsService) toCache(ctx context.Context, data *models.AnalyticsData) {
	if s.cache == nil || s.cache.Client == nil {
		return
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return
	}

	if err := s.cache.Client.Set(ctx, analyticsCacheKey, raw, analyticsCacheTTL).Err(); err != nil {
		logger.Warn().Err(err).Msg("Failed to cache analytics snapshot")
	}
}
