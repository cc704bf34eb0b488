// File: services/catalog/catalog.go
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"estateconnect/models"
	"estateconnect/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	searchCachePrefix = "catalog:"
	searchCacheTTL    = 2 * time.Minute
)

// Search applies the criteria to the active listing collection. Results are
// cached per criteria; the cache degrades silently to a direct query.
func (s *DefaultCatalogService) Search(criteria models.SearchCriteria) (*SearchResult, error) {
	criteria.Normalize()
	cacheKey := searchCachePrefix + criteria.CacheKey()

	if s.Cache != nil {
		ctx := context.Background()
		if data, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var cached SearchResult
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	records, err := s.Repo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to load listings: %w", err)
	}

	ordered := Apply(records, criteria)
	result := &SearchResult{
		Listings: Paginate(ordered, criteria.Page, criteria.PerPage),
		Total:    len(ordered),
		Page:     criteria.Page,
		PerPage:  criteria.PerPage,
		Criteria: criteria,
	}

	if s.Cache != nil {
		if data, err := json.Marshal(result); err == nil {
			ctx := context.Background()
			if err := s.Cache.Set(ctx, cacheKey, data, searchCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("Search: failed to cache result", zap.Error(err))
			}
		}
	}
	return result, nil
}

// GetByID fetches a single listing; nil when absent.
func (s *DefaultCatalogService) GetByID(id int64) (*models.Listing, error) {
	return s.Repo.GetByID(id)
}

// GetByCreator fetches the listings a user has submitted.
func (s *DefaultCatalogService) GetByCreator(userID string) ([]models.Listing, error) {
	return s.Repo.GetByCreator(userID)
}

// CreateListing validates and persists a new listing in pending status, then
// drops any cached search pages.
func (s *DefaultCatalogService) CreateListing(listing *models.Listing) error {
	if listing.Status == "" {
		listing.Status = models.StatusPending
	}
	if err := listing.Validate(); err != nil {
		return err
	}
	if err := s.Repo.Create(listing); err != nil {
		return err
	}
	s.invalidateCache()
	return nil
}

// ApproveListing moves a listing from pending to active.
func (s *DefaultCatalogService) ApproveListing(id int64) error {
	if err := s.Repo.UpdateStatus(id, models.StatusActive); err != nil {
		return err
	}
	s.invalidateCache()
	return nil
}

// Stats returns listing counts by kind plus pending-review count.
func (s *DefaultCatalogService) Stats() (map[models.ListingKind]int64, int64, error) {
	byKind, err := s.Repo.CountByKind()
	if err != nil {
		return nil, 0, err
	}
	pending, err := s.Repo.CountPending()
	if err != nil {
		return nil, 0, err
	}
	return byKind, pending, nil
}

func (s *DefaultCatalogService) invalidateCache() {
	if s.Cache == nil {
		return
	}
	ctx := context.Background()
	iter := s.Cache.Scan(ctx, 0, searchCachePrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil && err != redis.Nil {
		utils.GetLogger().Warn("invalidateCache: scan failed", zap.Error(err))
		return
	}
	if len(keys) > 0 {
		if err := s.Cache.Del(ctx, keys...).Err(); err != nil {
			utils.GetLogger().Warn("invalidateCache: delete failed", zap.Error(err))
		}
	}
}
