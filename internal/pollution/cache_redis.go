// Copyright (c) 2026 Aeris Labs. All rights reserved.

package pollution

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/aeris-labs/aeris/internal/platform/apperr"
	"github.com/aeris-labs/aeris/internal/platform/constants"
)

// RedisSummaryCache implements [SummaryCache] using Redis.
type RedisSummaryCache struct {
	client *redis.Client
}

// NewSummaryCache creates a new Redis-backed [SummaryCache].
func NewSummaryCache(client *redis.Client) *RedisSummaryCache {
	return &RedisSummaryCache{client: client}
}

func summaryKey() string {
	return constants.RedisPrefixAnalytics + "summary"
}

/*
Get retrieves the cached analytics summary.

Description: Returns apperr.NotFound on a cache miss; corrupt payloads are
also treated as misses so a bad write cannot wedge the endpoint.

Parameters:
  - context: context.Context

Returns:
  - *Summary: Cached aggregates
  - error: apperr.NotFound or connectivity errors
*/
func (cache *RedisSummaryCache) Get(context context.Context) (*Summary, error) {
	payload, err := cache.client.Get(context, summaryKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFound("Summary")
		}
		return nil, fmt.Errorf("redis_summary_get_failed: %w", err)
	}

	var summary Summary
	if err := json.Unmarshal(payload, &summary); err != nil {
		return nil, apperr.NotFound("Summary")
	}

	return &summary, nil
}

/*
Set stores the analytics summary with the configured freshness TTL.

Parameters:
  - context: context.Context
  - summary: *Summary

Returns:
  - error: Serialization or execution errors
*/
func (cache *RedisSummaryCache) Set(context context.Context, summary *Summary) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("redis_summary_marshal_failed: %w", err)
	}

	if err := cache.client.Set(context, summaryKey(), payload, constants.AnalyticsSummaryTTL).Err(); err != nil {
		return fmt.Errorf("redis_summary_set_failed: %w", err)
	}

	return nil
}

/*
Invalidate drops the cached summary after readings change.

Parameters:
  - context: context.Context

Returns:
  - error: Execution errors
*/
func (cache *RedisSummaryCache) Invalidate(context context.Context) error {
	if err := cache.client.Del(context, summaryKey()).Err(); err != nil {
		return fmt.Errorf("redis_summary_invalidate_failed: %w", err)
	}
	return nil
}
