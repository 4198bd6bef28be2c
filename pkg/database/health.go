package database

import (
	"context"
	"time"
)

// PoolHealth is the health endpoint's view of the database: reachability
// plus pool pressure, durations reported in milliseconds.
type PoolHealth struct {
	Status          string `json:"status"`
	ResponseTime    int64  `json:"response_time_ms"`
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Idle            int    `json:"idle"`
	WaitCount       int64  `json:"wait_count"`
	WaitDuration    int64  `json:"wait_duration_ms"`
	MaxOpenConns    int    `json:"max_open_conns"`
}

// Health pings the database and reports pool statistics. The error return
// carries the ping failure; the PoolHealth is populated either way so
// callers can serve it with a 503.
func (c *Client) Health(ctx context.Context) (*PoolHealth, error) {
	start := time.Now()
	if err := c.db.PingContext(ctx); err != nil {
		return &PoolHealth{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).Milliseconds(),
		}, err
	}

	stats := c.db.Stats()
	return &PoolHealth{
		Status:          "healthy",
		ResponseTime:    time.Since(start).Milliseconds(),
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
		WaitCount:       stats.WaitCount,
		WaitDuration:    stats.WaitDuration.Milliseconds(),
		MaxOpenConns:    stats.MaxOpenConnections,
	}, nil
}
