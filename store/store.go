// Package store provides the durable cache persistence layer: one record per
// city, overwritten on every refresh. Records never expire here; freshness is
// the service's decision, so a stale record is always available for fallback.
package store

import (
	"context"
	"time"
)

// Record is the persisted cache entry for one city.
type Record struct {
	CityID        string    `json:"city_id"`
	Payload       []byte    `json:"payload"`
	SchemaVersion int       `json:"schema_version"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Store is the cache persistence port. Load returns (nil, nil) when no record
// exists for the city.
type Store interface {
	Load(ctx context.Context, cityID string) (*Record, error)
	Save(ctx context.Context, record *Record) error
}
