package store

import (
	"context"
	stderrors "errors"
	"log/slog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"skycast.app/errors"
	"skycast.app/models"
)

// GormStore persists cache records in a relational database via gorm.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a database-backed cache store.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Load reads the cache record for a city regardless of its age.
func (s *GormStore) Load(ctx context.Context, cityID string) (*Record, error) {
	var row models.WeatherCacheRecord
	result := s.db.WithContext(ctx).First(&row, "city_id = ?", cityID)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("cache record read failed", "city_id", cityID, "error", result.Error)
		return nil, errors.NewCacheStoreError("read cache record", result.Error)
	}

	return &Record{
		CityID:        row.CityID,
		Payload:       row.Payload,
		SchemaVersion: row.SchemaVersion,
		UpdatedAt:     row.UpdatedAt,
	}, nil
}

// Save upserts the cache record for a city; the previous payload is always
// overwritten, never appended to.
func (s *GormStore) Save(ctx context.Context, record *Record) error {
	row := models.WeatherCacheRecord{
		CityID:        record.CityID,
		Payload:       record.Payload,
		SchemaVersion: record.SchemaVersion,
		UpdatedAt:     record.UpdatedAt,
	}

	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "city_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "schema_version", "updated_at"}),
	}).Create(&row)
	if result.Error != nil {
		slog.Error("cache record write failed", "city_id", record.CityID, "error", result.Error)
		return errors.NewCacheStoreError("write cache record", result.Error)
	}
	return nil
}
