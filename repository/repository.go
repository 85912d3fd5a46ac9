// Package repository implements data access layer for the application
package repository

import (
	stderrors "errors"
	"log/slog"

	"gorm.io/gorm"
	"skycast.app/errors"
	"skycast.app/models"
)

// CityRepository handles data access for the city directory used to enrich
// weather payloads with localized names.
type CityRepository struct {
	db *gorm.DB
}

// NewCityRepository creates a new repository for city directory lookups
func NewCityRepository(db *gorm.DB) *CityRepository {
	return &CityRepository{db: db}
}

// FindByID retrieves a city directory record. A missing record is not an
// error: it returns (nil, nil) and the caller applies placeholder names.
func (r *CityRepository) FindByID(cityID string) (*models.City, error) {
	var city models.City
	result := r.db.First(&city, "city_id = ?", cityID)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			slog.Debug("no directory record for city", "city_id", cityID)
			return nil, nil
		}
		slog.Error("city directory lookup failed", "city_id", cityID, "error", result.Error)
		return nil, errors.NewDirectoryLookupError("find city by id", result.Error)
	}

	return &city, nil
}

// Upsert stores or replaces a city directory record.
func (r *CityRepository) Upsert(city *models.City) error {
	result := r.db.Save(city)
	if result.Error != nil {
		slog.Error("city directory write failed", "city_id", city.CityID, "error", result.Error)
		return errors.NewDirectoryLookupError("save city record", result.Error)
	}
	return nil
}
