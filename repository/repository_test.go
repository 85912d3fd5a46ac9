package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"skycast.app/models"
)

func newTestRepo(t *testing.T) *CityRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.City{}))
	return NewCityRepository(db)
}

func TestCityRepository_FindByID_Missing(t *testing.T) {
	repo := newTestRepo(t)

	city, err := repo.FindByID("nowhere")

	assert.NoError(t, err)
	assert.Nil(t, city)
}

func TestCityRepository_UpsertAndFind(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Upsert(&models.City{
		CityID:    "tlv",
		NameEn:    "Tel Aviv",
		NameHe:    "תל אביב",
		CountryEn: "Israel",
		CountryHe: "ישראל",
	}))

	city, err := repo.FindByID("tlv")

	require.NoError(t, err)
	require.NotNil(t, city)
	assert.Equal(t, "Tel Aviv", city.NameEn)
	assert.Equal(t, "תל אביב", city.NameHe)

	// Upsert replaces the existing record.
	require.NoError(t, repo.Upsert(&models.City{
		CityID: "tlv", NameEn: "Tel Aviv-Yafo", NameHe: "תל אביב-יפו",
	}))

	city, err = repo.FindByID("tlv")
	require.NoError(t, err)
	require.NotNil(t, city)
	assert.Equal(t, "Tel Aviv-Yafo", city.NameEn)
}
