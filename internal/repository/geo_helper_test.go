package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"TsuriSpot-App/internal/domain/model"
)

func TestLocationGeoPointConversion(t *testing.T) {
	t.Run("LocationとGeoPointの相互変換", func(t *testing.T) {
		location := &model.Location{Latitude: 34.6, Longitude: 135.0}

		geoPoint := LocationToGeoPoint(location)
		assert.Equal(t, "Point", geoPoint.Type)
		assert.Equal(t, []float64{135.0, 34.6}, geoPoint.Coordinates)

		back := GeoPointToLocation(geoPoint)
		assert.Equal(t, location.Latitude, back.Latitude)
		assert.Equal(t, location.Longitude, back.Longitude)
	})

	t.Run("nilはnilのまま", func(t *testing.T) {
		assert.Nil(t, LocationToGeoPoint(nil))
		assert.Nil(t, GeoPointToLocation(nil))
	})

	t.Run("座標が足りないGeoPointはnil", func(t *testing.T) {
		assert.Nil(t, GeoPointToLocation(&GeoPoint{Type: "Point", Coordinates: []float64{135.0}}))
	})
}

func TestFilterSpotsInBound(t *testing.T) {
	inside := model.Location{Latitude: 34.6, Longitude: 135.0}
	outside := model.Location{Latitude: 26.2, Longitude: 127.7}
	spots := []model.Spot{
		{ID: "in", Location: inside.ToGeometry()},
		{ID: "out", Location: outside.ToGeometry()},
	}

	bound := BoundFromCorners(134.0, 34.0, 136.0, 35.0)
	filtered := FilterSpotsInBound(spots, bound)

	assert.Len(t, filtered, 1)
	assert.Equal(t, "in", filtered[0].ID)
}

func TestInMemorySpotsRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemorySpotsRepository(DefaultSpots())

	t.Run("GetAllはコピーを返す", func(t *testing.T) {
		first, err := repo.GetAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, first, 10)

		// 呼び出し側の変更が元データに影響しない
		first[0].Name = "書き換え"
		second, err := repo.GetAll(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "明石港", second[0].Name)
	})

	t.Run("GetByPrefectureで絞り込める", func(t *testing.T) {
		spots, err := repo.GetByPrefecture(ctx, "兵庫県")
		assert.NoError(t, err)
		for _, s := range spots {
			assert.Equal(t, "兵庫県", s.Prefecture)
		}
		assert.Len(t, spots, 4)
	})
}
