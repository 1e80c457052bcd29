package repository

import (
	"github.com/paulmach/orb"

	"TsuriSpot-App/internal/domain/model"
)

// GeoPoint PostGIS POINT 型の JSON 表現
type GeoPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// LocationToGeoPoint model.Location を PostGIS POINT 形式に変換
func LocationToGeoPoint(location *model.Location) *GeoPoint {
	if location == nil {
		return nil
	}

	point := orb.Point{location.Longitude, location.Latitude}

	return &GeoPoint{
		Type:        "Point",
		Coordinates: []float64{point.Lon(), point.Lat()},
	}
}

// GeoPointToLocation PostGIS POINT を model.Location に変換
func GeoPointToLocation(geoPoint *GeoPoint) *model.Location {
	if geoPoint == nil || len(geoPoint.Coordinates) < 2 {
		return nil
	}

	point := orb.Point{geoPoint.Coordinates[0], geoPoint.Coordinates[1]}

	return &model.Location{
		Latitude:  point.Lat(),
		Longitude: point.Lon(),
	}
}

// SpotToOrbPoint スポットの位置を orb.Point に変換
func SpotToOrbPoint(spot *model.Spot) orb.Point {
	latLng := spot.ToLatLng()
	return orb.Point{latLng.Lng, latLng.Lat}
}

// BoundFromCorners 左下・右上の座標から境界ボックスを作成
// 地図表示用の範囲検索（bbox）で使う
func BoundFromCorners(minLng, minLat, maxLng, maxLat float64) orb.Bound {
	return orb.Bound{
		Min: orb.Point{minLng, minLat},
		Max: orb.Point{maxLng, maxLat},
	}
}

// FilterSpotsInBound 境界ボックス内のスポットのみを抽出
func FilterSpotsInBound(spots []model.Spot, bound orb.Bound) []model.Spot {
	filtered := make([]model.Spot, 0, len(spots))
	for i := range spots {
		if bound.Contains(SpotToOrbPoint(&spots[i])) {
			filtered = append(filtered, spots[i])
		}
	}
	return filtered
}
