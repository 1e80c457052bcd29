package helper

import (
	"math"

	"TsuriSpot-App/internal/domain/model"
)

const earthRadiusKm = 6371.0

// HaversineDistance は2地点間の距離を計算する (km)
// 球面近似のため入力の範囲検証は行わない。対称で、同一地点間は0になる
func HaversineDistance(p1, p2 model.LatLng) float64 {
	lat1 := p1.Lat * math.Pi / 180
	lng1 := p1.Lng * math.Pi / 180
	lat2 := p2.Lat * math.Pi / 180
	lng2 := p2.Lng * math.Pi / 180
	dLat := lat2 - lat1
	dLng := lng2 - lng1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// HaversineDistanceSpot は現在地からスポットまでの距離を計算する (km)
func HaversineDistanceSpot(origin model.LatLng, spot *model.Spot) float64 {
	return HaversineDistance(origin, spot.ToLatLng())
}

// BuildDistanceMap はスポットIDから現在地までの距離のマッピングを作成する
// キー入力（スポット一覧と現在地）が変わらない限り再計算しないこと。
// 入力1回ごとのクエリ変更ではこのマップを使い回す
func BuildDistanceMap(spots []model.Spot, origin model.LatLng) model.DistanceMap {
	distances := make(model.DistanceMap, len(spots))
	for i := range spots {
		distances[spots[i].ID] = HaversineDistanceSpot(origin, &spots[i])
	}
	return distances
}
