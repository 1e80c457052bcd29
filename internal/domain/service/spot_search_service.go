package service

import (
	"sort"

	"TsuriSpot-App/internal/domain/helper"
	"TsuriSpot-App/internal/domain/model"
)

// SpotSearchService はスポット検索のフィルタ・ソートパイプラインを提供する
// (全スポット, クエリ, 距離マップ) の純粋関数として動作し、同じ入力には
// 常に同じ順序の結果を返す。入力が変わるたびに全体を再計算する
type SpotSearchService struct{}

// NewSpotSearchService は新しいSpotSearchServiceインスタンスを作成する
func NewSpotSearchService() *SpotSearchService {
	return &SpotSearchService{}
}

// Search はフィルタ・ソートを固定の順序で適用し、順序付きの全結果を返す
// 1. フリーテキストフィルタ（名前・都道府県・エリア名・住所）
// 2. カテゴリフィルタ（都道府県・エリア・種別・難易度の完全一致）
// 3. 並び替え（距離ソートが有効かつ距離マップがあれば距離昇順、
//    評価ソートなら評価降順、それ以外は登録順を維持）
// ページングはここでは行わない
func (s *SpotSearchService) Search(spots []model.Spot, query *model.SpotQuery, distances model.DistanceMap) []model.Spot {
	filtered := s.filterByText(spots, query.Text)
	filtered = s.filterByConditions(filtered, query)
	return s.sortSpots(filtered, query.SortMode, distances)
}

// filterByText フリーテキストでスポットを絞り込む
// 空クエリは全件一致として扱う
func (s *SpotSearchService) filterByText(spots []model.Spot, text string) []model.Spot {
	if text == "" {
		return spots
	}
	filtered := make([]model.Spot, 0, len(spots))
	for _, spot := range spots {
		if helper.MatchesQuery(text, spot.SearchFields()...) {
			filtered = append(filtered, spot)
		}
	}
	return filtered
}

// filterByConditions カテゴリ条件でスポットを絞り込む
// 設定されている条件のみを完全一致で適用する（あいまい一致はしない）
func (s *SpotSearchService) filterByConditions(spots []model.Spot, query *model.SpotQuery) []model.Spot {
	filtered := make([]model.Spot, 0, len(spots))
	for _, spot := range spots {
		if query.Prefecture != "" && spot.Prefecture != query.Prefecture {
			continue
		}
		if query.Area != "" && spot.AreaName != query.Area {
			continue
		}
		if query.SpotType != "" && spot.SpotType != query.SpotType {
			continue
		}
		if query.Difficulty != "" && spot.Difficulty != query.Difficulty {
			continue
		}
		filtered = append(filtered, spot)
	}
	return filtered
}

// sortSpots 指定の並び順でスポットを並び替える
// 同順位は元の並びを保つ必要があるため安定ソートを使う。
// 距離ソートが要求されても距離マップがない場合は並び替えずに返す
// （位置情報取得失敗時の縮退動作）
func (s *SpotSearchService) sortSpots(spots []model.Spot, sortMode string, distances model.DistanceMap) []model.Spot {
	sorted := make([]model.Spot, len(spots))
	copy(sorted, spots)

	switch sortMode {
	case model.SortModeDistance:
		if distances == nil {
			return sorted
		}
		sort.SliceStable(sorted, func(i, j int) bool {
			return distances[sorted[i].ID] < distances[sorted[j].ID]
		})
	case model.SortModeRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating > sorted[j].Rating
		})
	}
	return sorted
}
