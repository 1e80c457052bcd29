package model

import (
	domain "TsuriSpot-App/internal/domain/model"
)

// SpotSearchRequest GET /spots の検索条件
// URLクエリパラメータから組み立てられ、共有可能なURLと1:1に対応する
type SpotSearchRequest struct {
	Text       string   `form:"q"`
	Prefecture string   `form:"prefecture"`
	Area       string   `form:"area"`
	SpotType   string   `form:"type"`
	Difficulty string   `form:"difficulty"`
	SortMode   string   `form:"sort"`
	Lat        *float64 `form:"lat"`
	Lng        *float64 `form:"lng"`
	Page       int      `form:"page"`
}

// ToQuery リクエストをドメインのクエリに変換する
// 並び順未指定時は評価順をデフォルトとする（位置情報なしの
// ステートレス検索ではこれを関連度の代わりに使う）
func (r *SpotSearchRequest) ToQuery() *domain.SpotQuery {
	sortMode := r.SortMode
	if sortMode == "" {
		sortMode = domain.SortModeRating
	}
	return &domain.SpotQuery{
		Text:       r.Text,
		Prefecture: r.Prefecture,
		Area:       r.Area,
		SpotType:   r.SpotType,
		Difficulty: r.Difficulty,
		SortMode:   sortMode,
	}
}

// UserLatLng リクエストに現在地が含まれていればそれを返す
func (r *SpotSearchRequest) UserLatLng() (domain.LatLng, bool) {
	if r.Lat == nil || r.Lng == nil {
		return domain.LatLng{}, false
	}
	return domain.LatLng{Lat: *r.Lat, Lng: *r.Lng}, true
}

// SpotSearchResponse 検索結果の1ページ分のレスポンス
type SpotSearchResponse struct {
	Spots       []domain.Spot `json:"spots"`
	TotalCount  int           `json:"total_count"`
	CurrentPage int           `json:"current_page"`
	TotalPages  int           `json:"total_pages"`
	Message     string        `json:"message,omitempty"` // 0件時の案内メッセージ
}

// SpotsInBoundsResponse 境界ボックス検索のレスポンス
type SpotsInBoundsResponse struct {
	Spots []domain.Spot `json:"spots"`
	Count int           `json:"count"`
}

// QueryUpdateRequest PATCH /discovery/query の部分更新リクエスト
// nilのフィールドは変更なし、空文字列はフィルタ解除を意味する
type QueryUpdateRequest struct {
	Text         *string `json:"text"`
	Prefecture   *string `json:"prefecture"`
	Area         *string `json:"area"`
	SpotType     *string `json:"spot_type"`
	Difficulty   *string `json:"difficulty"`
	DistanceSort *bool   `json:"distance_sort"`
}

// DiscoveryResultsResponse 検索セッションの現在の派生状態
type DiscoveryResultsResponse struct {
	Page        *domain.SpotPage        `json:"page"`
	Query       *domain.SpotQuery       `json:"query"`
	Geolocation domain.GeolocationState `json:"geolocation"`
	Message     string                  `json:"message,omitempty"`
}
