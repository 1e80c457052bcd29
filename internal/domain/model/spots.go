package model

// LatLng 緯度経度を表す基本的な型（距離計算などで使用）
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Spot 釣りスポットを表すモデル
// スポットデータは起動時に一度だけ読み込まれ、検索エンジンは一切変更しない
type Spot struct {
	ID           string    `json:"id" db:"id"`                         // ユニークなスポットID
	Slug         string    `json:"slug" db:"slug"`                     // URL用スラッグ
	Name         string    `json:"name" db:"name"`                     // スポット名
	Prefecture   string    `json:"prefecture" db:"prefecture"`         // 都道府県
	AreaName     string    `json:"area_name" db:"area_name"`           // エリア名（都道府県内の地域）
	Address      string    `json:"address" db:"address"`               // 住所（フリーテキスト検索対象）
	SpotType     string    `json:"spot_type" db:"spot_type"`           // スポット種別（堤防・漁港など）
	Difficulty   string    `json:"difficulty" db:"difficulty"`         // 難易度
	HasParking   bool      `json:"has_parking" db:"has_parking"`       // 駐車場の有無
	HasToilet    bool      `json:"has_toilet" db:"has_toilet"`         // トイレの有無
	IsFreeEntry  bool      `json:"is_free_entry" db:"is_free_entry"`   // 入場無料かどうか
	HasRentalRod bool      `json:"has_rental_rod" db:"has_rental_rod"` // レンタル竿の有無
	Rating       float64   `json:"rating" db:"rating"`                 // 評価値
	Location     *Geometry `json:"location" db:"location"`             // 位置情報（PostGIS GEOMETRY型）
}

// ToLatLng スポットの位置情報をLatLng型に変換
func (s *Spot) ToLatLng() LatLng {
	if s.Location != nil && len(s.Location.Coordinates) >= 2 {
		return LatLng{
			Lat: s.Location.Coordinates[1], // latitude
			Lng: s.Location.Coordinates[0], // longitude
		}
	}
	return LatLng{}
}

// SearchFields フリーテキスト検索の対象となるフィールド一覧を返す
func (s *Spot) SearchFields() []string {
	return []string{s.Name, s.Prefecture, s.AreaName, s.Address}
}

// Geometry PostGIS GEOMETRY型に対応する構造体
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"` // [longitude, latitude]
}

type Location struct {
	Latitude  float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"required,min=-180,max=180"`
}

// ToLatLng Location を LatLng 型に変換
func (l *Location) ToLatLng() LatLng {
	return LatLng{Lat: l.Latitude, Lng: l.Longitude}
}

// ToGeometry Location を PostGIS GEOMETRY 型に変換
func (l *Location) ToGeometry() *Geometry {
	return &Geometry{
		Type:        "Point",
		Coordinates: []float64{l.Longitude, l.Latitude},
	}
}

// FromGeometry PostGIS GEOMETRY 型から Location に変換
func (l *Location) FromGeometry(g *Geometry) {
	if g != nil && len(g.Coordinates) >= 2 {
		l.Longitude = g.Coordinates[0]
		l.Latitude = g.Coordinates[1]
	}
}

// DistanceMap スポットIDから現在地までの距離(km)へのマッピング
// UserLocation が存在するときのみ作られる派生データで、
// (スポット一覧, 現在地) の組ごとに一度だけ計算して使い回す
type DistanceMap map[string]float64

// SpotPage フィルタ・ソート済みコレクションの1ページ分のスライス
// 状態として保持せず、関連する状態が変わるたびに丸ごと再計算される
type SpotPage struct {
	Spots       []Spot `json:"spots"`
	TotalCount  int    `json:"total_count"`
	CurrentPage int    `json:"current_page"`
	TotalPages  int    `json:"total_pages"`
	PageSize    int    `json:"page_size"`
}
