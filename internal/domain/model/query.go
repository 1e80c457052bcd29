package model

// SpotQuery 検索エンジンへのユーザー入力を表すモデル
// コンポーネントのマウント時に空の状態で作られ、ユーザー操作のたびに
// 更新される。セッションを越えて永続化されることはない
type SpotQuery struct {
	Text       string `json:"text"`       // フリーテキスト検索文字列
	Prefecture string `json:"prefecture"` // 都道府県（空文字は未選択）
	Area       string `json:"area"`       // エリア（都道府県選択時のみ有効）
	SpotType   string `json:"spot_type"`  // スポット種別
	Difficulty string `json:"difficulty"` // 難易度
	SortMode   string `json:"sort_mode"`  // 並び順（SortMode定数）
}

// NewSpotQuery デフォルト状態（全フィルタ未設定）のクエリを作成
func NewSpotQuery() *SpotQuery {
	return &SpotQuery{}
}

// Clear 全フィルタをデフォルト状態に戻す
func (q *SpotQuery) Clear() {
	*q = SpotQuery{}
}

// HasConditions なんらかのフィルタ条件が設定されているかチェック
// 「条件なしで0件」と「条件が厳しすぎて0件」のメッセージ出し分けに使う
func (q *SpotQuery) HasConditions() bool {
	return q.Text != "" || q.Prefecture != "" || q.Area != "" ||
		q.SpotType != "" || q.Difficulty != ""
}
