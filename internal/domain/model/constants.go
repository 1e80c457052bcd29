package model

// SpotTypeConstants スポット種別の定数
const (
	SpotTypeBreakwater  = "breakwater"   // 堤防
	SpotTypeFishingPort = "fishing_port" // 漁港
	SpotTypeSurf        = "surf"         // サーフ
	SpotTypeRocky       = "rocky"        // 磯
	SpotTypeParkPier    = "park_pier"    // 海釣り公園・桟橋
	SpotTypeRiver       = "river"        // 河川・河口
)

// DifficultyConstants 難易度の定数
const (
	DifficultyBeginner     = "beginner"     // 初心者向け
	DifficultyIntermediate = "intermediate" // 中級者向け
	DifficultyAdvanced     = "advanced"     // 上級者向け
)

// SortModeConstants 検索結果の並び順の定数
const (
	SortModeNone     = ""         // 登録順のまま
	SortModeDistance = "distance" // 現在地から近い順（位置情報の取得が前提）
	SortModeRating   = "rating"   // 評価が高い順（位置情報がないときの代替）
)

// SpotTypeNameMap スポット種別IDから日本語名へのマッピング
var SpotTypeNameMap = map[string]string{
	SpotTypeBreakwater:  "堤防",
	SpotTypeFishingPort: "漁港",
	SpotTypeSurf:        "サーフ",
	SpotTypeRocky:       "磯",
	SpotTypeParkPier:    "海釣り公園",
	SpotTypeRiver:       "河川・河口",
}

// DifficultyNameMap 難易度IDから日本語名へのマッピング
var DifficultyNameMap = map[string]string{
	DifficultyBeginner:     "初心者向け",
	DifficultyIntermediate: "中級者向け",
	DifficultyAdvanced:     "上級者向け",
}

// PrefectureAreaMap 都道府県ごとの選択可能なエリア一覧
// エリアの絞り込みは都道府県が選択されているときのみ意味を持つ
var PrefectureAreaMap = map[string][]string{
	"兵庫県":  {"神戸・明石", "姫路・播磨", "淡路島", "但馬"},
	"大阪府":  {"大阪市内", "泉南", "北摂"},
	"和歌山県": {"和歌山市周辺", "有田・御坊", "南紀"},
	"沖縄県":  {"那覇周辺", "本島北部", "離島"},
}

// GetSpotTypeJapaneseName スポット種別IDから日本語名を取得する
func GetSpotTypeJapaneseName(spotType string) string {
	if name, ok := SpotTypeNameMap[spotType]; ok {
		return name
	}
	return spotType // デフォルトはそのまま返す
}

// GetDifficultyJapaneseName 難易度IDから日本語名を取得する
func GetDifficultyJapaneseName(difficulty string) string {
	if name, ok := DifficultyNameMap[difficulty]; ok {
		return name
	}
	return difficulty
}

// IsAreaInPrefecture 指定エリアが都道府県に属するかチェック
// 都道府県を切り替えたときに古いエリア選択をリセットする判定に使う
func IsAreaInPrefecture(prefecture, area string) bool {
	areas, ok := PrefectureAreaMap[prefecture]
	if !ok {
		return false
	}
	for _, a := range areas {
		if a == area {
			return true
		}
	}
	return false
}
