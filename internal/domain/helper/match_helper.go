package helper

import "strings"

// MatchesQuery フリーテキストクエリが対象フィールド群にマッチするか判定する
// スコアは持たず真偽のみを返す。比較は NormalizeSearchText により
// カタカナ・大文字小文字の表記ゆれを吸収する
//
// 判定ルール:
//   - クエリが空白のみの場合は常にtrue（呼び出し側は空クエリで全件扱い）
//   - 単一トークン: 正規化クエリがフィールドに含まれる、または
//     フィールドがクエリに含まれれば一致（双方向の部分一致。短い通称と
//     長い正式名称を相互にマッチさせるための仕様で、1文字クエリの
//     マッチ範囲が広くなる再現率優先のトレードオフを含む）
//   - 複数トークン: 空でないフィールドをスペース結合したコーパスに
//     全トークンが含まれる場合のみ一致（AND条件）
//
// 空のフィールドは比較対象から除外される
func MatchesQuery(query string, fields ...string) bool {
	tokens := strings.Fields(NormalizeSearchText(query))
	if len(tokens) == 0 {
		return true
	}

	var normalized []string
	for _, f := range fields {
		if f == "" {
			continue
		}
		normalized = append(normalized, NormalizeSearchText(f))
	}

	if len(tokens) == 1 {
		token := tokens[0]
		for _, field := range normalized {
			if strings.Contains(field, token) || strings.Contains(token, field) {
				return true
			}
		}
		return false
	}

	// 複数トークンは結合コーパスへのAND条件
	corpus := strings.Join(normalized, " ")
	for _, token := range tokens {
		if !strings.Contains(corpus, token) {
			return false
		}
	}
	return true
}
