package helper

import "strings"

// カタカナからひらがなへの折り畳み範囲
// U+30A1(ァ)〜U+30F6(ヶ) はひらがな U+3041(ぁ)〜U+3096(ゖ) と
// コードポイントが 0x60 ずれて対応している
const (
	katakanaFirst = 'ァ'
	katakanaLast  = 'ヶ'
	kanaOffset    = 0x60
)

// NormalizeSearchText 検索比較用の正規化文字列を生成する
// カタカナをひらがなへ折り畳んだうえで小文字化する。純粋関数で、
// 空文字列は空文字列のまま返る
func NormalizeSearchText(s string) string {
	folded := strings.Map(func(r rune) rune {
		if r >= katakanaFirst && r <= katakanaLast {
			return r - kanaOffset
		}
		return r
	}, s)
	return strings.ToLower(folded)
}
