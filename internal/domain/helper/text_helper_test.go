package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSearchText(t *testing.T) {
	t.Run("カタカナはひらがなに折り畳まれる", func(t *testing.T) {
		assert.Equal(t, "あかし", NormalizeSearchText("アカシ"))
		assert.Equal(t, "つりすぽっと", NormalizeSearchText("ツリスポット"))
	})

	t.Run("英字は小文字化される", func(t *testing.T) {
		assert.Equal(t, "akashi port", NormalizeSearchText("Akashi PORT"))
	})

	t.Run("漢字はそのまま保持される", func(t *testing.T) {
		assert.Equal(t, "明石港", NormalizeSearchText("明石港"))
	})

	t.Run("混在文字列も正しく処理される", func(t *testing.T) {
		assert.Equal(t, "明石たこfishing", NormalizeSearchText("明石タコFishing"))
	})

	t.Run("空文字列は空文字列のまま", func(t *testing.T) {
		assert.Equal(t, "", NormalizeSearchText(""))
	})

	t.Run("折り畳み範囲外のカタカナ記号は変換されない", func(t *testing.T) {
		// 長音符(ー)はひらがなに対応がないためそのまま
		assert.Equal(t, "るあー", NormalizeSearchText("ルアー"))
	})
}

// 正規化は冪等でなければならない: normalize(normalize(s)) == normalize(s)
func TestNormalizeSearchText_Idempotence(t *testing.T) {
	inputs := []string{
		"アカシ", "あかし", "明石港", "Akashi Port", "サーフABC釣り",
		"", "ツリ スポット ナビ", "ヶ", "ァ",
	}
	for _, s := range inputs {
		once := NormalizeSearchText(s)
		twice := NormalizeSearchText(once)
		assert.Equal(t, once, twice, "入力 %q で冪等性が崩れています", s)
	}
}
