package service

import (
	"fmt"
	"testing"

	"TsuriSpot-App/internal/domain/model"
)

func makeSpots(n int) []model.Spot {
	spots := make([]model.Spot, n)
	for i := range spots {
		spots[i] = model.Spot{ID: fmt.Sprintf("spot-%03d", i)}
	}
	return spots
}

func TestPaginator_TotalPages(t *testing.T) {
	p := NewPaginator(10)

	cases := []struct {
		count int
		want  int
	}{
		{0, 1}, // 0件でも最低1ページ
		{1, 1},
		{10, 1},
		{11, 2},
		{100, 10},
		{101, 11},
	}
	for _, c := range cases {
		if got := p.TotalPages(c.count); got != c.want {
			t.Errorf("TotalPages(%d) = %d, want %d", c.count, got, c.want)
		}
	}
}

func TestPaginator_Paginate(t *testing.T) {
	t.Run("1ページ目は先頭からページサイズ分", func(t *testing.T) {
		p := NewPaginator(10)
		page := p.Paginate(makeSpots(25))
		if len(page.Spots) != 10 || page.Spots[0].ID != "spot-000" {
			t.Errorf("1ページ目のスライスが想定外です: %d件", len(page.Spots))
		}
		if page.TotalPages != 3 || page.TotalCount != 25 || page.CurrentPage != 1 {
			t.Errorf("ページ情報が想定外です: %+v", page)
		}
	})

	t.Run("最終ページは端数のみ", func(t *testing.T) {
		p := NewPaginator(10)
		p.SetPage(3)
		page := p.Paginate(makeSpots(25))
		if len(page.Spots) != 5 || page.Spots[0].ID != "spot-020" {
			t.Errorf("最終ページのスライスが想定外です: %d件", len(page.Spots))
		}
	})

	t.Run("範囲外のページ番号はクランプされる", func(t *testing.T) {
		p := NewPaginator(10)
		p.SetPage(99)
		page := p.Paginate(makeSpots(25))
		if page.CurrentPage != 3 {
			t.Errorf("上限を超えたページがクランプされていません: %d", page.CurrentPage)
		}

		p.SetPage(-5)
		page = p.Paginate(makeSpots(25))
		if page.CurrentPage != 1 {
			t.Errorf("下限を下回るページがクランプされていません: %d", page.CurrentPage)
		}
	})

	t.Run("0件のときは空のスライスとページ1", func(t *testing.T) {
		p := NewPaginator(10)
		p.SetPage(5)
		page := p.Paginate(nil)
		if len(page.Spots) != 0 || page.CurrentPage != 1 || page.TotalPages != 1 {
			t.Errorf("0件時のページ情報が想定外です: %+v", page)
		}
	})

	t.Run("Resetでページ1に戻る", func(t *testing.T) {
		p := NewPaginator(10)
		p.SetPage(3)
		p.Reset()
		if p.CurrentPage() != 1 {
			t.Errorf("Reset後のページが1ではありません: %d", p.CurrentPage())
		}
	})
}

// 全ページのスライスを連結すると元のコレクションを過不足なく復元できる
func TestPaginator_PagesReconstructCollection(t *testing.T) {
	for _, n := range []int{0, 1, 7, 20, 95, 100, 101} {
		spots := makeSpots(n)
		p := NewPaginator(20)
		totalPages := p.TotalPages(n)

		seen := make(map[string]int)
		var reconstructed []string
		for pageNum := 1; pageNum <= totalPages; pageNum++ {
			p.SetPage(pageNum)
			page := p.Paginate(spots)
			for _, s := range page.Spots {
				seen[s.ID]++
				reconstructed = append(reconstructed, s.ID)
			}
		}

		if len(reconstructed) != n {
			t.Fatalf("n=%d: 復元件数が一致しません: %d", n, len(reconstructed))
		}
		for i, id := range reconstructed {
			if id != spots[i].ID {
				t.Fatalf("n=%d: %d番目の要素が一致しません", n, i)
			}
			if seen[id] != 1 {
				t.Fatalf("n=%d: %s が%d回出現しました", n, id, seen[id])
			}
		}
	}
}

func TestNewPaginator_DefaultPageSize(t *testing.T) {
	p := NewPaginator(0)
	if p.PageSize() != DefaultPageSize {
		t.Errorf("不正なページサイズにデフォルト値が適用されていません: %d", p.PageSize())
	}
}
