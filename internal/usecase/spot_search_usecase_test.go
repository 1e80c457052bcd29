package usecase

import (
	"context"
	"testing"

	"TsuriSpot-App/internal/domain/model"
	"TsuriSpot-App/internal/domain/service"
	repoImpl "TsuriSpot-App/internal/repository"
	appmodel "TsuriSpot-App/model"
)

func newTestSearchUseCase(pageSize int) SpotSearchUseCase {
	repo := repoImpl.NewInMemorySpotsRepository(repoImpl.DefaultSpots())
	return NewSpotSearchUseCase(repo, service.NewSpotSearchService(), pageSize)
}

func TestSpotSearchUseCase_SearchSpots(t *testing.T) {
	ctx := context.Background()
	uc := newTestSearchUseCase(20)

	t.Run("条件なしは全件を評価順で返す", func(t *testing.T) {
		resp, err := uc.SearchSpots(ctx, &appmodel.SpotSearchRequest{})
		if err != nil {
			t.Fatalf("検索に失敗: %v", err)
		}
		if resp.TotalCount != 10 {
			t.Fatalf("全件数が想定外です: %d", resp.TotalCount)
		}
		// デフォルトの評価順（降順）
		for i := 1; i < len(resp.Spots); i++ {
			if resp.Spots[i].Rating > resp.Spots[i-1].Rating {
				t.Fatalf("評価順になっていません: %d番目", i)
			}
		}
	})

	t.Run("都道府県での絞り込み", func(t *testing.T) {
		resp, err := uc.SearchSpots(ctx, &appmodel.SpotSearchRequest{Prefecture: "兵庫県"})
		if err != nil {
			t.Fatalf("検索に失敗: %v", err)
		}
		for _, s := range resp.Spots {
			if s.Prefecture != "兵庫県" {
				t.Errorf("兵庫県以外のスポットが含まれています: %s", s.Name)
			}
		}
	})

	t.Run("現在地付きの距離ソート", func(t *testing.T) {
		lat, lng := 34.6, 135.0 // 明石港と同一地点
		resp, err := uc.SearchSpots(ctx, &appmodel.SpotSearchRequest{
			SortMode: model.SortModeDistance,
			Lat:      &lat,
			Lng:      &lng,
		})
		if err != nil {
			t.Fatalf("検索に失敗: %v", err)
		}
		if resp.Spots[0].Name != "明石港" {
			t.Errorf("最寄りのスポットが先頭ではありません: %s", resp.Spots[0].Name)
		}
	})

	t.Run("現在地なしの距離ソート要求は評価順に縮退する", func(t *testing.T) {
		resp, err := uc.SearchSpots(ctx, &appmodel.SpotSearchRequest{
			SortMode: model.SortModeDistance,
		})
		if err != nil {
			t.Fatalf("検索に失敗: %v", err)
		}
		for i := 1; i < len(resp.Spots); i++ {
			if resp.Spots[i].Rating > resp.Spots[i-1].Rating {
				t.Fatalf("縮退時に評価順になっていません: %d番目", i)
			}
		}
	})

	t.Run("0件時は条件に応じたメッセージを返す", func(t *testing.T) {
		resp, err := uc.SearchSpots(ctx, &appmodel.SpotSearchRequest{Text: "存在しないスポット名XYZ"})
		if err != nil {
			t.Fatalf("検索に失敗: %v", err)
		}
		if resp.TotalCount != 0 || resp.Message == "" {
			t.Errorf("0件時のメッセージがありません: %+v", resp)
		}
	})

	t.Run("ページングが機能する", func(t *testing.T) {
		uc := newTestSearchUseCase(3)
		resp, err := uc.SearchSpots(ctx, &appmodel.SpotSearchRequest{Page: 4})
		if err != nil {
			t.Fatalf("検索に失敗: %v", err)
		}
		// 10件・ページサイズ3なら4ページ目は1件
		if resp.TotalPages != 4 || resp.CurrentPage != 4 || len(resp.Spots) != 1 {
			t.Errorf("ページングが想定外です: %+v", resp)
		}
	})
}

// 距離マップは同じ現在地に対して再計算されない
func TestSpotSearchUseCase_DistanceMapMemoized(t *testing.T) {
	uc := newTestSearchUseCase(20).(*spotSearchUseCaseImpl)
	spots, err := uc.loadSpots(context.Background())
	if err != nil {
		t.Fatalf("スポットの読み込みに失敗: %v", err)
	}

	origin := model.LatLng{Lat: 34.6, Lng: 135.0}
	first := uc.distancesFor(spots, origin)
	second := uc.distancesFor(spots, origin)

	// 同じマップが使い回されることを目印の書き込みで確認
	first["__sentinel__"] = -1
	if _, ok := second["__sentinel__"]; !ok {
		t.Error("同じ現在地なのに距離マップが再計算されています")
	}

	// 現在地が変われば作り直される
	third := uc.distancesFor(spots, model.LatLng{Lat: 26.2, Lng: 127.7})
	if _, ok := third["__sentinel__"]; ok {
		t.Error("現在地が変わったのに距離マップが使い回されています")
	}
}

func TestSpotSearchUseCase_GetSpotDetail(t *testing.T) {
	ctx := context.Background()
	uc := newTestSearchUseCase(20)

	t.Run("IDで取得できる", func(t *testing.T) {
		spot, err := uc.GetSpotDetail(ctx, "spot-001")
		if err != nil {
			t.Fatalf("詳細の取得に失敗: %v", err)
		}
		if spot.Name != "明石港" {
			t.Errorf("取得したスポットが想定外です: %s", spot.Name)
		}
	})

	t.Run("スラッグでも取得できる", func(t *testing.T) {
		spot, err := uc.GetSpotDetail(ctx, "akashi-port")
		if err != nil {
			t.Fatalf("詳細の取得に失敗: %v", err)
		}
		if spot.ID != "spot-001" {
			t.Errorf("取得したスポットが想定外です: %s", spot.ID)
		}
	})

	t.Run("存在しないIDはエラー", func(t *testing.T) {
		if _, err := uc.GetSpotDetail(ctx, "no-such-spot"); err == nil {
			t.Error("存在しないIDでエラーになりません")
		}
	})
}

func TestSpotSearchUseCase_GetSpotsInBounds(t *testing.T) {
	ctx := context.Background()
	uc := newTestSearchUseCase(20)

	// 明石・須磨周辺だけを含む境界ボックス
	spots, err := uc.GetSpotsInBounds(ctx, 134.9, 34.5, 135.2, 34.7)
	if err != nil {
		t.Fatalf("境界ボックス検索に失敗: %v", err)
	}

	if len(spots) == 0 {
		t.Fatal("境界ボックス内のスポットが0件です")
	}
	for _, s := range spots {
		latLng := s.ToLatLng()
		if latLng.Lng < 134.9 || latLng.Lng > 135.2 || latLng.Lat < 34.5 || latLng.Lat > 34.7 {
			t.Errorf("境界ボックス外のスポットが含まれています: %s (%f, %f)", s.Name, latLng.Lat, latLng.Lng)
		}
	}
}
