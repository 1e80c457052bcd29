package usecase

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"TsuriSpot-App/internal/domain/helper"
	"TsuriSpot-App/internal/domain/model"
	"TsuriSpot-App/internal/domain/repository"
	"TsuriSpot-App/internal/domain/service"
)

// DiscoverySessionUseCase 検索セッションの状態を所有するユースケース
// クエリ・現在地・ページ番号を唯一の所有者として保持し、ユーザー操作に
// 1:1対応する更新メソッドと、純粋な派生計算 Results を提供する
//
// 不変条件:
//   - クエリ・現在地・並び順のいずれかが変わったらページは必ず1に戻る
//   - 表示されるページは常に最新のフィルタ・ソート結果の連続した一部
//   - 位置情報の取得失敗でセッションが壊れることはなく、
//     位置なしの並び順で結果を出し続ける
type DiscoverySessionUseCase interface {
	// SetSearchText フリーテキストを更新する
	SetSearchText(text string)

	// SetPrefecture 都道府県フィルタを更新する
	// 新しい都道府県に属さないエリア選択は同時にリセットされる
	SetPrefecture(prefecture string)

	// SetArea エリアフィルタを更新する（選択中の都道府県に属する場合のみ）
	SetArea(area string)

	// SetSpotType スポット種別フィルタを更新する
	SetSpotType(spotType string)

	// SetDifficulty 難易度フィルタを更新する
	SetDifficulty(difficulty string)

	// SetDistanceSort 距離ソートの有効・無効を切り替える
	// 現在地が未取得の間は有効化できない
	SetDistanceSort(enabled bool) bool

	// ClearFilters 全フィルタをデフォルト状態に戻す
	ClearFilters()

	// SetPage 表示ページを変更する（データの再取得はしない）
	SetPage(page int)

	// RequestLocation 現在位置の取得を開始する
	// 明示的なユーザー操作でのみ呼ばれること。完了後の状態を返す
	RequestLocation(ctx context.Context) model.GeolocationState

	// GeolocationState 位置情報取得の現在の状態を返す
	GeolocationState() model.GeolocationState

	// Query 現在のクエリのコピーを返す
	Query() model.SpotQuery

	// Results 現在の状態から結果ページを導出する
	// 毎回フィルタ・ソートを全再計算する（距離マップのみ使い回す）
	Results() *model.SpotPage
}

// discoverySessionUseCaseImpl DiscoverySessionUseCaseの実装
type discoverySessionUseCaseImpl struct {
	searchService *service.SpotSearchService
	provider      repository.LocationProvider // nilなら位置情報サポートなし
	geoOpts       model.LocationRequestOptions

	mu           sync.Mutex
	spots        []model.Spot // 読み取り専用の全スポット
	query        model.SpotQuery
	userLocation *model.Location
	distances    model.DistanceMap // (spots, userLocation) から一度だけ計算
	paginator    *service.Paginator
	geoState     model.GeolocationState
	geoToken     string // 最新の取得リクエストの識別トークン
}

// NewDiscoverySessionUseCase 新しい検索セッションを作成
// spots は検証済みの全スポットで、セッションは一切変更しない
func NewDiscoverySessionUseCase(
	spots []model.Spot,
	searchService *service.SpotSearchService,
	provider repository.LocationProvider,
	pageSize int,
) DiscoverySessionUseCase {
	return &discoverySessionUseCaseImpl{
		searchService: searchService,
		provider:      provider,
		geoOpts:       model.DefaultLocationRequestOptions(),
		spots:         spots,
		paginator:     service.NewPaginator(pageSize),
		geoState:      model.GeolocationState{Status: model.GeolocationIdle},
	}
}

func (u *discoverySessionUseCaseImpl) SetSearchText(text string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.query.Text == text {
		return
	}
	u.query.Text = text
	u.paginator.Reset()
}

func (u *discoverySessionUseCaseImpl) SetPrefecture(prefecture string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.query.Prefecture == prefecture {
		return
	}
	u.query.Prefecture = prefecture
	// 新しい都道府県に属さないエリア選択は無効になるためリセット
	if u.query.Area != "" && !model.IsAreaInPrefecture(prefecture, u.query.Area) {
		u.query.Area = ""
	}
	u.paginator.Reset()
}

func (u *discoverySessionUseCaseImpl) SetArea(area string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	// エリアは都道府県が選択されているときだけ意味を持つ
	if area != "" && !model.IsAreaInPrefecture(u.query.Prefecture, area) {
		return
	}
	if u.query.Area == area {
		return
	}
	u.query.Area = area
	u.paginator.Reset()
}

func (u *discoverySessionUseCaseImpl) SetSpotType(spotType string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.query.SpotType == spotType {
		return
	}
	u.query.SpotType = spotType
	u.paginator.Reset()
}

func (u *discoverySessionUseCaseImpl) SetDifficulty(difficulty string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.query.Difficulty == difficulty {
		return
	}
	u.query.Difficulty = difficulty
	u.paginator.Reset()
}

func (u *discoverySessionUseCaseImpl) SetDistanceSort(enabled bool) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	if enabled {
		// 現在地がなければ距離ソートは有効化できない
		if u.userLocation == nil {
			return false
		}
		if u.query.SortMode == model.SortModeDistance {
			return true
		}
		u.query.SortMode = model.SortModeDistance
	} else {
		if u.query.SortMode != model.SortModeDistance {
			return true
		}
		u.query.SortMode = model.SortModeNone
	}
	u.paginator.Reset()
	return true
}

func (u *discoverySessionUseCaseImpl) ClearFilters() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.query.Clear()
	u.paginator.Reset()
}

func (u *discoverySessionUseCaseImpl) SetPage(page int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.paginator.SetPage(page)
}

// RequestLocation 現在位置の取得を開始する
// 取得中に新しいリクエストが発行された場合、古いリクエストの結果は
// トークン比較で破棄される（最後のリクエストの結果だけが反映される）
func (u *discoverySessionUseCaseImpl) RequestLocation(ctx context.Context) model.GeolocationState {
	// サポート有無は取得を試みる前に判定する
	if u.provider == nil {
		u.mu.Lock()
		defer u.mu.Unlock()
		u.geoState = model.GeolocationState{
			Status:  model.GeolocationError,
			Message: model.GeolocationErrorMessage(model.ErrGeolocationUnsupported),
		}
		return u.geoState
	}

	u.mu.Lock()
	token := uuid.New().String()
	u.geoToken = token
	u.geoState = model.GeolocationState{Status: model.GeolocationLoading}
	opts := u.geoOpts
	u.mu.Unlock()

	location, err := u.provider.CurrentLocation(ctx, opts)

	u.mu.Lock()
	defer u.mu.Unlock()

	// 自分より新しいリクエストが走っていたら結果を破棄する
	if u.geoToken != token {
		return u.geoState
	}

	if err != nil {
		log.Printf("⚠️ 位置情報の取得に失敗: %v", err)
		u.geoState = model.GeolocationState{
			Status:  model.GeolocationError,
			Message: model.GeolocationErrorMessage(err),
		}
		// 現在地は未設定のまま。距離ソートも有効化されない
		return u.geoState
	}

	u.userLocation = location
	// 距離マップは (スポット一覧, 現在地) の組ごとに一度だけ計算する
	u.distances = helper.BuildDistanceMap(u.spots, location.ToLatLng())
	u.geoState = model.GeolocationState{
		Status:   model.GeolocationSuccess,
		Location: location,
	}
	// 取得成功で距離ソートを暗黙的に有効化し、ページを先頭へ戻す
	u.query.SortMode = model.SortModeDistance
	u.paginator.Reset()

	log.Printf("📍 現在位置を取得: (%.4f, %.4f)", location.Latitude, location.Longitude)
	return u.geoState
}

func (u *discoverySessionUseCaseImpl) GeolocationState() model.GeolocationState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.geoState
}

func (u *discoverySessionUseCaseImpl) Query() model.SpotQuery {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.query
}

// Results 現在の状態から結果ページを導出する
func (u *discoverySessionUseCaseImpl) Results() *model.SpotPage {
	u.mu.Lock()
	defer u.mu.Unlock()

	results := u.searchService.Search(u.spots, &u.query, u.distances)
	return u.paginator.Paginate(results)
}
