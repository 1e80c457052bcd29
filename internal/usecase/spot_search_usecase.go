package usecase

import (
	"context"
	"fmt"
	"sync"

	"TsuriSpot-App/internal/domain/helper"
	"TsuriSpot-App/internal/domain/model"
	"TsuriSpot-App/internal/domain/repository"
	"TsuriSpot-App/internal/domain/service"
	repoImpl "TsuriSpot-App/internal/repository"
	appmodel "TsuriSpot-App/model"
)

// SpotSearchUseCase ステートレスなスポット検索を提供するユースケース
// 共有可能なURL（クエリパラメータ）1リクエストを完結して処理する
type SpotSearchUseCase interface {
	// SearchSpots 検索条件に基づいてフィルタ・ソート・ページングした結果を返す
	SearchSpots(ctx context.Context, req *appmodel.SpotSearchRequest) (*appmodel.SpotSearchResponse, error)

	// GetSpotDetail 指定IDまたはスラッグのスポット詳細を取得する
	GetSpotDetail(ctx context.Context, id string) (*model.Spot, error)

	// GetSpotsInBounds 境界ボックス内のスポット一覧を取得する（地図表示用）
	GetSpotsInBounds(ctx context.Context, minLng, minLat, maxLng, maxLat float64) ([]model.Spot, error)
}

// spotSearchUseCaseImpl SpotSearchUseCaseの実装
// スポット一覧は初回アクセス時に一度だけ読み込んでキャッシュする。
// 距離マップも直近の現在地に対するものをキャッシュし、同じ座標での
// 連続リクエストで再計算しない
type spotSearchUseCaseImpl struct {
	spotsRepo     repository.SpotsRepository
	searchService *service.SpotSearchService
	pageSize      int

	mu            sync.Mutex
	spots         []model.Spot
	loaded        bool
	lastOrigin    model.LatLng
	lastDistances model.DistanceMap
}

// NewSpotSearchUseCase 新しいSpotSearchUseCaseインスタンスを作成
func NewSpotSearchUseCase(spotsRepo repository.SpotsRepository, searchService *service.SpotSearchService, pageSize int) SpotSearchUseCase {
	return &spotSearchUseCaseImpl{
		spotsRepo:     spotsRepo,
		searchService: searchService,
		pageSize:      pageSize,
	}
}

// loadSpots スポット一覧を一度だけ読み込む
func (u *spotSearchUseCaseImpl) loadSpots(ctx context.Context) ([]model.Spot, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.loaded {
		return u.spots, nil
	}

	spots, err := u.spotsRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("スポット一覧の読み込み失敗: %w", err)
	}
	u.spots = spots
	u.loaded = true
	// コレクションが変わったので距離キャッシュも無効化
	u.lastDistances = nil
	return u.spots, nil
}

// distancesFor 指定座標の距離マップを返す（直近の座標ならキャッシュを使う）
func (u *spotSearchUseCaseImpl) distancesFor(spots []model.Spot, origin model.LatLng) model.DistanceMap {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.lastDistances != nil && u.lastOrigin == origin {
		return u.lastDistances
	}
	u.lastOrigin = origin
	u.lastDistances = helper.BuildDistanceMap(spots, origin)
	return u.lastDistances
}

// SearchSpots 検索条件に基づいてフィルタ・ソート・ページングした結果を返す
func (u *spotSearchUseCaseImpl) SearchSpots(ctx context.Context, req *appmodel.SpotSearchRequest) (*appmodel.SpotSearchResponse, error) {
	spots, err := u.loadSpots(ctx)
	if err != nil {
		return nil, err
	}

	query := req.ToQuery()

	// 距離ソートは現在地が与えられているときだけ有効
	var distances model.DistanceMap
	if origin, ok := req.UserLatLng(); ok {
		distances = u.distancesFor(spots, origin)
	} else if query.SortMode == model.SortModeDistance {
		// 現在地なしの距離ソート要求は評価順に縮退させる
		query.SortMode = model.SortModeRating
	}

	results := u.searchService.Search(spots, query, distances)

	paginator := service.NewPaginator(u.pageSize)
	paginator.SetPage(req.Page)
	page := paginator.Paginate(results)

	response := &appmodel.SpotSearchResponse{
		Spots:       page.Spots,
		TotalCount:  page.TotalCount,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
	}

	// 0件は正常な終端状態。条件の有無でメッセージだけ出し分ける
	if page.TotalCount == 0 {
		if query.HasConditions() {
			response.Message = "条件に一致するスポットが見つかりませんでした。条件を変えてお試しください"
		} else {
			response.Message = "スポットが登録されていません"
		}
	}

	return response, nil
}

// GetSpotDetail 指定IDまたはスラッグのスポット詳細を取得する
func (u *spotSearchUseCaseImpl) GetSpotDetail(ctx context.Context, id string) (*model.Spot, error) {
	return u.spotsRepo.GetByID(ctx, id)
}

// GetSpotsInBounds 境界ボックス内のスポット一覧を取得する
func (u *spotSearchUseCaseImpl) GetSpotsInBounds(ctx context.Context, minLng, minLat, maxLng, maxLat float64) ([]model.Spot, error) {
	spots, err := u.loadSpots(ctx)
	if err != nil {
		return nil, err
	}

	bound := repoImpl.BoundFromCorners(minLng, minLat, maxLng, maxLat)
	return repoImpl.FilterSpotsInBound(spots, bound), nil
}
