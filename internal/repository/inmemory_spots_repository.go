package repository

import (
	"context"
	"fmt"

	"TsuriSpot-App/internal/domain/model"
	"TsuriSpot-App/internal/domain/repository"
)

// InMemorySpotsRepository メモリ上のスライスをデータソースとするリポジトリ
// バックエンド未設定時の組み込みデータでの起動と、テストのフィクスチャに使う
type InMemorySpotsRepository struct {
	spots []model.Spot
}

// NewInMemorySpotsRepository 指定のスポット一覧を持つリポジトリを作成
func NewInMemorySpotsRepository(spots []model.Spot) repository.SpotsRepository {
	return &InMemorySpotsRepository{
		spots: spots,
	}
}

func (r *InMemorySpotsRepository) GetAll(ctx context.Context) ([]model.Spot, error) {
	spots := make([]model.Spot, len(r.spots))
	copy(spots, r.spots)
	return spots, nil
}

func (r *InMemorySpotsRepository) GetByID(ctx context.Context, id string) (*model.Spot, error) {
	for i := range r.spots {
		if r.spots[i].ID == id || r.spots[i].Slug == id {
			spot := r.spots[i]
			return &spot, nil
		}
	}
	return nil, fmt.Errorf("スポットID %s が見つかりません", id)
}

func (r *InMemorySpotsRepository) GetByPrefecture(ctx context.Context, prefecture string) ([]model.Spot, error) {
	var spots []model.Spot
	for i := range r.spots {
		if r.spots[i].Prefecture == prefecture {
			spots = append(spots, r.spots[i])
		}
	}
	return spots, nil
}
