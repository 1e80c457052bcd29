package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"TsuriSpot-App/internal/domain/model"
	"TsuriSpot-App/internal/domain/repository"
	"TsuriSpot-App/internal/infrastructure/database"
)

type SupabaseSpotsRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseSpotsRepository(client *database.SupabaseClient) repository.SpotsRepository {
	return &SupabaseSpotsRepository{
		client: client,
	}
}

func (r *SupabaseSpotsRepository) GetAll(ctx context.Context) ([]model.Spot, error) {
	var spots []model.Spot
	data, count, err := r.client.GetClient().From("spots").Select("*", "exact", false).Execute()
	if err != nil {
		return nil, fmt.Errorf("スポットデータの取得失敗: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &spots); err != nil {
		return nil, fmt.Errorf("スポットデータのJSONアンマーシャル失敗: %w", err)
	}

	return spots, nil
}

func (r *SupabaseSpotsRepository) GetByID(ctx context.Context, id string) (*model.Spot, error) {
	var spots []model.Spot
	data, count, err := r.client.GetClient().From("spots").Select("*", "exact", false).Eq("id", id).Execute()
	if err != nil {
		return nil, fmt.Errorf("スポットデータの取得失敗: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &spots); err != nil {
		return nil, fmt.Errorf("スポットデータのJSONアンマーシャル失敗: %w", err)
	}

	if len(spots) == 0 {
		return nil, fmt.Errorf("スポットID %s が見つかりません", id)
	}

	return &spots[0], nil
}

func (r *SupabaseSpotsRepository) GetByPrefecture(ctx context.Context, prefecture string) ([]model.Spot, error) {
	var spots []model.Spot
	data, count, err := r.client.GetClient().From("spots").
		Select("*", "exact", false).
		Eq("prefecture", prefecture).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("都道府県 %s のスポットデータ取得失敗: %w", prefecture, err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &spots); err != nil {
		return nil, fmt.Errorf("スポットデータのJSONアンマーシャル失敗: %w", err)
	}

	return spots, nil
}
