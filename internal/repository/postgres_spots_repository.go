package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"TsuriSpot-App/internal/domain/model"
	"TsuriSpot-App/internal/domain/repository"
	"TsuriSpot-App/internal/infrastructure/database"
)

type PostgresSpotsRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresSpotsRepository(client *database.PostgreSQLClient) repository.SpotsRepository {
	return &PostgresSpotsRepository{
		client: client,
	}
}

// SpotResult スポットテーブルの行を受け取るための構造体
type SpotResult struct {
	ID           string
	Slug         string
	Name         string
	Prefecture   string
	AreaName     string
	Address      string
	SpotType     string
	Difficulty   string
	HasParking   bool
	HasToilet    bool
	IsFreeEntry  bool
	HasRentalRod bool
	Rating       sql.NullFloat64
	Location     string
}

// ToSpot SpotResultをmodel.Spotに変換
func (sr *SpotResult) ToSpot() (*model.Spot, error) {
	var location model.Geometry
	if err := json.Unmarshal([]byte(sr.Location), &location); err != nil {
		return nil, fmt.Errorf("location JSONBパースエラー: %w", err)
	}

	spot := &model.Spot{
		ID:           sr.ID,
		Slug:         sr.Slug,
		Name:         sr.Name,
		Prefecture:   sr.Prefecture,
		AreaName:     sr.AreaName,
		Address:      sr.Address,
		SpotType:     sr.SpotType,
		Difficulty:   sr.Difficulty,
		HasParking:   sr.HasParking,
		HasToilet:    sr.HasToilet,
		IsFreeEntry:  sr.IsFreeEntry,
		HasRentalRod: sr.HasRentalRod,
		Location:     &location,
	}

	if sr.Rating.Valid {
		spot.Rating = sr.Rating.Float64
	}

	return spot, nil
}

const spotColumns = `id, slug, name, prefecture, area_name, address, spot_type, difficulty,
	has_parking, has_toilet, is_free_entry, has_rental_rod, rating, location`

func (r *PostgresSpotsRepository) scanSpots(rows *sql.Rows) ([]model.Spot, error) {
	var spots []model.Spot
	for rows.Next() {
		var result SpotResult
		err := rows.Scan(
			&result.ID, &result.Slug, &result.Name, &result.Prefecture,
			&result.AreaName, &result.Address, &result.SpotType, &result.Difficulty,
			&result.HasParking, &result.HasToilet, &result.IsFreeEntry,
			&result.HasRentalRod, &result.Rating, &result.Location,
		)
		if err != nil {
			return nil, fmt.Errorf("スポット行のスキャン失敗: %w", err)
		}

		spot, err := result.ToSpot()
		if err != nil {
			return nil, err
		}
		spots = append(spots, *spot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("スポット行の読み取り失敗: %w", err)
	}
	return spots, nil
}

func (r *PostgresSpotsRepository) GetAll(ctx context.Context) ([]model.Spot, error) {
	query := fmt.Sprintf(`SELECT %s FROM spots ORDER BY id`, spotColumns)

	rows, err := r.client.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("スポット一覧の取得失敗: %w", err)
	}
	defer rows.Close()

	return r.scanSpots(rows)
}

func (r *PostgresSpotsRepository) GetByID(ctx context.Context, id string) (*model.Spot, error) {
	query := fmt.Sprintf(`SELECT %s FROM spots WHERE id = $1`, spotColumns)

	row := r.client.DB.QueryRowContext(ctx, query, id)

	var result SpotResult
	err := row.Scan(
		&result.ID, &result.Slug, &result.Name, &result.Prefecture,
		&result.AreaName, &result.Address, &result.SpotType, &result.Difficulty,
		&result.HasParking, &result.HasToilet, &result.IsFreeEntry,
		&result.HasRentalRod, &result.Rating, &result.Location,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("スポットID %s が見つかりません", id)
	}
	if err != nil {
		return nil, fmt.Errorf("スポットの取得失敗: %w", err)
	}

	return result.ToSpot()
}

func (r *PostgresSpotsRepository) GetByPrefecture(ctx context.Context, prefecture string) ([]model.Spot, error) {
	query := fmt.Sprintf(`SELECT %s FROM spots WHERE prefecture = $1 ORDER BY id`, spotColumns)

	rows, err := r.client.DB.QueryContext(ctx, query, prefecture)
	if err != nil {
		return nil, fmt.Errorf("都道府県 %s のスポット取得失敗: %w", prefecture, err)
	}
	defer rows.Close()

	return r.scanSpots(rows)
}
