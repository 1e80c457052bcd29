package repository

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"TsuriSpot-App/internal/domain/model"
	"TsuriSpot-App/internal/domain/repository"
)

// FirestoreSpotsRepository Firestoreをスポットのデータソースとして使うリポジトリ
// Supabaseを使わないデプロイ先向けの代替バックエンド
type FirestoreSpotsRepository struct {
	client *firestore.Client
}

// NewFirestoreSpotsRepository 新しいFirestoreSpotsRepositoryインスタンスを作成
func NewFirestoreSpotsRepository(client *firestore.Client) repository.SpotsRepository {
	return &FirestoreSpotsRepository{
		client: client,
	}
}

// firestoreSpot Firestoreドキュメントの形に対応する構造体
type firestoreSpot struct {
	ID           string  `firestore:"id"`
	Slug         string  `firestore:"slug"`
	Name         string  `firestore:"name"`
	Prefecture   string  `firestore:"prefecture"`
	AreaName     string  `firestore:"area_name"`
	Address      string  `firestore:"address"`
	SpotType     string  `firestore:"spot_type"`
	Difficulty   string  `firestore:"difficulty"`
	HasParking   bool    `firestore:"has_parking"`
	HasToilet    bool    `firestore:"has_toilet"`
	IsFreeEntry  bool    `firestore:"is_free_entry"`
	HasRentalRod bool    `firestore:"has_rental_rod"`
	Rating       float64 `firestore:"rating"`
	Latitude     float64 `firestore:"latitude"`
	Longitude    float64 `firestore:"longitude"`
}

// toSpot firestoreSpotをmodel.Spotに変換
func (fs *firestoreSpot) toSpot() model.Spot {
	location := model.Location{Latitude: fs.Latitude, Longitude: fs.Longitude}
	return model.Spot{
		ID:           fs.ID,
		Slug:         fs.Slug,
		Name:         fs.Name,
		Prefecture:   fs.Prefecture,
		AreaName:     fs.AreaName,
		Address:      fs.Address,
		SpotType:     fs.SpotType,
		Difficulty:   fs.Difficulty,
		HasParking:   fs.HasParking,
		HasToilet:    fs.HasToilet,
		IsFreeEntry:  fs.IsFreeEntry,
		HasRentalRod: fs.HasRentalRod,
		Rating:       fs.Rating,
		Location:     location.ToGeometry(),
	}
}

func (r *FirestoreSpotsRepository) iterateSpots(iter *firestore.DocumentIterator) ([]model.Spot, error) {
	var spots []model.Spot
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("スポットドキュメントの読み取り失敗: %w", err)
		}

		var data firestoreSpot
		if err := doc.DataTo(&data); err != nil {
			return nil, fmt.Errorf("スポットデータの変換失敗: %w", err)
		}
		spots = append(spots, data.toSpot())
	}
	return spots, nil
}

func (r *FirestoreSpotsRepository) GetAll(ctx context.Context) ([]model.Spot, error) {
	iter := r.client.Collection("spots").OrderBy("id", firestore.Asc).Documents(ctx)
	defer iter.Stop()
	return r.iterateSpots(iter)
}

func (r *FirestoreSpotsRepository) GetByID(ctx context.Context, id string) (*model.Spot, error) {
	doc, err := r.client.Collection("spots").Doc(id).Get(ctx)
	if err != nil {
		if status := err.Error(); strings.Contains(status, "NotFound") || strings.Contains(status, "not found") {
			return nil, fmt.Errorf("スポットID %s が見つかりません", id)
		}
		return nil, fmt.Errorf("スポットの取得に失敗しました: %w", err)
	}

	var data firestoreSpot
	if err := doc.DataTo(&data); err != nil {
		return nil, fmt.Errorf("スポットデータの変換失敗: %w", err)
	}

	spot := data.toSpot()
	return &spot, nil
}

func (r *FirestoreSpotsRepository) GetByPrefecture(ctx context.Context, prefecture string) ([]model.Spot, error) {
	iter := r.client.Collection("spots").Where("prefecture", "==", prefecture).Documents(ctx)
	defer iter.Stop()
	return r.iterateSpots(iter)
}
