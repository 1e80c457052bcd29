package repository

import (
	"context"

	"TsuriSpot-App/internal/domain/model"
)

// SpotsRepository スポットデータへのアクセスを抽象化するインターフェース
// 検索エンジン本体は起動時に GetAll で読み込んだインメモリの
// コレクションだけを参照する
type SpotsRepository interface {
	// GetAll 全スポットを取得する
	GetAll(ctx context.Context) ([]model.Spot, error)

	// GetByID 指定IDのスポットを取得する
	GetByID(ctx context.Context, id string) (*model.Spot, error)

	// GetByPrefecture 指定都道府県のスポット一覧を取得する
	GetByPrefecture(ctx context.Context, prefecture string) ([]model.Spot, error)
}
