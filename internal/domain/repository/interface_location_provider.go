package repository

import (
	"context"

	"TsuriSpot-App/internal/domain/model"
)

// LocationProvider デバイスの現在位置取得を抽象化するインターフェース
// 実装は失敗を model パッケージの位置情報エラー
// （ErrGeolocationPermissionDenied / ErrGeolocationUnavailable）に
// 分類して返すこと。タイムアウトは ctx と opts で呼び出し側が与える
type LocationProvider interface {
	// CurrentLocation 現在位置を一度だけ取得する
	CurrentLocation(ctx context.Context, opts model.LocationRequestOptions) (*model.Location, error)
}
