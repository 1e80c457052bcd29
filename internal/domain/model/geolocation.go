package model

import "errors"

// GeolocationStatus 位置情報取得の状態
// Idle → Loading → (Success | Error) と遷移し、SuccessとErrorは
// その取得試行の終端状態となる。再取得は明示的なユーザー操作のみ
type GeolocationStatus string

const (
	GeolocationIdle    GeolocationStatus = "idle"
	GeolocationLoading GeolocationStatus = "loading"
	GeolocationSuccess GeolocationStatus = "success"
	GeolocationError   GeolocationStatus = "error"
)

// 位置情報取得の失敗種別
// すべて取得境界で捕捉され、UIに見える状態へ変換される
var (
	// ErrGeolocationUnsupported 位置情報の取得手段がそもそも存在しない
	// （取得を試みる前に検出される）
	ErrGeolocationUnsupported = errors.New("位置情報がサポートされていません")

	// ErrGeolocationPermissionDenied ユーザーが位置情報の利用を拒否した
	ErrGeolocationPermissionDenied = errors.New("位置情報の利用が許可されていません")

	// ErrGeolocationUnavailable タイムアウトや電波状況などその他の取得失敗
	ErrGeolocationUnavailable = errors.New("位置情報を取得できませんでした")
)

// GeolocationState 位置情報取得の状態機械の現在値
type GeolocationState struct {
	Status   GeolocationStatus `json:"status"`
	Location *Location         `json:"location,omitempty"` // Success時のみ
	Message  string            `json:"message,omitempty"`  // Error時のユーザー向けメッセージ
}

// GeolocationErrorMessage 失敗種別ごとのユーザー向けメッセージを返す
// 許可拒否とそれ以外で文言を出し分ける
func GeolocationErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrGeolocationUnsupported):
		return "この環境では位置情報を利用できません"
	case errors.Is(err, ErrGeolocationPermissionDenied):
		return "位置情報の利用が許可されていません。設定を確認して再度お試しください"
	default:
		return "位置情報の取得に失敗しました。時間をおいて再度お試しください"
	}
}

// LocationRequestOptions 位置情報取得リクエストのオプション
type LocationRequestOptions struct {
	TimeoutSeconds int  `json:"timeout_seconds"` // 取得のタイムアウト（秒）
	HighAccuracy   bool `json:"high_accuracy"`   // 高精度を要求するかどうか
}

// DefaultLocationRequestOptions 省電力・10秒タイムアウトのデフォルト設定
func DefaultLocationRequestOptions() LocationRequestOptions {
	return LocationRequestOptions{
		TimeoutSeconds: 10,
		HighAccuracy:   false,
	}
}
