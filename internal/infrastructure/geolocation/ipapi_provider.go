package geolocation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"TsuriSpot-App/internal/domain/model"
	"TsuriSpot-App/internal/domain/repository"
)

// IPAPIProvider ip-api.com によるIPベースの現在位置取得プロバイダー
// GPSを持たないサーバー環境向けの実装で、精度ヒント（HighAccuracy）は
// IP測位では位置精度を変えられないため参考値として扱う（省電力方針）
type IPAPIProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewIPAPIProvider 新しいIPAPIProviderインスタンスを作成
func NewIPAPIProvider() repository.LocationProvider {
	return &IPAPIProvider{
		baseURL: "http://ip-api.com/json/?fields=status,message,lat,lon",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ipAPIResponse ip-api.com からのレスポンス構造体
type ipAPIResponse struct {
	Status  string  `json:"status"` // "success" または "fail"
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// CurrentLocation 現在位置を一度だけ取得する
// 失敗はすべてドメインの位置情報エラーに分類して返し、
// 未分類のエラーをそのまま上に漏らさない
func (p *IPAPIProvider) CurrentLocation(ctx context.Context, opts model.LocationRequestOptions) (*model.Location, error) {
	if opts.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(opts.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: リクエストの作成に失敗: %v", model.ErrGeolocationUnavailable, err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		// タイムアウト・ネットワーク断はすべて「取得失敗」に分類
		return nil, fmt.Errorf("%w: %v", model.ErrGeolocationUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("%w: ステータスコード %d", model.ErrGeolocationPermissionDenied, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: ステータスコード %d", model.ErrGeolocationUnavailable, resp.StatusCode)
	}

	var body ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: レスポンスの解析に失敗: %v", model.ErrGeolocationUnavailable, err)
	}

	if body.Status != "success" {
		return nil, fmt.Errorf("%w: %s", model.ErrGeolocationUnavailable, body.Message)
	}

	return &model.Location{
		Latitude:  body.Lat,
		Longitude: body.Lon,
	}, nil
}
