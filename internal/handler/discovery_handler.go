package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	dmodel "TsuriSpot-App/internal/domain/model"
	"TsuriSpot-App/internal/usecase"
	"TsuriSpot-App/model"
)

// DiscoveryHandler 検索セッションに関するHTTPハンドラー
// 各エンドポイントはユーザー操作（入力・フィルタ選択・現在地取得・
// クリア・ページ移動）と1:1に対応する
type DiscoveryHandler struct {
	session usecase.DiscoverySessionUseCase
}

// NewDiscoveryHandler DiscoveryHandlerの新しいインスタンスを作成
func NewDiscoveryHandler(session usecase.DiscoverySessionUseCase) *DiscoveryHandler {
	return &DiscoveryHandler{
		session: session,
	}
}

// GetResults GET /discovery/results - 現在の状態から導出した結果ページを返す
func (h *DiscoveryHandler) GetResults(c *gin.Context) {
	c.JSON(http.StatusOK, h.buildResults())
}

// UpdateQuery PATCH /discovery/query - クエリの部分更新
// 指定されたフィールドだけを更新する。どの更新でもページは1に戻る
func (h *DiscoveryHandler) UpdateQuery(c *gin.Context) {
	var req model.QueryUpdateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	if req.Text != nil {
		h.session.SetSearchText(*req.Text)
	}
	if req.Prefecture != nil {
		h.session.SetPrefecture(*req.Prefecture)
	}
	if req.Area != nil {
		h.session.SetArea(*req.Area)
	}
	if req.SpotType != nil {
		h.session.SetSpotType(*req.SpotType)
	}
	if req.Difficulty != nil {
		h.session.SetDifficulty(*req.Difficulty)
	}
	if req.DistanceSort != nil {
		if ok := h.session.SetDistanceSort(*req.DistanceSort); !ok {
			c.JSON(http.StatusConflict, gin.H{
				"error":   "location_unavailable",
				"message": "現在地が未取得のため距離順には並び替えられません",
			})
			return
		}
	}

	c.JSON(http.StatusOK, h.buildResults())
}

// SetPage PUT /discovery/page/:page - 表示ページの変更
func (h *DiscoveryHandler) SetPage(c *gin.Context) {
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "page must be an integer",
		})
		return
	}

	h.session.SetPage(page)
	c.JSON(http.StatusOK, h.buildResults())
}

// RequestLocation POST /discovery/location - 現在地の取得
// 失敗してもセッションは壊れず、位置なしの並び順で結果を返し続ける
func (h *DiscoveryHandler) RequestLocation(c *gin.Context) {
	state := h.session.RequestLocation(c.Request.Context())

	status := http.StatusOK
	if state.Status == dmodel.GeolocationError {
		// エラーでもページ自体は機能し続けるため 200 以外は返すが 5xx にはしない
		status = http.StatusFailedDependency
	}

	c.JSON(status, h.buildResults())
}

// ClearFilters POST /discovery/clear - 全フィルタのリセット
func (h *DiscoveryHandler) ClearFilters(c *gin.Context) {
	h.session.ClearFilters()
	c.JSON(http.StatusOK, h.buildResults())
}

// buildResults セッションの現在の派生状態をレスポンスに組み立てる
func (h *DiscoveryHandler) buildResults() *model.DiscoveryResultsResponse {
	page := h.session.Results()
	query := h.session.Query()

	response := &model.DiscoveryResultsResponse{
		Page:        page,
		Query:       &query,
		Geolocation: h.session.GeolocationState(),
	}

	// 0件は正常な状態。条件の有無でメッセージだけ出し分ける
	if page.TotalCount == 0 {
		if query.HasConditions() {
			response.Message = "条件に一致するスポットが見つかりませんでした。条件を変えてお試しください"
		} else {
			response.Message = "スポットが登録されていません"
		}
	}

	return response
}
