package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"TsuriSpot-App/internal/usecase"
	"TsuriSpot-App/model"
)

// SpotsHandler スポット検索に関するHTTPハンドラー
type SpotsHandler struct {
	searchUseCase usecase.SpotSearchUseCase
}

// NewSpotsHandler SpotsHandlerの新しいインスタンスを作成
func NewSpotsHandler(searchUseCase usecase.SpotSearchUseCase) *SpotsHandler {
	return &SpotsHandler{
		searchUseCase: searchUseCase,
	}
}

// SearchSpots GET /spots - 条件に合うスポットの検索
// クエリパラメータ: q, prefecture, area, type, difficulty, sort, lat, lng, page
func (h *SpotsHandler) SearchSpots(c *gin.Context) {
	var req model.SpotSearchRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "Invalid query parameters: " + err.Error(),
		})
		return
	}

	// lat/lng は片方だけでは位置情報として使えない
	if (req.Lat == nil) != (req.Lng == nil) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "lat and lng must be specified together",
		})
		return
	}

	response, err := h.searchUseCase.SearchSpots(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to search spots: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetSpotDetail GET /spots/:id - スポットの詳細を取得
func (h *SpotsHandler) GetSpotDetail(c *gin.Context) {
	spotID := c.Param("id")
	if spotID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "Spot ID is required",
		})
		return
	}

	spot, err := h.searchUseCase.GetSpotDetail(c.Request.Context(), spotID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": "Failed to get spot detail: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, spot)
}

// GetSpotsInBounds GET /spots/in-bounds - 境界ボックス内のスポット一覧を取得
func (h *SpotsHandler) GetSpotsInBounds(c *gin.Context) {
	bbox := c.Query("bbox")
	if bbox == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "bbox parameter is required (format: min_lng,min_lat,max_lng,max_lat)",
		})
		return
	}

	coords := strings.Split(bbox, ",")
	if len(coords) != 4 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "bbox must contain 4 coordinates: min_lng,min_lat,max_lng,max_lat",
		})
		return
	}

	values := make([]float64, 4)
	names := []string{"min_lng", "min_lat", "max_lng", "max_lat"}
	for i, coord := range coords {
		v, err := strconv.ParseFloat(coord, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": "Invalid " + names[i] + " value",
			})
			return
		}
		values[i] = v
	}

	spots, err := h.searchUseCase.GetSpotsInBounds(c.Request.Context(), values[0], values[1], values[2], values[3])
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to get spots: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, model.SpotsInBoundsResponse{
		Spots: spots,
		Count: len(spots),
	})
}
