package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"showtracker/internal/models"
	"showtracker/internal/repository"
	"showtracker/internal/service"
)

const (
	msgShowNotFound  = "No show with this id exists"
	msgShowDeleted   = "Show deleted"
	msgInvalidShowID = "Invalid show id"
	msgInvalidFilter = "minEpisodes must be an integer"
	msgInternalError = "Internal server error"
	queryMinEpisodes = "minEpisodes"
	resultShowsKey   = "shows"
	resultShowKey    = "result"
)

// episodeCount 接受 JSON 整數、小數部分為零的數字或數字字串，例如 3、3.0 或 "3"
type episodeCount int

func (e *episodeCount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("episodes_seen: %q is not an integer", s)
		}
		*e = episodeCount(n)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("episodes_seen: %w", err)
	}
	if n, err := num.Int64(); err == nil {
		*e = episodeCount(n)
		return nil
	}

	f, err := num.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return fmt.Errorf("episodes_seen: %s is not an integer", num)
	}
	*e = episodeCount(f)
	return nil
}

// CreateShowInput 定義新增影集請求的結構
type CreateShowInput struct {
	Name         *string       `json:"name" binding:"required"`
	EpisodesSeen *episodeCount `json:"episodes_seen" binding:"required,min=0"`
}

// UpdateShowInput 定義更新影集請求的結構，未提供的欄位維持原值
type UpdateShowInput struct {
	Name         *string       `json:"name"`
	EpisodesSeen *episodeCount `json:"episodes_seen" binding:"omitempty,min=0"`
}

// ShowHandler 處理與影集相關的請求
type ShowHandler struct {
	showService *service.ShowService
	log         zerolog.Logger
}

// NewShowHandler 創建一個新的 ShowHandler 實例
func NewShowHandler(showService *service.ShowService, log zerolog.Logger) *ShowHandler {
	return &ShowHandler{showService: showService, log: log}
}

// ListShows 處理取得影集列表的請求，可用 minEpisodes 過濾
func (h *ShowHandler) ListShows(c *gin.Context) {
	var minEpisodes *int
	if raw, ok := c.GetQuery(queryMinEpisodes); ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			Respond(c, http.StatusBadRequest, msgInvalidFilter, nil)
			return
		}
		minEpisodes = &n
	}

	// 有過濾條件時結果放在 result，沒有時放在 shows
	key := resultShowsKey
	if minEpisodes != nil {
		key = resultShowKey
	}

	shows, err := h.showService.ListShows(c.Request.Context(), minEpisodes)
	if err != nil {
		h.internalError(c, err)
		return
	}
	if shows == nil {
		shows = []models.Show{}
	}

	Respond(c, http.StatusOK, "", gin.H{key: shows})
}

// GetShow 處理取得單一影集的請求
func (h *ShowHandler) GetShow(c *gin.Context) {
	id, ok := parseShowID(c)
	if !ok {
		return
	}

	show, err := h.showService.GetShow(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	Respond(c, http.StatusOK, "", gin.H{resultShowKey: show})
}

// CreateShow 處理新增影集的請求
func (h *ShowHandler) CreateShow(c *gin.Context) {
	var input CreateShowInput
	if err := c.ShouldBindJSON(&input); err != nil {
		Respond(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	show, err := h.showService.CreateShow(c.Request.Context(), *input.Name, int(*input.EpisodesSeen))
	if err != nil {
		h.internalError(c, err)
		return
	}

	Respond(c, http.StatusCreated, "", gin.H{resultShowKey: show})
}

// UpdateShow 處理更新影集的請求，成功時回傳 201
func (h *ShowHandler) UpdateShow(c *gin.Context) {
	id, ok := parseShowID(c)
	if !ok {
		return
	}

	// 先確認影集存在，不存在時不論 body 內容都回傳 404
	if _, err := h.showService.GetShow(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	var input UpdateShowInput
	if err := c.ShouldBindJSON(&input); err != nil {
		Respond(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	patch := service.ShowPatch{Name: input.Name}
	if input.EpisodesSeen != nil {
		n := int(*input.EpisodesSeen)
		patch.EpisodesSeen = &n
	}

	show, err := h.showService.UpdateShow(c.Request.Context(), id, patch)
	if err != nil {
		h.handleError(c, err)
		return
	}

	Respond(c, http.StatusCreated, "", gin.H{resultShowKey: show})
}

// DeleteShow 處理刪除影集的請求
func (h *ShowHandler) DeleteShow(c *gin.Context) {
	id, ok := parseShowID(c)
	if !ok {
		return
	}

	if err := h.showService.DeleteShow(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	Respond(c, http.StatusOK, msgShowDeleted, nil)
}

// parseShowID 解析路徑中的 id
// 不是整數時寫出 400；是整數但不可能存在（負數或超出範圍）時寫出 404
func parseShowID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			Respond(c, http.StatusNotFound, msgShowNotFound, nil)
			return 0, false
		}
		Respond(c, http.StatusBadRequest, msgInvalidShowID, nil)
		return 0, false
	}
	if id < 0 || uint64(id) > math.MaxUint32 {
		Respond(c, http.StatusNotFound, msgShowNotFound, nil)
		return 0, false
	}
	return uint(id), true
}

func (h *ShowHandler) handleError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrShowNotFound) {
		Respond(c, http.StatusNotFound, msgShowNotFound, nil)
		return
	}
	h.internalError(c, err)
}

func (h *ShowHandler) internalError(c *gin.Context, err error) {
	h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	Respond(c, http.StatusInternalServerError, msgInternalError, nil)
}
