package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"resumecloner/internal/catalog"
	"resumecloner/internal/database"
	"resumecloner/internal/errcode"
	"resumecloner/internal/preview"
	"resumecloner/internal/raster"
	"resumecloner/internal/resume"
)

// DraftHandler 负责处理草稿的增删改查、导入导出与预览。
type DraftHandler struct {
	db      *gorm.DB
	storage ObjectStorage
	ids     resume.IDGenerator
	logger  *slog.Logger
}

// NewDraftHandler 构造 DraftHandler。
func NewDraftHandler(db *gorm.DB, storageClient ObjectStorage, logger *slog.Logger) *DraftHandler {
	return &DraftHandler{
		db:      db,
		storage: storageClient,
		ids:     resume.UUIDGenerator{},
		logger:  logger,
	}
}

var errInvalidDraftID = errors.New("invalid draft id")

type draftResponse struct {
	ID           uint           `json:"id"`
	Title        string         `json:"title"`
	Status       string         `json:"status"`
	Content      datatypes.JSON `json:"content,omitempty"`
	ThumbnailURL string         `json:"thumbnail_url,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func newDraftResponse(draft database.Draft) draftResponse {
	return draftResponse{
		ID:           draft.ID,
		Title:        draft.Title,
		Status:       draft.Status,
		Content:      draft.Content,
		ThumbnailURL: draft.ThumbnailURL,
		CreatedAt:    draft.CreatedAt,
		UpdatedAt:    draft.UpdatedAt,
	}
}

type createDraftRequest struct {
	Title      string `json:"title"`
	TemplateID string `json:"templateId"`
}

// CreateDraft 以指定模板创建一份空草稿；模板缺省时使用注册表首位。
// 请求体可为空，等价于全部字段缺省。
func (h *DraftHandler) CreateDraft(c *gin.Context) {
	var req createDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		BadRequest(c, err.Error())
		return
	}

	var doc resume.Document
	if req.TemplateID == "" {
		doc = resume.New()
	} else {
		tpl, err := catalog.Lookup(req.TemplateID)
		if err != nil {
			ErrorCode(c, http.StatusNotFound, errcode.NotFound, "template not found")
			return
		}
		doc = resume.NewFromTemplate(tpl)
	}

	content, err := json.Marshal(doc)
	if err != nil {
		Internal(c, "failed to encode draft content")
		return
	}

	title := req.Title
	if title == "" {
		title = "Untitled Resume"
	}
	draft := database.Draft{
		Title:   title,
		Content: content,
		Status:  database.StatusCompleted,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&draft).Error; err != nil {
		Internal(c, "failed to create draft")
		return
	}

	c.JSON(http.StatusCreated, newDraftResponse(draft))
}

// GetDraft 返回指定草稿。
func (h *DraftHandler) GetDraft(c *gin.Context) {
	draft, err := getDraftByID(c.Request.Context(), h.db, c.Param("id"))
	if err != nil {
		respondDraftLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, newDraftResponse(*draft))
}

type updateDraftRequest struct {
	Title   string          `json:"title"`
	Content json.RawMessage `json:"content" binding:"required"`
}

// UpdateDraft 用完整文档覆盖草稿内容。
func (h *DraftHandler) UpdateDraft(c *gin.Context) {
	var req updateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	if _, err := resume.ParseDraft(req.Content); err != nil {
		ErrorCode(c, http.StatusBadRequest, errcode.InvalidDraftFormat, err.Error())
		return
	}

	draft, err := getDraftByID(c.Request.Context(), h.db, c.Param("id"))
	if err != nil {
		respondDraftLookupError(c, err)
		return
	}

	updates := map[string]any{"content": datatypes.JSON(req.Content)}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	ctx := c.Request.Context()
	if err := h.db.WithContext(ctx).Model(draft).Updates(updates).Error; err != nil {
		Internal(c, "failed to update draft")
		return
	}
	if err := h.db.WithContext(ctx).First(draft, draft.ID).Error; err != nil {
		Internal(c, "failed to reload draft")
		return
	}

	c.JSON(http.StatusOK, newDraftResponse(*draft))
}

// DeleteDraft 删除草稿及其全部对象存储产物。
func (h *DraftHandler) DeleteDraft(c *gin.Context) {
	draft, err := getDraftByID(c.Request.Context(), h.db, c.Param("id"))
	if err != nil {
		respondDraftLookupError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.db.WithContext(ctx).Delete(&database.Draft{}, draft.ID).Error; err != nil {
		Internal(c, "failed to delete draft")
		return
	}

	// 产物清理失败不阻塞删除，记录告警即可。
	for _, prefix := range []string{
		fmt.Sprintf("sources/%d/", draft.ID),
		fmt.Sprintf("exports/%d/", draft.ID),
		fmt.Sprintf("thumbnails/draft/%d/", draft.ID),
	} {
		if err := h.storage.DeletePrefix(ctx, prefix); err != nil {
			h.logger.Warn("delete draft artifacts failed",
				slog.String("prefix", prefix),
				slog.Any("error", err),
			)
		}
	}

	c.Status(http.StatusNoContent)
}

// ImportDraft 校验并导入一份 JSON 草稿。
func (h *DraftHandler) ImportDraft(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		BadRequest(c, "failed to read request body")
		return
	}

	doc, err := resume.ParseDraft(body)
	if err != nil {
		ErrorCode(c, http.StatusBadRequest, errcode.InvalidDraftFormat, err.Error())
		return
	}

	content, err := json.Marshal(doc)
	if err != nil {
		Internal(c, "failed to encode draft content")
		return
	}

	title := doc.PersonalInfo.FullName
	if title == "" {
		title = "Imported Resume"
	}
	draft := database.Draft{
		Title:   title,
		Content: content,
		Status:  database.StatusCompleted,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&draft).Error; err != nil {
		Internal(c, "failed to create draft")
		return
	}

	c.JSON(http.StatusCreated, newDraftResponse(draft))
}

// ExportDraft 以附件形式下载草稿 JSON。
func (h *DraftHandler) ExportDraft(c *gin.Context) {
	draft, err := getDraftByID(c.Request.Context(), h.db, c.Param("id"))
	if err != nil {
		respondDraftLookupError(c, err)
		return
	}

	doc, err := documentFromDraft(draft)
	if err != nil {
		Internal(c, "failed to decode draft content")
		return
	}

	data, err := resume.ExportDraft(doc)
	if err != nil {
		Internal(c, "failed to encode draft")
		return
	}

	filename := raster.FileName(doc.PersonalInfo.FullName, "json")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json", data)
}

// ExampleDraft 返回示例文档，作为草稿格式指引。
func (h *DraftHandler) ExampleDraft(c *gin.Context) {
	data, err := resume.ExportDraft(resume.Example())
	if err != nil {
		Internal(c, "failed to encode example")
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

// Preview 渲染草稿的 HTML 预览（794px 画布，与导出截图共用）。
func (h *DraftHandler) Preview(c *gin.Context) {
	draft, err := getDraftByID(c.Request.Context(), h.db, c.Param("id"))
	if err != nil {
		respondDraftLookupError(c, err)
		return
	}

	doc, err := documentFromDraft(draft)
	if err != nil {
		Internal(c, "failed to decode draft content")
		return
	}

	html, err := preview.Render(doc)
	if err != nil {
		Internal(c, "failed to render preview")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func getDraftByID(ctx context.Context, db *gorm.DB, idParam string) (*database.Draft, error) {
	draftID, err := strconv.ParseUint(idParam, 10, 64)
	if err != nil {
		return nil, errInvalidDraftID
	}

	var draft database.Draft
	if err := db.WithContext(ctx).First(&draft, uint(draftID)).Error; err != nil {
		return nil, err
	}
	return &draft, nil
}

func respondDraftLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errInvalidDraftID):
		BadRequest(c, "invalid draft id")
	case errors.Is(err, gorm.ErrRecordNotFound):
		ErrorCode(c, http.StatusNotFound, errcode.NotFound, "draft not found")
	default:
		Internal(c, "failed to query draft")
	}
}

func documentFromDraft(draft *database.Draft) (resume.Document, error) {
	var doc resume.Document
	if len(draft.Content) == 0 {
		return doc, fmt.Errorf("draft %d has no content", draft.ID)
	}
	if err := json.Unmarshal(draft.Content, &doc); err != nil {
		return doc, fmt.Errorf("unmarshal draft content: %w", err)
	}
	return doc, nil
}
