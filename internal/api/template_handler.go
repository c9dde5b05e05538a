package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumecloner/internal/catalog"
)

// TemplateHandler 暴露只读的模板与字体注册表。
type TemplateHandler struct{}

// NewTemplateHandler 返回 TemplateHandler 实例。
func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{}
}

// ListTemplates 返回全部模板定义。
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": catalog.All()})
}

// ListFonts 返回全部字体定义。
func (h *TemplateHandler) ListFonts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": catalog.AllFonts()})
}
