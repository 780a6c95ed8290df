package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/neurohealing-backend/internal/http/response"
	"github.com/yungbote/neurohealing-backend/internal/modules/brainmap"
	"github.com/yungbote/neurohealing-backend/internal/modules/healing"
)

type CatalogHandler struct {
	payload gin.H
}

func NewCatalogHandler(tables *brainmap.Tables) *CatalogHandler {
	if tables == nil {
		tables = brainmap.DefaultTables()
	}
	cat := tables.Catalog()
	return &CatalogHandler{payload: gin.H{
		"categories": cat.Categories,
		"windows":    cat.Windows,
		"durations":  cat.Durations,
		"regions":    cat.Regions,
		"factors":    healing.Factors(),
		"milestones": healing.Milestones(),
	}}
}

// GET /api/catalog
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	response.RespondOK(c, h.payload)
}
