package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/VenuAyyankar/Burn-Bot/internal/model"
	"github.com/VenuAyyankar/Burn-Bot/internal/store"
)

// DatasetInput 数据集创建请求体
type DatasetInput struct {
	Name string `json:"name" binding:"required"`
}

// ListDatasets 列出所有数据集及其记录数
// GET /api/datasets
func (h *Handler) ListDatasets(c *gin.Context) {
	datasets, err := h.store.ListDatasets()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if datasets == nil {
		datasets = []*model.Dataset{}
	}
	c.JSON(http.StatusOK, datasets)
}

// CreateDataset 显式创建数据集，名称重复返回 409
// POST /api/datasets
func (h *Handler) CreateDataset(c *gin.Context) {
	var input DatasetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少数据集名称"})
		return
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "数据集名称不能为空"})
		return
	}

	ds, err := h.store.CreateDataset(name)
	if errors.Is(err, store.ErrDatasetExists) {
		c.JSON(http.StatusConflict, gin.H{"error": "数据集名称已存在"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ds)
}

// DeleteDataset 删除数据集及其下所有员工记录
// DELETE /api/datasets/:id
func (h *Handler) DeleteDataset(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	err := h.store.DeleteDataset(id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "数据集不存在"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
