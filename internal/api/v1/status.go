package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Initialized    bool   `json:"initialized"`    // 是否已有数据
	TotalEmployees int    `json:"totalEmployees"` // 员工记录总数
	TotalDatasets  int    `json:"totalDatasets"`  // 数据集总数
	ModelLoaded    bool   `json:"modelLoaded"`    // 概率模型是否可用
	LastImportTime string `json:"lastImportTime"` // 最近一次成功导入时间
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	employees, err := h.store.CountEmployees()
	if err != nil {
		employees = 0
	}

	datasets, err := h.store.CountDatasets()
	if err != nil {
		datasets = 0
	}

	lastImport, err := h.store.LastImportTime()
	if err != nil {
		lastImport = ""
	}

	c.JSON(http.StatusOK, StatusResponse{
		Initialized:    employees > 0,
		TotalEmployees: employees,
		TotalDatasets:  datasets,
		ModelLoaded:    h.engine.ModelAvailable(),
		LastImportTime: lastImport,
	})
}
