package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/VenuAyyankar/Burn-Bot/internal/scoring"
	"github.com/VenuAyyankar/Burn-Bot/internal/store"
)

// Handler V1 API 处理器
type Handler struct {
	store     *store.Store
	engine    *scoring.Engine
	downloads *exportDownloadStore
}

// NewHandler 创建 V1 API 处理器
func NewHandler(st *store.Store, engine *scoring.Engine) *Handler {
	return &Handler{
		store:     st,
		engine:    engine,
		downloads: newExportDownloadStore(),
	}
}

// RegisterRoutes 注册 V1 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 数据导入
	router.POST("/import", h.Import)

	// 员工记录
	router.GET("/employees", h.ListEmployees)
	router.POST("/employees", h.CreateEmployee)
	router.GET("/employees/:id", h.GetEmployee)
	router.PATCH("/employees/:id", h.UpdateEmployee)
	router.DELETE("/employees/:id", h.DeleteEmployee)

	// 数据集管理
	router.GET("/datasets", h.ListDatasets)
	router.POST("/datasets", h.CreateDataset)
	router.DELETE("/datasets/:id", h.DeleteDataset)

	// 倦怠评分
	router.GET("/burnout", h.BatchBurnout)
	router.GET("/burnout/:id", h.GetBurnout)

	// 样例数据
	router.POST("/sample-data", h.LoadSampleData)

	// 结果导出
	router.POST("/export", h.Export)
	router.GET("/export/download/:token", h.DownloadExport)
}
