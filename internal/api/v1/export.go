package v1

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/VenuAyyankar/Burn-Bot/internal/exporter"
)

// downloadTTL 导出文件下载令牌有效期
const downloadTTL = 10 * time.Minute

// ExportRequest 导出请求
type ExportRequest struct {
	DatasetID *int64 `json:"datasetId"` // 为空时导出全部员工
}

// Export 生成倦怠分析 Excel，返回下载令牌
// POST /api/export
func (h *Handler) Export(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求体"})
		return
	}

	outPath := filepath.Join(os.TempDir(), fmt.Sprintf("burnbot_export_%s.xlsx", uuid.New().String()[:8]))

	exp := exporter.NewExporter(h.store, h.engine)
	rows, err := exp.Export(req.DatasetID, outPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	token := h.downloads.put(outPath, rows, downloadTTL)
	c.JSON(http.StatusOK, gin.H{"token": token, "rows": rows})
}

// DownloadExport 按令牌下载导出文件
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")
	item, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "下载链接不存在或已过期"})
		return
	}

	if _, err := os.Stat(item.filePath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "导出文件已被清理，请重新导出"})
		return
	}

	c.FileAttachment(item.filePath, "倦怠分析.xlsx")
}
