package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VenuAyyankar/Burn-Bot/internal/importer"
	"github.com/VenuAyyankar/Burn-Bot/internal/parser"
)

// Import 导入员工工作负荷表格
// POST /api/import  (multipart: file 必填, dataset 可选)
func (h *Handler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未找到上传文件"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取上传文件失败"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取上传文件失败"})
		return
	}

	coordinator := importer.NewCoordinator(h.store)
	result, err := coordinator.Import(importer.ImportOptions{
		Filename:    fileHeader.Filename,
		Data:        data,
		DatasetName: c.PostForm("dataset"),
	})
	if err != nil {
		var formatErr *parser.FormatError
		var schemaErr *importer.SchemaError
		if errors.As(err, &formatErr) || errors.As(err, &schemaErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
