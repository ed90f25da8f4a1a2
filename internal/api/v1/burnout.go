package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VenuAyyankar/Burn-Bot/internal/store"
)

// BurnoutResponse 单员工倦怠评分响应
type BurnoutResponse struct {
	EmployeeID  int64   `json:"employeeId"`
	Name        string  `json:"name"`
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

// GetBurnout 计算单个员工的倦怠评分
// GET /api/burnout/:id
func (h *Handler) GetBurnout(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	emp, err := h.store.GetEmployee(id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "员工不存在"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	score, explanation := h.engine.Score(emp)
	c.JSON(http.StatusOK, BurnoutResponse{
		EmployeeID:  emp.ID,
		Name:        emp.Name,
		Score:       score,
		Explanation: explanation,
	})
}

// BatchBurnout 批量计算倦怠评分，支持 ?dataset_id= 过滤
// GET /api/burnout
func (h *Handler) BatchBurnout(c *gin.Context) {
	opts := store.EmployeeQueryOptions{}
	if raw := c.Query("dataset_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的 dataset_id"})
			return
		}
		opts.DatasetID = &id
	}

	employees, err := h.store.ListEmployees(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	results := make([]BurnoutResponse, 0, len(employees))
	for _, emp := range employees {
		score, explanation := h.engine.Score(emp)
		results = append(results, BurnoutResponse{
			EmployeeID:  emp.ID,
			Name:        emp.Name,
			Score:       score,
			Explanation: explanation,
		})
	}
	c.JSON(http.StatusOK, results)
}
