package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VenuAyyankar/Burn-Bot/internal/model"
	"github.com/VenuAyyankar/Burn-Bot/internal/store"
)

// EmployeeInput 员工创建请求体，八个字段全部必填
type EmployeeInput struct {
	DatasetID            *int64   `json:"datasetId"`
	Name                 *string  `json:"name" binding:"required"`
	Department           *string  `json:"department" binding:"required"`
	WeeklyWorkHours      *float64 `json:"weeklyWorkHours" binding:"required"`
	OvertimeHours        *float64 `json:"overtimeHours" binding:"required"`
	TasksCompleted       *int     `json:"tasksCompleted" binding:"required"`
	MeetingHours         *float64 `json:"meetingHours" binding:"required"`
	LeaveDaysLast3Months *int     `json:"leaveDaysLast3Months" binding:"required"`
	PerformanceScore     *float64 `json:"performanceScore" binding:"required"`
}

// EmployeeUpdate 员工更新请求体，仅更新出现的字段
type EmployeeUpdate struct {
	Name                 *string  `json:"name"`
	Department           *string  `json:"department"`
	WeeklyWorkHours      *float64 `json:"weeklyWorkHours"`
	OvertimeHours        *float64 `json:"overtimeHours"`
	TasksCompleted       *int     `json:"tasksCompleted"`
	MeetingHours         *float64 `json:"meetingHours"`
	LeaveDaysLast3Months *int     `json:"leaveDaysLast3Months"`
	PerformanceScore     *float64 `json:"performanceScore"`
}

// ListEmployees 查询员工记录，支持 ?dataset_id= 过滤
// GET /api/employees
func (h *Handler) ListEmployees(c *gin.Context) {
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
	if employees == nil {
		employees = []*model.Employee{}
	}
	c.JSON(http.StatusOK, employees)
}

// CreateEmployee 创建单条员工记录
// POST /api/employees
func (h *Handler) CreateEmployee(c *gin.Context) {
	var input EmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求体缺少必填字段"})
		return
	}

	emp := &model.Employee{
		DatasetID:            input.DatasetID,
		Name:                 *input.Name,
		Department:           *input.Department,
		WeeklyWorkHours:      *input.WeeklyWorkHours,
		OvertimeHours:        *input.OvertimeHours,
		TasksCompleted:       *input.TasksCompleted,
		MeetingHours:         *input.MeetingHours,
		LeaveDaysLast3Months: *input.LeaveDaysLast3Months,
		PerformanceScore:     *input.PerformanceScore,
	}

	id, err := h.store.InsertEmployee(emp)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	emp.ID = id
	c.JSON(http.StatusOK, emp)
}

// GetEmployee 按 id 查询员工记录
// GET /api/employees/:id
func (h *Handler) GetEmployee(c *gin.Context) {
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
	c.JSON(http.StatusOK, emp)
}

// UpdateEmployee 按字段更新员工记录
// PATCH /api/employees/:id
func (h *Handler) UpdateEmployee(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var update EmployeeUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求体"})
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

	applyUpdate(emp, &update)

	if err := h.store.UpdateEmployee(emp); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, emp)
}

// DeleteEmployee 删除员工记录
// DELETE /api/employees/:id
func (h *Handler) DeleteEmployee(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	err := h.store.DeleteEmployee(id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "员工不存在"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func applyUpdate(emp *model.Employee, u *EmployeeUpdate) {
	if u.Name != nil {
		emp.Name = *u.Name
	}
	if u.Department != nil {
		emp.Department = *u.Department
	}
	if u.WeeklyWorkHours != nil {
		emp.WeeklyWorkHours = *u.WeeklyWorkHours
	}
	if u.OvertimeHours != nil {
		emp.OvertimeHours = *u.OvertimeHours
	}
	if u.TasksCompleted != nil {
		emp.TasksCompleted = *u.TasksCompleted
	}
	if u.MeetingHours != nil {
		emp.MeetingHours = *u.MeetingHours
	}
	if u.LeaveDaysLast3Months != nil {
		emp.LeaveDaysLast3Months = *u.LeaveDaysLast3Months
	}
	if u.PerformanceScore != nil {
		emp.PerformanceScore = *u.PerformanceScore
	}
}

// parseIDParam 解析路径中的数字 id，非法时直接响应 400
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的 id"})
		return 0, false
	}
	return id, true
}
