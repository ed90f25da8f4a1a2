package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VenuAyyankar/Burn-Bot/internal/model"
)

// sampleEmployees 内置样例数据，便于空库快速体验
var sampleEmployees = []*model.Employee{
	{
		Name:                 "John",
		Department:           "Engineering",
		WeeklyWorkHours:      50,
		OvertimeHours:        15,
		TasksCompleted:       20,
		MeetingHours:         12,
		LeaveDaysLast3Months: 1,
		PerformanceScore:     3.2,
	},
	{
		Name:                 "Anita",
		Department:           "HR",
		WeeklyWorkHours:      40,
		OvertimeHours:        5,
		TasksCompleted:       15,
		MeetingHours:         8,
		LeaveDaysLast3Months: 3,
		PerformanceScore:     4.5,
	},
}

// LoadSampleData 插入样例员工数据
// POST /api/sample-data
func (h *Handler) LoadSampleData(c *gin.Context) {
	records := make([]*model.Employee, len(sampleEmployees))
	for i, s := range sampleEmployees {
		cp := *s
		records[i] = &cp
	}

	if err := h.store.BatchInsertEmployees(records); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "样例数据已插入", "added": len(records)})
}
