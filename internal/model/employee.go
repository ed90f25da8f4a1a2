package model

import "time"

// Employee 员工工作负荷记录
// 八个规范字段全部必填，导入成功后才会落库
type Employee struct {
	ID                   int64   `json:"id"`
	DatasetID            *int64  `json:"datasetId,omitempty"` // 所属数据集，可为空
	Name                 string  `json:"name"`
	Department           string  `json:"department"`
	WeeklyWorkHours      float64 `json:"weeklyWorkHours"`
	OvertimeHours        float64 `json:"overtimeHours"`
	TasksCompleted       int     `json:"tasksCompleted"`
	MeetingHours         float64 `json:"meetingHours"`
	LeaveDaysLast3Months int     `json:"leaveDaysLast3Months"`
	PerformanceScore     float64 `json:"performanceScore"`
	CreatedAt            string  `json:"createdAt,omitempty"`
}

// Dataset 数据集：一批导入记录的归属单位，按名称唯一
type Dataset struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	EmployeeCount int    `json:"employeeCount"`
	CreatedAt     string `json:"createdAt,omitempty"`
}

// ImportResult 导入结果汇总
type ImportResult struct {
	Added       int           `json:"added"`        // 成功入库行数
	TotalRows   int           `json:"totalRows"`    // 数据总行数（不含表头）
	ErrorRows   int           `json:"errorRows"`    // 转换失败行数
	Warnings    []string      `json:"warnings,omitempty"` // 仅保留前 10 条行级错误
	DatasetID   *int64        `json:"datasetId,omitempty"`
	DatasetName string        `json:"datasetName,omitempty"`
	Duration    time.Duration `json:"duration"`
}
