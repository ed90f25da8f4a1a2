package parser

// Field 规范字段名：固定的八个员工属性
type Field string

const (
	FieldName                 Field = "name"
	FieldDepartment           Field = "department"
	FieldWeeklyWorkHours      Field = "weekly_work_hours"
	FieldOvertimeHours        Field = "overtime_hours"
	FieldTasksCompleted       Field = "tasks_completed"
	FieldMeetingHours         Field = "meeting_hours"
	FieldLeaveDaysLast3Months Field = "leave_days_last_3_months"
	FieldPerformanceScore     Field = "performance_score"
)

// AllFields 规范字段的固定顺序，缺失字段也按此顺序报告
var AllFields = []Field{
	FieldName,
	FieldDepartment,
	FieldWeeklyWorkHours,
	FieldOvertimeHours,
	FieldTasksCompleted,
	FieldMeetingHours,
	FieldLeaveDaysLast3Months,
	FieldPerformanceScore,
}

// fieldKind 字段目标类型
type fieldKind int

const (
	kindText fieldKind = iota
	kindFloat
	kindInt
)

var fieldKinds = map[Field]fieldKind{
	FieldName:                 kindText,
	FieldDepartment:           kindText,
	FieldWeeklyWorkHours:      kindFloat,
	FieldOvertimeHours:        kindFloat,
	FieldTasksCompleted:       kindInt,
	FieldMeetingHours:         kindFloat,
	FieldLeaveDaysLast3Months: kindInt,
	FieldPerformanceScore:     kindFloat,
}

// ColumnMapping 规范字段 -> 源表头的映射结果
// 同一规范字段最多绑定一个源列（后出现的列覆盖先出现的）
type ColumnMapping map[Field]string

// Table 解析后的表格数据：表头保持源文件原样，行按表头取值
type Table struct {
	Headers []string
	Rows    []map[string]string
}
